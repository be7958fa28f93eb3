// Package cli provides the command-line interface for taskdeck.
package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/internal/app"
	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/infra/seedfile"
	"github.com/taskdeck/taskdeck/internal/tui"
	"github.com/taskdeck/taskdeck/internal/usecase"
)

// launchTUIFunc is a function variable for launching the TUI, allowing it to be mocked in tests.
var launchTUIFunc = launchTUI

// NewRootCommand creates the root command for taskdeck.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	var fromFile string

	root := &cobra.Command{
		Use:   "taskdeck",
		Short: "Interactive console task list manager",
		Long: `taskdeck is an in-memory task list manager for one console session.

Tasks live in process memory for the duration of one run: create them,
mark them complete, filter, search, and check completion statistics from
an interactive menu. Nothing is persisted between runs.

Use --from to seed the session with tasks from a YAML file, or the
'tui' subcommand for a full-screen board instead of the menu.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := seedTasks(cmd, c, fromFile); err != nil {
				return err
			}

			session := NewSession(c, cmd.InOrStdin(), cmd.OutOrStdout())
			return session.Run(cmd.Context())
		},
	}

	root.PersistentFlags().StringVar(&fromFile, "from", "", "Seed tasks from a YAML file before starting")
	// The config path is read in main before the container is built;
	// the flag is registered here so cobra accepts and documents it.
	root.PersistentFlags().String("config", "", "Path to config file (default: ~/.config/taskdeck/config.toml)")

	tuiCmd := newTUICommand(c, &fromFile)
	root.AddCommand(tuiCmd)

	return root
}

// seedTasks imports tasks from the seed file, if one was given.
func seedTasks(cmd *cobra.Command, c *app.Container, path string) error {
	if path == "" {
		return nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}

	drafts, err := seedfile.Parse(content, c.Config.DefaultPriority())
	if err != nil {
		return err
	}

	in := usecase.ImportTasksInput{Drafts: make([]usecase.TaskDraft, 0, len(drafts))}
	for _, d := range drafts {
		in.Drafts = append(in.Drafts, usecase.TaskDraft{
			Title:       d.Title,
			Description: d.Description,
			Priority:    domain.Priority(d.Priority),
		})
	}

	out, err := c.ImportTasksUseCase().Execute(cmd.Context(), in)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d task(s) from %s\n", len(out.Tasks), path)
	return nil
}

// newTUICommand creates the tui command for the full-screen board.
func newTUICommand(c *app.Container, fromFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the full-screen task board",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := seedTasks(cmd, c, *fromFile); err != nil {
				return err
			}
			return launchTUIFunc(c)
		},
	}
}

// launchTUI starts the bubbletea program for the task board.
func launchTUI(c *app.Container) error {
	model := tui.New(c)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
