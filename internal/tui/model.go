// Package tui implements the full-screen task board built on bubbletea.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/taskdeck/taskdeck/internal/app"
	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/usecase"
)

// Model is the main bubbletea model for the task board.
type Model struct {
	container *app.Container
	err       error

	tasks []domain.Task
	stats domain.Statistics

	keys   KeyMap
	styles Styles
	help   help.Model
	input  textinput.Model

	// Draft of the task being added (title captured before description).
	draftTitle string
	draftDesc  string

	// Active search query; empty means the filtered list is shown.
	query string

	notice string
	filter domain.Filter
	mode   Mode
	cursor int
	width  int
	height int
}

// New creates a new task board model with the given container.
func New(c *app.Container) *Model {
	ti := textinput.New()
	ti.CharLimit = 200

	return &Model{
		container: c,
		keys:      DefaultKeyMap(),
		styles:    NewStyles(c.Config.UI.AccentColor),
		help:      help.New(),
		input:     ti,
		filter:    domain.FilterAll,
	}
}

// Init loads the initial task list.
func (m *Model) Init() tea.Cmd {
	m.refresh()
	return nil
}

// refresh reloads the visible task list and statistics.
func (m *Model) refresh() {
	ctx := context.Background()

	if m.query != "" {
		out, err := m.container.SearchTasksUseCase().Execute(ctx, usecase.SearchTasksInput{Query: m.query})
		if err != nil {
			m.err = err
			return
		}
		m.tasks = out.Tasks
	} else {
		out, err := m.container.ListTasksUseCase().Execute(ctx, usecase.ListTasksInput{Filter: m.filter})
		if err != nil {
			m.err = err
			return
		}
		m.tasks = out.Tasks
	}

	statsOut, err := m.container.TaskStatsUseCase().Execute(ctx)
	if err != nil {
		m.err = err
		return
	}
	m.stats = statsOut.Stats
	m.err = nil

	if m.cursor >= len(m.tasks) {
		m.cursor = len(m.tasks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// selected returns the task under the cursor, if any.
func (m *Model) selected() (domain.Task, bool) {
	if len(m.tasks) == 0 || m.cursor >= len(m.tasks) {
		return domain.Task{}, false
	}
	return m.tasks[m.cursor], true
}
