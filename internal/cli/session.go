package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/taskdeck/taskdeck/internal/app"
	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/usecase"
)

const divider = "----------------------------------------"

// Session runs the interactive menu loop. Input and output are plain
// streams so tests can drive a full session with scripted input.
type Session struct {
	c   *app.Container
	in  *bufio.Reader
	out io.Writer
}

// NewSession creates a new interactive session over the given streams.
func NewSession(c *app.Container, in io.Reader, out io.Writer) *Session {
	return &Session{
		c:   c,
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Run displays the menu loop until the user exits or input ends.
// The process never terminates on bad input; every error is reported
// as a message and the loop continues.
func (s *Session) Run(ctx context.Context) error {
	s.printf("========================================\n")
	s.printf("       Welcome to Taskdeck!\n")
	s.printf("========================================\n")

	for {
		s.printMenu()
		choice, err := s.readLine()
		if err != nil {
			// Input stream closed; treat like exit.
			return nil
		}

		switch strings.TrimSpace(choice) {
		case "1":
			s.addTask(ctx)
		case "2":
			s.removeTask(ctx)
		case "3":
			s.completeTask(ctx)
		case "4":
			s.listTasks(ctx)
		case "5":
			s.searchTasks(ctx)
		case "6":
			s.showStatistics(ctx)
		case "7":
			s.printf("\nGoodbye! Thanks for using Taskdeck.\n")
			return nil
		default:
			// Invalid choice: message and straight back to the menu,
			// without the press-Enter pause.
			s.printf("\nInvalid choice, please select 1-7.\n")
			continue
		}

		s.printf("\nPress Enter to continue...")
		if _, err := s.readLine(); err != nil {
			return nil
		}
		s.printf("\n")
	}
}

func (s *Session) printMenu() {
	s.printf("\n===== Task Manager Menu =====\n")
	s.printf("1. Add Task\n")
	s.printf("2. Remove Task\n")
	s.printf("3. Complete Task\n")
	s.printf("4. List Tasks\n")
	s.printf("5. Search Tasks\n")
	s.printf("6. Show Statistics\n")
	s.printf("7. Exit\n")
	s.printf("Enter your choice: ")
}

func (s *Session) addTask(ctx context.Context) {
	s.printf("\nEnter task title: ")
	title, err := s.readLine()
	if err != nil {
		return
	}
	title = strings.TrimSpace(title)
	if title == "" {
		s.printf("Title cannot be empty. Task not added.\n")
		return
	}

	s.printf("Enter task description: ")
	description, err := s.readLine()
	if err != nil {
		return
	}
	description = strings.TrimSpace(description)

	s.printf("Select priority (1=Low, 2=Medium, 3=High): ")
	priorityChoice, err := s.readLine()
	if err != nil {
		return
	}

	var priority domain.Priority
	switch strings.TrimSpace(priorityChoice) {
	case "1":
		priority = domain.PriorityLow
	case "2":
		priority = domain.PriorityMedium
	case "3":
		priority = domain.PriorityHigh
	default:
		priority = s.c.Config.DefaultPriority()
		s.printf("Invalid priority, defaulting to %s.\n", priority.Display())
	}

	out, err := s.c.AddTaskUseCase().Execute(ctx, usecase.AddTaskInput{
		Title:       title,
		Description: description,
		Priority:    priority,
	})
	if err != nil {
		s.printf("Could not add task: %v\n", err)
		return
	}
	s.printf("Added task #%d: %s\n", out.Task.ID, out.Task.Title)
}

func (s *Session) removeTask(ctx context.Context) {
	id, ok := s.promptTaskID("\nEnter task ID to remove: ")
	if !ok {
		return
	}

	out, err := s.c.RemoveTaskUseCase().Execute(ctx, usecase.RemoveTaskInput{TaskID: id})
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			s.printf("Task #%d not found.\n", id)
			return
		}
		s.printf("Could not remove task: %v\n", err)
		return
	}
	s.printf("Removed task #%d: %s\n", out.Task.ID, out.Task.Title)
}

func (s *Session) completeTask(ctx context.Context) {
	id, ok := s.promptTaskID("\nEnter task ID to complete: ")
	if !ok {
		return
	}

	out, err := s.c.CompleteTaskUseCase().Execute(ctx, usecase.CompleteTaskInput{TaskID: id})
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			s.printf("Task #%d not found.\n", id)
			return
		}
		s.printf("Could not complete task: %v\n", err)
		return
	}
	s.printf("Task #%d marked as completed: %s\n", out.Task.ID, out.Task.Title)
}

// promptTaskID prompts for a task ID and parses it. Non-integer input
// is rejected locally with a message; no manager call is made.
func (s *Session) promptTaskID(prompt string) (int, bool) {
	s.printf("%s", prompt)
	line, err := s.readLine()
	if err != nil {
		return 0, false
	}

	id, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		s.printf("Invalid task ID.\n")
		return 0, false
	}
	return id, true
}

func (s *Session) listTasks(ctx context.Context) {
	s.printf("\nSelect filter (1=All, 2=Completed, 3=Pending, 4=High Priority): ")
	choice, err := s.readLine()
	if err != nil {
		return
	}

	var filter domain.Filter
	switch strings.TrimSpace(choice) {
	case "1":
		filter = domain.FilterAll
	case "2":
		filter = domain.FilterCompleted
	case "3":
		filter = domain.FilterPending
	case "4":
		filter = domain.FilterHighPriority
	default:
		filter = domain.FilterAll
		s.printf("Invalid filter, showing all tasks.\n")
	}

	out, err := s.c.ListTasksUseCase().Execute(ctx, usecase.ListTasksInput{Filter: filter})
	if err != nil {
		s.printf("Could not list tasks: %v\n", err)
		return
	}

	if len(out.Tasks) == 0 {
		s.printf("No tasks found.\n")
		return
	}

	s.printf("\n%s Tasks:\n%s\n", filter.Display(), divider)
	for i, t := range out.Tasks {
		s.printf("%d. %s\n", i+1, t.DisplayTitle())
		if t.Description != "" {
			s.printf("   Description: %s\n", t.Description)
		}
		s.printf("   Status: %s\n", t.Status())
		s.printf("   Created: %s\n", t.Created.Format(s.c.Config.UI.TimeFormat))
		s.printf("   ID: %d\n", t.ID)
		s.printf("%s\n", divider)
	}
}

func (s *Session) searchTasks(ctx context.Context) {
	s.printf("\nEnter search query: ")
	query, err := s.readLine()
	if err != nil {
		return
	}
	query = strings.TrimSpace(query)
	if query == "" {
		s.printf("Search query cannot be empty.\n")
		return
	}

	out, err := s.c.SearchTasksUseCase().Execute(ctx, usecase.SearchTasksInput{Query: query})
	if err != nil {
		s.printf("Could not search tasks: %v\n", err)
		return
	}

	s.printf("Found %d matching task(s):\n", len(out.Tasks))
	for i, t := range out.Tasks {
		s.printf("%d. %s\n", i+1, t.DisplayTitle())
		if t.Description != "" {
			s.printf("   Description: %s\n", t.Description)
		}
		s.printf("   Status: %s\n", t.Status())
	}
}

func (s *Session) showStatistics(ctx context.Context) {
	out, err := s.c.TaskStatsUseCase().Execute(ctx)
	if err != nil {
		s.printf("Could not compute statistics: %v\n", err)
		return
	}

	stats := out.Stats
	s.printf("\n===== Task Statistics =====\n")
	s.printf("Total tasks:         %d\n", stats.Total)
	s.printf("Completed tasks:     %d\n", stats.Completed)
	s.printf("Pending tasks:       %d\n", stats.Pending)
	s.printf("High priority tasks: %d\n", stats.HighPriority)
	s.printf("Completion rate:     %.1f%%\n", stats.CompletionPercentage())
	s.printf("%s\n", stats.ProductivityMessage())
}

// readLine reads one line of input without the trailing newline.
func (s *Session) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (s *Session) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}
