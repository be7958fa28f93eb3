package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// TaskDraft describes one task to import. Priority must already be
// validated by the caller (the seed file parser does this).
type TaskDraft struct {
	Title       string
	Description string
	Priority    domain.Priority
}

// ImportTasksInput contains the parameters for importing tasks.
type ImportTasksInput struct {
	Drafts []TaskDraft
}

// ImportTasksOutput contains the result of importing tasks.
type ImportTasksOutput struct {
	Tasks []domain.Task // Created tasks, in draft order, with assigned IDs
}

// ImportTasks is the use case for importing a batch of tasks, used to
// seed the collection from a file before an interactive session.
type ImportTasks struct {
	tasks  domain.TaskRepository
	clock  domain.Clock
	logger *slog.Logger
}

// NewImportTasks creates a new ImportTasks use case.
func NewImportTasks(tasks domain.TaskRepository, clock domain.Clock, logger *slog.Logger) *ImportTasks {
	return &ImportTasks{
		tasks:  tasks,
		clock:  clock,
		logger: logger,
	}
}

// Execute imports all drafts in order, so assigned IDs stay sequential.
// The first invalid draft aborts the import; tasks created before it
// remain in the collection.
func (uc *ImportTasks) Execute(_ context.Context, in ImportTasksInput) (*ImportTasksOutput, error) {
	created := make([]domain.Task, 0, len(in.Drafts))
	for i, d := range in.Drafts {
		if d.Title == "" {
			return nil, fmt.Errorf("draft %d: %w", i+1, domain.ErrEmptyTitle)
		}
		if !d.Priority.IsValid() {
			return nil, fmt.Errorf("draft %d: %w", i+1, domain.ErrInvalidPriority)
		}

		task, err := uc.tasks.Add(domain.Task{
			Title:       d.Title,
			Description: d.Description,
			Priority:    d.Priority,
			Created:     uc.clock.Now(),
		})
		if err != nil {
			return nil, fmt.Errorf("add draft %d: %w", i+1, err)
		}
		created = append(created, task)
	}

	if uc.logger != nil && len(created) > 0 {
		uc.logger.Info("tasks imported", "count", len(created))
	}

	return &ImportTasksOutput{Tasks: created}, nil
}
