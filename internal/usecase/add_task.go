// Package usecase contains application use cases.
package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// AddTaskInput contains the parameters for creating a new task.
type AddTaskInput struct {
	Title       string          // Task title (required)
	Description string          // Task description (optional)
	Priority    domain.Priority // Importance level (required, validated)
}

// AddTaskOutput contains the result of creating a new task.
type AddTaskOutput struct {
	Task domain.Task // The created task with its assigned ID
}

// AddTask is the use case for creating a new task.
type AddTask struct {
	tasks  domain.TaskRepository
	clock  domain.Clock
	logger *slog.Logger
}

// NewAddTask creates a new AddTask use case.
func NewAddTask(tasks domain.TaskRepository, clock domain.Clock, logger *slog.Logger) *AddTask {
	return &AddTask{
		tasks:  tasks,
		clock:  clock,
		logger: logger,
	}
}

// Execute creates a new task with the given input.
func (uc *AddTask) Execute(_ context.Context, in AddTaskInput) (*AddTaskOutput, error) {
	if in.Title == "" {
		return nil, domain.ErrEmptyTitle
	}
	if !in.Priority.IsValid() {
		return nil, domain.ErrInvalidPriority
	}

	task, err := uc.tasks.Add(domain.Task{
		Title:       in.Title,
		Description: in.Description,
		Priority:    in.Priority,
		Created:     uc.clock.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("add task: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info("task created", "id", task.ID, "title", task.Title)
	}

	return &AddTaskOutput{Task: task}, nil
}
