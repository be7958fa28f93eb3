package usecase

import (
	"context"
	"fmt"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// CompleteTaskInput contains the parameters for completing a task.
type CompleteTaskInput struct {
	TaskID int // Task ID to complete
}

// CompleteTaskOutput contains the result of completing a task.
type CompleteTaskOutput struct {
	Task domain.Task // The task after completion
}

// CompleteTask is the use case for marking a task completed.
type CompleteTask struct {
	tasks domain.TaskRepository
}

// NewCompleteTask creates a new CompleteTask use case.
func NewCompleteTask(tasks domain.TaskRepository) *CompleteTask {
	return &CompleteTask{tasks: tasks}
}

// Execute marks the task with the given ID completed by replacing the
// stored value with a completed copy. Idempotent: completing an
// already-completed task succeeds and leaves it completed.
func (uc *CompleteTask) Execute(_ context.Context, in CompleteTaskInput) (*CompleteTaskOutput, error) {
	task, err := uc.tasks.Get(in.TaskID)
	if err != nil {
		return nil, err
	}

	completed := task.Complete()
	if err := uc.tasks.Replace(completed); err != nil {
		return nil, fmt.Errorf("replace task: %w", err)
	}

	return &CompleteTaskOutput{Task: completed}, nil
}
