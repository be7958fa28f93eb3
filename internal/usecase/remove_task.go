package usecase

import (
	"context"
	"fmt"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// RemoveTaskInput contains the parameters for removing a task.
type RemoveTaskInput struct {
	TaskID int // Task ID to remove
}

// RemoveTaskOutput contains the result of removing a task.
type RemoveTaskOutput struct {
	Task domain.Task // The removed task
}

// RemoveTask is the use case for removing a task.
type RemoveTask struct {
	tasks domain.TaskRepository
}

// NewRemoveTask creates a new RemoveTask use case.
func NewRemoveTask(tasks domain.TaskRepository) *RemoveTask {
	return &RemoveTask{tasks: tasks}
}

// Execute removes the task with the given ID.
// Returns domain.ErrTaskNotFound when no task has that ID; the
// collection is left unchanged in that case.
func (uc *RemoveTask) Execute(_ context.Context, in RemoveTaskInput) (*RemoveTaskOutput, error) {
	task, err := uc.tasks.Get(in.TaskID)
	if err != nil {
		return nil, err
	}

	if err := uc.tasks.Delete(in.TaskID); err != nil {
		return nil, fmt.Errorf("delete task: %w", err)
	}

	return &RemoveTaskOutput{Task: task}, nil
}
