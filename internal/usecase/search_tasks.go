package usecase

import (
	"context"
	"fmt"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// SearchTasksInput contains the parameters for searching tasks.
type SearchTasksInput struct {
	Query string // Substring matched case-insensitively against title and description
}

// SearchTasksOutput contains the result of searching tasks.
type SearchTasksOutput struct {
	Tasks []domain.Task // Matching tasks, in insertion order
}

// SearchTasks is the use case for searching tasks by text.
type SearchTasks struct {
	tasks domain.TaskRepository
}

// NewSearchTasks creates a new SearchTasks use case.
func NewSearchTasks(tasks domain.TaskRepository) *SearchTasks {
	return &SearchTasks{tasks: tasks}
}

// Execute searches tasks whose title or description contains the query.
// An empty query matches every task; the interactive session rejects
// empty queries before calling, but no guard is added here.
func (uc *SearchTasks) Execute(_ context.Context, in SearchTasksInput) (*SearchTasksOutput, error) {
	tasks, err := uc.tasks.Search(in.Query)
	if err != nil {
		return nil, fmt.Errorf("search tasks: %w", err)
	}

	return &SearchTasksOutput{Tasks: tasks}, nil
}
