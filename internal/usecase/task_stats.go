package usecase

import (
	"context"
	"fmt"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// TaskStatsOutput contains the computed statistics snapshot.
type TaskStatsOutput struct {
	Stats domain.Statistics
}

// TaskStats is the use case for computing aggregate task statistics.
type TaskStats struct {
	tasks domain.TaskRepository
}

// NewTaskStats creates a new TaskStats use case.
func NewTaskStats(tasks domain.TaskRepository) *TaskStats {
	return &TaskStats{tasks: tasks}
}

// Execute computes counts over the full collection. No side effects.
func (uc *TaskStats) Execute(_ context.Context) (*TaskStatsOutput, error) {
	stats, err := uc.tasks.Stats()
	if err != nil {
		return nil, fmt.Errorf("compute statistics: %w", err)
	}

	return &TaskStatsOutput{Stats: stats}, nil
}
