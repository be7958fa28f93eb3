package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTask_DisplayTitle(t *testing.T) {
	task := Task{Title: "Buy milk"}
	assert.Equal(t, "Buy milk", task.DisplayTitle())

	done := task.Complete()
	assert.Equal(t, "✓ Buy milk", done.DisplayTitle())
}

func TestTask_Status(t *testing.T) {
	tests := []struct {
		name      string
		priority  Priority
		completed bool
		want      string
	}{
		{name: "high priority", priority: PriorityHigh, want: "High Priority"},
		{name: "medium priority", priority: PriorityMedium, want: "Medium Priority"},
		{name: "low priority", priority: PriorityLow, want: "Low Priority"},
		{name: "completed wins over high", priority: PriorityHigh, completed: true, want: "Completed"},
		{name: "completed wins over low", priority: PriorityLow, completed: true, want: "Completed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := Task{Priority: tt.priority, Completed: tt.completed}
			assert.Equal(t, tt.want, task.Status())
		})
	}
}

func TestTask_Complete_IsCopy(t *testing.T) {
	created := time.Date(2024, 1, 5, 14, 30, 0, 0, time.UTC)
	task := Task{ID: 1, Title: "Write report", Priority: PriorityHigh, Created: created}

	done := task.Complete()

	// Original value is untouched.
	assert.False(t, task.Completed)
	assert.True(t, done.Completed)

	// Everything else carries over.
	assert.Equal(t, task.ID, done.ID)
	assert.Equal(t, task.Title, done.Title)
	assert.Equal(t, task.Priority, done.Priority)
	assert.Equal(t, created, done.Created)

	// Completing twice yields the same value.
	assert.Equal(t, done, done.Complete())
}
