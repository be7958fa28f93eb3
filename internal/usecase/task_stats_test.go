package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/infra/memstore"
)

func TestTaskStats_Execute_Empty(t *testing.T) {
	uc := NewTaskStats(memstore.New())

	out, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.Statistics{}, out.Stats)
	assert.Equal(t, 0.0, out.Stats.CompletionPercentage())
}

func TestTaskStats_Execute(t *testing.T) {
	repo := memstore.New()
	add := NewAddTask(repo, testClock(), testLogger())
	_, err := add.Execute(context.Background(), AddTaskInput{Title: "Write report", Priority: domain.PriorityHigh})
	require.NoError(t, err)
	_, err = add.Execute(context.Background(), AddTaskInput{Title: "Call Bob", Priority: domain.PriorityLow})
	require.NoError(t, err)

	complete := NewCompleteTask(repo)
	_, err = complete.Execute(context.Background(), CompleteTaskInput{TaskID: 1})
	require.NoError(t, err)

	uc := NewTaskStats(repo)
	out, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, domain.Statistics{Total: 2, Completed: 1, Pending: 1, HighPriority: 1}, out.Stats)
	assert.Equal(t, out.Stats.Total, out.Stats.Completed+out.Stats.Pending)
	assert.InDelta(t, 50.0, out.Stats.CompletionPercentage(), 1e-9)
}
