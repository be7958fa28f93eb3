package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/infra/memstore"
)

func TestSearchTasks_Execute(t *testing.T) {
	repo := memstore.New()
	add := NewAddTask(repo, testClock(), testLogger())
	_, err := add.Execute(context.Background(), AddTaskInput{
		Title: "Buy Milk", Priority: domain.PriorityMedium,
	})
	require.NoError(t, err)
	_, err = add.Execute(context.Background(), AddTaskInput{
		Title: "Call Bob", Description: "re: report", Priority: domain.PriorityLow,
	})
	require.NoError(t, err)

	uc := NewSearchTasks(repo)

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"lowercase", "milk", []string{"Buy Milk"}},
		{"uppercase", "MILK", []string{"Buy Milk"}},
		{"mixed case", "Milk", []string{"Buy Milk"}},
		{"description match", "report", []string{"Call Bob"}},
		{"no match", "groceries list", nil},
		{"empty query matches all", "", []string{"Buy Milk", "Call Bob"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := uc.Execute(context.Background(), SearchTasksInput{Query: tt.query})
			require.NoError(t, err)
			titles := make([]string, 0, len(out.Tasks))
			for _, task := range out.Tasks {
				titles = append(titles, task.Title)
			}
			if tt.want == nil {
				assert.Empty(t, titles)
			} else {
				assert.Equal(t, tt.want, titles)
			}
		})
	}
}
