package cli

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/taskdeck/internal/app"
	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/infra/memstore"
)

// mockClock is a test double for domain.Clock.
type mockClock struct {
	now time.Time
}

func (m *mockClock) Now() time.Time {
	return m.now
}

func testContainer() *app.Container {
	return &app.Container{
		Tasks:  memstore.New(),
		Clock:  &mockClock{now: time.Date(2024, 1, 5, 14, 30, 0, 0, time.UTC)},
		Config: domain.NewDefaultConfig(),
		Logger: slog.New(slog.DiscardHandler),
	}
}

// runSession drives a full session over scripted input lines and
// returns everything printed.
func runSession(t *testing.T, c *app.Container, lines ...string) string {
	t.Helper()
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	var out bytes.Buffer
	session := NewSession(c, in, &out)
	require.NoError(t, session.Run(context.Background()))
	return out.String()
}

func TestSession_ExitImmediately(t *testing.T) {
	out := runSession(t, testContainer(), "7")

	assert.Contains(t, out, "Welcome to Taskdeck!")
	assert.Contains(t, out, "===== Task Manager Menu =====")
	assert.Contains(t, out, "Goodbye! Thanks for using Taskdeck.")
	assert.NotContains(t, out, "Press Enter to continue...")
}

func TestSession_InvalidMenuChoice(t *testing.T) {
	out := runSession(t, testContainer(),
		"9", // invalid choice: menu redisplays with no pause
		"7",
	)

	assert.Contains(t, out, "Invalid choice, please select 1-7.")
	// The menu is redisplayed and the session continues.
	assert.Equal(t, 2, strings.Count(out, "===== Task Manager Menu ====="))
}

func TestSession_AddTask(t *testing.T) {
	c := testContainer()
	out := runSession(t, c,
		"1", "Write report", "quarterly numbers", "3", "",
		"7",
	)

	assert.Contains(t, out, "Enter task title: ")
	assert.Contains(t, out, "Enter task description: ")
	assert.Contains(t, out, "Select priority (1=Low, 2=Medium, 3=High): ")
	assert.Contains(t, out, "Added task #1: Write report")
	assert.Contains(t, out, "Press Enter to continue...")

	task, err := c.Tasks.Get(1)
	require.NoError(t, err)
	assert.Equal(t, domain.PriorityHigh, task.Priority)
	assert.False(t, task.Completed)
}

func TestSession_AddTask_EmptyTitleRejected(t *testing.T) {
	c := testContainer()
	out := runSession(t, c,
		"1", "", "",
		"7",
	)

	assert.Contains(t, out, "Title cannot be empty. Task not added.")

	tasks, err := c.Tasks.List(domain.FilterAll)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestSession_AddTask_InvalidPriorityDefaultsToMedium(t *testing.T) {
	c := testContainer()
	out := runSession(t, c,
		"1", "task", "", "9", "",
		"7",
	)

	assert.Contains(t, out, "Invalid priority, defaulting to Medium.")

	task, err := c.Tasks.Get(1)
	require.NoError(t, err)
	assert.Equal(t, domain.PriorityMedium, task.Priority)
}

func TestSession_RemoveTask_InvalidID(t *testing.T) {
	out := runSession(t, testContainer(),
		"2", "abc", "",
		"7",
	)

	assert.Contains(t, out, "Invalid task ID.")
}

func TestSession_RemoveTask_NotFound(t *testing.T) {
	out := runSession(t, testContainer(),
		"2", "99", "",
		"7",
	)

	assert.Contains(t, out, "Task #99 not found.")
}

func TestSession_CompleteTask_NotFound(t *testing.T) {
	out := runSession(t, testContainer(),
		"3", "42", "",
		"7",
	)

	assert.Contains(t, out, "Task #42 not found.")
}

func TestSession_ListTasks_FormatsTimestamp(t *testing.T) {
	out := runSession(t, testContainer(),
		"1", "Write report", "quarterly numbers", "3", "",
		"4", "1", "",
		"7",
	)

	assert.Contains(t, out, "1. Write report")
	assert.Contains(t, out, "Description: quarterly numbers")
	assert.Contains(t, out, "Status: High Priority")
	assert.Contains(t, out, "Created: Jan 05, 2024 14:30")
	assert.Contains(t, out, "ID: 1")
	assert.Contains(t, out, divider)
}

func TestSession_ListTasks_InvalidFilterShowsAll(t *testing.T) {
	out := runSession(t, testContainer(),
		"1", "task", "", "2", "",
		"4", "8", "",
		"7",
	)

	assert.Contains(t, out, "Invalid filter, showing all tasks.")
	assert.Contains(t, out, "All Tasks:")
	assert.Contains(t, out, "1. task")
}

func TestSession_ListTasks_Empty(t *testing.T) {
	out := runSession(t, testContainer(),
		"4", "1", "",
		"7",
	)

	assert.Contains(t, out, "No tasks found.")
}

func TestSession_SearchTasks_EmptyQueryRejected(t *testing.T) {
	out := runSession(t, testContainer(),
		"5", "", "",
		"7",
	)

	assert.Contains(t, out, "Search query cannot be empty.")
	assert.NotContains(t, out, "matching task(s)")
}

func TestSession_SearchTasks_CaseInsensitive(t *testing.T) {
	out := runSession(t, testContainer(),
		"1", "Buy Milk", "", "2", "",
		"5", "MILK", "",
		"7",
	)

	assert.Contains(t, out, "Found 1 matching task(s):")
	assert.Contains(t, out, "1. Buy Milk")
}

func TestSession_Statistics_Empty(t *testing.T) {
	out := runSession(t, testContainer(),
		"6", "",
		"7",
	)

	assert.Contains(t, out, "Total tasks:         0")
	assert.Contains(t, out, "Completion rate:     0.0%")
	assert.Contains(t, out, "You can do it!")
}

// Full scenario: two adds, a high-priority listing, a completion,
// statistics at 50%, a removal, and a final listing.
func TestSession_Scenario(t *testing.T) {
	c := testContainer()
	out := runSession(t, c,
		"1", "Write report", "", "3", "",
		"1", "Call Bob", "re: report", "1", "",
		"4", "4", "",
		"3", "1", "",
		"6", "",
		"2", "2", "",
		"4", "1", "",
		"7",
	)

	assert.Contains(t, out, "Added task #1: Write report")
	assert.Contains(t, out, "Added task #2: Call Bob")

	// High-priority listing contains only task 1; task 2 is never
	// listed (filtered out first, removed before the final listing).
	assert.Contains(t, out, "High Priority Tasks:")
	assert.NotContains(t, out, "ID: 2")

	assert.Contains(t, out, "Task #1 marked as completed: Write report")

	assert.Contains(t, out, "Total tasks:         2")
	assert.Contains(t, out, "Completed tasks:     1")
	assert.Contains(t, out, "Pending tasks:       1")
	assert.Contains(t, out, "High priority tasks: 1")
	assert.Contains(t, out, "Completion rate:     50.0%")
	assert.Contains(t, out, "Keep going!")

	assert.Contains(t, out, "Removed task #2: Call Bob")

	// Final listing shows only the completed task 1 with its marker.
	assert.Contains(t, out, "1. ✓ Write report")

	tasks, err := c.Tasks.List(domain.FilterAll)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, 1, tasks[0].ID)
	assert.True(t, tasks[0].Completed)
}

func TestSession_EOFEndsLoop(t *testing.T) {
	c := testContainer()
	var out bytes.Buffer
	session := NewSession(c, strings.NewReader(""), &out)

	require.NoError(t, session.Run(context.Background()))
	assert.Contains(t, out.String(), "Enter your choice: ")
}
