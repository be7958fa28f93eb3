package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestView_Empty(t *testing.T) {
	m := newTestModel(t)

	view := m.View()
	assert.Contains(t, view, "Taskdeck")
	assert.Contains(t, view, "No tasks. Press 'a' to add one.")
	assert.Contains(t, view, "0 tasks")
}

func TestView_LoadingBeforeWindowSize(t *testing.T) {
	m := New(testContainer())
	assert.Equal(t, "Loading...", m.View())
}

func TestView_ListsTasks(t *testing.T) {
	m := newTestModel(t, "Write report", "Call Bob")

	view := m.View()
	assert.Contains(t, view, "#1")
	assert.Contains(t, view, "Write report")
	assert.Contains(t, view, "#2")
	assert.Contains(t, view, "Call Bob")
	assert.Contains(t, view, "2 tasks")
	assert.Contains(t, view, "0.0% done")
}

func TestView_ConfirmDeletePrompt(t *testing.T) {
	m := newTestModel(t, "Write report")

	m.Update(keyRunes("d"))
	view := m.View()
	assert.Contains(t, view, `Delete task #1 "Write report"? (y/n)`)
}

func TestView_StatusLineTracksStats(t *testing.T) {
	m := newTestModel(t, "one", "two")

	m.Update(keyRunes("c"))
	view := m.View()
	assert.Contains(t, view, "1 completed")
	assert.Contains(t, view, "1 pending")
	assert.Contains(t, view, "50.0% done")
}
