// Package domain contains core business entities and interfaces.
package domain

import "time"

// completedMarker prefixes the display title of a completed task.
const completedMarker = "✓ "

// Task represents one unit of work tracked by taskdeck.
// Tasks are value types: completion replaces the stored value with a
// modified copy, fields are never mutated in place.
type Task struct {
	Created     time.Time // Creation time, never changes
	Title       string    // Title (required, non-empty enforced by callers)
	Description string    // Description (optional)
	Priority    Priority  // Importance level
	ID          int       // Unique ID assigned by the store, never reused
	Completed   bool      // Completion flag, only field that ever changes
}

// DisplayTitle returns the title, prefixed with a completion marker
// when the task is completed. Computed on every call, never stored.
func (t Task) DisplayTitle() string {
	if t.Completed {
		return completedMarker + t.Title
	}
	return t.Title
}

// Status returns a human-readable status label. Completion always wins
// over the priority-derived label.
func (t Task) Status() string {
	if t.Completed {
		return "Completed"
	}
	switch t.Priority {
	case PriorityHigh:
		return "High Priority"
	case PriorityLow:
		return "Low Priority"
	default:
		return "Medium Priority"
	}
}

// Complete returns a copy of the task marked completed. Completing an
// already-completed task yields an identical copy.
func (t Task) Complete() Task {
	t.Completed = true
	return t
}
