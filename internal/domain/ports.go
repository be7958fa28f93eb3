package domain

import "time"

// TaskRepository manages the in-memory task collection.
// Implementations preserve insertion order for all listing operations.
type TaskRepository interface {
	// Get retrieves a task by ID. Returns ErrTaskNotFound if absent.
	Get(id int) (Task, error)

	// List retrieves tasks matching the filter, in insertion order.
	List(filter Filter) ([]Task, error)

	// Search retrieves tasks whose title or description contains the
	// query, case-insensitively, in insertion order. An empty query
	// matches every task.
	Search(query string) ([]Task, error)

	// Add assigns the next ID, stores the task, and returns the stored copy.
	Add(task Task) (Task, error)

	// Replace swaps the stored task with the same ID for the given copy.
	// Returns ErrTaskNotFound if no task has that ID.
	Replace(task Task) error

	// Delete removes a task by ID. Returns ErrTaskNotFound if absent.
	Delete(id int) error

	// Stats computes aggregate counts over the full collection.
	Stats() (Statistics, error)
}

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the system time.
type RealClock struct{}

// Now returns the current system time.
func (RealClock) Now() time.Time {
	return time.Now()
}
