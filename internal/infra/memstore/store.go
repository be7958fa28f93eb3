// Package memstore provides an in-memory implementation of TaskRepository.
// State lives for one process run; nothing is ever written to disk.
package memstore

import (
	"strings"
	"sync"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// Ensure Store implements domain.TaskRepository.
var _ domain.TaskRepository = (*Store)(nil)

// Store implements domain.TaskRepository with an ordered slice.
// Insertion order is significant: every listing operation returns tasks
// in the order they were added, regardless of completions or removals.
type Store struct {
	mu     sync.RWMutex
	tasks  []domain.Task
	nextID int
}

// New creates an empty Store. IDs start at 1 and are never reused.
func New() *Store {
	return &Store{nextID: 1}
}

// Get retrieves a task by ID.
func (s *Store) Get(id int) (domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return domain.Task{}, domain.ErrTaskNotFound
}

// List retrieves tasks matching the filter, in insertion order.
func (s *Store) List(filter domain.Filter) ([]domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tasks := make([]domain.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if filter.Matches(t) {
			tasks = append(tasks, t)
		}
	}
	return tasks, nil
}

// Search retrieves tasks whose title or description contains the query,
// case-insensitively, in insertion order. An empty query matches every
// task; callers guard against that at the boundary.
func (s *Store) Search(query string) ([]domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(query)
	var tasks []domain.Task
	for _, t := range s.tasks {
		if strings.Contains(strings.ToLower(t.Title), q) ||
			strings.Contains(strings.ToLower(t.Description), q) {
			tasks = append(tasks, t)
		}
	}
	return tasks, nil
}

// Add assigns the next ID, appends the task, and returns the stored copy.
func (s *Store) Add(task domain.Task) (domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task.ID = s.nextID
	s.nextID++
	s.tasks = append(s.tasks, task)
	return task, nil
}

// Replace swaps the stored task with the same ID for the given copy.
// The slot position is kept, so listing order does not change.
func (s *Store) Replace(task domain.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, t := range s.tasks {
		if t.ID == task.ID {
			s.tasks[i] = task
			return nil
		}
	}
	return domain.ErrTaskNotFound
}

// Delete removes a task by ID, preserving the order of the survivors.
func (s *Store) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, t := range s.tasks {
		if t.ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return nil
		}
	}
	return domain.ErrTaskNotFound
}

// Stats computes aggregate counts in a single scan.
func (s *Store) Stats() (domain.Statistics, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var stats domain.Statistics
	for _, t := range s.tasks {
		stats.Total++
		if t.Completed {
			stats.Completed++
		} else {
			stats.Pending++
		}
		if t.Priority == domain.PriorityHigh {
			stats.HighPriority++
		}
	}
	return stats, nil
}
