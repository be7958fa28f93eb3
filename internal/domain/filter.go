package domain

// Filter selects a named subset of tasks when listing.
type Filter string

const (
	FilterAll          Filter = "all"
	FilterCompleted    Filter = "completed"
	FilterPending      Filter = "pending"
	FilterHighPriority Filter = "high_priority"
)

// AllFilters returns all valid filter values.
func AllFilters() []Filter {
	return []Filter{FilterAll, FilterCompleted, FilterPending, FilterHighPriority}
}

// IsValid returns true if the filter is a known valid value.
func (f Filter) IsValid() bool {
	switch f {
	case FilterAll, FilterCompleted, FilterPending, FilterHighPriority:
		return true
	default:
		return false
	}
}

// Display returns a human-readable representation of the filter.
func (f Filter) Display() string {
	switch f {
	case FilterAll:
		return "All"
	case FilterCompleted:
		return "Completed"
	case FilterPending:
		return "Pending"
	case FilterHighPriority:
		return "High Priority"
	default:
		return string(f)
	}
}

// Matches reports whether the task belongs to the subset named by the filter.
// Unknown filters match nothing.
func (f Filter) Matches(t Task) bool {
	switch f {
	case FilterAll:
		return true
	case FilterCompleted:
		return t.Completed
	case FilterPending:
		return !t.Completed
	case FilterHighPriority:
		return t.Priority == PriorityHigh
	default:
		return false
	}
}
