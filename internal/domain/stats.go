package domain

// Statistics is a snapshot of aggregate task counts.
// Invariant: Completed + Pending == Total.
type Statistics struct {
	Total        int // All tasks
	Completed    int // Tasks marked completed
	Pending      int // Tasks not yet completed
	HighPriority int // Tasks with high priority, completed or not
}

// CompletionPercentage returns completed tasks as a percentage of total,
// 0.0 when there are no tasks. Computed on every call, never stored.
func (s Statistics) CompletionPercentage() float64 {
	if s.Total == 0 {
		return 0.0
	}
	return float64(s.Completed) / float64(s.Total) * 100
}

// ProductivityMessage returns a qualitative message for the current
// completion percentage.
func (s Statistics) ProductivityMessage() string {
	switch pct := s.CompletionPercentage(); {
	case pct >= 80:
		return "Excellent productivity!"
	case pct >= 60:
		return "Good progress!"
	case pct >= 40:
		return "Keep going!"
	default:
		return "You can do it!"
	}
}
