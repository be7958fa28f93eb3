package tui

// Mode represents the current input mode of the TUI.
type Mode int

const (
	// ModeNormal is the default browsing mode.
	ModeNormal Mode = iota
	// ModeInputTitle is entering the title for a new task.
	ModeInputTitle
	// ModeInputDesc is entering the description for a new task.
	ModeInputDesc
	// ModeInputPriority is choosing a priority for a new task.
	ModeInputPriority
	// ModeSearch is entering a search query.
	ModeSearch
	// ModeConfirmDelete is confirming deletion of the selected task.
	ModeConfirmDelete
)

// IsInput returns true for modes that route keystrokes to a text input.
func (m Mode) IsInput() bool {
	return m == ModeInputTitle || m == ModeInputDesc || m == ModeSearch
}
