package tui

import "github.com/charmbracelet/lipgloss"

// Colors defines the color palette for the TUI.
var Colors = struct {
	Primary    lipgloss.Color
	Muted      lipgloss.Color
	Error      lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	TitleText  lipgloss.Color
	SelectedBg lipgloss.Color
}{
	Primary:    lipgloss.Color("#6C5CE7"), // Purple
	Muted:      lipgloss.Color("#636E72"), // Gray
	Error:      lipgloss.Color("#D63031"), // Red
	Success:    lipgloss.Color("#00B894"), // Green
	Warning:    lipgloss.Color("#FDCB6E"), // Yellow
	TitleText:  lipgloss.Color("#DFE6E9"), // Light gray
	SelectedBg: lipgloss.Color("#2D3436"), // Dark gray
}

// Styles contains all the lipgloss styles for the TUI.
type Styles struct {
	App    lipgloss.Style
	Header lipgloss.Style

	TaskNormal   lipgloss.Style
	TaskSelected lipgloss.Style
	TaskDone     lipgloss.Style
	TaskID       lipgloss.Style
	TaskDesc     lipgloss.Style

	BadgeHigh   lipgloss.Style
	BadgeMedium lipgloss.Style
	BadgeLow    lipgloss.Style
	BadgeDone   lipgloss.Style

	InputPrompt lipgloss.Style
	Notice      lipgloss.Style
	ErrorMsg    lipgloss.Style
	StatusLine  lipgloss.Style
}

// NewStyles creates the style set. The accent color comes from the
// ui.accent_color config setting.
func NewStyles(accent string) Styles {
	accentColor := Colors.Primary
	if accent != "" {
		accentColor = lipgloss.Color(accent)
	}

	return Styles{
		App:    lipgloss.NewStyle().Padding(1, 2),
		Header: lipgloss.NewStyle().Bold(true).Foreground(accentColor),

		TaskNormal:   lipgloss.NewStyle().Foreground(Colors.TitleText),
		TaskSelected: lipgloss.NewStyle().Foreground(Colors.Warning).Background(Colors.SelectedBg).Bold(true),
		TaskDone:     lipgloss.NewStyle().Foreground(Colors.Muted).Strikethrough(true),
		TaskID:       lipgloss.NewStyle().Foreground(Colors.Muted),
		TaskDesc:     lipgloss.NewStyle().Foreground(Colors.Muted),

		BadgeHigh:   lipgloss.NewStyle().Foreground(Colors.Error).Bold(true),
		BadgeMedium: lipgloss.NewStyle().Foreground(Colors.Warning),
		BadgeLow:    lipgloss.NewStyle().Foreground(Colors.Muted),
		BadgeDone:   lipgloss.NewStyle().Foreground(Colors.Success),

		InputPrompt: lipgloss.NewStyle().Foreground(accentColor).Bold(true),
		Notice:      lipgloss.NewStyle().Foreground(Colors.Success),
		ErrorMsg:    lipgloss.NewStyle().Foreground(Colors.Error),
		StatusLine:  lipgloss.NewStyle().Foreground(Colors.Muted),
	}
}
