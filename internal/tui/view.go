package tui

import (
	"fmt"
	"strings"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// View renders the task board.
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(m.styles.ErrorMsg.Render("Error: "+m.err.Error()) + "\n\n")
	}

	switch m.mode {
	case ModeInputTitle, ModeInputDesc:
		b.WriteString(m.styles.InputPrompt.Render("New task: "))
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
	case ModeInputPriority:
		b.WriteString(m.styles.InputPrompt.Render("Priority: "))
		b.WriteString("1=Low  2=Medium  3=High  (esc to cancel)")
		b.WriteString("\n\n")
	case ModeSearch:
		b.WriteString(m.styles.InputPrompt.Render("Search: "))
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
	case ModeConfirmDelete:
		if task, ok := m.selected(); ok {
			b.WriteString(m.styles.ErrorMsg.Render(
				fmt.Sprintf("Delete task #%d %q? (y/n)", task.ID, task.Title)))
			b.WriteString("\n\n")
		}
	}

	b.WriteString(m.viewTaskList())
	b.WriteString("\n")

	if m.notice != "" {
		b.WriteString(m.styles.Notice.Render(m.notice) + "\n")
	}

	b.WriteString(m.viewStatusLine())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return m.styles.App.Render(b.String())
}

func (m *Model) viewHeader() string {
	title := "Taskdeck"
	if m.query != "" {
		title += fmt.Sprintf(" — search: %q", m.query)
	} else if m.filter != domain.FilterAll {
		title += " — " + m.filter.Display()
	}
	return m.styles.Header.Render(title)
}

func (m *Model) viewTaskList() string {
	if len(m.tasks) == 0 {
		return m.styles.TaskDesc.Render("No tasks. Press 'a' to add one.") + "\n"
	}

	var b strings.Builder
	for i, t := range m.tasks {
		cursor := "  "
		style := m.styles.TaskNormal
		if i == m.cursor {
			cursor = "> "
			style = m.styles.TaskSelected
		} else if t.Completed {
			style = m.styles.TaskDone
		}

		line := fmt.Sprintf("%s%s %s %s",
			cursor,
			m.styles.TaskID.Render(fmt.Sprintf("#%d", t.ID)),
			style.Render(t.DisplayTitle()),
			m.badge(t),
		)
		b.WriteString(line + "\n")

		if i == m.cursor && t.Description != "" {
			b.WriteString("     " + m.styles.TaskDesc.Render(t.Description) + "\n")
		}
	}
	return b.String()
}

// badge renders the status label with a priority-dependent style.
func (m *Model) badge(t domain.Task) string {
	label := "[" + t.Status() + "]"
	if t.Completed {
		return m.styles.BadgeDone.Render(label)
	}
	switch t.Priority {
	case domain.PriorityHigh:
		return m.styles.BadgeHigh.Render(label)
	case domain.PriorityLow:
		return m.styles.BadgeLow.Render(label)
	default:
		return m.styles.BadgeMedium.Render(label)
	}
}

func (m *Model) viewStatusLine() string {
	return m.styles.StatusLine.Render(fmt.Sprintf(
		"%d tasks · %d completed · %d pending · %d high priority · %.1f%% done",
		m.stats.Total,
		m.stats.Completed,
		m.stats.Pending,
		m.stats.HighPriority,
		m.stats.CompletionPercentage(),
	))
}
