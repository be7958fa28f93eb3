package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/usecase"
)

// Update handles incoming messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case ModeInputTitle, ModeInputDesc, ModeSearch:
		return m.handleInputKey(msg)
	case ModeInputPriority:
		return m.handlePriorityKey(msg)
	case ModeConfirmDelete:
		return m.handleConfirmKey(msg)
	default:
		return m.handleNormalKey(msg)
	}
}

func (m *Model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notice = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.tasks)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.New):
		m.mode = ModeInputTitle
		m.input.Placeholder = "Task title"
		m.input.SetValue("")
		m.input.Focus()

	case key.Matches(msg, m.keys.Complete):
		if task, ok := m.selected(); ok {
			out, err := m.container.CompleteTaskUseCase().
				Execute(context.Background(), usecase.CompleteTaskInput{TaskID: task.ID})
			if err != nil {
				m.err = err
			} else {
				m.notice = fmt.Sprintf("Completed #%d", out.Task.ID)
				m.refresh()
			}
		}

	case key.Matches(msg, m.keys.Delete):
		if _, ok := m.selected(); ok {
			m.mode = ModeConfirmDelete
		}

	case key.Matches(msg, m.keys.Filter):
		m.filter = nextFilter(m.filter)
		m.query = ""
		m.cursor = 0
		m.refresh()

	case key.Matches(msg, m.keys.Search):
		m.mode = ModeSearch
		m.input.Placeholder = "Search tasks"
		m.input.SetValue(m.query)
		m.input.Focus()

	case key.Matches(msg, m.keys.Escape):
		if m.query != "" {
			m.query = ""
			m.cursor = 0
			m.refresh()
		}

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

func (m *Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal
		m.input.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		value := m.input.Value()
		switch m.mode {
		case ModeInputTitle:
			if value == "" {
				m.notice = "Title cannot be empty"
				m.mode = ModeNormal
				m.input.Blur()
				return m, nil
			}
			m.draftTitle = value
			m.mode = ModeInputDesc
			m.input.Placeholder = "Description (optional)"
			m.input.SetValue("")
		case ModeInputDesc:
			m.draftDesc = value
			m.mode = ModeInputPriority
			m.input.Blur()
		case ModeSearch:
			m.query = value
			m.mode = ModeNormal
			m.cursor = 0
			m.input.Blur()
			m.refresh()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handlePriorityKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var priority domain.Priority
	switch msg.String() {
	case "1", "l":
		priority = domain.PriorityLow
	case "2", "m":
		priority = domain.PriorityMedium
	case "3", "h":
		priority = domain.PriorityHigh
	case "esc":
		m.mode = ModeNormal
		return m, nil
	default:
		return m, nil
	}

	out, err := m.container.AddTaskUseCase().Execute(context.Background(), usecase.AddTaskInput{
		Title:       m.draftTitle,
		Description: m.draftDesc,
		Priority:    priority,
	})
	if err != nil {
		m.err = err
	} else {
		m.notice = fmt.Sprintf("Added #%d", out.Task.ID)
	}

	m.draftTitle = ""
	m.draftDesc = ""
	m.mode = ModeNormal
	m.refresh()
	return m, nil
}

func (m *Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		if task, ok := m.selected(); ok {
			out, err := m.container.RemoveTaskUseCase().
				Execute(context.Background(), usecase.RemoveTaskInput{TaskID: task.ID})
			if err != nil {
				m.err = err
			} else {
				m.notice = fmt.Sprintf("Removed #%d", out.Task.ID)
			}
		}
		m.mode = ModeNormal
		m.refresh()
	case "n", "esc":
		m.mode = ModeNormal
	}
	return m, nil
}

// nextFilter cycles through the filters in display order.
func nextFilter(f domain.Filter) domain.Filter {
	switch f {
	case domain.FilterAll:
		return domain.FilterCompleted
	case domain.FilterCompleted:
		return domain.FilterPending
	case domain.FilterPending:
		return domain.FilterHighPriority
	default:
		return domain.FilterAll
	}
}
