package controller

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"mdnsbrowse/internal/tui/model"
)

// handleKeyMsg applies the controller-level bindings first and hands every
// other key to the view state machine.
func handleKeyMsg(m *model.Model, msg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Quit):
		return quit(m)

	case key.Matches(msg, m.Keys.Help):
		m.Help.ShowAll = !m.Help.ShowAll
		return m, nil

	case key.Matches(msg, m.Keys.Copy):
		if detail, ok := m.View.(model.DetailView); ok {
			return m, copyRecordCmd(detail.Snapshot)
		}
		return m, nil
	}

	next, shouldQuit := model.Dispatch(m.View, m.Keys.EventFor(msg), m.Registry)
	m.View = next
	if shouldQuit {
		return quit(m)
	}
	return m, nil
}

func quit(m *model.Model) (*model.Model, tea.Cmd) {
	m.Quitting = true
	return m, tea.Quit
}
