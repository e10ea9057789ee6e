package controller

import (
	tea "github.com/charmbracelet/bubbletea"

	"mdnsbrowse/internal/tui/model"
)

// handleWindowSizeMsg updates the model with the new terminal dimensions when the window is resized.
func handleWindowSizeMsg(m *model.Model, msg tea.WindowSizeMsg) (*model.Model, tea.Cmd) {
	m.Width = msg.Width
	m.Height = msg.Height
	m.Help.Width = msg.Width
	return m, nil
}
