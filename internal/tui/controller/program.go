package controller

import (
	tea "github.com/charmbracelet/bubbletea"

	"mdnsbrowse/internal/tui/model"
)

// NewProgram creates the Bubble Tea program for the browser in the alternate
// screen. Extra options are appended, which tests use to swap the terminal.
func NewProgram(m *model.Model, opts ...tea.ProgramOption) *tea.Program {
	app := NewAppModel(m)
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	return tea.NewProgram(app, opts...)
}
