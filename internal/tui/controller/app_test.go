package controller

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mdnsbrowse/internal/tui/model"
)

func TestNewAppModel(t *testing.T) {
	m := &model.Model{Width: 80, Height: 24}
	app := NewAppModel(m)
	assert.Same(t, m, app.Model())
}

func TestAppModel_Init(t *testing.T) {
	app := NewAppModel(newTestModel())
	assert.NotNil(t, app.Init())
}

func TestAppModel_Update_WindowSizeMsg(t *testing.T) {
	app := NewAppModel(newTestModel())

	updated, cmd := app.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.Nil(t, cmd)

	updatedApp, ok := updated.(AppModel)
	require.True(t, ok)
	assert.Equal(t, 100, updatedApp.Model().Width)
	assert.Equal(t, 30, updatedApp.Model().Height)
}

func TestAppModel_View(t *testing.T) {
	app := NewAppModel(newTestModel("A"))
	out := app.View()
	assert.Contains(t, out, "[x] A")

	updated, _ := app.Update(keyMsg(tea.KeyEnter))
	out = updated.View()
	assert.Contains(t, out, "Hostname:")
	assert.False(t, strings.Contains(out, "[x] A"))
}
