package model

import (
	"errors"
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mdnsbrowse/internal/registry"
	"mdnsbrowse/pkg/logging"
)

func TestInitialModel(t *testing.T) {
	reg := registry.New(0)
	m := InitialModel(reg, Options{Title: "Browser", ServiceType: "_http._tcp"}, nil)

	assert.Equal(t, ListView{}, m.View)
	assert.Same(t, reg, m.Registry)
	assert.Equal(t, defaultRefreshInterval, m.RefreshInterval)
	assert.Equal(t, "_http._tcp", m.ServiceType)
	assert.Zero(t, m.Elapsed())
	assert.NotNil(t, m.Init())
}

func TestKeyMap_EventFor(t *testing.T) {
	keys := DefaultKeyMap()
	tests := []struct {
		msg  tea.KeyMsg
		want KeyEvent
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, KeyUp},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")}, KeyUp},
		{tea.KeyMsg{Type: tea.KeyDown}, KeyDown},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")}, KeyDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, KeyEnter},
		{tea.KeyMsg{Type: tea.KeyEsc}, KeyEsc},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, KeyOther},
		{tea.KeyMsg{Type: tea.KeyTab}, KeyOther},
	}

	for _, tt := range tests {
		t.Run(tt.msg.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, keys.EventFor(tt.msg))
		})
	}
}

func TestKeyMap_HelpDependsOnView(t *testing.T) {
	keys := DefaultKeyMap()

	list := keys.ShortHelpFor(ListView{})
	detail := keys.ShortHelpFor(DetailView{})

	assert.Equal(t, "quit", list[3].Help().Desc)
	assert.Equal(t, "back", detail[0].Help().Desc)
	assert.Equal(t, "quit", keys.Esc.Help().Desc, "the shared binding must not change")
	assert.Len(t, keys.FullHelpFor(DetailView{}), 2)
}

func TestAddRawLineToActivityLog_Caps(t *testing.T) {
	m := &Model{}
	assert.Empty(t, m.LastActivity())

	for i := 0; i < MaxActivityLogLines+10; i++ {
		AddRawLineToActivityLog(m, fmt.Sprintf("line %d", i))
	}
	assert.Len(t, m.ActivityLog, MaxActivityLogLines)
	assert.Equal(t, fmt.Sprintf("line %d", MaxActivityLogLines+9), m.LastActivity())
}

func TestSetStatusMessage_IncrementsID(t *testing.T) {
	m := &Model{}
	cmd := m.SetStatusMessage("copied", StatusBarSuccess, time.Millisecond)
	require.NotNil(t, cmd)
	assert.Equal(t, "copied", m.StatusBarMessage)
	assert.Equal(t, StatusBarSuccess, m.StatusBarMessageType)

	msg := cmd()
	assert.Equal(t, ClearStatusBarMsg{ID: 1}, msg)

	m.SetStatusMessage("again", StatusBarError, time.Millisecond)
	assert.Equal(t, 2, m.StatusBarMessageID)
}

func TestChannelReaderCmd(t *testing.T) {
	assert.Nil(t, ChannelReaderCmd(nil))

	ch := make(chan logging.LogEntry, 1)
	entry := logging.LogEntry{Level: logging.LevelError, Subsystem: "Feed", Message: "x", Err: errors.New("y")}
	ch <- entry
	assert.Equal(t, NewLogEntryMsg{Entry: entry}, ChannelReaderCmd(ch)())

	close(ch)
	assert.Equal(t, LogChannelClosedMsg{}, ChannelReaderCmd(ch)())
}

func TestElapsed(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	m := &Model{StartedAt: start, Now: start.Add(3 * time.Second)}
	assert.Equal(t, 3*time.Second, m.Elapsed())

	m.Now = start.Add(-time.Second)
	assert.Zero(t, m.Elapsed())
}
