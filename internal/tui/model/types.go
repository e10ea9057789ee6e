package model

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"mdnsbrowse/internal/registry"
	"mdnsbrowse/pkg/logging"
)

// ViewState is what the browser currently shows. It is either ListView or
// DetailView; the unexported method keeps the set closed.
type ViewState interface {
	viewState()
	String() string
}

// ListView shows every discovered service with the current selection marked.
type ListView struct{}

// DetailView shows a single service. Snapshot is a copy taken when the view
// was opened and is never refreshed from the registry.
type DetailView struct {
	Snapshot registry.ServiceRecord
}

func (ListView) viewState()   {}
func (DetailView) viewState() {}

func (ListView) String() string   { return "ListView" }
func (DetailView) String() string { return "DetailView" }

// MessageType represents the type of status bar message
type MessageType int

const (
	StatusBarInfo MessageType = iota
	StatusBarSuccess
	StatusBarError
	StatusBarWarning
)

// Constants for UI
const (
	MaxActivityLogLines = 200
)

// Options configures a new Model.
type Options struct {
	Title           string
	ServiceType     string
	RefreshInterval time.Duration
}

// Model is the state of the browser UI. The registry is shared with the
// discovery feed; everything else is owned by the UI loop.
type Model struct {
	// Terminal dimensions
	Width  int
	Height int

	Registry *registry.Registry
	View     ViewState

	Title           string
	ServiceType     string
	RefreshInterval time.Duration
	StartedAt       time.Time
	Now             time.Time
	Quitting        bool

	// UI State & Output
	ActivityLog          []string
	Keys                 KeyMap
	Help                 help.Model
	StatusBarMessage     string
	StatusBarMessageType MessageType
	StatusBarMessageID   int

	// Logging
	LogChannel <-chan logging.LogEntry
	// Activity lines lost because the log channel was full, as of the last tick.
	DroppedLogLines int64
}

// Elapsed returns the time since the browser started, as of the last tick.
func (m *Model) Elapsed() time.Duration {
	if m.Now.Before(m.StartedAt) {
		return 0
	}
	return m.Now.Sub(m.StartedAt)
}

// SetStatusMessage shows message in the status bar and returns a command that
// clears it after clearAfter unless a newer message replaced it first.
func (m *Model) SetStatusMessage(message string, msgType MessageType, clearAfter time.Duration) tea.Cmd {
	m.StatusBarMessage = message
	m.StatusBarMessageType = msgType
	m.StatusBarMessageID++
	id := m.StatusBarMessageID

	return tea.Tick(clearAfter, func(t time.Time) tea.Msg {
		return ClearStatusBarMsg{ID: id}
	})
}
