package model

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"mdnsbrowse/internal/registry"
	"mdnsbrowse/pkg/logging"
)

const defaultRefreshInterval = 100 * time.Millisecond

// InitialModel creates the browser model in ListView.
func InitialModel(reg *registry.Registry, opts Options, logChannel <-chan logging.LogEntry) *Model {
	if opts.RefreshInterval <= 0 {
		opts.RefreshInterval = defaultRefreshInterval
	}
	now := time.Now()
	return &Model{
		Registry:        reg,
		View:            ListView{},
		Title:           opts.Title,
		ServiceType:     opts.ServiceType,
		RefreshInterval: opts.RefreshInterval,
		StartedAt:       now,
		Now:             now,
		Keys:            DefaultKeyMap(),
		Help:            help.New(),
		LogChannel:      logChannel,
	}
}

// Init starts the redraw ticker and, in TUI logging mode, the log listener.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		TickCmd(m.RefreshInterval),
		ChannelReaderCmd(m.LogChannel),
	)
}
