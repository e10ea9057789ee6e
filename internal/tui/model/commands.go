package model

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"mdnsbrowse/pkg/logging"
)

// TickCmd schedules the next redraw tick.
func TickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// ChannelReaderCmd waits for the next log entry. The handler must issue it
// again after each NewLogEntryMsg to keep listening.
func ChannelReaderCmd(ch <-chan logging.LogEntry) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		entry, ok := <-ch
		if !ok {
			return LogChannelClosedMsg{}
		}
		return NewLogEntryMsg{Entry: entry}
	}
}
