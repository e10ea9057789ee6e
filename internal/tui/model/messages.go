package model

import (
	"time"

	"mdnsbrowse/pkg/logging"
)

// TickMsg drives the periodic redraw.
type TickMsg time.Time

// NewLogEntryMsg carries one entry from the logging channel.
type NewLogEntryMsg struct {
	Entry logging.LogEntry
}

// LogChannelClosedMsg is sent once the logging channel has been closed.
type LogChannelClosedMsg struct{}

// ClearStatusBarMsg clears the status message with the same ID.
type ClearStatusBarMsg struct {
	ID int
}

// ClipboardResultMsg reports the outcome of copying a record's details.
type ClipboardResultMsg struct {
	Name string
	Err  error
}
