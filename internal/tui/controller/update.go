package controller

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"mdnsbrowse/internal/tui/model"
	"mdnsbrowse/pkg/logging"
)

const controllerSubsystem = "Controller"

// statusMessageTTL is how long transient status bar messages stay visible.
const statusMessageTTL = 3 * time.Second

// Update is the central message routing function for the browser. It receives
// every Bubble Tea message, updates the model and returns the follow-up command.
func Update(msg tea.Msg, m *model.Model) (*model.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return handleKeyMsg(m, msg)

	case tea.WindowSizeMsg:
		return handleWindowSizeMsg(m, msg)

	case model.TickMsg:
		// Redraw happens after every message; the tick only has to keep coming.
		m.Now = time.Time(msg)
		m.DroppedLogLines = logging.DroppedTUIEntries()
		return m, model.TickCmd(m.RefreshInterval)

	case model.NewLogEntryMsg:
		model.AddRawLineToActivityLog(m, msg.Entry.String())
		return m, model.ChannelReaderCmd(m.LogChannel)

	case model.LogChannelClosedMsg:
		m.LogChannel = nil
		return m, nil

	case model.ClearStatusBarMsg:
		if msg.ID == m.StatusBarMessageID {
			m.StatusBarMessage = ""
		}
		return m, nil

	case model.ClipboardResultMsg:
		return handleClipboardResultMsg(m, msg)
	}
	return m, nil
}

func handleClipboardResultMsg(m *model.Model, msg model.ClipboardResultMsg) (*model.Model, tea.Cmd) {
	if msg.Err != nil {
		logging.Error(controllerSubsystem, msg.Err, "Failed to copy details of %q", msg.Name)
		return m, m.SetStatusMessage("Copy failed: "+msg.Err.Error(), model.StatusBarError, statusMessageTTL)
	}
	logging.Debug(controllerSubsystem, "Copied details of %q to the clipboard", msg.Name)
	return m, m.SetStatusMessage("Copied details of "+msg.Name, model.StatusBarSuccess, statusMessageTTL)
}
