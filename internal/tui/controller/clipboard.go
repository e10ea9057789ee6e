package controller

import (
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"gopkg.in/yaml.v3"

	"mdnsbrowse/internal/registry"
	"mdnsbrowse/internal/tui/model"
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

// copyRecordCmd copies rec as YAML to the system clipboard off the UI loop.
func copyRecordCmd(rec registry.ServiceRecord) tea.Cmd {
	return func() tea.Msg {
		data, err := yaml.Marshal(rec)
		if err == nil {
			err = writeClipboard(string(data))
		}
		return model.ClipboardResultMsg{Name: rec.Name, Err: err}
	}
}
