package view

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"mdnsbrowse/internal/tui/components"
	"mdnsbrowse/internal/tui/model"
	"mdnsbrowse/internal/tui/utils"
)

// Used until the first WindowSizeMsg arrives.
const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Render renders the UI according to the current model state.
func Render(m *model.Model) string {
	if m.Quitting {
		return ""
	}

	width, height := m.Width, m.Height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}

	header := renderHeader(m, width)
	status := renderStatusBar(m, width)
	help := renderHelp(m, width)

	rows := height - lipgloss.Height(header) - lipgloss.Height(status) - lipgloss.Height(help)
	body := renderBody(m, width, rows)

	parts := []string{header}
	if body != "" {
		parts = append(parts, body)
	}
	parts = append(parts, status, help)
	return strings.Join(parts, "\n")
}

// pulseLit reports whether the header glyph is lit: on even seconds since start.
func pulseLit(elapsed time.Duration) bool {
	return int64(elapsed/time.Second)%2 == 0
}

func renderHeader(m *model.Model, width int) string {
	return components.NewHeader(m.Title).
		WithWidth(width).
		WithPulse(pulseLit(m.Elapsed())).
		WithRightContent(m.ServiceType).
		Render()
}

func renderBody(m *model.Model, width, rows int) string {
	if rows <= 0 {
		return ""
	}
	lines := bodyLines(m)

	start, end := 0, len(lines)
	if _, isDetail := m.View.(model.DetailView); !isDetail && m.Registry != nil {
		start, end = listWindow(len(lines), m.Registry.Selected(), rows)
	} else if end > rows {
		end = rows
	}

	out := make([]string, 0, rows)
	for _, l := range lines[start:end] {
		out = append(out, renderLine(l, width))
	}
	for len(out) < rows {
		out = append(out, "")
	}
	return strings.Join(out, "\n")
}

// renderLine truncates the plain row to width, then styles the marker and the
// text independently.
func renderLine(l line, width int) string {
	plain := utils.TruncateString(l.plain(), width)
	if l.marker == "" {
		return l.style.Render(plain)
	}
	rest, ok := strings.CutPrefix(plain, l.marker)
	if !ok || rest == "" {
		return l.markerStyle.Render(plain)
	}
	return l.markerStyle.Render(l.marker) + l.style.Render(rest)
}

func renderStatusBar(m *model.Model, width int) string {
	count, dropped := 0, 0
	if m.Registry != nil {
		count, dropped = m.Registry.Len(), m.Registry.Dropped()
	}
	left := components.FormatRecordCount(count, dropped)
	if logs := components.FormatDroppedLogs(m.DroppedLogLines); logs != "" {
		left += ", " + logs
	}
	return components.NewStatusBar(width).
		WithLeftText(left).
		WithRightText(m.LastActivity()).
		WithMessage(m.StatusBarMessage, m.StatusBarMessageType).
		Render()
}

func renderHelp(m *model.Model, width int) string {
	h := m.Help
	h.Width = width
	if h.ShowAll {
		return h.FullHelpView(m.Keys.FullHelpFor(m.View))
	}
	return h.ShortHelpView(m.Keys.ShortHelpFor(m.View))
}
