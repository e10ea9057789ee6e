package components

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"mdnsbrowse/internal/tui/design"
	"mdnsbrowse/internal/tui/utils"
)

// Pulse glyphs shown next to the title on even and odd seconds.
const (
	PulseOn  = "●"
	PulseOff = "○"
)

// Header represents the application header
type Header struct {
	Title        string
	Width        int
	RightContent string
	ShowPulse    bool
	PulseLit     bool
}

// NewHeader creates a new header
func NewHeader(title string) *Header {
	return &Header{
		Title: title,
		Width: 80, // Default width
	}
}

// WithPulse shows the liveness glyph, lit or dimmed.
func (h *Header) WithPulse(lit bool) *Header {
	h.ShowPulse = true
	h.PulseLit = lit
	return h
}

// WithRightContent adds content to the right side
func (h *Header) WithRightContent(content string) *Header {
	h.RightContent = content
	return h
}

// WithWidth sets the header width
func (h *Header) WithWidth(width int) *Header {
	h.Width = width
	return h
}

// Render returns the styled header. Text is measured and truncated before
// styling so escape sequences never count towards the width.
func (h *Header) Render() string {
	available := h.Width - design.SpaceSM*2
	if available < 1 {
		available = 1
	}

	var prefix string
	prefixWidth := 0
	if h.ShowPulse {
		glyph := design.PulseOffStyle.Render(PulseOff)
		if h.PulseLit {
			glyph = design.PulseOnStyle.Render(PulseOn)
		}
		prefix = glyph + " "
		prefixWidth = runewidth.StringWidth(PulseOn) + 1
	}

	title := utils.TruncateString(h.Title, available-prefixWidth)
	leftWidth := prefixWidth + runewidth.StringWidth(title)
	content := prefix + title

	if h.RightContent != "" {
		rightWidth := runewidth.StringWidth(h.RightContent)
		if leftWidth+rightWidth+2 <= available {
			padding := available - leftWidth - rightWidth
			content += strings.Repeat(" ", padding) + design.TextSecondaryStyle.Render(h.RightContent)
		}
	}

	return design.HeaderStyle.
		Width(h.Width).
		MaxWidth(h.Width).
		Render(content)
}
