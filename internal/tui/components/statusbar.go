package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"mdnsbrowse/internal/tui/design"
	"mdnsbrowse/internal/tui/model"
	"mdnsbrowse/internal/tui/utils"
)

// StatusBar represents the bottom status bar
type StatusBar struct {
	Width       int
	Message     string
	MessageType model.MessageType
	LeftText    string
	RightText   string
	ShowMessage bool
}

// NewStatusBar creates a new status bar
func NewStatusBar(width int) *StatusBar {
	return &StatusBar{Width: width}
}

// WithMessage sets a status message
func (s *StatusBar) WithMessage(message string, msgType model.MessageType) *StatusBar {
	s.Message = message
	s.MessageType = msgType
	s.ShowMessage = message != ""
	return s
}

// WithLeftText sets the left side text
func (s *StatusBar) WithLeftText(text string) *StatusBar {
	s.LeftText = text
	return s
}

// WithRightText sets the right side text
func (s *StatusBar) WithRightText(text string) *StatusBar {
	s.RightText = text
	return s
}

// Render returns the styled status bar. The left text always stays visible;
// the right side is truncated to whatever room is left.
func (s *StatusBar) Render() string {
	available := s.Width - design.SpaceSM*2
	if available < 1 {
		available = 1
	}

	right := s.RightText
	if s.ShowMessage {
		right = s.Message
	}

	left := utils.TruncateString(s.LeftText, available)
	content := left
	room := available - runewidth.StringWidth(left) - 2
	if right != "" && room > 0 {
		right = utils.TruncateString(right, room)
		padding := available - runewidth.StringWidth(left) - runewidth.StringWidth(right)
		content = left + strings.Repeat(" ", padding) + right
	}

	return s.getStyle().
		Width(s.Width).
		MaxWidth(s.Width).
		Render(content)
}

// getStyle returns the appropriate style based on message type
func (s *StatusBar) getStyle() lipgloss.Style {
	if !s.ShowMessage {
		return design.StatusBarStyle
	}
	switch s.MessageType {
	case model.StatusBarSuccess:
		return design.StatusBarSuccessStyle
	case model.StatusBarError:
		return design.StatusBarErrorStyle
	case model.StatusBarWarning:
		return design.StatusBarWarningStyle
	default:
		return design.StatusBarInfoStyle
	}
}

// FormatRecordCount formats the registry size for the status bar.
func FormatRecordCount(count, dropped int) string {
	noun := "services"
	if count == 1 {
		noun = "service"
	}
	result := fmt.Sprintf("%d %s", count, noun)
	if dropped > 0 {
		result += fmt.Sprintf(" (%d dropped)", dropped)
	}
	return result
}

// FormatDroppedLogs reports activity lines lost to a full log channel. It is
// empty while nothing has been lost.
func FormatDroppedLogs(dropped int64) string {
	switch {
	case dropped <= 0:
		return ""
	case dropped == 1:
		return "1 log line dropped"
	default:
		return fmt.Sprintf("%d log lines dropped", dropped)
	}
}
