package design

import (
	"github.com/charmbracelet/lipgloss"
)

// Horizontal padding unit for bars
const SpaceSM = 2

// Color Palette - Semantic colors with consistent light/dark mode support
var (
	// Brand Colors
	ColorPrimary = lipgloss.AdaptiveColor{
		Light: "#5A56E0",
		Dark:  "#7571F9",
	}
	ColorSecondary = lipgloss.AdaptiveColor{
		Light: "#6B7280",
		Dark:  "#9CA3AF",
	}

	// State Colors
	ColorSuccess = lipgloss.AdaptiveColor{
		Light: "#059669",
		Dark:  "#10B981",
	}
	ColorError = lipgloss.AdaptiveColor{
		Light: "#DC2626",
		Dark:  "#EF4444",
	}
	ColorWarning = lipgloss.AdaptiveColor{
		Light: "#D97706",
		Dark:  "#F59E0B",
	}
	ColorInfo = lipgloss.AdaptiveColor{
		Light: "#2563EB",
		Dark:  "#3B82F6",
	}

	// Neutral Colors
	ColorBackground = lipgloss.AdaptiveColor{
		Light: "#FFFFFF",
		Dark:  "#0F0F0F",
	}
	ColorSurface = lipgloss.AdaptiveColor{
		Light: "#F9FAFB",
		Dark:  "#1A1A1A",
	}
	ColorSurfaceAlt = lipgloss.AdaptiveColor{
		Light: "#F3F4F6",
		Dark:  "#262626",
	}

	// Text Colors
	ColorText = lipgloss.AdaptiveColor{
		Light: "#111827",
		Dark:  "#F9FAFB",
	}
	ColorTextSecondary = lipgloss.AdaptiveColor{
		Light: "#6B7280",
		Dark:  "#9CA3AF",
	}
	ColorTextMuted = lipgloss.AdaptiveColor{
		Light: "#9CA3AF",
		Dark:  "#6B7280",
	}

	// Alternating list rows
	ColorRowEven = lipgloss.AdaptiveColor{
		Light: "#0E7490",
		Dark:  "#22D3EE",
	}
	ColorRowOdd = lipgloss.AdaptiveColor{
		Light: "#1D4ED8",
		Dark:  "#93C5FD",
	}
)

// Header Styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Background(ColorSurface).
			Foreground(ColorText).
			Padding(0, SpaceSM)

	// The pulse glyph alternates between these once per second.
	PulseOnStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)

	PulseOffStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	TextSecondaryStyle = lipgloss.NewStyle().
				Foreground(ColorTextSecondary)
)

// Status Bar Styles
var (
	StatusBarStyle = lipgloss.NewStyle().
			Background(ColorSurfaceAlt).
			Foreground(ColorText).
			Padding(0, SpaceSM).
			Height(1)

	StatusBarSuccessStyle = StatusBarStyle.
				Background(ColorSuccess).
				Foreground(ColorBackground)

	StatusBarErrorStyle = StatusBarStyle.
				Background(ColorError).
				Foreground(ColorBackground)

	StatusBarWarningStyle = StatusBarStyle.
				Background(ColorWarning).
				Foreground(ColorBackground)

	StatusBarInfoStyle = StatusBarStyle.
				Background(ColorInfo).
				Foreground(ColorBackground)
)

// List Styles
var (
	ListRowEvenStyle = lipgloss.NewStyle().
				Foreground(ColorRowEven)

	ListRowOddStyle = lipgloss.NewStyle().
			Foreground(ColorRowOdd)

	MarkerSelectedStyle = lipgloss.NewStyle().
				Foreground(ColorPrimary).
				Bold(true)

	MarkerStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	EmptyListStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary).
			Italic(true)
)

// Detail Styles
var (
	DetailLabelStyle = lipgloss.NewStyle().
				Foreground(ColorSecondary).
				Bold(true)

	DetailValueStyle = lipgloss.NewStyle().
				Foreground(ColorText)

	TxtKeyStyle = lipgloss.NewStyle().
			Foreground(ColorInfo)
)

// RowStyle returns the style for the text of list row i, alternating by
// parity. Selection never changes it; only the marker shows selection.
func RowStyle(i int) lipgloss.Style {
	if i%2 == 0 {
		return ListRowEvenStyle
	}
	return ListRowOddStyle
}

// RowMarkerStyle returns the style for the selection marker of a list row.
func RowMarkerStyle(selected bool) lipgloss.Style {
	if selected {
		return MarkerSelectedStyle
	}
	return MarkerStyle
}

// Initialize sets up the design system
func Initialize(isDarkMode bool) {
	lipgloss.SetHasDarkBackground(isDarkMode)
}
