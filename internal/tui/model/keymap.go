package model

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap defines the keybindings for the browser.
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Enter key.Binding
	Esc   key.Binding
	Copy  key.Binding
	Help  key.Binding
	Quit  key.Binding
}

// DefaultKeyMap returns a KeyMap with default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "details"),
		),
		Esc: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "quit"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy details"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// EventFor maps a key press onto the view state machine's vocabulary.
func (k KeyMap) EventFor(msg tea.KeyMsg) KeyEvent {
	switch {
	case key.Matches(msg, k.Up):
		return KeyUp
	case key.Matches(msg, k.Down):
		return KeyDown
	case key.Matches(msg, k.Enter):
		return KeyEnter
	case key.Matches(msg, k.Esc):
		return KeyEsc
	default:
		return KeyOther
	}
}

// ShortHelpFor returns the one-line help for the given view.
func (k KeyMap) ShortHelpFor(state ViewState) []key.Binding {
	if _, ok := state.(DetailView); ok {
		return []key.Binding{k.back(), k.Copy, k.Help}
	}
	return []key.Binding{k.Up, k.Down, k.Enter, k.Esc, k.Help}
}

// FullHelpFor returns the expanded help for the given view, one column per slice.
func (k KeyMap) FullHelpFor(state ViewState) [][]key.Binding {
	if _, ok := state.(DetailView); ok {
		return [][]key.Binding{
			{k.back(), k.Copy},
			{k.Help, k.Quit},
		}
	}
	return [][]key.Binding{
		{k.Up, k.Down, k.Enter}, // Navigation column
		{k.Esc, k.Help, k.Quit}, // General column
	}
}

// back is Esc as described in the detail view.
func (k KeyMap) back() key.Binding {
	b := k.Esc
	b.SetHelp(b.Help().Key, "back")
	return b
}
