package model

import "mdnsbrowse/internal/registry"

// KeyEvent is a key press reduced to what the view state machine cares about.
type KeyEvent int

const (
	KeyOther KeyEvent = iota
	KeyUp
	KeyDown
	KeyEnter
	KeyEsc
)

// String makes KeyEvent satisfy the fmt.Stringer interface.
func (k KeyEvent) String() string {
	switch k {
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyEnter:
		return "Enter"
	case KeyEsc:
		return "Esc"
	default:
		return "Other"
	}
}

// Dispatch applies a key event to the current view. It returns the next view
// and whether the application should terminate.
//
//	ListView   + Up    -> ListView, selection -1
//	ListView   + Down  -> ListView, selection +1
//	ListView   + Enter -> DetailView{selected record}, or ListView when empty
//	ListView   + Esc   -> quit
//	DetailView + Esc   -> ListView
//	anything else      -> unchanged
//
// A nil state is treated as ListView and a nil registry as an empty one.
func Dispatch(state ViewState, ev KeyEvent, reg *registry.Registry) (ViewState, bool) {
	switch s := state.(type) {
	case DetailView:
		if ev == KeyEsc {
			return ListView{}, false
		}
		return s, false
	case ListView, nil:
		return dispatchList(ev, reg)
	default:
		return state, false
	}
}

func dispatchList(ev KeyEvent, reg *registry.Registry) (ViewState, bool) {
	switch ev {
	case KeyEsc:
		return ListView{}, true
	case KeyUp:
		if reg != nil {
			reg.MoveSelection(-1)
		}
	case KeyDown:
		if reg != nil {
			reg.MoveSelection(1)
		}
	case KeyEnter:
		if reg == nil {
			break
		}
		if rec, ok := reg.SelectedRecord(); ok {
			return DetailView{Snapshot: rec}, false
		}
	}
	return ListView{}, false
}
