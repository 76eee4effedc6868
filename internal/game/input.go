package game

import "github.com/gdamore/tcell/v2"

// Intent is what the player asked for this turn.
type Intent int

const (
	// IntentNone is any input that maps to no action. It never spends a turn.
	IntentNone Intent = iota
	// IntentMoveUp through IntentMoveRight step or attack one tile.
	IntentMoveUp
	IntentMoveDown
	IntentMoveLeft
	IntentMoveRight
	// IntentToggleFullscreen is handled by the loop, not the session.
	IntentToggleFullscreen
	// IntentQuit ends the loop in any state.
	IntentQuit
)

// String returns a human-readable intent name.
func (i Intent) String() string {
	switch i {
	case IntentNone:
		return "none"
	case IntentMoveUp:
		return "move-up"
	case IntentMoveDown:
		return "move-down"
	case IntentMoveLeft:
		return "move-left"
	case IntentMoveRight:
		return "move-right"
	case IntentToggleFullscreen:
		return "toggle-fullscreen"
	case IntentQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Delta returns the step for a movement intent. ok is false for everything else.
func (i Intent) Delta() (dx, dy int, ok bool) {
	switch i {
	case IntentMoveUp:
		return 0, -1, true
	case IntentMoveDown:
		return 0, 1, true
	case IntentMoveLeft:
		return -1, 0, true
	case IntentMoveRight:
		return 1, 0, true
	default:
		return 0, 0, false
	}
}

// KeyIntent maps a key event to an intent.
func KeyIntent(ev *tcell.EventKey) Intent {
	return keyIntent(ev.Key(), ev.Rune(), ev.Modifiers())
}

func keyIntent(key tcell.Key, r rune, mod tcell.ModMask) Intent {
	switch key {
	case tcell.KeyEnter:
		if mod&tcell.ModAlt != 0 {
			return IntentToggleFullscreen
		}
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return IntentQuit

	case tcell.KeyUp:
		return IntentMoveUp
	case tcell.KeyDown:
		return IntentMoveDown
	case tcell.KeyLeft:
		return IntentMoveLeft
	case tcell.KeyRight:
		return IntentMoveRight

	case tcell.KeyRune:
		switch r {
		case 'q', 'Q':
			return IntentQuit
		}
	}
	return IntentNone
}
