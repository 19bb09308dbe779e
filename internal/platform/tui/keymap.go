package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pongworks/neonpong/internal/core"
)

// KeyMapper translates Bubble Tea key messages to control signals.
// This centralizes key bindings and keeps them testable.
type KeyMapper struct {
	// TwoPlayer routes the arrow keys to the right paddle instead of
	// mirroring the left-paddle controls.
	TwoPlayer bool
}

// MapKey translates a key message to a control signal.
// Returns the action (may be ActionNone) and whether it is a quit request.
func (km KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "w":
		return core.ActionLeftUp, false
	case "s":
		return core.ActionLeftDown, false
	case "up":
		if km.TwoPlayer {
			return core.ActionRightUp, false
		}
		return core.ActionLeftUp, false
	case "down":
		if km.TwoPlayer {
			return core.ActionRightDown, false
		}
		return core.ActionLeftDown, false
	case "r":
		return core.ActionReset, false
	case "p", "esc":
		return core.ActionPause, false
	}
	return core.ActionNone, false
}
