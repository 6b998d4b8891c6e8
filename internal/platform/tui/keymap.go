package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/akovalov/tui-aimtrainer/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a hard quit request.
// Escape is not a quit key here: it maps to ActionBack and the state machine
// decides whether backing out of the home screen means exit.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionNone, true
	}

	switch key {
	case "enter", " ":
		return core.ActionPlay, false
	case "l":
		return core.ActionLeaderboard, false
	case "1":
		return core.ActionSelectEasy, false
	case "2":
		return core.ActionSelectMedium, false
	case "3":
		return core.ActionSelectHard, false
	case "esc", "b":
		return core.ActionBack, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a hard quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}
