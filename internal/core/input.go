package core

import "time"

// Action represents a semantic game action, abstracted from physical input.
// The platform maps key presses and button clicks to actions; the core state
// machine consumes actions without knowing about keys or screen layout.
type Action int

const (
	ActionNone         Action = iota
	ActionPlay                // Play button, Enter - start a session
	ActionLeaderboard         // Leaderboard button, L - show the score table
	ActionSelectEasy          // Easy button, 1 - select the Easy tier
	ActionSelectMedium        // Medium button, 2 - select the Medium tier
	ActionSelectHard          // Hard button, 3 - select the Hard tier
	ActionBack                // Escape - back one level (quit when at Home)
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPlay:
		return "Play"
	case ActionLeaderboard:
		return "Leaderboard"
	case ActionSelectEasy:
		return "SelectEasy"
	case ActionSelectMedium:
		return "SelectMedium"
	case ActionSelectHard:
		return "SelectHard"
	case ActionBack:
		return "Back"
	default:
		return "Unknown"
	}
}

// InputFrame carries everything the core consumes during one simulation tick:
// the frame timestamp, the mouse position, click positions in canvas units,
// and the semantic actions triggered this frame.
//
// Now is captured once per frame by the platform. The core must not read the
// clock itself; a single timestamp keeps target expiry and the countdown
// consistent within a frame.
type InputFrame struct {
	Now    time.Time
	Mouse  Vec2
	Clicks []Vec2

	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame stamped with the frame time.
func NewInputFrame(now time.Time) InputFrame {
	return InputFrame{
		Now:     now,
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Click appends a click event at the given canvas position.
func (f *InputFrame) Click(p Vec2) {
	f.Clicks = append(f.Clicks, p)
}

// Clear resets clicks and actions for the next frame.
// Now and Mouse are overwritten by the platform each tick.
func (f *InputFrame) Clear() {
	f.Clicks = f.Clicks[:0]
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
