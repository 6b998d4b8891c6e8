package core

import "time"

// RuntimeConfig contains configuration passed to the game at initialization.
// The canvas is measured in continuous virtual units so that target sizes and
// spawn clearances are independent of the terminal dimensions.
type RuntimeConfig struct {
	CanvasW  float64 // Canvas width in virtual units
	CanvasH  float64 // Canvas height in virtual units
	TickRate int     // Simulation ticks per second (default 60)
	Seed     int64   // RNG seed for deterministic target placement
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		CanvasW:  800,
		CanvasH:  600,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState communicates the machine's status to the platform after a tick.
type GameState struct {
	Screen    string // Current screen identifier (home, playing, ...)
	Score     int    // Current session score
	Remaining int    // Whole seconds left, truncated toward zero
}

// SessionSummary describes one completed session. Emitted exactly once when
// the countdown expires; aborted sessions produce no summary.
type SessionSummary struct {
	Tier     string
	Score    int
	Hits     int
	Misses   int
	Duration time.Duration
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState

	// Ended is non-nil on the tick that finished a session.
	Ended *SessionSummary

	// Quit is set when Escape is pressed at the home screen; the platform
	// terminates the process in response.
	Quit bool
}
