package game

import (
	"math/rand"
	"time"

	"github.com/akovalov/tui-aimtrainer/internal/config"
	"github.com/akovalov/tui-aimtrainer/internal/core"
)

// Screen identifies the current top-level screen of the state machine.
type Screen int

const (
	ScreenHome Screen = iota
	ScreenPlaying
	ScreenGameOver
	ScreenLeaderboard
)

// String returns the screen identifier used in GameState and snapshots.
func (s Screen) String() string {
	switch s {
	case ScreenHome:
		return "home"
	case ScreenPlaying:
		return "playing"
	case ScreenGameOver:
		return "game_over"
	case ScreenLeaderboard:
		return "leaderboard"
	default:
		return "unknown"
	}
}

// Scoreboard is the leaderboard collaborator the machine commits final scores
// to and reads ranking information from. Implementations persist
// synchronously inside AddScore.
type Scoreboard interface {
	AddScore(tier string, score int)
	TopScores(tier string, n int) []int
	Rank(tier string, score int) int
}

// Game is the aim trainer state machine. It cycles
// Home -> Playing -> GameOver -> Home indefinitely, with the leaderboard page
// reachable from Home; there is no terminal state short of process exit.
type Game struct {
	cfg   config.Config
	board Scoreboard

	rng     *rand.Rand
	canvasW float64
	canvasH float64

	tick      uint64
	screen    Screen
	tierIndex int
	session   *Session
	finalRank int // Rank of the last committed score, valid on ScreenGameOver
}

// New creates the state machine. The scoreboard may be nil, in which case
// finished sessions are simply not committed anywhere.
func New(cfg config.Config, board Scoreboard) *Game {
	g := &Game{
		cfg:   cfg,
		board: board,
	}

	// Medium is the default selection, falling back to the first tier for
	// custom tier tables that dropped the standard names.
	for i, t := range cfg.Tiers {
		if t.Name == config.TierMedium {
			g.tierIndex = i
			break
		}
	}

	return g
}

// Reset initializes or restarts the machine at the home screen.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.canvasW = rc.CanvasW
	g.canvasH = rc.CanvasH
	g.tick = 0
	g.screen = ScreenHome
	g.session = nil
	g.finalRank = 0
}

// Screen returns the current screen.
func (g *Game) Screen() Screen {
	return g.screen
}

// SelectedTier returns the currently selected difficulty preset.
func (g *Game) SelectedTier() config.TierConfig {
	if len(g.cfg.Tiers) == 0 {
		return config.TierConfig{}
	}
	return g.cfg.Tiers[core.Clamp(g.tierIndex, 0, len(g.cfg.Tiers)-1)]
}

// Step advances the machine by one frame using the frame's captured
// timestamp. All time within the frame comes from in.Now; the machine never
// reads the clock itself.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	switch g.screen {
	case ScreenHome:
		return g.stepHome(in)
	case ScreenPlaying:
		return g.stepPlaying(in)
	case ScreenGameOver, ScreenLeaderboard:
		// Any click or Escape returns to the home screen.
		if in.Has(core.ActionBack) || len(in.Clicks) > 0 {
			g.screen = ScreenHome
		}
	}

	return core.StepResult{State: g.state(in.Now)}
}

// stepHome handles the home screen: tier selection, session start, the
// leaderboard page, and the quit half of the Escape duality.
func (g *Game) stepHome(in core.InputFrame) core.StepResult {
	switch {
	case in.Has(core.ActionBack):
		// Escape at Home quits; everywhere else it goes back one level.
		return core.StepResult{State: g.state(in.Now), Quit: true}
	case in.Has(core.ActionPlay):
		g.startSession(in.Now)
	case in.Has(core.ActionLeaderboard):
		g.screen = ScreenLeaderboard
	case in.Has(core.ActionSelectEasy):
		g.SelectTier(config.TierEasy)
	case in.Has(core.ActionSelectMedium):
		g.SelectTier(config.TierMedium)
	case in.Has(core.ActionSelectHard):
		g.SelectTier(config.TierHard)
	}

	return core.StepResult{State: g.state(in.Now)}
}

// stepPlaying handles one frame of a running session.
func (g *Game) stepPlaying(in core.InputFrame) core.StepResult {
	// Escape abandons the session; nothing is committed.
	if in.Has(core.ActionBack) {
		g.screen = ScreenHome
		g.session = nil
		return core.StepResult{State: g.state(in.Now)}
	}

	s := g.session

	for _, click := range in.Clicks {
		s.RegisterClick(click, in.Now)
	}

	// Clock expiry is the sole commit trigger. The leaderboard write happens
	// synchronously on this frame so an abrupt exit cannot lose the score.
	if s.Expired(in.Now) {
		g.screen = ScreenGameOver
		summary := &core.SessionSummary{
			Tier:     s.Tier().Name,
			Score:    s.Score(),
			Hits:     s.Hits(),
			Misses:   s.Misses(),
			Duration: s.Duration(),
		}
		if g.board != nil {
			g.board.AddScore(summary.Tier, summary.Score)
			g.finalRank = g.board.Rank(summary.Tier, summary.Score)
		}
		return core.StepResult{State: g.state(in.Now), Ended: summary}
	}

	s.Advance(in.Now, in.Mouse)

	return core.StepResult{State: g.state(in.Now)}
}

// startSession resets per-session state and enters Playing.
func (g *Game) startSession(now time.Time) {
	g.session = NewSession(g.cfg, g.SelectedTier(), g.rng, g.canvasW, g.canvasH, now)
	g.finalRank = 0
	g.screen = ScreenPlaying
}

// SelectTier changes the selected difficulty if the named tier exists.
// Returns false for unknown names, leaving the selection unchanged.
func (g *Game) SelectTier(name string) bool {
	for i, t := range g.cfg.Tiers {
		if t.Name == name {
			g.tierIndex = i
			return true
		}
	}
	return false
}

// state builds the per-frame GameState for the platform.
func (g *Game) state(now time.Time) core.GameState {
	st := core.GameState{
		Screen: g.screen.String(),
	}
	if g.session != nil {
		st.Score = g.session.Score()
		st.Remaining = g.session.RemainingSeconds(now)
	}
	return st
}
