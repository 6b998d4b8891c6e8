package game

import (
	"time"

	"github.com/akovalov/tui-aimtrainer/internal/core"
)

// TargetView is the read-only render model of one target. HitProgress is
// precomputed so the presentation layer never re-derives animation state from
// the clock.
type TargetView struct {
	Pos         core.Vec2
	Radius      float64
	Color       core.Color
	Hit         bool
	HitProgress float64 // 0 for alive targets, else elapsed animation fraction in [0, 1]
}

// Snapshot captures the complete per-frame render model, and doubles as the
// determinism probe for tests.
type Snapshot struct {
	Tick    uint64
	Screen  Screen
	Tier    string
	CanvasW float64
	CanvasH float64

	Score            int
	RemainingSeconds int
	Targets          []TargetView
	Trail            []core.Vec2 // Oldest first

	// Leaderboard data for the selected tier: the top scores shown on the
	// leaderboard page and the rank earned by the last committed score
	// (valid on the game-over screen, 0 otherwise).
	TopScores []int
	Rank      int
}

// Snapshot builds the render model for the frame captured at now.
// The timestamp must be the same one passed to Step this frame.
func (g *Game) Snapshot(now time.Time) Snapshot {
	snap := Snapshot{
		Tick:    g.tick,
		Screen:  g.screen,
		Tier:    g.SelectedTier().Name,
		CanvasW: g.canvasW,
		CanvasH: g.canvasH,
		Rank:    g.finalRank,
	}

	if g.session != nil {
		snap.Score = g.session.Score()
		snap.RemainingSeconds = g.session.RemainingSeconds(now)
		snap.Trail = g.session.TrailPoints()

		targets := g.session.Field().Targets()
		snap.Targets = make([]TargetView, 0, len(targets))
		for _, t := range targets {
			snap.Targets = append(snap.Targets, TargetView{
				Pos:         t.Pos,
				Radius:      t.Radius(),
				Color:       t.Color,
				Hit:         !t.Alive(),
				HitProgress: t.HitProgress(g.cfg.Session.HitAnimation(), now),
			})
		}
	}

	if g.board != nil {
		snap.TopScores = g.board.TopScores(snap.Tier, g.cfg.Leaderboard.TopDisplay)
	}

	return snap
}
