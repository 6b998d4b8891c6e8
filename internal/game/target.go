// Package game implements the aim trainer core: target lifecycle, the session
// clock and scorer, and the screen state machine. The package is pure state:
// it consumes timestamped input frames and exposes render snapshots, and never
// touches the terminal, the clock, or storage beyond the scoreboard it is
// handed at construction.
package game

import (
	"time"

	"github.com/akovalov/tui-aimtrainer/internal/core"
)

// Target is one circular target on the canvas.
// A target transitions Alive -> Hit at most once; after the hit animation
// window it is purged from the field.
type Target struct {
	Pos       core.Vec2
	Size      float64 // Diameter in canvas units
	SpawnedAt time.Time
	Color     core.Color // Cosmetic only, never affects logic

	hit   bool
	hitAt time.Time
}

// Radius returns the collision radius (half the size).
func (t *Target) Radius() float64 {
	return t.Size / 2
}

// Alive reports whether the target has not been hit yet.
// Only alive targets are eligible for hit testing and spawn clearance checks.
func (t *Target) Alive() bool {
	return !t.hit
}

// Contains reports whether the click position lands on the target.
// Squared-distance comparison; exact on the boundary.
func (t *Target) Contains(p core.Vec2) bool {
	return core.Circle{Center: t.Pos, Radius: t.Radius()}.Contains(p)
}

// MarkHit transitions the target to Hit at the given time.
// Returns false if the target was already hit; the transition happens once.
func (t *Target) MarkHit(now time.Time) bool {
	if t.hit {
		return false
	}
	t.hit = true
	t.hitAt = now
	return true
}

// HitProgress returns the elapsed fraction of the hit animation in [0, 1].
// Pure function of (hitAt, now); returns 0 for alive targets. The render
// snapshot carries this value so the presentation layer never re-reads the
// clock.
func (t *Target) HitProgress(animation time.Duration, now time.Time) float64 {
	if !t.hit || animation <= 0 {
		return 0
	}
	return core.ClampF(float64(now.Sub(t.hitAt))/float64(animation), 0, 1)
}

// Expired reports whether the hit animation has fully elapsed.
func (t *Target) Expired(animation time.Duration, now time.Time) bool {
	return t.hit && now.Sub(t.hitAt) >= animation
}
