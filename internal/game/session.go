package game

import (
	"math/rand"
	"time"

	"github.com/akovalov/tui-aimtrainer/internal/config"
	"github.com/akovalov/tui-aimtrainer/internal/core"
)

// Session is one timed run: the countdown clock, the score with its miss
// penalty, the spawn cadence, and the field of targets.
type Session struct {
	tier      config.TierConfig
	duration  time.Duration
	animation time.Duration

	field *Field
	trail *Trail

	score  int
	hits   int
	misses int

	startedAt   time.Time
	lastSpawnAt time.Time
}

// NewSession starts a session for the given tier at the given instant.
func NewSession(cfg config.Config, tier config.TierConfig, rng *rand.Rand, canvasW, canvasH float64, now time.Time) *Session {
	return &Session{
		tier:        tier,
		duration:    cfg.Session.Duration(),
		animation:   cfg.Session.HitAnimation(),
		field:       NewField(rng, canvasW, canvasH),
		trail:       NewTrail(cfg.Session.TrailLength),
		startedAt:   now,
		lastSpawnAt: now,
	}
}

// Tier returns the difficulty preset this session runs under.
func (s *Session) Tier() config.TierConfig {
	return s.tier
}

// Score returns the current score. Never negative.
func (s *Session) Score() int {
	return s.score
}

// Hits returns the number of successful target clicks.
func (s *Session) Hits() int {
	return s.hits
}

// Misses returns the number of penalized empty clicks.
func (s *Session) Misses() int {
	return s.misses
}

// Duration returns the configured session length.
func (s *Session) Duration() time.Duration {
	return s.duration
}

// Remaining returns the time left, floored at zero.
func (s *Session) Remaining(now time.Time) time.Duration {
	left := s.duration - now.Sub(s.startedAt)
	if left < 0 {
		return 0
	}
	return left
}

// RemainingSeconds returns whole seconds left, truncated toward zero.
// 29.9s remaining displays as 29, never rounds up to 30.
func (s *Session) RemainingSeconds(now time.Time) int {
	return int(s.Remaining(now).Seconds())
}

// Expired reports whether the countdown has reached zero. Clock expiry is the
// session's sole termination condition.
func (s *Session) Expired(now time.Time) bool {
	return s.Remaining(now) == 0
}

// RegisterClick resolves one click at the captured frame time. The first
// alive target in spawn order containing the point takes the hit and scores
// one point; a click that lands nowhere costs one point, floored at zero.
// Returns true on a hit.
func (s *Session) RegisterClick(p core.Vec2, now time.Time) bool {
	if t := s.field.HitTest(p); t != nil {
		t.MarkHit(now)
		s.score++
		s.hits++
		return true
	}

	s.misses++
	if s.score > 0 {
		s.score--
	}
	return false
}

// Advance runs one playing-state frame at the captured timestamp: spawn
// cadence, trail sampling and expired-target purge. Clicks are resolved
// separately via RegisterClick before the frame advances.
func (s *Session) Advance(now time.Time, mouse core.Vec2) {
	// One spawn attempt per elapsed interval. The cadence timer resets on
	// the attempt whether or not it succeeds, so a field too crowded to fit
	// a candidate does not retry the search every frame.
	if now.Sub(s.lastSpawnAt) > s.tier.SpawnInterval() {
		s.field.TrySpawn(s.tier.TargetSize, s.tier.MaxTargets, now)
		s.lastSpawnAt = now
	}

	s.trail.Push(mouse)

	s.field.PurgeExpired(s.animation, now)
}

// Field returns the session's target collection owner.
func (s *Session) Field() *Field {
	return s.field
}

// TrailPoints returns the recorded mouse trail, oldest first.
func (s *Session) TrailPoints() []core.Vec2 {
	return s.trail.Points()
}
