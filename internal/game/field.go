package game

import (
	"math/rand"
	"time"

	"github.com/akovalov/tui-aimtrainer/internal/core"
)

// Field exclusively owns the active target collection for one session.
// Targets are stored in spawn order; removal is an explicit compaction, not
// garbage collection of orphaned entries.
type Field struct {
	rng     *rand.Rand
	canvasW float64
	canvasH float64
	targets []*Target
}

// NewField creates an empty field on the given canvas.
func NewField(rng *rand.Rand, canvasW, canvasH float64) *Field {
	return &Field{
		rng:     rng,
		canvasW: canvasW,
		canvasH: canvasH,
	}
}

// Targets returns the active targets in spawn order.
// Callers must not reorder or remove entries; the field owns the collection.
func (f *Field) Targets() []*Target {
	return f.targets
}

// AliveCount returns the number of targets not yet hit.
func (f *Field) AliveCount() int {
	count := 0
	for _, t := range f.targets {
		if t.Alive() {
			count++
		}
	}
	return count
}

// SpawnCandidate draws one uniform point within [margin, dim-margin] where
// margin equals the target size, and rejects it if any alive target lies
// closer than 2x size. Exactly one attempt; the caller's cadence timer, not a
// retry loop, governs when the next attempt happens.
func (f *Field) SpawnCandidate(size float64) (core.Vec2, bool) {
	margin := size
	if f.canvasW <= 2*margin || f.canvasH <= 2*margin {
		return core.Vec2{}, false
	}

	p := core.Vec2{
		X: margin + f.rng.Float64()*(f.canvasW-2*margin),
		Y: margin + f.rng.Float64()*(f.canvasH-2*margin),
	}

	if !f.clears(p, size) {
		return core.Vec2{}, false
	}

	return p, true
}

// clears reports whether a candidate of the given size keeps at least 2x size
// distance from every alive target. Hit targets are mid-animation and about
// to vanish; they do not block.
func (f *Field) clears(p core.Vec2, size float64) bool {
	clearance := 2 * size
	for _, t := range f.targets {
		if t.Alive() && core.Dist2(t.Pos, p) < clearance*clearance {
			return false
		}
	}
	return true
}

// TrySpawn adds one target of the given size if the alive count is below
// maxAlive and the single candidate attempt clears every alive target.
// Returns the spawned target, or nil if nothing was placed.
func (f *Field) TrySpawn(size float64, maxAlive int, now time.Time) *Target {
	if f.AliveCount() >= maxAlive {
		return nil
	}

	pos, ok := f.SpawnCandidate(size)
	if !ok {
		return nil
	}

	t := &Target{
		Pos:       pos,
		Size:      size,
		SpawnedAt: now,
		Color:     core.TargetPalette[f.rng.Intn(len(core.TargetPalette))],
	}
	f.targets = append(f.targets, t)
	return t
}

// HitTest returns the first alive target in spawn order that contains the
// point, or nil. First-match wins; overlapping targets have no z-order or
// closest-center tie-break.
func (f *Field) HitTest(p core.Vec2) *Target {
	for _, t := range f.targets {
		if t.Alive() && t.Contains(p) {
			return t
		}
	}
	return nil
}

// PurgeExpired removes every target whose hit animation has completed,
// preserving the order of the remaining targets. Calling it twice with the
// same timestamp is a no-op the second time.
func (f *Field) PurgeExpired(animation time.Duration, now time.Time) {
	kept := f.targets[:0]
	for _, t := range f.targets {
		if !t.Expired(animation, now) {
			kept = append(kept, t)
		}
	}
	// Release dropped tail entries so they can be collected
	for i := len(kept); i < len(f.targets); i++ {
		f.targets[i] = nil
	}
	f.targets = kept
}
