package game

import "github.com/akovalov/tui-aimtrainer/internal/core"

// Trail is a fixed-capacity ring of recent mouse positions, oldest first.
// Used purely for the cursor trail in the render snapshot.
type Trail struct {
	points []core.Vec2
	start  int
	count  int
}

// NewTrail creates a trail holding at most capacity positions.
func NewTrail(capacity int) *Trail {
	if capacity < 1 {
		capacity = 1
	}
	return &Trail{
		points: make([]core.Vec2, capacity),
	}
}

// Push appends a position, evicting the oldest when full.
func (t *Trail) Push(p core.Vec2) {
	if t.count < len(t.points) {
		t.points[(t.start+t.count)%len(t.points)] = p
		t.count++
		return
	}
	t.points[t.start] = p
	t.start = (t.start + 1) % len(t.points)
}

// Len returns the number of stored positions.
func (t *Trail) Len() int {
	return t.count
}

// Points returns the stored positions ordered oldest to newest.
func (t *Trail) Points() []core.Vec2 {
	out := make([]core.Vec2, t.count)
	for i := 0; i < t.count; i++ {
		out[i] = t.points[(t.start+i)%len(t.points)]
	}
	return out
}

// Reset discards all stored positions.
func (t *Trail) Reset() {
	t.start = 0
	t.count = 0
}
