package game

import (
	"testing"
	"time"

	"github.com/akovalov/tui-aimtrainer/internal/core"
)

var testBase = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestTargetContains(t *testing.T) {
	target := &Target{Pos: core.Vec2{X: 100, Y: 100}, Size: 30}

	if target.Radius() != 15 {
		t.Fatalf("Radius() = %v, expected 15", target.Radius())
	}

	tests := []struct {
		name     string
		p        core.Vec2
		expected bool
	}{
		{"exact center", core.Vec2{X: 100, Y: 100}, true},
		{"on boundary", core.Vec2{X: 115, Y: 100}, true},
		{"just outside", core.Vec2{X: 115.1, Y: 100}, false},
		{"inside diagonal", core.Vec2{X: 108, Y: 108}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := target.Contains(tc.p); got != tc.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}
}

func TestTargetMarkHitOnce(t *testing.T) {
	target := &Target{Pos: core.Vec2{X: 50, Y: 50}, Size: 30}

	if !target.Alive() {
		t.Fatal("New target should be alive")
	}

	if !target.MarkHit(testBase) {
		t.Fatal("First MarkHit should succeed")
	}
	if target.Alive() {
		t.Error("Hit target should not be alive")
	}

	// Second hit attempt must not succeed or move the hit timestamp
	if target.MarkHit(testBase.Add(time.Second)) {
		t.Error("Second MarkHit should be rejected")
	}
	if target.hitAt != testBase {
		t.Error("Hit timestamp must not change on a repeated MarkHit")
	}
}

func TestTargetHitProgress(t *testing.T) {
	animation := 300 * time.Millisecond
	target := &Target{Pos: core.Vec2{X: 50, Y: 50}, Size: 30}

	if target.HitProgress(animation, testBase) != 0 {
		t.Error("Alive target should have progress 0")
	}

	target.MarkHit(testBase)

	tests := []struct {
		elapsed  time.Duration
		expected float64
	}{
		{0, 0},
		{150 * time.Millisecond, 0.5},
		{300 * time.Millisecond, 1},
		{time.Second, 1}, // clamped
	}

	for _, tc := range tests {
		got := target.HitProgress(animation, testBase.Add(tc.elapsed))
		if got != tc.expected {
			t.Errorf("HitProgress after %v = %v, expected %v", tc.elapsed, got, tc.expected)
		}
	}
}

func TestTargetExpired(t *testing.T) {
	animation := 300 * time.Millisecond
	target := &Target{Pos: core.Vec2{X: 50, Y: 50}, Size: 30}

	if target.Expired(animation, testBase.Add(time.Hour)) {
		t.Error("Alive target never expires")
	}

	target.MarkHit(testBase)

	if target.Expired(animation, testBase.Add(299*time.Millisecond)) {
		t.Error("Target should not expire before the animation completes")
	}
	if !target.Expired(animation, testBase.Add(300*time.Millisecond)) {
		t.Error("Target should expire exactly when the animation completes")
	}
}
