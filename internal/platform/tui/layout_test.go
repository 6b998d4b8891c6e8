package tui

import (
	"testing"

	"github.com/akovalov/tui-aimtrainer/internal/core"
)

func TestCellCanvasRoundTrip(t *testing.T) {
	l := NewLayout(80, 25, 800, 600)

	// A cell maps to a canvas point that maps back to the same cell
	for _, cell := range [][2]int{{0, hudRows}, {40, 12}, {79, 24}} {
		p := l.CellToCanvas(cell[0], cell[1])
		x, y := l.CanvasToCell(p)
		if x != cell[0] || y != cell[1] {
			t.Errorf("Cell (%d,%d) -> %v -> (%d,%d)", cell[0], cell[1], p, x, y)
		}
	}
}

func TestCellToCanvasBounds(t *testing.T) {
	l := NewLayout(80, 25, 800, 600)

	topLeft := l.CellToCanvas(0, hudRows)
	if topLeft.X < 0 || topLeft.Y < 0 {
		t.Errorf("Top-left cell maps outside the canvas: %v", topLeft)
	}

	bottomRight := l.CellToCanvas(79, 24)
	if bottomRight.X > 800 || bottomRight.Y > 600 {
		t.Errorf("Bottom-right cell maps outside the canvas: %v", bottomRight)
	}
}

func TestCanvasToCellClampsToField(t *testing.T) {
	l := NewLayout(80, 25, 800, 600)

	x, y := l.CanvasToCell(core.Vec2{X: 0, Y: 0})
	if y < hudRows {
		t.Errorf("Canvas origin mapped into the HUD row: (%d,%d)", x, y)
	}

	x, y = l.CanvasToCell(core.Vec2{X: 800, Y: 600})
	if x > 79 || y > 24 {
		t.Errorf("Canvas corner mapped off screen: (%d,%d)", x, y)
	}
}

func TestActionAt(t *testing.T) {
	l := NewLayout(80, 25, 800, 600)

	px, py := l.playBtn.Center()
	if got := l.ActionAt(px, py); got != core.ActionPlay {
		t.Errorf("ActionAt(play center) = %v, expected Play", got)
	}

	bx, by := l.boardBtn.Center()
	if got := l.ActionAt(bx, by); got != core.ActionLeaderboard {
		t.Errorf("ActionAt(board center) = %v, expected Leaderboard", got)
	}

	wantTiers := []core.Action{core.ActionSelectEasy, core.ActionSelectMedium, core.ActionSelectHard}
	for i, want := range wantTiers {
		tx, ty := l.tierBtns[i].Center()
		if got := l.ActionAt(tx, ty); got != want {
			t.Errorf("ActionAt(tier %d center) = %v, expected %v", i, got, want)
		}
	}

	if got := l.ActionAt(0, 0); got != core.ActionNone {
		t.Errorf("ActionAt(corner) = %v, expected None", got)
	}
}

func TestTinyTerminalDoesNotPanic(t *testing.T) {
	l := NewLayout(1, 1, 800, 600)

	// Projection must stay in bounds even on a degenerate terminal
	p := l.CellToCanvas(0, 0)
	if p.X < 0 || p.X > 800 || p.Y < 0 || p.Y > 600 {
		t.Errorf("Degenerate layout mapped outside the canvas: %v", p)
	}
	l.CanvasToCell(core.Vec2{X: 400, Y: 300})
}
