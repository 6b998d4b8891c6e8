package tui

import (
	"github.com/akovalov/tui-aimtrainer/internal/core"
)

// Layout constants in terminal cells.
const (
	hudRows      = 1  // Status line above the playfield
	buttonWidth  = 22 // Play / Leaderboard button width
	buttonHeight = 3
	tierWidth    = 10 // Difficulty button width
)

// Layout maps between terminal cells and canvas units and positions the home
// screen buttons. The whole playfield below the HUD row projects onto the
// virtual canvas, so a click's canvas position is independent of the terminal
// size the player happens to use.
type Layout struct {
	screenW int
	screenH int
	canvasW float64
	canvasH float64

	field core.Rect // Playfield region in cells

	playBtn  core.Rect
	boardBtn core.Rect
	tierBtns [3]core.Rect // Easy, Medium, Hard
}

// NewLayout computes the layout for a terminal of the given cell dimensions.
func NewLayout(screenW, screenH int, canvasW, canvasH float64) Layout {
	l := Layout{
		screenW: core.Max(screenW, 1),
		screenH: core.Max(screenH, hudRows+1),
		canvasW: canvasW,
		canvasH: canvasH,
	}
	l.field = core.NewRect(0, hudRows, l.screenW, l.screenH-hudRows)

	// Home buttons: a centered column of Play and Leaderboard with the three
	// difficulty buttons in a row beneath.
	centerX := l.screenW / 2
	top := l.screenH/2 - 4

	l.playBtn = core.NewRect(centerX-buttonWidth/2, top, buttonWidth, buttonHeight)
	l.boardBtn = core.NewRect(centerX-buttonWidth/2, top+buttonHeight+1, buttonWidth, buttonHeight)

	tierRowW := 3*tierWidth + 2*2 // Three buttons with two 2-cell gaps
	tierTop := top + 2*(buttonHeight+1) + 1
	for i := range l.tierBtns {
		x := centerX - tierRowW/2 + i*(tierWidth+2)
		l.tierBtns[i] = core.NewRect(x, tierTop, tierWidth, buttonHeight)
	}

	return l
}

// Field returns the playfield region in cells.
func (l Layout) Field() core.Rect {
	return l.field
}

// CellToCanvas converts a terminal cell to the canvas point at its center.
// Cells outside the playfield clamp to the canvas edge.
func (l Layout) CellToCanvas(x, y int) core.Vec2 {
	fx := (float64(x-l.field.X) + 0.5) / float64(l.field.W) * l.canvasW
	fy := (float64(y-l.field.Y) + 0.5) / float64(l.field.H) * l.canvasH
	return core.Vec2{
		X: core.ClampF(fx, 0, l.canvasW),
		Y: core.ClampF(fy, 0, l.canvasH),
	}
}

// CanvasToCell converts a canvas point to the terminal cell containing it.
func (l Layout) CanvasToCell(p core.Vec2) (int, int) {
	x := l.field.X + int(p.X/l.canvasW*float64(l.field.W))
	y := l.field.Y + int(p.Y/l.canvasH*float64(l.field.H))
	return core.Clamp(x, l.field.X, l.field.Right()-1),
		core.Clamp(y, l.field.Y, l.field.Bottom()-1)
}

// ActionAt maps a home screen click to the button it landed on.
// Returns ActionNone for clicks outside every button.
func (l Layout) ActionAt(x, y int) core.Action {
	switch {
	case l.playBtn.Contains(x, y):
		return core.ActionPlay
	case l.boardBtn.Contains(x, y):
		return core.ActionLeaderboard
	case l.tierBtns[0].Contains(x, y):
		return core.ActionSelectEasy
	case l.tierBtns[1].Contains(x, y):
		return core.ActionSelectMedium
	case l.tierBtns[2].Contains(x, y):
		return core.ActionSelectHard
	}
	return core.ActionNone
}
