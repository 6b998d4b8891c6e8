package tui

import (
	"fmt"

	"github.com/akovalov/tui-aimtrainer/internal/core"
	"github.com/akovalov/tui-aimtrainer/internal/game"
)

// Draw renders one frame of the snapshot onto the screen buffer.
func Draw(s *core.Screen, l Layout, snap game.Snapshot) {
	s.Clear()

	switch snap.Screen {
	case game.ScreenHome:
		drawHome(s, l, snap)
	case game.ScreenPlaying:
		drawField(s, l, snap)
		drawHUD(s, snap)
	case game.ScreenGameOver:
		drawField(s, l, snap)
		drawHUD(s, snap)
		drawGameOver(s, snap)
	case game.ScreenLeaderboard:
		drawLeaderboard(s, snap)
	}
}

// drawHome renders the title, the Play and Leaderboard buttons and the
// difficulty selector row.
func drawHome(s *core.Screen, l Layout, snap game.Snapshot) {
	top := l.playBtn.Y

	s.DrawTextCentered(top-4, "A I M   T R A I N E R", core.ColorBrightCyan)
	s.DrawTextCentered(top-2, "hit targets, dodge nothing, beat the clock", core.ColorGray)

	drawButton(s, l.playBtn, "Play", core.ColorBrightGreen, false)
	drawButton(s, l.boardBtn, "Leaderboard", core.ColorBrightBlue, false)

	tiers := []string{"Easy", "Medium", "Hard"}
	for i, name := range tiers {
		drawButton(s, l.tierBtns[i], name, core.ColorWhite, name == snap.Tier)
	}

	s.DrawTextCentered(s.Height()-2,
		"enter play | l leaderboard | 1-3 difficulty | esc quit", core.ColorGray)
}

// drawButton draws a boxed, centered label. Selected buttons use a bright
// highlight so the active difficulty is readable at a glance.
func drawButton(s *core.Screen, r core.Rect, label string, c core.Color, selected bool) {
	if selected {
		c = core.ColorBrightYellow
	}
	s.DrawBox(r, c)
	_, cy := r.Center()
	x := r.X + (r.W-len(label))/2
	s.DrawText(x, cy, label, c)
}

// drawHUD renders the status line above the playfield.
func drawHUD(s *core.Screen, snap game.Snapshot) {
	hud := fmt.Sprintf(" Time: %2d   Score: %d   %s", snap.RemainingSeconds, snap.Score, snap.Tier)
	s.DrawText(0, 0, hud, core.ColorBrightWhite)
}

// drawField renders the trail, the targets and the crosshair.
func drawField(s *core.Screen, l Layout, snap game.Snapshot) {
	if l.field.W <= 0 || l.field.H <= 0 {
		return
	}

	// Mouse trail, oldest first so recent points draw on top
	for i, p := range snap.Trail {
		x, y := l.CanvasToCell(p)
		c := core.ColorGray
		if i >= len(snap.Trail)/2 {
			c = core.ColorWhite
		}
		s.SetCell(x, y, '·', c)
	}

	for _, t := range snap.Targets {
		drawTarget(s, l, t)
	}

	// Crosshair at the newest trail point
	if n := len(snap.Trail); n > 0 {
		x, y := l.CanvasToCell(snap.Trail[n-1])
		s.SetCell(x, y, '+', core.ColorBrightWhite)
	}
}

// drawTarget fills the cells whose canvas centers fall inside the target.
// Hit targets shrink with the animation and flash white.
func drawTarget(s *core.Screen, l Layout, t game.TargetView) {
	radius := t.Radius * (1 - t.HitProgress)
	if radius <= 0 {
		return
	}

	color := t.Color
	if t.Hit {
		color = core.ColorBrightWhite
	}

	minX, minY := l.CanvasToCell(core.Vec2{X: t.Pos.X - t.Radius, Y: t.Pos.Y - t.Radius})
	maxX, maxY := l.CanvasToCell(core.Vec2{X: t.Pos.X + t.Radius, Y: t.Pos.Y + t.Radius})

	circle := core.Circle{Center: t.Pos, Radius: radius}
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if circle.Contains(l.CellToCanvas(x, y)) {
				s.SetCell(x, y, '█', color)
			}
		}
	}

	// A lone cell keeps small targets visible on coarse terminals
	cx, cy := l.CanvasToCell(t.Pos)
	s.SetCell(cx, cy, '█', color)
}

// drawGameOver renders the end-of-session overlay on top of the field.
func drawGameOver(s *core.Screen, snap game.Snapshot) {
	w := 36
	h := 7
	box := core.NewRect((s.Width()-w)/2, (s.Height()-h)/2, w, h)

	s.DrawRect(box, ' ', core.ColorDefault)
	s.DrawBox(box, core.ColorBrightYellow)

	s.DrawTextCentered(box.Y+1, "TIME'S UP", core.ColorBrightYellow)
	s.DrawTextCentered(box.Y+3, fmt.Sprintf("Score: %d", snap.Score), core.ColorBrightWhite)
	if snap.Rank > 0 {
		s.DrawTextCentered(box.Y+4, fmt.Sprintf("Rank #%d on %s", snap.Rank, snap.Tier), core.ColorBrightGreen)
	}
	s.DrawTextCentered(box.Bottom(), "click or esc for home", core.ColorGray)
}

// drawLeaderboard renders the in-game top score page for the selected tier.
func drawLeaderboard(s *core.Screen, snap game.Snapshot) {
	s.DrawTextCentered(2, fmt.Sprintf("LEADERBOARD - %s", snap.Tier), core.ColorBrightCyan)

	if len(snap.TopScores) == 0 {
		s.DrawTextCentered(5, "No scores yet. Go set one!", core.ColorGray)
	} else {
		for i, score := range snap.TopScores {
			line := fmt.Sprintf("#%d %6d", i+1, score)
			c := core.ColorWhite
			if i == 0 {
				c = core.ColorBrightYellow
			}
			s.DrawTextCentered(4+i, line, c)
		}
	}

	s.DrawTextCentered(s.Height()-2, "click or esc for home", core.ColorGray)
}
