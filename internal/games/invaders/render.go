package invaders

import (
	"math"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Visual characters for rendering
const (
	ShipGlyph   = '█'
	EnemyGlyph  = '▓'
	BulletGlyph = '│'
	GroundGlyph = '─'
)

// Minimum screen size needed to draw a recognizable field.
const (
	minScreenW = 20
	minScreenH = 10
)

// Render draws the current game state into dst. It never changes the game.
// The bottom row is the ground line; the field is scaled into the rows above.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	w, h := dst.Width(), dst.Height()

	if w < minScreenW || h < minScreenH {
		dst.DrawTextCentered(h/2, "Terminal too small", core.ColorYellow)
		return
	}

	if g.gameOver {
		g.renderGameOver(dst)
		return
	}

	v := newViewport(g.cfg.Field, w, h-1)

	for _, e := range g.enemies {
		if e.Alive {
			v.fill(dst, e.Rect(), EnemyGlyph, e.Color)
		}
	}
	for _, b := range g.bullets {
		v.fill(dst, b.Rect(), BulletGlyph, BulletColor)
	}
	v.fill(dst, g.player.Rect(), ShipGlyph, g.player.Color)

	dst.DrawHLine(0, h-1, w, GroundGlyph, core.ColorGray)

	// Informational only: the session stays active with an empty formation
	if g.AliveEnemies() == 0 {
		dst.DrawTextCentered(h/2, "Wave cleared", core.ColorYellow)
	}
}

// renderGameOver draws the end screen.
func (g *Game) renderGameOver(dst *core.Screen) {
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-1, "GAME OVER", core.ColorBrightRed)
	dst.DrawTextCentered(mid+1, "Press R to Restart", core.ColorWhite)
}

// viewport maps field coordinates onto screen cells.
type viewport struct {
	sx, sy float64
}

func newViewport(field config.FieldConfig, cols, rows int) viewport {
	return viewport{
		sx: float64(cols) / field.Width,
		sy: float64(rows) / field.Height,
	}
}

// fill paints the cells covered by r. Anything visible covers at least one cell.
func (v viewport) fill(dst *core.Screen, r core.Rect, glyph rune, c core.Color) {
	x0, x1 := span(r.X, r.Right(), v.sx)
	y0, y1 := span(r.Y, r.Bottom(), v.sy)
	dst.FillRect(x0, y0, x1, y1, glyph, c)
}

// span converts a field interval to a half-open cell interval.
func span(from, to, scale float64) (int, int) {
	a := int(math.Round(from * scale))
	b := int(math.Round(to * scale))
	if b <= a {
		b = a + 1
	}
	return a, b
}
