package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// MovePlayer moves the ship one step per held direction.
// Left is applied before right, so holding both nets out when neither is
// clamped. Each step is clamped to keep the ship inside the field.
func (g *Game) MovePlayer() {
	maxX := g.cfg.Field.Width - g.player.Width
	if g.intents.Left {
		g.player.X = core.ClampF(g.player.X-g.cfg.Player.Speed, 0, maxX)
	}
	if g.intents.Right {
		g.player.X = core.ClampF(g.player.X+g.cfg.Player.Speed, 0, maxX)
	}
}

// MoveBullets moves every bullet up and drops those that reached the top.
func (g *Game) MoveBullets() {
	kept := g.bullets[:0]
	for _, b := range g.bullets {
		b.Y -= g.cfg.Bullet.Speed
		if b.Y > 0 {
			kept = append(kept, b)
		}
	}
	g.bullets = kept
}

// MoveEnemies moves the live enemies sideways as one formation. If any of
// them touches a side of the field, the formation reverses and every slot
// drops by the configured descent, once per update.
func (g *Game) MoveEnemies() {
	step := g.cfg.Enemies.Speed * g.direction
	reverse := false

	for i := range g.enemies {
		e := &g.enemies[i]
		if !e.Alive {
			continue
		}
		e.X += step
		if e.X <= 0 || e.X+e.Width >= g.cfg.Field.Width {
			reverse = true
		}
	}

	if !reverse {
		return
	}

	g.direction = -g.direction
	descent := g.cfg.Enemies.Descent()
	for i := range g.enemies {
		g.enemies[i].Y += descent
	}
}
