package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// CheckCollisions resolves bullet hits, then checks whether the formation
// has reached the player. Returns the number of enemies destroyed.
func (g *Game) CheckCollisions() int {
	kills := g.resolveBulletHits()
	if g.enemyReachedPlayer() {
		g.gameOver = true
	}
	return kills
}

// resolveBulletHits evaluates every bullet exactly once. A bullet destroys
// the first live enemy it overlaps in slot order and is removed; bullets
// that hit nothing keep their order.
func (g *Game) resolveBulletHits() int {
	kills := 0
	kept := g.bullets[:0]
	for _, b := range g.bullets {
		if i := g.firstHit(b.Rect()); i >= 0 {
			g.enemies[i].Alive = false
			kills++
			continue
		}
		kept = append(kept, b)
	}
	g.bullets = kept
	return kills
}

// firstHit returns the index of the first live enemy overlapping r, or -1.
func (g *Game) firstHit(r core.Rect) int {
	for i, e := range g.enemies {
		if e.Alive && e.Rect().Intersects(r) {
			return i
		}
	}
	return -1
}

// enemyReachedPlayer reports whether a live enemy's bottom edge has reached
// the player's top edge while overlapping the player horizontally.
func (g *Game) enemyReachedPlayer() bool {
	pr := g.player.Rect()
	for _, e := range g.enemies {
		if !e.Alive {
			continue
		}
		er := e.Rect()
		if er.Bottom() >= pr.Y && er.OverlapsX(pr) {
			return true
		}
	}
	return false
}
