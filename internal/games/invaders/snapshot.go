package invaders

import (
	"fmt"
	"math"
)

// Snapshot contains the complete session state for replay and determinism checks.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick      uint64  `yaml:"tick"`
	GameOver  bool    `yaml:"game_over"`
	Direction int     `yaml:"direction"`
	Intents   Intents `yaml:"intents"`

	PlayerX float64 `yaml:"player_x"`
	PlayerY float64 `yaml:"player_y"`

	// Bullets in firing order
	Bullets []PointSnapshot `yaml:"bullets"`

	// Every formation slot in grid order, dead or alive
	Enemies []EnemySnapshot `yaml:"enemies"`
}

// PointSnapshot is a bullet position.
type PointSnapshot struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// EnemySnapshot is the mutable part of a formation slot.
type EnemySnapshot struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Alive bool    `yaml:"alive"`
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	bullets := make([]PointSnapshot, len(g.bullets))
	for i, b := range g.bullets {
		bullets[i] = PointSnapshot{X: b.X, Y: b.Y}
	}

	enemies := make([]EnemySnapshot, len(g.enemies))
	for i, e := range g.enemies {
		enemies[i] = EnemySnapshot{X: e.X, Y: e.Y, Alive: e.Alive}
	}

	return Snapshot{
		Tick:      g.tick,
		GameOver:  g.gameOver,
		Direction: int(g.direction),
		Intents:   g.intents,
		PlayerX:   g.player.X,
		PlayerY:   g.player.Y,
		Bullets:   bullets,
		Enemies:   enemies,
	}
}

// ApplySnapshot restores game state from a snapshot taken from a game with
// the same configuration. A snapshot that does not fit the configuration
// (more bullets than may be in flight, or a different number of formation
// slots) is rejected and the game is left untouched.
func (g *Game) ApplySnapshot(snap Snapshot) error {
	if n := len(snap.Bullets); n > g.cfg.Bullet.MaxInFlight {
		return fmt.Errorf("invaders: snapshot has %d bullets, at most %d may be in flight", n, g.cfg.Bullet.MaxInFlight)
	}
	if n := len(snap.Enemies); n != len(g.enemies) {
		return fmt.Errorf("invaders: snapshot has %d enemy slots, formation has %d", n, len(g.enemies))
	}

	g.tick = snap.Tick
	g.gameOver = snap.GameOver
	g.direction = DirRight
	if snap.Direction < 0 {
		g.direction = DirLeft
	}
	g.intents = snap.Intents
	g.player.X = snap.PlayerX
	g.player.Y = snap.PlayerY

	g.bullets = make([]Bullet, 0, g.cfg.Bullet.MaxInFlight)
	for _, b := range snap.Bullets {
		g.bullets = append(g.bullets, Bullet{
			X:      b.X,
			Y:      b.Y,
			Width:  g.cfg.Bullet.Width,
			Height: g.cfg.Bullet.Height,
		})
	}

	for i, e := range snap.Enemies {
		g.enemies[i].X = e.X
		g.enemies[i].Y = e.Y
		g.enemies[i].Alive = e.Alive
	}
	return nil
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + boolBits(snap.GameOver)
	h = h*31 + uint64(snap.Direction+1) //#nosec G115 -- direction is -1 or 1
	h = h*31 + boolBits(snap.Intents.Left)
	h = h*31 + boolBits(snap.Intents.Right)
	h = h*31 + boolBits(snap.Intents.Fire)
	h = h*31 + math.Float64bits(snap.PlayerX)
	h = h*31 + math.Float64bits(snap.PlayerY)

	h = h*31 + uint64(len(snap.Bullets))
	for _, b := range snap.Bullets {
		h = h*31 + math.Float64bits(b.X)
		h = h*31 + math.Float64bits(b.Y)
	}

	h = h*31 + uint64(len(snap.Enemies))
	for _, e := range snap.Enemies {
		h = h*31 + math.Float64bits(e.X)
		h = h*31 + math.Float64bits(e.Y)
		h = h*31 + boolBits(e.Alive)
	}

	return h
}

func boolBits(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
