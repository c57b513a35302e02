// Package invaders implements the invaders simulation engine: a ship at the
// bottom of the field shoots at a descending enemy formation.
//
// The engine is a single-threaded state machine advanced once per frame.
// It has no knowledge of terminals or key events; the platform translates
// those into intent flags and reads the state back for rendering.
package invaders

import (
	"fmt"
	"slices"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Visual attributes of the game entities.
const (
	PlayerColor = core.ColorGreen
	EnemyColor  = core.ColorRed
	BulletColor = core.ColorWhite
)

// Game implements the invaders simulation.
// The zero value is not usable; create instances with New or NewWithConfig.
type Game struct {
	cfg     config.InvadersConfig
	runtime core.RuntimeConfig

	player    Player
	bullets   []Bullet
	enemies   []Enemy
	intents   Intents
	direction float64
	gameOver  bool
	tick      uint64
}

// New creates a game using the built-in default configuration.
func New() *Game {
	g, err := NewWithConfig(config.DefaultInvadersConfig())
	if err != nil {
		// Defaults are covered by tests; reaching this is a programming error
		panic(fmt.Sprintf("invaders: default config rejected: %v", err))
	}
	return g
}

// NewWithConfig creates a game in the initial Active state.
// It fails fast if the configuration is not playable.
func NewWithConfig(cfg config.InvadersConfig) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invaders: %w", err)
	}

	g := &Game{
		cfg:     cfg,
		runtime: core.DefaultConfig(),
	}
	g.ResetSession()
	return g, nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "invaders"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Invaders"
}

// Reset records the runtime (screen) configuration and restarts the session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.ResetSession()
}

// ResetSession re-initializes every piece of session state exactly as at
// construction. Calling it repeatedly always yields the same state.
func (g *Game) ResetSession() {
	g.player = Player{
		X:      g.cfg.Field.Width/2 - g.cfg.Player.Width/2,
		Y:      g.cfg.Field.Height - g.cfg.Player.Height - g.cfg.Player.BottomMargin,
		Width:  g.cfg.Player.Width,
		Height: g.cfg.Player.Height,
		Color:  PlayerColor,
	}
	g.bullets = make([]Bullet, 0, g.cfg.Bullet.MaxInFlight)
	g.enemies = g.buildFormation()
	g.intents = Intents{}
	g.direction = DirRight
	g.gameOver = false
	g.tick = 0
}

// buildFormation creates the full enemy grid, row by row.
func (g *Game) buildFormation() []Enemy {
	e := g.cfg.Enemies
	enemies := make([]Enemy, 0, e.Rows*e.Cols)
	for row := range e.Rows {
		for col := range e.Cols {
			enemies = append(enemies, Enemy{
				X:      e.XOffset + float64(col)*(e.Width+e.HorzPadding),
				Y:      e.YOffset + float64(row)*(e.Height+e.VertPadding),
				Width:  e.Width,
				Height: e.Height,
				Color:  EnemyColor,
				Alive:  true,
			})
		}
	}
	return enemies
}

// SetLeft sets the move-left intent.
func (g *Game) SetLeft(pressed bool) {
	g.intents.Left = pressed
}

// SetRight sets the move-right intent.
func (g *Game) SetRight(pressed bool) {
	g.intents.Right = pressed
}

// SetFire sets the fire intent. It does not fire by itself.
func (g *Game) SetFire(pressed bool) {
	g.intents.Fire = pressed
}

// Fire launches a bullet from the player's horizontal center if the fire
// intent is asserted and fewer than the maximum bullets are in flight.
// Returns whether a bullet was added.
func (g *Game) Fire() bool {
	if g.gameOver || !g.intents.Fire || len(g.bullets) >= g.cfg.Bullet.MaxInFlight {
		return false
	}
	g.bullets = append(g.bullets, Bullet{
		X:      g.player.Rect().CenterX() - g.cfg.Bullet.Width/2,
		Y:      g.player.Y,
		Width:  g.cfg.Bullet.Width,
		Height: g.cfg.Bullet.Height,
	})
	return true
}

// PressFire handles a fire key-down: it asserts the fire intent and fires
// once, but only on the transition from released to pressed.
func (g *Game) PressFire() bool {
	if g.intents.Fire {
		return false
	}
	g.intents.Fire = true
	return g.Fire()
}

// ReleaseFire handles a fire key-up.
func (g *Game) ReleaseFire() {
	g.intents.Fire = false
}

// Update advances the simulation by one frame: player, bullets, enemies,
// then collisions. It does nothing once the game is over.
func (g *Game) Update() {
	if g.gameOver {
		return
	}
	g.tick++
	g.MovePlayer()
	g.MoveBullets()
	g.MoveEnemies()
	g.CheckCollisions()
}

// Step applies one frame of platform input and advances the simulation.
// Held Left/Right/Fire actions drive the intents; Fire is edge-triggered.
// Restart only has an effect while the game is over.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		if in.Has(core.ActionRestart) {
			g.ResetSession()
		}
		return core.StepResult{State: g.State()}
	}

	g.SetLeft(in.Has(core.ActionLeft))
	g.SetRight(in.Has(core.ActionRight))
	if in.Has(core.ActionFire) {
		g.PressFire()
	} else {
		g.ReleaseFire()
	}

	g.Update()
	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Tick:     g.tick,
		GameOver: g.gameOver,
	}
}

// GameOver reports whether an enemy has reached the player.
func (g *Game) GameOver() bool {
	return g.gameOver
}

// Player returns the current player.
func (g *Game) Player() Player {
	return g.player
}

// Bullets returns a copy of the bullets in flight, in firing order.
func (g *Game) Bullets() []Bullet {
	return slices.Clone(g.bullets)
}

// Enemies returns a copy of every formation slot, dead or alive.
func (g *Game) Enemies() []Enemy {
	return slices.Clone(g.enemies)
}

// AliveEnemies returns how many enemies are still alive.
func (g *Game) AliveEnemies() int {
	n := 0
	for _, e := range g.enemies {
		if e.Alive {
			n++
		}
	}
	return n
}

// Direction returns the shared formation direction (+1 right, -1 left).
func (g *Game) Direction() float64 {
	return g.direction
}

// Intents returns the current input-intent flags.
func (g *Game) Intents() Intents {
	return g.intents
}
