package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// Formation directions. The whole formation shares one sign.
const (
	DirRight = 1.0
	DirLeft  = -1.0
)

// Player is the ship controlled by the player.
// It only ever moves horizontally.
type Player struct {
	X, Y          float64
	Width, Height float64
	Color         core.Color
}

// Rect returns the player's bounding box.
func (p Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.Width, p.Height)
}

// Bullet is a player projectile travelling straight up.
type Bullet struct {
	X, Y          float64
	Width, Height float64
}

// Rect returns the bullet's bounding box.
func (b Bullet) Rect() core.Rect {
	return core.NewRect(b.X, b.Y, b.Width, b.Height)
}

// Enemy is one slot of the formation grid.
// Destroyed enemies keep their slot with Alive set to false.
type Enemy struct {
	X, Y          float64
	Width, Height float64
	Color         core.Color
	Alive         bool
}

// Rect returns the enemy's bounding box.
func (e Enemy) Rect() core.Rect {
	return core.NewRect(e.X, e.Y, e.Width, e.Height)
}

// Intents holds the input-intent flags set by the input adapter.
type Intents struct {
	Left  bool `yaml:"left"`
	Right bool `yaml:"right"`
	Fire  bool `yaml:"fire"`
}
