// Package config provides YAML/TOML game configuration loading and
// validation for the invaders game.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// InvadersConfig contains all configuration for the invaders game.
// All values are fixed at session start.
type InvadersConfig struct {
	Field   FieldConfig   `yaml:"field" toml:"field"`
	Player  PlayerConfig  `yaml:"player" toml:"player"`
	Bullet  BulletConfig  `yaml:"bullet" toml:"bullet"`
	Enemies EnemiesConfig `yaml:"enemies" toml:"enemies"`
	Frame   FrameConfig   `yaml:"frame" toml:"frame"`
}

// FieldConfig defines the playing field size in field units.
type FieldConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// PlayerConfig defines the player ship.
type PlayerConfig struct {
	Width        float64 `yaml:"width" toml:"width"`
	Height       float64 `yaml:"height" toml:"height"`
	Speed        float64 `yaml:"speed" toml:"speed"`                 // Horizontal step per update
	BottomMargin float64 `yaml:"bottom_margin" toml:"bottom_margin"` // Gap between ship and bottom edge
}

// BulletConfig defines player projectiles.
type BulletConfig struct {
	Width       float64 `yaml:"width" toml:"width"`
	Height      float64 `yaml:"height" toml:"height"`
	Speed       float64 `yaml:"speed" toml:"speed"`                 // Upward step per update
	MaxInFlight int     `yaml:"max_in_flight" toml:"max_in_flight"` // Concurrent bullet cap
}

// EnemiesConfig defines the enemy formation.
type EnemiesConfig struct {
	Rows            int     `yaml:"rows" toml:"rows"`
	Cols            int     `yaml:"cols" toml:"cols"`
	Width           float64 `yaml:"width" toml:"width"`
	Height          float64 `yaml:"height" toml:"height"`
	HorzPadding     float64 `yaml:"horz_padding" toml:"horz_padding"`
	VertPadding     float64 `yaml:"vert_padding" toml:"vert_padding"`
	XOffset         float64 `yaml:"x_offset" toml:"x_offset"`
	YOffset         float64 `yaml:"y_offset" toml:"y_offset"`
	Speed           float64 `yaml:"speed" toml:"speed"`                       // Horizontal step per update
	DescentFraction float64 `yaml:"descent_fraction" toml:"descent_fraction"` // Fraction of enemy height dropped per reversal
}

// FrameConfig defines the platform frame scheduling.
type FrameConfig struct {
	FPS          int `yaml:"fps" toml:"fps"`                     // Target frames per second
	ReleaseTicks int `yaml:"release_ticks" toml:"release_ticks"` // Frames without a key repeat before a key counts as released
}

// FormationWidth returns the width of the full enemy grid.
func (c EnemiesConfig) FormationWidth() float64 {
	if c.Cols <= 0 {
		return 0
	}
	return float64(c.Cols)*c.Width + float64(c.Cols-1)*c.HorzPadding
}

// Descent returns how far the formation drops on each reversal.
func (c EnemiesConfig) Descent() float64 {
	return c.Height * c.DescentFraction
}

// Validate checks that the configuration describes a playable game.
// Every problem found is reported; each wraps ErrInvalidConfig.
func (c InvadersConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidConfig, name, v))
		}
	}
	atLeastOne := func(name string, v int) {
		if v < 1 {
			errs = append(errs, fmt.Errorf("%w: %s must be at least 1, got %d", ErrInvalidConfig, name, v))
		}
	}

	positive("field.width", c.Field.Width)
	positive("field.height", c.Field.Height)

	positive("player.width", c.Player.Width)
	positive("player.height", c.Player.Height)
	positive("player.speed", c.Player.Speed)
	if c.Player.BottomMargin < 0 {
		errs = append(errs, fmt.Errorf("%w: player.bottom_margin must not be negative, got %v", ErrInvalidConfig, c.Player.BottomMargin))
	}

	positive("bullet.width", c.Bullet.Width)
	positive("bullet.height", c.Bullet.Height)
	positive("bullet.speed", c.Bullet.Speed)
	atLeastOne("bullet.max_in_flight", c.Bullet.MaxInFlight)

	atLeastOne("enemies.rows", c.Enemies.Rows)
	atLeastOne("enemies.cols", c.Enemies.Cols)
	positive("enemies.width", c.Enemies.Width)
	positive("enemies.height", c.Enemies.Height)
	positive("enemies.speed", c.Enemies.Speed)
	positive("enemies.descent_fraction", c.Enemies.DescentFraction)

	atLeastOne("frame.fps", c.Frame.FPS)
	atLeastOne("frame.release_ticks", c.Frame.ReleaseTicks)

	// Geometry checks only make sense once the basic sizes are sane
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	if c.Player.Width > c.Field.Width {
		errs = append(errs, fmt.Errorf("%w: player width %v exceeds field width %v", ErrInvalidConfig, c.Player.Width, c.Field.Width))
	}
	if c.Player.Height+c.Player.BottomMargin > c.Field.Height {
		errs = append(errs, fmt.Errorf("%w: player does not fit in field height %v", ErrInvalidConfig, c.Field.Height))
	}
	// The formation may start past an edge, as the default one does. One at
	// least as wide as the field has no room to move sideways at all.
	if c.Enemies.FormationWidth() >= c.Field.Width {
		errs = append(errs, fmt.Errorf("%w: enemy formation width %v does not fit in field width %v",
			ErrInvalidConfig, c.Enemies.FormationWidth(), c.Field.Width))
	}

	return errors.Join(errs...)
}
