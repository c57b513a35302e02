package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultInvadersConfig returns the default invaders configuration.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Field: FieldConfig{
			Width:  480,
			Height: 640,
		},
		Player: PlayerConfig{
			Width:        50,
			Height:       20,
			Speed:        10,
			BottomMargin: 10,
		},
		Bullet: BulletConfig{
			Width:       4,
			Height:      10,
			Speed:       15,
			MaxInFlight: 3,
		},
		Enemies: EnemiesConfig{
			Rows:            4,
			Cols:            8,
			Width:           40,
			Height:          20,
			HorzPadding:     20,
			VertPadding:     20,
			XOffset:         30,
			YOffset:         40,
			Speed:           1,
			DescentFraction: 0.25,
		},
		Frame: FrameConfig{
			FPS:          25, // 40ms per frame
			ReleaseTicks: 13, // Covers the usual ~500ms key-repeat delay
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultInvadersYAML
}
