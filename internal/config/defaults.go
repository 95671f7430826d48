package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration. It mirrors defaults/flappy.yaml
// and is used when the embedded file cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Field: FieldConfig{
			Width:       400,
			Height:      600,
			SolidBounds: false,
		},
		Body: BodyConfig{
			X:      100,
			Y:      300,
			Width:  34,
			Height: 24,
		},
		Obstacles: ObstacleConfig{
			Width:           52,
			GapSize:         150,
			GapMargin:       80,
			SpawnThreshold:  200,
			RetireThreshold: -60,
		},
		Physics: PhysicsConfig{
			Lift:        10,
			ScrollSpeed: 1,
			Gravity:     GravityTable{0.5, 0.98, 1.3, 1.6, 2.0, 2.5},
		},
		Timing: TimingConfig{
			TickRate: 50,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
