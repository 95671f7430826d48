// Package config provides YAML/TOML configuration loading and validation
// for the game's tunables.
package config

import (
	"errors"
	"fmt"
)

// LevelCount is the number of selectable difficulty levels.
const LevelCount = 6

// Config contains all tunables for the game engine.
type Config struct {
	Field     FieldConfig    `yaml:"field" toml:"field"`
	Body      BodyConfig     `yaml:"body" toml:"body"`
	Obstacles ObstacleConfig `yaml:"obstacles" toml:"obstacles"`
	Physics   PhysicsConfig  `yaml:"physics" toml:"physics"`
	Timing    TimingConfig   `yaml:"timing" toml:"timing"`
}

// FieldConfig defines the playfield in world units.
type FieldConfig struct {
	Width       float64 `yaml:"width" toml:"width"`
	Height      float64 `yaml:"height" toml:"height"`
	SolidBounds bool    `yaml:"solid_bounds" toml:"solid_bounds"`
}

// BodyConfig defines where the controllable body starts and its hitbox.
type BodyConfig struct {
	X      float64 `yaml:"x" toml:"x"`
	Y      float64 `yaml:"y" toml:"y"`
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// ObstacleConfig defines pipe geometry and lifecycle thresholds.
type ObstacleConfig struct {
	Width           float64 `yaml:"width" toml:"width"`
	GapSize         float64 `yaml:"gap_size" toml:"gap_size"`
	GapMargin       float64 `yaml:"gap_margin" toml:"gap_margin"`             // Min distance from gap to field top/bottom
	SpawnThreshold  float64 `yaml:"spawn_threshold" toml:"spawn_threshold"`   // Newest pipe X below this spawns the next one
	RetireThreshold float64 `yaml:"retire_threshold" toml:"retire_threshold"` // Pipe X below this is removed
}

// PhysicsConfig defines body and scroll physics.
type PhysicsConfig struct {
	Lift        float64      `yaml:"lift" toml:"lift"`                 // Upward velocity set by a flap
	ScrollSpeed float64      `yaml:"scroll_speed" toml:"scroll_speed"` // Pipe movement per tick
	Gravity     GravityTable `yaml:"gravity" toml:"gravity"`           // Per difficulty, ordered easiest first
}

// TimingConfig defines the fixed tick rate.
type TimingConfig struct {
	TickRate int `yaml:"tick_rate" toml:"tick_rate"`
}

// GravityTable maps difficulty index to downward acceleration per tick.
type GravityTable []float64

// At returns the gravity for the given level, clamped to the table bounds.
func (g GravityTable) At(level int) float64 {
	if len(g) == 0 {
		return 0
	}
	if level < 0 {
		level = 0
	}
	if level >= len(g) {
		level = len(g) - 1
	}
	return g[level]
}

// Validate checks the gravity table has one strictly increasing positive
// entry per difficulty level.
func (g GravityTable) Validate() error {
	if len(g) != LevelCount {
		return fmt.Errorf("gravity table needs %d entries, got %d", LevelCount, len(g))
	}
	for i, v := range g {
		if v <= 0 {
			return fmt.Errorf("gravity[%d] = %v must be positive", i, v)
		}
		if i > 0 && v <= g[i-1] {
			return fmt.Errorf("gravity[%d] = %v must be greater than gravity[%d] = %v", i, v, i-1, g[i-1])
		}
	}
	return nil
}

// Validate reports every invalid field as a joined error.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Field.Width > 0 && c.Field.Height > 0, "field size must be positive, got %vx%v", c.Field.Width, c.Field.Height)
	check(c.Body.Width > 0 && c.Body.Height > 0, "body size must be positive, got %vx%v", c.Body.Width, c.Body.Height)
	check(c.Body.X >= 0 && c.Body.X < c.Field.Width, "body x %v must lie within the field", c.Body.X)
	check(c.Obstacles.Width > 0, "obstacle width must be positive, got %v", c.Obstacles.Width)
	check(c.Obstacles.GapSize > 0, "gap size must be positive, got %v", c.Obstacles.GapSize)
	check(c.Obstacles.GapMargin >= 0, "gap margin must not be negative, got %v", c.Obstacles.GapMargin)
	check(c.Obstacles.GapSize+2*c.Obstacles.GapMargin <= c.Field.Height,
		"gap size %v plus margins %v does not fit field height %v", c.Obstacles.GapSize, c.Obstacles.GapMargin, c.Field.Height)
	check(c.Obstacles.SpawnThreshold < c.Field.Width,
		"spawn threshold %v must be left of the spawn edge %v", c.Obstacles.SpawnThreshold, c.Field.Width)
	check(c.Obstacles.RetireThreshold < c.Obstacles.SpawnThreshold,
		"retire threshold %v must be left of spawn threshold %v", c.Obstacles.RetireThreshold, c.Obstacles.SpawnThreshold)
	check(c.Physics.Lift > 0, "lift must be positive, got %v", c.Physics.Lift)
	check(c.Physics.ScrollSpeed > 0, "scroll speed must be positive, got %v", c.Physics.ScrollSpeed)
	check(c.Timing.TickRate > 0, "tick rate must be positive, got %d", c.Timing.TickRate)

	if err := c.Physics.Gravity.Validate(); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}
