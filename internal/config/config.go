// Package config provides YAML-based game configuration loading and
// the difficulty ramp for the game.
package config

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// FlappConfig contains all tunables of the simulation.
// Distances are in world pixels, speeds in pixels per nominal frame.
type FlappConfig struct {
	World      World            `yaml:"world"`
	Physics    Physics          `yaml:"physics"`
	Avatar     Avatar           `yaml:"avatar"`
	Obstacles  Obstacles        `yaml:"obstacles"`
	Ground     Ground           `yaml:"ground"`
	Score      Score            `yaml:"score"`
	Overlay    Overlay          `yaml:"overlay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// World defines the play field and the frame clock.
type World struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	FPS       int     `yaml:"fps"`
	MaxDelta  float64 `yaml:"max_delta"`  // Cap on the per-frame delta after stalls
	ScrollGap float64 `yaml:"scroll_gap"` // Background/ground wrap distance, 0 = world width
}

// Physics defines gravity, the flap impulse and the velocity-to-angle model.
type Physics struct {
	Gravity        float64 `yaml:"gravity"`
	AntiGravity    float64 `yaml:"anti_gravity"` // Flap impulse added to velocity
	LimitDY        float64 `yaml:"limit_dy"`     // Maximum upward velocity
	RotationScale  float64 `yaml:"rotation_scale"`
	RotationOffset float64 `yaml:"rotation_offset"`
	MinAngle       float64 `yaml:"min_angle"`
	MaxAngle       float64 `yaml:"max_angle"`
}

// Avatar defines the avatar sprite and its spawn point.
type Avatar struct {
	X            float64 `yaml:"x"`
	Y            float64 `yaml:"y"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	HitboxMargin float64 `yaml:"hitbox_margin"`
}

// Obstacles defines obstacle pair geometry and spawn policy.
type Obstacles struct {
	Width            float64 `yaml:"width"`
	Height           float64 `yaml:"height"`
	GapLength        float64 `yaml:"gap_length"`
	GapSpacing       float64 `yaml:"gap_spacing"`    // Max random offset between consecutive gaps
	MinSeparation    float64 `yaml:"min_separation"` // Min distance between spawn edge and the trailing pair
	UpperLimit       float64 `yaml:"upper_limit"`
	LowerLimit       float64 `yaml:"lower_limit"`
	SpawnX           float64 `yaml:"spawn_x"` // 0 = world width
	SlideSpeed       float64 `yaml:"slide_speed"`
	BaseSpawnSeconds float64 `yaml:"base_spawn_seconds"`
}

// Ground defines the ground strip.
type Ground struct {
	Height     float64 `yaml:"height"`
	Clearance  float64 `yaml:"clearance"`   // Margin above the ground that already counts as a hit
	RestOffset float64 `yaml:"rest_offset"` // How far a dead avatar may sink into the ground
}

// Score defines score glyph layout.
type Score struct {
	Y           float64 `yaml:"y"`
	DigitWidth  float64 `yaml:"digit_width"`
	DigitHeight float64 `yaml:"digit_height"`
}

// Overlay defines per-tick alpha steps of the prompts.
type Overlay struct {
	ReadyFade    float64 `yaml:"ready_fade"`
	HUDFade      float64 `yaml:"hud_fade"`
	GameOverFade float64 `yaml:"game_over_fade"`
	RetryFade    float64 `yaml:"retry_fade"`
}

// DifficultyConfig defines the real-time difficulty ramp.
type DifficultyConfig struct {
	Enabled         bool    `yaml:"enabled"`
	Adjustment      float64 `yaml:"adjustment"`       // Fractional increase per step (0.2 = +20%)
	IntervalMinutes float64 `yaml:"interval_minutes"` // Real time between steps at the target FPS
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset. Empty means "keep config".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed): %w", s, ErrInvalid)
	}
}

// ApplyPreset modifies the difficulty ramp of cfg based on a preset.
func ApplyPreset(cfg *FlappConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	case DifficultyEasy:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.Adjustment = 0.1
	case DifficultyHard:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.Adjustment = 0.3
		cfg.Difficulty.IntervalMinutes /= 2
	case DifficultyNormal:
		cfg.Difficulty.Enabled = true
	}
}

// EffectiveSpawnX returns the x at which new pairs appear.
func (c FlappConfig) EffectiveSpawnX() float64 {
	if c.Obstacles.SpawnX > 0 {
		return c.Obstacles.SpawnX
	}
	return c.World.Width
}

// EffectiveScrollGap returns the background/ground wrap distance.
func (c FlappConfig) EffectiveScrollGap() float64 {
	if c.World.ScrollGap > 0 {
		return c.World.ScrollGap
	}
	return c.World.Width
}

// Normalize repairs values that have an obvious intended meaning instead of
// rejecting them: inverted gap limits are swapped and negative spacings use
// their magnitude.
func (c *FlappConfig) Normalize() {
	o := &c.Obstacles
	if o.UpperLimit > o.LowerLimit {
		o.UpperLimit, o.LowerLimit = o.LowerLimit, o.UpperLimit
	}
	o.GapSpacing = math.Abs(o.GapSpacing)
	o.MinSeparation = math.Abs(o.MinSeparation)

	p := &c.Physics
	if p.MinAngle > p.MaxAngle {
		p.MinAngle, p.MaxAngle = p.MaxAngle, p.MinAngle
	}

	if c.Difficulty.Adjustment < 0 {
		c.Difficulty.Adjustment = 0
	}
}

// Validate reports every setting the simulation cannot run with.
func (c FlappConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 || math.IsNaN(v) {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	positive("world.width", c.World.Width)
	positive("world.height", c.World.Height)
	if c.World.FPS <= 0 {
		errs = append(errs, fmt.Errorf("world.fps must be positive, got %d", c.World.FPS))
	}
	positive("avatar.width", c.Avatar.Width)
	positive("avatar.height", c.Avatar.Height)
	positive("obstacles.width", c.Obstacles.Width)
	positive("obstacles.gap_length", c.Obstacles.GapLength)
	positive("obstacles.slide_speed", c.Obstacles.SlideSpeed)
	positive("obstacles.base_spawn_seconds", c.Obstacles.BaseSpawnSeconds)
	positive("physics.limit_dy", c.Physics.LimitDY)
	if c.Ground.Height < 0 || c.Ground.Height >= c.World.Height {
		errs = append(errs, fmt.Errorf("ground.height must be in [0, world.height), got %v", c.Ground.Height))
	}
	if c.Difficulty.Enabled && c.Difficulty.IntervalMinutes <= 0 {
		errs = append(errs, fmt.Errorf("difficulty.interval_minutes must be positive when enabled, got %v", c.Difficulty.IntervalMinutes))
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("config: %w: %w", ErrInvalid, errors.Join(errs...))
}
