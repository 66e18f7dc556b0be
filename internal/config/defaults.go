package config

import (
	_ "embed"
)

//go:embed defaults/flapp.yaml
var defaultFlappYAML []byte

// DefaultFlappConfig returns the built-in configuration. It mirrors
// defaults/flapp.yaml and is used when the embedded file cannot be parsed.
func DefaultFlappConfig() FlappConfig {
	return FlappConfig{
		World: World{
			Width:    432,
			Height:   720,
			FPS:      60,
			MaxDelta: 4,
		},
		Physics: Physics{
			Gravity:        0.3,
			AntiGravity:    8,
			LimitDY:        9,
			RotationScale:  6,
			RotationOffset: 18,
			MinAngle:       -90,
			MaxAngle:       30,
		},
		Avatar: Avatar{
			X:            0.25 * 432,
			Y:            0.5 * 720,
			Width:        34,
			Height:       24,
			HitboxMargin: 3,
		},
		Obstacles: Obstacles{
			Width:            52,
			Height:           320,
			GapLength:        140,
			GapSpacing:       200,
			MinSeparation:    150,
			UpperLimit:       200 + 50,
			LowerLimit:       720 - 144 - 50,
			SlideSpeed:       2,
			BaseSpawnSeconds: 4,
		},
		Ground: Ground{
			Height:     112,
			Clearance:  2,
			RestOffset: 40,
		},
		Score: Score{
			Y:           50,
			DigitWidth:  24,
			DigitHeight: 36,
		},
		Overlay: Overlay{
			ReadyFade:    0.1,
			HUDFade:      0.1,
			GameOverFade: 0.02,
			RetryFade:    0.02,
		},
		Difficulty: DifficultyConfig{
			Enabled:         true,
			Adjustment:      0.2,
			IntervalMinutes: 2,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultFlappYAML
}
