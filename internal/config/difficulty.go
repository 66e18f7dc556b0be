package config

import "math"

// DifficultyManager holds the world speed multiplier of one round.
// Gravity, obstacle slide speed and spawn cadence all scale with it.
type DifficultyManager struct {
	cfg              DifficultyConfig
	framesPerStep    int
	baseSpawnSeconds float64
	baseSlideSpeed   float64

	multiplier    float64
	spawnInterval float64
}

// NewDifficultyManager creates a difficulty manager at multiplier 1.0.
// Steps happen every intervalMinutes*60*fps simulated frames.
func NewDifficultyManager(cfg DifficultyConfig, fps int, baseSpawnSeconds, baseSlideSpeed float64) *DifficultyManager {
	d := &DifficultyManager{
		cfg:              cfg,
		framesPerStep:    int(math.Round(cfg.IntervalMinutes * 60 * float64(fps))),
		baseSpawnSeconds: baseSpawnSeconds,
		baseSlideSpeed:   baseSlideSpeed,
	}
	d.Reset()
	return d
}

// Reset restores the multiplier to 1.0.
func (d *DifficultyManager) Reset() {
	d.multiplier = 1.0
	d.spawnInterval = d.computeSpawnInterval()
}

// IsEnabled returns whether the ramp can ever step.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Adjustment > 0 && d.framesPerStep > 0
}

// FramesPerStep returns the number of frames between steps.
func (d *DifficultyManager) FramesPerStep() int {
	return d.framesPerStep
}

// Multiplier returns the current world speed multiplier.
func (d *DifficultyManager) Multiplier() float64 {
	return d.multiplier
}

// SpawnInterval returns the current obstacle spawn interval in seconds.
func (d *DifficultyManager) SpawnInterval() float64 {
	return d.spawnInterval
}

// Tick steps the multiplier when frame is a positive multiple of the step
// interval. Returns true if it stepped.
func (d *DifficultyManager) Tick(frame int) bool {
	if !d.IsEnabled() || frame <= 0 || frame%d.framesPerStep != 0 {
		return false
	}
	d.multiplier *= 1 + d.cfg.Adjustment
	d.spawnInterval = d.computeSpawnInterval()
	return true
}

func (d *DifficultyManager) computeSpawnInterval() float64 {
	if d.baseSlideSpeed <= 0 {
		return d.baseSpawnSeconds
	}
	return d.baseSpawnSeconds / (d.baseSlideSpeed * d.multiplier)
}
