package config

import "math"

// Progress is what difficulty progression is measured against.
type Progress struct {
	Score int
	Ticks int
	Level int // 1-based game level
}

// DifficultyManager calculates dynamic game parameters based on progress.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: cfg.InitialLevel,
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0).
func (d *DifficultyManager) Level(p Progress) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(p.Score) / maxAt
	case "time":
		progress = float64(p.Ticks) / maxAt
	case "level":
		progress = float64(max(p.Level-1, 0)) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// MoveChance scales an executive movement probability, capped at 1.
func (d *DifficultyManager) MoveChance(base float64, p Progress) float64 {
	level := d.Level(p)
	return math.Min(1, base*(1.0+level*d.cfg.Scaling.MoveChanceMultiplier))
}

// VisionDistance extends executive sight as difficulty rises.
func (d *DifficultyManager) VisionDistance(base float64, p Progress) float64 {
	return base + d.Level(p)*d.cfg.Scaling.VisionBonus
}

// ScaredTicks shortens how long executives stay scared.
func (d *DifficultyManager) ScaredTicks(base int, p Progress) int {
	reduction := int(d.Level(p) * float64(d.cfg.Scaling.ScaredReduction))
	result := base - reduction
	if result < 60 { // One second at 60 Hz
		result = 60
	}
	return result
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
