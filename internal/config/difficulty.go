package config

import "math"

// DifficultyManager calculates maze size and walker pacing from the number of
// mazes solved in an endless run.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
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

// Level returns the current difficulty level (0.0 to 1.0) after solved mazes.
func (d *DifficultyManager) Level(solved int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "mazes":
		progress = float64(solved) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// MazeSize grows the base dimensions with difficulty. The result is always odd.
func (d *DifficultyManager) MazeSize(baseW, baseH, solved int) (int, int) {
	growth := int(d.Level(solved) * float64(d.cfg.Scaling.SizeGrowth))
	return OddCeil(baseW + growth), OddCeil(baseH + growth/2)
}

// MoveEveryTicks shortens the step interval as difficulty increases.
// The walker never moves more than once per tick.
func (d *DifficultyManager) MoveEveryTicks(base, solved int) int {
	factor := 1.0 + d.Level(solved)*d.cfg.Scaling.SpeedMultiplier
	if factor <= 0 {
		factor = 1
	}
	return max(1, int(math.Round(float64(base)/factor)))
}

// clampF restricts a float64 to [lo, hi].
func clampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}

func clampI(val, lo, hi int) int {
	return max(lo, min(hi, val))
}
