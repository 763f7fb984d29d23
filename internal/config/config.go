// Package config provides YAML-based game configuration loading,
// environment overrides and difficulty management for the labyrinth.
package config

// LabyrinthConfig contains all configuration for the labyrinth game.
type LabyrinthConfig struct {
	Maze       MazeConfig       `yaml:"maze"`
	Pacing     PacingConfig     `yaml:"pacing"`
	Display    DisplayConfig    `yaml:"display"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// MazeConfig defines the generated grid.
type MazeConfig struct {
	Width               int `yaml:"width"`
	Height              int `yaml:"height"`
	ExtraPassageDivisor int `yaml:"extra_passage_divisor"` // 0 disables extra passages; omitted keeps the default
}

// PacingConfig defines how fast the walker consumes the path.
type PacingConfig struct {
	MoveEveryTicks    int `yaml:"move_every_ticks"`
	MinMoveEveryTicks int `yaml:"min_move_every_ticks"`
	MaxMoveEveryTicks int `yaml:"max_move_every_ticks"`
}

// DisplayConfig defines optional overlays.
type DisplayConfig struct {
	ShowPath    bool `yaml:"show_path"`    // Dots along the remaining route
	ShowVisited bool `yaml:"show_visited"` // Trail of cells already walked
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "mazes" or "none"
	MaxAt int    `yaml:"max_at"` // Mazes solved at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SizeGrowth      int     `yaml:"size_growth"`      // Cells added to width and height at max difficulty
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Walker speed factor added at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// OddCeil rounds n up to the next odd number so the default start and goal
// share the carving lattice.
func OddCeil(n int) int {
	if n%2 == 0 {
		return n + 1
	}
	return n
}

// Normalize fills zero values with defaults and rounds the maze size to odd.
func (c *LabyrinthConfig) Normalize() {
	def := DefaultLabyrinthConfig()
	if c.Maze.Width <= 0 {
		c.Maze.Width = def.Maze.Width
	}
	if c.Maze.Height <= 0 {
		c.Maze.Height = def.Maze.Height
	}
	c.Maze.Width = OddCeil(c.Maze.Width)
	c.Maze.Height = OddCeil(c.Maze.Height)
	if c.Maze.ExtraPassageDivisor < 0 {
		c.Maze.ExtraPassageDivisor = 0
	}

	if c.Pacing.MinMoveEveryTicks <= 0 {
		c.Pacing.MinMoveEveryTicks = def.Pacing.MinMoveEveryTicks
	}
	if c.Pacing.MaxMoveEveryTicks < c.Pacing.MinMoveEveryTicks {
		c.Pacing.MaxMoveEveryTicks = max(c.Pacing.MinMoveEveryTicks, def.Pacing.MaxMoveEveryTicks)
	}
	if c.Pacing.MoveEveryTicks <= 0 {
		c.Pacing.MoveEveryTicks = def.Pacing.MoveEveryTicks
	}
	c.Pacing.MoveEveryTicks = clampI(c.Pacing.MoveEveryTicks, c.Pacing.MinMoveEveryTicks, c.Pacing.MaxMoveEveryTicks)
}

// ExtraPassages returns the number of random passages for a maze of the given size.
func (c MazeConfig) ExtraPassages(width, height int) int {
	if c.ExtraPassageDivisor <= 0 {
		return 0
	}
	return width * height / c.ExtraPassageDivisor
}
