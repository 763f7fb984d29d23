package config

import (
	_ "embed"
)

//go:embed defaults/labyrinth.yaml
var defaultLabyrinthYAML []byte

// DefaultLabyrinthConfig returns the built-in configuration.
// It mirrors defaults/labyrinth.yaml and is used if the embedded file cannot be parsed.
func DefaultLabyrinthConfig() LabyrinthConfig {
	return LabyrinthConfig{
		Maze: MazeConfig{
			Width:               21,
			Height:              15,
			ExtraPassageDivisor: 10,
		},
		Pacing: PacingConfig{
			MoveEveryTicks:    12,
			MinMoveEveryTicks: 1,
			MaxMoveEveryTicks: 120,
		},
		Display: DisplayConfig{
			ShowPath:    false,
			ShowVisited: true,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "mazes",
				MaxAt: 10,
			},
			Scaling: ScalingConfig{
				SizeGrowth:      20,
				SpeedMultiplier: 2.0,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "labyrinth", "labyrinth_endless":
		return defaultLabyrinthYAML
	default:
		return nil
	}
}
