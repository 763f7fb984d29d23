package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name searched for in the config directories.
const ConfigFile = "labyrinth.yaml"

// LoadLabyrinth loads the labyrinth configuration.
// Search order: customPath -> ~/.labyrinth/configs/labyrinth.yaml -> ./configs/labyrinth.yaml -> embedded default
// The returned config is normalized.
func LoadLabyrinth(customPath string) (LabyrinthConfig, error) {
	cfg, err := loadLabyrinth(customPath)
	if err != nil {
		return cfg, err
	}
	cfg.Normalize()
	return cfg, nil
}

func loadLabyrinth(customPath string) (LabyrinthConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultLabyrinthConfig(), fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := decodeLabyrinth(data)
		if err != nil {
			return DefaultLabyrinthConfig(), fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(ConfigFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := decodeLabyrinth(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", ConfigFile)); err == nil {
		if cfg, err := decodeLabyrinth(data); err == nil {
			return cfg, nil
		}
	}

	return ParseLabyrinth(defaultLabyrinthYAML), nil
}

// decodeLabyrinth decodes YAML over DefaultLabyrinthConfig, so keys missing
// from the document keep their default values.
func decodeLabyrinth(data []byte) (LabyrinthConfig, error) {
	cfg := DefaultLabyrinthConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return LabyrinthConfig{}, err
	}
	return cfg, nil
}

// ParseLabyrinth decodes YAML, falling back to DefaultLabyrinthConfig on error.
func ParseLabyrinth(data []byte) LabyrinthConfig {
	cfg, err := decodeLabyrinth(data)
	if err != nil {
		return DefaultLabyrinthConfig()
	}
	return cfg
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".labyrinth", "configs", filename)
}

// ApplyLabyrinthPreset modifies the config based on a difficulty preset.
func ApplyLabyrinthPreset(cfg *LabyrinthConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust maze shape based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Maze.Width, cfg.Maze.Height = 15, 11
		cfg.Maze.ExtraPassageDivisor = 6
		cfg.Pacing.MoveEveryTicks = 16
	case DifficultyHard:
		cfg.Maze.Width, cfg.Maze.Height = 41, 21
		cfg.Maze.ExtraPassageDivisor = 0
		cfg.Pacing.MoveEveryTicks = 6
	}
}

// ParsePreset converts a flag value into a preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (use easy, normal, hard, fixed)", s)
	}
}
