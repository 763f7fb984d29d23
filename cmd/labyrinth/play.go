package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-labyrinth/internal/core"
	"github.com/vovakirdan/tui-labyrinth/internal/games/labyrinth"
	"github.com/vovakirdan/tui-labyrinth/internal/platform/tui"
	"github.com/vovakirdan/tui-labyrinth/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagWidth      int
	flagHeight     int
)

// modeAliases maps short names accepted on the command line to registry IDs.
var modeAliases = map[string]string{
	"classic": "labyrinth",
	"endless": "labyrinth_endless",
}

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Walk mazes in the terminal",
	Long: `Generate a maze and watch the walker follow the shortest path.

Modes:
  labyrinth (classic)          - One maze, the run ends at the goal
  labyrinth_endless (endless)  - A new, larger and faster maze after every goal

Controls:
  Up/+, Down/-  - Walk faster / slower
  P/Space       - Pause
  V             - Show or hide the remaining path
  R             - New maze (after the run ends)
  Esc/B         - Back (while paused or finished)
  Ctrl+S        - Save a screenshot
  Q/Ctrl+C      - Quit

Difficulty options:
  easy   - Small mazes, slow walker
  normal - Config defaults
  hard   - Large mazes without loops, fast walker
  fixed  - Endless mode keeps the starting size and speed

Examples:
  labyrinth play
  labyrinth play endless --difficulty hard
  labyrinth play --width 41 --height 21 --seed 7
  labyrinth play --config ./my-labyrinth.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom labyrinth config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().IntVar(&flagWidth, "width", 0, "Maze width in cells (0 = config value)")
	playCmd.Flags().IntVar(&flagHeight, "height", 0, "Maze height in cells (0 = config value)")
}

// resolveMode turns a CLI argument into a registered game ID.
func resolveMode(args []string) (string, error) {
	gameID := "labyrinth"
	if len(args) > 0 {
		gameID = args[0]
	}
	if id, ok := modeAliases[gameID]; ok {
		gameID = id
	}
	if !registry.Exists(gameID) {
		return "", fmt.Errorf("unknown mode %q", gameID)
	}
	return gameID, nil
}

// applyGameFlags hands CLI overrides to the labyrinth package before a game is created.
func applyGameFlags() {
	labyrinth.SetConfigPath(flagConfig)
	labyrinth.SetDifficultyPreset(flagDifficulty)
	labyrinth.SetMazeSize(flagWidth, flagHeight)
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID, err := resolveMode(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'labyrinth list' to see available modes.")
		os.Exit(1)
	}

	applyGameFlags()
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Continue without storage if it cannot be opened
	store := openStore()
	runErr := tui.Run(game, store, runtimeConfig())

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
