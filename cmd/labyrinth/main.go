// labyrinth generates mazes and watches the shortest path through them unfold,
// in the terminal, over SSH or as a JSON API.
//
// Usage:
//
//	labyrinth list              - List available modes
//	labyrinth play [mode]       - Walk mazes in the terminal
//	labyrinth menu              - Pick a mode interactively
//	labyrinth solve             - Print a generated maze and its shortest path
//	labyrinth scores [mode]     - Show high scores
//	labyrinth runs              - Show recently walked mazes
//	labyrinth serve             - Start SSH server for remote play
//	labyrinth api               - Start the HTTP API
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60, or LABYRINTH_FPS)
//	--seed <value>        - Set RNG seed for reproducible mazes
//	--db <path>           - Set database path (default: ~/.labyrinth/labyrinth.db, or LABYRINTH_DB)
//	--log-level <level>   - Set server log level (default: info, or LABYRINTH_LOG_LEVEL)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-labyrinth/internal/config"
	"github.com/vovakirdan/tui-labyrinth/internal/storage"

	// Import games to register them
	_ "github.com/vovakirdan/tui-labyrinth/internal/games/labyrinth"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

// env supplies flag defaults from the environment and an optional .env file.
var env, _ = config.LoadEnv()

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "labyrinth",
	Short: "Labyrinth - watch the shortest path through a maze unfold",
	Long: `Labyrinth carves a random maze, finds the shortest route from the
top-left corner to the bottom-right one, and walks it one cell at a time.

Available commands:
  list     - Show available modes
  play     - Walk mazes directly
  menu     - Interactive mode picker
  solve    - Print a maze and its shortest path without a UI
  scores   - View high scores
  runs     - View recently walked mazes
  serve    - Start SSH server for remote play
  api      - Start the HTTP API

Examples:
  labyrinth play
  labyrinth play endless --difficulty hard
  labyrinth solve --width 31 --height 15 --seed 7
  labyrinth serve --ssh :2222
  labyrinth api --http :8080`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", env.FPS, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", env.DBPath, "Path to scores and runs database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", env.LogLevel, "Log level for servers: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(apiCmd)
}

// openStore opens the database, or warns and returns nil so play can continue without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		return nil
	}
	return store
}
