package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-labyrinth/internal/registry"
	"github.com/vovakirdan/tui-labyrinth/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Display the top 10 scores for a mode, or a summary of every mode.

Examples:
  labyrinth scores
  labyrinth scores endless
  labyrinth scores endless --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

var flagClearScores bool

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete all scores for the given mode")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 {
		printAllStats(store)
		return
	}

	gameID, err := resolveMode(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'labyrinth list' to see available modes.")
		os.Exit(1)
	}
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	if flagClearScores {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared scores for %s.\n", game.Title())
		return
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'labyrinth play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}
}

// printAllStats prints one summary line per registered mode.
func printAllStats(store *storage.Store) {
	stats, err := store.GetAllGamesStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		return
	}

	fmt.Printf("  %-18s  %-6s  %-6s  %s\n", "Mode", "Games", "Best", "Average")
	fmt.Printf("  %-18s  %-6s  %-6s  %s\n", "----", "-----", "----", "-------")
	for _, g := range registry.List() {
		s, ok := stats[g.ID]
		if !ok {
			fmt.Printf("  %-18s  %-6d  %-6s  %s\n", g.ID, 0, "-", "-")
			continue
		}
		fmt.Printf("  %-18s  %-6d  %-6d  %.1f\n", g.ID, s.GamesCount, s.HighScore, s.AvgScore)
	}
}
