package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-labyrinth/internal/storage"
)

var flagRunsLimit int

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show recently walked mazes",
	Long: `List the most recent mazes, newest first. The seed and size of a run
regenerate the same maze with 'labyrinth solve'.

Examples:
  labyrinth runs
  labyrinth runs --limit 5`,
	Args: cobra.NoArgs,
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 20, "Number of runs to show")
}

func runRuns(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	runs, err := store.RecentRuns(flagRunsLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}
	if len(runs) == 0 {
		fmt.Println("No mazes walked yet.")
		return
	}

	fmt.Printf("  %-16s  %-18s  %-7s  %-20s  %-5s  %-5s  %s\n", "Date", "Mode", "Size", "Seed", "Path", "Steps", "Result")
	for _, r := range runs {
		result := "solved"
		if !r.Solved {
			result = "no path"
		}
		fmt.Printf("  %-16s  %-18s  %-7s  %-20d  %-5d  %-5d  %s\n",
			r.CreatedAt.Format("2006-01-02 15:04"),
			r.GameID,
			fmt.Sprintf("%dx%d", r.Width, r.Height),
			r.Seed, r.PathLen, r.Steps, result,
		)
	}
}
