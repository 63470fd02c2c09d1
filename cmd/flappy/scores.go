package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagInteractive bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the top 10 runs and overall stats.

Examples:
  flappy scores
  flappy scores -i        # browse in a table
  flappy scores --clear   # delete every recorded run`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse runs in an interactive table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("open runs database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(); err != nil {
			return err
		}
		fmt.Println("All runs deleted.")
		return nil
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, localPlayer(), width, height)
	}

	runs, err := store.TopRuns(10)
	if err != nil {
		return err
	}

	fmt.Println("High Scores - Flappy")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'flappy play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-12s  %-6s  %-6s  %s\n", "Rank", "Player", "Score", "Items", "Date")
	fmt.Printf("  %-4s  %-12s  %-6s  %-6s  %s\n", "----", "------", "-----", "-----", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-12s  %-6d  %-6d  %s\n",
			i+1, r.Player, r.Score, r.Items, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if stats, err := store.Stats(); err == nil {
		fmt.Printf("Best: %d   Runs: %d   Avg: %.1f   Items: %d\n",
			stats.HighScore, stats.Runs, stats.AvgScore, stats.TotalItems)
	}
	return nil
}
