package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/thecubes/internal/registry"
	"github.com/vovakirdan/thecubes/internal/storage"
)

var (
	flagClear bool
	flagRuns  int
)

var scoresCmd = &cobra.Command{
	Use:   "scores <mode>",
	Short: "Show high scores for a mode",
	Long: `Display the top 10 high scores, totals and the most recent runs for
the specified mode.

Examples:
  cubes scores cubes
  cubes scores cubes_wrap --runs 20
  cubes scores cubes --clear`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores and runs of the mode")
	scoresCmd.Flags().IntVar(&flagRuns, "runs", 5, "Number of recent runs to show")
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID := args[0]
	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("unknown mode %q, run 'cubes list' to see available modes", gameID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		logger.Info("scores cleared", "game", gameID)
		fmt.Printf("Cleared scores for %s.\n", game.Title())
		return nil
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'cubes play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Best: %d  Games: %d  Average: %.1f  Diamonds: %d\n",
		stats.HighScore, stats.GamesCount, stats.AvgScore, stats.Diamonds)

	if flagRuns <= 0 {
		return nil
	}
	runs, err := store.RecentRuns(gameID, flagRuns)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		return nil
	}

	fmt.Println()
	fmt.Println("Recent runs:")
	fmt.Printf("  %-6s  %-7s  %-7s  %-9s  %-7s  %s\n", "Score", "Ticks", "Spawned", "Despawned", "Wrapped", "Diamonds")
	for _, r := range runs {
		fmt.Printf("  %-6d  %-7d  %-7d  %-9d  %-7d  %d\n", r.Score, r.Ticks, r.Spawned, r.Despawned, r.Wrapped, r.Diamonds)
	}
	return nil
}
