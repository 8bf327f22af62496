package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/credit-balloons/internal/registry"
	"github.com/vovakirdan/credit-balloons/internal/storage"
)

var (
	flagScoresRecent bool
	flagScoresClear  bool
	flagScoresLimit  int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show best runs for a mode",
	Long: `Display the best runs for a mode. Wins rank first, fastest win
first; unfinished runs follow by score.

Examples:
  balloons scores
  balloons scores balloons_endless
  balloons scores --recent --limit 20
  balloons scores --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "List the latest runs instead of the best")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every recorded run for the mode")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := "balloons"
	if len(args) > 0 {
		gameID = args[0]
	}
	info, ok := registry.Lookup(gameID)
	if !ok {
		return fmt.Errorf("unknown mode %q, run 'balloons list' to see available modes", gameID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("open run database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearRuns(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared all runs for %s.\n", info.Title)
		return nil
	}

	heading, query := "Best Runs", store.TopRuns
	if flagScoresRecent {
		heading, query = "Recent Runs", store.RecentRuns
	}
	runs, err := query(gameID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("%s - %s\n\n", heading, info.Title)
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'balloons play %s' to record the first one!\n", gameID)
		return nil
	}
	printRuns(runs)

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Runs: %d  Wins: %d  Best: %d  Avg: %.0f  Pops: %d\n",
		stats.RunsCount, stats.Wins, stats.HighScore, stats.AvgScore, stats.TotalPops)
	if stats.BestWinTime > 0 {
		fmt.Printf("Fastest win: %s\n", formatDuration(stats.BestWinTime))
	}
	return nil
}

func printRuns(runs []storage.RunResult) {
	const row = "  %-4v  %-6v  %-6v  %-6v  %-5v  %v\n"
	fmt.Printf(row, "#", "Score", "Result", "Time", "Pops", "Date")
	fmt.Printf(row, "--", "-----", "------", "----", "----", "----")
	for i, run := range runs {
		result := "-"
		if run.Won {
			result = "WON"
		}
		fmt.Printf(row, i+1, run.Score, result, formatDuration(run.Duration), run.Pops,
			run.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
}

// formatDuration renders d as m:ss.
func formatDuration(d time.Duration) string {
	s := int(d.Round(time.Second).Seconds())
	return fmt.Sprintf("%d:%02d", s/60, s%60)
}
