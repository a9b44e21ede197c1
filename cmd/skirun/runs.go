package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ski-runner/internal/games/ski"
	"github.com/vovakirdan/ski-runner/internal/storage"
)

var flagRunsLimit int

var runsCmd = &cobra.Command{
	Use:   "runs [run-id]",
	Short: "Show recent runs",
	Long: `List the most recent finished runs with their stats, or show a single
run by its id.

Examples:
  skirun runs
  skirun runs --limit 5
  skirun runs 6f1c2b7e-...`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 20, "Number of runs to show")
}

func runRuns(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 1 {
		showRun(store, args[0])
		return
	}

	runs, err := store.RecentRuns(ski.GameID, flagRunsLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	fmt.Println("Recent Runs")
	fmt.Println()
	fmt.Printf("  %-10s  %-8s  %-7s  %-5s  %-9s  %-8s  %s\n", "Player", "Score", "Dist", "Years", "Result", "Time", "Date")
	fmt.Printf("  %-10s  %-8s  %-7s  %-5s  %-9s  %-8s  %s\n", "------", "-----", "----", "-----", "------", "----", "----")
	for _, r := range runs {
		fmt.Printf("  %-10s  %-8d  %-7s  %-5d  %-9s  %-8s  %s\n",
			r.Player,
			r.Score,
			fmt.Sprintf("%dm", r.Distance),
			r.Years,
			r.Outcome,
			time.Duration(r.DurationSecs)*time.Second,
			r.CreatedAt.Format("2006-01-02 15:04"),
		)
	}

	stats, err := store.GetGameStats(ski.GameID)
	if err != nil {
		return
	}
	fmt.Println()
	fmt.Printf("Runs: %d  Victories: %d  Best: %d  Farthest: %dm  Average: %.0f\n",
		stats.RunsCount, stats.Victories, stats.HighScore, stats.BestDistance, stats.AvgScore)
}

func showRun(store *storage.Store, runID string) {
	r, err := store.RunByID(runID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving run: %v\n", err)
		os.Exit(1)
	}
	if r == nil {
		fmt.Fprintf(os.Stderr, "Error: run %q not found\n", runID)
		os.Exit(1)
	}

	fmt.Printf("Run %s\n\n", r.RunID)
	fmt.Printf("  Player:    %s\n", r.Player)
	fmt.Printf("  Outcome:   %s\n", r.Outcome)
	fmt.Printf("  Score:     %d\n", r.Score)
	fmt.Printf("  Distance:  %dm\n", r.Distance)
	fmt.Printf("  Years:     %d\n", r.Years)
	fmt.Printf("  Duration:  %s\n", time.Duration(r.DurationSecs)*time.Second)
	fmt.Printf("  Date:      %s\n", r.CreatedAt.Format("2006-01-02 15:04"))
}
