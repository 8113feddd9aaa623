package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-raymarch/internal/registry"
	"github.com/vovakirdan/tui-raymarch/internal/storage"
)

var flagHistoryLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent runs",
	Long: `Display recent streaming and viewer sessions, followed by per-shape totals.

Examples:
  raymarch history
  raymarch history --limit 5`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Number of runs to show")
}

func runHistory(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	runs, err := store.RecentRuns(flagHistoryLimit)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Recent runs")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'raymarch' or 'raymarch play' to start one.")
		return
	}

	fmt.Printf("  %-16s  %-8s  %-6s  %8s  %9s  %s\n", "Date", "Shape", "Mode", "Frames", "Exhausted", "Duration")
	fmt.Printf("  %-16s  %-8s  %-6s  %8s  %9s  %s\n", "----", "-----", "----", "------", "---------", "--------")

	for _, r := range runs {
		fmt.Printf("  %-16s  %-8s  %-6s  %8d  %9d  %ds\n",
			r.CreatedAt.Format("2006-01-02 15:04"),
			r.ShapeID,
			r.Mode,
			r.Frames,
			r.ExhaustedRays,
			r.DurationSecs,
		)
	}

	fmt.Println()
	for _, info := range registry.List() {
		stats, err := store.GetShapeStats(info.ID)
		if err != nil || stats.Runs == 0 {
			continue
		}
		fmt.Printf("%s: %d runs, %d frames, %d snapshots\n",
			info.Title, stats.Runs, stats.TotalFrames, stats.Snapshots)
	}
}
