package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-raymarch/internal/platform/tui"
	"github.com/vovakirdan/tui-raymarch/internal/storage"
)

var (
	flagSnapsList  bool
	flagSnapsShape string
)

var snapshotsCmd = &cobra.Command{
	Use:   "snapshots [id]",
	Short: "Browse saved frames",
	Long: `Open the snapshot browser, list saved frames, or print one by ID.

Examples:
  raymarch snapshots
  raymarch snapshots --list --shape torus
  raymarch snapshots 12`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSnapshots,
}

func init() {
	snapshotsCmd.Flags().BoolVar(&flagSnapsList, "list", false, "Print a plain list instead of the browser")
	snapshotsCmd.Flags().StringVar(&flagSnapsShape, "shape", "", "Only list snapshots of this shape")
}

func runSnapshots(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case len(args) == 1:
		printSnapshot(store, args[0])
	case flagSnapsList:
		listSnapshots(store)
	default:
		w, h := terminalSize()
		if _, err := tui.RunSnapshots(store, w, h); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
}

func printSnapshot(store *storage.Store, arg string) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid snapshot ID %q\n", arg)
		os.Exit(1)
	}

	snap, err := store.SnapshotByID(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if snap == nil {
		fmt.Fprintf(os.Stderr, "Error: no snapshot with ID %d\n", id)
		os.Exit(1)
	}

	fmt.Print(snap.Content)
}

func listSnapshots(store *storage.Store) {
	snaps, err := store.Snapshots(flagSnapsShape, 50)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving snapshots: %v\n", err)
		os.Exit(1)
	}

	if len(snaps) == 0 {
		fmt.Println("No snapshots saved yet.")
		fmt.Println()
		fmt.Println("Press Ctrl+S in 'raymarch play' or run 'raymarch snapshot --save'.")
		return
	}

	fmt.Printf("  %-6s  %-10s  %-9s  %-7s  %s\n", "ID", "Shape", "Time", "Size", "Saved")
	fmt.Printf("  %-6s  %-10s  %-9s  %-7s  %s\n", "--", "-----", "----", "----", "-----")

	for _, s := range snaps {
		fmt.Printf("  %-6d  %-10s  %-9s  %-7s  %s\n",
			s.ID,
			s.ShapeID,
			fmt.Sprintf("%.3fs", float64(s.ElapsedMS)/1000),
			fmt.Sprintf("%dx%d", s.Width, s.Height),
			s.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
}
