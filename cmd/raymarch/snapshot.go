package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-raymarch/internal/render"
	"github.com/vovakirdan/tui-raymarch/internal/storage"
)

var (
	flagSnapTime  time.Duration
	flagSnapShape string
	flagSnapSave  bool
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Print a single frame",
	Long: `Render one frame at the given animation time and print it to stdout.

The frame is exactly the bytes the stream writes after its cursor-home
sequence, so output is stable for a given config, shape and time.

Examples:
  raymarch snapshot
  raymarch snapshot --time 500ms
  raymarch snapshot --shape sphere --save`,
	Args: cobra.NoArgs,
	Run:  runSnapshot,
}

func init() {
	snapshotCmd.Flags().DurationVar(&flagSnapTime, "time", 0, "Animation clock for the frame")
	snapshotCmd.Flags().StringVar(&flagSnapShape, "shape", "", "Shape to render (default from config)")
	snapshotCmd.Flags().BoolVar(&flagSnapSave, "save", false, "Also store the frame in the database")
}

func runSnapshot(_ *cobra.Command, _ []string) {
	logger := newLogger()
	cfg := loadConfig()
	shape := resolveShape(flagSnapShape, cfg)

	r := render.New(cfg)
	seconds := float32(flagSnapTime.Milliseconds()) / 1000
	content := r.RenderString(shape, render.ParamsFromConfig(cfg), seconds, cfg.Display.Width, cfg.Display.Height)

	fmt.Print(content)

	if !flagSnapSave {
		return
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	id, err := store.SaveSnapshot(storage.Snapshot{
		ShapeID:   shape.ID(),
		ElapsedMS: flagSnapTime.Milliseconds(),
		Width:     cfg.Display.Width,
		Height:    cfg.Display.Height,
		Content:   content,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error saving snapshot: %v\n", err)
		os.Exit(1)
	}
	logger.Info("snapshot saved", "id", id, "shape", shape.ID())
}
