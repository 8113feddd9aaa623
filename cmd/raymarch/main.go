// raymarch renders an animated signed-distance scene as density glyphs in
// the terminal by sphere tracing one ray per character cell.
//
// Usage:
//
//	raymarch                 - Stream the spinning torus until interrupted
//	raymarch list            - List available shapes
//	raymarch play [shape]    - Interactive viewer with pause, step and snapshots
//	raymarch menu            - Pick shapes from a menu
//	raymarch serve           - Start SSH server for remote viewing
//	raymarch snapshot        - Print a single frame
//	raymarch snapshots       - Browse saved frames
//	raymarch history         - Show recent runs
//
// Global flags:
//
//	--config <path>  - Render config YAML (default search: ~/.raymarch/config.yaml, ./configs/render.yaml)
//	--db <path>      - Set database path (default: ~/.raymarch/raymarch.db)
//	--verbose        - Enable debug logging
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-raymarch/internal/config"
	"github.com/vovakirdan/tui-raymarch/internal/platform/tui"
	"github.com/vovakirdan/tui-raymarch/internal/registry"
	"github.com/vovakirdan/tui-raymarch/internal/render"
	"github.com/vovakirdan/tui-raymarch/internal/scene"
	"github.com/vovakirdan/tui-raymarch/internal/storage"

	// Import shapes to register them
	_ "github.com/vovakirdan/tui-raymarch/internal/shapes"
)

var (
	// Global flags
	flagConfig  string
	flagDBPath  string
	flagVerbose bool
	flagWorkers int

	// Stream flags
	flagShape  string
	flagFrames int
	flagStart  time.Duration
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "raymarch",
	Short: "Raymarch - sphere-traced ASCII animation in your terminal",
	Long: `Raymarch renders a spinning torus as shaded characters by marching
one ray per cell through a signed distance field.

Run without a subcommand to stream frames to stdout until interrupted.

Available commands:
  list       - Show all available shapes
  play       - Interactive viewer for one shape
  menu       - Interactive shape picker
  serve      - Start SSH server for remote viewing
  snapshot   - Print one frame at a given time
  snapshots  - Browse saved frames
  history    - Show recent runs

Examples:
  raymarch
  raymarch --shape sphere --frames 300
  raymarch play torus
  raymarch snapshot --time 1.5s
  raymarch serve --ssh :2222`,
	Args: cobra.NoArgs,
	Run:  runStream,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to render config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.raymarch/raymarch.db", "Path to snapshot and history database")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().IntVar(&flagWorkers, "workers", 0, "Goroutines rendering rows (0 = use config)")

	rootCmd.Flags().StringVar(&flagShape, "shape", "", "Shape to render (default from config)")
	rootCmd.Flags().IntVar(&flagFrames, "frames", 0, "Stop after this many frames (0 = run until interrupted)")
	rootCmd.Flags().DurationVar(&flagStart, "start", 0, "Initial animation clock")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(snapshotsCmd)
	rootCmd.AddCommand(historyCmd)
}

// newLogger creates the stderr logger shared by all commands.
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "raymarch",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// loadConfig loads the render config and applies global overrides.
// Exits the process on invalid configuration.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagWorkers > 0 {
		cfg.Display.Workers = flagWorkers
	}
	return cfg
}

// resolveShape returns the requested shape, falling back to the config's.
// Exits the process for unknown IDs.
func resolveShape(id string, cfg config.Config) scene.Shape {
	if id == "" {
		id = cfg.Scene.Shape
	}
	shape, err := registry.Get(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: unknown shape %q\n", id)
		fmt.Fprintln(os.Stderr, "Run 'raymarch list' to see available shapes.")
		os.Exit(1)
	}
	return shape
}

// openStore opens the database, logging and returning nil on failure.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open database", "error", err)
		return nil
	}
	return store
}

func runStream(_ *cobra.Command, _ []string) {
	logger := newLogger()
	cfg := loadConfig()
	shape := resolveShape(flagShape, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	summary, err := tui.Stream(ctx, os.Stdout, tui.StreamOptions{
		Renderer:  render.New(cfg),
		Shape:     shape,
		Params:    render.ParamsFromConfig(cfg),
		Width:     cfg.Display.Width,
		Height:    cfg.Display.Height,
		Interval:  cfg.FrameInterval(),
		Start:     flagStart,
		MaxFrames: flagFrames,
		Logger:    logger,
	})

	if store := openStore(logger); store != nil {
		_, saveErr := store.SaveRun(storage.Run{
			ShapeID:       shape.ID(),
			Mode:          tui.ModeStream,
			Frames:        summary.Frames,
			ExhaustedRays: summary.Exhausted,
			DurationSecs:  int(summary.Wall.Seconds()),
		})
		if saveErr != nil {
			logger.Warn("could not record run", "error", saveErr)
		}
		store.Close()
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
