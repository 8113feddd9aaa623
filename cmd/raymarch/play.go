package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-raymarch/internal/config"
	"github.com/vovakirdan/tui-raymarch/internal/platform/tui"
	"github.com/vovakirdan/tui-raymarch/internal/render"
	"github.com/vovakirdan/tui-raymarch/internal/storage"
)

// viewerChrome is the number of lines below the frame (status and help).
const viewerChrome = 4

var playCmd = &cobra.Command{
	Use:   "play [shape]",
	Short: "View a shape interactively",
	Long: `Start the interactive viewer for the given shape (default from config).

Controls:
  P/Space    - Pause or resume the clock
  .          - Step one frame while paused
  Tab        - Next shape
  R          - Rewind the clock
  Ctrl+S     - Save a snapshot
  Q/Ctrl+C   - Quit

Examples:
  raymarch play
  raymarch play sphere
  raymarch play torus --config ./big.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	logger := newLogger()
	cfg := loadConfig()

	shapeID := ""
	if len(args) == 1 {
		shapeID = args[0]
	}
	shape := resolveShape(shapeID, cfg)

	warnIfTooSmall(cfg)

	store := openStore(logger)

	runErr := tui.Run(shape, viewerOptions(cfg, store, logger, tui.ModePlay))

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running viewer: %v\n", runErr)
		os.Exit(1)
	}
}

// viewerOptions builds viewer options for a local terminal.
func viewerOptions(cfg config.Config, store *storage.Store, logger *log.Logger, mode string) tui.ViewerOptions {
	return tui.ViewerOptions{
		Renderer: render.New(cfg),
		Params:   render.ParamsFromConfig(cfg),
		Width:    cfg.Display.Width,
		Height:   cfg.Display.Height,
		Interval: cfg.FrameInterval(),
		Store:    store,
		Logger:   logger,
		Mode:     mode,
	}
}

// terminalSize returns the stdout terminal size, or 80x24 if unknown.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}

// warnIfTooSmall warns when the fixed frame will not fit the terminal.
func warnIfTooSmall(cfg config.Config) {
	w, h := terminalSize()
	if w < cfg.Display.Width || h < cfg.Display.Height+viewerChrome {
		fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, frame needs %dx%d\n",
			w, h, cfg.Display.Width, cfg.Display.Height+viewerChrome)
	}
}
