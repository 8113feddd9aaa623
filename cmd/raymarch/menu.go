package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-raymarch/internal/platform/tui"
	"github.com/vovakirdan/tui-raymarch/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick shapes from an interactive menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to render a shape.
Quitting the viewer returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Render shape
  Tab          - Browse saved snapshots
  Q            - Quit

Examples:
  raymarch menu
  raymarch menu --db ./raymarch.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	logger := newLogger()
	cfg := loadConfig()
	store := openStore(logger)

	width, height := terminalSize()

	for {
		menuResult, err := tui.RunMenu(width, height)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}
		width, height = menuResult.Width, menuResult.Height

		if menuResult.Quit {
			break
		}

		if menuResult.WantsSnapshots {
			goBack, sbErr := tui.RunSnapshots(store, width, height)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from snapshot browser
		}

		shape, err := registry.Get(menuResult.ShapeID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}

		if err := tui.Run(shape, viewerOptions(cfg, store, logger, tui.ModePlay)); err != nil {
			fmt.Fprintf(os.Stderr, "Error running viewer: %v\n", err)
		}

		// Loop back to menu
	}

	if store != nil {
		store.Close()
	}
}
