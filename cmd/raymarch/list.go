package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-raymarch/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available shapes",
	Long:  `Shows a list of all shapes the renderer can trace.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	shapes := registry.List()

	if len(shapes) == 0 {
		fmt.Println("No shapes available.")
		return
	}

	fmt.Println("Available shapes:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, s := range shapes {
		if len(s.ID) > maxIDLen {
			maxIDLen = len(s.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, s := range shapes {
		marker := ""
		if s.ID == registry.DefaultID {
			marker = " (default)"
		}
		fmt.Printf("  %-*s  %s%s\n", maxIDLen, s.ID, s.Title, marker)
	}

	fmt.Println()
	fmt.Println("Run 'raymarch play <id>' to view a shape.")
}
