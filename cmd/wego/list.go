package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/NUDC/wego-game/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available exercises",
	Long:  `Shows a list of all exercises registered in the trainer.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No exercises available.")
		return
	}

	fmt.Println("Available exercises:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	maxTitleLen := 5
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
		if len(g.Title) > maxTitleLen {
			maxTitleLen = len(g.Title)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Trains")
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "------")

	// Print games
	for _, g := range games {
		fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, g.ID, maxTitleLen, g.Title, g.Domain)
	}

	fmt.Println()
	fmt.Println("Run 'wego play <id>' to start an exercise.")
}
