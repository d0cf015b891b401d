package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/NUDC/wego-game/internal/registry"
	"github.com/NUDC/wego-game/internal/scoring"
	"github.com/NUDC/wego-game/internal/storage"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show the cognitive profile summary",
	Long: `Display the nine-axis cognitive profile built from the training log.

Each axis is the normalized score of one exercise (0-100). The overall
rating averages across the exercises you have actually played.

Examples:
  wego profile`,
	Run: runProfile,
}

func runProfile(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening training database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	records, err := store.Records()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving log: %v\n", err)
		os.Exit(1)
	}

	var results []scoring.Result
	for _, r := range records {
		results = append(results, scoring.Result{
			GameID:     r.GameID,
			Difficulty: r.Difficulty,
			Score:      r.Score,
		})
	}

	profile := scoring.BuildProfile(results)

	// Map game IDs to titles for display
	titles := make(map[string]string)
	for _, info := range registry.List() {
		titles[info.ID] = info.Title
	}

	fmt.Println("Cognitive Profile")
	fmt.Println()

	for _, axis := range profile.AxisScores {
		title := titles[axis.GameID]
		if title == "" {
			title = axis.GameID
		}
		if !axis.Played {
			fmt.Printf("  %-14s  %-18s  %s\n", axis.Domain, title, "-")
			continue
		}
		bar := renderBar(axis.Score, 20)
		fmt.Printf("  %-14s  %-18s  %3d  %s\n", axis.Domain, title, axis.Score, bar)
	}

	fmt.Println()
	fmt.Printf("Overall: %s (%d)\n", profile.Rating.Label, profile.Average)
	fmt.Println(profile.Rating.Message)
}

// renderBar draws a fixed-width text gauge for a 0-100 value.
func renderBar(value, width int) string {
	filled := value * width / 100
	bar := make([]rune, width)
	for i := range bar {
		if i < filled {
			bar[i] = '#'
		} else {
			bar[i] = '.'
		}
	}
	return string(bar)
}
