package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/NUDC/wego-game/internal/registry"
	"github.com/NUDC/wego-game/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show training stats for an exercise",
	Long: `Display the best score and recent results for the specified exercise.

Examples:
  wego scores memory
  wego scores stroop`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown exercise %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'wego list' to see available exercises.")
		os.Exit(1)
	}

	// Get game title
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating exercise: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	// Open training storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening training database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	stats, err := store.StatsForGame(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Training Stats - %s\n", title)
	fmt.Println()

	if stats.Sessions == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'wego play %s' to set the first score!\n", gameID)
		return
	}

	fmt.Printf("  Sessions: %d\n", stats.Sessions)
	fmt.Printf("  Best:     %d\n", stats.BestScore)
	fmt.Printf("  Average:  %.1f\n", stats.AvgScore)
	if !stats.LastPlayed.IsZero() {
		fmt.Printf("  Last:     %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
	}

	// Recent results, newest first
	records, err := store.RecordsForGame(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving log: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Printf("  %-6s  %-10s  %s\n", "Score", "Difficulty", "Date")
	fmt.Printf("  %-6s  %-10s  %s\n", "-----", "----------", "----")

	shown := 0
	for i := len(records) - 1; i >= 0 && shown < 10; i-- {
		r := records[i]
		fmt.Printf("  %-6d  %-10s  %s\n", r.Score, r.Difficulty, r.CreatedAt.Format("2006-01-02 15:04"))
		shown++
	}
}
