package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/NUDC/wego-game/internal/registry"
	"github.com/NUDC/wego-game/internal/storage"
)

var flagHistoryLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the recent training log",
	Long: `Display the most recent completed sessions across all exercises.

Examples:
  wego history
  wego history --limit 50`,
	Run: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "Maximum number of sessions to show")
}

func runHistory(_ *cobra.Command, _ []string) {
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

	if len(records) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Play 'wego menu' to start training!")
		return
	}

	// Map game IDs to titles for display
	titles := make(map[string]string)
	for _, info := range registry.List() {
		titles[info.ID] = info.Title
	}

	fmt.Println("Training Log")
	fmt.Println()
	fmt.Printf("  %-18s  %-6s  %-10s  %s\n", "Exercise", "Score", "Difficulty", "Date")
	fmt.Printf("  %-18s  %-6s  %-10s  %s\n", "--------", "-----", "----------", "----")

	shown := 0
	for i := len(records) - 1; i >= 0 && shown < flagHistoryLimit; i-- {
		r := records[i]
		title := titles[r.GameID]
		if title == "" {
			title = r.GameID
		}
		fmt.Printf("  %-18s  %-6d  %-10s  %s\n", title, r.Score, r.Difficulty, r.CreatedAt.Format("2006-01-02 15:04"))
		shown++
	}
}
