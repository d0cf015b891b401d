package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/NUDC/wego-game/internal/config"
	"github.com/NUDC/wego-game/internal/core"
	"github.com/NUDC/wego-game/internal/platform/tui"
	"github.com/NUDC/wego-game/internal/registry"
	"github.com/NUDC/wego-game/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play an exercise",
	Long: `Start the specified exercise directly.

Controls:
  1-4          - Answer choice
  WASD/Arrows  - Move cursor
  Enter/Space  - Confirm
  R            - Restart (after the round ends)
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Shorter rounds, smaller boards
  normal - Standard rounds (default)
  hard   - Longer rounds, larger boards

Examples:
  wego play memory
  wego play stroop --difficulty hard
  wego play arithmetic --difficulty easy
  wego play memory --config ./my-games.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom difficulty config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown exercise %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'wego list' to see available exercises.")
		os.Exit(1)
	}

	difficulty, err := core.ParseDifficulty(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Custom difficulty table must be set before the game is created
	if flagConfig != "" {
		config.SetPath(flagConfig)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:    width,
		ScreenH:    height,
		TickRate:   flagFPS,
		Seed:       flagSeed,
		Difficulty: difficulty,
	}

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating exercise: %v\n", err)
		os.Exit(1)
	}

	// Open training storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open training database: %v\n", err)
		// Continue without storage - the exercise still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running exercise: %v\n", runErr)
		os.Exit(1)
	}
}
