package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/NUDC/wego-game/internal/config"
	"github.com/NUDC/wego-game/internal/core"
	"github.com/NUDC/wego-game/internal/platform/tui"
	"github.com/NUDC/wego-game/internal/registry"
	"github.com/NUDC/wego-game/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the trainer with an exercise picker menu",
	Long: `Start the trainer in interactive menu mode.

Use arrow keys or j/k to navigate, Left/Right to change difficulty,
Enter to start an exercise. After a round ends, you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Left/Right   - Change difficulty
  Enter/Space  - Start exercise
  Tab          - Training log
  V            - Cognitive profile
  Q            - Quit

Examples:
  wego menu
  wego menu --fps 30
  wego menu --db ./training.db`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom difficulty config YAML")
}

func runMenu(_ *cobra.Command, _ []string) {
	if flagConfig != "" {
		config.SetPath(flagConfig)
	}

	// Open training storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open training database: %v\n", err)
		store = nil
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:    width,
		ScreenH:    height,
		TickRate:   flagFPS,
		Seed:       flagSeed,
		Difficulty: core.DifficultyNormal,
	}

	// Menu loop
	for {
		// Show menu and get selection
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size or difficulty changes
		cfg = menuResult.Config

		// Check if user quit
		if menuResult.Quit {
			break
		}

		// Check if user wants the training log
		if menuResult.WantsHistory {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from the log
		}

		// Check if user wants the cognitive profile
		if menuResult.WantsProfile {
			goBack, pErr := tui.RunProfile(store, cfg.ScreenW, cfg.ScreenH)
			if pErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", pErr)
			}
			if goBack {
				continue
			}
			break
		}

		gameID := menuResult.GameID
		if gameID == "" {
			break
		}

		// Create game instance
		game, err := registry.Create(gameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating exercise: %v\n", err)
			continue
		}

		// Fresh seed for each round
		cfg.Seed = time.Now().UnixNano()

		// Run the game
		if err := tui.Run(game, store, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running exercise: %v\n", err)
		}

		// Loop back to menu
	}

	// Cleanup
	if store != nil {
		store.Close()
	}
}
