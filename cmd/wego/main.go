// wego is a terminal brain trainer: short cognitive mini-games with
// score tracking and a nine-axis ability profile.
//
// Usage:
//
//	wego list                - List available exercises
//	wego play <game>         - Play an exercise
//	wego menu                - Start menu to pick exercises interactively
//	wego serve               - Start SSH server for remote training
//	wego scores <game>       - Show training stats for an exercise
//	wego history             - Show the recent training log
//	wego profile             - Show the cognitive profile summary
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible sessions
//	--db <path>     - Set database path (default: ~/.wego/training.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/NUDC/wego-game/internal/games/arithmetic"
	_ "github.com/NUDC/wego-game/internal/games/category"
	_ "github.com/NUDC/wego-game/internal/games/digitspan"
	_ "github.com/NUDC/wego-game/internal/games/gridsearch"
	_ "github.com/NUDC/wego-game/internal/games/memory"
	_ "github.com/NUDC/wego-game/internal/games/pathrecall"
	_ "github.com/NUDC/wego-game/internal/games/pattern"
	_ "github.com/NUDC/wego-game/internal/games/reaction"
	_ "github.com/NUDC/wego-game/internal/games/stroop"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wego",
	Short: "wego - Train your brain in the terminal",
	Long: `wego is a terminal-based brain trainer with short cognitive exercises.

Each exercise targets one ability: memory, attention, inhibition,
flexibility, spatial recall, reaction speed, working memory,
calculation, and logic. Results feed a nine-axis profile.

Available commands:
  list     - Show all available exercises
  play     - Play a specific exercise directly
  menu     - Interactive exercise picker menu
  serve    - Start SSH server for remote training
  scores   - View training stats for an exercise
  history  - View the recent training log
  profile  - View the cognitive profile summary

Examples:
  wego list
  wego play stroop
  wego menu
  wego serve --ssh :2222
  wego scores memory`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.wego/training.db", "Path to training database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(profileCmd)
}
