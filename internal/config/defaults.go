package config

import (
	_ "embed"

	"github.com/NUDC/wego-game/internal/core"
)

//go:embed defaults/games.yaml
var defaultGamesYAML []byte

// Default returns the built-in difficulty table, used when no YAML config is
// found. The embedded defaults/games.yaml mirrors these values.
func Default() Config {
	return Config{
		Memory: map[core.Difficulty]MemoryParams{
			core.DifficultyEasy:   {Rows: 3, Cols: 4, TimeLimitSec: 0, MatchDelayMs: 400, MismatchDelayMs: 900},
			core.DifficultyNormal: {Rows: 4, Cols: 4, TimeLimitSec: 90, MatchDelayMs: 400, MismatchDelayMs: 900},
			core.DifficultyHard:   {Rows: 4, Cols: 6, TimeLimitSec: 120, MatchDelayMs: 400, MismatchDelayMs: 900},
		},
		GridSearch: map[core.Difficulty]GridSearchParams{
			core.DifficultyEasy:   {Size: 4, TargetSec: 20},
			core.DifficultyNormal: {Size: 5, TargetSec: 30},
			core.DifficultyHard:   {Size: 6, TargetSec: 45},
		},
		Stroop: map[core.Difficulty]StroopParams{
			core.DifficultyEasy:   {Questions: 15},
			core.DifficultyNormal: {Questions: 20},
			core.DifficultyHard:   {Questions: 25},
		},
		Category: map[core.Difficulty]CategoryParams{
			core.DifficultyEasy:   {Questions: 12},
			core.DifficultyNormal: {Questions: 16},
			core.DifficultyHard:   {Questions: 20},
		},
		PathRecall: map[core.Difficulty]PathRecallParams{
			core.DifficultyEasy:   {GridSize: 3, StartLen: 2, MaxLen: 6, RevealOnMs: 600, RevealOffMs: 250},
			core.DifficultyNormal: {GridSize: 4, StartLen: 3, MaxLen: 7, RevealOnMs: 600, RevealOffMs: 250},
			core.DifficultyHard:   {GridSize: 4, StartLen: 4, MaxLen: 8, RevealOnMs: 500, RevealOffMs: 200},
		},
		Reaction: map[core.Difficulty]ReactionParams{
			core.DifficultyEasy:   {Trials: 3, MinDelayMs: 1500, MaxDelayMs: 3500, TrickChance: 0},
			core.DifficultyNormal: {Trials: 5, MinDelayMs: 1200, MaxDelayMs: 3200, TrickChance: 0.2},
			core.DifficultyHard:   {Trials: 5, MinDelayMs: 1000, MaxDelayMs: 3000, TrickChance: 0.35},
		},
		DigitSpan: map[core.Difficulty]DigitSpanParams{
			core.DifficultyEasy:   {StartLen: 3, MaxLen: 6, MaxAttempts: 3, DigitOnMs: 700, DigitOffMs: 300},
			core.DifficultyNormal: {StartLen: 3, MaxLen: 8, MaxAttempts: 2, DigitOnMs: 700, DigitOffMs: 300},
			core.DifficultyHard:   {StartLen: 4, MaxLen: 9, MaxAttempts: 2, DigitOnMs: 600, DigitOffMs: 250},
		},
		Arithmetic: map[core.Difficulty]ArithmeticParams{
			core.DifficultyEasy:   {TimeLimitSec: 60, PointsPerCorrect: 10, ComboBonus: 2, MaxComboExtra: 10, MaxOperand: 10, Operators: []string{"+", "-"}},
			core.DifficultyNormal: {TimeLimitSec: 60, PointsPerCorrect: 10, ComboBonus: 2, MaxComboExtra: 10, MaxOperand: 20, Operators: []string{"+", "-", "*"}},
			core.DifficultyHard:   {TimeLimitSec: 60, PointsPerCorrect: 10, ComboBonus: 2, MaxComboExtra: 10, MaxOperand: 50, Operators: []string{"+", "-", "*"}},
		},
		Pattern: map[core.Difficulty]PatternParams{
			core.DifficultyEasy:   {Questions: 5, PointsPerCorrect: 50, SpeedBonus: 20},
			core.DifficultyNormal: {Questions: 8, PointsPerCorrect: 60, SpeedBonus: 25},
			core.DifficultyHard:   {Questions: 10, PointsPerCorrect: 70, SpeedBonus: 30},
		},
	}
}
