// Package config provides YAML-based difficulty parameter tables for the
// trainer games. Each game maps a difficulty tier to a read-only record of
// counts, time limits, reveal speeds and point values.
package config

import (
	"github.com/NUDC/wego-game/internal/core"
)

// MemoryParams configures the card pair matching game.
type MemoryParams struct {
	Rows            int `yaml:"rows"`
	Cols            int `yaml:"cols"` // Rows*Cols must be even
	TimeLimitSec    int `yaml:"time_limit_sec"` // 0 = untimed
	MatchDelayMs    int `yaml:"match_delay_ms"`
	MismatchDelayMs int `yaml:"mismatch_delay_ms"`
}

// GridSearchParams configures the ascending number search game.
type GridSearchParams struct {
	Size      int `yaml:"size"`       // Grid is Size x Size, values 1..Size^2
	TargetSec int `yaml:"target_sec"` // Completion target for the time bonus
}

// StroopParams configures the color-word interference game.
type StroopParams struct {
	Questions int `yaml:"questions"`
}

// CategoryParams configures the word categorization game.
type CategoryParams struct {
	Questions int `yaml:"questions"`
}

// PathRecallParams configures the spatial sequence recall game.
type PathRecallParams struct {
	GridSize    int `yaml:"grid_size"`
	StartLen    int `yaml:"start_len"`
	MaxLen      int `yaml:"max_len"`
	RevealOnMs  int `yaml:"reveal_on_ms"`
	RevealOffMs int `yaml:"reveal_off_ms"`
}

// ReactionParams configures the reaction timing game.
type ReactionParams struct {
	Trials      int     `yaml:"trials"`
	MinDelayMs  int     `yaml:"min_delay_ms"`
	MaxDelayMs  int     `yaml:"max_delay_ms"`
	TrickChance float64 `yaml:"trick_chance"` // Probability of a withdrawn-signal trial
}

// DigitSpanParams configures the reversed digit recall game.
type DigitSpanParams struct {
	StartLen    int `yaml:"start_len"`
	MaxLen      int `yaml:"max_len"`
	MaxAttempts int `yaml:"max_attempts"` // Failures allowed per length before the session ends
	DigitOnMs   int `yaml:"digit_on_ms"`
	DigitOffMs  int `yaml:"digit_off_ms"`
}

// ArithmeticParams configures the timed mental arithmetic game.
type ArithmeticParams struct {
	TimeLimitSec     int      `yaml:"time_limit_sec"`
	PointsPerCorrect int      `yaml:"points_per_correct"`
	ComboBonus       int      `yaml:"combo_bonus"`
	MaxComboExtra    int      `yaml:"max_combo_extra"`
	MaxOperand       int      `yaml:"max_operand"`
	Operators        []string `yaml:"operators"`
}

// PatternParams configures the symbol pattern reasoning game.
type PatternParams struct {
	Questions        int `yaml:"questions"`
	PointsPerCorrect int `yaml:"points_per_correct"`
	SpeedBonus       int `yaml:"speed_bonus"`
}

// Config holds the full difficulty table for all nine games,
// keyed by difficulty tier.
type Config struct {
	Memory     map[core.Difficulty]MemoryParams     `yaml:"memory"`
	GridSearch map[core.Difficulty]GridSearchParams `yaml:"gridsearch"`
	Stroop     map[core.Difficulty]StroopParams     `yaml:"stroop"`
	Category   map[core.Difficulty]CategoryParams   `yaml:"category"`
	PathRecall map[core.Difficulty]PathRecallParams `yaml:"pathrecall"`
	Reaction   map[core.Difficulty]ReactionParams   `yaml:"reaction"`
	DigitSpan  map[core.Difficulty]DigitSpanParams  `yaml:"digitspan"`
	Arithmetic map[core.Difficulty]ArithmeticParams `yaml:"arithmetic"`
	Pattern    map[core.Difficulty]PatternParams    `yaml:"pattern"`
}
