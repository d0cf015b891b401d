package core

import "fmt"

// Difficulty selects a parameter tier for a game session.
// It is fixed when the session starts and never changes afterwards.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyNormal Difficulty = "normal"
	DifficultyHard   Difficulty = "hard"
)

// ParseDifficulty validates a difficulty name. An empty string maps to normal.
func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(s) {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return Difficulty(s), nil
	default:
		return "", fmt.Errorf("core: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic content.
type RuntimeConfig struct {
	ScreenW    int        // Screen width in characters
	ScreenH    int        // Screen height in characters
	TickRate   int        // Simulation ticks per second (default 60)
	Seed       int64      // RNG seed for deterministic content
	Difficulty Difficulty // Parameter tier for this session
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		TickRate:   60,
		Seed:       0, // 0 means use current time in platform layer
		Difficulty: DifficultyNormal,
	}
}

// GameState represents the current state of a game session.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the session has reached its terminal state
	Paused   bool // Whether the session is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
