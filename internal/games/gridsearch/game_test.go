package gridsearch

import (
	"testing"

	"github.com/NUDC/wego-game/internal/core"
)

func newTestGame(t *testing.T, d core.Difficulty) *Game {
	t.Helper()
	g := New()
	g.Reset(core.RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		TickRate:   60,
		Seed:       7,
		Difficulty: d,
	})
	return g
}

// tapValue taps the cell holding value v.
func tapValue(g *Game, v int) {
	for i, n := range g.numbers {
		if n == v {
			g.tap(i)
			return
		}
	}
}

func TestBoardIsPermutation(t *testing.T) {
	g := newTestGame(t, core.DifficultyEasy)

	seen := make(map[int]bool)
	for _, n := range g.numbers {
		seen[n] = true
	}
	total := g.size * g.size
	if len(seen) != total {
		t.Fatalf("Board has %d distinct values, want %d", len(seen), total)
	}
	for v := 1; v <= total; v++ {
		if !seen[v] {
			t.Errorf("Value %d missing from board", v)
		}
	}
}

func TestPerfectFastClear(t *testing.T) {
	g := newTestGame(t, core.DifficultyEasy)

	for v := 1; v <= g.size*g.size; v++ {
		tapValue(g, v)
	}

	if !g.session.Completed() {
		t.Fatal("Finding all numbers should complete the session")
	}
	// Instant clear, no errors: 500 base + 300 within-target bonus
	if got := g.session.FinalScore(); got != 800 {
		t.Errorf("Final score = %d, want 800", got)
	}
}

func TestWrongTapCountsError(t *testing.T) {
	g := newTestGame(t, core.DifficultyEasy)

	tapValue(g, 2) // next is 1
	if g.errors != 1 {
		t.Errorf("Errors = %d, want 1", g.errors)
	}
	if g.next != 1 {
		t.Errorf("Wrong tap must not advance next, got %d", g.next)
	}
}

func TestConsumedCellIsNoOp(t *testing.T) {
	g := newTestGame(t, core.DifficultyEasy)

	tapValue(g, 1)
	tapValue(g, 1)

	if g.errors != 0 {
		t.Errorf("Re-tapping a consumed cell should not count as an error, got %d", g.errors)
	}
	if g.next != 2 {
		t.Errorf("next = %d, want 2", g.next)
	}
}

func TestErrorPenalty(t *testing.T) {
	g := newTestGame(t, core.DifficultyEasy)

	tapValue(g, 5) // one wrong tap
	for v := 1; v <= g.size*g.size; v++ {
		tapValue(g, v)
	}

	// 800 - 20
	if got := g.session.FinalScore(); got != 780 {
		t.Errorf("Final score = %d, want 780", got)
	}
}

func TestSlowClearLosesTimeBonus(t *testing.T) {
	g := newTestGame(t, core.DifficultyEasy)

	// Burn more than twice the target time before finishing
	slow := g.params.TargetSec * 2 * 60
	for i := 0; i <= slow; i++ {
		g.Step(core.NewInputFrame())
	}
	for v := 1; v <= g.size*g.size; v++ {
		tapValue(g, v)
	}

	if got := g.session.FinalScore(); got != 500 {
		t.Errorf("Score past double target = %d, want 500 (base only)", got)
	}
}

func TestScoreClampedAtZero(t *testing.T) {
	g := newTestGame(t, core.DifficultyEasy)

	// 40 errors at -20 each would sink well below zero
	for i := 0; i < 40; i++ {
		tapValue(g, g.next+1)
	}
	slow := g.params.TargetSec * 3 * 60
	for i := 0; i < slow; i++ {
		g.Step(core.NewInputFrame())
	}
	for v := 1; v <= g.size*g.size; v++ {
		tapValue(g, v)
	}

	if got := g.session.FinalScore(); got != 0 {
		t.Errorf("Final score = %d, want 0", got)
	}
}

func TestTapAfterCompletionIgnored(t *testing.T) {
	g := newTestGame(t, core.DifficultyEasy)

	for v := 1; v <= g.size*g.size; v++ {
		tapValue(g, v)
	}
	final := g.session.FinalScore()

	tapValue(g, 1)
	if g.session.FinalScore() != final {
		t.Error("Taps after completion must not change the final score")
	}
}
