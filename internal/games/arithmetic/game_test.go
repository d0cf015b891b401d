package arithmetic

import (
	"strings"
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
		Seed:       13,
		Difficulty: d,
	})
	return g
}

// settle runs out any pending feedback delay.
func settle(g *Game) {
	for i := 0; i < 60; i++ {
		g.Step(core.NewInputFrame())
	}
}

func TestOptionsContainAnswerOnce(t *testing.T) {
	g := newTestGame(t, core.DifficultyNormal)

	for n := 0; n < 50; n++ {
		seen := make(map[int]bool)
		hits := 0
		for _, v := range g.problem.Options {
			if v < 0 {
				t.Errorf("Negative option %d in %q", v, g.problem.Text)
			}
			if seen[v] {
				t.Errorf("Duplicate option %d in %q", v, g.problem.Text)
			}
			seen[v] = true
			if v == g.problem.Answer {
				hits++
			}
		}
		if hits != 1 {
			t.Fatalf("Answer appears %d times in options of %q", hits, g.problem.Text)
		}
		if g.problem.Options[g.problem.Correct] != g.problem.Answer {
			t.Fatalf("Correct index does not point at the answer in %q", g.problem.Text)
		}
		g.nextProblem()
	}
}

func TestEasyTierSticksToAdditionSubtraction(t *testing.T) {
	g := newTestGame(t, core.DifficultyEasy)

	for n := 0; n < 50; n++ {
		if strings.Contains(g.problem.Text, "*") {
			t.Fatalf("Easy tier produced a multiplication: %q", g.problem.Text)
		}
		g.nextProblem()
	}
}

func TestComboBonusGrowsAndCaps(t *testing.T) {
	g := newTestGame(t, core.DifficultyNormal)

	// Normal: 10 per correct, +2 per streak step, extra capped at 10
	want := 0
	for i := 1; i <= 8; i++ {
		g.answer(g.problem.Correct)
		want += 10 + core.Min(2*(i-1), 10)
		settle(g)
	}

	if g.score != want {
		t.Errorf("Score = %d, want %d", g.score, want)
	}
	// Streak 7 and 8 both hit the cap: 10+10
	if want != 10+12+14+16+18+20+20+20 {
		t.Fatalf("Test bookkeeping broken: %d", want)
	}
}

func TestWrongAnswerResetsStreak(t *testing.T) {
	g := newTestGame(t, core.DifficultyNormal)

	g.answer(g.problem.Correct)
	settle(g)
	g.answer((g.problem.Correct + 1) % 4)
	settle(g)

	if g.streak != 0 {
		t.Errorf("Streak = %d, want 0", g.streak)
	}
	if g.score != 10 {
		t.Errorf("Score = %d, want 10 (wrong answers score nothing, no penalty)", g.score)
	}

	g.answer(g.problem.Correct)
	if g.score != 20 {
		t.Errorf("Score = %d, want 20 (combo restarts from zero extra)", g.score)
	}
}

func TestAnswerDuringFeedbackDropped(t *testing.T) {
	g := newTestGame(t, core.DifficultyNormal)

	g.answer(g.problem.Correct)
	score := g.score
	g.answer(g.problem.Correct)

	if g.score != score {
		t.Error("Answers during the feedback window must be dropped")
	}
	if g.answered != 1 {
		t.Errorf("Answered = %d, want 1", g.answered)
	}
}

func TestTimeLimitCompletes(t *testing.T) {
	g := newTestGame(t, core.DifficultyNormal)

	g.answer(g.problem.Correct)
	settle(g)

	ticks := g.params.TimeLimitSec*60 + 10
	for i := 0; i < ticks && !g.session.Completed(); i++ {
		g.Step(core.NewInputFrame())
	}

	if !g.session.Completed() {
		t.Fatal("Session should complete when the clock runs out")
	}
	if got := g.session.FinalScore(); got != 10 {
		t.Errorf("Final score = %d, want 10", got)
	}
}

func TestSubtractionNeverNegative(t *testing.T) {
	g := newTestGame(t, core.DifficultyNormal)

	for n := 0; n < 200; n++ {
		if g.problem.Answer < 0 {
			t.Fatalf("Negative result in %q", g.problem.Text)
		}
		g.nextProblem()
	}
}
