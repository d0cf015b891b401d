package category

import (
	"testing"

	"github.com/NUDC/wego-game/internal/core"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := New()
	g.Reset(core.RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		TickRate:   60,
		Seed:       3,
		Difficulty: core.DifficultyEasy,
	})
	return g
}

// settle runs out any pending feedback delay.
func settle(g *Game) {
	for i := 0; i < 50; i++ {
		g.Step(core.NewInputFrame())
	}
}

func TestTwoDistinctCategories(t *testing.T) {
	g := newTestGame(t)

	if g.left.Name == g.right.Name {
		t.Fatalf("Both buckets are %q; categories must differ", g.left.Name)
	}
	if len(g.questions) != g.params.Questions {
		t.Fatalf("Question count = %d, want %d", len(g.questions), g.params.Questions)
	}
}

func TestQuestionsBelongToPickedCategories(t *testing.T) {
	g := newTestGame(t)

	member := func(set wordSet, w string) bool {
		for _, s := range set.Words {
			if s == w {
				return true
			}
		}
		return false
	}

	for _, q := range g.questions {
		switch q.Bucket {
		case 0:
			if !member(g.left, q.Word) {
				t.Errorf("%q labeled bucket 0 but not in %s", q.Word, g.left.Name)
			}
		case 1:
			if !member(g.right, q.Word) {
				t.Errorf("%q labeled bucket 1 but not in %s", q.Word, g.right.Name)
			}
		default:
			t.Errorf("Bucket out of range: %d", q.Bucket)
		}
	}
}

func TestCorrectAndStreakBonus(t *testing.T) {
	g := newTestGame(t)

	for i := 0; i < 3; i++ {
		g.answer(g.questions[g.current].Bucket)
		settle(g)
	}

	// 3 correct = 30, plus 15 streak bonus at streak 3
	if g.score != 45 {
		t.Errorf("Score = %d, want 45", g.score)
	}
}

func TestWrongAnswerGoesNegative(t *testing.T) {
	g := newTestGame(t)

	wrong := 1 - g.questions[g.current].Bucket
	g.answer(wrong)

	if g.score != -5 {
		t.Errorf("Running score = %d, want -5 (no per-answer clamp)", g.score)
	}
	if g.streak != 0 {
		t.Errorf("Streak = %d, want 0", g.streak)
	}
}

func TestFinalScoreClampedAtZero(t *testing.T) {
	g := newTestGame(t)

	for !g.session.Completed() {
		g.answer(1 - g.questions[g.current].Bucket)
		settle(g)
	}

	if g.score >= 0 {
		t.Fatalf("Running score = %d, expected negative after all-wrong run", g.score)
	}
	if got := g.session.FinalScore(); got != 0 {
		t.Errorf("FinalScore = %d, want 0", got)
	}
}

func TestAnswerDuringFeedbackDropped(t *testing.T) {
	g := newTestGame(t)

	g.answer(g.questions[g.current].Bucket)
	score := g.score
	g.answer(0)
	g.answer(1)

	if g.score != score {
		t.Error("Answers during the feedback window must be dropped")
	}
}

func TestCompletesAfterAllQuestions(t *testing.T) {
	g := newTestGame(t)

	for i := 0; i < g.params.Questions; i++ {
		g.answer(g.questions[g.current].Bucket)
		settle(g)
	}

	if !g.session.Completed() {
		t.Fatal("Session should complete after the final word")
	}
	if g.session.FinalScore() != g.score {
		t.Errorf("FinalScore = %d, want %d", g.session.FinalScore(), g.score)
	}
}
