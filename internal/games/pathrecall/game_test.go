package pathrecall

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
		Seed:       9,
		Difficulty: core.DifficultyEasy,
	})
	return g
}

// waitForInput ticks until the reveal finishes and input opens.
func waitForInput(t *testing.T, g *Game) {
	t.Helper()
	for i := 0; i < 5000; i++ {
		if g.session.Phase == core.PhaseInput && !g.session.TransitionPending() {
			return
		}
		if g.session.Completed() {
			return
		}
		g.Step(core.NewInputFrame())
	}
	t.Fatal("Reveal never finished")
}

// playRound repeats the current sequence correctly.
func playRound(t *testing.T, g *Game) {
	t.Helper()
	waitForInput(t, g)
	for _, cell := range append([]int(nil), g.seq...) {
		g.pick(cell)
	}
}

func TestSequenceCellsDistinct(t *testing.T) {
	g := newTestGame(t)

	if len(g.seq) != g.params.StartLen {
		t.Fatalf("Starting length = %d, want %d", len(g.seq), g.params.StartLen)
	}
	seen := make(map[int]bool)
	for _, c := range g.seq {
		if seen[c] {
			t.Errorf("Cell %d repeated in sequence", c)
		}
		seen[c] = true
	}
}

func TestInputClosedDuringReveal(t *testing.T) {
	g := newTestGame(t)

	if g.session.Phase != core.PhaseShowing {
		t.Fatalf("Phase = %v, want Showing right after reset", g.session.Phase)
	}
	g.pick(g.seq[0])
	if g.entryPos != 0 {
		t.Error("Picks during the reveal must be dropped")
	}
}

func TestCleanRunScoresFullAndSucceeds(t *testing.T) {
	g := newTestGame(t)

	for !g.session.Completed() {
		playRound(t, g)
	}

	if !g.success {
		t.Error("Clearing every length should end in success")
	}
	// Easy: lengths 2..6, 50 points per cell
	if got := g.session.FinalScore(); got != 1000 {
		t.Errorf("Final score = %d, want 1000", got)
	}
}

func TestFirstFailureGrantsRetrySameSequence(t *testing.T) {
	g := newTestGame(t)
	waitForInput(t, g)

	before := append([]int(nil), g.seq...)

	// pick a cell that is not the expected one
	wrong := (g.seq[0] + 1) % (g.size * g.size)
	if wrong == g.seq[0] {
		wrong = (wrong + 1) % (g.size * g.size)
	}
	g.pick(wrong)

	if g.session.Completed() {
		t.Fatal("First failure must not end the session")
	}
	if !g.retryUsed {
		t.Fatal("First failure should consume the retry")
	}

	waitForInput(t, g)
	for i, c := range before {
		if g.seq[i] != c {
			t.Fatalf("Retry sequence differs at %d: %d vs %d", i, g.seq[i], c)
		}
	}
}

func TestSecondFailureEndsSession(t *testing.T) {
	g := newTestGame(t)

	playRound(t, g) // bank one round
	earned := g.score

	for n := 0; n < 2; n++ {
		waitForInput(t, g)
		if g.session.Completed() {
			break
		}
		wrong := g.seq[len(g.seq)-1]
		if g.entryPos == len(g.seq)-1 {
			wrong = g.seq[0]
		}
		// guard against a one-cell sequence edge
		if wrong == g.seq[g.entryPos] {
			wrong = (wrong + 1) % (g.size * g.size)
		}
		g.pick(wrong)
	}

	if !g.session.Completed() {
		t.Fatal("Second failure should end the session")
	}
	if g.success {
		t.Error("A failed-out session must not be marked successful")
	}
	if got := g.session.FinalScore(); got != earned {
		t.Errorf("Final score = %d, want %d (points earned before failing)", got, earned)
	}
}

func TestRoundClearGrowsLength(t *testing.T) {
	g := newTestGame(t)

	start := g.length
	playRound(t, g)
	waitForInput(t, g)

	if g.length != start+1 {
		t.Errorf("Length = %d, want %d", g.length, start+1)
	}
	if len(g.seq) != start+1 {
		t.Errorf("New sequence length = %d, want %d", len(g.seq), start+1)
	}
	if g.score != 50*start {
		t.Errorf("Score = %d, want %d", g.score, 50*start)
	}
}
