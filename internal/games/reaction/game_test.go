package reaction

import (
	"testing"

	"github.com/NUDC/wego-game/internal/core"
)

// Tests run at 1000 ticks/sec so one tick is exactly one millisecond.
func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := New()
	g.Reset(core.RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		TickRate:   1000,
		Seed:       21,
		Difficulty: core.DifficultyEasy,
	})
	return g
}

func tick(g *Game, n int) {
	for i := 0; i < n; i++ {
		g.Step(core.NewInputFrame())
	}
}

func confirm(g *Game) {
	in := core.NewInputFrame()
	in.Set(core.ActionConfirm)
	g.Step(in)
}

// waitForSignal ticks until the go signal fires.
func waitForSignal(t *testing.T, g *Game) {
	t.Helper()
	for i := 0; i < 20000; i++ {
		if g.session.Phase == core.PhaseInput {
			return
		}
		if g.session.Completed() {
			return
		}
		g.Step(core.NewInputFrame())
	}
	t.Fatal("Signal never fired")
}

// clickAfter reacts exactly ms milliseconds after the signal.
func clickAfter(t *testing.T, g *Game, ms int) {
	t.Helper()
	waitForSignal(t, g)
	tick(g, ms-1)
	confirm(g)
}

// newTrickGame rearms the first trial with the decoy path guaranteed.
func newTrickGame(t *testing.T) *Game {
	t.Helper()
	g := newTestGame(t)
	g.params.TrickChance = 1
	g.session.Scheduler().CancelAll()
	g.startTrial()
	return g
}

// waitForDecoy ticks until the withdrawn-signal flash appears.
func waitForDecoy(t *testing.T, g *Game) {
	t.Helper()
	for i := 0; i < 20000; i++ {
		if g.decoyOn {
			return
		}
		if g.session.Phase == core.PhaseInput {
			t.Fatal("Real signal fired before the decoy flash")
		}
		g.Step(core.NewInputFrame())
	}
	t.Fatal("Decoy never flashed")
}

func TestValidReactionScores(t *testing.T) {
	g := newTestGame(t)

	clickAfter(t, g, 250)

	if len(g.results) != 1 {
		t.Fatalf("Results = %d entries, want 1", len(g.results))
	}
	if g.results[0] != 550 {
		t.Errorf("250ms reaction = %d points, want 550", g.results[0])
	}
}

func TestAnticipatoryClickScoresZero(t *testing.T) {
	g := newTestGame(t)

	clickAfter(t, g, 120)

	if g.results[0] != 0 {
		t.Errorf("120ms reaction = %d points, want 0 (under the validity floor)", g.results[0])
	}
}

func TestVerySlowReactionScoresZero(t *testing.T) {
	g := newTestGame(t)

	clickAfter(t, g, 900)

	if g.results[0] != 0 {
		t.Errorf("900ms reaction = %d points, want 0", g.results[0])
	}
}

func TestFalseStartBurnsTrial(t *testing.T) {
	g := newTestGame(t)

	tick(g, 5) // still in the waiting window
	confirm(g)

	if g.session.Phase != core.PhaseTooEarly {
		t.Fatalf("Phase = %v, want TooEarly", g.session.Phase)
	}
	if len(g.results) != 1 || g.results[0] != 0 {
		t.Fatalf("False start should record a zero trial, got %v", g.results)
	}

	// The cancelled signal must not fire into the next trial's window.
	tick(g, 1300) // feedback hold is 1200ms
	if g.session.Phase != core.PhaseIdle {
		t.Errorf("Phase = %v, want Idle at the start of the next trial", g.session.Phase)
	}
	if g.trial != 1 {
		t.Errorf("Trial = %d, want 1", g.trial)
	}
}

func TestClickDuringFeedbackIgnored(t *testing.T) {
	g := newTestGame(t)

	clickAfter(t, g, 250)
	confirm(g) // feedback hold still running

	if len(g.results) != 1 {
		t.Errorf("Results = %d entries, want 1", len(g.results))
	}
}

func TestFinalScoreIsMeanOfTrials(t *testing.T) {
	g := newTestGame(t)

	times := []int{250, 400, 300} // easy tier runs 3 trials
	for _, ms := range times {
		clickAfter(t, g, ms)
		tick(g, 1300)
	}

	if !g.session.Completed() {
		t.Fatal("Session should complete after the last trial")
	}
	// (550 + 400 + 500) / 3 = 483.33, rounded to 483
	if got := g.session.FinalScore(); got != 483 {
		t.Errorf("Final score = %d, want 483", got)
	}
}

func TestDecoyClickIsFalseStart(t *testing.T) {
	g := newTrickGame(t)

	waitForDecoy(t, g)
	if g.session.Phase != core.PhaseIdle {
		t.Fatalf("Phase = %v during the flash, want Idle (signal withdrawn)", g.session.Phase)
	}

	confirm(g)

	if g.session.Phase != core.PhaseTooEarly {
		t.Fatalf("Phase = %v after clicking the flash, want TooEarly", g.session.Phase)
	}
	if len(g.results) != 1 || g.results[0] != 0 {
		t.Fatalf("Flash click should record a zero trial, got %v", g.results)
	}
	if g.decoyOn {
		t.Error("Flash should clear when the trial burns")
	}
}

func TestCancelledRealSignalNeverFires(t *testing.T) {
	g := newTrickGame(t)

	waitForDecoy(t, g)
	confirm(g)

	// The genuine signal was armed 800-2000ms after the flash; the false
	// start cancelled it, so the feedback hold must never enter the input
	// phase.
	for i := 0; i < 1199; i++ {
		g.Step(core.NewInputFrame())
		if g.session.Phase == core.PhaseInput {
			t.Fatal("Cancelled signal fired during the feedback hold")
		}
	}

	tick(g, 50)
	if g.session.Phase != core.PhaseIdle {
		t.Errorf("Phase = %v, want Idle at the start of the next trial", g.session.Phase)
	}
	if g.trial != 1 {
		t.Errorf("Trial = %d, want 1", g.trial)
	}
}

func TestWithdrawnSignalThenRealSignalScores(t *testing.T) {
	g := newTrickGame(t)

	waitForDecoy(t, g)

	// Hold through the 150ms flash without clicking.
	tick(g, 160)
	if g.decoyOn {
		t.Fatal("Flash should withdraw after 150ms")
	}
	if g.session.Phase != core.PhaseIdle {
		t.Fatalf("Phase = %v after withdrawal, want Idle", g.session.Phase)
	}

	// The genuine signal still arrives and scores normally.
	clickAfter(t, g, 250)
	if len(g.results) != 1 || g.results[0] != 550 {
		t.Errorf("Post-withdrawal 250ms reaction = %v, want [550]", g.results)
	}
}

func TestAllFalseStartsScoreZero(t *testing.T) {
	g := newTestGame(t)

	for i := 0; i < g.params.Trials; i++ {
		tick(g, 3)
		confirm(g)
		tick(g, 1300)
	}

	if !g.session.Completed() {
		t.Fatal("Session should complete after burning every trial")
	}
	if got := g.session.FinalScore(); got != 0 {
		t.Errorf("Final score = %d, want 0", got)
	}
}
