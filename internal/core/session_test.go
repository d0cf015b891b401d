package core

import (
	"testing"
	"time"
)

func TestSessionCompleteFiresOnce(t *testing.T) {
	calls := 0
	var got int
	s := NewSession(60, func(score int) {
		calls++
		got = score
	})

	s.Complete(120)
	s.Complete(999) // second completion path must be a no-op

	if calls != 1 {
		t.Fatalf("Completion callback fired %d times, want 1", calls)
	}
	if got != 120 {
		t.Errorf("Completion score = %d, want 120", got)
	}
	if s.Phase != PhaseDone {
		t.Errorf("Phase = %s, want done", s.Phase)
	}
}

func TestSessionCompleteClampsNegative(t *testing.T) {
	var got int
	s := NewSession(60, func(score int) { got = score })

	s.Complete(-35)
	if got != 0 {
		t.Errorf("Negative final score must be clamped to 0, got %d", got)
	}
}

func TestSessionCompleteCancelsPendingTimers(t *testing.T) {
	s := NewSession(10, nil)

	fired := false
	s.After(100*time.Millisecond, func() { fired = true })
	s.Complete(10)

	s.Tick()
	if fired {
		t.Error("Pending timer fired after completion")
	}
}

func TestSessionTransitionGuardDropsReentrantInput(t *testing.T) {
	s := NewSession(10, nil)
	s.Phase = PhaseInput

	// First input begins a transition and schedules the advance
	if !s.BeginTransition() {
		t.Fatal("First BeginTransition should succeed")
	}
	advances := 0
	s.After(100*time.Millisecond, func() {
		advances++
		s.EndTransition()
	})

	// Second rapid input arrives before the scheduled advance fires
	if s.AcceptingInput() {
		t.Error("Input must not be accepted while a transition is pending")
	}
	if s.BeginTransition() {
		t.Error("Re-entrant BeginTransition should be rejected")
	}

	s.Tick()

	if advances != 1 {
		t.Errorf("Expected exactly one advance, got %d", advances)
	}
	if !s.AcceptingInput() {
		t.Error("Input should be accepted again once the transition fired")
	}
}

func TestSessionAcceptingInputOnlyInInputPhase(t *testing.T) {
	s := NewSession(60, nil)

	for _, phase := range []Phase{PhaseIdle, PhaseShowing, PhaseFeedback, PhaseTooEarly, PhaseDone} {
		s.Phase = phase
		if s.AcceptingInput() {
			t.Errorf("AcceptingInput() true in phase %s", phase)
		}
	}

	s.Phase = PhaseInput
	if !s.AcceptingInput() {
		t.Error("AcceptingInput() false in input phase")
	}
}

func TestSessionTeardownSilencesTimers(t *testing.T) {
	completed := false
	s := NewSession(10, func(int) { completed = true })
	s.Phase = PhaseInput

	s.After(100*time.Millisecond, func() { s.Complete(50) })
	s.Teardown()

	s.Tick()
	if completed {
		t.Error("Completion fired from a stale timer after teardown")
	}
}
