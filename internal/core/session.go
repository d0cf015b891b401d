package core

import "time"

// Phase is the state of the generic timed round cycle shared by the games:
// reveal content, await input, show feedback, advance or finish.
// Not every game uses every phase.
type Phase int

const (
	PhaseIdle     Phase = iota // Waiting to start (countdown, instructions)
	PhaseShowing               // Revealing content; input not yet accepted
	PhaseInput                 // Awaiting the player's action
	PhaseFeedback              // Displaying correctness before advancing
	PhaseTooEarly              // Premature input during Idle/Showing (reaction test)
	PhaseDone                  // Terminal; completion has fired
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseShowing:
		return "showing"
	case PhaseInput:
		return "input"
	case PhaseFeedback:
		return "feedback"
	case PhaseTooEarly:
		return "tooEarly"
	case PhaseDone:
		return "done"
	default:
		return "unknown"
	}
}

// Session drives one play-through of a game: the round cycle, a shared
// failure counter, and the two guard flags the cycle depends on. Scores,
// streaks and round indices live in the games themselves, since each game
// accumulates them on its own schedule.
//
// The transition guard blocks re-entrant input while a delayed transition is
// pending: input that arrives between scheduling a feedback callback and its
// firing is dropped, so rapid double-presses cause exactly one round advance.
//
// The completion guard makes the completion callback fire exactly once even
// when a timer-driven and a score-driven completion path could both trigger.
type Session struct {
	Phase    Phase
	Failures int

	sched        *Scheduler
	transPending bool
	completed    bool
	final        int
	onComplete   func(score int)
}

// NewSession creates a session in the idle phase.
// onComplete is invoked exactly once with the final non-negative score.
func NewSession(tickRate int, onComplete func(score int)) *Session {
	return &Session{
		Phase:      PhaseIdle,
		sched:      NewScheduler(tickRate),
		onComplete: onComplete,
	}
}

// Scheduler exposes the session's timer queue.
func (s *Session) Scheduler() *Scheduler {
	return s.sched
}

// After schedules a delayed transition on the session's scheduler.
func (s *Session) After(d time.Duration, fn func()) Handle {
	return s.sched.After(d, fn)
}

// Tick advances the session's scheduler by one simulation tick.
func (s *Session) Tick() {
	if s.completed {
		return
	}
	s.sched.Tick()
}

// AcceptingInput reports whether player input should be processed right now.
// Input outside the input phase, or while a transition is pending, is ignored.
func (s *Session) AcceptingInput() bool {
	return s.Phase == PhaseInput && !s.transPending && !s.completed
}

// BeginTransition sets the processing guard before scheduling a delayed
// transition. Returns false if a transition is already pending, in which case
// the triggering input must be dropped.
func (s *Session) BeginTransition() bool {
	if s.transPending || s.completed {
		return false
	}
	s.transPending = true
	return true
}

// EndTransition clears the processing guard. Called from the delayed
// callback once the transition has been applied.
func (s *Session) EndTransition() {
	s.transPending = false
}

// TransitionPending reports whether a delayed transition is in flight.
func (s *Session) TransitionPending() bool {
	return s.transPending
}

// Complete moves the session to the terminal phase with the given score,
// clamped to zero. All pending timers are cancelled and the completion
// callback fires exactly once; later calls are no-ops.
func (s *Session) Complete(score int) {
	if s.completed {
		return
	}
	s.completed = true
	s.Phase = PhaseDone
	s.final = Max(0, score)
	s.sched.CancelAll()
	if s.onComplete != nil {
		s.onComplete(s.final)
	}
}

// Completed reports whether the session has reached its terminal state.
func (s *Session) Completed() bool {
	return s.completed
}

// FinalScore returns the score passed to the completion callback.
// Only meaningful after Completed() is true.
func (s *Session) FinalScore() int {
	return s.final
}

// Teardown invalidates all pending timers without firing completion. Used
// when the player exits mid-session so stale callbacks cannot mutate state.
func (s *Session) Teardown() {
	s.sched.CancelAll()
	s.transPending = false
}
