package core

import (
	"sort"
	"time"
)

// Scheduler is a tick-driven timer queue for one game session. Games schedule
// delayed transitions (reveal end, feedback end, next trial) with After and
// drive the queue by calling Tick once per simulation step.
//
// Every pending callback carries the generation it was scheduled under.
// CancelAll bumps the generation, so callbacks scheduled before a teardown or
// restart can never fire against the new session state.
type Scheduler struct {
	tickRate int
	now      uint64
	gen      uint64
	pending  []*timer
	nextSeq  uint64
}

type timer struct {
	due       uint64
	seq       uint64 // preserves schedule order among timers due the same tick
	gen       uint64
	fn        func()
	cancelled bool
}

// Handle allows cancelling a single scheduled callback.
type Handle struct {
	t *timer
}

// Cancel prevents the callback from firing. Safe to call more than once.
func (h Handle) Cancel() {
	if h.t != nil {
		h.t.cancelled = true
	}
}

// NewScheduler creates a scheduler for the given tick rate.
// A non-positive tick rate falls back to 60.
func NewScheduler(tickRate int) *Scheduler {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &Scheduler{tickRate: tickRate}
}

// TickRate returns the simulation ticks per second.
func (s *Scheduler) TickRate() int {
	return s.tickRate
}

// Now returns the number of ticks elapsed since the scheduler was created.
func (s *Scheduler) Now() uint64 {
	return s.now
}

// Ticks converts a wall-clock duration to a tick count, rounding up so a
// non-zero delay never fires on the same tick it was scheduled.
func (s *Scheduler) Ticks(d time.Duration) uint64 {
	if d <= 0 {
		return 1
	}
	ticks := uint64((d*time.Duration(s.tickRate) + time.Second - 1) / time.Second)
	if ticks == 0 {
		ticks = 1
	}
	return ticks
}

// Millis converts an elapsed tick count to milliseconds.
func (s *Scheduler) Millis(ticks uint64) int {
	return int(ticks * 1000 / uint64(s.tickRate))
}

// After schedules fn to run after the given duration. The returned handle can
// cancel just this callback; CancelAll invalidates it along with the rest.
func (s *Scheduler) After(d time.Duration, fn func()) Handle {
	t := &timer{
		due: s.now + s.Ticks(d),
		seq: s.nextSeq,
		gen: s.gen,
		fn:  fn,
	}
	s.nextSeq++
	s.pending = append(s.pending, t)
	return Handle{t: t}
}

// Tick advances time by one tick and fires all due callbacks in schedule
// order. Callbacks scheduled under an older generation are dropped.
func (s *Scheduler) Tick() {
	s.now++

	var due []*timer
	remaining := s.pending[:0]
	for _, t := range s.pending {
		switch {
		case t.cancelled || t.gen != s.gen:
			// Dropped: cancelled individually or invalidated by CancelAll.
		case t.due <= s.now:
			due = append(due, t)
		default:
			remaining = append(remaining, t)
		}
	}
	s.pending = remaining

	sort.Slice(due, func(i, j int) bool {
		if due[i].due != due[j].due {
			return due[i].due < due[j].due
		}
		return due[i].seq < due[j].seq
	})

	for _, t := range due {
		// Re-check: an earlier callback this tick may have cancelled the rest.
		if t.cancelled || t.gen != s.gen {
			continue
		}
		t.fn()
	}
}

// CancelAll invalidates every pending callback by bumping the generation.
// Used on session teardown and restart.
func (s *Scheduler) CancelAll() {
	s.gen++
	s.pending = s.pending[:0]
}

// PendingCount returns the number of live pending callbacks.
func (s *Scheduler) PendingCount() int {
	n := 0
	for _, t := range s.pending {
		if !t.cancelled && t.gen == s.gen {
			n++
		}
	}
	return n
}
