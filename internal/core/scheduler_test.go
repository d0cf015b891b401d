package core

import (
	"testing"
	"time"
)

func TestSchedulerFiresAfterDelay(t *testing.T) {
	s := NewScheduler(10) // 10 ticks per second, 100ms per tick

	fired := false
	s.After(300*time.Millisecond, func() { fired = true })

	// 300ms at 10 t/s is 3 ticks; must not fire before the 3rd tick
	s.Tick()
	s.Tick()
	if fired {
		t.Fatal("Callback fired too early")
	}
	s.Tick()
	if !fired {
		t.Fatal("Callback should have fired after 3 ticks")
	}
}

func TestSchedulerZeroDelayFiresNextTick(t *testing.T) {
	s := NewScheduler(60)

	fired := false
	s.After(0, func() { fired = true })
	if fired {
		t.Fatal("Callback must not fire synchronously")
	}
	s.Tick()
	if !fired {
		t.Fatal("Zero-delay callback should fire on the next tick")
	}
}

func TestSchedulerOrderPreserved(t *testing.T) {
	s := NewScheduler(10)

	var order []int
	s.After(100*time.Millisecond, func() { order = append(order, 1) })
	s.After(100*time.Millisecond, func() { order = append(order, 2) })
	s.After(100*time.Millisecond, func() { order = append(order, 3) })

	s.Tick()

	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Errorf("Callbacks fired out of schedule order: %v", order)
	}
}

func TestSchedulerCancelHandle(t *testing.T) {
	s := NewScheduler(10)

	fired := false
	h := s.After(100*time.Millisecond, func() { fired = true })
	h.Cancel()

	s.Tick()
	if fired {
		t.Error("Cancelled callback must not fire")
	}
}

func TestSchedulerCancelAllInvalidatesStaleCallbacks(t *testing.T) {
	s := NewScheduler(10)

	fired := false
	s.After(100*time.Millisecond, func() { fired = true })

	s.CancelAll()

	// A callback scheduled after the generation bump still works
	newFired := false
	s.After(100*time.Millisecond, func() { newFired = true })

	s.Tick()
	if fired {
		t.Error("Stale callback fired after CancelAll")
	}
	if !newFired {
		t.Error("Fresh callback should fire after CancelAll")
	}
}

func TestSchedulerCallbackCancellingLaterCallback(t *testing.T) {
	s := NewScheduler(10)

	var order []string
	s.After(100*time.Millisecond, func() {
		order = append(order, "first")
		s.CancelAll()
	})
	s.After(100*time.Millisecond, func() {
		order = append(order, "second")
	})

	s.Tick()

	if len(order) != 1 || order[0] != "first" {
		t.Errorf("CancelAll inside a callback should drop the rest of the batch, got %v", order)
	}
}

func TestSchedulerMillis(t *testing.T) {
	s := NewScheduler(60)
	if got := s.Millis(60); got != 1000 {
		t.Errorf("60 ticks at 60 t/s should be 1000ms, got %d", got)
	}
	if got := s.Millis(15); got != 250 {
		t.Errorf("15 ticks at 60 t/s should be 250ms, got %d", got)
	}
}
