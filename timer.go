package coop

import (
	"sync"
	"time"
)

// A Timer is a one-shot suspension source that elapses after a fixed
// duration.
//
// A Timer has exactly two states, waiting and elapsed, and moves between
// them exactly once. A background waiter started by [StartTimer] performs
// the transition and triggers whichever [Waker] was registered by the most
// recent Poll, so the waiting Task is resumed from another goroutine
// without the Executor ever blocking.
type Timer struct {
	mu       sync.Mutex
	elapsed  bool
	waker    Waker
	hasWaker bool
}

// StartTimer creates a [Timer] and starts its background waiter, which
// marks the Timer elapsed after d and then exits.
func StartTimer(d time.Duration) *Timer {
	tm := new(Timer)

	go func() {
		time.Sleep(d)

		tm.mu.Lock()
		tm.elapsed = true
		w, ok := tm.waker, tm.hasWaker
		tm.waker, tm.hasWaker = Waker{}, false
		tm.mu.Unlock()

		if ok {
			w.Wake()
		}
	}()

	return tm
}

// Poll reports whether tm has elapsed.
//
// If it has not, Poll registers w to be triggered when it does,
// overwriting any previously registered Waker; the Task may have moved to
// a different resumption context since the last Poll, so only the freshest
// Waker is kept. One call per resumption attempt is expected.
func (tm *Timer) Poll(w Waker) Result {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	if tm.elapsed {
		return Done()
	}

	tm.waker, tm.hasWaker = w, true

	return Pending()
}

// Sleep returns an [Operation] that completes once the given duration has
// elapsed, counted from its first resumption. It starts a [Timer] lazily
// and polls it on every resumption thereafter.
func Sleep(d time.Duration) Operation {
	var tm *Timer
	return func(w Waker) Result {
		if tm == nil {
			tm = StartTimer(d)
		}
		return tm.Poll(w)
	}
}
