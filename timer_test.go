package coop

import (
	"sync"
	"testing"
	"time"
)

func TestTimerPollBeforeElapse(t *testing.T) {
	tm := StartTimer(time.Hour)

	for range 3 {
		if res := tm.Poll(Waker{}); res.done {
			t.Fatal("Poll reported finished before the duration elapsed")
		}
	}
}

func TestTimerPollAfterElapse(t *testing.T) {
	tm := StartTimer(time.Millisecond)

	time.Sleep(20 * time.Millisecond)

	// Even without a previously registered waker, every Poll after the
	// elapse must report finished immediately.
	for range 3 {
		if res := tm.Poll(Waker{}); !res.done {
			t.Fatal("Poll reported not ready after the duration elapsed")
		}
	}
}

func TestTimerFreshestWakerWins(t *testing.T) {
	tm := StartTimer(50 * time.Millisecond)

	var e Executor

	stale := &Task{executor: &e}
	fresh := &Task{executor: &e}

	tm.Poll(Waker{task: stale})
	tm.Poll(Waker{task: fresh})

	time.Sleep(100 * time.Millisecond)

	e.mu.Lock()
	staleQueued := stale.flag&flagQueued != 0
	freshQueued := fresh.flag&flagQueued != 0
	e.mu.Unlock()

	if staleQueued {
		t.Error("stale waker was triggered")
	}
	if !freshQueued {
		t.Error("freshest waker was not triggered")
	}
}

func TestTimerNoLostWakeup(t *testing.T) {
	// Hammer the poll/elapse race: polling concurrently with the waiter
	// setting elapsed must never lose the wakeup.
	for range 20 {
		var e Executor

		woken := make(chan struct{})

		task := &Task{executor: &e, op: func(Waker) Result {
			close(woken)
			return Done()
		}}

		tm := StartTimer(2 * time.Millisecond)

		w := Waker{task: task}
		if tm.Poll(w).done {
			// Elapsed before a waker was ever registered; no race
			// to observe this round.
			continue
		}

		var wg sync.WaitGroup
		wg.Go(func() {
			for !tm.Poll(w).done {
			}
		})
		wg.Wait()

		// A waker was registered while the timer was still waiting, so
		// the waiter must have triggered it when it set elapsed.
		e.Run()

		select {
		case <-woken:
		default:
			t.Fatal("task was not woken after the timer elapsed")
		}
	}
}

func TestSleepStartsLazily(t *testing.T) {
	op := Sleep(30 * time.Millisecond)

	time.Sleep(60 * time.Millisecond)

	// The timer starts on first resumption, not on construction.
	if res := op(Waker{}); res.done {
		t.Fatal("Sleep completed before its first resumption")
	}
}
