package coop

const (
	flagQueued = 1 << iota
	flagRunning
	flagDone
)

// A Task is a unit of schedulable work wrapping one suspendable computation,
// similar to a goroutine but cooperative and stackless.
//
// A Task is created with a function called [Operation].
// A Task's job is to complete it.
// When an [Executor] spawns a Task, it runs the Task by calling the Operation
// function with a [Waker] bound to the Task as the argument.
// The return value determines whether the Task has completed or has to yield
// so that it could resume later.
//
// A Task that yields resumes when its Waker is triggered.
// Exactly one goroutine resumes a given Task at a time, and a completed Task
// is never resumed again.
type Task struct {
	executor *Executor
	op       Operation
	flag     uint8
}

// wake ensures that t is present in its Executor's queue, at most once.
// Waking a completed Task is a no-op. Safe from any goroutine.
func (t *Task) wake() {
	e := t.executor

	var autorun func()

	e.mu.Lock()

	flag := t.flag
	if flag&(flagDone|flagQueued) != 0 {
		e.mu.Unlock()
		return
	}

	t.flag = flag | flagQueued
	autorun = e.enqueueTask(t)

	e.mu.Unlock()

	if autorun != nil {
		autorun()
	}
}

// An Operation is the suspendable computation that a [Task] is given to
// complete.
//
// An Executor calls an Operation once per resumption, passing a fresh [Waker]
// bound to the Task being resumed. The Operation either finishes, by
// returning [Done], or registers w with some suspension source and reports
// not ready, by returning [Pending] or [Yield].
//
// The Waker may be copied and stored for later triggering. It remains valid
// and triggerable after the Operation returns, even if the Task has
// meanwhile been resumed again.
//
// An Operation must not block the resuming goroutine; it suspends by
// returning instead.
type Operation func(w Waker) Result

// Result is the type of the return value of an [Operation] function.
// A Result tells an [Executor] what next for a [Task] to do after calling
// an Operation function.
type Result struct {
	done bool
	next Operation
}

// Done returns a [Result] reporting that the computation finished.
// The Task completes and is never resumed again.
func Done() Result {
	return Result{done: true}
}

// Pending returns a [Result] reporting that the computation is not ready.
// When the Task's [Waker] is triggered, the same [Operation] is called again.
func Pending() Result {
	return Result{}
}

// Yield returns a [Result] reporting that the computation is not ready.
// next becomes the current [Operation] of the Task so that, when the Task
// is resumed, next is called instead.
func Yield(next Operation) Result {
	if next == nil {
		panic("coop: Yield(nil): undefined behavior")
	}
	return Result{next: next}
}

// Chain returns an [Operation] that works on each of the provided Operations
// in sequence. When one Operation completes, Chain proceeds to the next
// within the same resumption.
func Chain(s ...Operation) Operation {
	var op Operation
	return func(w Waker) Result {
		for {
			if op == nil {
				if len(s) == 0 {
					return Done()
				}
				op, s = s[0], s[1:]
			}

			res := op(w)
			if !res.done {
				if res.next != nil {
					op = res.next
				}
				return Pending()
			}

			op = nil
		}
	}
}

// Do returns an [Operation] that calls f, and then completes.
func Do(f func()) Operation {
	return func(Waker) Result {
		f()
		return Done()
	}
}

// Nop returns an [Operation] that completes without doing anything.
func Nop() Operation {
	return func(Waker) Result {
		return Done()
	}
}

// Then returns an [Operation] that first works on op, then switches to
// work on next after op completes.
//
// To chain multiple Operations, use [Chain] function.
func (op Operation) Then(next Operation) Operation {
	if next == nil {
		panic("coop: Then(nil): undefined behavior")
	}
	return Chain(op, next)
}
