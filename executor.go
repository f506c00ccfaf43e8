package coop

import "sync"

// An Executor is a [Task] spawner, and a Task runner.
//
// When a Task is spawned or woken, it is added into an internal queue.
// The Run method then pops and resumes each of them from the queue until
// every Task has completed.
// It is done in a single-threaded manner.
// If one Task blocks, no other Tasks can run.
// The best practice is not to block.
//
// The internal queue is a FIFO queue.
// Tasks are popped in the order they were spawned or woken.
//
// The zero Executor is ready to use.
type Executor struct {
	mu      sync.Mutex
	rq      taskqueue
	running bool
	autorun func()
}

// Autorun sets up an autorun function to calling the Run method automatically
// whenever a [Task] is spawned or woken while the Executor is idle.
//
// One must pass a function that calls the Run method.
//
// If f blocks, the Spawn method and [Waker.Wake] may block too.
// The best practice is not to block.
func (e *Executor) Autorun(f func()) {
	e.autorun = f
}

// Run pops and resumes every [Task] in the queue until every Task has
// completed and the queue is emptied.
//
// A Task that reports not ready is put back on the queue, via its own
// [Waker], unless another goroutine has already woken it during the
// resumption. Run therefore only returns at quiescence.
//
// Run must not be called twice at the same time.
func (e *Executor) Run() {
	e.mu.Lock()
	e.running = true

	for !e.rq.Empty() {
		t := e.rq.Pop()
		e.runTask(t)
	}

	e.running = false
	e.mu.Unlock()
}

// Spawn creates a [Task] to work on op and adds it in the queue.
//
// Spawn never blocks. To run the Task, either call the Run method, or
// call the Autorun method to set up an autorun function beforehand.
//
// Spawn is safe for concurrent use, including from inside a running
// [Operation].
func (e *Executor) Spawn(op Operation) {
	t := &Task{executor: e, op: op}
	t.wake()
}

// enqueueTask adds t in the queue and reports whether an autorun function
// needs to be called. Callers must hold e.mu; the flag bookkeeping for t is
// theirs.
func (e *Executor) enqueueTask(t *Task) (autorun func()) {
	if !e.running && e.autorun != nil {
		e.running = true
		autorun = e.autorun
	}

	e.rq.Push(t)

	return autorun
}

// runTask resumes one popped Task. Called with e.mu held; the lock is
// released for the duration of the resumption so that the Operation can
// spawn, wake, and be woken freely.
func (e *Executor) runTask(t *Task) {
	flag := t.flag &^ flagQueued
	t.flag = flag

	if flag&(flagDone|flagRunning) != 0 {
		// Either a stale queue entry for a completed Task, or the Task
		// is mid-resumption elsewhere. Resuming it again is a no-op;
		// at most one goroutine resumes a given Task at a time.
		return
	}

	t.flag = flag | flagRunning
	op := t.op

	e.mu.Unlock()
	res := op(Waker{task: t})
	e.mu.Lock()

	flag = t.flag &^ flagRunning

	if res.done {
		t.flag = flag | flagDone
		t.op = nil
		return
	}

	if res.next != nil {
		t.op = res.next
	}

	if flag&flagQueued == 0 {
		// Not ready, and nobody woke t during the resumption: trigger
		// its wake ourselves so it stays in circulation.
		flag |= flagQueued
		e.rq.Push(t)
	}

	t.flag = flag
}
