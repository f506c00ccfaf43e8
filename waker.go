package coop

// A Waker is a triggerable capability that re-enqueues a specific [Task]
// onto its Executor's queue.
//
// A Waker is a small value; copying it is cloning it. Any number of holders
// may share Wakers for the same Task. A Waker does not own the Task, only
// the ability to make it runnable again.
type Waker struct {
	task *Task
}

// Wake ensures the bound [Task] is present on its Executor's queue, at most
// once. Triggering a Waker whose Task is already queued, or has completed,
// is a no-op, as is triggering the zero Waker.
//
// Wake is safe from any goroutine. If an autorun function is set up on the
// Executor and blocks, Wake may block too.
func (w Waker) Wake() {
	if w.task == nil {
		return
	}
	w.task.wake()
}
