// Package coop implements a minimal cooperative task scheduler.
//
// An [Executor] owns a FIFO run queue and a single-threaded run loop.
// Spawned tasks are resumed one at a time, in pop order.
// On each resumption, a task's [Operation] either completes or reports
// that it is not ready and arranges for a [Waker] to be triggered later.
// Triggering a Waker is the only way code outside the run loop can make
// a task runnable again, and it is safe from any goroutine.
//
// # Run-To-Completion Semantics
//
// The Run method drains the queue until nothing remains runnable.
// A task that reports not ready stays in circulation: the run loop
// triggers the task's own Waker unless some other goroutine already did,
// so Run keeps polling it and only returns once every spawned task has
// completed. It follows that an Operation awaiting an event that never
// fires keeps Run looping; every suspension source must eventually
// resolve, the way [Timer] does.
//
// Spawning is non-blocking and safe for concurrent use, including from
// inside a running Operation. There is no back pressure: if spawning
// outruns execution, the queue grows without bound.
//
// # Suspension Sources
//
// The one suspension source provided is [Timer]: a one-shot resource
// whose background waiter marks it elapsed after a duration and triggers
// whichever Waker was registered by the most recent poll. It is the
// template for writing others: a poll that either completes or stores
// the freshest Waker, and a completion path that sets state and triggers
// the stored Waker under one lock.
package coop
