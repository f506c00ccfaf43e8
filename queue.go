package coop

// taskqueue is a FIFO queue of Tasks.
//
// Pushes append; pops advance an offset into the same slice, nilling out
// popped slots so Tasks do not linger. The slice is reset once drained,
// which recycles its capacity.
type taskqueue struct {
	s   []*Task
	off int
}

func (q *taskqueue) Empty() bool {
	return q.off == len(q.s)
}

func (q *taskqueue) Push(t *Task) {
	q.s = append(q.s, t)
}

func (q *taskqueue) Pop() *Task {
	t := q.s[q.off]
	q.s[q.off] = nil
	q.off++

	if q.off == len(q.s) {
		q.s, q.off = q.s[:0], 0
	}

	return t
}
