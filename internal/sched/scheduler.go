// Package sched provides a deterministic one-shot timer queue driven by a
// virtual clock. The owner advances the clock once per simulation tick, so
// callbacks run on the owner's goroutine, in due-time order, before the tick
// that observes their effects.
package sched

import (
	"container/heap"
	"time"
)

// Scheduler runs callbacks after a delay measured on its own clock.
// It is not safe for concurrent use.
type Scheduler struct {
	now   time.Duration
	seq   uint64
	epoch uint64
	queue taskQueue
}

// Handle refers to a scheduled callback.
type Handle struct {
	t *task
}

type task struct {
	due       time.Duration
	seq       uint64
	epoch     uint64
	fn        func()
	cancelled bool
	fired     bool
	index     int
}

// New creates an empty scheduler at time zero.
func New() *Scheduler {
	return &Scheduler{}
}

// Now returns the current virtual time.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Epoch returns the current epoch counter.
func (s *Scheduler) Epoch() uint64 {
	return s.epoch
}

// After schedules fn to run once the clock has advanced by d.
// Non-positive delays fire on the next Advance.
func (s *Scheduler) After(d time.Duration, fn func()) Handle {
	if d < 0 {
		d = 0
	}
	s.seq++
	t := &task{
		due:   s.now + d,
		seq:   s.seq,
		epoch: s.epoch,
		fn:    fn,
	}
	heap.Push(&s.queue, t)
	return Handle{t: t}
}

// Advance moves the clock forward by d and runs every task that became due,
// including tasks scheduled by callbacks during the advance. Tasks run in
// order of due time, then scheduling order.
func (s *Scheduler) Advance(d time.Duration) int {
	target := s.now + d
	ran := 0
	for s.queue.Len() > 0 {
		next := s.queue[0]
		if next.due > target {
			break
		}
		heap.Pop(&s.queue)
		if next.cancelled || next.epoch != s.epoch {
			continue
		}
		if next.due > s.now {
			s.now = next.due
		}
		next.fired = true
		next.fn()
		ran++
	}
	s.now = target
	return ran
}

// NewEpoch invalidates every pending task. Tasks scheduled afterwards are
// unaffected.
func (s *Scheduler) NewEpoch() {
	s.epoch++
	for _, t := range s.queue {
		t.cancelled = true
	}
	s.queue = s.queue[:0]
}

// Pending returns the number of live tasks waiting to fire.
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.queue {
		if !t.cancelled && t.epoch == s.epoch {
			n++
		}
	}
	return n
}

// Cancel stops the task from running. Cancelling a fired, cancelled or zero
// handle is a no-op.
func (h Handle) Cancel() {
	if h.t != nil {
		h.t.cancelled = true
	}
}

// Active reports whether the task is still waiting to fire.
func (h Handle) Active() bool {
	return h.t != nil && !h.t.cancelled && !h.t.fired
}

type taskQueue []*task

func (q taskQueue) Len() int { return len(q) }

func (q taskQueue) Less(i, j int) bool {
	if q[i].due != q[j].due {
		return q[i].due < q[j].due
	}
	return q[i].seq < q[j].seq
}

func (q taskQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *taskQueue) Push(x any) {
	t := x.(*task)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *taskQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*q = old[:n-1]
	return t
}
