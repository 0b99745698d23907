// File: fixedring/queue.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fixed-capacity FIFO queue owning its storage, backed by a ring view.

// Package fixedring wraps a ring view around storage it allocates and owns.
// It trades the view's flexibility for convenience: one constructor, value
// semantics via Clone, and operation counters.
package fixedring

import (
	"iter"

	"github.com/momentics/ringspan/api"
	"github.com/momentics/ringspan/ring"
)

// Queue is a fixed-capacity FIFO queue. Push on a full queue displaces the
// oldest element; TryPush refuses instead and MustPush panics. Queues are
// for single-goroutine use.
type Queue[T any] struct {
	buf   []T
	view  ring.View[T]
	stats api.QueueStats
}

var _ api.Ring[any] = (*Queue[any])(nil)

// New returns a queue with the given capacity. Options are forwarded to the
// underlying view, so callers can install a popper. Panics when capacity
// is not positive.
func New[T any](capacity int, opts ...ring.Option[T]) *Queue[T] {
	if capacity <= 0 {
		panic("fixedring: capacity must be positive")
	}
	q := &Queue[T]{buf: make([]T, capacity)}
	q.view = *ring.NewPartial(q.buf, 0, 0, opts...)
	return q
}

// Push appends v, displacing the oldest element when full.
func (q *Queue[T]) Push(v T) {
	if q.view.Full() {
		q.stats.Evictions++
	}
	q.view.PushBack(v)
	q.stats.Pushes++
}

// TryPush appends v and reports success; a full queue refuses.
func (q *Queue[T]) TryPush(v T) bool {
	if !q.view.TryPushBack(v) {
		q.stats.Rejects++
		return false
	}
	q.stats.Pushes++
	return true
}

// MustPush appends v and panics when the queue is full.
func (q *Queue[T]) MustPush(v T) {
	q.view.MustPushBack(v)
	q.stats.Pushes++
}

// Pop removes and returns the oldest element. Panics when empty.
func (q *Queue[T]) Pop() T {
	v := q.view.PopFront()
	q.stats.Pops++
	return v
}

// TryPop removes the oldest element, reporting false when empty.
func (q *Queue[T]) TryPop() (T, bool) {
	v, ok := q.view.TryPopFront()
	if ok {
		q.stats.Pops++
	}
	return v, ok
}

// Enqueue implements api.Ring by delegating to TryPush.
func (q *Queue[T]) Enqueue(item T) bool { return q.TryPush(item) }

// Dequeue implements api.Ring by delegating to TryPop.
func (q *Queue[T]) Dequeue() (T, bool) { return q.TryPop() }

// Front returns the oldest element without removing it. Panics when empty.
func (q *Queue[T]) Front() T { return q.view.Front() }

// Back returns the newest element without removing it. Panics when empty.
func (q *Queue[T]) Back() T { return q.view.Back() }

// Len returns the number of queued elements.
func (q *Queue[T]) Len() int { return q.view.Len() }

// Cap returns the fixed capacity.
func (q *Queue[T]) Cap() int { return q.view.Cap() }

// Empty reports whether the queue holds no elements.
func (q *Queue[T]) Empty() bool { return q.view.Empty() }

// Full reports whether the queue is at capacity.
func (q *Queue[T]) Full() bool { return q.view.Full() }

// Clear drops all queued elements. Counters are kept.
func (q *Queue[T]) Clear() { q.view.Clear() }

// Values returns a non-consuming iterator over the queued elements in FIFO
// order.
func (q *Queue[T]) Values() iter.Seq[T] {
	return q.view.Values()
}

// Stats returns a snapshot of the operation counters.
func (q *Queue[T]) Stats() api.QueueStats { return q.stats }

// Clone returns a deep copy: fresh storage with the elements copied and the
// window rebound over it. The clone starts with the same counters and
// evolves independently afterwards.
func (q *Queue[T]) Clone() *Queue[T] {
	buf := make([]T, len(q.buf))
	copy(buf, q.buf)
	out := &Queue[T]{buf: buf, view: q.view, stats: q.stats}
	out.view.Rebind(buf)
	return out
}
