// Package api
// Author: momentics@gmail.com
//
// Double-ended queue contract over externally owned storage.

package api

// Deque is the contract for a fixed-capacity double-ended queue view.
//
// A Deque never allocates or frees element storage. Plain pushes displace
// the element at the opposite end when full; Must variants panic instead,
// Try variants refuse. Pops and element accessors panic when the deque is
// empty, mirroring out-of-range slice indexing.
type Deque[T any] interface {
	// PushBack appends a value, displacing the front element when full.
	PushBack(v T)
	// PushFront prepends a value, displacing the back element when full.
	PushFront(v T)
	// MustPushBack appends a value and panics when full.
	MustPushBack(v T)
	// MustPushFront prepends a value and panics when full.
	MustPushFront(v T)
	// TryPushBack appends a value, returns false without effect when full.
	TryPushBack(v T) bool
	// TryPushFront prepends a value, returns false without effect when full.
	TryPushFront(v T) bool

	// PopFront removes and returns the oldest value, panics when empty.
	PopFront() T
	// PopBack removes and returns the newest value, panics when empty.
	PopBack() T
	// TryPopFront removes the oldest value, returns false when empty.
	TryPopFront() (T, bool)
	// TryPopBack removes the newest value, returns false when empty.
	TryPopBack() (T, bool)

	// Front returns the oldest value, panics when empty.
	Front() T
	// Back returns the newest value, panics when empty.
	Back() T
	// At returns a pointer to the i-th value in queue order.
	// It panics unless 0 <= i < Len(). The pointer stays valid until the
	// element leaves the window; a later push may reuse the slot.
	At(i int) *T

	// Len returns the number of live elements.
	Len() int
	// Cap returns the capacity of the underlying storage.
	Cap() int
	// Empty reports Len() == 0.
	Empty() bool
	// Full reports Len() == Cap().
	Full() bool
}
