// Package api
// Author: momentics@gmail.com
//
// Priority queue contract over externally owned storage.

package api

// Heap is the contract for a fixed-capacity priority queue view.
//
// Ordering comes from the comparison the implementation was built with;
// Top and Pop address the extreme element under that comparison. Push on
// a full heap replaces the extreme element rather than growing, so a heap
// fed more values than it can hold retains a bounded selection of them.
type Heap[T any] interface {
	// Push inserts a value, replacing the extreme element when full.
	Push(v T)
	// TryPush inserts a value, returns false without effect when full.
	TryPush(v T) bool
	// Pop removes and returns the extreme element, panics when empty.
	Pop() T
	// Top returns the extreme element without removing it, panics when empty.
	Top() T

	// Len returns the number of live elements.
	Len() int
	// Cap returns the capacity of the underlying storage.
	Cap() int
	// Empty reports Len() == 0.
	Empty() bool
	// Full reports Len() == Cap().
	Full() bool
}
