// File: heap/heap.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Binary-heap view over caller-supplied storage.

// Package heap lays a fixed-capacity priority queue over a slice the caller
// owns. The comparison function orders elements; Top and Pop address the
// least element under it, so less(a, b) == a < b yields a min-heap and the
// inverse comparison a max-heap. Like the ring views, a heap view never
// allocates: feed it more values than it can hold and Push replaces the
// least element instead of growing.
package heap

import (
	"sort"

	"github.com/momentics/ringspan/api"
)

// View is a binary heap over external storage. Elements occupy the first
// Len slots of the storage in heap order. Views are for single-goroutine
// use.
type View[T any] struct {
	data []T
	size int
	less func(a, b T) bool
}

var _ api.Heap[any] = (*View[any])(nil)

func newView[T any](storage []T, size int, less func(a, b T) bool) *View[T] {
	if len(storage) == 0 {
		panic("heap: view over zero-length storage")
	}
	if less == nil {
		panic("heap: nil comparison")
	}
	if size < 0 || size > len(storage) {
		panic("heap: size exceeds capacity")
	}
	return &View[T]{data: storage, size: size, less: less}
}

// NewFull returns a view adopting all of storage as live elements and
// establishes the heap ordering over them.
func NewFull[T any](storage []T, less func(a, b T) bool) *View[T] {
	h := newView(storage, len(storage), less)
	h.Init()
	return h
}

// NewPartial returns a view adopting the first size slots of storage as
// live elements and establishes the heap ordering over them. Pass size 0
// for an empty heap.
func NewPartial[T any](storage []T, size int, less func(a, b T) bool) *View[T] {
	h := newView(storage, size, less)
	h.Init()
	return h
}

// Init restores the heap ordering over the live elements. Callers that
// rearrange the storage directly, for instance after Sort, call Init before
// pushing again.
func (h *View[T]) Init() {
	for i := h.size/2 - 1; i >= 0; i-- {
		h.siftDown(i)
	}
}

// Len returns the number of live elements.
func (h *View[T]) Len() int { return h.size }

// Cap returns the capacity of the underlying storage.
func (h *View[T]) Cap() int { return len(h.data) }

// Empty reports whether the heap holds no elements.
func (h *View[T]) Empty() bool { return h.size == 0 }

// Full reports whether the heap is at capacity.
func (h *View[T]) Full() bool { return h.size == len(h.data) }

// Top returns the least element. Panics when empty.
func (h *View[T]) Top() T {
	if h.size == 0 {
		panic("heap: top of empty view")
	}
	return h.data[0]
}

// Push inserts v. On a full heap it replaces the least element, keeping
// the size constant; combined with a caller-side guard this retains the
// greatest Cap elements of a stream.
func (h *View[T]) Push(v T) {
	if h.size == len(h.data) {
		h.data[0] = v
		h.siftDown(0)
		return
	}
	h.data[h.size] = v
	h.size++
	h.siftUp(h.size - 1)
}

// TryPush inserts v and reports success; a full heap refuses.
func (h *View[T]) TryPush(v T) bool {
	if h.size == len(h.data) {
		return false
	}
	h.data[h.size] = v
	h.size++
	h.siftUp(h.size - 1)
	return true
}

// Pop removes and returns the least element. Panics when empty. The slot
// vacated at the end of the live region keeps the moved value; storage
// lifecycle stays with the caller.
func (h *View[T]) Pop() T {
	if h.size == 0 {
		panic("heap: pop of empty view")
	}
	top := h.data[0]
	h.size--
	if h.size > 0 {
		h.data[0] = h.data[h.size]
		h.siftDown(0)
	}
	return top
}

// Sort orders the live elements ascending by the comparison, in place. The
// heap ordering is destroyed; call Init to push afterwards.
func (h *View[T]) Sort() {
	sort.Slice(h.data[:h.size], func(i, j int) bool {
		return h.less(h.data[i], h.data[j])
	})
}

func (h *View[T]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.less(h.data[i], h.data[parent]) {
			return
		}
		h.data[i], h.data[parent] = h.data[parent], h.data[i]
		i = parent
	}
}

func (h *View[T]) siftDown(i int) {
	for {
		left := 2*i + 1
		if left >= h.size {
			return
		}
		least := left
		if right := left + 1; right < h.size && h.less(h.data[right], h.data[left]) {
			least = right
		}
		if !h.less(h.data[least], h.data[i]) {
			return
		}
		h.data[i], h.data[least] = h.data[least], h.data[i]
		i = least
	}
}
