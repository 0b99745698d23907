// Package api
// Author: momentics@gmail.com
//
// Bounded FIFO contract for ring adapters that own their storage.

package api

// Ring is a bounded FIFO queue contract. Implementations are fixed-capacity;
// both operations are non-blocking.
type Ring[T any] interface {
	// Enqueue adds an item, returns false if full.
	Enqueue(item T) bool
	// Dequeue removes the oldest item, returns false if empty.
	Dequeue() (T, bool)
	// Len returns current number of items.
	Len() int
	// Cap returns the fixed capacity.
	Cap() int
}

// QueueStats carries operation counters surfaced by owning adapters.
// Counters are plain integers: adapters are single-goroutine by contract.
type QueueStats struct {
	Pushes    int64 // accepted pushes, including evicting ones
	Pops      int64 // explicit pops, not evictions
	Evictions int64 // elements displaced by a push into a full adapter
	Rejects   int64 // try-pushes refused because the adapter was full
}
