// File: ring/view.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Double-ended circular-buffer view over caller-supplied storage.

package ring

import (
	"github.com/momentics/ringspan/api"
)

// SlotPolicy selects the element lifecycle a view applies to its storage.
type SlotPolicy uint8

const (
	// SlotAssign treats every slot as live for the view's lifetime. Pops
	// adjust indices only; whatever the popper leaves in the slot stays.
	SlotAssign SlotPolicy = iota
	// SlotClear zeroes slots as they leave the window, so storage holds the
	// zero value everywhere outside the live region and never pins
	// references the collector could otherwise reclaim.
	SlotClear
)

// View is a double-ended queue laid over a slice it does not own. The live
// window is encoded as a head index plus an element count, so a full view
// and an empty one are never ambiguous and any capacity >= 1 works.
//
// Copying a View yields an independent cursor over the same storage; both
// copies mutate the shared slots. Views are not safe for concurrent use.
type View[T any] struct {
	data   []T
	head   int
	size   int
	policy SlotPolicy
	pop    Popper[T]
}

var _ api.Deque[any] = (*View[any])(nil)

// Option configures a view at construction time.
type Option[T any] func(*View[T])

// WithPopper sets the displacement strategy. Default is Take.
func WithPopper[T any](p Popper[T]) Option[T] {
	return func(v *View[T]) { v.pop = p }
}

// WithSlotPolicy sets the element lifecycle. NewPartial defaults to
// SlotAssign; NewFull and NewEmpty fix the policy and reject overrides.
func WithSlotPolicy[T any](sp SlotPolicy) Option[T] {
	return func(v *View[T]) { v.policy = sp }
}

func newView[T any](storage []T, head, size int, policy SlotPolicy, opts []Option[T]) *View[T] {
	if len(storage) == 0 {
		panic("ring: view over zero-length storage")
	}
	v := &View[T]{
		data:   storage,
		head:   head,
		size:   size,
		policy: policy,
		pop:    Take[T](),
	}
	for _, opt := range opts {
		opt(v)
	}
	if v.head < 0 || v.head >= len(v.data) {
		panic("ring: head index out of range")
	}
	if v.size < 0 || v.size > len(v.data) {
		panic("ring: size exceeds capacity")
	}
	if _, ok := v.pop.(replacePopper[T]); ok && v.policy == SlotClear {
		panic("ring: replace popper requires assign slots")
	}
	return v
}

// NewFull returns a view whose window already covers all of storage, oldest
// element at index 0. Every slot is a live value, so the lifecycle is fixed
// at SlotAssign; passing WithSlotPolicy(SlotClear) panics.
func NewFull[T any](storage []T, opts ...Option[T]) *View[T] {
	v := newView(storage, 0, len(storage), SlotAssign, opts)
	if v.policy != SlotAssign {
		panic("ring: full view requires assign slots")
	}
	return v
}

// NewEmpty returns an empty view over storage and zeroes all of it, so the
// slice holds no stale values from its previous life. The lifecycle is fixed
// at SlotClear; passing WithSlotPolicy(SlotAssign) panics. To adopt
// pre-initialized storage without wiping it, use NewPartial(storage, 0, 0).
func NewEmpty[T any](storage []T, opts ...Option[T]) *View[T] {
	v := newView(storage, 0, 0, SlotClear, opts)
	if v.policy != SlotClear {
		panic("ring: empty view requires clear slots")
	}
	clear(v.data)
	return v
}

// NewPartial returns a view whose window is the size elements beginning at
// storage[head], wrapping past the end of storage when head+size exceeds its
// length. It adopts head and size verbatim, which is how a window persisted
// alongside its storage is resumed. Panics when head or size is out of range.
func NewPartial[T any](storage []T, head, size int, opts ...Option[T]) *View[T] {
	return newView(storage, head, size, SlotAssign, opts)
}

// next returns the index one slot clockwise of i.
func (v *View[T]) next(i int) int {
	return (i + 1) % len(v.data)
}

// prev returns the index one slot counterclockwise of i.
func (v *View[T]) prev(i int) int {
	return (i + len(v.data) - 1) % len(v.data)
}

// tail returns the index one past the newest element, the slot the next
// back-push lands in.
func (v *View[T]) tail() int {
	return (v.head + v.size) % len(v.data)
}

// segments returns the live window as up to two contiguous slices of the
// underlying storage, in queue order.
func (v *View[T]) segments() ([]T, []T) {
	if v.size == 0 {
		return nil, nil
	}
	end := v.head + v.size
	if end <= len(v.data) {
		return v.data[v.head:end], nil
	}
	return v.data[v.head:], v.data[:end-len(v.data)]
}

// Len returns the number of live elements.
func (v *View[T]) Len() int { return v.size }

// Cap returns the capacity of the underlying storage.
func (v *View[T]) Cap() int { return len(v.data) }

// Empty reports whether the view holds no elements.
func (v *View[T]) Empty() bool { return v.size == 0 }

// Full reports whether the window covers all of storage.
func (v *View[T]) Full() bool { return v.size == len(v.data) }

// Front returns the oldest element. Panics when empty.
func (v *View[T]) Front() T {
	if v.size == 0 {
		panic("ring: front of empty view")
	}
	return v.data[v.head]
}

// Back returns the newest element. Panics when empty.
func (v *View[T]) Back() T {
	if v.size == 0 {
		panic("ring: back of empty view")
	}
	return v.data[v.prev(v.tail())]
}

// At returns a pointer to the i-th element in queue order, 0 being the
// front. Panics unless 0 <= i < Len. The pointer stays valid until the
// element leaves the window; a later push may reuse the slot.
func (v *View[T]) At(i int) *T {
	if i < 0 || i >= v.size {
		panic("ring: index out of range")
	}
	return &v.data[(v.head+i)%len(v.data)]
}

// PushBack appends val. When full it displaces the front element: the
// popper observes the victim, then val overwrites the slot and the window
// rotates forward, so capacity and fullness are unchanged.
func (v *View[T]) PushBack(val T) {
	if v.size == len(v.data) {
		slot := &v.data[v.head]
		v.pop.Apply(slot)
		*slot = val
		v.head = v.next(v.head)
		return
	}
	v.data[v.tail()] = val
	v.size++
}

// PushFront prepends val. When full it displaces the back element, which
// when full occupies exactly the slot the new front needs.
func (v *View[T]) PushFront(val T) {
	p := v.prev(v.head)
	if v.size == len(v.data) {
		slot := &v.data[p]
		v.pop.Apply(slot)
		*slot = val
		v.head = p
		return
	}
	v.data[p] = val
	v.head = p
	v.size++
}

// MustPushBack appends val and panics when the view is full.
func (v *View[T]) MustPushBack(val T) {
	if v.size == len(v.data) {
		panic("ring: push to full view")
	}
	v.data[v.tail()] = val
	v.size++
}

// MustPushFront prepends val and panics when the view is full.
func (v *View[T]) MustPushFront(val T) {
	if v.size == len(v.data) {
		panic("ring: push to full view")
	}
	v.head = v.prev(v.head)
	v.data[v.head] = val
	v.size++
}

// TryPushBack appends val and reports success. A full view is left
// untouched and false is returned.
func (v *View[T]) TryPushBack(val T) bool {
	if v.size == len(v.data) {
		return false
	}
	v.data[v.tail()] = val
	v.size++
	return true
}

// TryPushFront prepends val and reports success. A full view is left
// untouched and false is returned.
func (v *View[T]) TryPushFront(val T) bool {
	if v.size == len(v.data) {
		return false
	}
	v.head = v.prev(v.head)
	v.data[v.head] = val
	v.size++
	return true
}

// PopFront removes the oldest element and returns what the popper yields
// for it. Panics when empty.
func (v *View[T]) PopFront() T {
	if v.size == 0 {
		panic("ring: pop of empty view")
	}
	slot := &v.data[v.head]
	out := v.pop.Apply(slot)
	if v.policy == SlotClear {
		var zero T
		*slot = zero
	}
	v.head = v.next(v.head)
	v.size--
	return out
}

// PopBack removes the newest element and returns what the popper yields
// for it. Panics when empty.
func (v *View[T]) PopBack() T {
	if v.size == 0 {
		panic("ring: pop of empty view")
	}
	slot := &v.data[v.prev(v.tail())]
	out := v.pop.Apply(slot)
	if v.policy == SlotClear {
		var zero T
		*slot = zero
	}
	v.size--
	return out
}

// TryPopFront removes the oldest element, reporting false on an empty view
// instead of panicking.
func (v *View[T]) TryPopFront() (T, bool) {
	if v.size == 0 {
		var zero T
		return zero, false
	}
	return v.PopFront(), true
}

// TryPopBack removes the newest element, reporting false on an empty view
// instead of panicking.
func (v *View[T]) TryPopBack() (T, bool) {
	if v.size == 0 {
		var zero T
		return zero, false
	}
	return v.PopBack(), true
}

// Clear empties the window without invoking the popper. Under SlotClear the
// vacated slots are zeroed; under SlotAssign the values stay in storage.
func (v *View[T]) Clear() {
	if v.policy == SlotClear {
		a, b := v.segments()
		clear(a)
		clear(b)
	}
	v.head = 0
	v.size = 0
}

// CopyTo copies the live window into dst in queue order, front first, and
// returns the number of elements copied: min(Len, len(dst)). The window is
// unchanged.
func (v *View[T]) CopyTo(dst []T) int {
	a, b := v.segments()
	n := copy(dst, a)
	n += copy(dst[n:], b)
	return n
}

// Rebind points the view at a different slice of the same length, keeping
// window position, lifecycle, and popper. This is how a view follows its
// storage after the caller relocates it, for instance when cloning.
// Panics when the capacities differ.
func (v *View[T]) Rebind(storage []T) {
	if len(storage) != len(v.data) {
		panic("ring: rebind capacity mismatch")
	}
	v.data = storage
}
