// File: ring/iterator.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Random-access iteration over the live window of a view.

package ring

import (
	"cmp"
	"iter"
)

// Iterator addresses a logical position in a view's window: 0 is the front,
// Len()-1 the back, Len() the one-past-the-end position. Because positions
// are logical, an iterator never lands in the dead region of a wrapped
// window, and stepping costs the same no matter how far the window has
// rotated around the storage.
//
// Iterators are values; arithmetic returns new iterators. They stay coupled
// to the view they came from, so pushes and pops shift what a held position
// refers to.
type Iterator[T any] struct {
	view *View[T]
	pos  int
}

// Begin returns an iterator at the front of the window.
func (v *View[T]) Begin() Iterator[T] {
	return Iterator[T]{view: v, pos: 0}
}

// End returns the one-past-the-back iterator. It is a boundary marker:
// calling Value or Ptr on it panics.
func (v *View[T]) End() Iterator[T] {
	return Iterator[T]{view: v, pos: v.size}
}

// Next returns the iterator advanced one position toward the back.
func (it Iterator[T]) Next() Iterator[T] {
	it.pos++
	return it
}

// Prev returns the iterator moved one position toward the front.
func (it Iterator[T]) Prev() Iterator[T] {
	it.pos--
	return it
}

// Add returns the iterator moved n positions toward the back; n may be
// negative.
func (it Iterator[T]) Add(n int) Iterator[T] {
	it.pos += n
	return it
}

// Sub returns the iterator moved n positions toward the front.
func (it Iterator[T]) Sub(n int) Iterator[T] {
	it.pos -= n
	return it
}

// Pos returns the logical position, the distance from the front.
func (it Iterator[T]) Pos() int { return it.pos }

// Valid reports whether the iterator addresses a live element of its view.
func (it Iterator[T]) Valid() bool {
	return it.view != nil && it.pos >= 0 && it.pos < it.view.size
}

// Value returns the addressed element. Panics outside the live window.
func (it Iterator[T]) Value() T { return *it.Ptr() }

// Ptr returns a pointer to the addressed element, through which the element
// can be updated in place. Panics outside the live window.
func (it Iterator[T]) Ptr() *T {
	if it.view == nil {
		panic("ring: iterator without a view")
	}
	return it.view.At(it.pos)
}

// Set overwrites the addressed element. Panics outside the live window.
func (it Iterator[T]) Set(val T) { *it.Ptr() = val }

func (it Iterator[T]) mustShareView(other Iterator[T]) {
	if it.view != other.view {
		panic("ring: iterators from different views")
	}
}

// Equal reports whether both iterators address the same position of the
// same view. Panics when they come from different views.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	it.mustShareView(other)
	return it.pos == other.pos
}

// Less reports whether it is closer to the front than other. Panics when
// the iterators come from different views.
func (it Iterator[T]) Less(other Iterator[T]) bool {
	it.mustShareView(other)
	return it.pos < other.pos
}

// Compare orders two iterators of the same view: -1 when it is closer to the
// front, 0 when equal, +1 otherwise. Panics when the iterators come from
// different views.
func (it Iterator[T]) Compare(other Iterator[T]) int {
	it.mustShareView(other)
	return cmp.Compare(it.pos, other.pos)
}

// Distance returns other.Pos() - it.Pos(), the number of Next steps from it
// to other. Panics when the iterators come from different views.
func (it Iterator[T]) Distance(other Iterator[T]) int {
	it.mustShareView(other)
	return other.pos - it.pos
}

// All returns an iterator over position/value pairs of the live window in
// queue order. The window is not consumed. The sequence reads the view
// live, so the caller must not mutate the view while ranging.
func (v *View[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.data[(v.head+i)%len(v.data)]) {
				return
			}
		}
	}
}

// Values returns an iterator over the live window's values in queue order,
// front first. The window is not consumed.
func (v *View[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(v.data[(v.head+i)%len(v.data)]) {
				return
			}
		}
	}
}

// Backward returns an iterator over position/value pairs of the live window
// from back to front. The window is not consumed.
func (v *View[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.size - 1; i >= 0; i-- {
			if !yield(i, v.data[(v.head+i)%len(v.data)]) {
				return
			}
		}
	}
}
