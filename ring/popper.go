// File: ring/popper.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Displacement strategies for ring views.

package ring

// Popper decides what a removed or displaced element yields and what, if
// anything, remains in its slot. Every pop routes through the view's popper;
// evicting pushes invoke it too before overwriting the victim slot.
type Popper[T any] interface {
	// Apply consumes the slot's current value and returns the pop result.
	// It may rewrite the slot; the view applies its SlotPolicy afterwards.
	Apply(slot *T) T
}

// PopperFunc adapts a plain function to the Popper interface.
type PopperFunc[T any] func(slot *T) T

// Apply calls f(slot).
func (f PopperFunc[T]) Apply(slot *T) T { return f(slot) }

type discardPopper[T any] struct{}

func (discardPopper[T]) Apply(*T) T {
	var zero T
	return zero
}

// Discard returns a popper whose pops yield the zero value and leave the
// slot untouched. Removal becomes pure bookkeeping.
func Discard[T any]() Popper[T] { return discardPopper[T]{} }

type takePopper[T any] struct{}

func (takePopper[T]) Apply(slot *T) T {
	v := *slot
	var zero T
	*slot = zero
	return v
}

// Take returns the default popper: pops yield the slot's value and zero the
// slot so the storage drops any references the element held.
func Take[T any]() Popper[T] { return takePopper[T]{} }

type replacePopper[T any] struct {
	seed T
}

func (p replacePopper[T]) Apply(slot *T) T {
	v := *slot
	*slot = p.seed
	return v
}

// Replace returns a popper whose pops yield the slot's value and rewrite the
// slot with seed. Useful when vacated slots must hold a recognizable filler,
// for instance reusable handles in pooled storage. Requires SlotAssign.
func Replace[T any](seed T) Popper[T] { return replacePopper[T]{seed: seed} }
