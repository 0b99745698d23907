// File: mem/slab.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Platform-independent slab allocation core.

package mem

import (
	"math"
	"reflect"
	"unsafe"

	"github.com/momentics/ringspan/api"
)

// Slab is a fixed block of element storage. Its slice stays valid until
// Release; views laid over it must not outlive the slab.
type Slab[T any] struct {
	data []T
	free func() error
}

// AllocSlab returns a slab of the given number of slots, zeroed. Element
// types that carry pointers are placed on the Go heap so the collector
// keeps seeing them; pointer-free types use page-backed memory when the
// platform provides it and fall back to the heap when it does not.
func AllocSlab[T any](slots int) (*Slab[T], error) {
	if slots <= 0 {
		return nil, api.NewError(api.ErrCodeInvalidArgument,
			"slab slots must be positive").WithContext("slots", slots)
	}
	var t T
	elem := int(unsafe.Sizeof(t))
	if elem > 0 && slots > math.MaxInt/elem {
		return nil, api.NewError(api.ErrCodeResourceExhausted,
			"slab byte size overflows").
			WithContext("slots", slots).
			WithContext("elem_bytes", elem)
	}
	if elem == 0 || typeHasPointers[T]() {
		return heapSlab[T](slots), nil
	}

	raw, release, err := osAlloc(slots * elem)
	if err != nil || raw == nil {
		return heapSlab[T](slots), nil
	}
	data := unsafe.Slice((*T)(unsafe.Pointer(&raw[0])), slots)
	return &Slab[T]{data: data, free: release}, nil
}

func heapSlab[T any](slots int) *Slab[T] {
	return &Slab[T]{
		data: make([]T, slots),
		free: func() error { return nil },
	}
}

// Data returns the slab's storage. Nil after Release.
func (s *Slab[T]) Data() []T { return s.data }

// Len returns the number of slots.
func (s *Slab[T]) Len() int { return len(s.data) }

// Release returns the memory to the system and invalidates Data. A second
// Release reports ErrSlabReleased.
func (s *Slab[T]) Release() error {
	if s.free == nil {
		return ErrSlabReleased
	}
	release := s.free
	s.free = nil
	s.data = nil
	return release()
}

func typeHasPointers[T any]() bool {
	return containsPointers(reflect.TypeOf((*T)(nil)).Elem())
}

func containsPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32,
		reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		return containsPointers(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if containsPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		// Pointers, slices, maps, strings, channels, funcs, interfaces.
		return true
	}
}
