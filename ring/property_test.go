// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

// property_test.go drives views with randomized workloads and checks them
// against reference models.

package ring_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/eapache/queue"

	"github.com/momentics/ringspan/ring"
)

// TestViewPropertyFIFOOracle replays a random push/pop schedule against an
// unbounded FIFO queue. While the view is never pushed past capacity the
// two must agree on every dequeued value.
func TestViewPropertyFIFOOracle(t *testing.T) {
	const capacity = 64
	const ops = 100_000

	rng := rand.New(rand.NewSource(42))
	v := ring.NewPartial(make([]int, capacity), 0, 0)
	oracle := queue.New()

	for i := 0; i < ops; i++ {
		if rng.Intn(2) == 0 {
			val := rng.Int()
			if v.TryPushBack(val) {
				oracle.Add(val)
			} else if oracle.Length() != capacity {
				t.Fatalf("Op %d: view full at %d items, oracle has %d", i, capacity, oracle.Length())
			}
		} else if got, ok := v.TryPopFront(); ok {
			want := oracle.Remove().(int)
			if got != want {
				t.Fatalf("Op %d: expected pop %d, got %d", i, want, got)
			}
		} else if oracle.Length() != 0 {
			t.Fatalf("Op %d: view empty, oracle has %d items", i, oracle.Length())
		}

		if v.Len() != oracle.Length() {
			t.Fatalf("Op %d: expected length %d, got %d", i, oracle.Length(), v.Len())
		}
		if v.Len() > 0 && v.Front() != oracle.Peek().(int) {
			t.Fatalf("Op %d: expected front %d, got %d", i, oracle.Peek().(int), v.Front())
		}
	}

	for v.Len() > 0 {
		if got, want := v.PopFront(), oracle.Remove().(int); got != want {
			t.Fatalf("Drain: expected %d, got %d", want, got)
		}
	}
	if oracle.Length() != 0 {
		t.Fatalf("Drain: oracle left with %d items", oracle.Length())
	}
}

// TestViewPropertyDequeModel exercises both ends, evicting pushes included,
// against a plain slice model of a bounded deque.
func TestViewPropertyDequeModel(t *testing.T) {
	const ops = 100_000

	rng := rand.New(rand.NewSource(1337))
	for _, capacity := range []int{1, 2, 3, 7, 64} {
		v := ring.NewPartial(make([]int, capacity), 0, 0)
		var model []int

		for i := 0; i < ops/10; i++ {
			val := rng.Intn(1000)
			switch rng.Intn(6) {
			case 0: // evicting push back
				v.PushBack(val)
				if len(model) == capacity {
					model = model[1:]
				}
				model = append(model, val)
			case 1: // evicting push front
				v.PushFront(val)
				if len(model) == capacity {
					model = model[:len(model)-1]
				}
				model = append([]int{val}, model...)
			case 2:
				if v.TryPushBack(val) {
					model = append(model, val)
				}
			case 3:
				if v.TryPushFront(val) {
					model = append([]int{val}, model...)
				}
			case 4:
				if got, ok := v.TryPopFront(); ok {
					if got != model[0] {
						t.Fatalf("cap %d op %d: expected front pop %d, got %d", capacity, i, model[0], got)
					}
					model = model[1:]
				} else if len(model) != 0 {
					t.Fatalf("cap %d op %d: view empty, model has %d", capacity, i, len(model))
				}
			case 5:
				if got, ok := v.TryPopBack(); ok {
					if got != model[len(model)-1] {
						t.Fatalf("cap %d op %d: expected back pop %d, got %d", capacity, i, model[len(model)-1], got)
					}
					model = model[:len(model)-1]
				}
			}

			if v.Len() != len(model) {
				t.Fatalf("cap %d op %d: expected size %d, got %d", capacity, i, len(model), v.Len())
			}
			if v.Len() < 0 || v.Len() > capacity {
				t.Fatalf("cap %d op %d: size %d out of bounds", capacity, i, v.Len())
			}
			if len(model) > 0 {
				if v.Front() != model[0] || v.Back() != model[len(model)-1] {
					t.Fatalf("cap %d op %d: expected ends %d/%d, got %d/%d",
						capacity, i, model[0], model[len(model)-1], v.Front(), v.Back())
				}
			}
			if v.Empty() != (len(model) == 0) || v.Full() != (len(model) == capacity) {
				t.Fatalf("cap %d op %d: empty/full flags diverged", capacity, i)
			}
		}

		if got := slices.Collect(v.Values()); !slices.Equal(got, model) {
			t.Fatalf("cap %d: expected final window %v, got %v", capacity, model, got)
		}
	}
}

// TestViewPropertyWindowMatchesStorage checks that after an arbitrary
// workload the live window can be reconstructed from head, size, and the
// raw storage alone.
func TestViewPropertyWindowMatchesStorage(t *testing.T) {
	const capacity = 16
	rng := rand.New(rand.NewSource(7))

	storage := make([]int, capacity)
	v := ring.NewPartial(storage, 0, 0)

	for i := 0; i < 10_000; i++ {
		switch rng.Intn(3) {
		case 0:
			v.PushBack(rng.Int())
		case 1:
			v.PushFront(rng.Int())
		case 2:
			v.TryPopFront()
		}

		dst := make([]int, v.Len())
		if n := v.CopyTo(dst); n != v.Len() {
			t.Fatalf("Op %d: expected %d copied, got %d", i, v.Len(), n)
		}
		if got := slices.Collect(v.Values()); !slices.Equal(got, dst) {
			t.Fatalf("Op %d: window %v disagrees with copy %v", i, got, dst)
		}
	}
}
