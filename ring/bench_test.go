// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

// bench_test.go measures steady-state throughput of the core view paths.

package ring_test

import (
	"sync"
	"testing"

	"github.com/momentics/ringspan/ring"
)

func BenchmarkViewPushPop(b *testing.B) {
	v := ring.NewPartial(make([]int, 1024), 0, 0)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v.MustPushBack(i)
		v.PopFront()
	}
}

func BenchmarkViewEvictingPush(b *testing.B) {
	v := ring.NewFull(make([]int, 1024))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v.PushBack(i)
	}
}

func BenchmarkViewEvictingPushDiscard(b *testing.B) {
	v := ring.NewFull(make([]int, 1024), ring.WithPopper(ring.Discard[int]()))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v.PushBack(i)
	}
}

func BenchmarkViewBothEnds(b *testing.B) {
	v := ring.NewPartial(make([]int, 1024), 0, 0)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v.PushFront(i)
		v.PopBack()
	}
}

func BenchmarkViewIterate(b *testing.B) {
	v := ring.NewFull(make([]int, 1024))
	b.ReportAllocs()
	b.ResetTimer()
	var sum int
	for i := 0; i < b.N; i++ {
		for x := range v.Values() {
			sum += x
		}
	}
	_ = sum
}

func BenchmarkViewCopyTo(b *testing.B) {
	v := ring.NewPartial(make([]int, 1024), 512, 1024)
	dst := make([]int, 1024)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v.CopyTo(dst)
	}
}

// Views are single-goroutine; sharing one costs a lock. This measures that
// composition under contention.
func BenchmarkLockedViewParallel(b *testing.B) {
	var mu sync.Mutex
	v := ring.NewPartial(make([]int, 1024), 0, 0)
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			mu.Lock()
			if v.Full() {
				v.PopFront()
			}
			v.MustPushBack(1)
			mu.Unlock()
		}
	})
}
