//go:build !linux && !windows
// +build !linux,!windows

// File: mem/slab_stub.go
// Author: momentics <momentics@gmail.com>
//
// Stub slab backing for unsupported platforms; allocation falls back to
// the Go heap.

package mem

func osAlloc(int) ([]byte, func() error, error) {
	return nil, nil, nil
}
