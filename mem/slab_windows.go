//go:build windows
// +build windows

// File: mem/slab_windows.go
// Author: momentics <momentics@gmail.com>
//
// Windows slab backing via VirtualAlloc.

package mem

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	kern32           = windows.NewLazySystemDLL("kernel32.dll")
	procVirtualAlloc = kern32.NewProc("VirtualAlloc")
	procVirtualFree  = kern32.NewProc("VirtualFree")
)

func osAlloc(size int) ([]byte, func() error, error) {
	addr, _, callErr := procVirtualAlloc.Call(
		0, uintptr(size),
		windows.MEM_RESERVE|windows.MEM_COMMIT,
		windows.PAGE_READWRITE,
	)
	if addr == 0 {
		return nil, nil, callErr
	}
	release := func() error {
		ok, _, callErr := procVirtualFree.Call(addr, 0, windows.MEM_RELEASE)
		if ok == 0 {
			return callErr
		}
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), size), release, nil
}
