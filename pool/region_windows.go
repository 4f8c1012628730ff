//go:build windows
// +build windows

// File: pool/region_windows.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Windows slab mapper over VirtualAlloc. Reserve and commit in one
// step; the Go heap is the fallback when the commit is refused.

package pool

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

type virtualAllocSource struct{}

// newRegionSource returns the VirtualAlloc-backed mapper.
func newRegionSource() RegionSource {
	return virtualAllocSource{}
}

// regionSize reports the exact byte length Map returns for a request of
// size bytes. VirtualAlloc hands back whole pages internally but the
// usable window is kept at the requested size.
func regionSize(size int) int {
	return size
}

func (virtualAllocSource) Map(size, numaNode int) (Region, error) {
	addr, err := windows.VirtualAlloc(0, uintptr(size),
		windows.MEM_RESERVE|windows.MEM_COMMIT, windows.PAGE_READWRITE)
	if err != nil || addr == 0 {
		return heapRegion(size), nil
	}
	buf := unsafe.Slice((*byte)(unsafe.Pointer(addr)), size)
	return Region{Data: buf, Mapped: true}, nil
}

func (virtualAllocSource) Unmap(r Region) {
	if !r.Mapped || len(r.Data) == 0 {
		return
	}
	_ = windows.VirtualFree(uintptr(unsafe.Pointer(&r.Data[0])), 0, windows.MEM_RELEASE)
}
