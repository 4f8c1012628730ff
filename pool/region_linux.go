//go:build linux
// +build linux

// File: pool/region_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Linux slab mapper. Large requests are served from anonymous hugepage
// mappings when the kernel has them; everything else is plain anonymous
// mmap. Mapping never fails the caller: the Go heap is the terminal
// fallback.
//
// NUMA placement relies on first-touch: pages are bound to the node of
// the CPU that first writes them, so producers pinned via the affinity
// package populate slabs locally without any cgo/libnuma dependency.
// The requested node is recorded in stats only.

package pool

import "golang.org/x/sys/unix"

// hugePageSize is the common x86-64/arm64 transparent size. Requests at
// or above it are rounded up and tried with MAP_HUGETLB first.
const hugePageSize = 2 << 20

type mmapSource struct{}

// newRegionSource returns the mmap-backed mapper.
func newRegionSource() RegionSource {
	return mmapSource{}
}

// regionSize reports the exact byte length Map returns for a request of
// size bytes. Slab recycling keys on this value.
func regionSize(size int) int {
	if size >= hugePageSize {
		return alignUp(size, hugePageSize)
	}
	return size
}

func (mmapSource) Map(size, numaNode int) (Region, error) {
	n := regionSize(size)
	if n >= hugePageSize {
		buf, err := unix.Mmap(-1, 0, n,
			unix.PROT_READ|unix.PROT_WRITE,
			unix.MAP_PRIVATE|unix.MAP_ANON|unix.MAP_HUGETLB)
		if err == nil {
			return Region{Data: buf, Mapped: true}, nil
		}
		// No hugepages reserved on this host; fall through to 4K pages.
	}
	buf, err := unix.Mmap(-1, 0, n,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return heapRegion(n), nil
	}
	return Region{Data: buf, Mapped: true}, nil
}

func (mmapSource) Unmap(r Region) {
	if !r.Mapped || len(r.Data) == 0 {
		return
	}
	_ = unix.Munmap(r.Data)
}
