// File: pool/region.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Platform-neutral slab region mapping. Concrete mappers are selected at
// build time through the platform factory in region_linux.go,
// region_windows.go and region_stub.go.

package pool

// Region is one contiguous slab of raw memory handed to an arena.
type Region struct {
	Data   []byte
	Mapped bool // true when obtained from the OS mapper rather than the Go heap
}

// RegionSource maps and unmaps raw slab regions.
type RegionSource interface {
	// Map returns a region of at least size bytes placed with the given
	// NUMA preference. Implementations fall back to the Go heap rather
	// than failing, so Map only errors when even the heap path is unusable.
	Map(size, numaNode int) (Region, error)

	// Unmap returns an OS-mapped region to the system. Heap-backed regions
	// are ignored and left to the garbage collector.
	Unmap(Region)
}

// heapRegion allocates a region from the Go heap. Shared fallback for all
// platform mappers.
func heapRegion(size int) Region {
	return Region{Data: make([]byte, size)}
}
