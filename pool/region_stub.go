//go:build !linux && !windows
// +build !linux,!windows

// File: pool/region_stub.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Heap-backed slab mapper for platforms without a dedicated implementation.

package pool

type heapSource struct{}

// newRegionSource returns the Go-heap mapper.
func newRegionSource() RegionSource {
	return heapSource{}
}

// regionSize reports the exact byte length Map returns for a request of
// size bytes.
func regionSize(size int) int {
	return size
}

func (heapSource) Map(size, numaNode int) (Region, error) {
	return heapRegion(size), nil
}

func (heapSource) Unmap(Region) {}
