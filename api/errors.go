// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error values for the hioload-slicearray library.

package api

import "fmt"

// Common errors used across the library.
var (
	// ErrRegionMapFailed reports that an OS-level region mapping was refused
	// and the caller disallowed the heap fallback.
	ErrRegionMapFailed = fmt.Errorf("region mapping failed")

	// ErrArenaReleased reports use of an arena after Release.
	ErrArenaReleased = fmt.Errorf("arena has been released")

	// ErrPointerElements reports an attempt to build a raw (off-heap) arena
	// for an element type that contains pointers.
	ErrPointerElements = fmt.Errorf("element type contains pointers")

	// ErrNotSupported reports an operation unavailable on this platform.
	ErrNotSupported = fmt.Errorf("operation not supported")
)
