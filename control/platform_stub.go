//go:build !linux && !windows
// +build !linux,!windows

// control/platform_stub.go
// Author: momentics <momentics@gmail.com>
//
// Minimal probe set for other platforms.

package control

import (
	"os"
	"runtime"
)

// RegisterPlatformProbes sets generic platform probes.
func RegisterPlatformProbes(r *Registry) {
	r.Register("platform.cpus", func() any {
		return runtime.NumCPU()
	})
	r.Register("platform.pagesize", func() any {
		return os.Getpagesize()
	})
}
