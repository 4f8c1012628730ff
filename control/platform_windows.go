//go:build windows
// +build windows

// control/platform_windows.go
// Author: momentics <momentics@gmail.com>
//
// Windows-specific platform probes.

package control

import (
	"os"
	"runtime"
)

// RegisterPlatformProbes sets Windows-specific debug probes.
func RegisterPlatformProbes(r *Registry) {
	r.Register("platform.cpus", func() any {
		return runtime.NumCPU()
	})
	r.Register("platform.pagesize", func() any {
		return os.Getpagesize()
	})
}
