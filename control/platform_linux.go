//go:build linux
// +build linux

// control/platform_linux.go
// Author: momentics <momentics@gmail.com>
//
// Linux-specific platform probes.

package control

import (
	"os"
	"runtime"
	"strings"
)

// RegisterPlatformProbes sets Linux-specific debug metrics.
func RegisterPlatformProbes(r *Registry) {
	r.Register("platform.cpus", func() any {
		return runtime.NumCPU()
	})
	r.Register("platform.pagesize", func() any {
		return os.Getpagesize()
	})
	r.Register("platform.thp", func() any {
		b, err := os.ReadFile("/sys/kernel/mm/transparent_hugepage/enabled")
		if err != nil {
			return "unknown"
		}
		return strings.TrimSpace(string(b))
	})
}
