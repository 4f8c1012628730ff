// Copyright 2025 momentics@gmail.com
// SPDX-License-Identifier: Apache-2.0

package control_test

import (
	"testing"

	"github.com/momentics/hioload-slicearray/control"
)

func TestRegistrySnapshotReadsLiveValues(t *testing.T) {
	r := control.NewRegistry()
	n := 0
	r.Register("counter", func() any { return n })

	if got := r.Snapshot()["counter"]; got != 0 {
		t.Fatalf("counter = %v, want 0", got)
	}
	n = 5
	if got := r.Snapshot()["counter"]; got != 5 {
		t.Fatalf("counter = %v, want 5", got)
	}
}

func TestRegistryUnregister(t *testing.T) {
	r := control.NewRegistry()
	r.Register("a", func() any { return 1 })
	r.Register("b", func() any { return 2 })
	r.Unregister("a")
	r.Unregister("missing")

	snap := r.Snapshot()
	if _, ok := snap["a"]; ok {
		t.Fatal("probe a still present after Unregister")
	}
	if snap["b"] != 2 {
		t.Fatalf("probe b = %v, want 2", snap["b"])
	}
}

func TestPlatformProbes(t *testing.T) {
	r := control.NewRegistry()
	control.RegisterPlatformProbes(r)
	snap := r.Snapshot()
	if cpus, ok := snap["platform.cpus"].(int); !ok || cpus < 1 {
		t.Fatalf("platform.cpus = %v, want a positive int", snap["platform.cpus"])
	}
}
