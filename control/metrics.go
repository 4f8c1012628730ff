// control/metrics.go
// Author: momentics <momentics@gmail.com>
//
// Runtime stats registry for arena and container monitoring.
// Probes are pull-based: a component registers a closure over its
// stats accessor and every Snapshot re-reads the live value.

package control

import (
	"sync"
)

// Registry holds named stats probes.
type Registry struct {
	mu     sync.RWMutex
	probes map[string]func() any
}

// NewRegistry creates an empty probe registry.
func NewRegistry() *Registry {
	return &Registry{
		probes: make(map[string]func() any),
	}
}

// Register inserts or replaces a named probe.
func (r *Registry) Register(name string, fn func() any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.probes[name] = fn
}

// Unregister removes a probe. Removing an unknown name is a no-op.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.probes, name)
}

// Snapshot invokes every probe and returns the captured values.
func (r *Registry) Snapshot() map[string]any {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]any, len(r.probes))
	for name, fn := range r.probes {
		out[name] = fn()
	}
	return out
}
