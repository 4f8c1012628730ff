// Package pool
// Author: momentics <momentics@gmail.com>
//
// Memory layer for the append-only slice containers.
// Implements hugepage-backed, NUMA-friendly slab arenas with atomic
// bump-pointer span carving, generation-based reclamation and a
// process-wide slab recycle cache. All primitives are cross-platform
// (Linux/Windows) and designed for ultra-low-latency, high-throughput
// workloads.
// See arena.go, typed.go and region_linux.go for implementation details.
package pool
