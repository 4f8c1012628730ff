// File: api/arena.go
// Author: momentics <momentics@gmail.com>
//
// Defines the arena contracts: bump-style slab allocators that hand out
// fixed-size element regions and reclaim everything at once.

package api

// Arena is the allocator contract bound into an append-only container.
//
// AllocSpan returns an uninitialized region of exactly n element slots.
// Individual spans are never returned to the arena; Reclaim retires every
// span at once. Callers that hand an Arena to a container must order
// Reclaim strictly after the container's Reset, or the container is left
// referencing retired memory.
//
// Implementations are not required to be safe for concurrent AllocSpan
// calls from a single container: the container serializes its own calls.
// Arenas shared between several containers must tolerate concurrent
// AllocSpan from distinct containers.
type Arena[T any] interface {
	// AllocSpan returns an uninitialized span of n element slots.
	AllocSpan(n int) []T

	// Reclaim retires all spans handed out so far. The arena stays usable;
	// subsequent AllocSpan calls may reuse the retired memory.
	Reclaim()

	// Stats exposes allocation accounting for observability.
	Stats() ArenaStats
}

// Appender is the producer-side contract of an append-only container.
// Append must be safe for any number of concurrent callers.
type Appender[T any] interface {
	Append(v T)
}

// ArenaStats aggregates arena allocation/reuse accounting.
type ArenaStats struct {
	TotalAlloc  int64 // spans handed out since creation
	TotalReuse  int64 // spans served from recycled slabs
	InUse       int64 // spans live since the last Reclaim
	Slabs       int64 // slabs currently owned by the arena
	MappedBytes int64 // bytes obtained from the OS mapper (0 for heap slabs)
	NUMANode    int   // placement hint the arena was created with
}
