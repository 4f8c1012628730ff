// Package benchmarks provides performance benchmarks for the container and its arenas.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package benchmarks

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/momentics/hioload-slicearray/pool"
	"github.com/momentics/hioload-slicearray/slicearray"
)

// BenchmarkArray_Append benchmarks single-goroutine append throughput.
func BenchmarkArray_Append(b *testing.B) {
	arena := pool.NewHeapArena[uint64](1 << 16)
	arr := slicearray.New[uint64](1024, nil)
	arr.Bind(arena)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		arr.Append(uint64(i))
	}
	b.StopTimer()

	arr.Reset()
	arena.Reclaim()
}

// BenchmarkArray_AppendParallel benchmarks contended append throughput.
func BenchmarkArray_AppendParallel(b *testing.B) {
	arena := pool.NewHeapArena[uint64](1 << 16)
	arr := slicearray.New[uint64](1024, nil)
	arr.Bind(arena)

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			arr.Append(42)
		}
	})
	b.StopTimer()

	arr.Reset()
	arena.Reclaim()
}

// BenchmarkArray_Append_BlockCaps benchmarks how block capacity trades
// CAS contention against growth frequency.
func BenchmarkArray_Append_BlockCaps(b *testing.B) {
	caps := []int{64, 256, 1024, 4096}

	for _, blockCap := range caps {
		b.Run(capToString(blockCap), func(b *testing.B) {
			arena := pool.NewHeapArena[uint64](1 << 16)
			arr := slicearray.New[uint64](blockCap, nil)
			arr.Bind(arena)

			b.ResetTimer()
			b.RunParallel(func(pb *testing.PB) {
				for pb.Next() {
					arr.Append(42)
				}
			})
			b.StopTimer()

			arr.Reset()
			arena.Reclaim()
		})
	}
}

// BenchmarkRawArena_AllocSpan benchmarks span carving off mapped slabs.
// Reclaim runs every few thousand spans and is amortized into the
// measured loop, matching the real fill/reset cycle.
func BenchmarkRawArena_AllocSpan(b *testing.B) {
	arena, err := pool.NewRawArena[uint64](pool.DefaultArenaConfig())
	if err != nil {
		b.Fatalf("NewRawArena: %v", err)
	}
	defer arena.Release()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		arena.AllocSpan(64)
		if i&0xFFF == 0xFFF {
			arena.Reclaim()
		}
	}
	b.StopTimer()
	arena.Reclaim()
}

// BenchmarkHeapArena_AllocSpan is the GC-visible counterpart.
func BenchmarkHeapArena_AllocSpan(b *testing.B) {
	arena := pool.NewHeapArena[uint64](1 << 13)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		arena.AllocSpan(64)
		if i&0xFFF == 0xFFF {
			arena.Reclaim()
		}
	}
	b.StopTimer()
	arena.Reclaim()
}

// BenchmarkArray_Sort benchmarks the in-place sort over a nearly
// ordered fill, the workload the insertion pass is tuned for.
func BenchmarkArray_Sort(b *testing.B) {
	const n, jitter = 100000, 16
	arena := pool.NewHeapArena[int64](1 << 14)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		arr := slicearray.New[int64](1024, func(x, y int64) bool { return x < y })
		arr.Bind(arena)
		rnd := rand.New(rand.NewSource(5))
		for j := 0; j < n; j++ {
			arr.Append(int64(j) + rnd.Int63n(2*jitter+1) - jitter)
		}
		b.StartTimer()

		arr.Sort()

		b.StopTimer()
		arr.Reset()
		arena.Reclaim()
		b.StartTimer()
	}
}

// Helper function to convert a block capacity to a benchmark name.
func capToString(blockCap int) string {
	return fmt.Sprintf("%delems", blockCap)
}
