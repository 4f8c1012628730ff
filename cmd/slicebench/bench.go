// File: cmd/slicebench/bench.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Workload drivers shared by the append, sort and sweep commands.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/natefinch/atomic"

	"github.com/momentics/hioload-slicearray/affinity"
	"github.com/momentics/hioload-slicearray/api"
	"github.com/momentics/hioload-slicearray/control"
	"github.com/momentics/hioload-slicearray/pool"
	"github.com/momentics/hioload-slicearray/slicearray"
)

// result is one measured run, shaped for JSON emission.
type result struct {
	RunID     string         `json:"run_id"`
	Bench     string         `json:"bench"`
	Producers int            `json:"producers"`
	Appends   int            `json:"appends"`
	BlockCap  int            `json:"block_cap"`
	Backend   string         `json:"backend"`
	Elements  int64          `json:"elements"`
	Seconds   float64        `json:"seconds"`
	OpsPerSec float64        `json:"ops_per_sec"`
	Arena     api.ArenaStats `json:"arena"`
	Platform  map[string]any `json:"platform"`
}

// arenaHandle pairs an arena with the teardown matching its backend.
// HeapArena owns no mappings, so its release is a no-op.
type arenaHandle struct {
	arena   api.Arena[uint64]
	release func() error
}

func newArena(p Profile) (arenaHandle, error) {
	switch p.Backend {
	case "raw":
		ra, err := pool.NewRawArena[uint64](pool.ArenaConfig{
			SlabSize: p.SlabSize,
			NUMANode: -1,
		})
		if err != nil {
			return arenaHandle{}, err
		}
		return arenaHandle{arena: ra, release: ra.Release}, nil
	case "heap":
		ha := pool.NewHeapArena[uint64](p.SlabSize / 8)
		return arenaHandle{arena: ha, release: func() error { return nil }}, nil
	default:
		return arenaHandle{}, fmt.Errorf("backend %q: want raw or heap", p.Backend)
	}
}

// platformSnapshot captures host facts for the result record.
func platformSnapshot() map[string]any {
	reg := control.NewRegistry()
	control.RegisterPlatformProbes(reg)
	return reg.Snapshot()
}

// runAppend measures concurrent append throughput: p.Producers
// goroutines each push p.Appends values through one container. Every
// producer releases from the same start barrier so the measured window
// holds nothing but appends.
func runAppend(p Profile) (result, error) {
	h, err := newArena(p)
	if err != nil {
		return result{}, err
	}
	defer h.release()

	arr := slicearray.New[uint64](p.BlockCap, nil)
	arr.Bind(h.arena)

	start := make(chan struct{})
	var wg sync.WaitGroup
	for w := 0; w < p.Producers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			if p.Pin {
				if err := affinity.Pin(w % runtime.NumCPU()); err == nil {
					defer affinity.Unpin()
				}
			}
			<-start
			base := uint64(w) << 32
			for i := 0; i < p.Appends; i++ {
				arr.Append(base | uint64(i))
			}
		}(w)
	}

	began := time.Now()
	close(start)
	wg.Wait()
	elapsed := time.Since(began)

	want := p.Producers * p.Appends
	if got := arr.Len(); got != want {
		return result{}, fmt.Errorf("append: length %d, want %d", got, want)
	}
	res := newResult("append", p, int64(want), elapsed, h.arena.Stats())

	arr.Reset()
	h.arena.Reclaim()
	return res, nil
}

// runSort fills one container with values displaced up to p.Jitter
// positions from sorted order, measures Sort, then walks the chain to
// verify the order.
func runSort(p Profile) (result, error) {
	h, err := newArena(p)
	if err != nil {
		return result{}, err
	}
	defer h.release()

	arr := slicearray.New[uint64](p.BlockCap, func(a, b uint64) bool { return a < b })
	arr.Bind(h.arena)

	n := p.Producers * p.Appends
	jitter := int64(p.Jitter)
	if jitter < 1 {
		jitter = 1
	}
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < n; i++ {
		v := int64(i) + rng.Int63n(2*jitter+1) - jitter
		if v < 0 {
			v = 0
		}
		arr.Append(uint64(v))
	}

	began := time.Now()
	arr.Sort()
	elapsed := time.Since(began)

	prev := uint64(0)
	for it := arr.Begin(); it != arr.End(); it = it.Next() {
		v := it.Value()
		if v < prev {
			return result{}, fmt.Errorf("sort: %d after %d", v, prev)
		}
		prev = v
	}
	res := newResult("sort", p, int64(n), elapsed, h.arena.Stats())

	arr.Reset()
	h.arena.Reclaim()
	return res, nil
}

func newResult(bench string, p Profile, elements int64, elapsed time.Duration, st api.ArenaStats) result {
	secs := elapsed.Seconds()
	return result{
		RunID:     uuid.NewString(),
		Bench:     bench,
		Producers: p.Producers,
		Appends:   p.Appends,
		BlockCap:  p.BlockCap,
		Backend:   p.Backend,
		Elements:  elements,
		Seconds:   secs,
		OpsPerSec: float64(elements) / secs,
		Arena:     st,
		Platform:  platformSnapshot(),
	}
}

// emitResults logs each run and optionally persists the batch. The file
// write is atomic so a collector tailing the path never reads a torn
// document.
func emitResults(results []result) error {
	if !flagQuiet {
		for _, r := range results {
			log.Printf("%s: %d elements in %.3fs (%.0f ops/s, %d slabs, %d reused)",
				r.Bench, r.Elements, r.Seconds, r.OpsPerSec, r.Arena.Slabs, r.Arena.TotalReuse)
		}
	}
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return err
	}
	if flagJSONOut {
		fmt.Println(string(data))
	}
	if flagOut != "" {
		if err := atomic.WriteFile(flagOut, bytes.NewReader(data)); err != nil {
			return fmt.Errorf("write %s: %w", flagOut, err)
		}
	}
	return nil
}
