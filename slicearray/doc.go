// Package slicearray
// Author: momentics <momentics@gmail.com>
//
// Growable append-only container for high-throughput concurrent
// production and single-threaded consumption.
// Elements live in a chain of fixed-capacity blocks whose storage comes
// from an external bump-style arena; appends reserve slots with a
// lock-free compare-and-swap fast path, chain growth is serialized on a
// spin lock, and a cursor type walks the chain in both directions.
// Near-sorted workloads are reordered in place by an insertion-sort
// pass.
//
// Operation follows a two-phase discipline: any number of goroutines
// may Append concurrently; Sort, cursors and Reset require that every
// producer has returned and been joined (a WaitGroup or equivalent
// establishes the ordering). Reset must complete before the backing
// arena is reclaimed.
package slicearray
