// Package control
// Author: momentics <momentics@gmail.com>
//
// Runtime stats and debug introspection layer.
// Part of the hioload slicearray architecture.
//
// Provides a concurrent-safe, pull-based probe registry: arenas and
// containers register closures over their stats accessors, and every
// snapshot re-reads live values. Platform probe sets are
// build-tag-partitioned as needed.
package control
