// File: slicearray/block.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package slicearray

// block is one fixed-capacity link of the chain. The header lives on
// the Go heap; the element span comes from the bound arena. next is set
// exactly once, when the following block is created, and never retracted
// while the chain is live. prev is a non-owning back-reference used only
// for reverse traversal.
type block[T any] struct {
	next  *block[T]
	prev  *block[T]
	items []T
}
