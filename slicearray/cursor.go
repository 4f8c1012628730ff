// File: slicearray/cursor.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package slicearray

// Cursor addresses one slot of the chain as a (block, index) pair.
// Cursors are values: compared with ==, copied by assignment, valid in
// the exclusive phase only. Growth or Reset after a cursor was taken
// invalidates it.
type Cursor[T any] struct {
	b   *block[T]
	idx int
}

// Begin returns the cursor of the first element. On an empty container
// it equals End.
func (a *Array[T]) Begin() Cursor[T] {
	return Cursor[T]{b: a.head}
}

// End snapshots the one-past-last position at call time, the tail
// block plus its write cursor. The snapshot does not track later
// appends.
func (a *Array[T]) End() Cursor[T] {
	return Cursor[T]{b: a.tail.Load(), idx: int(a.cursor.Load())}
}

// Next returns the following position. The cursor steps into the next
// block only if one exists, which is what lets it come to rest on the
// End snapshot at the edge of a full tail. Advancing past End is
// undefined.
func (c Cursor[T]) Next() Cursor[T] {
	c.idx++
	if c.idx == len(c.b.items) && c.b.next != nil {
		return Cursor[T]{b: c.b.next}
	}
	return c
}

// Prev returns the preceding position. Stepping before Begin is
// undefined.
func (c Cursor[T]) Prev() Cursor[T] {
	if c.idx == 0 && c.b.prev != nil {
		b := c.b.prev
		return Cursor[T]{b: b, idx: len(b.items) - 1}
	}
	c.idx--
	return c
}

// Inc advances the cursor in place.
func (c *Cursor[T]) Inc() { *c = c.Next() }

// Dec steps the cursor back in place.
func (c *Cursor[T]) Dec() { *c = c.Prev() }

// Eq reports whether two cursors address the same position. Cursors
// are comparable values, so == works too; Eq reads better in loops.
func (c Cursor[T]) Eq(o Cursor[T]) bool { return c == o }

// Value copies the element under the cursor.
func (c Cursor[T]) Value() T {
	return c.b.items[c.idx]
}

// Ref returns a pointer to the element slot, valid until Reset.
func (c Cursor[T]) Ref() *T {
	return &c.b.items[c.idx]
}
