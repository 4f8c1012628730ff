// File: slicearray/sort.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package slicearray

// Sort reorders the logical sequence in place with an insertion sort,
// using the comparator given to New. Exclusive phase only. The pass is
// tuned for near-sorted input: cost is linear in the total element
// displacement, which beats a general comparison sort when producers
// emit values in roughly the right relative order. Equal elements keep
// no particular order.
func (a *Array[T]) Sort() {
	if a.less == nil {
		panic("slicearray: Sort requires a comparator")
	}
	begin, end := a.Begin(), a.End()
	if begin == end {
		return
	}
	for i := begin.Next(); i != end; i = i.Next() {
		for j := i; j != begin; {
			p := j.Prev()
			jr, pr := j.Ref(), p.Ref()
			if !a.less(*jr, *pr) {
				break
			}
			*jr, *pr = *pr, *jr
			j = p
		}
	}
}
