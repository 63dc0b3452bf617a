// SPDX-License-Identifier: MIT

// Package sparse: domain types shared by both storage layouts.
package sparse

import (
	"iter"

	"github.com/google/btree"
)

// Cell is one filled coordinate as produced by an ordered traversal.
type Cell[T any] struct {
	Row   int // row index, primary sort key
	Col   int // column index, secondary sort key
	Value T   // stored value, never equal to the container default
}

// Reader is the read-only surface shared by every container and view.
//
// Contract:
//   - At never creates storage and returns Default() for unfilled cells.
//   - Len is the exact number of filled cells.
//   - All yields exactly Len() cells in row-major order; it is lazy and
//     restartable (every call starts a fresh traversal).
type Reader[T comparable] interface {
	// Default returns the value every unfilled cell reads as.
	Default() T

	// At returns the value at (row, col) or Default().
	At(row, col int) T

	// Len returns the number of filled cells.
	Len() int

	// All returns an ordered traversal of the filled cells.
	All() iter.Seq[Cell[T]]
}

// Sparse is the mutable surface implemented by *Matrix and *Flat.
type Sparse[T comparable] interface {
	Reader[T]

	// Ref returns a pointer to the slot at (row, col), materialising it with
	// Default() first when absent.
	Ref(row, col int) *T

	// Set assigns v at (row, col). Assigning Default() erases the entry.
	Set(row, col int, v T)

	// Row returns a mutable handle bound to one row.
	Row(row int) RowView[T]

	// RowLen returns the number of filled cells in one row.
	RowLen(row int) int

	// RowCells returns an ordered traversal of one row's filled cells.
	RowCells(row int) iter.Seq[Cell[T]]

	// Canonicalize purges entries that hold Default().
	Canonicalize()
}

// source is what read-only views need from a container: everything a
// Reader offers plus a count that leaves storage untouched.
type source[T comparable] interface {
	Reader[T]
	RowCells(row int) iter.Seq[Cell[T]]
	filled() int
}

// Compile-time interface checks.
var (
	_ Sparse[int] = (*Matrix[int])(nil)
	_ Sparse[int] = (*Flat[int])(nil)
	_ Reader[int] = View[int]{}
	_ source[int] = (*Matrix[int])(nil)
	_ source[int] = (*Flat[int])(nil)
)

// prune deletes every item of t for which stale reports true and returns
// the number of items left. Deletion happens after the scan because a
// BTreeG must not be mutated while it is being iterated.
// Complexity: O(n + k log n) for n items and k stale ones.
func prune[N any](t *btree.BTreeG[N], stale func(N) bool) int {
	var doomed []N
	t.Ascend(func(item N) bool {
		if stale(item) {
			doomed = append(doomed, item)
		}
		return true
	})
	for _, item := range doomed {
		t.Delete(item)
	}

	return t.Len()
}

// mustIndex panics on negative coordinates.
func mustIndex(row, col int) {
	if row < 0 || col < 0 {
		panic(panicNegativeIndex)
	}
}
