// SPDX-License-Identifier: MIT

// File: view.go
// Role: Read-only façades over a container.
// Determinism:
//   - Same ordering guarantees as the underlying container.
// AI-HINT (file):
//   - Views do NOT mutate the container, not even its internal layout:
//     View.Len counts instead of canonicalizing.
//   - A View observes later writes to the container it wraps (no snapshot).

package sparse

import "iter"

// View is a read-only façade over a Matrix or Flat. It is the
// counterpart of a const reference: every method is a pure function of
// the container state.
// The zero View is not usable; obtain one from ReadOnly.
type View[T comparable] struct {
	s source[T]
}

// Default returns the container default.
func (v View[T]) Default() T { return v.s.Default() }

// At returns the value at (row, col) or the default. Never creates storage.
func (v View[T]) At(row, col int) T { return v.s.At(row, col) }

// Row returns a read-only handle bound to row.
func (v View[T]) Row(row int) ConstRowView[T] {
	mustIndex(row, 0)
	return ConstRowView[T]{s: v.s, row: row}
}

// Len returns the exact number of filled cells. Unlike Matrix.Len it leaves
// stale default-valued entries in place.
// Complexity: O(n).
func (v View[T]) Len() int { return v.s.filled() }

// All returns the ordered traversal of filled cells.
func (v View[T]) All() iter.Seq[Cell[T]] { return v.s.All() }

// ConstRowView is a read-only handle bound to one row.
type ConstRowView[T comparable] struct {
	s   source[T]
	row int
}

// Index returns the bound row index.
func (v ConstRowView[T]) Index() int { return v.row }

// At returns the value at (row, col) or the default.
func (v ConstRowView[T]) At(col int) T { return v.s.At(v.row, col) }

// Len counts the row's filled cells without touching storage.
func (v ConstRowView[T]) Len() int {
	n := 0
	for range v.s.RowCells(v.row) {
		n++
	}

	return n
}

// All returns the row's filled cells in column order.
func (v ConstRowView[T]) All() iter.Seq[Cell[T]] { return v.s.RowCells(v.row) }
