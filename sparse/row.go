// SPDX-License-Identifier: MIT

package sparse

import "iter"

// RowView is a mutable handle bound to one row of a container.
// m.Row(i).Ref(j) plays the role of m[i][j]: it materialises the slot with
// the default value and returns its address.
//
// A RowView is a small value; copying it copies the binding, not the row.
type RowView[T comparable] struct {
	s   Sparse[T] // owning container
	row int       // bound row index
}

// Index returns the bound row index.
func (v RowView[T]) Index() int { return v.row }

// Ref returns a pointer to the slot (row, col); see Matrix.Ref.
func (v RowView[T]) Ref(col int) *T {
	return v.s.Ref(v.row, col)
}

// Set assigns value at (row, col).
func (v RowView[T]) Set(col int, value T) {
	v.s.Set(v.row, col, value)
}

// At reads (row, col) without creating storage.
func (v RowView[T]) At(col int) T {
	return v.s.At(v.row, col)
}

// Len returns the number of filled cells in the row.
func (v RowView[T]) Len() int {
	return v.s.RowLen(v.row)
}

// All returns the row's filled cells in column order.
func (v RowView[T]) All() iter.Seq[Cell[T]] {
	return v.s.RowCells(v.row)
}
