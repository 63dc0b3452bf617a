// SPDX-License-Identifier: MIT

// Package sparse: Flat is the flat layout. One B-tree holds every entry,
// ordered lexicographically by (row, col). It carries the same contract as
// Matrix; row-scoped queries become range scans.
package sparse

import (
	"iter"

	"github.com/google/btree"
)

// flatEntry is a stored cell. Pointer items keep Ref results stable.
type flatEntry[T any] struct {
	row, col int // composite sort key
	value    T   // stored value, may equal the default until canonicalized
}

// lessEntry orders by row, then by column.
func lessEntry[T any](a, b *flatEntry[T]) bool {
	if a.row != b.row {
		return a.row < b.row
	}

	return a.col < b.col
}

// Flat is an unbounded sparse matrix in flat layout.
// The zero value is not usable; construct with NewFlat.
type Flat[T comparable] struct {
	def   T                            // value of every unfilled cell
	opts  Options                      // resolved storage options
	cells *btree.BTreeG[*flatEntry[T]] // (row, col) → value
}

// NewFlat creates an empty Flat whose unfilled cells read as def.
// Complexity: O(1).
func NewFlat[T comparable](def T, opts ...Option) *Flat[T] {
	return newFlat(def, gatherOptions(opts...))
}

func newFlat[T comparable](def T, o Options) *Flat[T] {
	free := btree.NewFreeListG[*flatEntry[T]](o.freeListSize)
	return &Flat[T]{
		def:   def,
		opts:  o,
		cells: btree.NewWithFreeListG[*flatEntry[T]](o.degree, lessEntry[T], free),
	}
}

// Default returns the value every unfilled cell reads as.
func (f *Flat[T]) Default() T {
	return f.def
}

// At returns the value stored at (row, col), or Default(). Never creates storage.
// Complexity: O(log n).
func (f *Flat[T]) At(row, col int) T {
	mustIndex(row, col)
	if e, ok := f.cells.Get(&flatEntry[T]{row: row, col: col}); ok {
		return e.value
	}

	return f.def
}

// Ref returns a pointer to the slot at (row, col), inserting an entry that
// holds Default() when absent. Pointer validity follows Matrix.Ref.
// Complexity: O(log n).
func (f *Flat[T]) Ref(row, col int) *T {
	mustIndex(row, col)
	probe := &flatEntry[T]{row: row, col: col}
	if e, ok := f.cells.Get(probe); ok {
		return &e.value
	}
	probe.value = f.def
	f.cells.ReplaceOrInsert(probe)

	return &probe.value
}

// Set assigns v at (row, col); assigning Default() erases the entry.
func (f *Flat[T]) Set(row, col int, v T) {
	if v == f.def {
		mustIndex(row, col)
		f.cells.Delete(&flatEntry[T]{row: row, col: col})
		return
	}
	*f.Ref(row, col) = v
}

// Row returns a mutable handle bound to row.
func (f *Flat[T]) Row(row int) RowView[T] {
	mustIndex(row, 0)
	return RowView[T]{s: f, row: row}
}

// Len canonicalizes storage and returns the number of filled cells.
// Complexity: O(n + k log n).
func (f *Flat[T]) Len() int {
	f.Canonicalize()
	return f.cells.Len()
}

// Rows returns the number of distinct rows holding a filled cell.
// Complexity: O(n).
func (f *Flat[T]) Rows() int {
	f.Canonicalize()
	n, last := 0, -1
	f.cells.Ascend(func(e *flatEntry[T]) bool {
		if e.row != last {
			n, last = n+1, e.row
		}
		return true
	})

	return n
}

// RowLen purges the stale entries of row and returns its filled count.
// Complexity: O(log n + c) for c entries stored in the row.
func (f *Flat[T]) RowLen(row int) int {
	mustIndex(row, 0)
	var doomed []*flatEntry[T]
	n := 0
	f.ascendRow(row, func(e *flatEntry[T]) bool {
		if e.value == f.def {
			doomed = append(doomed, e)
		} else {
			n++
		}
		return true
	})
	for _, e := range doomed {
		f.cells.Delete(e)
	}

	return n
}

// Canonicalize purges every entry holding Default().
func (f *Flat[T]) Canonicalize() {
	prune(f.cells, func(e *flatEntry[T]) bool { return e.value == f.def })
}

// All returns a lazy, restartable row-major traversal of the filled cells.
// Complexity: O(n) per full traversal.
func (f *Flat[T]) All() iter.Seq[Cell[T]] {
	return func(yield func(Cell[T]) bool) {
		f.cells.Ascend(func(e *flatEntry[T]) bool {
			if e.value == f.def {
				return true
			}
			return yield(Cell[T]{Row: e.row, Col: e.col, Value: e.value})
		})
	}
}

// RowCells returns a traversal of row's filled cells in column order.
func (f *Flat[T]) RowCells(row int) iter.Seq[Cell[T]] {
	mustIndex(row, 0)
	return func(yield func(Cell[T]) bool) {
		f.ascendRow(row, func(e *flatEntry[T]) bool {
			if e.value == f.def {
				return true
			}
			return yield(Cell[T]{Row: e.row, Col: e.col, Value: e.value})
		})
	}
}

// Clone returns an independent canonical copy.
func (f *Flat[T]) Clone() *Flat[T] {
	out := newFlat(f.def, f.opts)
	for c := range f.All() {
		out.Set(c.Row, c.Col, c.Value)
	}

	return out
}

// ReadOnly returns a view that never alters f.
func (f *Flat[T]) ReadOnly() View[T] {
	return View[T]{s: f}
}

func (f *Flat[T]) filled() int {
	n := 0
	f.cells.Ascend(func(e *flatEntry[T]) bool {
		if e.value != f.def {
			n++
		}
		return true
	})

	return n
}

// ascendRow visits the entries of one row in column order. The scan starts
// at (row, 0) and stops at the first entry of a later row, which also
// covers row == math.MaxInt without computing row+1.
func (f *Flat[T]) ascendRow(row int, visit func(*flatEntry[T]) bool) {
	f.cells.AscendGreaterOrEqual(&flatEntry[T]{row: row}, func(e *flatEntry[T]) bool {
		if e.row != row {
			return false
		}
		return visit(e)
	})
}
