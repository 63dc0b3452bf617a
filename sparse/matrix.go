// SPDX-License-Identifier: MIT

// Package sparse: Matrix is the nested layout. Rows live in one B-tree
// ordered by row index; each row owns a B-tree of cells ordered by column.
// Row-major traversal and per-row counts fall out of the layout directly.
package sparse

import (
	"iter"

	"github.com/google/btree"
)

// cellNode is a stored column entry. It is heap-allocated so that pointers
// handed out by Ref stay valid while tree nodes split and merge.
type cellNode[T any] struct {
	col   int // column index (sort key)
	value T   // stored value, may equal the default until canonicalized
}

// rowNode is a stored row. Comparison uses index only, so a rowNode with a
// nil cells tree works as a lookup probe.
type rowNode[T any] struct {
	index int                         // row index (sort key)
	cells *btree.BTreeG[*cellNode[T]] // column → value entries
}

func lessRow[T any](a, b rowNode[T]) bool { return a.index < b.index }

func lessCell[T any](a, b *cellNode[T]) bool { return a.col < b.col }

func probeRow[T any](index int) rowNode[T] { return rowNode[T]{index: index} }

func probeCell[T any](col int) *cellNode[T] { return &cellNode[T]{col: col} }

// Matrix is an unbounded sparse matrix in nested layout.
// The zero value is not usable; construct with New.
type Matrix[T comparable] struct {
	def  T                              // value of every unfilled cell
	opts Options                        // resolved storage options
	rows *btree.BTreeG[rowNode[T]]      // row index → row
	free *btree.FreeListG[*cellNode[T]] // node free list shared by all row trees
}

// New creates an empty Matrix whose unfilled cells read as def.
// Implementation:
//   - Stage 1: resolve options over the defaults.
//   - Stage 2: allocate the row tree and the shared cell free list.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Two matrices built with different def are different containers;
//     Equal refuses to compare them (ErrDefaultMismatch).
func New[T comparable](def T, opts ...Option) *Matrix[T] {
	return newMatrix(def, gatherOptions(opts...))
}

func newMatrix[T comparable](def T, o Options) *Matrix[T] {
	return &Matrix[T]{
		def:  def,
		opts: o,
		rows: btree.NewG[rowNode[T]](o.degree, lessRow[T]),
		free: btree.NewFreeListG[*cellNode[T]](o.freeListSize),
	}
}

// Default returns the value every unfilled cell reads as.
func (m *Matrix[T]) Default() T {
	return m.def
}

// At returns the value stored at (row, col), or Default() when nothing is
// stored. It never creates storage.
// Complexity: O(log r + log c).
func (m *Matrix[T]) At(row, col int) T {
	mustIndex(row, col)
	r, ok := m.rows.Get(probeRow[T](row))
	if !ok {
		return m.def
	}
	c, ok := r.cells.Get(probeCell[T](col))
	if !ok {
		return m.def
	}

	return c.value
}

// Ref returns a pointer to the slot at (row, col).
// Implementation:
//   - Stage 1: find or create the row.
//   - Stage 2: find or insert the cell, initialised to Default().
//   - Stage 3: return the address of the stored value.
//
// Behavior highlights:
//   - Materialises storage even when the caller only reads through the
//     pointer. Such entries are not counted (Len) and not yielded (All).
//
// Notes:
//   - The pointer stays valid until an operation that removes the entry:
//     Len, RowLen, Rows, Canonicalize (when it holds Default()) or
//     Set(row, col, Default()).
//
// Complexity:
//   - Time O(log r + log c), Space O(1) amortised.
func (m *Matrix[T]) Ref(row, col int) *T {
	mustIndex(row, col)
	r := m.ensureRow(row)
	probe := probeCell[T](col)
	if c, ok := r.cells.Get(probe); ok {
		return &c.value
	}
	probe.value = m.def
	r.cells.ReplaceOrInsert(probe)

	return &probe.value
}

// Set assigns v at (row, col). Assigning Default() erases any stored entry,
// which is observably the same as never having written the cell.
func (m *Matrix[T]) Set(row, col int, v T) {
	if v == m.def {
		m.erase(row, col)
		return
	}
	*m.Ref(row, col) = v
}

// Row returns a mutable handle bound to row. Creating the handle allocates
// nothing; storage appears on the first Ref or Set through it.
func (m *Matrix[T]) Row(row int) RowView[T] {
	mustIndex(row, 0)
	return RowView[T]{s: m, row: row}
}

// Len canonicalizes storage and returns the number of filled cells.
// Complexity: O(n) time, O(k) extra space for k stale entries.
func (m *Matrix[T]) Len() int {
	m.Canonicalize()
	n := 0
	m.rows.Ascend(func(r rowNode[T]) bool {
		n += r.cells.Len()
		return true
	})

	return n
}

// Rows returns the number of rows that hold at least one filled cell.
func (m *Matrix[T]) Rows() int {
	m.Canonicalize()
	return m.rows.Len()
}

// RowLen returns the number of filled cells in row, purging that row's
// stale entries first.
// Complexity: O(c) for c entries stored in the row.
func (m *Matrix[T]) RowLen(row int) int {
	mustIndex(row, 0)
	r, ok := m.rows.Get(probeRow[T](row))
	if !ok {
		return 0
	}
	n := prune(r.cells, m.isDefaultCell)
	if n == 0 {
		m.dropRow(r)
	}

	return n
}

// Canonicalize purges every entry holding Default() and every row left
// empty. Reads, counts and traversals observe no difference.
// Complexity: O(n + k log n).
func (m *Matrix[T]) Canonicalize() {
	var empty []rowNode[T]
	m.rows.Ascend(func(r rowNode[T]) bool {
		if prune(r.cells, m.isDefaultCell) == 0 {
			empty = append(empty, r)
		}
		return true
	})
	for _, r := range empty {
		m.dropRow(r)
	}
}

// All returns a lazy, restartable traversal of the filled cells in
// row-major order. Entries holding Default() are skipped, not purged, so
// the traversal is correct on non-canonical storage.
// Complexity: O(n) per full traversal, O(1) extra memory.
func (m *Matrix[T]) All() iter.Seq[Cell[T]] {
	return func(yield func(Cell[T]) bool) {
		m.rows.Ascend(func(r rowNode[T]) bool {
			return m.yieldRow(r, yield)
		})
	}
}

// RowCells returns a traversal of row's filled cells in column order.
func (m *Matrix[T]) RowCells(row int) iter.Seq[Cell[T]] {
	mustIndex(row, 0)
	return func(yield func(Cell[T]) bool) {
		if r, ok := m.rows.Get(probeRow[T](row)); ok {
			m.yieldRow(r, yield)
		}
	}
}

// Clone returns an independent canonical copy with the same default and
// options. No cell storage is shared with m.
// Complexity: O(n log n).
func (m *Matrix[T]) Clone() *Matrix[T] {
	out := newMatrix(m.def, m.opts)
	for c := range m.All() {
		out.Set(c.Row, c.Col, c.Value)
	}

	return out
}

// ReadOnly returns a view that can read but never alter m, not even its
// internal layout.
func (m *Matrix[T]) ReadOnly() View[T] {
	return View[T]{s: m}
}

// filled counts non-default entries without touching storage.
func (m *Matrix[T]) filled() int {
	n := 0
	m.rows.Ascend(func(r rowNode[T]) bool {
		r.cells.Ascend(func(c *cellNode[T]) bool {
			if c.value != m.def {
				n++
			}
			return true
		})
		return true
	})

	return n
}

// yieldRow feeds r's non-default cells to yield; false means stop.
func (m *Matrix[T]) yieldRow(r rowNode[T], yield func(Cell[T]) bool) bool {
	cont := true
	r.cells.Ascend(func(c *cellNode[T]) bool {
		if c.value == m.def {
			return true // stale entry from Ref
		}
		cont = yield(Cell[T]{Row: r.index, Col: c.col, Value: c.value})
		return cont
	})

	return cont
}

func (m *Matrix[T]) isDefaultCell(c *cellNode[T]) bool {
	return c.value == m.def
}

// ensureRow returns the row at index, inserting an empty one when absent.
func (m *Matrix[T]) ensureRow(index int) rowNode[T] {
	if r, ok := m.rows.Get(probeRow[T](index)); ok {
		return r
	}
	r := rowNode[T]{
		index: index,
		cells: btree.NewWithFreeListG[*cellNode[T]](m.opts.degree, lessCell[T], m.free),
	}
	m.rows.ReplaceOrInsert(r)

	return r
}

// erase removes (row, col) and drops the row when it becomes empty.
func (m *Matrix[T]) erase(row, col int) {
	mustIndex(row, col)
	r, ok := m.rows.Get(probeRow[T](row))
	if !ok {
		return
	}
	r.cells.Delete(probeCell[T](col))
	if r.cells.Len() == 0 {
		m.dropRow(r)
	}
}

// dropRow removes r and returns its tree nodes to the free list.
func (m *Matrix[T]) dropRow(r rowNode[T]) {
	m.rows.Delete(r)
	r.cells.Clear(true)
}
