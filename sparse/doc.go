// SPDX-License-Identifier: MIT

// Package sparse provides an unbounded two-dimensional matrix whose
// unwritten cells all read as one configured default value.
//
// What:
//
//   - Matrix[T]: nested layout, an ordered tree of rows where every row
//     is an ordered tree of column→value entries.
//   - Flat[T]: flat layout, one ordered tree keyed by (row, col).
//   - RowView[T]: mutable row handle, m.Row(i).Ref(j) is the analogue of m[i][j].
//   - View[T] / ConstRowView[T]: read-only façade that never touches storage.
//   - Equal / Collect: helpers built on the ordered traversal.
//
// Both layouts are observably identical. Storage cost and traversal cost are
// proportional to the number of entries actually stored, never to the
// extent of the matrix.
//
// Default-value semantics:
//
//	A cell is "filled" iff its stored value differs from the default D.
//	Cells that were never written and cells written back to D are
//	indistinguishable: both read as D, neither is counted by Len, neither
//	appears in All.
//
// Mutable access (Ref) materialises an entry initialised to D before handing
// out a pointer, so `*m.Ref(i, j) = v` composes with plain assignment. Such
// entries are harmless: All skips them lazily and Len purges them
// (canonicalization) before counting.
//
// Ordering:
//
//	All yields cells strictly ascending by row, then by column. The order
//	does not depend on insertion order.
//
// Indices:
//
//	Any non-negative int is a valid row or column. A negative index is a
//	programmer error and panics, the same way slice indexing does.
//
// Concurrency:
//
//	Not goroutine-safe. Every access, including Ref used only to read,
//	must be serialised by the caller. Mutating while ranging over All is
//	not supported.
//
// Complexity (n = stored entries, r = stored rows):
//
//   - At, Ref, Set:   O(log r + log n_row) for Matrix, O(log n) for Flat.
//   - Len, Rows:      O(n) (canonicalization scans every entry).
//   - All:            O(n) total, O(1) extra memory, lazy.
//
// Options:
//
//   - WithDegree:       B-tree degree of every internal tree.
//   - WithFreeListSize: capacity of the node free list shared by the trees.
package sparse
