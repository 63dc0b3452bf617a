// SPDX-License-Identifier: MIT

package sparse

// Test bridge (white-box): exposes physical storage counts to sparse_test
// so tests can tell "stored" from "filled" without widening the API.

// StoredEntries reports how many entries s physically holds, stale
// default-valued entries included. Unknown implementations report -1.
func StoredEntries[T comparable](s Sparse[T]) int {
	switch c := s.(type) {
	case *Matrix[T]:
		n := 0
		c.rows.Ascend(func(r rowNode[T]) bool {
			n += r.cells.Len()
			return true
		})
		return n
	case *Flat[T]:
		return c.cells.Len()
	}

	return -1
}

// StoredRows reports how many row nodes a Matrix holds, empty ones included.
func StoredRows[T comparable](m *Matrix[T]) int {
	return m.rows.Len()
}
