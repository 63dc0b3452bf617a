// SPDX-License-Identifier: MIT
// Package sparse_test contains test helpers
//
// Purpose:
//   • Run one contract suite against both storage layouts.
//   • Keep fixtures deterministic (fixed seeds, explicit expectations).

package sparse_test

import (
	"testing"

	"github.com/katalvlaran/sparsemat/sparse"
	"github.com/stretchr/testify/require"
)

// container is the surface shared by *sparse.Matrix and *sparse.Flat that
// the contract tests exercise.
type container interface {
	sparse.Sparse[int]
	Rows() int
	ReadOnly() sparse.View[int]
}

// layout names a constructor for one storage layout.
type layout struct {
	name string
	ctor func(def int, opts ...sparse.Option) container
}

// layouts lists every implementation the contract must hold for.
var layouts = []layout{
	{name: "nested", ctor: func(def int, opts ...sparse.Option) container { return sparse.New(def, opts...) }},
	{name: "flat", ctor: func(def int, opts ...sparse.Option) container { return sparse.NewFlat(def, opts...) }},
}

// forEachLayout runs fn as a subtest per layout.
func forEachLayout(t *testing.T, fn func(t *testing.T, newC func(def int, opts ...sparse.Option) container)) {
	t.Helper()
	for _, l := range layouts {
		t.Run(l.name, func(t *testing.T) { fn(t, l.ctor) })
	}
}

// cell is shorthand for building expectations.
func cell(row, col, value int) sparse.Cell[int] {
	return sparse.Cell[int]{Row: row, Col: col, Value: value}
}

// checkMatrix ASSERTS the full observable contract against an ordered
// expectation:
//   - Stage 1: Len equals the number of expected cells.
//   - Stage 2: the traversal yields exactly the expected cells, in order.
//   - Stage 3: every expected coordinate reads back its value through At.
func checkMatrix(t *testing.T, r sparse.Reader[int], expected []sparse.Cell[int]) {
	t.Helper()
	require.Equal(t, len(expected), r.Len())

	got := sparse.Collect(r)
	if len(expected) == 0 {
		require.Empty(t, got)
	} else {
		require.Equal(t, expected, got)
	}

	for _, c := range expected {
		require.Equal(t, c.Value, r.At(c.Row, c.Col))
	}
}

// diagonalPattern writes value i at (i, i) and n-1-i at (i, n-1-i) for
// i in [0, n) through the row handle, the way the demo does.
func diagonalPattern(s sparse.Sparse[int], n int) {
	for i := 0; i < n; i++ {
		*s.Row(i).Ref(i) = i
		*s.Row(i).Ref(n - 1 - i) = n - 1 - i
	}
}
