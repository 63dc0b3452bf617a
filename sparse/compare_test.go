// SPDX-License-Identifier: MIT

package sparse_test

import (
	"testing"

	"github.com/katalvlaran/sparsemat/sparse"
	"github.com/stretchr/testify/require"
)

// TestEqualDefaultMismatch verifies containers with different defaults are
// refused rather than compared.
func TestEqualDefaultMismatch(t *testing.T) {
	a := sparse.New(0)
	b := sparse.New(-1)
	eq, err := sparse.Equal[int](a, b)
	require.ErrorIs(t, err, sparse.ErrDefaultMismatch)
	require.False(t, eq)
}

// TestEqualNil verifies nil readers are rejected.
func TestEqualNil(t *testing.T) {
	_, err := sparse.Equal[int](nil, sparse.New(0))
	require.ErrorIs(t, err, sparse.ErrNilReader)
	_, err = sparse.Equal[int](sparse.NewFlat(0), nil)
	require.ErrorIs(t, err, sparse.ErrNilReader)
	require.Nil(t, sparse.Collect[int](nil))
}

// TestEqualIgnoresStaleEntries compares a canonical container with one
// holding materialised default entries.
func TestEqualIgnoresStaleEntries(t *testing.T) {
	a := sparse.New(0)
	b := sparse.NewFlat(0)
	a.Set(1, 1, 5)
	*b.Ref(0, 0) = 0
	*b.Ref(1, 1) = 5
	_ = *b.Ref(2, 9)

	eq, err := sparse.Equal[int](a, b.ReadOnly())
	require.NoError(t, err)
	require.True(t, eq)
}

// TestEqualDifferences covers value, coordinate and length differences.
func TestEqualDifferences(t *testing.T) {
	tests := []struct {
		name string
		a, b []sparse.Cell[int]
		want bool
	}{
		{"both empty", nil, nil, true},
		{"same", []sparse.Cell[int]{cell(0, 1, 2)}, []sparse.Cell[int]{cell(0, 1, 2)}, true},
		{"value", []sparse.Cell[int]{cell(0, 1, 2)}, []sparse.Cell[int]{cell(0, 1, 3)}, false},
		{"column", []sparse.Cell[int]{cell(0, 1, 2)}, []sparse.Cell[int]{cell(0, 2, 2)}, false},
		{"a longer", []sparse.Cell[int]{cell(0, 1, 2), cell(3, 3, 3)}, []sparse.Cell[int]{cell(0, 1, 2)}, false},
		{"b longer", []sparse.Cell[int]{cell(0, 1, 2)}, []sparse.Cell[int]{cell(0, 1, 2), cell(3, 3, 3)}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a, b := sparse.New(0), sparse.NewFlat(0)
			for _, c := range tc.a {
				a.Set(c.Row, c.Col, c.Value)
			}
			for _, c := range tc.b {
				b.Set(c.Row, c.Col, c.Value)
			}
			eq, err := sparse.Equal[int](a, b)
			require.NoError(t, err)
			require.Equal(t, tc.want, eq)
		})
	}
}

// TestCloneIndependence verifies clones share no cell storage.
func TestCloneIndependence(t *testing.T) {
	m := sparse.New(0, sparse.WithDegree(4))
	diagonalPattern(m, 6)
	_ = *m.Ref(40, 40)

	c := m.Clone()
	eq, err := sparse.Equal[int](m, c)
	require.NoError(t, err)
	require.True(t, eq)
	require.Equal(t, 10, sparse.StoredEntries[int](c)) // canonical copy

	*c.Ref(1, 1) = 100
	m.Set(2, 2, 200)
	require.Equal(t, 1, m.At(1, 1))
	require.Equal(t, 2, c.At(2, 2))

	f := sparse.NewFlat(0)
	diagonalPattern(f, 6)
	fc := f.Clone()
	fc.Set(0, 5, 0)
	require.Equal(t, 10, f.Len())
	require.Equal(t, 9, fc.Len())
}

// TestStringElements verifies non-numeric comparable element types.
func TestStringElements(t *testing.T) {
	m := sparse.New("")
	m.Set(0, 1, "a")
	*m.Ref(0, 0) = "b"
	*m.Row(2).Ref(0) = ""

	require.Equal(t, []sparse.Cell[string]{
		{Row: 0, Col: 0, Value: "b"},
		{Row: 0, Col: 1, Value: "a"},
	}, sparse.Collect[string](m))
	require.Equal(t, 2, m.Len())
	require.Equal(t, 1, sparse.StoredRows(m)) // row 2 purged, row 0 kept
}
