// SPDX-License-Identifier: MIT

// Package sparsemat is a generic sparse infinite matrix for Go.
//
// What is sparsemat?
//
//	A two-dimensional matrix over non-negative (row, col) indices with no
//	declared bounds. Every cell starts at a default value D fixed at
//	construction; only cells holding something other than D cost memory.
//
// Packages:
//
//	sparse/          - Matrix (row tree of cell trees), Flat (one tree keyed
//	                   by (row, col)), read-only View, Equal and Collect
//	render/          - writes a rectangular fragment, the filled-cell list,
//	                   or a ROW/COL/VALUE table of any sparse.Reader
//	internal/config  - viper-backed settings of the demo binary
//	internal/logger  - logrus setup of the demo binary
//	internal/demo    - fills the double-diagonal pattern and reports on it
//	cmd/sparsedemo   - cobra entry point
//
// Quick start:
//
//	m := sparse.New(0)
//	*m.Ref(100, 100) = 7  // mutable access materializes the cell
//	_ = m.At(5, 5)        // read-only access never creates storage
//	fmt.Println(m.Len())  // 1
//	for c := range m.All() {
//		fmt.Println(c.Row, c.Col, c.Value)
//	}
//
// See sparse/doc.go for ordering, complexity and option details.
package sparsemat
