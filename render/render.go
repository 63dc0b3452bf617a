// SPDX-License-Identifier: MIT

// Package render prints sparse matrices: a rectangular fragment read cell
// by cell, or the list of filled cells in traversal order.
//
// Every function consumes only the public sparse.Reader contract, so it
// works the same for Matrix, Flat and View. Range validation lives here,
// not in the container: the container has no range API.
package render

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/katalvlaran/sparsemat/sparse"
)

// Table header labels.
const (
	headerRow   = "ROW"
	headerCol   = "COL"
	headerValue = "VALUE"
)

// Span is a half-open index range [Begin, End).
type Span struct {
	Begin int
	End   int
}

// Len returns the number of indices in s (0 when empty).
func (s Span) Len() int {
	if s.End <= s.Begin {
		return 0
	}

	return s.End - s.Begin
}

// validate enforces 0 <= Begin < End.
func (s Span) validate() error {
	if s.Begin < 0 || s.End < 0 {
		return ErrNegativeRange
	}
	if s.Begin >= s.End {
		return ErrEmptyRange
	}

	return nil
}

// Fragment writes the sub-matrix rows × cols of r, one line per row,
// values separated by a single space.
// Implementation:
//   - Stage 1: validate both spans (non-empty, non-negative).
//   - Stage 2: read every cell through At (never creates storage).
//   - Stage 3: flush buffered output.
//
// Errors:
//   - ErrNilReader, ErrNegativeRange, ErrEmptyRange.
//   - Write failures, wrapped with "render: fragment".
//
// Complexity:
//   - Time O(rows·cols·log n), Space O(1) beyond the output buffer.
func Fragment[T comparable](w io.Writer, r sparse.Reader[T], rows, cols Span) error {
	if r == nil {
		return ErrNilReader
	}
	if err := rows.validate(); err != nil {
		return fmt.Errorf("render: rows [%d,%d): %w", rows.Begin, rows.End, err)
	}
	if err := cols.validate(); err != nil {
		return fmt.Errorf("render: cols [%d,%d): %w", cols.Begin, cols.End, err)
	}

	bw := bufio.NewWriter(w)
	for i := rows.Begin; i < rows.End; i++ {
		for j := cols.Begin; j < cols.End; j++ {
			if j != cols.Begin {
				bw.WriteByte(' ')
			}
			fmt.Fprint(bw, r.At(i, j))
		}
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("render: fragment: %w", err)
	}

	return nil
}

// FilledCells writes one line "(row,col): value" per filled cell of r, in
// traversal order.
func FilledCells[T comparable](w io.Writer, r sparse.Reader[T]) error {
	if r == nil {
		return ErrNilReader
	}

	bw := bufio.NewWriter(w)
	for c := range r.All() {
		fmt.Fprintf(bw, "(%d,%d): %v\n", c.Row, c.Col, c.Value)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("render: filled cells: %w", err)
	}

	return nil
}

// FilledTable writes the filled cells of r as a ROW | COL | VALUE table.
func FilledTable[T comparable](w io.Writer, r sparse.Reader[T]) error {
	if r == nil {
		return ErrNilReader
	}

	ew := &errWriter{w: w}
	table := tablewriter.NewWriter(ew)
	table.SetHeader([]string{headerRow, headerCol, headerValue})
	table.SetAutoFormatHeaders(false)
	for c := range r.All() {
		table.Append([]string{strconv.Itoa(c.Row), strconv.Itoa(c.Col), fmt.Sprint(c.Value)})
	}
	table.Render()
	if ew.err != nil {
		return fmt.Errorf("render: filled table: %w", ew.err)
	}

	return nil
}

// errWriter remembers the first write error; tablewriter.Render drops them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err

	return n, err
}
