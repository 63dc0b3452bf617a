// SPDX-License-Identifier: MIT

// Package demo runs the sparse matrix demonstration: fill a double
// diagonal, print a window of it, the exact size and every filled cell.
package demo

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/sparsemat/internal/config"
	"github.com/katalvlaran/sparsemat/render"
	"github.com/katalvlaran/sparsemat/sparse"
)

// Container is what the demo needs from a sparse matrix; both layouts
// satisfy it.
type Container interface {
	sparse.Sparse[int]
	Rows() int
	ReadOnly() sparse.View[int]
}

// Build creates the container selected by cfg and fills it: for i in
// [0, size) it writes i at (i, i) and size-1-i at (i, size-1-i) through
// the mutable row handle.
func Build(cfg *config.Config) Container {
	m := newMatrix(cfg)
	n := cfg.Size
	for i := 0; i < n; i++ {
		row := m.Row(i)
		*row.Ref(i) = i
		*row.Ref(n - 1 - i) = n - 1 - i
	}

	return m
}

func newMatrix(cfg *config.Config) Container {
	opts := []sparse.Option{sparse.WithDegree(cfg.Degree)}
	if cfg.Layout == config.LayoutFlat {
		return sparse.NewFlat(cfg.Default, opts...)
	}

	return sparse.New(cfg.Default, opts...)
}

// Run builds the matrix and writes the report to w.
func Run(w io.Writer, cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	m := Build(cfg)
	view := m.ReadOnly()
	logrus.WithFields(logrus.Fields{
		"layout":  cfg.Layout,
		"size":    cfg.Size,
		"default": cfg.Default,
	}).Debug("matrix filled")

	f := cfg.Fragment
	if _, err := fmt.Fprintln(w, "Matrix fragment:"); err != nil {
		return errors.Wrap(err, "write report")
	}
	err := render.Fragment[int](w, view,
		render.Span{Begin: f.RowBegin, End: f.RowEnd},
		render.Span{Begin: f.ColBegin, End: f.ColEnd})
	if err != nil {
		return errors.Wrap(err, "print fragment")
	}

	size := m.Len()
	logrus.WithField("rows", m.Rows()).Debugf("canonical size %d", size)
	if _, err := fmt.Fprintf(w, "\nMatrix size: %d\nAll filled cells:\n", size); err != nil {
		return errors.Wrap(err, "write report")
	}

	if cfg.Format == config.FormatTable {
		err = render.FilledTable[int](w, view)
	} else {
		err = render.FilledCells[int](w, view)
	}

	return errors.Wrap(err, "print filled cells")
}
