// SPDX-License-Identifier: MIT

package render

import "errors"

var (
	// ErrEmptyRange is returned when a fragment span has Begin >= End.
	ErrEmptyRange = errors.New("render: range must satisfy begin < end")

	// ErrNegativeRange is returned when a span bound is negative.
	ErrNegativeRange = errors.New("render: range bounds must be non-negative")

	// ErrNilReader indicates that a nil reader was passed.
	ErrNilReader = errors.New("render: nil reader")
)
