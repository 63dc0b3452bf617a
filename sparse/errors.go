// SPDX-License-Identifier: MIT
// Package sparse: sentinel errors and panic messages.
// Container operations are total and return no errors; the sentinels below
// belong to the helpers that relate two containers (Equal).

package sparse

import "errors"

var (
	// ErrDefaultMismatch is returned when two containers with different
	// default values are compared. They are never interchangeable.
	ErrDefaultMismatch = errors.New("sparse: default values differ")

	// ErrNilReader indicates that a nil Reader was passed to a helper.
	ErrNilReader = errors.New("sparse: nil reader")
)

// Panic messages for programmer errors (stable, grep-friendly).
const (
	panicNegativeIndex   = "sparse: negative index"
	panicDegreeInvalid   = "sparse: WithDegree: degree must be >= 2"
	panicFreeListInvalid = "sparse: WithFreeListSize: size must be >= 0"
)
