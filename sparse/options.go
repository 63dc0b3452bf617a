// SPDX-License-Identifier: MIT

// Package sparse: functional configuration of the storage trees.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Options tune storage only. They never change what any read, count or
// traversal observes.
package sparse

import "github.com/google/btree"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultDegree is the B-tree degree used for row trees and cell trees.
	// Every node holds between degree-1 and 2*degree-1 items.
	DefaultDegree = 16

	// DefaultFreeListSize is the number of released tree nodes kept for reuse.
	DefaultFreeListSize = btree.DefaultFreeListSize
)

// minDegree is the smallest degree google/btree accepts.
const minDegree = 2

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; use NewOptions and the accessors to inspect them.
type Options struct {
	degree       int // >= 2; DefaultDegree
	freeListSize int // >= 0; DefaultFreeListSize
}

// WithDegree sets the B-tree degree of every internal tree.
// Implementation:
//   - Stage 1: validate d >= 2.
//   - Stage 2: return a setter that writes d into Options.
//
// Errors:
//   - Panics with a stable message when d < 2.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Small degrees (2..8) favour sparse rows with few entries; large degrees
//     favour long dense rows scanned by All.
func WithDegree(d int) Option {
	if d < minDegree {
		panic(panicDegreeInvalid)
	}

	return func(o *Options) { o.degree = d }
}

// WithFreeListSize sets how many released nodes are cached for reuse.
// Zero disables caching. Panics when n < 0.
func WithFreeListSize(n int) Option {
	if n < 0 {
		panic(panicFreeListInvalid)
	}

	return func(o *Options) { o.freeListSize = n }
}

// NewOptions resolves opts over the documented defaults.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// Degree returns the effective B-tree degree.
func (o Options) Degree() int { return o.degree }

// FreeListSize returns the effective free list capacity.
func (o Options) FreeListSize() int { return o.freeListSize }

// gatherOptions applies user setters in order over the defaults
// (last-writer-wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		degree:       DefaultDegree,
		freeListSize: DefaultFreeListSize,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
