// SPDX-License-Identifier: MIT

package sparse

import (
	"iter"
	"slices"
)

// Equal reports whether a and b hold exactly the same filled cells.
// Implementation:
//   - Stage 1: reject nil readers and mismatched defaults.
//   - Stage 2: walk both traversals in lockstep (iter.Pull on b).
//
// Behavior highlights:
//   - Layout-agnostic: a Matrix and a Flat with equal content are Equal.
//   - Stale default-valued entries never influence the result.
//
// Errors:
//   - ErrNilReader if either argument is nil.
//   - ErrDefaultMismatch if a.Default() != b.Default(); such containers are
//     never interchangeable, so no answer is given.
//
// Complexity:
//   - Time O(n_a + n_b), Space O(1).
func Equal[T comparable](a, b Reader[T]) (bool, error) {
	if a == nil || b == nil {
		return false, ErrNilReader
	}
	if a.Default() != b.Default() {
		return false, ErrDefaultMismatch
	}

	next, stop := iter.Pull(b.All())
	defer stop()
	for ca := range a.All() {
		cb, ok := next()
		if !ok || ca != cb {
			return false, nil
		}
	}
	_, more := next()

	return !more, nil
}

// Collect returns the filled cells of r in traversal order.
// A nil reader yields nil.
func Collect[T comparable](r Reader[T]) []Cell[T] {
	if r == nil {
		return nil
	}

	return slices.Collect(r.All())
}
