// SPDX-License-Identifier: MIT
// Package: simmat
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep constructors/operations minimal by delegating shape, label and
//     numeric-policy checks here.
//   - Return sentinel errors wrapped with a stable tag so call sites stay uniform.
//
// Determinism & Performance:
//   - All checks are pure, deterministic, and allocate only for the label index.
//   - Symmetry and finiteness checks run O(n²) over the upper triangle only.
//
// Note:
//   - Each composite validator follows a fixed sequence (nil → shape → labels
//     → numeric policy) matching the documented error priority in errors.go.

package simmat

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// simmatErrorf wraps an underlying error with the given operation tag.
// Used internally to maintain consistent labeling of sentinel violations.
func simmatErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// isNonFinite reports whether v is NaN or ±Inf.
// Complexity: O(1).
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}

// validateLabels ensures labels form a usable condition axis: at least one
// entry, no empty strings, no duplicates.
//
// Returns: ErrBadShape, ErrEmptyLabel or ErrDuplicateLabel.
// Complexity: O(n) time, O(n) space for the duplicate set.
func validateLabels(labels []string) error {
	// An empty axis carries no conditions; reject before allocation.
	if len(labels) == 0 {
		return ErrBadShape
	}

	seen := make(map[string]struct{}, len(labels))
	for _, lbl := range labels {
		if lbl == "" {
			return ErrEmptyLabel
		}
		if _, dup := seen[lbl]; dup {
			return fmt.Errorf("label %q: %w", lbl, ErrDuplicateLabel)
		}
		seen[lbl] = struct{}{}
	}

	return nil
}

// validateSquare ensures data is non-nil and square.
//
// Returns: ErrNilMatrix or ErrNonSquare.
// Complexity: O(1).
func validateSquare(data mat.Matrix) error {
	if data == nil {
		return ErrNilMatrix
	}
	if r, c := data.Dims(); r != c {
		return ErrNonSquare
	}

	return nil
}

// validateFinite scans a square matrix for numeric-policy violations:
// ±Inf is always rejected; NaN is rejected unless allowMissing is set.
// Upper triangle plus diagonal suffices for symmetric inputs, but the scan
// covers the full matrix so asymmetric garbage cannot hide below the diagonal.
//
// Returns: ErrNaNInf on violation.
// Complexity: O(n²) time, O(1) space.
func validateFinite(data mat.Matrix, allowMissing bool) error {
	r, c := data.Dims()

	var v float64
	for i := 0; i < r; i++ { // deterministic row order
		for j := 0; j < c; j++ {
			v = data.At(i, j)
			if math.IsInf(v, 0) {
				return fmt.Errorf("entry (%d,%d): %w", i, j, ErrNaNInf)
			}
			if math.IsNaN(v) && !allowMissing {
				return fmt.Errorf("entry (%d,%d): %w", i, j, ErrNaNInf)
			}
		}
	}

	return nil
}

// validateSymmetricWithin checks |A[i,j] - A[j,i]| ≤ eps for all i<j.
// NaN entries (legal only under AllowMissing) must be paired: a NaN at (i,j)
// requires a NaN at (j,i), otherwise the matrix cannot be stored symmetrically.
//
// Returns: ErrAsymmetry on violation.
// Complexity: O(n²) time on the strict upper triangle, O(1) space.
func validateSymmetricWithin(data mat.Matrix, eps float64) error {
	n, _ := data.Dims()

	var aij, aji float64
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ { // scan only upper triangle
			aij = data.At(i, j)
			aji = data.At(j, i)

			// Paired NaN is symmetric by convention; a lone NaN is not.
			if math.IsNaN(aij) || math.IsNaN(aji) {
				if math.IsNaN(aij) && math.IsNaN(aji) {
					continue
				}

				return fmt.Errorf("entry (%d,%d): %w", i, j, ErrAsymmetry)
			}

			if math.Abs(aij-aji) > eps {
				return fmt.Errorf("entry (%d,%d): %w", i, j, ErrAsymmetry)
			}
		}
	}

	return nil
}

// validateNoMissing rejects matrices containing NaN entries. Operations that
// consume every entry (correlation, the softmax transform) call this first so
// NaN never propagates silently into statistics.
//
// Returns: ErrMissingValue when any entry is NaN.
// Complexity: O(n²) time over the upper triangle plus diagonal, O(1) space.
func validateNoMissing(m *LabelledMatrix) error {
	n := m.Dim()

	for i := 0; i < n; i++ {
		for j := i; j < n; j++ { // symmetric storage: upper triangle suffices
			if math.IsNaN(m.sym.At(i, j)) {
				return fmt.Errorf("label pair (%q,%q): %w", m.labels[i], m.labels[j], ErrMissingValue)
			}
		}
	}

	return nil
}

// validatePair ensures two matrices are present and share the same condition
// cardinality. Label order agreement is the caller's contract; only the
// dimension is enforced here.
//
// Returns: ErrNilMatrix or ErrDimensionMismatch.
// Complexity: O(1).
func validatePair(a, b *LabelledMatrix) error {
	if a == nil || a.sym == nil || b == nil || b.sym == nil {
		return ErrNilMatrix
	}
	if a.Dim() != b.Dim() {
		return ErrDimensionMismatch
	}

	return nil
}
