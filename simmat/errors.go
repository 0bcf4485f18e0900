// SPDX-License-Identifier: MIT
// Package simmat: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the simmat
// package. All operations MUST return these sentinels and tests MUST check them
// via errors.Is. No operation should panic on user-triggered error conditions.
// Panics are reserved for programmer errors (positional indexers, option misuse).

package simmat

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "simmat: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary; callers will still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil matrix -> shape -> label integrity -> numeric policy (NaN/Inf)
// -> dimension mismatch -> missing values -> statistical degeneracy.

var (
	// ErrNilMatrix indicates that a nil matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("simmat: nil matrix")

	// ErrBadShape is returned when the requested shape is invalid (e.g., zero
	// rows, or an empty label subset where at least one condition is required).
	ErrBadShape = errors.New("simmat: invalid shape")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("simmat: matrix is not square")

	// ErrLabelCount signals that the number of labels does not equal the
	// matrix dimension. Construction must validate this before allocation.
	ErrLabelCount = errors.New("simmat: label count does not match matrix dimension")

	// ErrEmptyLabel signals an empty string where a condition label is required.
	ErrEmptyLabel = errors.New("simmat: empty label")

	// ErrDuplicateLabel signals a repeated label in a label list or subset.
	// Labels identify rows/columns; duplicates would make indexing ambiguous.
	ErrDuplicateLabel = errors.New("simmat: duplicate label")

	// ErrLabelNotFound indicates that a requested label is absent from the
	// matrix. Subset selection never silently drops unknown labels.
	ErrLabelNotFound = errors.New("simmat: label not found")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated
	// symmetry within the configured numeric policy (epsilon).
	ErrAsymmetry = errors.New("simmat: matrix is not symmetric within eps")

	// ErrNaNInf signals a NaN or ±Inf value encountered where finite values
	// are required by the numeric policy (ingestion without WithAllowMissing).
	ErrNaNInf = errors.New("simmat: NaN or Inf encountered")

	// ErrMissingValue signals a NaN entry reaching an operation that requires
	// complete data (correlation, softmax transform). Callers holding sparse
	// matrices must narrow to CompleteLabels() before invoking such operations.
	ErrMissingValue = errors.New("simmat: missing value in operand")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., correlating matrices over condition sets of different cardinality.
	ErrDimensionMismatch = errors.New("simmat: dimension mismatch")

	// ErrUndefinedCorrelation is returned when a Pearson correlation is not
	// defined: fewer than two off-diagonal pairs, or an operand whose
	// condensed vector has zero variance. Never surfaces as an unflagged NaN.
	ErrUndefinedCorrelation = errors.New("simmat: correlation undefined")

	// ErrBadPermCount is returned when a randomization test is requested with
	// a non-positive permutation count.
	ErrBadPermCount = errors.New("simmat: permutation count must be >= 1")
)
