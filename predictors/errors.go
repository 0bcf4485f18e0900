// SPDX-License-Identifier: MIT
// Package predictors: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// predictors package. All operations MUST return these sentinels and tests
// MUST check them via errors.Is. No operation panics on user input.

package predictors

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "predictors: ...". Sources implemented in
// other packages (norms, taxonomy) return errors WRAPPING ErrNotInVocabulary
// for missing words; builders match it with errors.Is and degrade the entry,
// while any other source error aborts the build.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil source -> word-list integrity -> distance-type validity
// -> per-lookup vocabulary gaps (degrade, never abort)
// -> numeric degeneracy (abort).

var (
	// ErrNilSource indicates a nil data source passed to a builder.
	ErrNilSource = errors.New("predictors: nil source")

	// ErrNilMatrix indicates a nil data matrix passed to a kernel.
	ErrNilMatrix = errors.New("predictors: nil matrix")

	// ErrNoWords indicates an empty word list where at least one condition is
	// required.
	ErrNoWords = errors.New("predictors: empty word list")

	// ErrDuplicateWord indicates a repeated word in a builder word list.
	// Words become matrix labels; duplicates would make indexing ambiguous.
	ErrDuplicateWord = errors.New("predictors: duplicate word")

	// ErrEmptyWord indicates an empty string in a builder word list.
	ErrEmptyWord = errors.New("predictors: empty word")

	// ErrNotInVocabulary indicates a word a data source has no entry for.
	// The designated degradable error: builders turn it into NaN entries
	// recorded in the Report instead of aborting.
	ErrNotInVocabulary = errors.New("predictors: word not in source vocabulary")

	// ErrDimensionMismatch indicates vectors of different lengths reaching a
	// distance kernel.
	ErrDimensionMismatch = errors.New("predictors: vector length mismatch")

	// ErrUnknownDistance indicates an unrecognized DistanceType value.
	ErrUnknownDistance = errors.New("predictors: unknown distance type")

	// ErrDegenerateVector indicates a vector a distance kernel is undefined
	// for: zero magnitude (cosine) or zero variance (correlation).
	ErrDegenerateVector = errors.New("predictors: degenerate vector for distance type")
)

// predictorsErrorf attaches the operation tag to a sentinel (or an already
// wrapped chain) without breaking errors.Is matching.
func predictorsErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
