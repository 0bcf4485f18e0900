// SPDX-License-Identifier: MIT
// Package norms: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// norms package. All operations MUST return these sentinels and tests
// MUST check them via errors.Is. No operation panics on user input.

package norms

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "norms: ...". Per-word and per-pair lookups
// on built tables wrap predictors.ErrNotInVocabulary for entries the table
// does not cover; the sentinels below cover construction and parsing.
//
// ERROR PRIORITY (documented, enforced in tests):
// reader/matrix presence -> table shape (empty, feature-less, dimension
// mismatch) -> identifier integrity (empty/duplicate words and pairs)
// -> cell integrity (ErrBadNumber, ErrBadRecord, ErrLabelMismatch).

var (
	// ErrNilReader indicates a nil io.Reader passed to a table reader.
	ErrNilReader = errors.New("norms: nil reader")

	// ErrNilMatrix indicates a nil data matrix passed to a constructor.
	ErrNilMatrix = errors.New("norms: nil data matrix")

	// ErrEmptyTable indicates a table with no data rows.
	ErrEmptyTable = errors.New("norms: empty table")

	// ErrNoWords indicates an empty word list where at least one word is
	// required.
	ErrNoWords = errors.New("norms: empty word list")

	// ErrNoFeatures indicates a vector table without feature columns.
	ErrNoFeatures = errors.New("norms: no feature columns")

	// ErrDimensionMismatch indicates a word list and data matrix of
	// incompatible sizes.
	ErrDimensionMismatch = errors.New("norms: word count does not match row count")

	// ErrEmptyWord indicates an empty string where a word is required.
	ErrEmptyWord = errors.New("norms: empty word")

	// ErrDuplicateWord indicates a word that appears twice in one table.
	ErrDuplicateWord = errors.New("norms: duplicate word")

	// ErrDuplicatePair indicates an unordered word pair recorded twice.
	ErrDuplicatePair = errors.New("norms: duplicate word pair")

	// ErrBadNumber indicates a cell that is neither a float, empty, nor the
	// NA marker.
	ErrBadNumber = errors.New("norms: unparseable numeric cell")

	// ErrBadRecord indicates a CSV record with the wrong number of fields
	// for its table shape.
	ErrBadRecord = errors.New("norms: malformed record")

	// ErrBadHeader indicates a header without the columns a reader needs.
	ErrBadHeader = errors.New("norms: missing header column")

	// ErrLabelMismatch indicates a labelled grid whose row labels disagree
	// with its column labels.
	ErrLabelMismatch = errors.New("norms: header and index labels differ")
)

// normsErrorf attaches the operation tag to a sentinel (or an already
// wrapped chain) without breaking errors.Is matching.
func normsErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
