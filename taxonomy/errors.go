// SPDX-License-Identifier: MIT
// Package taxonomy: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// taxonomy package. All operations MUST return these sentinels and tests
// MUST check them via errors.Is. No operation panics on user input.

package taxonomy

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "taxonomy: ...". Word-level lookups that
// cannot produce a distance (unknown word, no comparable sense pair, distance
// beyond the cap) wrap predictors.ErrNotInVocabulary instead, so matrix
// builders degrade the entry rather than abort; the sentinels below cover
// construction mistakes and synset-level queries.
//
// ERROR PRIORITY (documented, enforced in tests):
// identifier integrity (empty/duplicate) -> reference integrity (unknown
// synset, self subsumption) -> value integrity (negative IC, bad POS)
// -> comparability (ErrIncomparableSynsets).

var (
	// ErrEmptySynsetID indicates an empty string where a synset identifier is
	// required.
	ErrEmptySynsetID = errors.New("taxonomy: empty synset id")

	// ErrDuplicateSynset indicates a synset id registered twice.
	ErrDuplicateSynset = errors.New("taxonomy: synset already registered")

	// ErrUnknownSynset indicates a synset id the taxonomy has no entry for.
	ErrUnknownSynset = errors.New("taxonomy: unknown synset")

	// ErrSelfSubsumption indicates an IS-A edge from a synset to itself.
	ErrSelfSubsumption = errors.New("taxonomy: synset cannot subsume itself")

	// ErrNegativeIC indicates a negative information content value; IC is a
	// corpus-derived -log probability and is never below zero.
	ErrNegativeIC = errors.New("taxonomy: negative information content")

	// ErrEmptyWord indicates an empty string where a word is required.
	ErrEmptyWord = errors.New("taxonomy: empty word")

	// ErrSensePOS indicates a sense registration without a concrete part of
	// speech. Senses carry the word class they realize; AnyPOS is a query
	// wildcard, not a storable value.
	ErrSensePOS = errors.New("taxonomy: sense requires a concrete part of speech")

	// ErrDuplicateSense indicates the same (word, pos, synset) sense
	// registered twice.
	ErrDuplicateSense = errors.New("taxonomy: duplicate sense")

	// ErrIncomparableSynsets indicates two synsets with no common subsumer,
	// so no Jiang-Conrath distance exists between them.
	ErrIncomparableSynsets = errors.New("taxonomy: synsets share no subsumer")
)

// taxonomyErrorf attaches the operation tag to a sentinel (or an already
// wrapped chain) without breaking errors.Is matching.
func taxonomyErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
