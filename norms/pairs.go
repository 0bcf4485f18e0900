// SPDX-License-Identifier: MIT
// Package: norms
//
// Purpose:
//   - PairTable: precomputed values over unordered word pairs (published JCN
//     or LSA pair lists), implementing predictors.DistanceSource and
//     Vocabulary.
//
// Conventions:
//   - Pair keys are canonicalized by lexical order, so Add and lookups are
//     argument-order independent.
//   - A stored NaN is a legitimate "collected but undefined" value; lookups
//     return it without error and builders keep it as a missing entry.

package norms

import (
	"fmt"

	"github.com/katalvlaran/lvlsim/predictors"
)

// Compile-time interface checks against the predictors contracts.
var (
	_ predictors.DistanceSource = (*PairTable)(nil)
	_ predictors.Vocabulary     = (*PairTable)(nil)
)

// Operation name constants for unified error wrapping.
const (
	opPairAdd         = "Add"
	opDistanceBetween = "DistanceBetween"
)

// pairKey is an unordered pair in canonical (lexically sorted) form.
type pairKey struct {
	lo, hi string
}

// canonicalPair builds the canonical key for two words.
func canonicalPair(a, b string) pairKey {
	if b < a {
		a, b = b, a
	}

	return pairKey{lo: a, hi: b}
}

// PairTable maps unordered word pairs to precomputed values. Construct with
// NewPairTable or ReadPairTable; the zero value is not usable.
type PairTable struct {
	values map[pairKey]float64
	words  []string // distinct words in first-appearance order
	seen   map[string]bool
}

// NewPairTable returns an empty pair table.
func NewPairTable() *PairTable {
	return &PairTable{
		values: make(map[pairKey]float64),
		seen:   make(map[string]bool),
	}
}

// Add records the value of an unordered word pair. Self pairs are allowed.
//
// Errors: ErrEmptyWord, ErrDuplicatePair.
func (p *PairTable) Add(a, b string, value float64) error {
	if a == "" || b == "" {
		return normsErrorf(opPairAdd, ErrEmptyWord)
	}

	key := canonicalPair(a, b)
	if _, dup := p.values[key]; dup {
		return normsErrorf(opPairAdd,
			fmt.Errorf("pair (%q,%q): %w", key.lo, key.hi, ErrDuplicatePair))
	}
	p.values[key] = value

	for _, w := range [2]string{a, b} {
		if !p.seen[w] {
			p.seen[w] = true
			p.words = append(p.words, w)
		}
	}

	return nil
}

// Len returns the number of stored pairs.
func (p *PairTable) Len() int { return len(p.values) }

// Words returns every word that appears in at least one pair, in
// first-appearance order.
func (p *PairTable) Words() []string {
	out := make([]string, len(p.words))
	copy(out, p.words)

	return out
}

// DistanceBetween returns the stored value of the unordered pair.
//
// Errors: wrapped predictors.ErrNotInVocabulary for pairs never recorded.
func (p *PairTable) DistanceBetween(word1, word2 string) (float64, error) {
	v, ok := p.values[canonicalPair(word1, word2)]
	if !ok {
		return 0, normsErrorf(opDistanceBetween,
			fmt.Errorf("pair (%q,%q): %w", word1, word2, predictors.ErrNotInVocabulary))
	}

	return v, nil
}
