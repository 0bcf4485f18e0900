// SPDX-License-Identifier: MIT
// Package: predictors
//
// Purpose:
//   - Define the contracts between matrix builders and external word-data
//     collaborators (norm tables, taxonomies, embedding stores).
//
// Contract, common to all sources:
//   - A word the source has no entry for yields an error wrapping
//     ErrNotInVocabulary (match with errors.Is). Builders degrade such
//     lookups to missing entries; every other error aborts the build.
//   - Lookups are pure reads: no source method mutates source state.

package predictors

import "gonum.org/v1/gonum/mat"

// VectorSource resolves a word to its feature vector (e.g. an embedding row
// or a sensorimotor norm profile). All vectors from one source have one
// shared length.
type VectorSource interface {
	VectorForWord(word string) ([]float64, error)
}

// AssociationSource resolves a word pair to a scalar association strength or
// distance, optionally restricted by part of speech (AnyPOS for none).
// Implementations must be symmetric in the word arguments.
type AssociationSource interface {
	AssociationBetween(word1 string, pos1 PartOfSpeech, word2 string, pos2 PartOfSpeech) (float64, error)
}

// DistanceSource resolves an unordered word pair to a precomputed pairwise
// value (feature-norm distances, LSA similarities). Implementations must not
// depend on argument order.
type DistanceSource interface {
	DistanceBetween(word1, word2 string) (float64, error)
}

// MatrixSource resolves an ordered word list to a row-per-word data matrix.
// Any requested word missing from the source fails the whole call with an
// error wrapping ErrNotInVocabulary; partial matrices are never returned.
type MatrixSource interface {
	MatrixForWords(words []string) (*mat.Dense, error)
}

// Vocabulary enumerates every word a source covers, in the source's own
// stable order. Callers intersect vocabularies to find the condition set all
// sources can serve.
type Vocabulary interface {
	Words() []string
}

// Intersection returns the words of primary, in order, that every vocabulary
// in others also covers. Order and duplicates follow primary.
func Intersection(primary []string, others ...Vocabulary) []string {
	out := make([]string, 0, len(primary))

	covered := make([]map[string]bool, len(others))
	for i, v := range others {
		words := v.Words()
		covered[i] = make(map[string]bool, len(words))
		for _, w := range words {
			covered[i][w] = true
		}
	}

	for _, w := range primary {
		keep := true
		for _, set := range covered {
			if !set[w] {
				keep = false

				break
			}
		}
		if keep {
			out = append(out, w)
		}
	}

	return out
}
