// SPDX-License-Identifier: MIT
// Package: predictors
//
// Purpose:
//   - Build labelled similarity/dissimilarity matrices from word-data sources
//     with the drop-on-correlate missing policy: a word or pair the source
//     does not cover becomes a NaN entry recorded in a Report, and the build
//     carries on. Only non-vocabulary source failures abort.
//
// Conventions:
//   - One lookup per unordered pair; the value is mirrored into both
//     triangles. Similarity builders force the diagonal to 1 (the maximal
//     self-similarity sentinel); BuildVectorRDM computes the diagonal with
//     the distance kernel like every other entry.
//   - Matrices are constructed with simmat.WithAllowMissing, so downstream
//     correlation refuses them until narrowed (CompleteLabels + ForSubset).

package predictors

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlsim/simmat"
)

// Operation name constants for unified error wrapping.
const (
	opBuildPairwiseSimilarity    = "BuildPairwiseSimilarity"
	opBuildAssociationSimilarity = "BuildAssociationSimilarity"
	opBuildVectorRDM             = "BuildVectorRDM"
)

// forcedDiagonal is the self-similarity written by similarity builders.
const forcedDiagonal = 1.0

// validateBuildWords rejects empty lists, empty strings and duplicates before
// any source lookup runs.
func validateBuildWords(op string, words []string) error {
	if len(words) == 0 {
		return predictorsErrorf(op, ErrNoWords)
	}

	seen := make(map[string]bool, len(words))
	for _, w := range words {
		if w == "" {
			return predictorsErrorf(op, ErrEmptyWord)
		}
		if seen[w] {
			return predictorsErrorf(op, fmt.Errorf("word %q: %w", w, ErrDuplicateWord))
		}
		seen[w] = true
	}

	return nil
}

// BuildPairwiseSimilarity builds a similarity matrix from a precomputed
// pair-value source (feature-norm or LSA tables): entry (i,j) is
// DistanceBetween(words[i], words[j]), diagonal forced to 1.
//
// Pairs the source has no entry for degrade to NaN and are listed in the
// Report; any other source error aborts. Source-returned NaN passes through
// as a missing entry without a Report line.
//
// Errors: ErrNilSource, ErrNoWords, ErrEmptyWord, ErrDuplicateWord, plus
// construction errors from simmat.
// Complexity: O(n²) lookups.
func BuildPairwiseSimilarity(src DistanceSource, words []string) (*simmat.SimilarityMatrix, *Report, error) {
	if src == nil {
		return nil, nil, predictorsErrorf(opBuildPairwiseSimilarity, ErrNilSource)
	}
	if err := validateBuildWords(opBuildPairwiseSimilarity, words); err != nil {
		return nil, nil, err
	}

	lookup := func(a, b string) (float64, error) { return src.DistanceBetween(a, b) }
	data, report, err := fillPairwise(opBuildPairwiseSimilarity, words, lookup)
	if err != nil {
		return nil, nil, err
	}

	sm, err := simmat.NewSimilarity(data, words, simmat.WithAllowMissing())
	if err != nil {
		return nil, nil, predictorsErrorf(opBuildPairwiseSimilarity, err)
	}

	return sm, report, nil
}

// BuildAssociationSimilarity builds a similarity matrix from an association
// source (taxonomy distances, free-association strengths): entry (i,j) is
// AssociationBetween(words[i], pos, words[j], pos), diagonal forced to 1.
//
// The raw association values are written as-is; whether they are oriented as
// similarities or distances is the source's contract with the caller.
// Vocabulary gaps degrade to NaN entries listed in the Report.
//
// Errors: ErrNilSource, ErrNoWords, ErrEmptyWord, ErrDuplicateWord, plus
// construction errors from simmat.
// Complexity: O(n²) lookups.
func BuildAssociationSimilarity(src AssociationSource, words []string, pos PartOfSpeech) (*simmat.SimilarityMatrix, *Report, error) {
	if src == nil {
		return nil, nil, predictorsErrorf(opBuildAssociationSimilarity, ErrNilSource)
	}
	if err := validateBuildWords(opBuildAssociationSimilarity, words); err != nil {
		return nil, nil, err
	}

	lookup := func(a, b string) (float64, error) { return src.AssociationBetween(a, pos, b, pos) }
	data, report, err := fillPairwise(opBuildAssociationSimilarity, words, lookup)
	if err != nil {
		return nil, nil, err
	}

	sm, err := simmat.NewSimilarity(data, words, simmat.WithAllowMissing())
	if err != nil {
		return nil, nil, predictorsErrorf(opBuildAssociationSimilarity, err)
	}

	return sm, report, nil
}

// fillPairwise runs one lookup per unordered word pair, mirrors the value,
// degrades vocabulary gaps to NaN + Report, and forces the unit diagonal.
func fillPairwise(op string, words []string, lookup func(a, b string) (float64, error)) (*mat.Dense, *Report, error) {
	n := len(words)
	report := newReport()
	data := mat.NewDense(n, n, nil)

	for i := 0; i < n; i++ {
		data.Set(i, i, forcedDiagonal)
		for j := i + 1; j < n; j++ {
			v, err := lookup(words[i], words[j])
			switch {
			case errors.Is(err, ErrNotInVocabulary):
				report.addPair(words[i], words[j])
				v = math.NaN()
			case err != nil:
				return nil, nil, predictorsErrorf(op,
					fmt.Errorf("pair (%q,%q): %w", words[i], words[j], err))
			}
			data.Set(i, j, v)
			data.Set(j, i, v)
		}
	}

	return data, report, nil
}

// BuildVectorRDM builds a representational dissimilarity matrix from
// per-word feature vectors: entry (i,j) is Distance(vec(words[i]),
// vec(words[j]), t).
// Implementation:
//   - Stage 1 (Validate): source presence, kernel membership, word-list
//     integrity.
//   - Stage 2 (Resolve): fetch every word's vector once; vocabulary gaps
//     leave a hole and a Report line, other failures abort.
//   - Stage 3 (Fill): distances over resolved pairs; any pair touching a
//     hole is NaN. Diagonal entries are kernel-computed, so they carry the
//     kernel's own self-distance (0 up to rounding).
//
// Behavior highlights:
//   - A word missing from the source contaminates exactly its own row and
//     column; all other entries are unaffected (drop-on-correlate policy).
//   - Distance failures on resolved vectors (length mismatch, degenerate
//     vectors under the chosen kernel) are data errors and abort the build.
//
// Inputs:
//   - src: vector source (embedding table, sensorimotor norms).
//   - words: unique non-empty condition words; matrix label order.
//   - t: distance kernel.
//
// Returns:
//   - the RDM (NaN entries allowed), the gap Report, error.
//
// Errors:
//   - ErrNilSource, ErrUnknownDistance, ErrNoWords, ErrEmptyWord,
//     ErrDuplicateWord, ErrDimensionMismatch, ErrDegenerateVector.
//
// Determinism:
//   - Output depends only on the source contents, word order and kernel.
//
// Complexity:
//   - O(n) vector fetches + O(n²·d) distance arithmetic.
//
// AI-Hints:
//   - Check Report.Complete() before correlating; if false, narrow with
//     CompleteLabels()+ForSubset() to the NaN-free core first.
func BuildVectorRDM(src VectorSource, words []string, t DistanceType) (*simmat.RDM, *Report, error) {
	// Stage 1 (Validate).
	if src == nil {
		return nil, nil, predictorsErrorf(opBuildVectorRDM, ErrNilSource)
	}
	if !t.valid() {
		return nil, nil, predictorsErrorf(opBuildVectorRDM, ErrUnknownDistance)
	}
	if err := validateBuildWords(opBuildVectorRDM, words); err != nil {
		return nil, nil, err
	}

	// Stage 2 (Resolve): one fetch per word, holes recorded.
	n := len(words)
	report := newReport()
	vecs := make([][]float64, n)
	for i, w := range words {
		v, err := src.VectorForWord(w)
		switch {
		case errors.Is(err, ErrNotInVocabulary):
			report.addWord(w)
		case err != nil:
			return nil, nil, predictorsErrorf(opBuildVectorRDM,
				fmt.Errorf("word %q: %w", w, err))
		default:
			vecs[i] = v
		}
	}

	// Stage 3 (Fill): kernel distances; holes poison their row and column.
	data := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if vecs[i] == nil || vecs[j] == nil {
				data.Set(i, j, math.NaN())
				data.Set(j, i, math.NaN())

				continue
			}
			d, err := Distance(vecs[i], vecs[j], t)
			if err != nil {
				return nil, nil, predictorsErrorf(opBuildVectorRDM,
					fmt.Errorf("pair (%q,%q): %w", words[i], words[j], err))
			}
			data.Set(i, j, d)
			data.Set(j, i, d)
		}
	}

	rdm, err := simmat.NewRDM(data, words, simmat.WithAllowMissing())
	if err != nil {
		return nil, nil, predictorsErrorf(opBuildVectorRDM, err)
	}

	return rdm, report, nil
}
