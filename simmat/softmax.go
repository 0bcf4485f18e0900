// SPDX-License-Identifier: MIT
// Package: simmat
//
// Purpose:
//   - Implement the mean-softmax-probability transform: convert raw similarity
//     scores into mean triplet-choice probabilities, the quantity behavioral
//     odd-one-out experiments actually measure.
//
// Model:
//   - In a triplet task a participant sees conditions {i, j, k} and picks the
//     odd one out; choosing k "selects" the pair (i, j). Under a softmax choice
//     model over pairwise similarities, the probability that (i, j) survives
//     against distractor k is
//     p(i,j|k) = exp(S[i,j]) / (exp(S[i,j]) + exp(S[i,k]) + exp(S[j,k])).
//   - The transform averages this probability over every distractor k drawn
//     from the FULL condition set (k ≠ i, j), then normalizes by the SIZE OF
//     THE REQUESTED SUBSET. When the subset is a proper subset, the normalizer
//     (subset size m) deliberately differs from the distractor count (n-2):
//     this matches the reference behavioral-modeling formulation, and the
//     resulting scale is what downstream RDM correlations expect. Do not
//     "fix" it to n-2.
//
// Determinism & Performance:
//   - Fixed a→b→k traversal; no randomness.
//   - Only subset pairs are computed: O(m²·n) time, never O(n³) when m < n.
//
// AI-Hints:
//   - Entries are probability-scale values; the transform output (not the raw
//     dot-product matrix) is the right input for RDM conversion when modeling
//     triplet-task data.

package simmat

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

const opMeanSoftmaxProbability = "MeanSoftmaxProbability"

// softmaxDiagonal is the fixed self-similarity written to the result diagonal.
// A condition is never its own distractor, so the model assigns maximal
// similarity by convention.
const softmaxDiagonal = 1.0

// MeanSoftmaxProbability converts raw similarities into mean softmax
// triplet-choice probabilities over the requested subset of conditions.
// Implementation:
//   - Stage 1 (Validate): receiver present and complete (no NaN); subset
//     labels unique and resolvable (nil or empty subset ⇒ all conditions).
//   - Stage 2 (Accumulate): for every ORDERED subset pair (i, j), sum the
//     stabilized triplet probability p(i,j|k) over every distractor k in the
//     full condition set, k ∉ {i, j}; store sum/m where m is the subset size.
//   - Stage 3 (Reconcile): the two ordered fills of a pair may differ by
//     float rounding (three-term sums in different order), so symmetrize
//     explicitly as (W + Wᵀ)/2 and force the diagonal to exactly 1.
//
// Behavior highlights:
//   - Numerical stability: each triplet subtracts its own max score before
//     exponentiation. exp never overflows (arguments ≤ 0) and the denominator
//     is ≥ 1 (the max term contributes exp(0)), so division by zero is
//     structurally impossible. In exact arithmetic the shift cancels; the
//     probability formula is unchanged.
//   - Distractors k range over ALL conditions of the receiver, including
//     those outside the subset: a 48-condition subset of a 1854-condition
//     matrix is scored against all 1854 potential distractors.
//
// Inputs:
//   - subset: labels to score, in the desired output order; nil or empty
//     selects every condition in receiver order.
//
// Returns:
//   - *SimilarityMatrix: m×m probability-scale similarities, unit diagonal.
//
// Errors:
//   - ErrNilMatrix, ErrMissingValue, ErrEmptyLabel, ErrDuplicateLabel,
//     ErrLabelNotFound.
//
// Determinism:
//   - Pure function of receiver content and subset order.
//
// Complexity:
//   - Time O(m²·n) for m subset conditions of n total, Space O(m²).
//
// AI-Hints:
//   - For repeated large-n runs, wrap calls with a cache keyed on source name
//     and subset (see the simcache package) instead of recomputing.
func (s *SimilarityMatrix) MeanSoftmaxProbability(subset []string) (*SimilarityMatrix, error) {
	// Stage 1 (Validate): presence and completeness.
	if s == nil || s.sym == nil {
		return nil, simmatErrorf(opMeanSoftmaxProbability, ErrNilMatrix)
	}
	if err := validateNoMissing(&s.LabelledMatrix); err != nil {
		return nil, simmatErrorf(opMeanSoftmaxProbability, err)
	}

	// Stage 1 (Resolve): nil/empty subset means the full condition set.
	resolved := subset
	if len(resolved) == 0 {
		resolved = s.labels
	}
	if err := validateLabels(resolved); err != nil {
		return nil, simmatErrorf(opMeanSoftmaxProbability, err)
	}
	idx := make([]int, len(resolved))
	for t, lbl := range resolved {
		i, ok := s.index[lbl]
		if !ok {
			return nil, simmatErrorf(opMeanSoftmaxProbability, fmt.Errorf("label %q: %w", lbl, ErrLabelNotFound))
		}
		idx[t] = i
	}

	// n is the full condition count (the distractor space); m is the subset
	// size, which is also the normalizer applied to every pair sum.
	n := s.Dim()
	m := len(idx)
	norm := float64(m)
	ordered := mat.NewDense(m, m, nil)

	// Stage 2 (Accumulate): ordered pair sums over the full distractor set.
	var (
		gi, gj        int     // global (receiver) indices of the subset pair
		sij, sik, sjk float64 // triplet similarity scores
		sum           float64 // Σ_k p(i,j|k)
	)
	for a := 0; a < m; a++ {
		gi = idx[a]
		for b := 0; b < m; b++ {
			if a == b {
				continue // diagonal is forced in Stage 3
			}
			gj = idx[b]
			sij = s.sym.At(gi, gj)

			sum = 0
			for k := 0; k < n; k++ {
				if k == gi || k == gj {
					continue // a condition never distracts its own pair
				}
				sik = s.sym.At(gi, k)
				sjk = s.sym.At(gj, k)
				sum += tripletChoiceProb(sij, sik, sjk)
			}

			ordered.Set(a, b, sum/norm)
		}
	}

	// Stage 3 (Reconcile): average ordered fills, pin the diagonal.
	out := mat.NewSymDense(m, nil)
	for a := 0; a < m; a++ {
		out.SetSym(a, a, softmaxDiagonal)
		for b := a + 1; b < m; b++ {
			out.SetSym(a, b, (ordered.At(a, b)+ordered.At(b, a))/2)
		}
	}

	return &SimilarityMatrix{LabelledMatrix: *newFromSym(out, resolved, s.opts)}, nil
}

// tripletChoiceProb computes p(i,j|k) = exp(sij) / (exp(sij)+exp(sik)+exp(sjk))
// in max-shifted form: the largest of the three scores is subtracted from all
// arguments first. The shift cancels algebraically, so the value equals the
// plain formula in exact arithmetic, while in float64 it guarantees
// exp arguments ≤ 0 (no overflow) and a denominator ≥ 1 (no division by zero).
//
// Complexity: O(1).
func tripletChoiceProb(sij, sik, sjk float64) float64 {
	shift := math.Max(sij, math.Max(sik, sjk))

	num := math.Exp(sij - shift)
	den := num + math.Exp(sik-shift) + math.Exp(sjk-shift)

	return num / den
}
