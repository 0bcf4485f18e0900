// SPDX-License-Identifier: MIT
// Package: simmat
//
// Purpose:
//   - Implement the randomization (permutation) test engine: build a null
//     distribution of correlations under random condition relabellings and
//     locate an observed correlation within it.
//
// Test semantics:
//   - H0: the two matrices share no label-aligned structure (any correlation
//     is what random condition correspondence produces).
//   - Each draw permutes rows AND columns of the SECOND matrix with one
//     shared permutation (relabelling conditions while preserving the
//     matrix's internal value structure) and records the Pearson r against
//     the FIRST matrix's fixed condensed form.
//   - One-sided, upper tail: small p means the observed agreement is larger
//     than nearly all permutation-induced agreements. Resolution is 1/NPerms.
//
// Determinism & Performance:
//   - Explicit seeding only; Seed==0 maps to a stable default stream, so
//     repeated runs of the same analysis are reproducible by default.
//   - One index buffer and one condensed buffer are reused across draws:
//     O(NPerms·n²) time, O(n²+NPerms) space.

package simmat

import "gonum.org/v1/gonum/stat"

// Operation name constants for unified error wrapping.
const (
	opNullDistribution    = "NullDistribution"
	opRandomizationPValue = "RandomizationPValue"
)

// DefaultNPerms is the default permutation count: p-value resolution 1e-4,
// the conventional scale for significance testing of RDM agreements.
const DefaultNPerms = 10_000

// percentScale converts a percentile rank (0..100) to a probability divisor.
const percentScale = 100.0

// RandomizationOptions configures the permutation test engine.
type RandomizationOptions struct {
	// NPerms is the number of permutation draws; must be ≥ 1. The p-value
	// resolution is 1/NPerms.
	NPerms int
	// Seed selects the deterministic RNG stream. Seed==0 uses the stable
	// package default so results are reproducible without configuration;
	// any other value selects an independent reproducible stream.
	Seed int64
}

// DefaultRandomizationOptions returns the documented defaults
// (NPerms=DefaultNPerms, Seed=0 ⇒ default stream).
func DefaultRandomizationOptions() RandomizationOptions {
	return RandomizationOptions{NPerms: DefaultNPerms, Seed: 0}
}

// NullDistribution draws opts.NPerms correlations between the fixed matrix
// and label-permuted versions of the permuted matrix.
// Implementation:
//   - Stage 1 (Validate): option sanity, matrix pair (presence, dimension,
//     completeness), correlation well-definedness for both operands.
//   - Stage 2 (Prepare): condense the fixed matrix once; allocate the reused
//     index and condensed buffers; seed the RNG.
//   - Stage 3 (Draw): per draw, Fisher–Yates shuffle the index buffer, read
//     the permuted matrix's upper triangle through the shuffled indices, and
//     record the Pearson r.
//
// Behavior highlights:
//   - The FIRST matrix is never permuted. Permuting rows and columns of the
//     second with one shared permutation is exactly a condition relabelling;
//     its condensed value multiset (hence its variance) is preserved, so
//     every draw's correlation is well defined once Stage 1 passes.
//   - Label order agreement between the two matrices is the caller's
//     contract, as in CorrelateWith.
//
// Inputs:
//   - fixed: reference matrix; its condensed form is computed once.
//   - permuted: matrix to relabel per draw.
//   - opts: NPerms ≥ 1, Seed (0 ⇒ default stream).
//
// Returns:
//   - []float64 of length opts.NPerms, in draw order.
//
// Errors:
//   - ErrBadPermCount, ErrNilMatrix, ErrDimensionMismatch, ErrMissingValue,
//     ErrUndefinedCorrelation.
//
// Determinism:
//   - Identical (fixed, permuted, opts) ⇒ bit-identical output slice.
//
// Complexity:
//   - Time O(NPerms·n²), Space O(n²+NPerms).
//
// AI-Hints:
//   - Keep the returned slice when you need several observed scores against
//     the same pair; percentile lookups are O(NPerms) each.
func NullDistribution(fixed, permuted *LabelledMatrix, opts RandomizationOptions) ([]float64, error) {
	// Stage 1 (Validate): options before data, cheap checks first.
	if opts.NPerms < 1 {
		return nil, simmatErrorf(opNullDistribution, ErrBadPermCount)
	}
	if err := validatePair(fixed, permuted); err != nil {
		return nil, simmatErrorf(opNullDistribution, err)
	}
	if fixed.Dim() < minCorrelationConditions {
		return nil, simmatErrorf(opNullDistribution, ErrUndefinedCorrelation)
	}
	if err := validateNoMissing(fixed); err != nil {
		return nil, simmatErrorf(opNullDistribution, err)
	}
	if err := validateNoMissing(permuted); err != nil {
		return nil, simmatErrorf(opNullDistribution, err)
	}

	// Stage 2 (Prepare): fixed condensed form, reusable buffers, seeded RNG.
	x := fixed.Condensed()
	if !hasVariance(x) {
		return nil, simmatErrorf(opNullDistribution, ErrUndefinedCorrelation)
	}
	// Permutation preserves the condensed multiset, so checking the identity
	// arrangement covers every draw.
	if !hasVariance(permuted.Condensed()) {
		return nil, simmatErrorf(opNullDistribution, ErrUndefinedCorrelation)
	}

	n := fixed.Dim()
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	y := make([]float64, len(x))
	null := make([]float64, opts.NPerms)
	rng := rngFromSeed(opts.Seed)

	// Stage 3 (Draw): relabel, condense through the permutation, correlate.
	var pos int
	for t := 0; t < opts.NPerms; t++ {
		shuffleIndicesInPlace(perm, rng)

		pos = 0
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ { // same (i<j) order as Condensed
				y[pos] = permuted.sym.At(perm[i], perm[j])
				pos++
			}
		}

		null[t] = stat.Correlation(x, y, nil)
	}

	return null, nil
}

// RandomizationPValue locates an observed correlation within the permutation
// null distribution of the given matrix pair and returns the one-sided
// upper-tail p-value:
//
//	p = 1 - percentileOfScore(null, observed)/100
//
// with rank-based tie handling (ties between observed and null values count
// half). Without ties this is exactly the fraction of null draws ≥ observed.
// Implementation:
//   - Stage 1 (Validate): observed must be finite; remaining validation is
//     delegated to NullDistribution.
//   - Stage 2 (Execute): build the null, convert percentile rank to p.
//
// Inputs:
//   - fixed, permuted: the matrix pair; only `permuted` is relabelled.
//   - observed: the correlation to test, typically CorrelateWith(fixed, permuted).
//   - opts: NPerms ≥ 1, Seed (0 ⇒ default stream).
//
// Returns:
//   - float64 in [0, 1]; resolution 1/NPerms.
//
// Errors:
//   - ErrNaNInf (non-finite observed), plus everything NullDistribution returns.
//
// Determinism:
//   - Same inputs and opts ⇒ identical p-value.
//
// Complexity:
//   - Time O(NPerms·n²), Space O(n²+NPerms).
func RandomizationPValue(fixed, permuted *LabelledMatrix, observed float64, opts RandomizationOptions) (float64, error) {
	// Stage 1 (Validate): a non-finite observed score signals an upstream bug.
	if isNonFinite(observed) {
		return 0, simmatErrorf(opRandomizationPValue, ErrNaNInf)
	}

	// Stage 2 (Execute): null distribution, then percentile rank.
	null, err := NullDistribution(fixed, permuted, opts)
	if err != nil {
		return 0, simmatErrorf(opRandomizationPValue, err)
	}

	return 1 - percentileOfScore(null, observed)/percentScale, nil
}

// percentileOfScore returns the rank-based percentile (0..100) of score within
// scores: the mean of the strict-left count and the left-or-equal count, with
// a half-step bump when ties exist. Matches the conventional "rank" definition
// used across statistics packages.
//
// Callers guarantee scores is non-empty (NPerms ≥ 1).
// Complexity: O(len(scores)) time, O(1) space.
func percentileOfScore(scores []float64, score float64) float64 {
	var left, right int
	for _, v := range scores {
		if v < score {
			left++
		}
		if v <= score {
			right++
		}
	}

	// Ties contribute half a rank step: bump only when equals exist.
	bump := 0
	if right > left {
		bump = 1
	}

	return float64(left+right+bump) * (percentScale / 2) / float64(len(scores))
}
