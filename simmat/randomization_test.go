// SPDX-License-Identifier: MIT

package simmat_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlsim/simmat"
)

// TestPercentileOfScore_RankSemantics pins the rank-based percentile used by
// the p-value conversion, including the half-step tie handling.
func TestPercentileOfScore_RankSemantics(t *testing.T) {
	scores := []float64{1, 2, 3, 4}

	assert.Equal(t, 75.0, simmat.ExportedPercentileOfScore(scores, 3),
		"a present score ranks at the tie-adjusted midpoint")
	assert.Equal(t, 50.0, simmat.ExportedPercentileOfScore(scores, 2.5),
		"a score between samples ranks by strict counts")
	assert.Equal(t, 100.0, simmat.ExportedPercentileOfScore(scores, 5),
		"a score above all samples ranks at 100")
	assert.Equal(t, 0.0, simmat.ExportedPercentileOfScore(scores, 0),
		"a score below all samples ranks at 0")
	assert.Equal(t, 100.0, simmat.ExportedPercentileOfScore(scores, 4),
		"the maximum sample ranks at 100 under rank semantics")

	ties := []float64{1, 2, 2, 3}
	assert.Equal(t, 62.5, simmat.ExportedPercentileOfScore(ties, 2),
		"tied samples rank at their mean position")
}

// TestNullDistribution_Determinism verifies the seed policy: equal seeds
// reproduce the null bit-for-bit, Seed==0 maps to a stable default stream,
// and distinct seeds diverge.
func TestNullDistribution_Determinism(t *testing.T) {
	a := distinctLabelled(t, 8)
	b := distinctLabelled(t, 8)
	opts := simmat.RandomizationOptions{NPerms: 64, Seed: 42}

	first, err := simmat.NullDistribution(a, b, opts)
	require.NoError(t, err)
	second, err := simmat.NullDistribution(a, b, opts)
	require.NoError(t, err)
	assert.Equal(t, first, second, "same seed must reproduce the null exactly")

	zeroA, err := simmat.NullDistribution(a, b, simmat.RandomizationOptions{NPerms: 64, Seed: 0})
	require.NoError(t, err)
	zeroB, err := simmat.NullDistribution(a, b, simmat.RandomizationOptions{NPerms: 64, Seed: 0})
	require.NoError(t, err)
	assert.Equal(t, zeroA, zeroB, "Seed==0 must map to a stable default stream")

	other, err := simmat.NullDistribution(a, b, simmat.RandomizationOptions{NPerms: 64, Seed: 7})
	require.NoError(t, err)
	assert.NotEqual(t, first, other, "different seeds must give different draws")
}

// TestNullDistribution_ShapeAndRange verifies the draw count and that every
// draw is a valid correlation.
func TestNullDistribution_ShapeAndRange(t *testing.T) {
	a := distinctLabelled(t, 7)
	b := distinctLabelled(t, 7)

	null, err := simmat.NullDistribution(a, b, simmat.RandomizationOptions{NPerms: 250, Seed: 3})
	require.NoError(t, err)
	require.Len(t, null, 250, "one value per permutation draw")

	for i, r := range null {
		assert.False(t, math.IsNaN(r), "draw %d must be defined", i)
		assert.GreaterOrEqual(t, r, -1.0, "draw %d must be a correlation", i)
		assert.LessOrEqual(t, r, 1.0, "draw %d must be a correlation", i)
	}
}

// TestNullDistribution_Errors covers the validation surface: bad permutation
// counts, nil and mismatched inputs, missing values, and degenerate operands.
func TestNullDistribution_Errors(t *testing.T) {
	a := distinctLabelled(t, 5)
	opts := simmat.DefaultRandomizationOptions()

	_, err := simmat.NullDistribution(a, a, simmat.RandomizationOptions{NPerms: 0, Seed: 1})
	assert.ErrorIs(t, err, simmat.ErrBadPermCount, "zero permutations must error")

	_, err = simmat.NullDistribution(a, a, simmat.RandomizationOptions{NPerms: -10, Seed: 1})
	assert.ErrorIs(t, err, simmat.ErrBadPermCount, "negative permutations must error")

	_, err = simmat.NullDistribution(nil, a, opts)
	assert.ErrorIs(t, err, simmat.ErrNilMatrix, "nil fixed matrix must error")

	small := distinctLabelled(t, 4)
	_, err = simmat.NullDistribution(a, small, opts)
	assert.ErrorIs(t, err, simmat.ErrDimensionMismatch, "cardinality must match")

	gap := sym3()
	gap.Set(0, 1, math.NaN())
	gap.Set(1, 0, math.NaN())
	sparse := mustLabelled(t, gap, abc, simmat.WithAllowMissing())
	full3 := mustLabelled(t, sym3(), abc)
	_, err = simmat.NullDistribution(full3, sparse, opts)
	assert.ErrorIs(t, err, simmat.ErrMissingValue, "missing values must be rejected")

	flat := mat.NewDense(5, 5, nil)
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			flat.Set(i, j, 1)
		}
	}
	constant := mustLabelled(t, flat, []string{"a", "b", "c", "d", "e"})
	_, err = simmat.NullDistribution(a, constant, opts)
	assert.ErrorIs(t, err, simmat.ErrUndefinedCorrelation, "constant operand must error")
}

// TestRandomizationPValue_SelfAgreementIsSignificant verifies the headline
// property: a matrix correlated with itself (r = 1) must come out at or below
// the test's resolution of 1/NPerms.
func TestRandomizationPValue_SelfAgreementIsSignificant(t *testing.T) {
	m := distinctLabelled(t, 8) // pairwise-distinct entries: only the identity
	// relabelling reproduces r=1, so ties in the null are effectively absent.
	const nPerms = 200

	observed, err := m.CorrelateWith(m)
	require.NoError(t, err)
	require.InDelta(t, 1.0, observed, floatTol)

	p, err := simmat.RandomizationPValue(m, m, observed, simmat.RandomizationOptions{NPerms: nPerms, Seed: 9})
	require.NoError(t, err)

	assert.GreaterOrEqual(t, p, 0.0, "p is a probability")
	assert.LessOrEqual(t, p, 1.0/nPerms+floatTol, "perfect agreement must reach the resolution floor")
}

// TestRandomizationPValue_OppositeAgreementIsInsignificant verifies the
// one-sided direction: a strongly negative observed correlation must land in
// the upper range of p, never near zero.
func TestRandomizationPValue_OppositeAgreementIsInsignificant(t *testing.T) {
	m := distinctLabelled(t, 8)

	// The exact lower tail: no permutation can undercut r = -1.
	p, err := simmat.RandomizationPValue(m, m, -1, simmat.RandomizationOptions{NPerms: 200, Seed: 9})
	require.NoError(t, err)
	assert.Greater(t, p, 0.5, "anti-correlation is the wrong tail for this one-sided test")
}

// TestRandomizationPValue_Determinism verifies end-to-end reproducibility of
// the p-value under the seed policy.
func TestRandomizationPValue_Determinism(t *testing.T) {
	a := distinctLabelled(t, 6)
	b := distinctLabelled(t, 6)
	opts := simmat.RandomizationOptions{NPerms: 500, Seed: 1234}

	r, err := a.CorrelateWith(b)
	require.NoError(t, err)

	p1, err := simmat.RandomizationPValue(a, b, r, opts)
	require.NoError(t, err)
	p2, err := simmat.RandomizationPValue(a, b, r, opts)
	require.NoError(t, err)

	assert.Equal(t, p1, p2, "same inputs and seed must give the identical p-value")
}

// TestRandomizationPValue_RejectsNonFiniteObserved verifies a NaN observed
// score is rejected before any permutation work.
func TestRandomizationPValue_RejectsNonFiniteObserved(t *testing.T) {
	m := distinctLabelled(t, 5)

	_, err := simmat.RandomizationPValue(m, m, math.NaN(), simmat.DefaultRandomizationOptions())
	assert.ErrorIs(t, err, simmat.ErrNaNInf, "NaN observed score signals an upstream bug")
}

// TestDefaultRandomizationOptions pins the documented defaults.
func TestDefaultRandomizationOptions(t *testing.T) {
	opts := simmat.DefaultRandomizationOptions()

	assert.Equal(t, simmat.DefaultNPerms, opts.NPerms, "default permutation count")
	assert.Equal(t, int64(0), opts.Seed, "default seed selects the stable default stream")
}
