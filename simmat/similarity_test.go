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

// asMatrix wraps a Dense behind the plain mat.Matrix interface, forcing
// ByDotProduct onto its generic (non-fast-path) branch.
type asMatrix struct {
	d *mat.Dense
}

func (m asMatrix) Dims() (int, int)    { return m.d.Dims() }
func (m asMatrix) At(i, j int) float64 { return m.d.At(i, j) }
func (m asMatrix) T() mat.Matrix       { return mat.Transpose{Matrix: m} }

// emptyColumns reports a 2×0 shape without any backing storage; used to reach
// the shape validation that gonum constructors cannot represent.
type emptyColumns struct{}

func (emptyColumns) Dims() (int, int)    { return 2, 0 }
func (emptyColumns) At(_, _ int) float64 { return 0 }
func (e emptyColumns) T() mat.Matrix     { return mat.Transpose{Matrix: e} }

// TestByDotProduct_HandComputed verifies pairwise inner products on a fixture
// small enough to check by eye, including the raw (non-unit) diagonal.
func TestByDotProduct_HandComputed(t *testing.T) {
	// Rows: a=(1,0), b=(0,2), c=(1,1).
	emb := mat.NewDense(3, 2, []float64{
		1, 0,
		0, 2,
		1, 1,
	})

	s, err := simmat.ByDotProduct(emb, abc)
	require.NoError(t, err)

	assert.Equal(t, abc, s.Labels())
	assert.Equal(t, 1.0, s.At(0, 0), "⟨a,a⟩")
	assert.Equal(t, 4.0, s.At(1, 1), "⟨b,b⟩: diagonal stays a raw self product")
	assert.Equal(t, 2.0, s.At(2, 2), "⟨c,c⟩")
	assert.Equal(t, 0.0, s.At(0, 1), "⟨a,b⟩ orthogonal")
	assert.Equal(t, 1.0, s.At(0, 2), "⟨a,c⟩")
	assert.Equal(t, 2.0, s.At(1, 2), "⟨b,c⟩")
	assert.Equal(t, s.At(1, 2), s.At(2, 1), "symmetric by construction")
}

// TestByDotProduct_GenericInputMatchesDense verifies the At-based fallback
// produces the exact values of the flat-row fast path.
func TestByDotProduct_GenericInputMatchesDense(t *testing.T) {
	emb := mat.NewDense(4, 3, []float64{
		0.5, -1, 2,
		1.5, 0.25, -0.75,
		2, 1, 0,
		-0.5, 0.5, 1,
	})
	labels := []string{"a", "b", "c", "d"}

	fast, err := simmat.ByDotProduct(emb, labels)
	require.NoError(t, err)
	generic, err := simmat.ByDotProduct(asMatrix{d: emb}, labels)
	require.NoError(t, err)

	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			assert.Equal(t, fast.At(i, j), generic.At(i, j),
				"entry (%d,%d) must not depend on the input's concrete type", i, j)
		}
	}
}

// TestByDotProduct_Validation covers the rejection paths: nil input, empty
// embedding dimensions, label mismatches, and non-finite entries.
func TestByDotProduct_Validation(t *testing.T) {
	_, err := simmat.ByDotProduct(nil, abc)
	assert.ErrorIs(t, err, simmat.ErrNilMatrix, "nil input must error")

	_, err = simmat.ByDotProduct(emptyColumns{}, []string{"a", "b"})
	assert.ErrorIs(t, err, simmat.ErrBadShape, "zero-dimensional embeddings must error")

	emb := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	_, err = simmat.ByDotProduct(emb, abc)
	assert.ErrorIs(t, err, simmat.ErrLabelCount, "3 labels on 2 rows must error")

	gappy := mat.NewDense(2, 2, []float64{1, math.NaN(), 3, 4})
	_, err = simmat.ByDotProduct(gappy, []string{"a", "b"})
	assert.ErrorIs(t, err, simmat.ErrNaNInf, "embeddings admit no missing dimensions")
}

// TestSimilarityMatrix_ForSubset verifies the typed narrowing keeps both the
// similarity type and the label mapping.
func TestSimilarityMatrix_ForSubset(t *testing.T) {
	s := mustSimilarity(t, sym3(), abc)

	sub, err := s.ForSubset([]string{"c", "b"})
	require.NoError(t, err)

	assert.Equal(t, []string{"c", "b"}, sub.Labels())
	assert.Equal(t, s.At(2, 1), sub.At(0, 1), "entries follow the label mapping")

	// The narrowed value is itself a similarity matrix: the softmax transform
	// applies directly.
	_, err = sub.MeanSoftmaxProbability(nil)
	require.NoError(t, err)
}

// TestSimilarityMatrix_CorrelateWith verifies the typed wrapper agrees with
// the underlying labelled computation.
func TestSimilarityMatrix_CorrelateWith(t *testing.T) {
	s1 := mustSimilarity(t, sym3(), abc)

	other := sym3()
	other.Set(0, 1, 3.0)
	other.Set(1, 0, 3.0)
	s2 := mustSimilarity(t, other, abc)

	got, err := s1.CorrelateWith(s2)
	require.NoError(t, err)
	want := pearson(s1.Condensed(), s2.Condensed())
	assert.InDelta(t, want, got, floatTol)
}
