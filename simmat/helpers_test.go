// SPDX-License-Identifier: MIT

// Shared fixtures and constructors for the simmat test suite.
// Conventions:
//   - Deterministic data only: fixtures are literal or formula-generated.
//   - must* helpers fail the test immediately on construction errors, keeping
//     assertion noise out of the scenarios under test.

package simmat_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlsim/simmat"
)

// floatTol is the tolerance for comparing values that pass through
// exponentials or correlation arithmetic.
const floatTol = 1e-12

// abc is the canonical 3-condition label set used by small fixtures.
var abc = []string{"a", "b", "c"}

// sym3 is a hand-checkable symmetric 3×3 similarity fixture over abc.
//
//	a    b    c
//	a  1.0  2.0  0.0
//	b  2.0  1.0  1.0
//	c  0.0  1.0  1.0
func sym3() *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		1, 2, 0,
		2, 1, 1,
		0, 1, 1,
	})
}

// mustLabelled builds a LabelledMatrix from a dense fixture or fails the test.
func mustLabelled(t *testing.T, data *mat.Dense, labels []string, opts ...simmat.Option) *simmat.LabelledMatrix {
	t.Helper()

	m, err := simmat.NewLabelled(data, labels, opts...)
	require.NoError(t, err, "fixture construction must succeed")

	return m
}

// mustSimilarity builds a SimilarityMatrix from a dense fixture or fails the test.
func mustSimilarity(t *testing.T, data *mat.Dense, labels []string, opts ...simmat.Option) *simmat.SimilarityMatrix {
	t.Helper()

	s, err := simmat.NewSimilarity(data, labels, opts...)
	require.NoError(t, err, "fixture construction must succeed")

	return s
}

// mustRDM builds an RDM from a dense fixture or fails the test.
func mustRDM(t *testing.T, data *mat.Dense, labels []string, opts ...simmat.Option) *simmat.RDM {
	t.Helper()

	r, err := simmat.NewRDM(data, labels, opts...)
	require.NoError(t, err, "fixture construction must succeed")

	return r
}

// distinctDense generates an n×n symmetric matrix with pairwise-distinct
// off-diagonal values, so only the identity relabelling reproduces it exactly.
// Entry (i,j), i<j, is i*n + j + (i+j)/16, strictly increasing in (i,j); all
// entries are dyadic, so 1-x arithmetic on them is exact.
func distinctDense(n int) (*mat.Dense, []string) {
	data := mat.NewDense(n, n, nil)
	labels := make([]string, n)
	for i := 0; i < n; i++ {
		labels[i] = fmt.Sprintf("c%02d", i)
		for j := i; j < n; j++ {
			v := float64(i*n+j) + float64(i+j)/16
			data.Set(i, j, v)
			data.Set(j, i, v)
		}
	}

	return data, labels
}

// distinctLabelled wraps distinctDense in a validated LabelledMatrix fixture.
func distinctLabelled(t *testing.T, n int) *simmat.LabelledMatrix {
	t.Helper()

	data, labels := distinctDense(n)

	return mustLabelled(t, data, labels)
}

// pearson computes a reference Pearson correlation independently of the
// package under test.
func pearson(x, y []float64) float64 {
	n := float64(len(x))

	var mx, my float64
	for i := range x {
		mx += x[i]
		my += y[i]
	}
	mx /= n
	my /= n

	var sxy, sxx, syy float64
	for i := range x {
		dx, dy := x[i]-mx, y[i]-my
		sxy += dx * dy
		sxx += dx * dx
		syy += dy * dy
	}

	return sxy / math.Sqrt(sxx*syy)
}
