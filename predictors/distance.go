// SPDX-License-Identifier: MIT
// Package: predictors
//
// Purpose:
//   - Provide the vector distance kernels behind BuildVectorRDM and ad-hoc
//     pairwise comparisons: cosine, correlation, Euclidean, Minkowski-3.
//
// Determinism & Performance:
//   - Pure float64 arithmetic on the inputs; no allocation in Distance.
//   - PairwiseDistances computes each unordered row pair once: O(n²·d).

package predictors

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Operation name constants for unified error wrapping.
const (
	opDistance          = "Distance"
	opPairwiseDistances = "PairwiseDistances"
)

// Distance computes the distance between two equal-length vectors under the
// selected kernel.
// Implementation:
//   - Stage 1 (Validate): kernel membership, equal non-zero lengths.
//   - Stage 2 (Execute): the kernel formula (see DistanceType docs).
//   - Stage 3 (Finalize): reject a non-finite result.
//
// Behavior highlights:
//   - Cosine and Correlation are bounded dissimilarities (1 - agreement);
//     Euclidean and Minkowski3 are unbounded norms of u-v.
//   - A zero-magnitude vector under Cosine, a constant vector under
//     Correlation, NaN components, or overflow all surface as
//     ErrDegenerateVector; a finite return value is guaranteed otherwise.
//
// Errors: ErrUnknownDistance, ErrDimensionMismatch, ErrDegenerateVector.
// Complexity: O(d) time, O(1) space.
func Distance(u, v []float64, t DistanceType) (float64, error) {
	// Stage 1 (Validate).
	if !t.valid() {
		return 0, predictorsErrorf(opDistance, ErrUnknownDistance)
	}
	if len(u) != len(v) {
		return 0, predictorsErrorf(opDistance, ErrDimensionMismatch)
	}
	if len(u) == 0 {
		return 0, predictorsErrorf(opDistance, ErrDegenerateVector)
	}

	// Stage 2 (Execute).
	var d float64
	switch t {
	case Cosine:
		d = 1 - floats.Dot(u, v)/(math.Sqrt(floats.Dot(u, u))*math.Sqrt(floats.Dot(v, v)))
	case Correlation:
		d = 1 - stat.Correlation(u, v, nil)
	case Euclidean:
		d = floats.Distance(u, v, 2)
	case Minkowski3:
		d = floats.Distance(u, v, 3)
	}

	// Stage 3 (Finalize): zero norms, zero variance, NaN components and
	// overflow all land here as non-finite values.
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return 0, predictorsErrorf(opDistance, ErrDegenerateVector)
	}

	return d, nil
}

// PairwiseDistances computes the symmetric n×n distance matrix over the rows
// of X under the selected kernel. Row order is preserved; entry (i,j) is
// Distance(row i, row j, t).
//
// The diagonal is computed by the kernel, not forced: exactly 0 for Euclidean
// and Minkowski3, and 0 up to rounding for Cosine and Correlation.
//
// Errors: ErrNilMatrix, ErrUnknownDistance, ErrDegenerateVector (wrapped with
// the offending row pair).
// Complexity: O(n²·d) time, O(n²) space.
func PairwiseDistances(X *mat.Dense, t DistanceType) (*mat.SymDense, error) {
	if X == nil {
		return nil, predictorsErrorf(opPairwiseDistances, ErrNilMatrix)
	}
	if !t.valid() {
		return nil, predictorsErrorf(opPairwiseDistances, ErrUnknownDistance)
	}

	n, _ := X.Dims()
	out := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		ui := X.RawRowView(i)
		for j := i; j < n; j++ {
			d, err := Distance(ui, X.RawRowView(j), t)
			if err != nil {
				return nil, predictorsErrorf(opPairwiseDistances,
					fmt.Errorf("rows (%d,%d): %w", i, j, err))
			}
			out.SetSym(i, j, d)
		}
	}

	return out, nil
}
