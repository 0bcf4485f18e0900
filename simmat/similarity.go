// SPDX-License-Identifier: MIT
// Package: simmat
//
// Purpose:
//   - Define SimilarityMatrix, a LabelledMatrix whose entries grow with
//     similarity (inner products, softmax choice probabilities, model scores).
//   - Provide ByDotProduct, the embedding-space entry point: pairwise inner
//     products of row vectors.
//
// Determinism & Performance:
//   - Fixed i→j traversal; Dense inputs use flat row views with gonum
//     floats.Dot, other matrix types fall back to At-based accumulation.
//
// AI-Hints:
//   - ByDotProduct leaves the diagonal at raw self inner products; the softmax
//     transform (softmax.go) is the step that produces a unit diagonal.

package simmat

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Operation name constants for unified error wrapping.
const (
	opNewSimilarity    = "NewSimilarity"
	opNewSimilaritySym = "NewSimilaritySym"
	opByDotProduct     = "ByDotProduct"
)

// SimilarityMatrix is a symmetric matrix of pairwise similarities: larger
// entries mean more similar conditions. It embeds LabelledMatrix, so all
// label-safe operations (Condensed, CorrelateWith, accessors) apply directly.
type SimilarityMatrix struct {
	LabelledMatrix
}

// NewSimilarity validates and ingests a square, near-symmetric similarity
// matrix. Semantics and errors match NewLabelled exactly; the result is
// additionally typed as a similarity structure for use with the softmax
// transform and RDM conversion.
// Complexity: O(n²).
func NewSimilarity(data mat.Matrix, labels []string, opts ...Option) (*SimilarityMatrix, error) {
	base, err := NewLabelled(data, labels, opts...)
	if err != nil {
		return nil, simmatErrorf(opNewSimilarity, err)
	}

	return &SimilarityMatrix{LabelledMatrix: *base}, nil
}

// NewSimilaritySym ingests an already-symmetric similarity matrix.
// Semantics and errors match NewLabelledSym exactly.
// Complexity: O(n²).
func NewSimilaritySym(src *mat.SymDense, labels []string, opts ...Option) (*SimilarityMatrix, error) {
	base, err := NewLabelledSym(src, labels, opts...)
	if err != nil {
		return nil, simmatErrorf(opNewSimilaritySym, err)
	}

	return &SimilarityMatrix{LabelledMatrix: *base}, nil
}

// ByDotProduct builds a similarity matrix from row-vector embeddings:
// S[i,j] = ⟨row_i, row_j⟩.
// Implementation:
//   - Stage 1 (Validate): data present with at least one row, labels valid
//     and matching the row count, all entries finite (embeddings admit no
//     missing dimensions).
//   - Stage 2 (Execute): accumulate the upper triangle of X·Xᵀ pair by pair;
//     symmetric by construction, so no eps reconciliation is needed.
//
// Behavior highlights:
//   - *mat.Dense inputs take a flat-row fast path (floats.Dot on row views);
//     any other mat.Matrix is handled through At with identical results.
//   - The diagonal holds raw self inner products (squared vector norms); it
//     is deliberately NOT forced to 1.
//
// Inputs:
//   - data: n×d matrix, one embedding vector per row (d ≥ 1).
//   - labels: condition label per row; unique, non-empty, len == n.
//
// Returns:
//   - *SimilarityMatrix over labels.
//
// Errors:
//   - ErrNilMatrix, ErrBadShape, ErrEmptyLabel, ErrDuplicateLabel,
//     ErrLabelCount, ErrNaNInf.
//
// Determinism:
//   - Fixed i→j pair order; no randomness.
//
// Complexity:
//   - Time O(n²·d), Space O(n²) for the result.
//
// AI-Hints:
//   - To reproduce low-rank variants, slice the embedding columns before the
//     call (e.g., leading dimensions of an SPoSE embedding) rather than
//     truncating the result.
func ByDotProduct(data mat.Matrix, labels []string, opts ...Option) (*SimilarityMatrix, error) {
	// Stage 1 (Validate): structure, labels, numeric policy.
	if data == nil {
		return nil, simmatErrorf(opByDotProduct, ErrNilMatrix)
	}
	n, d := data.Dims()
	if n < 1 || d < 1 {
		return nil, simmatErrorf(opByDotProduct, ErrBadShape)
	}
	if err := validateLabels(labels); err != nil {
		return nil, simmatErrorf(opByDotProduct, err)
	}
	if len(labels) != n {
		return nil, simmatErrorf(opByDotProduct, ErrLabelCount)
	}
	// Embedding rows must be fully observed: dot products cannot skip dims.
	if err := validateFinite(data, false); err != nil {
		return nil, simmatErrorf(opByDotProduct, err)
	}

	sym := mat.NewSymDense(n, nil)

	// Stage 2 (Execute): Dense fast path on flat row views.
	if dense, ok := data.(*mat.Dense); ok {
		for i := 0; i < n; i++ {
			ri := dense.RawRowView(i) // read-only view; never mutated here
			for j := i; j < n; j++ {
				sym.SetSym(i, j, floats.Dot(ri, dense.RawRowView(j)))
			}
		}
	} else {
		// Fallback: generic At accumulation, same traversal order.
		var acc float64
		for i := 0; i < n; i++ {
			for j := i; j < n; j++ {
				acc = 0
				for k := 0; k < d; k++ {
					acc += data.At(i, k) * data.At(j, k)
				}
				sym.SetSym(i, j, acc)
			}
		}
	}

	return &SimilarityMatrix{LabelledMatrix: *newFromSym(sym, labels, gatherOptions(opts...))}, nil
}

// ForSubset narrows the similarity matrix to the requested labels, preserving
// the similarity type. Semantics and errors match LabelledMatrix.ForSubset.
// Complexity: O(k²).
func (s *SimilarityMatrix) ForSubset(subset []string) (*SimilarityMatrix, error) {
	if s == nil {
		return nil, simmatErrorf(opForSubset, ErrNilMatrix)
	}
	base, err := s.LabelledMatrix.ForSubset(subset)
	if err != nil {
		return nil, err
	}

	return &SimilarityMatrix{LabelledMatrix: *base}, nil
}

// CorrelateWith computes the Pearson correlation between the condensed forms
// of two similarity matrices. Semantics and errors match
// LabelledMatrix.CorrelateWith.
// Complexity: O(n²).
func (s *SimilarityMatrix) CorrelateWith(other *SimilarityMatrix) (float64, error) {
	if s == nil || other == nil {
		return 0, simmatErrorf(opCorrelateWith, ErrNilMatrix)
	}

	return s.LabelledMatrix.CorrelateWith(&other.LabelledMatrix)
}
