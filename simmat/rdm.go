// SPDX-License-Identifier: MIT
// Package: simmat
//
// Purpose:
//   - Define RDM (representational dissimilarity matrix), the complement view
//     of a similarity matrix: entries grow with DISSIMILARITY.
//   - Provide the 1-x conversions between the two views and the high-level
//     CorrelateWithNHST entry point combining Pearson agreement with the
//     permutation-based significance test.
//
// Conventions:
//   - RDM = 1 - similarity, entry-wise. The diagonal is 0 exactly when the
//     similarity diagonal is exactly 1 (softmax output guarantees that; raw
//     dot-product matrices do not).
//   - Conversions are entry-wise 1-x both ways. The round trip restores an
//     entry bit-for-bit whenever the intermediate 1-x is representable
//     (always for values in [0.5, 2]); other entries may move by one ulp,
//     e.g. 1-(1-0.3) yields 0.30000000000000004.

package simmat

import "gonum.org/v1/gonum/mat"

// Operation name constants for unified error wrapping.
const (
	opNewRDM            = "NewRDM"
	opNewRDMSym         = "NewRDMSym"
	opToRDM             = "ToRDM"
	opToSimilarity      = "ToSimilarity"
	opCorrelateWithNHST = "CorrelateWithNHST"
)

// RDM is a symmetric matrix of pairwise dissimilarities: larger entries mean
// more dissimilar conditions. It embeds LabelledMatrix, so all label-safe
// operations apply directly.
type RDM struct {
	LabelledMatrix
}

// NHSTResult reports a representational agreement score together with its
// permutation-based significance.
type NHSTResult struct {
	// R is the observed Pearson correlation of the two condensed RDMs.
	R float64
	// P is the one-sided upper-tail p-value of R against the permutation
	// null distribution; resolution is 1/NPerms.
	P float64
	// NPerms is the number of permutations the null was built from.
	NPerms int
}

// NewRDM validates and ingests a square, near-symmetric dissimilarity matrix.
// Semantics and errors match NewLabelled exactly.
// Complexity: O(n²).
func NewRDM(data mat.Matrix, labels []string, opts ...Option) (*RDM, error) {
	base, err := NewLabelled(data, labels, opts...)
	if err != nil {
		return nil, simmatErrorf(opNewRDM, err)
	}

	return &RDM{LabelledMatrix: *base}, nil
}

// NewRDMSym ingests an already-symmetric dissimilarity matrix.
// Semantics and errors match NewLabelledSym exactly.
// Complexity: O(n²).
func NewRDMSym(src *mat.SymDense, labels []string, opts ...Option) (*RDM, error) {
	base, err := NewLabelledSym(src, labels, opts...)
	if err != nil {
		return nil, simmatErrorf(opNewRDMSym, err)
	}

	return &RDM{LabelledMatrix: *base}, nil
}

// ToRDM converts a similarity matrix into its dissimilarity view: every entry
// becomes 1 - value, labels unchanged. NaN entries (matrices built with
// WithAllowMissing) stay NaN.
//
// Errors: ErrNilMatrix.
// Complexity: O(n²).
func (s *SimilarityMatrix) ToRDM() (*RDM, error) {
	if s == nil || s.sym == nil {
		return nil, simmatErrorf(opToRDM, ErrNilMatrix)
	}

	return &RDM{LabelledMatrix: *oneMinus(&s.LabelledMatrix)}, nil
}

// ToSimilarity converts a dissimilarity matrix back into its similarity view:
// every entry becomes 1 - value, labels unchanged. Inverse of ToRDM up to
// one-ulp rounding of the repeated subtraction (see the file header note).
//
// Errors: ErrNilMatrix.
// Complexity: O(n²).
func (r *RDM) ToSimilarity() (*SimilarityMatrix, error) {
	if r == nil || r.sym == nil {
		return nil, simmatErrorf(opToSimilarity, ErrNilMatrix)
	}

	return &SimilarityMatrix{LabelledMatrix: *oneMinus(&r.LabelledMatrix)}, nil
}

// oneMinus builds the entry-wise 1-x counterpart of a validated matrix,
// preserving labels and numeric policy. Internal; callers guarantee m != nil.
func oneMinus(m *LabelledMatrix) *LabelledMatrix {
	n := m.Dim()
	out := mat.NewSymDense(n, nil)

	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			out.SetSym(i, j, 1-m.sym.At(i, j))
		}
	}

	return newFromSym(out, m.labels, m.opts)
}

// ForSubset narrows the RDM to the requested labels, preserving the RDM type.
// Semantics and errors match LabelledMatrix.ForSubset.
// Complexity: O(k²).
func (r *RDM) ForSubset(subset []string) (*RDM, error) {
	if r == nil {
		return nil, simmatErrorf(opForSubset, ErrNilMatrix)
	}
	base, err := r.LabelledMatrix.ForSubset(subset)
	if err != nil {
		return nil, err
	}

	return &RDM{LabelledMatrix: *base}, nil
}

// CorrelateWith computes the Pearson correlation between the condensed forms
// of two RDMs. Semantics and errors match LabelledMatrix.CorrelateWith.
// Complexity: O(n²).
func (r *RDM) CorrelateWith(other *RDM) (float64, error) {
	if r == nil || other == nil {
		return 0, simmatErrorf(opCorrelateWith, ErrNilMatrix)
	}

	return r.LabelledMatrix.CorrelateWith(&other.LabelledMatrix)
}

// CorrelateWithNHST computes the Pearson correlation between two RDMs and its
// one-sided significance against a permutation null distribution.
// Implementation:
//   - Stage 1 (Observe): Pearson r of the condensed forms (CorrelateWith).
//   - Stage 2 (Test): permutation null via NullDistribution over the SECOND
//     matrix, p-value by percentile rank (see randomization.go).
//
// Behavior highlights:
//   - The receiver stays fixed; only `other` is permuted. The null preserves
//     the value distribution of both matrices and breaks only the label
//     correspondence, so p answers: "how often does a random relabelling of
//     `other` agree with the receiver at least this well?"
//
// Inputs:
//   - other: RDM over the same number of conditions, label order aligned.
//   - opts: NPerms ≥ 1 and the RNG seed (Seed==0 ⇒ stable default stream).
//
// Returns:
//   - NHSTResult with the observed R, one-sided P, and NPerms echoed back.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrMissingValue,
//     ErrUndefinedCorrelation, ErrBadPermCount.
//
// Determinism:
//   - Fixed seed policy: identical inputs, opts and seed reproduce the exact
//     NHSTResult.
//
// Complexity:
//   - Time O(NPerms·n²), Space O(n²+NPerms).
func (r *RDM) CorrelateWithNHST(other *RDM, opts RandomizationOptions) (NHSTResult, error) {
	if r == nil || other == nil {
		return NHSTResult{}, simmatErrorf(opCorrelateWithNHST, ErrNilMatrix)
	}

	// Stage 1 (Observe): agreement of the two dissimilarity structures.
	observed, err := r.LabelledMatrix.CorrelateWith(&other.LabelledMatrix)
	if err != nil {
		return NHSTResult{}, simmatErrorf(opCorrelateWithNHST, err)
	}

	// Stage 2 (Test): one-sided upper-tail permutation p-value.
	p, err := RandomizationPValue(&r.LabelledMatrix, &other.LabelledMatrix, observed, opts)
	if err != nil {
		return NHSTResult{}, simmatErrorf(opCorrelateWithNHST, err)
	}

	return NHSTResult{R: observed, P: p, NPerms: opts.NPerms}, nil
}
