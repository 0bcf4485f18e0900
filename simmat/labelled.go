// SPDX-License-Identifier: MIT
// Package: simmat
//
// Purpose:
//   - Define LabelledMatrix, the foundational container of the package: a
//     square symmetric float64 matrix whose rows/columns are identified by
//     string condition labels instead of bare indices.
//   - Provide the label-safe operations every downstream transform builds on:
//     subset extraction, condensed (upper-triangle) vectorization, and Pearson
//     correlation of two matrices' condensed forms.
//
// Exposed API:
//   - NewLabelled(data, labels, ...opts)    -> *LabelledMatrix   // validated ingestion
//   - NewLabelledSym(sym, labels, ...opts)  -> *LabelledMatrix   // symmetric fast path
//   - (m) ForSubset(subset)                 -> *LabelledMatrix   // reorder/narrow by labels
//   - (m) Condensed()                       -> []float64         // strict upper triangle, row-major
//   - (m) CorrelateWith(other)              -> float64           // Pearson over condensed forms
//   - (m) CompleteLabels()                  -> []string          // labels with fully observed rows
//   - accessors: Labels, Dim, At, Value, Has, Index, Sym
//
// Determinism & Performance:
//   - Fixed i→j traversal for all loops; no randomness anywhere in this file.
//   - Storage is *mat.SymDense (gonum), exclusively owned; accessors hand out
//     copies so no caller can mutate shared state.
//
// AI-Hints:
//   - Treat LabelledMatrix as immutable: every operation returns a new value.
//   - Align label ORDER before CorrelateWith; only cardinality is validated.

package simmat

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opNewLabelled    = "NewLabelled"
	opNewLabelledSym = "NewLabelledSym"
	opForSubset      = "ForSubset"
	opCorrelateWith  = "CorrelateWith"
	opValue          = "Value"
)

// minCorrelationConditions is the smallest condition count for which Pearson
// correlation of condensed vectors is defined: three conditions yield three
// off-diagonal pairs; two conditions yield a single pair (zero variance).
const minCorrelationConditions = 3

// LabelledMatrix is a square symmetric matrix over a fixed, ordered set of
// unique condition labels. Values are float64; a NaN entry means "value
// unavailable" and is only admitted under WithAllowMissing.
//
// The zero value is not usable; construct via NewLabelled or NewLabelledSym.
// All methods treat the receiver as immutable.
type LabelledMatrix struct {
	labels []string       // condition order; owned copy
	index  map[string]int // label -> row/col position; built once
	sym    *mat.SymDense  // symmetric storage; exclusively owned
	opts   Options        // numeric policy snapshot from construction
}

// NewLabelled validates and ingests a square, near-symmetric matrix.
// Implementation:
//   - Stage 1 (Validate): nil/square, label integrity, label count vs dimension,
//     numeric policy (NaN/Inf), symmetry within eps.
//   - Stage 2 (Canonicalize): copy the upper triangle into symmetric storage,
//     so A[i,j] and A[j,i] can never diverge afterwards.
//   - Stage 3 (Index): snapshot labels and build the label→index table.
//
// Behavior highlights:
//   - Input asymmetry beyond eps is an error, never silently averaged; callers
//     with deliberately asymmetric accumulations reconcile explicitly first.
//   - The input matrix is deep-copied: later caller mutations have no effect.
//
// Inputs:
//   - data: square matrix (any gonum mat.Matrix); row i and column i both
//     correspond to labels[i].
//   - labels: unique, non-empty strings; len(labels) must equal the dimension.
//   - opts: WithEpsilon, WithAllowMissing (see options.go).
//
// Returns:
//   - *LabelledMatrix: validated, canonically symmetric, immutable.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrBadShape, ErrEmptyLabel,
//     ErrDuplicateLabel, ErrLabelCount, ErrNaNInf, ErrAsymmetry.
//
// Determinism:
//   - Pure function of inputs; stable error for a given violation.
//
// Complexity:
//   - Time O(n²), Space O(n²) for the canonical copy.
func NewLabelled(data mat.Matrix, labels []string, opts ...Option) (*LabelledMatrix, error) {
	o := gatherOptions(opts...)

	// Stage 1 (Validate): structural checks in documented priority order.
	if err := validateSquare(data); err != nil {
		return nil, simmatErrorf(opNewLabelled, err)
	}
	if err := validateLabels(labels); err != nil {
		return nil, simmatErrorf(opNewLabelled, err)
	}
	n, _ := data.Dims()
	if len(labels) != n {
		return nil, simmatErrorf(opNewLabelled, ErrLabelCount)
	}
	if err := validateFinite(data, o.allowMissing); err != nil {
		return nil, simmatErrorf(opNewLabelled, err)
	}
	if err := validateSymmetricWithin(data, o.eps); err != nil {
		return nil, simmatErrorf(opNewLabelled, err)
	}

	// Stage 2 (Canonicalize): upper triangle is the single source of truth.
	sym := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			sym.SetSym(i, j, data.At(i, j))
		}
	}

	// Stage 3 (Index): snapshot the axis.
	return newFromSym(sym, labels, o), nil
}

// NewLabelledSym ingests an already-symmetric matrix (structural symmetry, no
// eps check needed). The storage is deep-copied; labels are validated exactly
// as in NewLabelled.
//
// Errors: ErrNilMatrix, ErrBadShape, ErrEmptyLabel, ErrDuplicateLabel,
// ErrLabelCount, ErrNaNInf.
// Complexity: O(n²) time and space for the copy.
func NewLabelledSym(src *mat.SymDense, labels []string, opts ...Option) (*LabelledMatrix, error) {
	o := gatherOptions(opts...)

	if src == nil {
		return nil, simmatErrorf(opNewLabelledSym, ErrNilMatrix)
	}
	if err := validateLabels(labels); err != nil {
		return nil, simmatErrorf(opNewLabelledSym, err)
	}
	n := src.SymmetricDim()
	if len(labels) != n {
		return nil, simmatErrorf(opNewLabelledSym, ErrLabelCount)
	}
	if err := validateFinite(src, o.allowMissing); err != nil {
		return nil, simmatErrorf(opNewLabelledSym, err)
	}

	sym := mat.NewSymDense(n, nil)
	sym.CopySym(src)

	return newFromSym(sym, labels, o), nil
}

// newFromSym assembles a LabelledMatrix from pre-validated parts, taking
// ownership of sym. Internal constructor shared by all builders in this
// package; callers guarantee labels are valid and len(labels)==dim.
func newFromSym(sym *mat.SymDense, labels []string, o Options) *LabelledMatrix {
	owned := make([]string, len(labels))
	copy(owned, labels)

	index := make(map[string]int, len(owned))
	for i, lbl := range owned {
		index[lbl] = i
	}

	return &LabelledMatrix{labels: owned, index: index, sym: sym, opts: o}
}

// Dim returns the number of conditions (matrix dimension).
// Complexity: O(1).
func (m *LabelledMatrix) Dim() int { return len(m.labels) }

// Labels returns a copy of the condition labels in matrix order.
// Complexity: O(n).
func (m *LabelledMatrix) Labels() []string {
	out := make([]string, len(m.labels))
	copy(out, m.labels)

	return out
}

// At returns the entry at positional indices (i, j). Symmetric storage makes
// At(i,j) == At(j,i) by construction. Out-of-range indices are a programmer
// error and panic, matching gonum's positional-accessor convention; use Value
// for label-based, error-returning access.
// Complexity: O(1).
func (m *LabelledMatrix) At(i, j int) float64 { return m.sym.At(i, j) }

// Value returns the entry for a pair of condition labels.
//
// Errors: ErrLabelNotFound when either label is absent.
// Complexity: O(1).
func (m *LabelledMatrix) Value(a, b string) (float64, error) {
	ia, ok := m.index[a]
	if !ok {
		return 0, simmatErrorf(opValue, fmt.Errorf("label %q: %w", a, ErrLabelNotFound))
	}
	ib, ok := m.index[b]
	if !ok {
		return 0, simmatErrorf(opValue, fmt.Errorf("label %q: %w", b, ErrLabelNotFound))
	}

	return m.sym.At(ia, ib), nil
}

// Has reports whether the given label is one of the matrix conditions.
// Complexity: O(1).
func (m *LabelledMatrix) Has(label string) bool {
	_, ok := m.index[label]

	return ok
}

// Index returns the positional index of a label and whether it exists.
// Complexity: O(1).
func (m *LabelledMatrix) Index(label string) (int, bool) {
	i, ok := m.index[label]

	return i, ok
}

// Sym returns a deep copy of the underlying symmetric storage. The copy is
// the caller's to mutate; the receiver remains immutable.
// Complexity: O(n²) time and space.
func (m *LabelledMatrix) Sym() *mat.SymDense {
	out := mat.NewSymDense(m.sym.SymmetricDim(), nil)
	out.CopySym(m.sym)

	return out
}

// ForSubset extracts the sub-matrix over the requested labels, in the
// requested order.
// Implementation:
//   - Stage 1 (Validate): receiver present; subset non-empty, unique,
//     non-empty strings; every label resolvable.
//   - Stage 2 (Extract): copy the selected upper triangle into new storage.
//
// Behavior highlights:
//   - Never silently truncates: one unknown label fails the whole call.
//   - The result is fully independent of the receiver (deep copy).
//   - Requested order defines the result order, enabling deliberate
//     reordering (a permutation of the full label set is legal).
//
// Inputs:
//   - subset: labels to keep, in the desired output order.
//
// Returns:
//   - *LabelledMatrix: len(subset)×len(subset) sub-matrix.
//
// Errors:
//   - ErrNilMatrix, ErrBadShape (empty subset), ErrEmptyLabel,
//     ErrDuplicateLabel, ErrLabelNotFound (with the offending label).
//
// Determinism:
//   - Output depends only on receiver content and subset order.
//
// Complexity:
//   - Time O(k²) for k=len(subset), Space O(k²).
func (m *LabelledMatrix) ForSubset(subset []string) (*LabelledMatrix, error) {
	if m == nil || m.sym == nil {
		return nil, simmatErrorf(opForSubset, ErrNilMatrix)
	}
	if err := validateLabels(subset); err != nil {
		return nil, simmatErrorf(opForSubset, err)
	}

	// Stage 1 (Resolve): map every requested label to its position; the
	// resolved count must equal the requested count, so fail on first miss.
	idx := make([]int, len(subset))
	for t, lbl := range subset {
		i, ok := m.index[lbl]
		if !ok {
			return nil, simmatErrorf(opForSubset, fmt.Errorf("label %q: %w", lbl, ErrLabelNotFound))
		}
		idx[t] = i
	}

	// Stage 2 (Extract): selected upper triangle into fresh storage.
	k := len(idx)
	sub := mat.NewSymDense(k, nil)
	for a := 0; a < k; a++ {
		for b := a; b < k; b++ {
			sub.SetSym(a, b, m.sym.At(idx[a], idx[b]))
		}
	}

	return newFromSym(sub, subset, m.opts), nil
}

// Condensed returns the strict upper triangle in row-major order, excluding
// the diagonal: the canonical vectorized form for comparing two symmetric
// matrices without double-counting pairs or letting the diagonal dominate.
// Length is n(n-1)/2; n<2 yields an empty slice.
//
// Determinism: fixed (i,j) order with i<j; identical matrices condense to
// identical vectors.
// Complexity: O(n²) time, O(n²) space for the output.
func (m *LabelledMatrix) Condensed() []float64 {
	n := m.Dim()
	out := make([]float64, 0, n*(n-1)/2)

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			out = append(out, m.sym.At(i, j))
		}
	}

	return out
}

// CompleteLabels returns, in matrix order, a label subset whose sub-matrix
// contains no NaN entries: the helper for the explicit drop-before-correlate
// flow on matrices built with WithAllowMissing. Narrow via
// ForSubset(CompleteLabels()) and correlate the complete core.
//
// Selection is greedy peeling: repeatedly drop the label participating in the
// most missing pairs (first such label on ties) until no NaN remains. For the
// usual missing-word structure, where every pair touching an unavailable
// condition is NaN, the peel removes exactly the unavailable conditions. For
// arbitrary NaN patterns the result is complete but not guaranteed maximum
// (that selection problem is equivalent to maximum clique).
//
// Complexity: O(p·n²) time for p peeled labels, O(n) space.
func (m *LabelledMatrix) CompleteLabels() []string {
	n := m.Dim()
	alive := make([]bool, n)
	for i := range alive {
		alive[i] = true
	}

	// Peel until the surviving sub-matrix is NaN-free.
	var worst, worstCount, count int
	for {
		worst, worstCount = -1, 0
		for i := 0; i < n; i++ {
			if !alive[i] {
				continue
			}
			count = 0
			for j := 0; j < n; j++ { // full row, diagonal included
				if alive[j] && math.IsNaN(m.sym.At(i, j)) {
					count++
				}
			}
			if count > worstCount {
				worst, worstCount = i, count
			}
		}
		if worst < 0 {
			break // no missing pairs left among survivors
		}
		alive[worst] = false
	}

	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		if alive[i] {
			out = append(out, m.labels[i])
		}
	}

	return out
}

// CorrelateWith computes the Pearson correlation between the condensed
// (strict upper triangle) forms of two matrices over condition sets of equal
// cardinality.
// Implementation:
//   - Stage 1 (Validate): both present, equal dimension, at least three
//     conditions, no missing values.
//   - Stage 2 (Vectorize): condense both matrices in fixed order.
//   - Stage 3 (Guard + Execute): reject zero-variance vectors, then delegate
//     to gonum stat.Correlation.
//
// Behavior highlights:
//   - Label ORDER agreement is the caller's contract: entries are paired
//     positionally. Use ForSubset to align both matrices to one label order
//     first. Only cardinality is validated here.
//   - A constant matrix (zero variance off-diagonal) yields
//     ErrUndefinedCorrelation, never an unflagged NaN.
//
// Inputs:
//   - other: matrix over the same number of conditions.
//
// Returns:
//   - float64: Pearson r in [-1, 1].
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrMissingValue,
//     ErrUndefinedCorrelation.
//
// Determinism:
//   - Pure function of the two condensed vectors.
//
// Complexity:
//   - Time O(n²), Space O(n²) for the condensed forms.
//
// AI-Hints:
//   - For dissimilarity structures, correlate RDMs (see rdm.go); the value is
//     the standard representational-similarity agreement score.
func (m *LabelledMatrix) CorrelateWith(other *LabelledMatrix) (float64, error) {
	// Stage 1 (Validate): presence, cardinality, completeness.
	if err := validatePair(m, other); err != nil {
		return 0, simmatErrorf(opCorrelateWith, err)
	}
	if m.Dim() < minCorrelationConditions {
		return 0, simmatErrorf(opCorrelateWith, ErrUndefinedCorrelation)
	}
	if err := validateNoMissing(m); err != nil {
		return 0, simmatErrorf(opCorrelateWith, err)
	}
	if err := validateNoMissing(other); err != nil {
		return 0, simmatErrorf(opCorrelateWith, err)
	}

	// Stage 2 (Vectorize): strict upper triangles, fixed order.
	x := m.Condensed()
	y := other.Condensed()

	// Stage 3 (Guard): Pearson is undefined for zero-variance vectors.
	if !hasVariance(x) || !hasVariance(y) {
		return 0, simmatErrorf(opCorrelateWith, ErrUndefinedCorrelation)
	}

	// Stage 3 (Execute): unweighted Pearson correlation.
	return stat.Correlation(x, y, nil), nil
}

// hasVariance reports whether v contains at least two distinct values.
// Complexity: O(n), short-circuits on the first difference.
func hasVariance(v []float64) bool {
	for i := 1; i < len(v); i++ {
		if v[i] != v[0] {
			return true
		}
	}

	return false
}
