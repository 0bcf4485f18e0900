// SPDX-License-Identifier: MIT

// Tests for the matrix builders: gap degradation to NaN + Report, forced
// diagonals, abort-on-failure, and the narrow-then-correlate flow.

package predictors_test

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlsim/predictors"
)

// pairTable is a DistanceSource backed by an unordered-pair map. Absent
// pairs fail with ErrNotInVocabulary, the way a norms table behaves for
// pairs it never collected.
type pairTable map[[2]string]float64

func (p pairTable) DistanceBetween(a, b string) (float64, error) {
	if v, ok := p[[2]string{a, b}]; ok {
		return v, nil
	}
	if v, ok := p[[2]string{b, a}]; ok {
		return v, nil
	}

	return 0, fmt.Errorf("pair (%q,%q): %w", a, b, predictors.ErrNotInVocabulary)
}

// errTableDown simulates a non-vocabulary source failure.
var errTableDown = errors.New("table storage offline")

// failPairs is a DistanceSource whose every lookup fails hard.
type failPairs struct{}

func (failPairs) DistanceBetween(_, _ string) (float64, error) { return 0, errTableDown }

// assocTable is an AssociationSource over ordered-pair keys that records the
// part of speech of every lookup.
type assocTable struct {
	values map[[2]string]float64
	gotPOS []predictors.PartOfSpeech
}

func (a *assocTable) AssociationBetween(w1 string, pos1 predictors.PartOfSpeech, w2 string, pos2 predictors.PartOfSpeech) (float64, error) {
	a.gotPOS = append(a.gotPOS, pos1, pos2)
	if v, ok := a.values[[2]string{w1, w2}]; ok {
		return v, nil
	}

	return 0, fmt.Errorf("pair (%q,%q): %w", w1, w2, predictors.ErrNotInVocabulary)
}

// vecTable is a VectorSource backed by a word→vector map.
type vecTable map[string][]float64

func (t vecTable) VectorForWord(w string) ([]float64, error) {
	if v, ok := t[w]; ok {
		return v, nil
	}

	return nil, fmt.Errorf("word %q: %w", w, predictors.ErrNotInVocabulary)
}

// vocabList is a Vocabulary over a fixed word slice.
type vocabList []string

func (v vocabList) Words() []string { return v }

// TestBuildPairwiseSimilarity_CompleteTable checks entry placement, mirrored
// triangles and the forced unit diagonal when the source covers every pair.
func TestBuildPairwiseSimilarity_CompleteTable(t *testing.T) {
	words := []string{"ape", "bat", "cow"}
	src := pairTable{
		{"ape", "bat"}: 0.5,
		{"ape", "cow"}: 0.25,
		{"bat", "cow"}: 0.75,
	}

	sm, report, err := predictors.BuildPairwiseSimilarity(src, words)
	require.NoError(t, err)

	assert.True(t, report.Complete())
	assert.Equal(t, "complete", report.String())
	assert.Equal(t, words, sm.Labels())

	assert.Equal(t, 0.5, sm.At(0, 1))
	assert.Equal(t, 0.25, sm.At(0, 2))
	assert.Equal(t, 0.75, sm.At(1, 2))
	assert.Equal(t, 0.25, sm.At(2, 0), "mirrored lower triangle")
	for i := 0; i < 3; i++ {
		assert.Equal(t, 1.0, sm.At(i, i), "forced diagonal at %d", i)
	}
}

// TestBuildPairwiseSimilarity_MissingPairDegrades checks that a pair absent
// from the source becomes a reported NaN entry, and that the standard
// CompleteLabels+ForSubset narrowing recovers a NaN-free core.
func TestBuildPairwiseSimilarity_MissingPairDegrades(t *testing.T) {
	words := []string{"ape", "bat", "cow"}
	src := pairTable{
		{"ape", "bat"}: 0.5,
		{"bat", "cow"}: 0.75,
		// (ape, cow) left out.
	}

	sm, report, err := predictors.BuildPairwiseSimilarity(src, words)
	require.NoError(t, err)

	assert.True(t, math.IsNaN(sm.At(0, 2)))
	assert.True(t, math.IsNaN(sm.At(2, 0)))
	assert.False(t, math.IsNaN(sm.At(0, 1)), "covered pairs stay intact")

	assert.False(t, report.Complete())
	assert.Empty(t, report.MissingWords())
	assert.Equal(t, []predictors.WordPair{{A: "ape", B: "cow"}}, report.MissingPairs())
	assert.Equal(t, "0 missing word(s), 1 missing pair(s)", report.String())

	// Narrowing to the complete core drops one side of the hole.
	core := sm.CompleteLabels()
	assert.Equal(t, []string{"bat", "cow"}, core)

	sub, err := sm.ForSubset(core)
	require.NoError(t, err)
	assert.Equal(t, 0.75, sub.At(0, 1))
}

// TestBuildPairwiseSimilarity_SourceNaNPassesThrough checks that a NaN the
// source returns without error is kept as a missing entry with no Report
// line.
func TestBuildPairwiseSimilarity_SourceNaNPassesThrough(t *testing.T) {
	words := []string{"ape", "bat"}
	src := pairTable{{"ape", "bat"}: math.NaN()}

	sm, report, err := predictors.BuildPairwiseSimilarity(src, words)
	require.NoError(t, err)

	assert.True(t, math.IsNaN(sm.At(0, 1)))
	assert.True(t, report.Complete(), "no vocabulary gap to report")
}

// TestBuildPairwiseSimilarity_SourceFailureAborts checks that non-vocabulary
// source errors abort the build instead of degrading.
func TestBuildPairwiseSimilarity_SourceFailureAborts(t *testing.T) {
	sm, report, err := predictors.BuildPairwiseSimilarity(failPairs{}, []string{"ape", "bat"})

	assert.ErrorIs(t, err, errTableDown)
	assert.Nil(t, sm)
	assert.Nil(t, report)
}

// TestBuildPairwiseSimilarity_Validation covers the word-list and source
// checks that run before any lookup.
func TestBuildPairwiseSimilarity_Validation(t *testing.T) {
	_, _, err := predictors.BuildPairwiseSimilarity(nil, []string{"ape"})
	assert.ErrorIs(t, err, predictors.ErrNilSource)

	src := pairTable{}
	_, _, err = predictors.BuildPairwiseSimilarity(src, nil)
	assert.ErrorIs(t, err, predictors.ErrNoWords)

	_, _, err = predictors.BuildPairwiseSimilarity(src, []string{"ape", ""})
	assert.ErrorIs(t, err, predictors.ErrEmptyWord)

	_, _, err = predictors.BuildPairwiseSimilarity(src, []string{"ape", "ape"})
	assert.ErrorIs(t, err, predictors.ErrDuplicateWord)
}

// TestBuildAssociationSimilarity_ForwardsPOS checks value placement and that
// the caller's part of speech reaches the source on both argument slots.
func TestBuildAssociationSimilarity_ForwardsPOS(t *testing.T) {
	words := []string{"run", "walk", "jump"}
	src := &assocTable{values: map[[2]string]float64{
		{"run", "walk"}:  0.9,
		{"run", "jump"}:  0.6,
		{"walk", "jump"}: 0.4,
	}}

	sm, report, err := predictors.BuildAssociationSimilarity(src, words, predictors.Verb)
	require.NoError(t, err)

	assert.True(t, report.Complete())
	assert.Equal(t, 0.9, sm.At(0, 1))
	assert.Equal(t, 0.6, sm.At(0, 2))
	assert.Equal(t, 0.4, sm.At(1, 2))
	assert.Equal(t, 1.0, sm.At(1, 1), "diagonal forced, not looked up")

	require.Len(t, src.gotPOS, 6, "one lookup per unordered pair, two slots each")
	for _, pos := range src.gotPOS {
		assert.Equal(t, predictors.Verb, pos)
	}
}

// TestBuildVectorRDM_EuclideanHandValues checks kernel distances against
// hand-computed values and the kernel-computed zero diagonal.
func TestBuildVectorRDM_EuclideanHandValues(t *testing.T) {
	words := []string{"ape", "bat", "cow"}
	src := vecTable{
		"ape": {0, 0},
		"bat": {3, 4},
		"cow": {3, -4},
	}

	rdm, report, err := predictors.BuildVectorRDM(src, words, predictors.Euclidean)
	require.NoError(t, err)

	assert.True(t, report.Complete())
	assert.Equal(t, words, rdm.Labels())

	assert.Equal(t, 5.0, rdm.At(0, 1))
	assert.Equal(t, 5.0, rdm.At(0, 2))
	assert.Equal(t, 8.0, rdm.At(1, 2))
	for i := 0; i < 3; i++ {
		assert.Equal(t, 0.0, rdm.At(i, i), "self distance at %d", i)
	}
}

// TestBuildVectorRDM_MissingWordPoisonsRowAndColumn checks the
// drop-on-correlate policy: one unknown word NaNs exactly its own row and
// column, is reported, and narrowing recovers the rest.
func TestBuildVectorRDM_MissingWordPoisonsRowAndColumn(t *testing.T) {
	words := []string{"ape", "bat", "cow"}
	src := vecTable{
		"ape": {0, 0},
		"cow": {3, -4},
		// "bat" not in vocabulary.
	}

	rdm, report, err := predictors.BuildVectorRDM(src, words, predictors.Euclidean)
	require.NoError(t, err)

	for j := 0; j < 3; j++ {
		assert.True(t, math.IsNaN(rdm.At(1, j)), "row of the missing word, col %d", j)
		assert.True(t, math.IsNaN(rdm.At(j, 1)), "column of the missing word, row %d", j)
	}
	assert.Equal(t, 5.0, rdm.At(0, 2), "resolved pairs unaffected")

	assert.Equal(t, []string{"bat"}, report.MissingWords())
	assert.Empty(t, report.MissingPairs())
	assert.Equal(t, "1 missing word(s), 0 missing pair(s)", report.String())

	core := rdm.CompleteLabels()
	assert.Equal(t, []string{"ape", "cow"}, core)

	sub, err := rdm.ForSubset(core)
	require.NoError(t, err)
	assert.Equal(t, 5.0, sub.At(0, 1))
}

// TestBuildVectorRDM_DataErrorsAbort checks that kernel failures on resolved
// vectors abort the build rather than degrade.
func TestBuildVectorRDM_DataErrorsAbort(t *testing.T) {
	zeroVec := vecTable{
		"ape": {0, 0},
		"bat": {1, 2},
	}
	_, _, err := predictors.BuildVectorRDM(zeroVec, []string{"ape", "bat"}, predictors.Cosine)
	assert.ErrorIs(t, err, predictors.ErrDegenerateVector)

	ragged := vecTable{
		"ape": {1, 2},
		"bat": {1, 2, 3},
	}
	_, _, err = predictors.BuildVectorRDM(ragged, []string{"ape", "bat"}, predictors.Euclidean)
	assert.ErrorIs(t, err, predictors.ErrDimensionMismatch)
}

// TestBuildVectorRDM_Validation covers the up-front argument checks.
func TestBuildVectorRDM_Validation(t *testing.T) {
	_, _, err := predictors.BuildVectorRDM(nil, []string{"ape"}, predictors.Euclidean)
	assert.ErrorIs(t, err, predictors.ErrNilSource)

	src := vecTable{}
	_, _, err = predictors.BuildVectorRDM(src, []string{"ape"}, predictors.DistanceType(99))
	assert.ErrorIs(t, err, predictors.ErrUnknownDistance)

	_, _, err = predictors.BuildVectorRDM(src, []string{"ape", "ape"}, predictors.Euclidean)
	assert.ErrorIs(t, err, predictors.ErrDuplicateWord)
}

// TestIntersection checks that order and duplicates follow the primary list
// and that every other vocabulary must cover a surviving word.
func TestIntersection(t *testing.T) {
	primary := []string{"ape", "bat", "cow", "doe"}

	got := predictors.Intersection(primary, vocabList{"doe", "cow", "bat"}, vocabList{"bat", "doe", "elk"})
	assert.Equal(t, []string{"bat", "doe"}, got)

	assert.Equal(t, primary, predictors.Intersection(primary), "no vocabularies keeps everything")

	assert.Equal(t, []string{"bat", "bat"},
		predictors.Intersection([]string{"bat", "bat"}, vocabList{"bat"}),
		"duplicates in primary are preserved")
}
