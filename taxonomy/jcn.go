// SPDX-License-Identifier: MIT
// Package: taxonomy
//
// Purpose:
//   - Jiang-Conrath (JCN) semantic distance over the IS-A hierarchy, at
//     synset and at word level, following the Maki et al. (2004) convention:
//     distance form (not similarity), word distance as the minimum over all
//     sense pairs, distances at or beyond 1000 treated as incomparable.
//
// Determinism & Performance:
//   - Sense scans follow registration order; subsumer-set intersection takes
//     a maximum, which is iteration-order independent. Word distance is
//     O(s1·s2·A) for sense counts s1, s2 and ancestor sets of size A.

package taxonomy

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvlsim/predictors"
)

// Compile-time interface checks: a fully built Taxonomy plugs into the
// matrix builders as an association source with a vocabulary.
var (
	_ predictors.AssociationSource = (*Taxonomy)(nil)
	_ predictors.Vocabulary        = (*Taxonomy)(nil)
)

// MaxJCNDistance is the comparability cap of Maki et al. (2004): word pairs
// whose minimum JCN distance reaches it are reported as not in vocabulary
// rather than given a value.
const MaxJCNDistance = 1000.0

// Operation name constants for unified error wrapping.
const (
	opSynsetDistance = "SynsetDistance"
	opWordDistance   = "WordDistance"
)

// SynsetDistance returns the Jiang-Conrath distance between two synsets:
//
//	dist(s1, s2) = IC(s1) + IC(s2) - 2·IC(mics)
//
// where mics is the most informative common subsumer, the shared ancestor
// (either synset included) with the highest information content. Identical
// synsets are at distance 0.
//
// Errors: ErrUnknownSynset, ErrIncomparableSynsets.
// Complexity: O(A) for ancestor sets of size A.
func (t *Taxonomy) SynsetDistance(id1, id2 string) (float64, error) {
	s1, ok := t.synsets[id1]
	if !ok {
		return 0, taxonomyErrorf(opSynsetDistance, fmt.Errorf("synset %q: %w", id1, ErrUnknownSynset))
	}
	s2, ok := t.synsets[id2]
	if !ok {
		return 0, taxonomyErrorf(opSynsetDistance, fmt.Errorf("synset %q: %w", id2, ErrUnknownSynset))
	}

	sub1 := t.subsumerIC(id1)
	sub2 := t.subsumerIC(id2)

	micsIC := math.Inf(-1)
	for id, ic := range sub1 {
		if _, shared := sub2[id]; shared && ic > micsIC {
			micsIC = ic
		}
	}
	if math.IsInf(micsIC, -1) {
		return 0, taxonomyErrorf(opSynsetDistance,
			fmt.Errorf("synsets %q and %q: %w", id1, id2, ErrIncomparableSynsets))
	}

	return s1.ic + s2.ic - 2*micsIC, nil
}

// WordDistance returns the Jiang-Conrath distance between two words: the
// minimum SynsetDistance over every pair of their senses.
// Implementation:
//   - Stage 1 (Resolve): collect each word's senses, filtered by its part of
//     speech (AnyPOS considers every sense).
//   - Stage 2 (Scan): minimum distance over the sense-pair grid; sense pairs
//     without a common subsumer are skipped, not fatal.
//   - Stage 3 (Cap): a minimum at or beyond MaxJCNDistance, including the
//     no-comparable-pair case, is reported as a vocabulary gap.
//
// Behavior highlights:
//   - Every "no distance" outcome (unknown word, senses filtered away by
//     pos, no comparable sense pair, cap reached) wraps
//     predictors.ErrNotInVocabulary, so matrix builders degrade the entry
//     to NaN and carry on.
//   - The part of speech filters each word independently; a noun sense of
//     one word may pair with a verb sense of the other under AnyPOS.
//
// Inputs:
//   - word1, word2: the words to compare.
//   - pos1, pos2: per-word sense filters (AnyPOS for none).
//
// Returns:
//   - the minimum JCN distance, strictly below MaxJCNDistance.
//
// Errors: wrapped predictors.ErrNotInVocabulary.
// Determinism: registration-order scans; output depends only on taxonomy
// contents.
func (t *Taxonomy) WordDistance(word1 string, pos1 predictors.PartOfSpeech, word2 string, pos2 predictors.PartOfSpeech) (float64, error) {
	// Stage 1 (Resolve).
	senses1 := t.sensesFor(word1, pos1)
	if len(senses1) == 0 {
		return 0, taxonomyErrorf(opWordDistance,
			fmt.Errorf("word %q has no matching senses: %w", word1, predictors.ErrNotInVocabulary))
	}
	senses2 := t.sensesFor(word2, pos2)
	if len(senses2) == 0 {
		return 0, taxonomyErrorf(opWordDistance,
			fmt.Errorf("word %q has no matching senses: %w", word2, predictors.ErrNotInVocabulary))
	}

	// Stage 2 (Scan).
	minDist := math.Inf(1)
	for _, id1 := range senses1 {
		for _, id2 := range senses2 {
			d, err := t.SynsetDistance(id1, id2)
			if errors.Is(err, ErrIncomparableSynsets) {
				continue
			}
			if err != nil {
				return 0, taxonomyErrorf(opWordDistance, err)
			}
			if d < minDist {
				minDist = d
			}
		}
	}

	// Stage 3 (Cap): covers the all-pairs-incomparable case (minDist = +Inf).
	if minDist >= MaxJCNDistance {
		return 0, taxonomyErrorf(opWordDistance,
			fmt.Errorf("pair (%q,%q) has no distance below the cap: %w",
				word1, word2, predictors.ErrNotInVocabulary))
	}

	return minDist, nil
}

// AssociationBetween implements predictors.AssociationSource with the JCN
// word distance. Note the distance orientation: larger means less related,
// the Maki et al. (2004) convention carried through raw by
// BuildAssociationSimilarity.
func (t *Taxonomy) AssociationBetween(word1 string, pos1 predictors.PartOfSpeech, word2 string, pos2 predictors.PartOfSpeech) (float64, error) {
	return t.WordDistance(word1, pos1, word2, pos2)
}
