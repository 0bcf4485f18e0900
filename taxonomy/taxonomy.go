// SPDX-License-Identifier: MIT
// Package: taxonomy
//
// Purpose:
//   - Hold an in-memory IS-A hierarchy of synsets with precomputed
//     information content, plus the word → sense mapping, as the substrate
//     for Jiang-Conrath distances (jcn.go).
//
// Conventions:
//   - Synsets are registered before the edges and senses that reference
//     them; dangling references are construction errors, never deferred.
//   - Multiple inheritance is allowed (a synset may have several parents);
//     re-adding an existing IS-A edge is a no-op.
//   - Sense order per word is registration order, which makes word-level
//     minimum-distance scans deterministic.

package taxonomy

import (
	"fmt"

	"github.com/katalvlaran/lvlsim/predictors"
)

// Operation name constants for unified error wrapping.
const (
	opAddSynset = "AddSynset"
	opAddIsA    = "AddIsA"
	opAddSense  = "AddSense"
	opIC        = "IC"
)

// synset is one taxonomy node: its information content and its direct
// hypernyms.
type synset struct {
	ic      float64
	parents []string
}

// sense binds one word class realization of a word to a synset.
type sense struct {
	pos predictors.PartOfSpeech
	id  string
}

// Taxonomy is an in-memory IS-A hierarchy with information content and a
// word-sense index. The zero value is not usable; construct with New.
// Taxonomy is not safe for concurrent mutation; build it fully, then share
// it for reads.
type Taxonomy struct {
	synsets map[string]*synset
	senses  map[string][]sense
	words   []string // distinct words in first-registration order
}

// New returns an empty taxonomy.
func New() *Taxonomy {
	return &Taxonomy{
		synsets: make(map[string]*synset),
		senses:  make(map[string][]sense),
	}
}

// AddSynset registers a synset with its information content.
//
// Errors: ErrEmptySynsetID, ErrNegativeIC, ErrDuplicateSynset.
func (t *Taxonomy) AddSynset(id string, ic float64) error {
	if id == "" {
		return taxonomyErrorf(opAddSynset, ErrEmptySynsetID)
	}
	if ic < 0 {
		return taxonomyErrorf(opAddSynset, fmt.Errorf("synset %q: %w", id, ErrNegativeIC))
	}
	if _, ok := t.synsets[id]; ok {
		return taxonomyErrorf(opAddSynset, fmt.Errorf("synset %q: %w", id, ErrDuplicateSynset))
	}

	t.synsets[id] = &synset{ic: ic}

	return nil
}

// AddIsA records that child IS-A parent (parent is a direct hypernym of
// child). Both synsets must already be registered. Re-adding an existing
// edge is a no-op.
//
// Errors: ErrUnknownSynset, ErrSelfSubsumption.
func (t *Taxonomy) AddIsA(child, parent string) error {
	node, ok := t.synsets[child]
	if !ok {
		return taxonomyErrorf(opAddIsA, fmt.Errorf("child %q: %w", child, ErrUnknownSynset))
	}
	if _, ok = t.synsets[parent]; !ok {
		return taxonomyErrorf(opAddIsA, fmt.Errorf("parent %q: %w", parent, ErrUnknownSynset))
	}
	if child == parent {
		return taxonomyErrorf(opAddIsA, fmt.Errorf("synset %q: %w", child, ErrSelfSubsumption))
	}

	for _, p := range node.parents {
		if p == parent {
			return nil // edge already present
		}
	}
	node.parents = append(node.parents, parent)

	return nil
}

// AddSense registers that word, used as the given part of speech, denotes
// the synset. The part of speech must be concrete (Noun, Verb, Adjective or
// Adverb); AnyPOS is reserved for queries.
//
// Errors: ErrEmptyWord, ErrSensePOS, ErrUnknownSynset, ErrDuplicateSense.
func (t *Taxonomy) AddSense(word string, pos predictors.PartOfSpeech, id string) error {
	if word == "" {
		return taxonomyErrorf(opAddSense, ErrEmptyWord)
	}
	switch pos {
	case predictors.Noun, predictors.Verb, predictors.Adjective, predictors.Adverb:
	default:
		return taxonomyErrorf(opAddSense, fmt.Errorf("word %q: %w", word, ErrSensePOS))
	}
	if _, ok := t.synsets[id]; !ok {
		return taxonomyErrorf(opAddSense, fmt.Errorf("synset %q: %w", id, ErrUnknownSynset))
	}

	existing, known := t.senses[word]
	for _, s := range existing {
		if s.pos == pos && s.id == id {
			return taxonomyErrorf(opAddSense,
				fmt.Errorf("word %q synset %q: %w", word, id, ErrDuplicateSense))
		}
	}
	if !known {
		t.words = append(t.words, word)
	}
	t.senses[word] = append(existing, sense{pos: pos, id: id})

	return nil
}

// HasSynset reports whether the synset id is registered.
func (t *Taxonomy) HasSynset(id string) bool {
	_, ok := t.synsets[id]

	return ok
}

// IC returns the information content of a registered synset.
//
// Errors: ErrUnknownSynset.
func (t *Taxonomy) IC(id string) (float64, error) {
	node, ok := t.synsets[id]
	if !ok {
		return 0, taxonomyErrorf(opIC, fmt.Errorf("synset %q: %w", id, ErrUnknownSynset))
	}

	return node.ic, nil
}

// Words returns every word with at least one registered sense, in
// first-registration order. Together with the word-level distance lookup
// this makes Taxonomy a predictors.Vocabulary.
func (t *Taxonomy) Words() []string {
	out := make([]string, len(t.words))
	copy(out, t.words)

	return out
}

// sensesFor returns the synset ids of word's senses matching pos, in
// registration order. AnyPOS matches every sense.
func (t *Taxonomy) sensesFor(word string, pos predictors.PartOfSpeech) []string {
	var out []string
	for _, s := range t.senses[word] {
		if pos == predictors.AnyPOS || s.pos == pos {
			out = append(out, s.id)
		}
	}

	return out
}

// subsumerIC walks the IS-A edges upward from id (breadth-first, cycle
// tolerant) and returns every subsumer's information content, the synset
// itself included.
func (t *Taxonomy) subsumerIC(id string) map[string]float64 {
	out := make(map[string]float64)
	queue := []string{id}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if _, seen := out[cur]; seen {
			continue
		}
		node := t.synsets[cur]
		out[cur] = node.ic
		queue = append(queue, node.parents...)
	}

	return out
}
