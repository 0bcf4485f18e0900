// SPDX-License-Identifier: MIT
// Package predictors: shared domain types for word-data sources and builders.

package predictors

import "strings"

// Operation name constant for unified error wrapping.
const opParseDistanceType = "ParseDistanceType"

// PartOfSpeech restricts a lexical lookup to one word class. The values are
// the conventional single-letter taxonomy tags. The zero value AnyPOS means
// no restriction: sources consider every sense of the word.
type PartOfSpeech string

const (
	// AnyPOS places no part-of-speech restriction on the lookup.
	AnyPOS PartOfSpeech = ""

	// Noun restricts the lookup to noun senses.
	Noun PartOfSpeech = "n"

	// Verb restricts the lookup to verb senses.
	Verb PartOfSpeech = "v"

	// Adjective restricts the lookup to adjective senses.
	Adjective PartOfSpeech = "a"

	// Adverb restricts the lookup to adverb senses.
	Adverb PartOfSpeech = "r"
)

// DistanceType selects the vector distance kernel.
//
//   - Cosine:      1 - cos(u, v). Scale-invariant; undefined for zero vectors.
//   - Correlation: 1 - Pearson(u, v). Shift- and scale-invariant; undefined
//     for constant vectors.
//   - Euclidean:   L2 norm of u-v.
//   - Minkowski3:  L3 norm of u-v (the sensorimotor-norms convention).
type DistanceType int

const (
	// Cosine distance: 1 - dot(u,v)/(|u|·|v|).
	Cosine DistanceType = iota

	// Correlation distance: 1 - Pearson correlation of u and v.
	Correlation

	// Euclidean distance: sum(|u-v|²)^(1/2).
	Euclidean

	// Minkowski3 distance: sum(|u-v|³)^(1/3).
	Minkowski3
)

// distanceNames maps each DistanceType to its canonical name.
var distanceNames = map[DistanceType]string{
	Cosine:      "cosine",
	Correlation: "correlation",
	Euclidean:   "Euclidean",
	Minkowski3:  "Minkowski3",
}

// String returns the canonical name of the distance type, or "unknown" for
// values outside the enum.
func (t DistanceType) String() string {
	if name, ok := distanceNames[t]; ok {
		return name
	}

	return "unknown"
}

// valid reports whether t is a member of the enum.
func (t DistanceType) valid() bool {
	_, ok := distanceNames[t]

	return ok
}

// ParseDistanceType resolves a case-insensitive distance name ("cosine",
// "correlation", "euclidean", "minkowski3") to its DistanceType.
//
// Errors: ErrUnknownDistance.
func ParseDistanceType(name string) (DistanceType, error) {
	folded := strings.ToLower(strings.TrimSpace(name))
	for t, canonical := range distanceNames {
		if strings.ToLower(canonical) == folded {
			return t, nil
		}
	}

	return 0, predictorsErrorf(opParseDistanceType, ErrUnknownDistance)
}
