// SPDX-License-Identifier: MIT
// Package: predictors
//
// Purpose:
//   - Record which words and word pairs a builder could not resolve, so a
//     batch run can finish on partial data and report the gaps at the end
//     instead of aborting on the first unknown word.

package predictors

import "fmt"

// WordPair is an unordered pair of condition words, stored in builder word
// order (first index before second).
type WordPair struct {
	A, B string
}

// Report collects the vocabulary gaps of one builder run. Entries the report
// names carry NaN in the built matrix; narrow with CompleteLabels before
// correlating.
type Report struct {
	missingWords []string
	missingPairs []WordPair
	seenWords    map[string]bool
}

// newReport returns an empty gap report.
func newReport() *Report {
	return &Report{seenWords: make(map[string]bool)}
}

// addWord records a word absent from the source vocabulary. Duplicates are
// collapsed; first-seen order is kept.
func (r *Report) addWord(w string) {
	if r.seenWords[w] {
		return
	}
	r.seenWords[w] = true
	r.missingWords = append(r.missingWords, w)
}

// addPair records a word pair the source had no entry for.
func (r *Report) addPair(a, b string) {
	r.missingPairs = append(r.missingPairs, WordPair{A: a, B: b})
}

// Complete reports whether the build resolved every word and pair.
func (r *Report) Complete() bool {
	return len(r.missingWords) == 0 && len(r.missingPairs) == 0
}

// MissingWords returns the words absent from the source vocabulary, in
// first-encountered order. The matrix rows and columns of these words are
// entirely NaN (except where another value was resolvable).
func (r *Report) MissingWords() []string {
	out := make([]string, len(r.missingWords))
	copy(out, r.missingWords)

	return out
}

// MissingPairs returns the word pairs without a source entry, in encounter
// order.
func (r *Report) MissingPairs() []WordPair {
	out := make([]WordPair, len(r.missingPairs))
	copy(out, r.missingPairs)

	return out
}

// String summarizes the report for batch logs.
func (r *Report) String() string {
	if r.Complete() {
		return "complete"
	}

	return fmt.Sprintf("%d missing word(s), %d missing pair(s)",
		len(r.missingWords), len(r.missingPairs))
}
