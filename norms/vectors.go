// SPDX-License-Identifier: MIT
// Package: norms
//
// Purpose:
//   - VectorTable: an immutable word → feature-vector table (sensorimotor
//     norms, embedding exports) implementing the predictors source
//     contracts: VectorSource, MatrixSource and Vocabulary.
//
// Conventions:
//   - Row order is word order; lookups go through an index map, O(1).
//   - Accessors return copies; the backing matrix is never aliased out.

package norms

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlsim/predictors"
)

// Compile-time interface checks against the predictors contracts.
var (
	_ predictors.VectorSource = (*VectorTable)(nil)
	_ predictors.MatrixSource = (*VectorTable)(nil)
	_ predictors.Vocabulary   = (*VectorTable)(nil)
)

// Operation name constants for unified error wrapping.
const (
	opNewVectorTable = "NewVectorTable"
	opVectorForWord  = "VectorForWord"
	opMatrixForWords = "MatrixForWords"
)

// VectorTable holds one feature vector per word. Construct with
// NewVectorTable or ReadVectorTable; the zero value is not usable.
type VectorTable struct {
	words []string
	index map[string]int
	data  *mat.Dense // len(words)×d, row i belongs to words[i]
}

// NewVectorTable builds a table over a row-per-word data matrix. The matrix
// is used as given (not copied); callers must not mutate it afterwards.
//
// Errors: ErrNilMatrix, ErrEmptyTable, ErrDimensionMismatch, ErrEmptyWord,
// ErrDuplicateWord.
func NewVectorTable(words []string, data *mat.Dense) (*VectorTable, error) {
	if data == nil {
		return nil, normsErrorf(opNewVectorTable, ErrNilMatrix)
	}
	if len(words) == 0 {
		return nil, normsErrorf(opNewVectorTable, ErrEmptyTable)
	}

	rows, _ := data.Dims()
	if rows != len(words) {
		return nil, normsErrorf(opNewVectorTable,
			fmt.Errorf("%d words, %d rows: %w", len(words), rows, ErrDimensionMismatch))
	}

	index := make(map[string]int, len(words))
	for i, w := range words {
		if w == "" {
			return nil, normsErrorf(opNewVectorTable, ErrEmptyWord)
		}
		if _, dup := index[w]; dup {
			return nil, normsErrorf(opNewVectorTable, fmt.Errorf("word %q: %w", w, ErrDuplicateWord))
		}
		index[w] = i
	}

	owned := make([]string, len(words))
	copy(owned, words)

	return &VectorTable{words: owned, index: index, data: data}, nil
}

// Words returns the table's vocabulary in row order.
func (t *VectorTable) Words() []string {
	out := make([]string, len(t.words))
	copy(out, t.words)

	return out
}

// Dims returns the vocabulary size and the feature dimension.
func (t *VectorTable) Dims() (words, features int) {
	return t.data.Dims()
}

// VectorForWord returns a copy of the word's feature vector.
//
// Errors: wrapped predictors.ErrNotInVocabulary for unknown words.
func (t *VectorTable) VectorForWord(word string) ([]float64, error) {
	i, ok := t.index[word]
	if !ok {
		return nil, normsErrorf(opVectorForWord,
			fmt.Errorf("word %q: %w", word, predictors.ErrNotInVocabulary))
	}

	_, d := t.data.Dims()
	out := make([]float64, d)
	copy(out, t.data.RawRowView(i))

	return out, nil
}

// MatrixForWords returns a new row-per-word matrix for the requested words,
// in the requested order. The call is all-or-nothing: any unknown word fails
// it; partial matrices are never returned.
//
// Errors: ErrNoWords; wrapped predictors.ErrNotInVocabulary.
func (t *VectorTable) MatrixForWords(words []string) (*mat.Dense, error) {
	if len(words) == 0 {
		return nil, normsErrorf(opMatrixForWords, ErrNoWords)
	}

	_, d := t.data.Dims()
	out := mat.NewDense(len(words), d, nil)
	for i, w := range words {
		j, ok := t.index[w]
		if !ok {
			return nil, normsErrorf(opMatrixForWords,
				fmt.Errorf("word %q: %w", w, predictors.ErrNotInVocabulary))
		}
		out.SetRow(i, t.data.RawRowView(j))
	}

	return out, nil
}
