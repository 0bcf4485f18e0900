// SPDX-License-Identifier: MIT
// Package: norms
//
// Purpose:
//   - Line-per-word list reader, the companion shape to ReadMatrix for
//     embedding exports that keep labels and values in separate files, and
//     the usual shape for condition-subset files.

package norms

import (
	"bufio"
	"io"
	"strings"
)

// opReadWordList is the operation name for unified error wrapping.
const opReadWordList = "ReadWordList"

// ReadWordList reads one word per line, trimming surrounding white space and
// skipping blank lines. Duplicates pass through untouched; the consumers
// (NewVectorTable, the labelled-matrix constructors) reject them with
// position context.
//
// Errors: ErrNilReader, ErrNoWords, plus any underlying read error.
func ReadWordList(r io.Reader) ([]string, error) {
	if r == nil {
		return nil, normsErrorf(opReadWordList, ErrNilReader)
	}

	var words []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := strings.TrimSpace(sc.Text())
		if w == "" {
			continue
		}
		words = append(words, w)
	}
	if err := sc.Err(); err != nil {
		return nil, normsErrorf(opReadWordList, err)
	}
	if len(words) == 0 {
		return nil, normsErrorf(opReadWordList, ErrNoWords)
	}

	return words, nil
}
