// SPDX-License-Identifier: MIT
// Package: norms
//
// Purpose:
//   - POSTable: word → part-of-speech precedence lists from elexicon-style
//     exports ("nn|vb" token lists), mapped to the predictors word classes.
//
// Conventions:
//   - Tokens are lowercased before matching (nn→Noun, vb→Verb, jj→Adjective,
//     rb→Adverb); unmapped tokens are skipped, precedence order is kept.
//   - POSFor is total: unknown words and empty lists yield AnyPOS, which
//     downstream sense lookups treat as "no restriction".

package norms

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/lvlsim/predictors"
)

// Operation name constant for unified error wrapping.
const opReadPOSTable = "ReadPOSTable"

// Elexicon header column names.
const (
	posWordColumn = "Word"
	posTagColumn  = "POS"
)

// posTokens maps elexicon POS tokens to word classes.
var posTokens = map[string]predictors.PartOfSpeech{
	"nn": predictors.Noun,
	"vb": predictors.Verb,
	"jj": predictors.Adjective,
	"rb": predictors.Adverb,
}

// POSTable holds per-word part-of-speech precedence lists. Construct with
// ReadPOSTable; the zero value is not usable.
type POSTable struct {
	byWord map[string][]predictors.PartOfSpeech
}

// ReadPOSTable reads an elexicon-style table with Word and POS columns (tab
// delimited in the published exports; set TableOptions.Comma to '\t'). With
// a header the two columns are located by name; without one, fields 0 and 1
// are used.
//
// Errors: ErrNilReader, ErrEmptyTable, ErrBadHeader, ErrBadRecord,
// ErrEmptyWord, ErrDuplicateWord.
func ReadPOSTable(r io.Reader, o TableOptions) (*POSTable, error) {
	if r == nil {
		return nil, normsErrorf(opReadPOSTable, ErrNilReader)
	}

	records, err := newCSVReader(r, o).ReadAll()
	if err != nil {
		return nil, normsErrorf(opReadPOSTable, err)
	}

	wordCol, tagCol := 0, 1
	if o.HasHeader {
		if len(records) == 0 {
			return nil, normsErrorf(opReadPOSTable, ErrEmptyTable)
		}
		wordCol, tagCol = -1, -1
		for i, name := range records[0] {
			switch name {
			case posWordColumn:
				wordCol = i
			case posTagColumn:
				tagCol = i
			}
		}
		if wordCol < 0 || tagCol < 0 {
			return nil, normsErrorf(opReadPOSTable,
				fmt.Errorf("want columns %q and %q: %w", posWordColumn, posTagColumn, ErrBadHeader))
		}
		records = records[1:]
	}
	if len(records) == 0 {
		return nil, normsErrorf(opReadPOSTable, ErrEmptyTable)
	}

	table := &POSTable{byWord: make(map[string][]predictors.PartOfSpeech, len(records))}
	for i, rec := range records {
		if wordCol >= len(rec) || tagCol >= len(rec) {
			return nil, normsErrorf(opReadPOSTable,
				fmt.Errorf("row %d has %d fields: %w", i+1, len(rec), ErrBadRecord))
		}
		word := rec[wordCol]
		if word == "" {
			return nil, normsErrorf(opReadPOSTable, fmt.Errorf("row %d: %w", i+1, ErrEmptyWord))
		}
		if _, dup := table.byWord[word]; dup {
			return nil, normsErrorf(opReadPOSTable, fmt.Errorf("word %q: %w", word, ErrDuplicateWord))
		}
		table.byWord[word] = parsePOSList(rec[tagCol])
	}

	return table, nil
}

// parsePOSList maps a "nn|vb" token list to word classes, skipping unmapped
// tokens and keeping precedence order.
func parsePOSList(cell string) []predictors.PartOfSpeech {
	var out []predictors.PartOfSpeech
	for _, token := range strings.Split(cell, "|") {
		if pos, ok := posTokens[strings.ToLower(strings.TrimSpace(token))]; ok {
			out = append(out, pos)
		}
	}

	return out
}

// Len returns the number of words in the table.
func (p *POSTable) Len() int { return len(p.byWord) }

// POSFor returns the word's highest-precedence word class, or AnyPOS when
// the word is unknown or none of its tokens mapped.
func (p *POSTable) POSFor(word string) predictors.PartOfSpeech {
	if list := p.byWord[word]; len(list) > 0 {
		return list[0]
	}

	return predictors.AnyPOS
}

// AllPOSFor returns the word's full precedence list as a copy, nil for
// unknown words.
func (p *POSTable) AllPOSFor(word string) []predictors.PartOfSpeech {
	list := p.byWord[word]
	if list == nil {
		return nil
	}

	out := make([]predictors.PartOfSpeech, len(list))
	copy(out, list)

	return out
}
