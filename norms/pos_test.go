// SPDX-License-Identifier: MIT

// Tests for POSTable: token mapping, precedence, header column discovery,
// and the total POSFor contract.

package norms_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlsim/norms"
	"github.com/katalvlaran/lvlsim/predictors"
)

// tabOptions is the elexicon export shape.
var tabOptions = norms.TableOptions{Comma: '\t', HasHeader: true}

// TestReadPOSTable checks token mapping, precedence order and the AnyPOS
// fallbacks.
func TestReadPOSTable(t *testing.T) {
	fixture := "Word\tPOS\n" +
		"run\tvb|nn\n" +
		"cat\tnn\n" +
		"old\tJJ|RB\n" +
		"xyz\tzz\n"

	table, err := norms.ReadPOSTable(strings.NewReader(fixture), tabOptions)
	require.NoError(t, err)

	assert.Equal(t, 4, table.Len())
	assert.Equal(t, predictors.Verb, table.POSFor("run"), "precedence: first token wins")
	assert.Equal(t, []predictors.PartOfSpeech{predictors.Verb, predictors.Noun}, table.AllPOSFor("run"))
	assert.Equal(t, predictors.Noun, table.POSFor("cat"))
	assert.Equal(t, predictors.Adjective, table.POSFor("old"), "tokens are lowercased")

	assert.Equal(t, predictors.AnyPOS, table.POSFor("xyz"), "no token mapped")
	assert.Equal(t, predictors.AnyPOS, table.POSFor("ghost"), "unknown word")
	assert.Nil(t, table.AllPOSFor("ghost"))
}

// TestReadPOSTable_ColumnDiscovery checks that the Word and POS columns are
// located by name, whatever their position.
func TestReadPOSTable_ColumnDiscovery(t *testing.T) {
	fixture := "Freq\tPOS\tWord\n" +
		"10\tnn\tcat\n"

	table, err := norms.ReadPOSTable(strings.NewReader(fixture), tabOptions)
	require.NoError(t, err)
	assert.Equal(t, predictors.Noun, table.POSFor("cat"))
}

// TestReadPOSTable_Headerless checks the fixed 0/1 column layout.
func TestReadPOSTable_Headerless(t *testing.T) {
	table, err := norms.ReadPOSTable(
		strings.NewReader("cat\tnn\nrun\tvb\n"),
		norms.TableOptions{Comma: '\t', HasHeader: false},
	)
	require.NoError(t, err)
	assert.Equal(t, predictors.Noun, table.POSFor("cat"))
	assert.Equal(t, predictors.Verb, table.POSFor("run"))
}

// TestReadPOSTable_Errors covers the reader's error surface.
func TestReadPOSTable_Errors(t *testing.T) {
	_, err := norms.ReadPOSTable(nil, tabOptions)
	assert.ErrorIs(t, err, norms.ErrNilReader)

	_, err = norms.ReadPOSTable(strings.NewReader(""), tabOptions)
	assert.ErrorIs(t, err, norms.ErrEmptyTable)

	_, err = norms.ReadPOSTable(strings.NewReader("Word\tPOS\n"), tabOptions)
	assert.ErrorIs(t, err, norms.ErrEmptyTable, "header only")

	_, err = norms.ReadPOSTable(strings.NewReader("Word\tTag\ncat\tnn\n"), tabOptions)
	assert.ErrorIs(t, err, norms.ErrBadHeader)

	_, err = norms.ReadPOSTable(strings.NewReader("Word\tPOS\n\tnn\n"), tabOptions)
	assert.ErrorIs(t, err, norms.ErrEmptyWord)

	_, err = norms.ReadPOSTable(strings.NewReader("Word\tPOS\ncat\tnn\ncat\tvb\n"), tabOptions)
	assert.ErrorIs(t, err, norms.ErrDuplicateWord)
}
