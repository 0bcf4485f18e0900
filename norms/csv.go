// SPDX-License-Identifier: MIT
// Package: norms
//
// Purpose:
//   - CSV/TSV readers for the table shapes the predictors consume: a
//     row-per-word vector table, a pair-value list, a square labelled grid
//     (header row + index column), and a headerless numeric grid.
//
// Conventions:
//   - Cells "" and "NA" parse to NaN (the R/pandas missing marker); every
//     other cell must satisfy strconv.ParseFloat, which also accepts a
//     literal "NaN".
//   - encoding/csv enforces a consistent field count after the first record;
//     shape errors beyond that surface as norms sentinels with row context.

package norms

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"

	"gonum.org/v1/gonum/mat"
)

// naString is the missing-value marker (R / pandas convention).
const naString = "NA"

// Operation name constants for unified error wrapping.
const (
	opReadVectorTable = "ReadVectorTable"
	opReadPairTable   = "ReadPairTable"
	opReadLabelledCSV = "ReadLabelledCSV"
	opReadMatrix      = "ReadMatrix"
)

// TableOptions configures the CSV readers.
type TableOptions struct {
	// Comma is the field delimiter. Zero means ','; use '\t' for tab
	// exports.
	Comma rune

	// HasHeader marks the first record as a header: the vector and pair
	// readers skip it, the POS reader locates its columns in it. The
	// labelled-grid reader always consumes a label header and ignores this
	// flag.
	HasHeader bool
}

// DefaultTableOptions returns the usual shape: comma delimited with a header
// row.
func DefaultTableOptions() TableOptions {
	return TableOptions{Comma: ',', HasHeader: true}
}

// newCSVReader builds the configured encoding/csv reader. TrimLeadingSpace
// stays off: with a tab delimiter it would swallow empty fields (tabs are
// white space to the csv package).
func newCSVReader(r io.Reader, o TableOptions) *csv.Reader {
	cr := csv.NewReader(r)
	if o.Comma != 0 {
		cr.Comma = o.Comma
	}

	return cr
}

// parseCell converts one cell to a float64, with "" and "NA" as NaN.
func parseCell(cell string) (float64, error) {
	if cell == "" || cell == naString {
		return math.NaN(), nil
	}

	return strconv.ParseFloat(cell, 64)
}

// readRecords pulls every record, dropping the header row when configured.
func readRecords(op string, r io.Reader, o TableOptions) ([][]string, error) {
	if r == nil {
		return nil, normsErrorf(op, ErrNilReader)
	}

	records, err := newCSVReader(r, o).ReadAll()
	if err != nil {
		return nil, normsErrorf(op, err)
	}
	if o.HasHeader && len(records) > 0 {
		records = records[1:]
	}

	return records, nil
}

// ReadVectorTable reads a row-per-word vector table: first field the word,
// remaining fields its features.
//
// Errors: ErrNilReader, ErrEmptyTable, ErrNoFeatures, ErrBadNumber, plus
// NewVectorTable's word validation.
func ReadVectorTable(r io.Reader, o TableOptions) (*VectorTable, error) {
	records, err := readRecords(opReadVectorTable, r, o)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, normsErrorf(opReadVectorTable, ErrEmptyTable)
	}

	d := len(records[0]) - 1
	if d < 1 {
		return nil, normsErrorf(opReadVectorTable, ErrNoFeatures)
	}

	words := make([]string, len(records))
	data := mat.NewDense(len(records), d, nil)
	for i, rec := range records {
		words[i] = rec[0]
		for j, cell := range rec[1:] {
			v, perr := parseCell(cell)
			if perr != nil {
				return nil, normsErrorf(opReadVectorTable,
					fmt.Errorf("row %d, col %d (%q): %w", i+1, j+2, cell, ErrBadNumber))
			}
			data.Set(i, j, v)
		}
	}

	table, err := NewVectorTable(words, data)
	if err != nil {
		return nil, normsErrorf(opReadVectorTable, err)
	}

	return table, nil
}

// ReadPairTable reads a pair-value list: exactly three fields per record
// (word1, word2, value). NA values are stored as NaN.
//
// Errors: ErrNilReader, ErrEmptyTable, ErrBadRecord, ErrBadNumber, plus
// Add's pair validation.
func ReadPairTable(r io.Reader, o TableOptions) (*PairTable, error) {
	records, err := readRecords(opReadPairTable, r, o)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, normsErrorf(opReadPairTable, ErrEmptyTable)
	}

	table := NewPairTable()
	for i, rec := range records {
		if len(rec) != 3 {
			return nil, normsErrorf(opReadPairTable,
				fmt.Errorf("row %d has %d fields, want 3: %w", i+1, len(rec), ErrBadRecord))
		}
		v, perr := parseCell(rec[2])
		if perr != nil {
			return nil, normsErrorf(opReadPairTable,
				fmt.Errorf("row %d (%q): %w", i+1, rec[2], ErrBadNumber))
		}
		if err = table.Add(rec[0], rec[1], v); err != nil {
			return nil, fmt.Errorf("%s: row %d: %w", opReadPairTable, i+1, err)
		}
	}

	return table, nil
}

// ReadLabelledCSV reads a square labelled grid: the header holds a corner
// cell plus the column labels; every data row holds its row label plus one
// value per column. Row labels must repeat the column labels in order.
// Returns the labels and the dense values; label uniqueness is left to the
// matrix constructor the caller feeds them into.
//
// Errors: ErrNilReader, ErrEmptyTable, ErrDimensionMismatch,
// ErrLabelMismatch, ErrBadNumber.
func ReadLabelledCSV(r io.Reader, o TableOptions) ([]string, *mat.Dense, error) {
	if r == nil {
		return nil, nil, normsErrorf(opReadLabelledCSV, ErrNilReader)
	}

	records, err := newCSVReader(r, o).ReadAll()
	if err != nil {
		return nil, nil, normsErrorf(opReadLabelledCSV, err)
	}
	if len(records) < 2 || len(records[0]) < 2 {
		return nil, nil, normsErrorf(opReadLabelledCSV, ErrEmptyTable)
	}

	labels := records[0][1:]
	rows := records[1:]
	n := len(labels)
	if len(rows) != n {
		return nil, nil, normsErrorf(opReadLabelledCSV,
			fmt.Errorf("%d labels, %d rows: %w", n, len(rows), ErrDimensionMismatch))
	}

	data := mat.NewDense(n, n, nil)
	for i, rec := range rows {
		if rec[0] != labels[i] {
			return nil, nil, normsErrorf(opReadLabelledCSV,
				fmt.Errorf("row %d: index %q, header %q: %w", i+1, rec[0], labels[i], ErrLabelMismatch))
		}
		for j, cell := range rec[1:] {
			v, perr := parseCell(cell)
			if perr != nil {
				return nil, nil, normsErrorf(opReadLabelledCSV,
					fmt.Errorf("row %d, col %d (%q): %w", i+1, j+2, cell, ErrBadNumber))
			}
			data.Set(i, j, v)
		}
	}

	return labels, data, nil
}

// ReadMatrix reads a headerless numeric grid: every record is one row of
// float64 cells, no word column. Embedding exports ship in this shape, with
// the row labels in a separate line-per-word file (see ReadWordList).
//
// Errors: ErrNilReader, ErrEmptyTable, ErrBadNumber.
func ReadMatrix(r io.Reader, o TableOptions) (*mat.Dense, error) {
	records, err := readRecords(opReadMatrix, r, o)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, normsErrorf(opReadMatrix, ErrEmptyTable)
	}

	data := mat.NewDense(len(records), len(records[0]), nil)
	for i, rec := range records {
		for j, cell := range rec {
			v, perr := parseCell(cell)
			if perr != nil {
				return nil, normsErrorf(opReadMatrix,
					fmt.Errorf("row %d, col %d (%q): %w", i+1, j+1, cell, ErrBadNumber))
			}
			data.Set(i, j, v)
		}
	}

	return data, nil
}
