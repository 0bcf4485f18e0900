// SPDX-License-Identifier: MIT
// Package: main (lvlsim)
//
// Purpose:
//   - Collect comparison outcomes and write them as a CSV report with the
//     layout comparison,r,p,n_perms,n_conditions. Undefined correlations
//     render as NA, the missing-value marker the norms readers accept back.

package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/katalvlaran/lvlsim/simmat"
)

// resultHeader is the fixed column layout of the report.
var resultHeader = []string{"comparison", "r", "p", "n_perms", "n_conditions"}

// resultRow is one comparison outcome. NaN r/p mark an undefined correlation.
type resultRow struct {
	comparison  string
	r           float64
	p           float64
	nPerms      int
	nConditions int
}

// resultSet accumulates rows and renders them with a fixed decimal precision.
type resultSet struct {
	precision int
	rows      []resultRow
}

func newResultSet(precision int) *resultSet {
	return &resultSet{precision: precision}
}

// add records a completed comparison.
func (rs *resultSet) add(comparison string, res simmat.NHSTResult, nConditions int) {
	rs.rows = append(rs.rows, resultRow{
		comparison:  comparison,
		r:           res.R,
		p:           res.P,
		nPerms:      res.NPerms,
		nConditions: nConditions,
	})
}

// addUndefined records a comparison whose correlation is undefined
// (constant condensed form); r and p become NA in the report.
func (rs *resultSet) addUndefined(comparison string, nPerms, nConditions int) {
	rs.rows = append(rs.rows, resultRow{
		comparison:  comparison,
		r:           math.NaN(),
		p:           math.NaN(),
		nPerms:      nPerms,
		nConditions: nConditions,
	})
}

// formatValue renders one numeric cell; non-finite values become NA.
func (rs *resultSet) formatValue(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "NA"
	}

	return strconv.FormatFloat(v, 'f', rs.precision, 64)
}

// write emits the header and every row.
func (rs *resultSet) write(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(resultHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range rs.rows {
		rec := []string{
			row.comparison,
			rs.formatValue(row.r),
			rs.formatValue(row.p),
			strconv.Itoa(row.nPerms),
			strconv.Itoa(row.nConditions),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write row %q: %w", row.comparison, err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// save writes the report to path.
func (rs *resultSet) save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := rs.write(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}

	return f.Close()
}
