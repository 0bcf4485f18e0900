// SPDX-License-Identifier: MIT

// Tests for the CSV report: layout, precision, NA rendering and the save
// round trip.

package main

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlsim/simmat"
)

// TestResultSet_Write pins the exact report layout, including an NA row for
// an undefined correlation.
func TestResultSet_Write(t *testing.T) {
	rs := newResultSet(6)
	rs.add("embedding vs reference", simmat.NHSTResult{R: 0.5, P: 0.0123, NPerms: 1000}, 48)
	rs.addUndefined("lsa vs reference", 1000, 48)

	var buf bytes.Buffer
	require.NoError(t, rs.write(&buf))

	want := "comparison,r,p,n_perms,n_conditions\n" +
		"embedding vs reference,0.500000,0.012300,1000,48\n" +
		"lsa vs reference,NA,NA,1000,48\n"
	assert.Equal(t, want, buf.String())
}

// TestResultSet_FormatValue checks rounding and the non-finite cases.
func TestResultSet_FormatValue(t *testing.T) {
	rs := newResultSet(2)

	assert.Equal(t, "0.67", rs.formatValue(0.666))
	assert.Equal(t, "NA", rs.formatValue(math.NaN()))
	assert.Equal(t, "NA", rs.formatValue(math.Inf(1)))
	assert.Equal(t, "NA", rs.formatValue(math.Inf(-1)))
}

// TestResultSet_Save writes a report to disk and reads it back.
func TestResultSet_Save(t *testing.T) {
	rs := newResultSet(6)
	rs.add("embedding vs reference", simmat.NHSTResult{R: 1, P: 0.25, NPerms: 4}, 3)

	path := filepath.Join(t.TempDir(), "results.csv")
	require.NoError(t, rs.save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		"comparison,r,p,n_perms,n_conditions\nembedding vs reference,1.000000,0.250000,4,3\n",
		string(data))

	// Destination in a missing directory fails on create.
	err = rs.save(filepath.Join(t.TempDir(), "missing", "results.csv"))
	assert.Error(t, err)
}
