// Copyright 2025 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package sampletable reads the delimited annotation and subannotation tables
referenced by a project descriptor. The first row is the header; every
following row carries one record in file order.
*/
package sampletable

// Table is an in-memory delimited table. Rows are aligned to Columns;
// short source rows are padded with empty cells.
type Table struct {
	Path    string
	Columns []string
	Rows    [][]string
}

// ColumnIndex returns the position of the named column, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, col := range t.Columns {
		if col == name {
			return i
		}
	}
	return -1
}

// Value returns the cell at (row, column name). An empty cell reports
// found=false: absence and emptiness are not distinguished in the source
// format, and mergers must skip such cells rather than treat them as "".
func (t *Table) Value(row int, name string) (string, bool) {
	idx := t.ColumnIndex(name)
	if idx < 0 || row < 0 || row >= len(t.Rows) {
		return "", false
	}
	val := t.Rows[row][idx]
	return val, val != ""
}
