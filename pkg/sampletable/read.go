// Copyright 2025 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package sampletable

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Read loads a delimited table. Comma is the default delimiter; files with
// a .tsv or .txt extension are read as tab-separated.
func Read(path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Reading sample table: %s", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = delimiterForPath(path)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("Reading sample table '%s': %s", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("Expected sample table '%s' to have a header row", path)
	}

	columns := records[0]
	seen := map[string]struct{}{}
	for _, col := range columns {
		if _, found := seen[col]; found {
			return nil, fmt.Errorf("Expected unique column names in sample table '%s', but found '%s' twice", path, col)
		}
		seen[col] = struct{}{}
	}

	table := &Table{Path: path, Columns: columns}
	for _, record := range records[1:] {
		row := make([]string, len(columns))
		for i := range columns {
			if i < len(record) {
				row[i] = strings.TrimSpace(record[i])
			}
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

func delimiterForPath(path string) rune {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tsv", ".txt":
		return '\t'
	default:
		return ','
	}
}
