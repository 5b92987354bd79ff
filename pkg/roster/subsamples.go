// Copyright 2025 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package roster

import (
	"fmt"

	"carvel.dev/pep/pkg/sampletable"
)

// subsampleNameAttr keys rows within one sample; like sample_name it is a
// key column, not an attribute override.
const subsampleNameAttr = "subsample_name"

// mergeSubsamples folds the subannotation table (when declared) into
// multi-valued sample attributes. For each non-key column, a sample's
// merged value is the ordered concatenation of its non-empty row values in
// file order, fully overwriting the annotation value. Empty cells are
// skipped, not treated as "".
func (b *builder) mergeSubsamples() error {
	path, found, err := b.project.SampleSubannotationPath()
	if err != nil {
		return err
	}
	if !found {
		return nil
	}

	table, err := sampletable.Read(path)
	if err != nil {
		return err
	}
	if table.ColumnIndex(NameAttr) < 0 {
		return fmt.Errorf("Expected sample subannotation '%s' to have a '%s' column", path, NameAttr)
	}

	b.ui.Debugf("roster: merging %d subsample rows from %s\n", len(table.Rows), path)

	b.touched = map[string]map[string]bool{}
	merged := map[string]map[string][]string{}

	for rowIdx := range table.Rows {
		name, found := table.Value(rowIdx, NameAttr)
		if !found {
			b.diag("", "", fmt.Sprintf("subsample row %d has no %s; row ignored", rowIdx+1, NameAttr))
			continue
		}
		if _, known := b.byName[name]; !known {
			b.diag(name, "", fmt.Sprintf("subsample row %d names an unknown sample; row ignored", rowIdx+1))
			continue
		}

		for _, col := range table.Columns {
			if col == NameAttr || col == subsampleNameAttr {
				continue
			}
			val, found := table.Value(rowIdx, col)
			if !found {
				continue
			}
			if merged[name] == nil {
				merged[name] = map[string][]string{}
			}
			merged[name][col] = append(merged[name][col], val)
		}
	}

	// Assignment iterates roster and column order so attribute insertion
	// order stays deterministic.
	for _, sample := range b.samples {
		name := sample.Name()
		byCol, found := merged[name]
		if !found {
			continue
		}
		for _, col := range table.Columns {
			values, found := byCol[col]
			if !found {
				continue
			}
			sample.Set(col, values...)
			if b.touched[name] == nil {
				b.touched[name] = map[string]bool{}
			}
			b.touched[name][col] = true
		}
	}
	return nil
}
