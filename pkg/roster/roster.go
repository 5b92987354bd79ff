// Copyright 2025 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package roster

// Roster is the resolved, ordered collection of samples. It is a value:
// once built it is never mutated, and re-resolution (including amendment
// switches) produces a fresh Roster.
type Roster struct {
	samples   []*Sample
	byName    map[string]*Sample
	diags     []Diagnostic
	amendment string
}

// Samples returns all samples in original annotation order.
func (r *Roster) Samples() []*Sample {
	return append([]*Sample(nil), r.samples...)
}

// Sample fetches a sample by name.
func (r *Roster) Sample(name string) (*Sample, error) {
	sample, found := r.byName[name]
	if !found {
		return nil, SampleNotFoundError{Name: name}
	}
	return sample, nil
}

func (r *Roster) Len() int { return len(r.samples) }

// ActiveAmendment reports the amendment the roster was built under, or "".
func (r *Roster) ActiveAmendment() string { return r.amendment }

// Diagnostics lists every degraded value encountered during the build.
func (r *Roster) Diagnostics() []Diagnostic {
	return append([]Diagnostic(nil), r.diags...)
}

// Table exports the roster as a tabular structure: columns in first-seen
// attribute order across samples, one row per sample in roster order,
// multi-valued attributes space-joined. Attributes absent from a given
// sample render as empty cells.
func (r *Roster) Table() ([]string, [][]string) {
	var columns []string
	seen := map[string]struct{}{}
	for _, sample := range r.samples {
		for _, name := range sample.AttributeNames() {
			if _, found := seen[name]; !found {
				seen[name] = struct{}{}
				columns = append(columns, name)
			}
		}
	}

	rows := make([][]string, 0, len(r.samples))
	for _, sample := range r.samples {
		row := make([]string, len(columns))
		for i, col := range columns {
			row[i] = sample.Attr(col)
		}
		rows = append(rows, row)
	}
	return columns, rows
}
