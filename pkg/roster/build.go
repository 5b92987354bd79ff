// Copyright 2025 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package roster

import (
	"fmt"

	"carvel.dev/pep/pkg/projconf"
	"carvel.dev/pep/pkg/sampletable"
)

// UI is the subset of output the builder needs; see pkg/cmd/ui.
type UI interface {
	Debugf(string, ...interface{})
}

// Build resolves the project into a new Roster. It is a pure function of
// the project's configuration and the referenced tables: rebuilding with
// the same inputs yields an identical roster, and previously built rosters
// are never mutated.
func Build(project *projconf.Project, ui UI) (*Roster, error) {
	mods, err := project.Modifiers()
	if err != nil {
		return nil, err
	}

	b := &builder{project: project, mods: mods, ui: ui}

	if err := b.readAnnotation(); err != nil {
		return nil, err
	}
	if err := b.mergeSubsamples(); err != nil {
		return nil, err
	}
	b.applyModifiers()

	ui.Debugf("roster: resolved %d samples (%d diagnostics)\n", len(b.samples), len(b.diags))

	return &Roster{
		samples:   b.samples,
		byName:    b.byName,
		diags:     b.diags,
		amendment: project.ActiveAmendment(),
	}, nil
}

type builder struct {
	project *projconf.Project
	mods    *projconf.Modifiers
	ui      UI

	samples []*Sample
	byName  map[string]*Sample

	// touched marks attributes populated by the subsample merger; such
	// values outrank wildcard-expanded derive output.
	touched map[string]map[string]bool

	diags []Diagnostic
}

func (b *builder) diag(sample, attribute, msg string) {
	b.diags = append(b.diags, Diagnostic{Sample: sample, Attribute: attribute, Msg: msg})
}

// readAnnotation seeds one sample per annotation row, in file order. The
// table's header becomes the initial attribute set.
func (b *builder) readAnnotation() error {
	path, err := b.project.SampleAnnotationPath()
	if err != nil {
		return err
	}
	table, err := sampletable.Read(path)
	if err != nil {
		return err
	}
	if table.ColumnIndex(NameAttr) < 0 {
		return fmt.Errorf("Expected sample annotation '%s' to have a '%s' column", path, NameAttr)
	}

	b.ui.Debugf("roster: reading %d annotation rows from %s\n", len(table.Rows), path)

	b.byName = map[string]*Sample{}
	for rowIdx, row := range table.Rows {
		sample := NewSample()
		for colIdx, col := range table.Columns {
			sample.Set(col, row[colIdx])
		}

		name := sample.Name()
		if name == "" {
			return fmt.Errorf("Expected non-empty %s in row %d of '%s'", NameAttr, rowIdx+1, path)
		}
		if _, found := b.byName[name]; found {
			return DuplicateSampleNameError{Name: name}
		}

		b.samples = append(b.samples, sample)
		b.byName[name] = sample
	}
	return nil
}
