// Copyright 2025 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

// Package resolve implements the default `pep resolve` command: load a
// descriptor, build the roster and export it as a delimited table.
package resolve

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"carvel.dev/pep/pkg/cmd/ui"
	"carvel.dev/pep/pkg/projconf"
	"carvel.dev/pep/pkg/roster"
)

type ResolveOptions struct {
	ConfigPath string
	Amendment  string
	Format     string
	OutputPath string
	Debug      bool
}

func NewOptions() *ResolveOptions {
	return &ResolveOptions{Format: "csv"}
}

func NewCmd(o *ResolveOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve a project descriptor into a sample table",
		RunE:  func(_ *cobra.Command, _ []string) error { return o.Run() },
	}
	cmd.Flags().StringVarP(&o.ConfigPath, "file", "f", "", "Project descriptor file (required)")
	cmd.Flags().StringVar(&o.Amendment, "amend", "", "Activate named amendment before resolving")
	cmd.Flags().StringVar(&o.Format, "format", "csv", "Export format (csv or tsv)")
	cmd.Flags().StringVarP(&o.OutputPath, "output", "o", "", "Write table to file instead of stdout")
	cmd.Flags().BoolVar(&o.Debug, "debug", false, "Enable debug output")
	return cmd
}

func (o *ResolveOptions) Run() error {
	return o.RunWithUI(ui.NewTTY(o.Debug))
}

func (o *ResolveOptions) RunWithUI(ui ui.UI) error {
	if o.ConfigPath == "" {
		return fmt.Errorf("Expected project descriptor to be specified (via --file)")
	}

	delimiter, err := formatDelimiter(o.Format)
	if err != nil {
		return err
	}

	project, err := projconf.Load(o.ConfigPath)
	if err != nil {
		return err
	}
	if o.Amendment != "" {
		project, err = project.Activate(o.Amendment)
		if err != nil {
			return err
		}
		ui.Debugf("resolve: activated amendment '%s'\n", o.Amendment)
	}

	result, err := roster.Build(project, ui)
	if err != nil {
		return err
	}
	for _, diag := range result.Diagnostics() {
		ui.Warnf("Warning: %s\n", diag)
	}

	var out io.Writer = os.Stdout
	if o.OutputPath != "" {
		file, err := os.Create(o.OutputPath)
		if err != nil {
			return fmt.Errorf("Creating output file: %s", err)
		}
		defer file.Close()
		out = file
	}
	return writeTable(out, result, delimiter)
}

func formatDelimiter(format string) (rune, error) {
	switch format {
	case "csv":
		return ',', nil
	case "tsv":
		return '\t', nil
	default:
		return 0, fmt.Errorf("Expected --format to be 'csv' or 'tsv', but was '%s'", format)
	}
}

func writeTable(out io.Writer, result *roster.Roster, delimiter rune) error {
	columns, rows := result.Table()

	writer := csv.NewWriter(out)
	writer.Comma = delimiter
	if err := writer.Write(columns); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
