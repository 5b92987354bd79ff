// Copyright 2025 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"carvel.dev/pep/pkg/projconf"
)

type AmendmentsOptions struct {
	ConfigPath string
}

func NewAmendmentsOptions() *AmendmentsOptions {
	return &AmendmentsOptions{}
}

func NewAmendmentsCmd(o *AmendmentsOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "amendments",
		Short: "List amendments declared by a project descriptor",
		RunE:  func(_ *cobra.Command, _ []string) error { return o.Run() },
	}
	cmd.Flags().StringVarP(&o.ConfigPath, "file", "f", "", "Project descriptor file (required)")
	return cmd
}

func (o *AmendmentsOptions) Run() error {
	if o.ConfigPath == "" {
		return fmt.Errorf("Expected project descriptor to be specified (via --file)")
	}

	project, err := projconf.Load(o.ConfigPath)
	if err != nil {
		return err
	}

	for _, name := range project.AmendmentNames() {
		fmt.Println(name)
	}
	return nil
}
