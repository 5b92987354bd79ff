// Copyright 2025 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"carvel.dev/pep/pkg/projconf"
)

type ConfigOptions struct {
	ConfigPath string
	Amendment  string
	Output     string
}

func NewConfigOptions() *ConfigOptions {
	return &ConfigOptions{}
}

func NewConfigCmd(o *ConfigOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the fully resolved (post-import, post-amendment) configuration",
		RunE:  func(_ *cobra.Command, _ []string) error { return o.Run() },
	}
	cmd.Flags().StringVarP(&o.ConfigPath, "file", "f", "", "Project descriptor file (required)")
	cmd.Flags().StringVar(&o.Amendment, "amend", "", "Activate named amendment before printing")
	cmd.Flags().StringVarP(&o.Output, "output", "o", "yaml", "Output encoding (yaml or toml)")
	return cmd
}

func (o *ConfigOptions) Run() error {
	if o.ConfigPath == "" {
		return fmt.Errorf("Expected project descriptor to be specified (via --file)")
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
	}

	var out []byte
	switch o.Output {
	case "yaml":
		out, err = project.AsYAML()
	case "toml":
		out, err = project.AsTOML()
	default:
		return fmt.Errorf("Expected --output to be 'yaml' or 'toml', but was '%s'", o.Output)
	}
	if err != nil {
		return err
	}

	_, err = os.Stdout.Write(out)
	return err
}
