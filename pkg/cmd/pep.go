// Copyright 2025 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"github.com/cppforlife/cobrautil"
	"github.com/spf13/cobra"

	cmdres "carvel.dev/pep/pkg/cmd/resolve"
	"carvel.dev/pep/pkg/version"
)

type PepOptions struct{}

func NewDefaultPepOptions() *PepOptions {
	return &PepOptions{}
}

func NewDefaultPepCmd() *cobra.Command {
	return NewPepCmd(NewDefaultPepOptions())
}

func NewPepCmd(o *PepOptions) *cobra.Command {
	cmd := cmdres.NewCmd(cmdres.NewOptions())

	cmd.Use = "pep"
	cmd.Aliases = nil
	cmd.Version = version.Version
	cmd.Short = "pep resolves Portable Encapsulated Project descriptors into sample tables"
	cmd.Long = `pep resolves Portable Encapsulated Project descriptors into sample tables.

A project descriptor is a YAML file pointing at delimited sample tables;
pep loads it, applies sample modifiers and amendments, and exports the
resolved roster.`

	// Affects children as well
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	// Disable docs header
	cmd.DisableAutoGenTag = true

	cmd.AddCommand(NewVersionCmd(NewVersionOptions()))
	cmd.AddCommand(cmdres.NewCmd(cmdres.NewOptions())) // also addressable by name
	cmd.AddCommand(NewAmendmentsCmd(NewAmendmentsOptions()))
	cmd.AddCommand(NewConfigCmd(NewConfigOptions()))

	// Reconfigure Commands
	cobrautil.VisitCommands(cmd, cobrautil.ReconfigureCmdWithSubcmd,
		cobrautil.DisallowExtraArgs, cobrautil.WrapRunEForCmd(cobrautil.ResolveFlagsForCmd))

	return cmd
}
