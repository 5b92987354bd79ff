// Copyright 2025 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package cmd is home to the full set of pep's "commands" -- instances of
cobra.Command (not to be confused with ./cmd which contains the
bootstrapping for executing pep).

For a list of commands run:

	$ pep help

The default command is "resolve".
*/
package cmd
