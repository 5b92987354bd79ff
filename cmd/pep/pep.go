// Copyright 2025 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	uierrs "github.com/cppforlife/go-cli-ui/errors"

	"carvel.dev/pep/pkg/cmd"
)

func main() {
	command := cmd.NewDefaultPepCmd()

	err := command.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "pep: Error: %s\n", uierrs.NewMultiLineError(err))
		os.Exit(1)
	}
}
