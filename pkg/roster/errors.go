// Copyright 2025 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package roster

import (
	"fmt"
)

// SampleNotFoundError is returned by Roster.Sample for an unknown name.
type SampleNotFoundError struct {
	Name string
}

func (e SampleNotFoundError) Error() string {
	return fmt.Sprintf("Expected to find sample '%s' in roster", e.Name)
}

// DuplicateSampleNameError is fatal at build time: two annotation rows
// claim the same identity, which is never silently collapsed.
type DuplicateSampleNameError struct {
	Name string
}

func (e DuplicateSampleNameError) Error() string {
	return fmt.Sprintf("Expected %s values in sample annotation to be unique, but '%s' appears more than once", NameAttr, e.Name)
}
