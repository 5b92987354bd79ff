// Copyright 2025 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package projconf

import (
	"fmt"
	"strings"
)

// ConfigLoadError is fatal: the descriptor (or one of its imports) cannot
// produce a usable configuration tree.
type ConfigLoadError struct {
	Path string
	Err  error
}

func (e ConfigLoadError) Error() string {
	return fmt.Sprintf("Loading project config '%s': %s", e.Path, e.Err)
}

func (e ConfigLoadError) Unwrap() error { return e.Err }

// UnknownAmendmentError is returned by Activate for a name the descriptor
// does not declare. The caller's existing project and roster stay valid.
type UnknownAmendmentError struct {
	Name     string
	Declared []string
}

func (e UnknownAmendmentError) Error() string {
	if len(e.Declared) == 0 {
		return fmt.Sprintf("Expected amendment '%s' to be declared in project config, but no amendments are declared", e.Name)
	}
	return fmt.Sprintf("Expected amendment '%s' to be declared in project config (declared amendments: %s)",
		e.Name, strings.Join(e.Declared, ", "))
}
