// Copyright 2025 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package expand

import (
	"os"
)

// Scope resolves a variable name to a value.
type Scope interface {
	Lookup(name string) (string, bool)
}

// ScopeFunc adapts a plain function into a Scope.
type ScopeFunc func(name string) (string, bool)

func (f ScopeFunc) Lookup(name string) (string, bool) { return f(name) }

// MapScope resolves names from a fixed map.
type MapScope map[string]string

func (s MapScope) Lookup(name string) (string, bool) {
	val, found := s[name]
	return val, found
}

// EnvScope resolves names from process environment variables.
func EnvScope() Scope {
	return ScopeFunc(os.LookupEnv)
}
