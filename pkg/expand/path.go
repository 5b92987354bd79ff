// Copyright 2025 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package expand

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// HasWildcard reports whether path contains glob metacharacters that
// ExpandPath would match against the filesystem.
func HasWildcard(path string) bool {
	return strings.ContainsAny(path, "*?[")
}

// ExpandPath substitutes {name} tokens and then, if the result contains a
// wildcard, matches it against the filesystem. Matches are returned
// lexically sorted; a wildcard matching nothing yields an empty list, not
// an error.
func ExpandPath(template string, scopes ...Scope) ([]string, error) {
	expanded, err := Expand(template, scopes...)
	if err != nil {
		return nil, err
	}

	if !HasWildcard(expanded) {
		return []string{expanded}, nil
	}
	return Glob(expanded)
}

// Glob matches a wildcard pattern against the filesystem, lexically
// sorted. Zero matches yields an empty list, not an error.
func Glob(pattern string) ([]string, error) {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("Expanding wildcard pattern '%s': %s", pattern, err)
	}
	sort.Strings(matches)
	return matches, nil
}
