// Copyright 2025 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package expand

import (
	"fmt"
	"strings"
)

// UnresolvedVariableError indicates that no scope provided a value for a
// {name} token. Callers typically degrade the single affected attribute
// rather than aborting.
type UnresolvedVariableError struct {
	Name     string
	Template string
}

func (e UnresolvedVariableError) Error() string {
	return fmt.Sprintf("Expected variable '%s' in template '%s' to be resolvable against sample, project or environment scope", e.Name, e.Template)
}

// Expand substitutes every {name} token in template using the first scope
// that resolves it. A brace without a matching closing brace, or a token
// that is not a valid identifier, is kept as literal text.
func Expand(template string, scopes ...Scope) (string, error) {
	var result strings.Builder
	rest := template

	for {
		start := strings.IndexByte(rest, '{')
		if start < 0 {
			result.WriteString(rest)
			return result.String(), nil
		}
		end := strings.IndexByte(rest[start:], '}')
		if end < 0 {
			result.WriteString(rest)
			return result.String(), nil
		}
		end += start

		name := rest[start+1 : end]
		if !validName(name) {
			result.WriteString(rest[:end])
			rest = rest[end:]
			continue
		}

		val, found := lookup(name, scopes)
		if !found {
			return "", UnresolvedVariableError{Name: name, Template: template}
		}

		result.WriteString(rest[:start])
		result.WriteString(val)
		rest = rest[end+1:]
	}
}

func lookup(name string, scopes []Scope) (string, bool) {
	for _, scope := range scopes {
		if scope == nil {
			continue
		}
		if val, found := scope.Lookup(name); found {
			return val, true
		}
	}
	return "", false
}

func validName(name string) bool {
	if len(name) == 0 {
		return false
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
		default:
			return false
		}
	}
	return true
}
