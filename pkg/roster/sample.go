// Copyright 2025 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package roster

import (
	"strings"

	"carvel.dev/pep/pkg/expand"
)

// NameAttr is the attribute that identifies a sample. It is required in
// every annotation row and survives the remove modifier.
const NameAttr = "sample_name"

// Sample is one resolved sample record: an ordered set of named
// attributes. Values are held as ordered string lists internally and
// space-joined only at external boundaries.
type Sample struct {
	names []string
	attrs map[string][]string
}

func NewSample() *Sample {
	return &Sample{attrs: map[string][]string{}}
}

// Name returns the sample_name value.
func (s *Sample) Name() string { return s.Attr(NameAttr) }

// Set assigns values to an attribute, overwriting any existing value. New
// attributes keep insertion order.
func (s *Sample) Set(name string, values ...string) {
	if _, found := s.attrs[name]; !found {
		s.names = append(s.names, name)
	}
	s.attrs[name] = values
}

// SetIfAbsent assigns only when the attribute does not exist yet.
func (s *Sample) SetIfAbsent(name string, values ...string) bool {
	if _, found := s.attrs[name]; found {
		return false
	}
	s.Set(name, values...)
	return true
}

// Values returns the raw ordered value list.
func (s *Sample) Values(name string) ([]string, bool) {
	values, found := s.attrs[name]
	return values, found
}

// Attr returns the attribute's external form: values space-joined, or ""
// when absent.
func (s *Sample) Attr(name string) string {
	return strings.Join(s.attrs[name], " ")
}

func (s *Sample) Has(name string) bool {
	_, found := s.attrs[name]
	return found
}

func (s *Sample) Delete(name string) bool {
	if _, found := s.attrs[name]; !found {
		return false
	}
	delete(s.attrs, name)
	for i, attrName := range s.names {
		if attrName == name {
			s.names = append(s.names[:i], s.names[i+1:]...)
			break
		}
	}
	return true
}

// AttributeNames lists attributes in insertion order.
func (s *Sample) AttributeNames() []string {
	return append([]string(nil), s.names...)
}

// Scope resolves variable names against the sample's attributes (joined
// form), for use in template expansion.
func (s *Sample) Scope() expand.Scope {
	return expand.ScopeFunc(func(name string) (string, bool) {
		if !s.Has(name) {
			return "", false
		}
		return s.Attr(name), true
	})
}
