// Copyright 2025 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package projconf

import (
	"fmt"

	"carvel.dev/pep/pkg/orderedmap"
)

// Amendment is a named partial override of the base configuration.
// `subprojects` is the legacy spelling of `amendments`; both declare the
// same kind of overlay.
type Amendment struct {
	Name    string
	overlay *orderedmap.Map
}

func parseAmendments(tree *orderedmap.Map) ([]Amendment, error) {
	var result []Amendment
	seen := map[string]struct{}{}

	for _, key := range []string{keyAmendments, keySubprojects} {
		section, found, err := childMap(tree, key)
		if err != nil {
			return nil, err
		}
		if !found {
			continue
		}
		var parseErr error
		section.Iterate(func(name string, val interface{}) {
			if parseErr != nil {
				return
			}
			overlay, ok := val.(*orderedmap.Map)
			if !ok {
				parseErr = fmt.Errorf("Expected %s '%s' to be a mapping, but was %T", key, name, val)
				return
			}
			if _, dup := seen[name]; dup {
				parseErr = fmt.Errorf("Expected amendment names to be unique, but '%s' is declared twice", name)
				return
			}
			seen[name] = struct{}{}
			result = append(result, Amendment{Name: name, overlay: overlay})
		})
		if parseErr != nil {
			return nil, parseErr
		}
	}
	return result, nil
}

// AmendmentNames lists declared amendments in declaration order.
func (p *Project) AmendmentNames() []string {
	var names []string
	for _, amendment := range p.amendments {
		names = append(names, amendment.Name)
	}
	return names
}

// ActiveAmendment reports the activated amendment name, or "" for the
// unamended base.
func (p *Project) ActiveAmendment() string { return p.active }

// Activate returns a new Project whose effective tree is the named overlay
// deep-merged onto a fresh copy of the pristine base. The receiver is
// never mutated, and activation always starts from the base, so
// Activate(A) followed by Activate(B) equals Activate(B) alone.
func (p *Project) Activate(name string) (*Project, error) {
	for _, amendment := range p.amendments {
		if amendment.Name != name {
			continue
		}
		tree := p.base.DeepCopy()
		deepMerge(tree, amendment.overlay)
		return &Project{
			path:       p.path,
			dir:        p.dir,
			base:       p.base,
			tree:       tree,
			amendments: p.amendments,
			active:     name,
		}, nil
	}
	return nil, UnknownAmendmentError{Name: name, Declared: p.AmendmentNames()}
}

// deepMerge merges overlay into dst: mappings merge key by key, all other
// values (scalars, sequences) replace. Keys missing from dst are added.
func deepMerge(dst, overlay *orderedmap.Map) {
	overlay.Iterate(func(key string, overlayVal interface{}) {
		if overlayMap, ok := overlayVal.(*orderedmap.Map); ok {
			if dstVal, found := dst.Get(key); found {
				if dstMap, ok := dstVal.(*orderedmap.Map); ok {
					deepMerge(dstMap, overlayMap)
					return
				}
			}
		}
		dst.Set(key, orderedmap.DeepCopyValue(overlayVal))
	})
}
