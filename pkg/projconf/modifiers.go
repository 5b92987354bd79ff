// Copyright 2025 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package projconf

import (
	"fmt"

	"carvel.dev/pep/pkg/orderedmap"
)

const (
	keyAppend    = "append"
	keyRemove    = "remove"
	keyDuplicate = "duplicate"
	keyDerive    = "derive"
	keyImply     = "imply"

	keyDeriveAttributes = "attributes"
	keyDeriveSources    = "sources"
	keyImplyIf          = "if"
	keyImplyThen        = "then"
)

// Modifiers is the parsed `sample_modifiers` section. Field order mirrors
// the fixed pipeline order: append, duplicate, derive, imply, remove.
type Modifiers struct {
	Append    []AttrValue
	Duplicate []Duplication
	Derive    DeriveSpec
	Imply     []ImplyRule
	Remove    []string
}

// AttrValue is one attribute assignment, in declaration order.
type AttrValue struct {
	Name  string
	Value string
}

// Duplication clones attribute Source under the name Target.
type Duplication struct {
	Source string
	Target string
}

// DeriveSpec lists the attributes to derive and the named URI templates
// their values may reference. Sources combines top-level `data_sources`
// with `sample_modifiers.derive.sources` (the latter wins on conflicts).
type DeriveSpec struct {
	Attributes []string
	Sources    map[string]string
}

// ImplyRule sets Then assignments on every sample matching all If pairs.
type ImplyRule struct {
	If   []AttrMatch
	Then []AttrValue
}

// AttrMatch matches when the sample's attribute equals any of Values.
type AttrMatch struct {
	Name   string
	Values []string
}

// Modifiers parses the effective tree's modifier configuration. Structural
// problems are fatal, same as load-time ones.
func (p *Project) Modifiers() (*Modifiers, error) {
	mods := &Modifiers{Derive: DeriveSpec{Sources: map[string]string{}}}

	sources, found, err := childMap(p.tree, keyDataSources)
	if err != nil {
		return nil, ConfigLoadError{Path: p.path, Err: err}
	}
	if found {
		if err := parseSources(sources, keyDataSources, mods.Derive.Sources); err != nil {
			return nil, ConfigLoadError{Path: p.path, Err: err}
		}
	}

	section, found, err := childMap(p.tree, keyModifiers)
	if err != nil {
		return nil, ConfigLoadError{Path: p.path, Err: err}
	}
	if !found {
		return mods, nil
	}

	if err := parseModifierSection(section, mods); err != nil {
		return nil, ConfigLoadError{Path: p.path, Err: fmt.Errorf("Parsing '%s': %s", keyModifiers, err)}
	}
	return mods, nil
}

func parseSources(sources *orderedmap.Map, context string, into map[string]string) error {
	var parseErr error
	sources.Iterate(func(name string, val interface{}) {
		if parseErr != nil {
			return
		}
		template, ok := scalarString(val)
		if !ok {
			parseErr = fmt.Errorf("Expected %s '%s' to be a template string, but was %T", context, name, val)
			return
		}
		into[name] = template
	})
	return parseErr
}

func parseModifierSection(section *orderedmap.Map, mods *Modifiers) error {
	appendSection, found, err := childMap(section, keyAppend)
	if err != nil {
		return err
	}
	if found {
		mods.Append, err = parseAttrValues(appendSection, keyAppend)
		if err != nil {
			return err
		}
	}

	duplicateSection, found, err := childMap(section, keyDuplicate)
	if err != nil {
		return err
	}
	if found {
		var parseErr error
		duplicateSection.Iterate(func(src string, val interface{}) {
			if parseErr != nil {
				return
			}
			dst, ok := scalarString(val)
			if !ok || dst == "" {
				parseErr = fmt.Errorf("Expected %s.%s to name the clone of '%s', but was %T", keyDuplicate, src, src, val)
				return
			}
			mods.Duplicate = append(mods.Duplicate, Duplication{Source: src, Target: dst})
		})
		if parseErr != nil {
			return parseErr
		}
	}

	deriveSection, found, err := childMap(section, keyDerive)
	if err != nil {
		return err
	}
	if found {
		mods.Derive.Attributes, err = childStringList(deriveSection, keyDeriveAttributes)
		if err != nil {
			return fmt.Errorf("Parsing %s: %s", keyDerive, err)
		}
		deriveSources, found, err := childMap(deriveSection, keyDeriveSources)
		if err != nil {
			return fmt.Errorf("Parsing %s: %s", keyDerive, err)
		}
		if found {
			if err := parseSources(deriveSources, keyDerive+"."+keyDeriveSources, mods.Derive.Sources); err != nil {
				return err
			}
		}
	}

	implyRules, err := parseImply(section)
	if err != nil {
		return err
	}
	mods.Imply = implyRules

	mods.Remove, err = childStringList(section, keyRemove)
	if err != nil {
		return err
	}
	return nil
}

func parseAttrValues(section *orderedmap.Map, context string) ([]AttrValue, error) {
	var result []AttrValue
	var parseErr error
	section.Iterate(func(name string, val interface{}) {
		if parseErr != nil {
			return
		}
		str, ok := scalarString(val)
		if !ok {
			parseErr = fmt.Errorf("Expected %s.%s to be a scalar, but was %T", context, name, val)
			return
		}
		result = append(result, AttrValue{Name: name, Value: str})
	})
	return result, parseErr
}

func parseImply(section *orderedmap.Map) ([]ImplyRule, error) {
	val, found := section.Get(keyImply)
	if !found || val == nil {
		return nil, nil
	}
	ruleList, ok := val.([]interface{})
	if !ok {
		return nil, fmt.Errorf("Expected %s to be an array of rules, but was %T", keyImply, val)
	}

	var rules []ImplyRule
	for i, item := range ruleList {
		ruleMap, ok := item.(*orderedmap.Map)
		if !ok {
			return nil, fmt.Errorf("Expected %s[%d] to be a mapping, but was %T", keyImply, i, item)
		}

		ifSection, found, err := childMap(ruleMap, keyImplyIf)
		if err != nil || !found {
			return nil, fmt.Errorf("Expected %s[%d] to have an '%s' mapping", keyImply, i, keyImplyIf)
		}
		thenSection, found, err := childMap(ruleMap, keyImplyThen)
		if err != nil || !found {
			return nil, fmt.Errorf("Expected %s[%d] to have a '%s' mapping", keyImply, i, keyImplyThen)
		}

		var rule ImplyRule
		var parseErr error
		ifSection.Iterate(func(name string, matchVal interface{}) {
			if parseErr != nil {
				return
			}
			values, err := matchValues(matchVal)
			if err != nil {
				parseErr = fmt.Errorf("Parsing %s[%d].%s.%s: %s", keyImply, i, keyImplyIf, name, err)
				return
			}
			rule.If = append(rule.If, AttrMatch{Name: name, Values: values})
		})
		if parseErr != nil {
			return nil, parseErr
		}

		rule.Then, parseErr = parseAttrValues(thenSection, keyImplyThen)
		if parseErr != nil {
			return nil, fmt.Errorf("Parsing %s[%d]: %s", keyImply, i, parseErr)
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

// matchValues accepts a single scalar or a list of alternatives.
func matchValues(val interface{}) ([]string, error) {
	switch typedVal := val.(type) {
	case []interface{}:
		var result []string
		for _, item := range typedVal {
			str, ok := scalarString(item)
			if !ok {
				return nil, fmt.Errorf("Expected scalar, but was %T", item)
			}
			result = append(result, str)
		}
		return result, nil
	default:
		str, ok := scalarString(val)
		if !ok {
			return nil, fmt.Errorf("Expected scalar or array of scalars, but was %T", val)
		}
		return []string{str}, nil
	}
}
