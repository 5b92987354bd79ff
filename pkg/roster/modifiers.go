// Copyright 2025 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package roster

import (
	"fmt"
	"strings"

	"carvel.dev/pep/pkg/expand"
	"carvel.dev/pep/pkg/projconf"
)

// applyModifiers runs the five modifier stages in their fixed order. Later
// stages depend on earlier outputs: imply matches post-derive values, and
// remove runs last so it can retract anything produced earlier.
func (b *builder) applyModifiers() {
	b.applyAppend()
	b.applyDuplicate()
	b.applyDerive()
	b.applyImply()
	b.applyRemove()
}

// applyAppend adds attributes verbatim to every sample. It has the lowest
// precedence: existing values are never overwritten.
func (b *builder) applyAppend() {
	for _, sample := range b.samples {
		for _, attr := range b.mods.Append {
			sample.SetIfAbsent(attr.Name, attr.Value)
		}
	}
}

// applyDuplicate clones named attributes under new names, sample-local.
// A target name that already exists is never overwritten; the clone gets
// a deterministic numeric suffix instead.
func (b *builder) applyDuplicate() {
	for _, sample := range b.samples {
		for _, dup := range b.mods.Duplicate {
			values, found := sample.Values(dup.Source)
			if !found {
				b.diag(sample.Name(), dup.Source, "duplicate: attribute not present; clone skipped")
				continue
			}
			target := dup.Target
			if sample.Has(target) {
				for n := 2; ; n++ {
					candidate := fmt.Sprintf("%s_%d", dup.Target, n)
					if !sample.Has(candidate) {
						target = candidate
						break
					}
				}
				b.diag(sample.Name(), dup.Target, fmt.Sprintf("duplicate: target already exists; cloned as '%s'", target))
			}
			sample.Set(target, append([]string(nil), values...)...)
		}
	}
}

// applyDerive replaces attribute value tokens that name a declared data
// source with the expanded template. Tokens expand independently and
// rejoin in order. Failures degrade the affected token and continue.
func (b *builder) applyDerive() {
	projScope := b.project.Scope()
	envScope := expand.EnvScope()

	for _, sample := range b.samples {
		scopes := []expand.Scope{sample.Scope(), projScope, envScope}

		for _, attrName := range b.mods.Derive.Attributes {
			values, found := sample.Values(attrName)
			if !found {
				continue
			}
			tokens := strings.Fields(strings.Join(values, " "))
			if len(tokens) == 0 {
				continue
			}

			newValues, ok := b.deriveTokens(sample, attrName, tokens, scopes)
			if ok {
				sample.Set(attrName, newValues...)
			}
		}
	}
}

// deriveTokens expands one attribute's tokens. ok=false means the
// attribute must keep its pre-derive value (wildcard vs subsample-merge
// conflict).
func (b *builder) deriveTokens(sample *Sample, attrName string, tokens []string, scopes []expand.Scope) ([]string, bool) {
	subsampleMerged := b.touched[sample.Name()][attrName]

	var result []string
	for _, token := range tokens {
		template, isSource := b.mods.Derive.Sources[token]
		if !isSource {
			result = append(result, token)
			continue
		}

		expanded, err := expand.Expand(template, scopes...)
		if err != nil {
			// Non-fatal: the pre-derive token stays in place.
			b.diag(sample.Name(), attrName, fmt.Sprintf("derive: %s", err))
			result = append(result, token)
			continue
		}

		if !expand.HasWildcard(expanded) {
			result = append(result, expanded)
			continue
		}

		if subsampleMerged {
			// Subsample rows outrank wildcard expansion for the same
			// attribute; keep the merged value and flag the conflict.
			b.diag(sample.Name(), attrName, fmt.Sprintf("derive: subsample-merged value kept over wildcard template '%s'", template))
			return nil, false
		}

		matches, err := expand.Glob(expanded)
		if err != nil {
			b.diag(sample.Name(), attrName, fmt.Sprintf("derive: %s", err))
			result = append(result, token)
			continue
		}
		// Zero matches contribute nothing, joining to "".
		result = append(result, matches...)
	}
	if result == nil {
		result = []string{}
	}
	return result, true
}

// applyImply evaluates trigger rules against post-derive values, in
// declaration order; every matching rule overwrites its targets, so
// later-declared rules win.
func (b *builder) applyImply() {
	for _, sample := range b.samples {
		for _, rule := range b.mods.Imply {
			if !ruleMatches(sample, rule.If) {
				continue
			}
			for _, attr := range rule.Then {
				sample.Set(attr.Name, attr.Value)
			}
		}
	}
}

func ruleMatches(sample *Sample, conditions []projconf.AttrMatch) bool {
	for _, cond := range conditions {
		if !sample.Has(cond.Name) {
			return false
		}
		val := sample.Attr(cond.Name)
		matched := false
		for _, want := range cond.Values {
			if val == want {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}

// applyRemove deletes named attributes. sample_name survives: removing it
// would destroy the record's identity.
func (b *builder) applyRemove() {
	for _, sample := range b.samples {
		for _, name := range b.mods.Remove {
			if name == NameAttr {
				b.diag(sample.Name(), name, "remove: sample_name cannot be removed")
				continue
			}
			sample.Delete(name)
		}
	}
}
