// Copyright 2025 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package projconf

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"carvel.dev/pep/pkg/expand"
	"carvel.dev/pep/pkg/orderedmap"
)

// Project is a loaded descriptor. It is immutable: amendment activation
// returns a new Project and leaves the receiver untouched.
type Project struct {
	path string
	dir  string

	// base is the pristine post-import tree; tree is the effective view
	// (identical to base until an amendment is activated).
	base *orderedmap.Map
	tree *orderedmap.Map

	amendments []Amendment
	active     string
}

func (p *Project) Path() string { return p.path }
func (p *Project) Dir() string  { return p.dir }

// Name returns the top-level `name` scalar, falling back to the
// descriptor's directory name.
func (p *Project) Name() string {
	name, found, err := childString(p.tree, keyName)
	if err != nil || !found || name == "" {
		return filepath.Base(p.dir)
	}
	return name
}

// Config returns a deep copy of the effective configuration tree.
func (p *Project) Config() *orderedmap.Map {
	return p.tree.DeepCopy()
}

// Scope resolves variable names against top-level scalar config values.
func (p *Project) Scope() expand.Scope {
	return expand.ScopeFunc(func(name string) (string, bool) {
		val, found := p.tree.Get(name)
		if !found {
			return "", false
		}
		str, ok := scalarString(val)
		if !ok {
			return "", false
		}
		return str, true
	})
}

// SampleAnnotationPath returns the annotation table location, with {name}
// placeholders expanded and relative paths anchored at the descriptor's
// directory.
func (p *Project) SampleAnnotationPath() (string, error) {
	path, found, err := p.metadataPath(keySampleAnnotation)
	if err != nil {
		return "", err
	}
	if !found {
		return "", fmt.Errorf("Expected '%s.%s' to be set", keyMetadata, keySampleAnnotation)
	}
	return path, nil
}

// SampleSubannotationPath returns the subsample table location, if declared.
func (p *Project) SampleSubannotationPath() (string, bool, error) {
	path, found, err := p.metadataPath(keySubannotation)
	return path, found, err
}

// OutputDirPath returns metadata.output_dir, if declared.
func (p *Project) OutputDirPath() (string, bool, error) {
	path, found, err := p.metadataPath(keyOutputDir)
	return path, found, err
}

func (p *Project) metadataPath(key string) (string, bool, error) {
	metadata, found, err := childMap(p.tree, keyMetadata)
	if err != nil || !found {
		return "", false, err
	}
	raw, found, err := childString(metadata, key)
	if err != nil || !found || raw == "" {
		return "", false, err
	}

	expanded, err := expand.Expand(raw, p.Scope(), expand.EnvScope())
	if err != nil {
		return "", false, fmt.Errorf("Expanding '%s.%s': %s", keyMetadata, key, err)
	}
	if !filepath.IsAbs(expanded) {
		expanded = filepath.Join(p.dir, expanded)
	}
	return expanded, true, nil
}

// AsYAML renders the effective configuration tree in document order.
func (p *Project) AsYAML() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(p.tree); err != nil {
		return nil, fmt.Errorf("Encoding config as YAML: %s", err)
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// AsTOML renders the effective configuration tree. TOML requires values
// after tables, so key order follows TOML conventions rather than the
// descriptor.
func (p *Project) AsTOML() ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(p.tree.AsUnordered()); err != nil {
		return nil, fmt.Errorf("Encoding config as TOML: %s", err)
	}
	return buf.Bytes(), nil
}
