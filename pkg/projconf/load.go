// Copyright 2025 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package projconf

import (
	"fmt"
	"os"
	"path/filepath"

	goversion "github.com/hashicorp/go-version"
	"gopkg.in/yaml.v3"

	"carvel.dev/pep/pkg/orderedmap"
	"carvel.dev/pep/pkg/version"
)

const (
	keyImports          = "imports"
	keyPepVersion       = "pep_version"
	keyMetadata         = "metadata"
	keySampleAnnotation = "sample_annotation"
	keySubannotation    = "sample_subannotation"
	keyOutputDir        = "output_dir"
	keyDataSources      = "data_sources"
	keyModifiers        = "sample_modifiers"
	keyAmendments       = "amendments"
	keySubprojects      = "subprojects"
	keyName             = "name"
)

// Load reads a project descriptor, resolves its imports and returns an
// immutable Project. All structural problems (unreadable file, malformed
// YAML, import cycle, missing metadata.sample_annotation, bad pep_version,
// duplicate amendment name) surface as ConfigLoadError.
func Load(path string) (*Project, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, ConfigLoadError{Path: path, Err: err}
	}

	tree, err := loadTree(absPath, map[string]struct{}{})
	if err != nil {
		return nil, ConfigLoadError{Path: path, Err: err}
	}

	if err := checkDescriptorVersion(tree); err != nil {
		return nil, ConfigLoadError{Path: path, Err: err}
	}
	if err := checkMetadata(tree); err != nil {
		return nil, ConfigLoadError{Path: path, Err: err}
	}

	amendments, err := parseAmendments(tree)
	if err != nil {
		return nil, ConfigLoadError{Path: path, Err: err}
	}

	return &Project{
		path:       absPath,
		dir:        filepath.Dir(absPath),
		base:       tree,
		tree:       tree,
		amendments: amendments,
	}, nil
}

// loadTree parses one descriptor file and shallow-merges its imports under
// it. visiting holds the chain of files currently being loaded, so an
// import cycle is caught explicitly rather than by exhausting the stack.
func loadTree(absPath string, visiting map[string]struct{}) (*orderedmap.Map, error) {
	if _, found := visiting[absPath]; found {
		return nil, fmt.Errorf("Expected imports to be acyclic, but '%s' imports itself (directly or transitively)", absPath)
	}
	visiting[absPath] = struct{}{}
	defer delete(visiting, absPath)

	data, err := os.ReadFile(absPath)
	if err != nil {
		return nil, err
	}

	tree := orderedmap.NewMap()
	if err := yaml.Unmarshal(data, tree); err != nil {
		return nil, fmt.Errorf("Parsing '%s': %s", absPath, err)
	}

	importPaths, err := childStringList(tree, keyImports)
	if err != nil {
		return nil, fmt.Errorf("Parsing '%s': %s", absPath, err)
	}
	if len(importPaths) == 0 {
		return tree, nil
	}

	// Imports merge shallowly in list order (later imports win over
	// earlier ones); the importing file wins over all of its imports.
	result := orderedmap.NewMap()
	for _, importPath := range importPaths {
		if !filepath.IsAbs(importPath) {
			importPath = filepath.Join(filepath.Dir(absPath), importPath)
		}
		imported, err := loadTree(importPath, visiting)
		if err != nil {
			return nil, err
		}
		imported.Iterate(func(k string, v interface{}) {
			result.Set(k, v)
		})
	}
	tree.Iterate(func(k string, v interface{}) {
		result.Set(k, v)
	})
	result.Delete(keyImports)
	return result, nil
}

func checkDescriptorVersion(tree *orderedmap.Map) error {
	declared, found, err := childString(tree, keyPepVersion)
	if err != nil || !found {
		return err
	}

	declaredVersion, err := goversion.NewVersion(declared)
	if err != nil {
		return fmt.Errorf("Parsing %s '%s': %s", keyPepVersion, declared, err)
	}
	supported := goversion.Must(goversion.NewVersion(version.DescriptorVersion))
	if declaredVersion.GreaterThan(supported) {
		return fmt.Errorf("Expected %s <= %s (newest supported by this pep), but was %s",
			keyPepVersion, version.DescriptorVersion, declared)
	}
	return nil
}

func checkMetadata(tree *orderedmap.Map) error {
	metadata, found, err := childMap(tree, keyMetadata)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("Expected descriptor to have a '%s' section", keyMetadata)
	}
	annotation, found, err := childString(metadata, keySampleAnnotation)
	if err != nil {
		return err
	}
	if !found || annotation == "" {
		return fmt.Errorf("Expected '%s.%s' to name the sample annotation table", keyMetadata, keySampleAnnotation)
	}
	return nil
}
