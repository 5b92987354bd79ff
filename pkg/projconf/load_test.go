// Copyright 2025 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package projconf_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"carvel.dev/pep/pkg/projconf"
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0700))
		require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	}
	return dir
}

func TestLoadMinimalDescriptor(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"project.yaml": `
name: example
metadata:
  sample_annotation: samples.csv
`,
	})

	project, err := projconf.Load(filepath.Join(dir, "project.yaml"))
	require.NoError(t, err)
	require.Equal(t, "example", project.Name())

	annPath, err := project.SampleAnnotationPath()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "samples.csv"), annPath)

	_, found, err := project.SampleSubannotationPath()
	require.NoError(t, err)
	require.False(t, found)
}

func TestLoadMissingSampleAnnotationFails(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"project.yaml": "metadata:\n  output_dir: results\n",
	})

	_, err := projconf.Load(filepath.Join(dir, "project.yaml"))
	require.Error(t, err)

	var loadErr projconf.ConfigLoadError
	require.True(t, errors.As(err, &loadErr))
	require.Contains(t, err.Error(), "sample_annotation")
}

func TestLoadMalformedYAMLFails(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"project.yaml": "metadata: [unclosed\n",
	})

	_, err := projconf.Load(filepath.Join(dir, "project.yaml"))
	var loadErr projconf.ConfigLoadError
	require.True(t, errors.As(err, &loadErr))
}

func TestLoadMissingFileFails(t *testing.T) {
	_, err := projconf.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	var loadErr projconf.ConfigLoadError
	require.True(t, errors.As(err, &loadErr))
}

func TestImportsShallowMergeMainWins(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"base.yaml": `
name: base
genome: hg19
metadata:
  sample_annotation: base.csv
`,
		"extra.yaml": `
genome: hg38
lab: smith
`,
		"project.yaml": `
imports:
- base.yaml
- extra.yaml
name: main
metadata:
  sample_annotation: samples.csv
`,
	})

	project, err := projconf.Load(filepath.Join(dir, "project.yaml"))
	require.NoError(t, err)

	// Main file wins over imports; later imports win over earlier ones.
	require.Equal(t, "main", project.Name())

	scope := project.Scope()
	genome, found := scope.Lookup("genome")
	require.True(t, found)
	require.Equal(t, "hg38", genome)
	lab, found := scope.Lookup("lab")
	require.True(t, found)
	require.Equal(t, "smith", lab)

	// Main file's metadata replaces the import's (shallow merge).
	annPath, err := project.SampleAnnotationPath()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "samples.csv"), annPath)
}

func TestImportsAreRecursive(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"grandparent.yaml": "lab: smith\n",
		"parent.yaml":      "imports: grandparent.yaml\ngenome: hg38\n",
		"project.yaml": `
imports:
- parent.yaml
metadata:
  sample_annotation: samples.csv
`,
	})

	project, err := projconf.Load(filepath.Join(dir, "project.yaml"))
	require.NoError(t, err)

	lab, found := project.Scope().Lookup("lab")
	require.True(t, found)
	require.Equal(t, "smith", lab)
}

func TestImportCycleFails(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"a.yaml": "imports: b.yaml\nmetadata:\n  sample_annotation: samples.csv\n",
		"b.yaml": "imports: a.yaml\n",
	})

	_, err := projconf.Load(filepath.Join(dir, "a.yaml"))
	var loadErr projconf.ConfigLoadError
	require.True(t, errors.As(err, &loadErr))
	require.Contains(t, err.Error(), "acyclic")
}

func TestDiamondImportsAllowed(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"shared.yaml": "lab: smith\n",
		"left.yaml":   "imports: shared.yaml\n",
		"right.yaml":  "imports: shared.yaml\n",
		"project.yaml": `
imports:
- left.yaml
- right.yaml
metadata:
  sample_annotation: samples.csv
`,
	})

	_, err := projconf.Load(filepath.Join(dir, "project.yaml"))
	require.NoError(t, err)
}

func TestPepVersionGate(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"ok.yaml":      "pep_version: 2.0.0\nmetadata:\n  sample_annotation: samples.csv\n",
		"future.yaml":  "pep_version: 9.0.0\nmetadata:\n  sample_annotation: samples.csv\n",
		"garbage.yaml": "pep_version: not-a-version\nmetadata:\n  sample_annotation: samples.csv\n",
	})

	_, err := projconf.Load(filepath.Join(dir, "ok.yaml"))
	require.NoError(t, err)

	_, err = projconf.Load(filepath.Join(dir, "future.yaml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "pep_version")

	_, err = projconf.Load(filepath.Join(dir, "garbage.yaml"))
	require.Error(t, err)
}

func TestMetadataPathExpansion(t *testing.T) {
	t.Setenv("PEP_TEST_TABLES", "env_tables")
	dir := writeFiles(t, map[string]string{
		"project.yaml": `
tables_dir: tables
metadata:
  sample_annotation: "{tables_dir}/samples.csv"
  sample_subannotation: "{PEP_TEST_TABLES}/subs.csv"
`,
	})

	project, err := projconf.Load(filepath.Join(dir, "project.yaml"))
	require.NoError(t, err)

	annPath, err := project.SampleAnnotationPath()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "tables", "samples.csv"), annPath)

	subPath, found, err := project.SampleSubannotationPath()
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, filepath.Join(dir, "env_tables", "subs.csv"), subPath)
}

func TestConfigExport(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"project.yaml": `
name: example
metadata:
  sample_annotation: samples.csv
data_sources:
  src_b: "{root}/b"
  src_a: "{root}/a"
`,
	})

	project, err := projconf.Load(filepath.Join(dir, "project.yaml"))
	require.NoError(t, err)

	yamlOut, err := project.AsYAML()
	require.NoError(t, err)
	// Document order survives the round trip.
	require.Contains(t, string(yamlOut), "src_b: '{root}/b'\n  src_a: '{root}/a'")

	tomlOut, err := project.AsTOML()
	require.NoError(t, err)
	require.Contains(t, string(tomlOut), "[data_sources]")
}
