// Copyright 2025 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package resolve_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"carvel.dev/pep/pkg/cmd/resolve"
	"carvel.dev/pep/pkg/cmd/ui"
)

func writeProject(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0600))
	}
	return dir
}

func TestResolveWritesTable(t *testing.T) {
	dir := writeProject(t, map[string]string{
		"project.yaml": `
metadata:
  sample_annotation: samples.csv
data_sources:
  source1: "/x/{organism}_{time}h.fastq"
sample_modifiers:
  derive:
    attributes: [file]
`,
		"samples.csv": "sample_name,organism,time,file\npig_0h,pig,0,source1\n",
	})

	outPath := filepath.Join(dir, "resolved.csv")
	opts := resolve.NewOptions()
	opts.ConfigPath = filepath.Join(dir, "project.yaml")
	opts.OutputPath = outPath

	var stdout, stderr bytes.Buffer
	require.NoError(t, opts.RunWithUI(ui.NewCustomWriterTTY(false, &stdout, &stderr)))

	out, err := os.ReadFile(outPath)
	require.NoError(t, err)
	require.Equal(t, "sample_name,organism,time,file\npig_0h,pig,0,/x/pig_0h.fastq\n", string(out))
	require.Empty(t, stderr.String())
}

func TestResolveReportsDiagnosticsOnStderr(t *testing.T) {
	dir := writeProject(t, map[string]string{
		"project.yaml": `
metadata:
  sample_annotation: samples.csv
data_sources:
  source1: "/x/{missing}.fastq"
sample_modifiers:
  derive:
    attributes: [file]
`,
		"samples.csv": "sample_name,file\nfrog_1,source1\n",
	})

	opts := resolve.NewOptions()
	opts.ConfigPath = filepath.Join(dir, "project.yaml")
	opts.OutputPath = filepath.Join(dir, "resolved.csv")

	var stdout, stderr bytes.Buffer
	require.NoError(t, opts.RunWithUI(ui.NewCustomWriterTTY(false, &stdout, &stderr)))

	require.Contains(t, stderr.String(), "Warning:")
	require.Contains(t, stderr.String(), "missing")
}

func TestResolveWithAmendment(t *testing.T) {
	dir := writeProject(t, map[string]string{
		"project.yaml": `
metadata:
  sample_annotation: samples.csv
amendments:
  newlib:
    metadata:
      sample_annotation: samples_newlib.csv
`,
		"samples.csv":        "sample_name\nfrog_1\n",
		"samples_newlib.csv": "sample_name\nfrog_1_newlib\n",
	})

	outPath := filepath.Join(dir, "resolved.csv")
	opts := resolve.NewOptions()
	opts.ConfigPath = filepath.Join(dir, "project.yaml")
	opts.Amendment = "newlib"
	opts.OutputPath = outPath

	require.NoError(t, opts.RunWithUI(ui.NewCustomWriterTTY(false, nil, nil)))

	out, err := os.ReadFile(outPath)
	require.NoError(t, err)
	require.Equal(t, "sample_name\nfrog_1_newlib\n", string(out))
}

func TestResolveUnknownAmendmentFails(t *testing.T) {
	dir := writeProject(t, map[string]string{
		"project.yaml": "metadata:\n  sample_annotation: samples.csv\n",
		"samples.csv":  "sample_name\nfrog_1\n",
	})

	opts := resolve.NewOptions()
	opts.ConfigPath = filepath.Join(dir, "project.yaml")
	opts.Amendment = "nope"

	err := opts.RunWithUI(ui.NewCustomWriterTTY(false, nil, nil))
	require.Error(t, err)
	require.Contains(t, err.Error(), "'nope'")
}

func TestResolveTSVFormat(t *testing.T) {
	dir := writeProject(t, map[string]string{
		"project.yaml": "metadata:\n  sample_annotation: samples.csv\n",
		"samples.csv":  "sample_name,organism\nfrog_1,frog\n",
	})

	outPath := filepath.Join(dir, "resolved.tsv")
	opts := resolve.NewOptions()
	opts.ConfigPath = filepath.Join(dir, "project.yaml")
	opts.Format = "tsv"
	opts.OutputPath = outPath

	require.NoError(t, opts.RunWithUI(ui.NewCustomWriterTTY(false, nil, nil)))

	out, err := os.ReadFile(outPath)
	require.NoError(t, err)
	require.Equal(t, "sample_name\torganism\nfrog_1\tfrog\n", string(out))
}

func TestResolveRejectsUnknownFormat(t *testing.T) {
	opts := resolve.NewOptions()
	opts.ConfigPath = "ignored.yaml"
	opts.Format = "xlsx"

	err := opts.RunWithUI(ui.NewCustomWriterTTY(false, nil, nil))
	require.Error(t, err)
	require.Contains(t, err.Error(), "xlsx")
}

func TestResolveRequiresConfigFlag(t *testing.T) {
	err := resolve.NewOptions().RunWithUI(ui.NewCustomWriterTTY(false, nil, nil))
	require.Error(t, err)
	require.Contains(t, err.Error(), "--file")
}
