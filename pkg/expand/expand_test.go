// Copyright 2025 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package expand_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"carvel.dev/pep/pkg/expand"
)

func TestExpandScopePrecedence(t *testing.T) {
	sample := expand.MapScope{"organism": "pig", "time": "0"}
	project := expand.MapScope{"organism": "frog", "parent": "/data"}

	result, err := expand.Expand("{parent}/{organism}_{time}h.fastq", sample, project)
	require.NoError(t, err)
	require.Equal(t, "/data/pig_0h.fastq", result)
}

func TestExpandEnvScopeIsLastResort(t *testing.T) {
	t.Setenv("PEP_TEST_GENOME", "hg38")

	result, err := expand.Expand("{PEP_TEST_GENOME}", expand.MapScope{}, expand.EnvScope())
	require.NoError(t, err)
	require.Equal(t, "hg38", result)

	result, err = expand.Expand("{PEP_TEST_GENOME}", expand.MapScope{"PEP_TEST_GENOME": "mm10"}, expand.EnvScope())
	require.NoError(t, err)
	require.Equal(t, "mm10", result)
}

func TestExpandUnresolvedVariable(t *testing.T) {
	_, err := expand.Expand("/x/{missing}.fastq", expand.MapScope{})
	require.Error(t, err)

	var unresolvedErr expand.UnresolvedVariableError
	require.True(t, errors.As(err, &unresolvedErr))
	require.Equal(t, "missing", unresolvedErr.Name)
	require.Equal(t, "/x/{missing}.fastq", unresolvedErr.Template)
}

func TestExpandLiteralBraces(t *testing.T) {
	scope := expand.MapScope{"name": "frog_1"}

	for _, tc := range []struct{ template, expected string }{
		{"no placeholders", "no placeholders"},
		{"unclosed {name", "unclosed {name"},
		{"{not-a-name}", "{not-a-name}"},
		{"{}", "{}"},
		{"{name} and {not a name}", "frog_1 and {not a name}"},
	} {
		result, err := expand.Expand(tc.template, scope)
		require.NoError(t, err, "template %q", tc.template)
		require.Equal(t, tc.expected, result, "template %q", tc.template)
	}
}

func TestExpandPathWildcard(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.fastq", "a.fastq", "c.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0600))
	}

	matches, err := expand.ExpandPath("{dir}/*.fastq", expand.MapScope{"dir": dir})
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(dir, "a.fastq"), filepath.Join(dir, "b.fastq")}, matches)
}

func TestExpandPathWildcardNoMatches(t *testing.T) {
	dir := t.TempDir()

	matches, err := expand.ExpandPath("{dir}/*.fastq", expand.MapScope{"dir": dir})
	require.NoError(t, err)
	require.Empty(t, matches)
}

func TestExpandPathWithoutWildcard(t *testing.T) {
	matches, err := expand.ExpandPath("/x/pig_0h.fastq", expand.MapScope{})
	require.NoError(t, err)
	require.Equal(t, []string{"/x/pig_0h.fastq"}, matches)
}
