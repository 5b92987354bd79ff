// Copyright 2025 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package orderedmap_test

import (
	"fmt"
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"carvel.dev/pep/pkg/orderedmap"
)

func TestYAMLRoundTripKeepsDocumentOrder(t *testing.T) {
	input := `name: example
metadata:
  sample_annotation: samples.csv
  output_dir: results
data_sources:
  src_b: "{root}/b"
  src_a: "{root}/a"
values:
- 1
- two
- nested: true
`

	m := orderedmap.NewMap()
	require.NoError(t, yaml.Unmarshal([]byte(input), m))

	require.Equal(t, []string{"name", "metadata", "data_sources", "values"}, m.Keys())

	sources, _ := m.Get("data_sources")
	require.Equal(t, []string{"src_b", "src_a"}, sources.(*orderedmap.Map).Keys())

	out, err := yaml.Marshal(m)
	require.NoError(t, err)

	reparsed := orderedmap.NewMap()
	require.NoError(t, yaml.Unmarshal(out, reparsed))
	require.Equal(t, m.AsUnordered(), reparsed.AsUnordered())
	require.Equal(t, m.Keys(), reparsed.Keys())
}

func TestYAMLRejectsNonMappingRoot(t *testing.T) {
	m := orderedmap.NewMap()
	err := yaml.Unmarshal([]byte("- 1\n- 2\n"), m)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Expected YAML mapping")
}

func TestYAMLRoundTripFuzzedScalars(t *testing.T) {
	// Printable-but-awkward strings (quotes, colons, leading dashes) must
	// survive encode/decode unchanged.
	awkwardRange := fuzz.UnicodeRange{First: ' ', Last: '~'}
	fuzzer := fuzz.New().NumElements(1, 8).Funcs(func(s *string, c fuzz.Continue) {
		awkwardRange.CustomStringFuzzFunc()(s, c)
	})

	for i := 0; i < 50; i++ {
		m := orderedmap.NewMap()
		var keys []string
		fuzzer.Fuzz(&keys)
		for j, key := range keys {
			var val string
			fuzzer.Fuzz(&val)
			m.Set(fmt.Sprintf("k%d_%s", j, key), val)
		}

		out, err := yaml.Marshal(m)
		require.NoError(t, err)

		reparsed := orderedmap.NewMap()
		require.NoError(t, yaml.Unmarshal(out, reparsed))
		require.Equal(t, m.Keys(), reparsed.Keys(), "iteration %d input:\n%s", i, out)
		require.Equal(t, m.AsUnordered(), reparsed.AsUnordered(), "iteration %d input:\n%s", i, out)
	}
}
