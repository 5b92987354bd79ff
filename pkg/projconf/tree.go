// Copyright 2025 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package projconf

import (
	"fmt"
	"strconv"

	"carvel.dev/pep/pkg/orderedmap"
)

func childMap(tree *orderedmap.Map, key string) (*orderedmap.Map, bool, error) {
	val, found := tree.Get(key)
	if !found || val == nil {
		return nil, false, nil
	}
	typedVal, ok := val.(*orderedmap.Map)
	if !ok {
		return nil, false, fmt.Errorf("Expected '%s' to be a mapping, but was %T", key, val)
	}
	return typedVal, true, nil
}

func childString(tree *orderedmap.Map, key string) (string, bool, error) {
	val, found := tree.Get(key)
	if !found || val == nil {
		return "", false, nil
	}
	str, ok := scalarString(val)
	if !ok {
		return "", false, fmt.Errorf("Expected '%s' to be a scalar, but was %T", key, val)
	}
	return str, true, nil
}

// childStringList accepts either a sequence of scalars or a single scalar.
func childStringList(tree *orderedmap.Map, key string) ([]string, error) {
	val, found := tree.Get(key)
	if !found || val == nil {
		return nil, nil
	}
	switch typedVal := val.(type) {
	case []interface{}:
		var result []string
		for i, item := range typedVal {
			str, ok := scalarString(item)
			if !ok {
				return nil, fmt.Errorf("Expected '%s[%d]' to be a scalar, but was %T", key, i, item)
			}
			result = append(result, str)
		}
		return result, nil
	default:
		str, ok := scalarString(val)
		if !ok {
			return nil, fmt.Errorf("Expected '%s' to be a scalar or array of scalars, but was %T", key, val)
		}
		return []string{str}, nil
	}
}

// scalarString renders a YAML scalar the way it would appear in the
// descriptor (no float noise on integers, `true`/`false` for bools).
func scalarString(val interface{}) (string, bool) {
	switch typedVal := val.(type) {
	case string:
		return typedVal, true
	case int:
		return strconv.Itoa(typedVal), true
	case int64:
		return strconv.FormatInt(typedVal, 10), true
	case uint64:
		return strconv.FormatUint(typedVal, 10), true
	case float64:
		return strconv.FormatFloat(typedVal, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(typedVal), true
	case nil:
		return "", true
	default:
		return "", false
	}
}
