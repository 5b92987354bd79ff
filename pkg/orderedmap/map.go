// Copyright 2025 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package orderedmap

type Map struct {
	items []MapItem
}

type MapItem struct {
	Key   string
	Value interface{}
}

func NewMap() *Map {
	return &Map{}
}

func NewMapWithItems(items []MapItem) *Map {
	return &Map{items}
}

// Set assigns value to key. An existing key keeps its position;
// a new key is appended.
func (m *Map) Set(key string, value interface{}) {
	for i, item := range m.items {
		if item.Key == key {
			item.Value = value
			m.items[i] = item
			return
		}
	}
	m.items = append(m.items, MapItem{key, value})
}

func (m *Map) Get(key string) (interface{}, bool) {
	for _, item := range m.items {
		if item.Key == key {
			return item.Value, true
		}
	}
	return nil, false
}

func (m *Map) Delete(key string) bool {
	for i, item := range m.items {
		if item.Key == key {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return true
		}
	}
	return false
}

func (m *Map) Len() int { return len(m.items) }

func (m *Map) Keys() []string {
	var keys []string
	for _, item := range m.items {
		keys = append(keys, item.Key)
	}
	return keys
}

func (m *Map) Iterate(iterFunc func(k string, v interface{})) {
	for _, item := range m.items {
		iterFunc(item.Key, item.Value)
	}
}

// DeepCopy returns a copy sharing no mutable state with m. Nested *Map
// and []interface{} values are copied recursively; scalars are shared.
func (m *Map) DeepCopy() *Map {
	result := &Map{items: make([]MapItem, 0, len(m.items))}
	for _, item := range m.items {
		result.items = append(result.items, MapItem{item.Key, DeepCopyValue(item.Value)})
	}
	return result
}

// DeepCopyValue deep-copies any value that may appear in a config tree.
func DeepCopyValue(val interface{}) interface{} {
	switch typedVal := val.(type) {
	case *Map:
		return typedVal.DeepCopy()
	case []interface{}:
		result := make([]interface{}, len(typedVal))
		for i, item := range typedVal {
			result[i] = DeepCopyValue(item)
		}
		return result
	default:
		return typedVal
	}
}

// AsUnordered converts the tree into plain Go maps for consumers that
// cannot take *Map (e.g. TOML encoding).
func (m *Map) AsUnordered() map[string]interface{} {
	result := map[string]interface{}{}
	m.Iterate(func(k string, v interface{}) {
		result[k] = asUnorderedValue(v)
	})
	return result
}

func asUnorderedValue(val interface{}) interface{} {
	switch typedVal := val.(type) {
	case *Map:
		return typedVal.AsUnordered()
	case []interface{}:
		result := make([]interface{}, len(typedVal))
		for i, item := range typedVal {
			result[i] = asUnorderedValue(item)
		}
		return result
	default:
		return typedVal
	}
}
