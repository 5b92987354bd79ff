// Copyright 2025 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package orderedmap

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

var _ yaml.Unmarshaler = &Map{}
var _ yaml.Marshaler = &Map{}

// UnmarshalYAML decodes a YAML mapping node preserving document key order.
// Non-string keys are rejected; nested mappings become *Map.
func (m *Map) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("Expected YAML mapping at line %d, but found %s", node.Line, kindDesc(node.Kind))
	}
	m.items = nil
	for i := 0; i < len(node.Content); i += 2 {
		keyNode, valNode := node.Content[i], node.Content[i+1]
		var key string
		if err := keyNode.Decode(&key); err != nil {
			return fmt.Errorf("Expected string key at line %d: %s", keyNode.Line, err)
		}
		val, err := decodeNode(valNode)
		if err != nil {
			return err
		}
		m.Set(key, val)
	}
	return nil
}

func decodeNode(node *yaml.Node) (interface{}, error) {
	if node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	switch node.Kind {
	case yaml.MappingNode:
		result := NewMap()
		if err := result.UnmarshalYAML(node); err != nil {
			return nil, err
		}
		return result, nil
	case yaml.SequenceNode:
		var result []interface{}
		for _, itemNode := range node.Content {
			item, err := decodeNode(itemNode)
			if err != nil {
				return nil, err
			}
			result = append(result, item)
		}
		return result, nil
	default:
		var val interface{}
		if err := node.Decode(&val); err != nil {
			return nil, fmt.Errorf("Decoding scalar at line %d: %s", node.Line, err)
		}
		return val, nil
	}
}

// MarshalYAML encodes the tree as a mapping node in key insertion order.
func (m *Map) MarshalYAML() (interface{}, error) {
	return encodeMapNode(m)
}

func encodeMapNode(m *Map) (*yaml.Node, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, item := range m.items {
		keyNode := &yaml.Node{}
		if err := keyNode.Encode(item.Key); err != nil {
			return nil, err
		}
		valNode, err := encodeNode(item.Value)
		if err != nil {
			return nil, err
		}
		node.Content = append(node.Content, keyNode, valNode)
	}
	return node, nil
}

func encodeNode(val interface{}) (*yaml.Node, error) {
	switch typedVal := val.(type) {
	case *Map:
		return encodeMapNode(typedVal)
	case []interface{}:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range typedVal {
			itemNode, err := encodeNode(item)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, itemNode)
		}
		return node, nil
	default:
		node := &yaml.Node{}
		if err := node.Encode(val); err != nil {
			return nil, err
		}
		return node, nil
	}
}

func kindDesc(kind yaml.Kind) string {
	switch kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "array"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown node"
	}
}
