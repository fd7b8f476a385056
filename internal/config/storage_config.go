package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// StorageConfig is the raw storage section. Properties are left undecoded
// beyond generic maps; the storage package resolves and validates them.
type StorageConfig struct {
	DBDirectory    string        `json:"dbDirectory,omitempty" yaml:"dbDirectory,omitempty"`
	IndexDirectory string        `json:"indexDirectory,omitempty" yaml:"indexDirectory,omitempty"`
	Properties     RawProperties `json:"properties,omitempty" yaml:"properties,omitempty"`
}

// RawProperties holds the database entries exactly as written. From YAML,
// every scalar is kept as its source text so "0x400" or "4096.0" reach the
// storage resolver unchanged instead of being reinterpreted by the decoder.
type RawProperties []map[string]any

// UnmarshalYAML decodes a sequence of mappings, keeping scalar values as text.
func (p *RawProperties) UnmarshalYAML(node *yaml.Node) error {
	node = resolveAlias(node)
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		*p = nil
		return nil
	}
	if node.Kind != yaml.SequenceNode {
		return fmt.Errorf("line %d: storage properties must be a list", node.Line)
	}

	entries := make(RawProperties, 0, len(node.Content))
	for _, item := range node.Content {
		item = resolveAlias(item)
		if item.Kind != yaml.MappingNode {
			return fmt.Errorf("line %d: storage property must be a mapping", item.Line)
		}

		entry := make(map[string]any, len(item.Content)/2)
		for i := 0; i+1 < len(item.Content); i += 2 {
			key := resolveAlias(item.Content[i])
			value, err := rawValue(item.Content[i+1])
			if err != nil {
				return err
			}
			entry[key.Value] = value
		}
		entries = append(entries, entry)
	}

	*p = entries
	return nil
}

// rawValue returns the source text of a scalar, nil for null, and the
// generic decoding of anything nested.
func rawValue(node *yaml.Node) (any, error) {
	node = resolveAlias(node)
	if node.Kind != yaml.ScalarNode {
		var v any
		if err := node.Decode(&v); err != nil {
			return nil, err
		}
		return v, nil
	}
	if node.Tag == "!!null" {
		return nil, nil
	}
	return node.Value, nil
}

func resolveAlias(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}

// NewDefaultStorageConfig creates default storage configuration
func NewDefaultStorageConfig() StorageConfig {
	return StorageConfig{
		DBDirectory:    DefaultStorageDBDirectory,
		IndexDirectory: DefaultStorageIndexDirectory,
		Properties:     RawProperties{},
	}
}
