package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// yamlDocument implements Document over a decoded yaml.Node. yaml.v3 is the
// only decoder in reach whose tree retains mapping key order (a plain
// map[string]any from encoding/json would not), which §4.3's determinism
// requirement depends on for both output-discovery order and edge order.
type yamlDocument struct {
	node *yaml.Node
}

// unwrap follows document/alias nodes down to their real content node.
func unwrap(n *yaml.Node) *yaml.Node {
	for n != nil && (n.Kind == yaml.DocumentNode || n.Kind == yaml.AliasNode) {
		if n.Kind == yaml.DocumentNode {
			if len(n.Content) == 0 {
				return n
			}
			n = n.Content[0]
			continue
		}
		n = n.Alias
	}
	return n
}

func (d *yamlDocument) IsMapping() bool {
	return d.node.Kind == yaml.MappingNode
}

func (d *yamlDocument) IsList() bool {
	return d.node.Kind == yaml.SequenceNode
}

func (d *yamlDocument) Keys() []string {
	if d.node.Kind != yaml.MappingNode {
		return nil
	}
	keys := make([]string, 0, len(d.node.Content)/2)
	for i := 0; i < len(d.node.Content); i += 2 {
		keys = append(keys, d.node.Content[i].Value)
	}
	return keys
}

func (d *yamlDocument) Get(key string) (Document, bool) {
	if d.node.Kind != yaml.MappingNode {
		return nil, false
	}
	for i := 0; i+1 < len(d.node.Content); i += 2 {
		if d.node.Content[i].Value == key {
			return &yamlDocument{node: unwrap(d.node.Content[i+1])}, true
		}
	}
	return nil, false
}

func (d *yamlDocument) AsList() []Document {
	if d.node.Kind != yaml.SequenceNode {
		return nil
	}
	out := make([]Document, 0, len(d.node.Content))
	for _, c := range d.node.Content {
		out = append(out, &yamlDocument{node: unwrap(c)})
	}
	return out
}

func (d *yamlDocument) AsString() (string, bool) {
	if d.node.Kind != yaml.ScalarNode {
		return "", false
	}
	return d.node.Value, true
}

// LoadJSON decodes JSON (valid YAML 1.2) from data into a Document, preserving
// mapping key order.
func LoadJSON(data []byte) (Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("config: parsing document: %w", err)
	}
	return &yamlDocument{node: unwrap(&root)}, nil
}
