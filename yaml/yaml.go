// Package yaml provides a YAML Format implementation.
package yaml

import (
	"fmt"

	"github.com/fieldseal/fieldseal"
	"gopkg.in/yaml.v3"
)

// yamlFormat implements fieldseal.Format for YAML.
type yamlFormat struct{}

// New returns a YAML format.
func New() fieldseal.Format {
	return &yamlFormat{}
}

// ContentType returns the MIME type for YAML.
func (f *yamlFormat) ContentType() string {
	return "application/yaml"
}

// Marshal renders the wire map as a YAML mapping in slot order. Mappings
// are built as yaml.Node trees because yaml.Marshal on a Go map would sort
// keys.
func (f *yamlFormat) Marshal(m *fieldseal.WireMap) ([]byte, error) {
	root := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	var encErr error
	m.Range(func(key string, value any) bool {
		keyNode := &yaml.Node{}
		keyNode.SetString(key)
		valueNode := &yaml.Node{}
		if err := valueNode.Encode(value); err != nil {
			encErr = err
			return false
		}
		root.Content = append(root.Content, keyNode, valueNode)
		return true
	})
	if encErr != nil {
		return nil, encErr
	}
	return yaml.Marshal(root)
}

// Unmarshal parses a YAML mapping into a wire map, preserving key order.
func (f *yamlFormat) Unmarshal(data []byte) (*fieldseal.WireMap, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if len(doc.Content) == 0 {
		return fieldseal.NewWireMap(), nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("yaml: expected mapping, got %v", root.Kind)
	}

	m := fieldseal.NewWireMap()
	for i := 0; i+1 < len(root.Content); i += 2 {
		key := root.Content[i].Value
		var value any
		if err := root.Content[i+1].Decode(&value); err != nil {
			return nil, err
		}
		m.Set(key, value)
	}
	return m, nil
}
