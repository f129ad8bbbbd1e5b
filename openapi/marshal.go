package openapi

import (
	"bytes"

	"github.com/goccy/go-json"
	"go.yaml.in/yaml/v4"
)

// MarshalJSON emits the mapping with properties in declaration order. The
// standard map-based encoding would sort keys alphabetically.
func (p Properties) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, prop := range p {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(prop.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(prop.Schema)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a properties mapping preserving source order.
func (p *Properties) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	// Opening brace
	if _, err := dec.Token(); err != nil {
		return err
	}
	var out Properties
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, _ := tok.(string)
		var schema Schema
		if err := dec.Decode(&schema); err != nil {
			return err
		}
		out = append(out, Property{Name: name, Schema: &schema})
	}
	*p = out
	return nil
}

// MarshalYAML emits an explicit mapping node so YAML output keeps
// declaration order as well.
func (p Properties) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, prop := range p {
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: prop.Name}
		val := &yaml.Node{}
		if err := val.Encode(prop.Schema); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, key, val)
	}
	return node, nil
}

// UnmarshalYAML decodes a properties mapping preserving source order.
func (p *Properties) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return &yaml.TypeError{Errors: []string{"properties must be a mapping"}}
	}
	var out Properties
	for i := 0; i+1 < len(value.Content); i += 2 {
		var schema Schema
		if err := value.Content[i+1].Decode(&schema); err != nil {
			return err
		}
		out = append(out, Property{Name: value.Content[i].Value, Schema: &schema})
	}
	*p = out
	return nil
}
