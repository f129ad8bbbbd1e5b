package schemadef

import (
	"bytes"

	json "github.com/goccy/go-json"
	"go.yaml.in/yaml/v4"
)

// File is a parsed definition file: an ordered list of named top-level
// definitions.
type File struct {
	Schemas Definitions `json:"schemas" yaml:"schemas"`
}

// Definitions is an ordered name→definition mapping. Order in the
// source file is preserved, which fixes both compile order and the
// order extended bases must appear in.
type Definitions []NamedDefinition

// NamedDefinition is one top-level entry of a definition file.
type NamedDefinition struct {
	Name       string
	Definition *Definition
}

// Get returns the definition for a name, or nil if absent.
func (d Definitions) Get(name string) *Definition {
	for _, nd := range d {
		if nd.Name == name {
			return nd.Definition
		}
	}
	return nil
}

// Definition is one declarative schema definition. Exactly which keys
// are meaningful depends on the type; Compile reports misuse as
// definition errors.
type Definition struct {
	Type        string `json:"type,omitempty" yaml:"type,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Ref references another top-level definition by name.
	Ref string `json:"ref,omitempty" yaml:"ref,omitempty"`
	// Extends names an earlier top-level object definition this object
	// extends.
	Extends string `json:"extends,omitempty" yaml:"extends,omitempty"`

	// Object keys.
	Properties  Definitions `json:"properties,omitempty" yaml:"properties,omitempty"`
	Strict      bool        `json:"strict,omitempty" yaml:"strict,omitempty"`
	Passthrough bool        `json:"passthrough,omitempty" yaml:"passthrough,omitempty"`
	Catchall    *Definition `json:"catchall,omitempty" yaml:"catchall,omitempty"`

	// Wrapper keys. A nil Default means no default; a null default in
	// the source is not distinguishable and is treated as absent.
	Optional bool `json:"optional,omitempty" yaml:"optional,omitempty"`
	Nullable bool `json:"nullable,omitempty" yaml:"nullable,omitempty"`
	Default  any  `json:"default,omitempty" yaml:"default,omitempty"`

	// Value keys.
	Enum  []any `json:"enum,omitempty" yaml:"enum,omitempty"`
	Const any   `json:"const,omitempty" yaml:"const,omitempty"`

	// Composite keys.
	Items         *Definition   `json:"items,omitempty" yaml:"items,omitempty"`
	PrefixItems   []*Definition `json:"prefixItems,omitempty" yaml:"prefixItems,omitempty"`
	Values        *Definition   `json:"values,omitempty" yaml:"values,omitempty"`
	Variants      []*Definition `json:"variants,omitempty" yaml:"variants,omitempty"`
	Discriminator string        `json:"discriminator,omitempty" yaml:"discriminator,omitempty"`

	// Leaf constraints.
	Format    string   `json:"format,omitempty" yaml:"format,omitempty"`
	Pattern   string   `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	MinLength *int     `json:"minLength,omitempty" yaml:"minLength,omitempty"`
	MaxLength *int     `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
	Minimum   *float64 `json:"minimum,omitempty" yaml:"minimum,omitempty"`
	Maximum   *float64 `json:"maximum,omitempty" yaml:"maximum,omitempty"`
	MinItems  *int     `json:"minItems,omitempty" yaml:"minItems,omitempty"`
	MaxItems  *int     `json:"maxItems,omitempty" yaml:"maxItems,omitempty"`
}

// UnmarshalJSON decodes a definitions mapping preserving source order.
func (d *Definitions) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	// Opening brace
	if _, err := dec.Token(); err != nil {
		return err
	}
	var out Definitions
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, _ := tok.(string)
		var def Definition
		if err := dec.Decode(&def); err != nil {
			return err
		}
		out = append(out, NamedDefinition{Name: name, Definition: &def})
	}
	*d = out
	return nil
}

// MarshalJSON emits the mapping in declaration order.
func (d Definitions) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, nd := range d {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(nd.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(nd.Definition)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalYAML decodes a definitions mapping preserving source order.
func (d *Definitions) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return &yaml.TypeError{Errors: []string{"schema definitions must be a mapping"}}
	}
	var out Definitions
	for i := 0; i+1 < len(value.Content); i += 2 {
		var def Definition
		if err := value.Content[i+1].Decode(&def); err != nil {
			return err
		}
		out = append(out, NamedDefinition{Name: value.Content[i].Value, Definition: &def})
	}
	*d = out
	return nil
}

// MarshalYAML emits an explicit mapping node keeping declaration order.
func (d Definitions) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, nd := range d {
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: nd.Name}
		val := &yaml.Node{}
		if err := val.Encode(nd.Definition); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, key, val)
	}
	return node, nil
}
