package openapi

// Schema represents one synthesized schema fragment. It is a trimmed JSON
// Schema superset: only keys the generator and leaf generators produce are
// modeled. Field order mirrors emission order in marshaled output.
type Schema struct {
	// Reference
	Ref string `yaml:"$ref,omitempty" json:"$ref,omitempty"`

	// Metadata
	Title       string `yaml:"title,omitempty" json:"title,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Default     any    `yaml:"default,omitempty" json:"default,omitempty"`
	Example     any    `yaml:"example,omitempty" json:"example,omitempty"`

	// Type validation
	Type     string `yaml:"type,omitempty" json:"type,omitempty"`
	Format   string `yaml:"format,omitempty" json:"format,omitempty"`
	Enum     []any  `yaml:"enum,omitempty" json:"enum,omitempty"`
	Const    any    `yaml:"const,omitempty" json:"const,omitempty"`
	Nullable bool   `yaml:"nullable,omitempty" json:"nullable,omitempty"`

	// Numeric validation
	Minimum *float64 `yaml:"minimum,omitempty" json:"minimum,omitempty"`
	Maximum *float64 `yaml:"maximum,omitempty" json:"maximum,omitempty"`

	// String validation
	MinLength *int   `yaml:"minLength,omitempty" json:"minLength,omitempty"`
	MaxLength *int   `yaml:"maxLength,omitempty" json:"maxLength,omitempty"`
	Pattern   string `yaml:"pattern,omitempty" json:"pattern,omitempty"`

	// Array validation
	Items       *Schema   `yaml:"items,omitempty" json:"items,omitempty"`
	PrefixItems []*Schema `yaml:"prefixItems,omitempty" json:"prefixItems,omitempty"`
	MinItems    *int      `yaml:"minItems,omitempty" json:"minItems,omitempty"`
	MaxItems    *int      `yaml:"maxItems,omitempty" json:"maxItems,omitempty"`

	// Object validation
	Properties           Properties `yaml:"properties,omitempty" json:"properties,omitempty"`
	Required             []string   `yaml:"required,omitempty" json:"required,omitempty"`
	AdditionalProperties any        `yaml:"additionalProperties,omitempty" json:"additionalProperties,omitempty"` // *Schema or bool

	// Schema composition
	AllOf []*Schema `yaml:"allOf,omitempty" json:"allOf,omitempty"`
	AnyOf []*Schema `yaml:"anyOf,omitempty" json:"anyOf,omitempty"`
	OneOf []*Schema `yaml:"oneOf,omitempty" json:"oneOf,omitempty"`
	Not   *Schema   `yaml:"not,omitempty" json:"not,omitempty"`

	// Polymorphism
	Discriminator *Discriminator `yaml:"discriminator,omitempty" json:"discriminator,omitempty"`
}

// Discriminator names the property that selects a oneOf variant.
type Discriminator struct {
	PropertyName string            `yaml:"propertyName" json:"propertyName"`
	Mapping      map[string]string `yaml:"mapping,omitempty" json:"mapping,omitempty"`
}

// NewRef returns a schema fragment that is a bare reference.
func NewRef(ref string) *Schema {
	return &Schema{Ref: ref}
}

// IsRef reports whether the fragment is a bare reference. A fragment
// carrying a $ref never carries sibling keys; the generator wraps in allOf
// when it needs to annotate a reference.
func (s *Schema) IsRef() bool {
	return s != nil && s.Ref != ""
}

// Property is one ordered name/schema pair of an object fragment.
type Property struct {
	Name   string
	Schema *Schema
}

// Properties is an order-preserving properties mapping. The zero value is an
// empty mapping ready to append to.
type Properties []Property

// Get returns the schema for a property name, or nil if absent.
func (p Properties) Get(name string) *Schema {
	for _, prop := range p {
		if prop.Name == name {
			return prop.Schema
		}
	}
	return nil
}

// Names returns the property names in declaration order.
func (p Properties) Names() []string {
	names := make([]string, len(p))
	for i, prop := range p {
		names[i] = prop.Name
	}
	return names
}

// Add appends a property, replacing an existing one with the same name in
// place so declaration order is stable under overrides.
func (p Properties) Add(name string, schema *Schema) Properties {
	for i, prop := range p {
		if prop.Name == name {
			p[i].Schema = schema
			return p
		}
	}
	return append(p, Property{Name: name, Schema: schema})
}
