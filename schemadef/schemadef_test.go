package schemadef

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pmsfc/zod-openapi/document"
	"github.com/pmsfc/zod-openapi/generator"
	"github.com/pmsfc/zod-openapi/schema"
	"github.com/pmsfc/zod-openapi/zoderrors"
)

const petYAML = `
schemas:
  Pet:
    type: object
    properties:
      name: {type: string, minLength: 1}
      age: {type: integer, optional: true}
      kind: {enum: [dog, cat]}
  Dog:
    extends: Pet
    properties:
      breed: {type: string}
`

func TestLoadYAML_PreservesOrder(t *testing.T) {
	f, err := LoadYAML([]byte(petYAML))
	require.NoError(t, err)
	require.Len(t, f.Schemas, 2)
	assert.Equal(t, "Pet", f.Schemas[0].Name)
	assert.Equal(t, "Dog", f.Schemas[1].Name)

	pet := f.Schemas.Get("Pet")
	require.NotNil(t, pet)
	require.Len(t, pet.Properties, 3)
	assert.Equal(t, "name", pet.Properties[0].Name)
	assert.Equal(t, "age", pet.Properties[1].Name)
	assert.Equal(t, "kind", pet.Properties[2].Name)
}

func TestLoadJSON_PreservesOrder(t *testing.T) {
	data := []byte(`{"schemas":{"B":{"type":"string"},"A":{"type":"integer"}}}`)
	f, err := LoadJSON(data)
	require.NoError(t, err)
	require.Len(t, f.Schemas, 2)
	assert.Equal(t, "B", f.Schemas[0].Name)
	assert.Equal(t, "A", f.Schemas[1].Name)
}

func TestLoadYAML_Malformed(t *testing.T) {
	_, err := LoadYAML([]byte("schemas: [not, a, mapping]"))
	require.Error(t, err)
	assert.ErrorIs(t, err, zoderrors.ErrDefinition)
}

func TestCompile_Basic(t *testing.T) {
	f, err := LoadYAML([]byte(petYAML))
	require.NoError(t, err)
	named, err := f.Compile()
	require.NoError(t, err)
	require.Len(t, named, 2)

	pet := named[0].Node
	assert.Equal(t, "Pet", pet.RefName())
	assert.Equal(t, schema.KindObject, pet.Kind())
	require.Len(t, pet.Fields(), 3)
	assert.Equal(t, schema.KindOptional, pet.Fields().Get("age").Kind())
	assert.Equal(t, schema.KindEnum, pet.Fields().Get("kind").Kind())

	dog := named[1].Node
	require.NotNil(t, dog.Extends())
	assert.Equal(t, "Pet", dog.Extends().RefName())
	// Extension keeps the base fields plus its own.
	assert.Len(t, dog.Fields(), 4)
}

func TestCompile_ExtensionSynthesizesAllOf(t *testing.T) {
	f, err := LoadYAML([]byte(petYAML))
	require.NoError(t, err)
	named, err := f.Compile()
	require.NoError(t, err)

	b := document.New()
	for _, n := range named {
		b.AddSchema(n.Name, n.Node)
	}
	doc, err := b.Build()
	require.NoError(t, err)

	dog := doc.Components.Schemas.Get("Dog")
	require.NotNil(t, dog)
	require.Len(t, dog.AllOf, 1)
	assert.Equal(t, "#/components/schemas/Pet", dog.AllOf[0].Ref)
	assert.Equal(t, []string{"name", "kind"}, doc.Components.Schemas.Get("Pet").Required)
}

func TestCompile_ForwardReference(t *testing.T) {
	src := `
schemas:
  Owner:
    type: object
    properties:
      pet: {ref: Pet}
  Pet:
    type: object
    properties:
      name: {type: string}
`
	f, err := LoadYAML([]byte(src))
	require.NoError(t, err)
	named, err := f.Compile()
	require.NoError(t, err)

	gen := generator.New()
	s, _, err := gen.Output(named[0].Node)
	require.NoError(t, err)
	assert.Equal(t, "#/components/schemas/Owner", s.Ref)

	owner, ok := gen.Registry().Lookup("Owner")
	require.True(t, ok)
	got := owner.Schema.Properties.Get("pet")
	require.NotNil(t, got)
	assert.Equal(t, "#/components/schemas/Pet", got.Ref)
}

func TestCompile_UndefinedReference(t *testing.T) {
	src := `
schemas:
  Owner:
    type: object
    properties:
      pet: {ref: Ghost}
`
	f, err := LoadYAML([]byte(src))
	require.NoError(t, err)
	_, err = f.Compile()
	require.Error(t, err)
	var defErr *zoderrors.DefinitionError
	require.ErrorAs(t, err, &defErr)
	assert.Equal(t, []string{"Owner", "property: pet"}, defErr.Path)
}

func TestCompile_ExtendsLaterDefinition(t *testing.T) {
	src := `
schemas:
  Dog:
    extends: Pet
    properties:
      breed: {type: string}
  Pet:
    type: object
    properties:
      name: {type: string}
`
	f, err := LoadYAML([]byte(src))
	require.NoError(t, err)
	_, err = f.Compile()
	require.Error(t, err)
	assert.ErrorIs(t, err, zoderrors.ErrDefinition)
}

func TestCompile_WrappersAndConstraints(t *testing.T) {
	src := `
schemas:
  Page:
    type: object
    properties:
      limit: {type: integer, default: 10, minimum: 1, maximum: 100}
      cursor: {type: string, nullable: true, optional: true}
`
	f, err := LoadYAML([]byte(src))
	require.NoError(t, err)
	named, err := f.Compile()
	require.NoError(t, err)

	fields := named[0].Node.Fields()
	limit := fields.Get("limit")
	require.Equal(t, schema.KindDefault, limit.Kind())
	assert.Equal(t, 10, limit.DefaultValue())

	cursor := fields.Get("cursor")
	require.Equal(t, schema.KindOptional, cursor.Kind())
	assert.Equal(t, schema.KindNullable, cursor.Inner().Kind())
}

func TestCompile_UnionAndRecord(t *testing.T) {
	src := `
schemas:
  Value:
    variants:
      - {type: string}
      - {type: number}
  Attrs:
    values: {type: string}
  Point:
    prefixItems:
      - {type: number}
      - {type: number}
  Shape:
    discriminator: kind
    variants:
      - type: object
        properties:
          kind: {const: circle}
      - type: object
        properties:
          kind: {const: square}
`
	f, err := LoadYAML([]byte(src))
	require.NoError(t, err)
	named, err := f.Compile()
	require.NoError(t, err)
	require.Len(t, named, 4)
	assert.Equal(t, schema.KindUnion, named[0].Node.Kind())
	assert.Equal(t, schema.KindRecord, named[1].Node.Kind())
	assert.Equal(t, schema.KindTuple, named[2].Node.Kind())
	assert.Equal(t, schema.KindDiscriminatedUnion, named[3].Node.Kind())
	assert.Equal(t, "kind", named[3].Node.Discriminator())
}

func TestCompile_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"missing type", "schemas:\n  X:\n    description: no type\n"},
		{"unknown type", "schemas:\n  X:\n    type: frobnicate\n"},
		{"array without items", "schemas:\n  X:\n    type: array\n"},
		{"record without values", "schemas:\n  X:\n    type: record\n"},
		{"union without variants", "schemas:\n  X:\n    type: union\n"},
		{"strict and passthrough", "schemas:\n  X:\n    type: object\n    strict: true\n    passthrough: true\n"},
		{"empty file", "schemas: {}\n"},
		{"extends non-object", "schemas:\n  S:\n    type: string\n  X:\n    extends: S\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := LoadYAML([]byte(tt.src))
			require.NoError(t, err)
			_, err = f.Compile()
			require.Error(t, err)
			assert.ErrorIs(t, err, zoderrors.ErrDefinition)
		})
	}
}
