package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pmsfc/zod-openapi/openapi"
	"github.com/pmsfc/zod-openapi/schema"
	"github.com/pmsfc/zod-openapi/zoderrors"
)

func TestGenerator_Primitives(t *testing.T) {
	tests := []struct {
		name string
		node *schema.Node
		want *openapi.Schema
	}{
		{name: "string", node: schema.String(), want: &openapi.Schema{Type: "string"}},
		{name: "number", node: schema.Number(), want: &openapi.Schema{Type: "number"}},
		{name: "integer", node: schema.Integer(), want: &openapi.Schema{Type: "integer"}},
		{name: "boolean", node: schema.Boolean(), want: &openapi.Schema{Type: "boolean"}},
		{name: "null", node: schema.Null(), want: &openapi.Schema{Type: "null"}},
		{name: "date", node: schema.Date(), want: &openapi.Schema{Type: "string", Format: "date-time"}},
		{name: "any", node: schema.Any(), want: &openapi.Schema{}},
		{name: "unknown", node: schema.Unknown(), want: &openapi.Schema{}},
		{name: "never", node: schema.Never(), want: &openapi.Schema{Not: &openapi.Schema{}}},
		{name: "string literal", node: schema.Literal("on"), want: &openapi.Schema{Type: "string", Const: "on"}},
		{name: "int literal", node: schema.Literal(5), want: &openapi.Schema{Type: "integer", Const: 5}},
		{name: "bool literal", node: schema.Literal(true), want: &openapi.Schema{Type: "boolean", Const: true}},
		{
			name: "enum",
			node: schema.Enum("a", "b", "c"),
			want: &openapi.Schema{Type: "string", Enum: []any{"a", "b", "c"}},
		},
		{
			name: "mixed enum has no single type",
			node: schema.Enum("a", 1),
			want: &openapi.Schema{Enum: []any{"a", 1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frag, effects, err := New().Output(tt.node)
			require.NoError(t, err)
			assert.Equal(t, tt.want, frag)
			assert.Empty(t, effects)
		})
	}
}

func TestGenerator_NativeEnum(t *testing.T) {
	node := schema.NativeEnum(map[string]any{
		"Red":   "red",
		"Blue":  "blue",
		"Green": "green",
	})

	frag, _, err := New().Output(node)
	require.NoError(t, err)
	assert.Equal(t, "string", frag.Type)
	// Member order follows sorted mapping keys.
	assert.Equal(t, []any{"blue", "green", "red"}, frag.Enum)
}

func TestGenerator_StringConstraints(t *testing.T) {
	node := schema.String().MinLen(1).MaxLen(64).Pattern("^[a-z]+$").Format("hostname")

	frag, _, err := New().Output(node)
	require.NoError(t, err)
	require.NotNil(t, frag.MinLength)
	assert.Equal(t, 1, *frag.MinLength)
	require.NotNil(t, frag.MaxLength)
	assert.Equal(t, 64, *frag.MaxLength)
	assert.Equal(t, "^[a-z]+$", frag.Pattern)
	assert.Equal(t, "hostname", frag.Format)
}

func TestGenerator_NumericConstraints(t *testing.T) {
	frag, _, err := New().Output(schema.Integer().Min(0).Max(120))
	require.NoError(t, err)
	require.NotNil(t, frag.Minimum)
	assert.Equal(t, float64(0), *frag.Minimum)
	require.NotNil(t, frag.Maximum)
	assert.Equal(t, float64(120), *frag.Maximum)
}

func TestGenerator_Array(t *testing.T) {
	frag, _, err := New().Output(schema.Array(schema.String()).MinItems(1).MaxItems(10))
	require.NoError(t, err)
	assert.Equal(t, "array", frag.Type)
	require.NotNil(t, frag.Items)
	assert.Equal(t, "string", frag.Items.Type)
	assert.Equal(t, 1, *frag.MinItems)
	assert.Equal(t, 10, *frag.MaxItems)
}

func TestGenerator_Tuple(t *testing.T) {
	frag, _, err := New().Output(schema.Tuple(schema.String(), schema.Integer()))
	require.NoError(t, err)
	assert.Equal(t, "array", frag.Type)
	require.Len(t, frag.PrefixItems, 2)
	assert.Equal(t, "string", frag.PrefixItems[0].Type)
	assert.Equal(t, "integer", frag.PrefixItems[1].Type)
	assert.Equal(t, 2, *frag.MinItems)
	assert.Equal(t, 2, *frag.MaxItems)
}

func TestGenerator_Record(t *testing.T) {
	frag, _, err := New().Output(schema.Record(schema.Number()))
	require.NoError(t, err)
	assert.Equal(t, "object", frag.Type)
	ap, ok := frag.AdditionalProperties.(*openapi.Schema)
	require.True(t, ok)
	assert.Equal(t, "number", ap.Type)
}

func TestGenerator_Union(t *testing.T) {
	frag, _, err := New().Output(schema.Union(schema.String(), schema.Integer()))
	require.NoError(t, err)
	require.Len(t, frag.AnyOf, 2)
	assert.Equal(t, "string", frag.AnyOf[0].Type)
	assert.Equal(t, "integer", frag.AnyOf[1].Type)
}

func TestGenerator_DiscriminatedUnion(t *testing.T) {
	cat := schema.Object(schema.Fields{
		{Name: "kind", Node: schema.Literal("cat")},
	}).Ref("Cat")
	dog := schema.Object(schema.Fields{
		{Name: "kind", Node: schema.Literal("dog")},
	}).Ref("Dog")

	frag, _, err := New().Output(schema.DiscriminatedUnion("kind", cat, dog))
	require.NoError(t, err)
	require.Len(t, frag.OneOf, 2)
	assert.Equal(t, "#/components/schemas/Cat", frag.OneOf[0].Ref)
	assert.Equal(t, "#/components/schemas/Dog", frag.OneOf[1].Ref)
	require.NotNil(t, frag.Discriminator)
	assert.Equal(t, "kind", frag.Discriminator.PropertyName)
}

func TestGenerator_OptionalIsTransparentAtTopLevel(t *testing.T) {
	frag, _, err := New().Output(schema.String().Optional())
	require.NoError(t, err)
	assert.Equal(t, &openapi.Schema{Type: "string"}, frag)
}

func TestGenerator_Nullable(t *testing.T) {
	t.Run("plain fragment", func(t *testing.T) {
		frag, _, err := New().Output(schema.String().Nullable())
		require.NoError(t, err)
		assert.Equal(t, "string", frag.Type)
		assert.True(t, frag.Nullable)
	})

	t.Run("reference fragment wraps in allOf", func(t *testing.T) {
		named := schema.Object(schema.Fields{
			{Name: "a", Node: schema.String()},
		}).Ref("Thing")

		frag, _, err := New().Output(named.Nullable())
		require.NoError(t, err)
		assert.Empty(t, frag.Ref, "a $ref may not carry sibling keys")
		require.Len(t, frag.AllOf, 1)
		assert.Equal(t, "#/components/schemas/Thing", frag.AllOf[0].Ref)
		assert.True(t, frag.Nullable)
	})
}

func TestGenerator_DefaultOfReference(t *testing.T) {
	named := schema.Enum("auto", "manual").Ref("Mode")

	frag, effects, err := New().Output(named.Default("auto"))
	require.NoError(t, err)
	require.Len(t, frag.AllOf, 1)
	assert.Equal(t, "#/components/schemas/Mode", frag.AllOf[0].Ref)
	assert.Equal(t, "auto", frag.Default)
	require.Len(t, effects, 1)
	assert.Equal(t, EffectSchema, effects[0].Kind)
}

func TestGenerator_RefineRecordsNoEffect(t *testing.T) {
	node := schema.String().Refine(func(v any) (any, error) { return v, nil })
	frag, effects, err := New().Output(node)
	require.NoError(t, err)
	assert.Equal(t, "string", frag.Type)
	assert.Empty(t, effects)
}

func TestGenerator_TransformAndPreprocessRecordEffects(t *testing.T) {
	identity := func(v any) (any, error) { return v, nil }

	t.Run("transform", func(t *testing.T) {
		frag, effects, err := New().Output(schema.String().Transform(identity))
		require.NoError(t, err)
		assert.Equal(t, "string", frag.Type, "the inner schema stands in for both modes")
		require.Len(t, effects, 1)
		assert.Equal(t, EffectSchema, effects[0].Kind)
		assert.Equal(t, ModeOutput, effects[0].Direction)
	})

	t.Run("preprocess", func(t *testing.T) {
		_, effects, err := New().Input(schema.Integer().Preprocess(identity))
		require.NoError(t, err)
		require.Len(t, effects, 1)
		assert.Equal(t, ModeInput, effects[0].Direction)
	})
}

func TestGenerator_Describe(t *testing.T) {
	frag, _, err := New().Output(schema.String().Describe("a name"))
	require.NoError(t, err)
	assert.Equal(t, "a name", frag.Description)
}

func TestGenerator_ManualOverride(t *testing.T) {
	manual := &openapi.Schema{Type: "string", Format: "binary"}
	// A zero-value node has no kind and hence no generator arm; the
	// manual fragment is the escape hatch.
	node := (&schema.Node{}).WithFragment(manual)

	frag, effects, err := New().Output(node)
	require.NoError(t, err)
	assert.Same(t, manual, frag)
	assert.Empty(t, effects)
}

func TestGenerator_UnrecognizedKind(t *testing.T) {
	_, _, err := New().Output(&schema.Node{})
	require.Error(t, err)
	assert.ErrorIs(t, err, zoderrors.ErrUnrecognizedKind)

	var kindErr *zoderrors.UnrecognizedKindError
	require.ErrorAs(t, err, &kindErr)
	assert.Equal(t, "invalid", kindErr.Kind)
}

func TestGenerator_ErrorCarriesPath(t *testing.T) {
	node := schema.Object(schema.Fields{
		{Name: "items", Node: schema.Array(schema.Tuple(nil))},
	})

	_, _, err := New().Output(node)
	require.Error(t, err)
	var kindErr *zoderrors.UnrecognizedKindError
	require.ErrorAs(t, err, &kindErr)
	assert.Equal(t, []string{"property: items", "items", "item: 0"}, kindErr.Path)
}
