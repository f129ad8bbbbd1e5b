package generator

import (
	"fmt"

	"github.com/pmsfc/zod-openapi/openapi"
	"github.com/pmsfc/zod-openapi/schema"
	"github.com/pmsfc/zod-openapi/zoderrors"
)

// generate is the single entry point of the recursion. Nodes requesting a
// component name are intercepted by the registry before dispatch.
func (g *Generator) generate(node *schema.Node, st state) (*Result, error) {
	if node == nil {
		return nil, &zoderrors.UnrecognizedKindError{
			Kind: "nil",
			Node: "<nil>",
			Path: st.path,
		}
	}
	if name := node.RefName(); name != "" {
		return g.registry.lookupOrGenerate(g, node, name, st)
	}
	return g.generateInner(node, st)
}

// generateInner dispatches on the node's kind. The kind set is closed:
// every arm is listed here, and a kind with no arm either returns the
// node's manual-override fragment verbatim or fails hard.
func (g *Generator) generateInner(node *schema.Node, st state) (*Result, error) {
	switch node.Kind() {
	case schema.KindString:
		return g.leaf(node, stringSchema(node)), nil
	case schema.KindDate:
		return g.leaf(node, &openapi.Schema{Type: "string", Format: "date-time"}), nil
	case schema.KindNumber:
		return g.leaf(node, numericSchema(node, "number")), nil
	case schema.KindInteger:
		return g.leaf(node, numericSchema(node, "integer")), nil
	case schema.KindBoolean:
		return g.leaf(node, &openapi.Schema{Type: "boolean"}), nil
	case schema.KindNull:
		return g.leaf(node, &openapi.Schema{Type: "null"}), nil
	case schema.KindLiteral:
		return g.leaf(node, &openapi.Schema{
			Type:  inferType(node.LiteralValue()),
			Const: node.LiteralValue(),
		}), nil
	case schema.KindEnum, schema.KindNativeEnum:
		return g.leaf(node, enumSchema(node)), nil
	case schema.KindAny, schema.KindUnknown:
		return g.leaf(node, &openapi.Schema{}), nil
	case schema.KindNever, schema.KindUndefined:
		// Matches nothing. As object fields these are skipped entirely;
		// standalone they synthesize to the empty-set schema.
		return g.leaf(node, &openapi.Schema{Not: &openapi.Schema{}}), nil

	case schema.KindArray:
		return g.generateArray(node, st)
	case schema.KindObject:
		return g.generateObject(node, st)
	case schema.KindUnion:
		return g.generateUnion(node, st)
	case schema.KindDiscriminatedUnion:
		return g.generateDiscriminatedUnion(node, st)
	case schema.KindRecord:
		return g.generateRecord(node, st)
	case schema.KindTuple:
		return g.generateTuple(node, st)
	case schema.KindLazy:
		return g.generate(node.Resolve(), st)

	case schema.KindOptional, schema.KindRefine:
		// Transparent wrappers: optionality is consumed by the object
		// composer and refinements only narrow.
		return g.generate(node.Inner(), st)
	case schema.KindNullable:
		return g.generateNullable(node, st)
	case schema.KindDefault:
		return g.generateDefault(node, st)
	case schema.KindTransform, schema.KindPreprocess:
		return g.generateEffect(node, st)

	default:
		if manual := node.Manual(); manual != nil {
			return &Result{Schema: manual}, nil
		}
		return nil, &zoderrors.UnrecognizedKindError{
			Kind: node.Kind().String(),
			Node: node.String(),
			Path: st.path,
		}
	}
}

// leaf finishes a non-recursive fragment, applying the node's description.
func (g *Generator) leaf(node *schema.Node, s *openapi.Schema) *Result {
	if desc := node.Description(); desc != "" && s.Description == "" {
		s.Description = desc
	}
	return &Result{Schema: s}
}

func stringSchema(node *schema.Node) *openapi.Schema {
	c := node.Constraints()
	return &openapi.Schema{
		Type:      "string",
		MinLength: c.MinLen,
		MaxLength: c.MaxLen,
		Pattern:   c.Pattern,
		Format:    c.Format,
	}
}

func numericSchema(node *schema.Node, typ string) *openapi.Schema {
	c := node.Constraints()
	return &openapi.Schema{
		Type:    typ,
		Minimum: c.Min,
		Maximum: c.Max,
	}
}

func enumSchema(node *schema.Node) *openapi.Schema {
	values := node.EnumValues()
	s := &openapi.Schema{Enum: append([]any(nil), values...)}
	if len(values) > 0 {
		typ := inferType(values[0])
		for _, v := range values[1:] {
			if inferType(v) != typ {
				typ = ""
				break
			}
		}
		s.Type = typ
	}
	return s
}

// inferType maps a Go literal to its JSON Schema type name, or empty when
// no single type applies.
func inferType(v any) string {
	switch v.(type) {
	case string:
		return "string"
	case bool:
		return "boolean"
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return "integer"
	case float32, float64:
		return "number"
	case nil:
		return "null"
	default:
		return ""
	}
}

func (g *Generator) generateArray(node *schema.Node, st state) (*Result, error) {
	item, err := g.generate(node.Elem(), st.push("items"))
	if err != nil {
		return nil, err
	}
	c := node.Constraints()
	s := &openapi.Schema{
		Type:     "array",
		Items:    item.Schema,
		MinItems: c.MinItems,
		MaxItems: c.MaxItems,
	}
	return &Result{Schema: g.leaf(node, s).Schema, Effects: item.Effects}, nil
}

func (g *Generator) generateUnion(node *schema.Node, st state) (*Result, error) {
	variants, effects, err := g.generateMembers(node.Members(), st)
	if err != nil {
		return nil, err
	}
	s := &openapi.Schema{AnyOf: variants}
	return &Result{Schema: g.leaf(node, s).Schema, Effects: effects}, nil
}

func (g *Generator) generateDiscriminatedUnion(node *schema.Node, st state) (*Result, error) {
	variants, effects, err := g.generateMembers(node.Members(), st)
	if err != nil {
		return nil, err
	}
	s := &openapi.Schema{
		OneOf:         variants,
		Discriminator: &openapi.Discriminator{PropertyName: node.Discriminator()},
	}
	return &Result{Schema: g.leaf(node, s).Schema, Effects: effects}, nil
}

func (g *Generator) generateMembers(members []*schema.Node, st state) ([]*openapi.Schema, []Effect, error) {
	variants := make([]*openapi.Schema, 0, len(members))
	var effects []Effect
	for i, member := range members {
		res, err := g.generate(member, st.push(fmt.Sprintf("variant: %d", i)))
		if err != nil {
			return nil, nil, err
		}
		variants = append(variants, res.Schema)
		effects = append(effects, res.Effects...)
	}
	return variants, effects, nil
}

func (g *Generator) generateRecord(node *schema.Node, st state) (*Result, error) {
	value, err := g.generate(node.Elem(), st.push("additionalProperties"))
	if err != nil {
		return nil, err
	}
	s := &openapi.Schema{Type: "object", AdditionalProperties: value.Schema}
	return &Result{Schema: g.leaf(node, s).Schema, Effects: value.Effects}, nil
}

func (g *Generator) generateTuple(node *schema.Node, st state) (*Result, error) {
	members := node.Members()
	items := make([]*openapi.Schema, 0, len(members))
	var effects []Effect
	for i, member := range members {
		res, err := g.generate(member, st.push(fmt.Sprintf("item: %d", i)))
		if err != nil {
			return nil, err
		}
		items = append(items, res.Schema)
		effects = append(effects, res.Effects...)
	}
	n := len(members)
	s := &openapi.Schema{
		Type:        "array",
		PrefixItems: items,
		MinItems:    &n,
		MaxItems:    &n,
	}
	return &Result{Schema: g.leaf(node, s).Schema, Effects: effects}, nil
}

func (g *Generator) generateNullable(node *schema.Node, st state) (*Result, error) {
	inner, err := g.generate(node.Inner(), st)
	if err != nil {
		return nil, err
	}
	var s *openapi.Schema
	if inner.Schema.IsRef() {
		// A $ref carries no sibling keys; annotate through allOf instead.
		s = &openapi.Schema{AllOf: []*openapi.Schema{inner.Schema}, Nullable: true}
	} else {
		c := *inner.Schema
		c.Nullable = true
		s = &c
	}
	return &Result{Schema: g.leaf(node, s).Schema, Effects: inner.Effects}, nil
}

func (g *Generator) generateDefault(node *schema.Node, st state) (*Result, error) {
	inner, err := g.generate(node.Inner(), st)
	if err != nil {
		return nil, err
	}
	var s *openapi.Schema
	if inner.Schema.IsRef() {
		s = &openapi.Schema{AllOf: []*openapi.Schema{inner.Schema}, Default: node.DefaultValue()}
	} else {
		c := *inner.Schema
		c.Default = node.DefaultValue()
		s = &c
	}
	effects := append(inner.Effects, Effect{
		Kind:      EffectSchema,
		Direction: st.mode,
		NodeID:    node.ID(),
		Path:      st.path,
	})
	return &Result{Schema: g.leaf(node, s).Schema, Effects: effects}, nil
}

// generateEffect handles transform and preprocess wrappers. Neither can be
// introspected, so both synthesize their inner schema unchanged and record
// the divergence for the caller to act on.
func (g *Generator) generateEffect(node *schema.Node, st state) (*Result, error) {
	inner, err := g.generate(node.Inner(), st)
	if err != nil {
		return nil, err
	}
	effects := append(inner.Effects, Effect{
		Kind:      EffectSchema,
		Direction: st.mode,
		NodeID:    node.ID(),
		Path:      st.path,
	})
	return &Result{Schema: inner.Schema, Effects: effects}, nil
}
