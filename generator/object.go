package generator

import (
	"github.com/pmsfc/zod-openapi/openapi"
	"github.com/pmsfc/zod-openapi/schema"
)

// generateObject builds an object fragment. Nodes derived via Extend first
// attempt an allOf composition against their base; anything that makes the
// extension diff unsound falls back to flat synthesis of the full shape.
func (g *Generator) generateObject(node *schema.Node, st state) (*Result, error) {
	if base := node.Extends(); base != nil {
		res, ok, err := g.generateExtended(node, base, st)
		if err != nil {
			return nil, err
		}
		if ok {
			return res, nil
		}
	}
	return g.composeObject(node, node.Fields(), st)
}

// composeObject synthesizes an object fragment from the given shape, using
// the node's own unknown-keys policy and catch-all. The shape may be the
// node's full field list or an extension diff.
func (g *Generator) composeObject(node *schema.Node, shape schema.Fields, st state) (*Result, error) {
	s := &openapi.Schema{Type: "object"}
	var effects []Effect

	for _, field := range shape {
		if field.Node == nil || field.Node.Kind().IsOmittedField() {
			continue
		}
		res, err := g.generate(field.Node, st.push("property: "+field.Name))
		if err != nil {
			return nil, err
		}
		s.Properties = append(s.Properties, openapi.Property{Name: field.Name, Schema: res.Schema})
		effects = append(effects, res.Effects...)
		if fieldRequired(field.Node, st.mode) {
			s.Required = append(s.Required, field.Name)
		}
	}

	switch {
	case node.UnknownKeys() == schema.UnknownStrict:
		s.AdditionalProperties = false
	case node.Catchall() != nil && node.Catchall().Kind() != schema.KindNever:
		res, err := g.generate(node.Catchall(), st.push("additionalProperties"))
		if err != nil {
			return nil, err
		}
		s.AdditionalProperties = res.Schema
		effects = append(effects, res.Effects...)
	}

	if desc := node.Description(); desc != "" {
		s.Description = desc
	}
	return &Result{Schema: s, Effects: effects}, nil
}

// fieldRequired implements the required-field law: a field is required
// unless its node is an optional wrapper, or a default wrapper in input
// mode. Defaults always materialize in output mode, so there the field is
// required; the divergence itself is recorded by the default wrapper's
// generator arm.
func fieldRequired(node *schema.Node, mode Mode) bool {
	switch node.Kind() {
	case schema.KindOptional:
		return false
	case schema.KindDefault:
		return mode == ModeOutput
	}
	return true
}

// generateExtended attempts the allOf composition for an extended object.
// The second return value reports whether composition applied; false means
// the caller must fall back to flat synthesis. The diff is unsound — and
// composition abandoned — when the base is strict, the base has a catch-all
// other than Never, any shared field was overridden by a different node
// identity, or the base is not addressable as a component at all.
func (g *Generator) generateExtended(node, base *schema.Node, st state) (*Result, bool, error) {
	name := base.RefName()
	if name == "" {
		// The base may have been completed earlier under a name even
		// though it does not request one itself.
		if e, found := g.registry.Get(base.ID()); found {
			name = e.Name
		} else {
			return nil, false, nil
		}
	}
	if base.UnknownKeys() == schema.UnknownStrict {
		return nil, false, nil
	}
	if c := base.Catchall(); c != nil && c.Kind() != schema.KindNever {
		return nil, false, nil
	}
	diff, ok := diffShape(base.Fields(), node.Fields())
	if !ok {
		return nil, false, nil
	}

	// Reference the base, synthesizing and registering it on first use.
	// A base still in progress is a self-referential extension: emit the
	// forward reference rather than recursing into it.
	var effects []Effect
	entry, found := g.registry.Get(base.ID())
	switch {
	case found && entry.State == StateInProgress:
		effects = append(effects, Effect{
			Kind:      EffectComponent,
			Direction: st.mode,
			NodeID:    base.ID(),
			Path:      st.path,
			Component: name,
		})
	case found:
		effects = append(effects, entry.Effects...)
	default:
		res, err := g.generate(base, st)
		if err != nil {
			return nil, false, err
		}
		effects = append(effects, res.Effects...)
	}

	res, err := g.composeObject(node, diff, st)
	if err != nil {
		return nil, false, err
	}
	res.Schema.AllOf = []*openapi.Schema{openapi.NewRef(g.RefFor(name))}
	res.Effects = append(effects, res.Effects...)
	return res, true, nil
}

// diffShape computes the purely-additive field diff between a base shape
// and an extended shape. Shared names must map to the same node identity;
// an override poisons the whole diff and the second return value is false.
func diffShape(base, ext schema.Fields) (schema.Fields, bool) {
	var diff schema.Fields
	for _, field := range ext {
		if field.Node == nil {
			continue
		}
		inherited := base.Get(field.Name)
		switch {
		case inherited == nil:
			diff = append(diff, field)
		case inherited.ID() == field.Node.ID():
			// Pure inheritance: the base reference already covers it.
		default:
			return nil, false
		}
	}
	return diff, true
}
