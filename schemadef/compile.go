package schemadef

import (
	"fmt"

	"github.com/pmsfc/zod-openapi/schema"
	"github.com/pmsfc/zod-openapi/zoderrors"
)

// Named pairs a component name with its compiled schema node.
type Named struct {
	Name string
	Node *schema.Node
}

// Compile turns every top-level definition into a schema node in file
// order. Each returned node carries its definition name as a component
// name, so synthesizing them registers one component per entry.
//
// References to later definitions compile to lazy nodes and resolve
// once the whole file is compiled. Extension bases must appear before
// the definitions that extend them.
func (f *File) Compile() ([]Named, error) {
	if len(f.Schemas) == 0 {
		return nil, &zoderrors.DefinitionError{Message: "definition file has no schemas"}
	}
	c := &compiler{
		defs:  f.Schemas,
		nodes: make(map[string]*schema.Node, len(f.Schemas)),
	}
	out := make([]Named, 0, len(f.Schemas))
	for _, nd := range f.Schemas {
		if _, dup := c.nodes[nd.Name]; dup {
			return nil, &zoderrors.DefinitionError{
				Path:    []string{nd.Name},
				Message: "duplicate schema name",
			}
		}
		node, err := c.compile(nd.Definition, []string{nd.Name})
		if err != nil {
			return nil, err
		}
		named := node.Ref(nd.Name)
		c.nodes[nd.Name] = named
		out = append(out, Named{Name: nd.Name, Node: named})
	}
	return out, nil
}

type compiler struct {
	defs  Definitions
	nodes map[string]*schema.Node
}

func (c *compiler) compile(def *Definition, path []string) (*schema.Node, error) {
	if def == nil {
		return nil, &zoderrors.DefinitionError{Path: path, Message: "empty definition"}
	}
	node, err := c.compileCore(def, path)
	if err != nil {
		return nil, err
	}
	node = applyConstraints(node, def)
	if def.Description != "" {
		node = node.Describe(def.Description)
	}
	// Wrappers apply outside-in: default innermost, optional outermost,
	// matching how the composer unwraps them.
	if def.Default != nil {
		node = node.Default(def.Default)
	}
	if def.Nullable {
		node = node.Nullable()
	}
	if def.Optional {
		node = node.Optional()
	}
	return node, nil
}

func (c *compiler) compileCore(def *Definition, path []string) (*schema.Node, error) {
	switch {
	case def.Ref != "":
		return c.reference(def.Ref, path)
	case def.Extends != "":
		return c.extend(def, path)
	case def.Enum != nil:
		return schema.Enum(def.Enum...), nil
	case def.Const != nil:
		return schema.Literal(def.Const), nil
	case len(def.Variants) > 0 || def.Type == "union":
		return c.union(def, path)
	case def.Properties != nil || def.Type == "object":
		return c.object(def, path)
	case def.Items != nil || def.Type == "array":
		if def.Items == nil {
			return nil, &zoderrors.DefinitionError{Path: path, Message: "array requires items"}
		}
		elem, err := c.compile(def.Items, append(path, "items"))
		if err != nil {
			return nil, err
		}
		return schema.Array(elem), nil
	case len(def.PrefixItems) > 0 || def.Type == "tuple":
		if len(def.PrefixItems) == 0 {
			return nil, &zoderrors.DefinitionError{Path: path, Message: "tuple requires prefixItems"}
		}
		items := make([]*schema.Node, len(def.PrefixItems))
		for i, item := range def.PrefixItems {
			node, err := c.compile(item, append(path, fmt.Sprintf("item: %d", i)))
			if err != nil {
				return nil, err
			}
			items[i] = node
		}
		return schema.Tuple(items...), nil
	case def.Values != nil || def.Type == "record":
		if def.Values == nil {
			return nil, &zoderrors.DefinitionError{Path: path, Message: "record requires values"}
		}
		value, err := c.compile(def.Values, append(path, "additionalProperties"))
		if err != nil {
			return nil, err
		}
		return schema.Record(value), nil
	default:
		return leaf(def, path)
	}
}

func leaf(def *Definition, path []string) (*schema.Node, error) {
	switch def.Type {
	case "string":
		return schema.String(), nil
	case "number":
		return schema.Number(), nil
	case "integer":
		return schema.Integer(), nil
	case "boolean":
		return schema.Boolean(), nil
	case "null":
		return schema.Null(), nil
	case "date":
		return schema.Date(), nil
	case "any":
		return schema.Any(), nil
	case "unknown":
		return schema.Unknown(), nil
	case "never":
		return schema.Never(), nil
	case "undefined":
		return schema.Undefined(), nil
	case "":
		return nil, &zoderrors.DefinitionError{Path: path, Message: "cannot infer type; add a type key"}
	default:
		return nil, &zoderrors.DefinitionError{
			Path:    path,
			Message: fmt.Sprintf("unknown type %q", def.Type),
		}
	}
}

// reference resolves a ref to another top-level definition. Forward
// references compile to a lazy node resolved after the whole file is
// compiled.
func (c *compiler) reference(name string, path []string) (*schema.Node, error) {
	if node, ok := c.nodes[name]; ok {
		return node, nil
	}
	if c.defs.Get(name) == nil {
		return nil, &zoderrors.DefinitionError{
			Path:    path,
			Message: fmt.Sprintf("reference to undefined schema %q", name),
		}
	}
	nodes := c.nodes
	return schema.Lazy(func() *schema.Node { return nodes[name] }), nil
}

func (c *compiler) extend(def *Definition, path []string) (*schema.Node, error) {
	base, ok := c.nodes[def.Extends]
	if !ok {
		return nil, &zoderrors.DefinitionError{
			Path:    path,
			Message: fmt.Sprintf("extends %q, which is not defined earlier in the file", def.Extends),
		}
	}
	if base.Kind() != schema.KindObject {
		return nil, &zoderrors.DefinitionError{
			Path:    path,
			Message: fmt.Sprintf("extends %q, which is not an object", def.Extends),
		}
	}
	fields, err := c.fields(def.Properties, path)
	if err != nil {
		return nil, err
	}
	node := base.Extend(fields)
	return c.applyObjectPolicy(node, def, path)
}

func (c *compiler) object(def *Definition, path []string) (*schema.Node, error) {
	fields, err := c.fields(def.Properties, path)
	if err != nil {
		return nil, err
	}
	return c.applyObjectPolicy(schema.Object(fields), def, path)
}

func (c *compiler) fields(props Definitions, path []string) (schema.Fields, error) {
	fields := make(schema.Fields, 0, len(props))
	for _, prop := range props {
		node, err := c.compile(prop.Definition, append(path, "property: "+prop.Name))
		if err != nil {
			return nil, err
		}
		fields = append(fields, schema.Field{Name: prop.Name, Node: node})
	}
	return fields, nil
}

func (c *compiler) applyObjectPolicy(node *schema.Node, def *Definition, path []string) (*schema.Node, error) {
	if def.Strict && def.Passthrough {
		return nil, &zoderrors.DefinitionError{
			Path:    path,
			Message: "strict and passthrough are mutually exclusive",
		}
	}
	switch {
	case def.Strict:
		node = node.Strict()
	case def.Passthrough:
		node = node.Passthrough()
	}
	if def.Catchall != nil {
		value, err := c.compile(def.Catchall, append(path, "catchall"))
		if err != nil {
			return nil, err
		}
		node = node.WithCatchall(value)
	}
	return node, nil
}

func (c *compiler) union(def *Definition, path []string) (*schema.Node, error) {
	if len(def.Variants) == 0 {
		return nil, &zoderrors.DefinitionError{Path: path, Message: "union requires variants"}
	}
	variants := make([]*schema.Node, len(def.Variants))
	for i, v := range def.Variants {
		node, err := c.compile(v, append(path, fmt.Sprintf("variant: %d", i)))
		if err != nil {
			return nil, err
		}
		variants[i] = node
	}
	if def.Discriminator != "" {
		return schema.DiscriminatedUnion(def.Discriminator, variants...), nil
	}
	return schema.Union(variants...), nil
}

func applyConstraints(node *schema.Node, def *Definition) *schema.Node {
	if def.MinLength != nil {
		node = node.MinLen(*def.MinLength)
	}
	if def.MaxLength != nil {
		node = node.MaxLen(*def.MaxLength)
	}
	if def.Pattern != "" {
		node = node.Pattern(def.Pattern)
	}
	if def.Format != "" {
		node = node.Format(def.Format)
	}
	if def.Minimum != nil {
		node = node.Min(*def.Minimum)
	}
	if def.Maximum != nil {
		node = node.Max(*def.Maximum)
	}
	if def.MinItems != nil {
		node = node.MinItems(*def.MinItems)
	}
	if def.MaxItems != nil {
		node = node.MaxItems(*def.MaxItems)
	}
	return node
}
