package schema

import "github.com/pmsfc/zod-openapi/openapi"

func wrap(kind Kind, inner *Node) *Node {
	n := newNode(kind)
	n.inner = inner
	return n
}

// Optional wraps the node so that, as an object field, it is omitted from
// the required list.
func (n *Node) Optional() *Node { return wrap(KindOptional, n) }

// Nullable wraps the node so its fragment also admits JSON null.
func (n *Node) Nullable() *Node { return wrap(KindNullable, n) }

// Default wraps the node with a value that materializes when the field is
// absent. A defaulted field is optional in input mode but always present in
// output mode; synthesizing it records a divergence effect.
func (n *Node) Default(value any) *Node {
	w := wrap(KindDefault, n)
	w.defaultValue = value
	return w
}

// Transform wraps the node with an output-side conversion. The generator
// never runs fn; it synthesizes the inner schema and records that the
// output shape diverges from it.
func (n *Node) Transform(fn TransformFunc) *Node {
	w := wrap(KindTransform, n)
	w.fn = fn
	return w
}

// Preprocess wraps the node with an input-side conversion applied before
// validation. Synthesizing it records a divergence effect.
func (n *Node) Preprocess(fn TransformFunc) *Node {
	w := wrap(KindPreprocess, n)
	w.fn = fn
	return w
}

// Refine wraps the node with a predicate. Refinements narrow, they do not
// reshape, so no divergence effect is recorded.
func (n *Node) Refine(fn TransformFunc) *Node {
	w := wrap(KindRefine, n)
	w.fn = fn
	return w
}

// Ref returns a copy of the node requesting registration under the given
// component name. The copy is a distinct identity; synthesize the returned
// node, not the receiver, or the name will bind to the wrong entry.
func (n *Node) Ref(name string) *Node {
	c := n.clone()
	c.refName = name
	return c
}

// Describe returns a copy of the node carrying a description.
func (n *Node) Describe(description string) *Node {
	c := n.clone()
	c.description = description
	return c
}

// WithFragment returns a copy of the node carrying a manual-override
// fragment. The generator returns the fragment verbatim when it has no
// generator for the node's kind; this is the escape hatch for shapes the
// closed kind set cannot express.
func (n *Node) WithFragment(frag *openapi.Schema) *Node {
	c := n.clone()
	c.manual = frag
	return c
}
