package schema

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/pmsfc/zod-openapi/openapi"
)

// nextID assigns construction-time identities. Identity is process-wide and
// strictly increasing; it is never reused within a process.
var nextID atomic.Uint64

// Field maps one object property name to its schema node.
type Field struct {
	Name string
	Node *Node
}

// Fields is an ordered object shape. Declaration order is preserved through
// synthesis into the fragment's property order.
type Fields []Field

// Get returns the node for a field name, or nil if absent.
func (f Fields) Get(name string) *Node {
	for _, field := range f {
		if field.Name == name {
			return field.Node
		}
	}
	return nil
}

// TransformFunc is the signature of transform, preprocess, and refine
// functions attached to wrapper nodes. The generator never invokes these; it
// only records that they make the input and output shapes diverge.
type TransformFunc func(v any) (any, error)

// Node is one element of a schema tree. Nodes are immutable once
// constructed; all methods with node results return wrappers or derived
// copies carrying fresh identities.
type Node struct {
	id   uint64
	kind Kind

	// Wrapper kinds
	inner        *Node
	defaultValue any
	fn           TransformFunc

	// Object kinds
	fields   Fields
	unknown  UnknownKeys
	catchall *Node
	extends  *Node

	// Array element or record value
	elem *Node

	// Union variants or tuple items
	members       []*Node
	discriminator string

	// Lazy thunk
	lazy func() *Node

	// Literal and enum metadata
	literal    any
	enumValues []any

	// Cross-cutting metadata
	refName     string
	manual      *openapi.Schema
	description string
	constraints Constraints
}

func newNode(kind Kind) *Node {
	return &Node{id: nextID.Add(1), kind: kind}
}

// clone returns a copy of the node under a fresh identity.
func (n *Node) clone() *Node {
	c := *n
	c.id = nextID.Add(1)
	if n.fields != nil {
		c.fields = make(Fields, len(n.fields))
		copy(c.fields, n.fields)
	}
	if n.members != nil {
		c.members = make([]*Node, len(n.members))
		copy(c.members, n.members)
	}
	if n.enumValues != nil {
		c.enumValues = make([]any, len(n.enumValues))
		copy(c.enumValues, n.enumValues)
	}
	return &c
}

// ID returns the node's stable opaque identity.
func (n *Node) ID() uint64 { return n.id }

// Kind returns the node's variant tag.
func (n *Node) Kind() Kind { return n.kind }

// Inner returns a wrapper's single child node, or nil for non-wrappers.
func (n *Node) Inner() *Node { return n.inner }

// DefaultValue returns the value attached by Default, or nil.
func (n *Node) DefaultValue() any { return n.defaultValue }

// Func returns the function reference attached by Transform, Preprocess, or
// Refine, or nil.
func (n *Node) Func() TransformFunc { return n.fn }

// Fields returns an object's ordered shape. The result must not be mutated.
func (n *Node) Fields() Fields { return n.fields }

// UnknownKeys returns an object's unknown-properties policy.
func (n *Node) UnknownKeys() UnknownKeys { return n.unknown }

// Catchall returns an object's catch-all node, or nil. A nil catch-all and a
// Never catch-all both mean unknown properties have no schema.
func (n *Node) Catchall() *Node { return n.catchall }

// Extends returns the base object this node was derived from via Extend, or
// nil.
func (n *Node) Extends() *Node { return n.extends }

// Elem returns an array's element node or a record's value node.
func (n *Node) Elem() *Node { return n.elem }

// Members returns a union's variant nodes or a tuple's item nodes. The
// result must not be mutated.
func (n *Node) Members() []*Node { return n.members }

// Discriminator returns a discriminated union's discriminant property name.
func (n *Node) Discriminator() string { return n.discriminator }

// Resolve runs a lazy node's thunk and returns the deferred node, or nil
// for non-lazy nodes.
func (n *Node) Resolve() *Node {
	if n.lazy == nil {
		return nil
	}
	return n.lazy()
}

// LiteralValue returns the value attached by Literal.
func (n *Node) LiteralValue() any { return n.literal }

// EnumValues returns the members attached by Enum or NativeEnum. The result
// must not be mutated.
func (n *Node) EnumValues() []any { return n.enumValues }

// RefName returns the component name requested via Ref, or empty.
func (n *Node) RefName() string { return n.refName }

// Manual returns the manual-override fragment attached via WithFragment, or
// nil. The generator returns it verbatim when it has no generator for the
// node's kind.
func (n *Node) Manual() *openapi.Schema { return n.manual }

// Description returns the description attached via Describe.
func (n *Node) Description() string { return n.description }

// Constraints returns the node's leaf constraints.
func (n *Node) Constraints() Constraints { return n.constraints }

// String renders the node for error messages. It stays shallow: children
// render as field or member names only.
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	switch {
	case n.kind == KindObject:
		names := make([]string, len(n.fields))
		for i, f := range n.fields {
			names[i] = f.Name
		}
		return fmt.Sprintf("object{%s}", strings.Join(names, ", "))
	case n.kind == KindLiteral:
		return fmt.Sprintf("literal(%v)", n.literal)
	case n.kind.IsWrapper():
		return fmt.Sprintf("%s(%s)", n.kind, n.inner.kind)
	case n.refName != "":
		return fmt.Sprintf("%s[%s]", n.kind, n.refName)
	default:
		return n.kind.String()
	}
}
