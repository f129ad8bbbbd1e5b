package schema

import "sort"

// String creates a string node.
func String() *Node { return newNode(KindString) }

// Number creates a floating-point number node.
func Number() *Node { return newNode(KindNumber) }

// Integer creates an integer node.
func Integer() *Node { return newNode(KindInteger) }

// Boolean creates a boolean node.
func Boolean() *Node { return newNode(KindBoolean) }

// Null creates a node matching only JSON null.
func Null() *Node { return newNode(KindNull) }

// Date creates a node for RFC 3339 date-time strings.
func Date() *Node { return newNode(KindDate) }

// Any creates a node matching any value.
func Any() *Node { return newNode(KindAny) }

// Unknown creates a node matching any value, without any static claim about
// its shape. It synthesizes identically to Any.
func Unknown() *Node { return newNode(KindUnknown) }

// Never creates a node matching no value. As an object field it contributes
// neither a property nor a required entry; as an object catch-all it means
// unknown properties have no schema.
func Never() *Node { return newNode(KindNever) }

// Undefined creates a node matching only an absent value. As an object field
// it behaves like Never.
func Undefined() *Node { return newNode(KindUndefined) }

// Literal creates a node matching exactly one value.
func Literal(value any) *Node {
	n := newNode(KindLiteral)
	n.literal = value
	return n
}

// Enum creates a node matching one of the given values.
func Enum(values ...any) *Node {
	n := newNode(KindEnum)
	n.enumValues = append([]any(nil), values...)
	return n
}

// NativeEnum creates a node matching one of the mapping's values. Member
// order follows the sorted mapping keys so synthesis is deterministic.
func NativeEnum(members map[string]any) *Node {
	n := newNode(KindNativeEnum)
	keys := make([]string, 0, len(members))
	for k := range members {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	n.enumValues = make([]any, 0, len(keys))
	for _, k := range keys {
		n.enumValues = append(n.enumValues, members[k])
	}
	return n
}

// Array creates an array node with the given element schema.
func Array(elem *Node) *Node {
	n := newNode(KindArray)
	n.elem = elem
	return n
}

// Object creates an object node with the given ordered shape. The default
// unknown-keys policy is strip with no catch-all.
func Object(fields Fields) *Node {
	n := newNode(KindObject)
	n.fields = append(Fields(nil), fields...)
	return n
}

// Union creates an untagged union of the given variants.
func Union(variants ...*Node) *Node {
	n := newNode(KindUnion)
	n.members = append([]*Node(nil), variants...)
	return n
}

// DiscriminatedUnion creates a union discriminated by the named property.
func DiscriminatedUnion(discriminator string, variants ...*Node) *Node {
	n := newNode(KindDiscriminatedUnion)
	n.discriminator = discriminator
	n.members = append([]*Node(nil), variants...)
	return n
}

// Record creates an object node with arbitrary keys whose values all match
// the given schema.
func Record(value *Node) *Node {
	n := newNode(KindRecord)
	n.elem = value
	return n
}

// Lazy creates a node that defers to the node thunk returns, letting a
// schema refer to itself:
//
//	var category *Node
//	category = Object(Fields{
//	    {Name: "name", Node: String()},
//	    {Name: "children", Node: Array(Lazy(func() *Node { return category }))},
//	}).Ref("Category")
//
// thunk runs at synthesis time, once per use site. Cycles built this way
// must pass through a named node, or synthesis will recurse to the depth of
// the cycle forever; the generator's registry breaks recursion only at
// component boundaries.
func Lazy(thunk func() *Node) *Node {
	n := newNode(KindLazy)
	n.lazy = thunk
	return n
}

// Tuple creates a fixed-length array with positional item schemas.
func Tuple(items ...*Node) *Node {
	n := newNode(KindTuple)
	n.members = append([]*Node(nil), items...)
	return n
}

// Strict returns a copy of an object node that forbids unknown properties.
func (n *Node) Strict() *Node {
	c := n.clone()
	c.unknown = UnknownStrict
	return c
}

// Passthrough returns a copy of an object node that retains unknown
// properties.
func (n *Node) Passthrough() *Node {
	c := n.clone()
	c.unknown = UnknownPassthrough
	return c
}

// WithCatchall returns a copy of an object node whose unknown properties
// must match the given schema. WithCatchall(Never()) is equivalent to no
// catch-all.
func (n *Node) WithCatchall(value *Node) *Node {
	c := n.clone()
	c.catchall = value
	return c
}

// Extend returns a new object node whose shape is the receiver's fields
// merged with the given fields (same-name fields override). The result
// remembers the receiver as its extension base: when the base is a named
// component and no field was overridden, synthesis emits an allOf
// composition against the base reference instead of a flattened duplicate.
// The unknown-keys policy and catch-all carry over from the receiver.
func (n *Node) Extend(fields Fields) *Node {
	merged := make(Fields, 0, len(n.fields)+len(fields))
	merged = append(merged, n.fields...)
	for _, f := range fields {
		if i := merged.index(f.Name); i >= 0 {
			merged[i] = f
			continue
		}
		merged = append(merged, f)
	}
	c := newNode(KindObject)
	c.fields = merged
	c.unknown = n.unknown
	c.catchall = n.catchall
	c.extends = n
	return c
}

func (f Fields) index(name string) int {
	for i, field := range f {
		if field.Name == name {
			return i
		}
	}
	return -1
}
