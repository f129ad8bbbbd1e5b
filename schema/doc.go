// Package schema defines the composable schema node trees that zod-openapi
// synthesizes OpenAPI fragments from.
//
// A Node is one element of a type-definition tree: a primitive (String,
// Number, Boolean, Literal, Enum, Date, ...), a composite (Object, Array,
// Union, Record, Tuple), or a wrapper holding exactly one inner node plus
// wrapper-specific metadata (Optional, Nullable, Default, Transform,
// Preprocess, Refine).
//
// Nodes are immutable once constructed. Fluent methods never mutate their
// receiver: wrapper methods return a new wrapper node and modifier methods
// (Strict, Ref, Describe, ...) return a derived copy. Every node carries a
// stable opaque identity assigned at construction; the generator's component
// registry keys on that identity, never on structural equality, so two
// structurally identical nodes remain distinct registry entries.
//
// Example:
//
//	user := schema.Object(schema.Fields{
//	    {Name: "name", Node: schema.String().MinLen(1)},
//	    {Name: "email", Node: schema.String().Format("email").Optional()},
//	    {Name: "role", Node: schema.String().Default("user")},
//	}).Ref("User")
//
//	admin := user.Extend(schema.Fields{
//	    {Name: "scopes", Node: schema.Array(schema.String())},
//	}).Ref("Admin")
package schema
