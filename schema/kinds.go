package schema

// Kind identifies a schema node variant. The set is closed: the generator
// dispatches over every kind and fails hard on anything it does not know.
type Kind int

const (
	// KindInvalid is the zero value and never produced by a constructor.
	KindInvalid Kind = iota

	// Primitive kinds
	KindString
	KindNumber
	KindInteger
	KindBoolean
	KindNull
	KindLiteral
	KindEnum
	KindNativeEnum
	KindDate

	// Pass-everything and pass-nothing sentinels
	KindAny
	KindUnknown
	KindNever
	KindUndefined

	// Composite kinds
	KindArray
	KindObject
	KindUnion
	KindDiscriminatedUnion
	KindRecord
	KindTuple
	KindLazy

	// Wrapper kinds
	KindOptional
	KindNullable
	KindDefault
	KindTransform
	KindPreprocess
	KindRefine
)

// kindNames maps kinds to their renderings in diagnostics.
var kindNames = map[Kind]string{
	KindInvalid:            "invalid",
	KindString:             "string",
	KindNumber:             "number",
	KindInteger:            "integer",
	KindBoolean:            "boolean",
	KindNull:               "null",
	KindLiteral:            "literal",
	KindEnum:               "enum",
	KindNativeEnum:         "nativeEnum",
	KindDate:               "date",
	KindAny:                "any",
	KindUnknown:            "unknown",
	KindNever:              "never",
	KindUndefined:          "undefined",
	KindArray:              "array",
	KindObject:             "object",
	KindUnion:              "union",
	KindDiscriminatedUnion: "discriminatedUnion",
	KindRecord:             "record",
	KindTuple:              "tuple",
	KindLazy:               "lazy",
	KindOptional:           "optional",
	KindNullable:           "nullable",
	KindDefault:            "default",
	KindTransform:          "transform",
	KindPreprocess:         "preprocess",
	KindRefine:             "refine",
}

// String returns the kind's rendering for diagnostics.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "invalid"
}

// IsWrapper reports whether the kind holds exactly one inner node.
func (k Kind) IsWrapper() bool {
	switch k {
	case KindOptional, KindNullable, KindDefault, KindTransform, KindPreprocess, KindRefine:
		return true
	}
	return false
}

// IsOmittedField reports whether an object field of this kind contributes
// neither a property nor a required entry.
func (k Kind) IsOmittedField() bool {
	return k == KindNever || k == KindUndefined
}

// UnknownKeys is an object's policy for properties outside its declared shape.
type UnknownKeys int

const (
	// UnknownStrip silently ignores unknown properties (the default).
	UnknownStrip UnknownKeys = iota
	// UnknownStrict forbids unknown properties (additionalProperties: false).
	UnknownStrict
	// UnknownPassthrough retains unknown properties.
	UnknownPassthrough
)

// String returns the policy's rendering for diagnostics.
func (u UnknownKeys) String() string {
	switch u {
	case UnknownStrict:
		return "strict"
	case UnknownPassthrough:
		return "passthrough"
	default:
		return "strip"
	}
}
