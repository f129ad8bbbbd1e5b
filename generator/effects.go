package generator

import "github.com/pmsfc/zod-openapi/openapi"

// Mode selects which interpretation of a schema a synthesis call
// materializes: the shape of data arriving at a boundary (input, before
// defaults and transforms apply) or leaving it (output).
type Mode int

const (
	// ModeInput materializes the pre-default, pre-transform shape.
	ModeInput Mode = iota
	// ModeOutput materializes the post-default, post-transform shape.
	ModeOutput
)

// String returns the mode's rendering for diagnostics.
func (m Mode) String() string {
	if m == ModeOutput {
		return "output"
	}
	return "input"
}

// EffectKind classifies where a divergence was observed.
type EffectKind int

const (
	// EffectSchema marks a node whose input and output fragments differ
	// (a default, transform, or preprocess wrapper).
	EffectSchema EffectKind = iota
	// EffectComponent marks a reference emitted while its referent was
	// still being synthesized (a cycle), before its shape was fully known.
	EffectComponent
)

// String returns the effect kind's rendering for diagnostics.
func (k EffectKind) String() string {
	if k == EffectComponent {
		return "component"
	}
	return "schema"
}

// Effect records one point where a schema's input and output
// interpretations diverge, or where a forward reference was emitted into a
// cycle. Effects from nested calls are concatenated upward in traversal
// order; the list is a diagnostic trail, not a set, and duplicates are
// expected when a component is referenced more than once.
type Effect struct {
	// Kind classifies the divergence.
	Kind EffectKind
	// Direction is the mode that was active when the effect was observed.
	Direction Mode
	// NodeID is the identity of the originating schema node.
	NodeID uint64
	// Path is the traversal path at which the effect occurred
	// (e.g., ["property: items", "items", "property: qty"]).
	Path []string
	// Component is the referenced component name for component-kind
	// effects, empty otherwise.
	Component string
}

// Result is the output of synthesizing one node: the fragment plus every
// effect observed anywhere beneath it.
type Result struct {
	Schema  *openapi.Schema
	Effects []Effect
}
