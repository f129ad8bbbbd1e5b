package generator

import (
	"github.com/pmsfc/zod-openapi/openapi"
	"github.com/pmsfc/zod-openapi/schema"
	"github.com/pmsfc/zod-openapi/zoderrors"
)

// EntryState is the lifecycle state of a registry entry. Transitions are
// monotonic: in-progress, then complete. An identity with no entry has
// never been seen.
type EntryState int

const (
	// StateInProgress marks an entry whose fragment is still being
	// synthesized. Reaching such an entry again is a cycle.
	StateInProgress EntryState = iota + 1
	// StateComplete marks an entry whose fragment and effects are stored
	// and immutable.
	StateComplete
)

// String returns the state's rendering for diagnostics.
func (s EntryState) String() string {
	switch s {
	case StateInProgress:
		return "in-progress"
	case StateComplete:
		return "complete"
	default:
		return "absent"
	}
}

// Entry is one registered component: a name permanently bound to a node
// identity, with the completed fragment and effects once synthesis of the
// component finished.
type Entry struct {
	// Name is the registered component name.
	Name string
	// NodeID is the node identity the name is bound to.
	NodeID uint64
	// State is the entry's lifecycle state.
	State EntryState
	// Schema is the completed fragment; nil while in progress.
	Schema *openapi.Schema
	// Effects are the divergences observed while completing the fragment;
	// nil while in progress.
	Effects []Effect
}

// Registry is the identity-keyed component store shared by all fragments a
// Generator produces. It deduplicates named sub-schemas and is the sole
// mechanism breaking recursion on cyclic schema graphs. Entries are keyed
// by node identity, never by structural equality: two structurally
// identical nodes are two distinct entries.
//
// A Registry is scoped to one synthesis run and is not safe for concurrent
// use.
type Registry struct {
	entries map[uint64]*Entry
	names   map[string]uint64
	order   []uint64 // completion order of entries
}

// NewRegistry creates an empty component registry.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[uint64]*Entry),
		names:   make(map[string]uint64),
	}
}

// Get returns the entry for a node identity, if any.
func (r *Registry) Get(nodeID uint64) (*Entry, bool) {
	e, ok := r.entries[nodeID]
	return e, ok
}

// Lookup returns the completed entry bound to a component name, if any.
func (r *Registry) Lookup(name string) (*Entry, bool) {
	id, ok := r.names[name]
	if !ok {
		return nil, false
	}
	return r.Get(id)
}

// RegisterComplete binds a name directly to a completed fragment. It is the
// assembler-facing registration path for fragments synthesized outside the
// registry's own interception (e.g., a root fragment the caller wants
// published as a component). Binding a name already bound to a different
// node identity fails with DuplicateRef.
func (r *Registry) RegisterComplete(nodeID uint64, name string, s *openapi.Schema, effects []Effect) error {
	if s != nil && s.IsRef() {
		return &zoderrors.UnexpectedReferenceError{Ref: s.Ref}
	}
	if owner, taken := r.names[name]; taken && owner != nodeID {
		return &zoderrors.DuplicateRefError{Name: name, ExistingID: owner, NewID: nodeID}
	}
	if e, found := r.entries[nodeID]; found && e.State == StateComplete {
		// Idempotent: the identity is already complete under this name.
		return nil
	}
	r.names[name] = nodeID
	r.entries[nodeID] = &Entry{
		Name:    name,
		NodeID:  nodeID,
		State:   StateComplete,
		Schema:  s,
		Effects: effects,
	}
	r.order = append(r.order, nodeID)
	return nil
}

// Entries returns the completed entries in completion order: the order the
// document assembler serializes components.schemas in.
func (r *Registry) Entries() []*Entry {
	out := make([]*Entry, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.entries[id])
	}
	return out
}

// Unresolved returns the names of entries still in progress. A non-empty
// result after a run means a forward reference was emitted whose referent
// never completed (an aborted synthesis, or an internal bug); the document
// assembler surfaces these as warnings rather than hard errors.
func (r *Registry) Unresolved() []string {
	var names []string
	for _, e := range r.entries {
		if e.State == StateInProgress {
			names = append(names, e.Name)
		}
	}
	return names
}

// lookupOrGenerate intercepts synthesis of a named node.
//
// Complete entries return a reference immediately with the stored effects:
// this memoization is what makes synthesis terminate in O(distinct named
// nodes) instead of re-expanding shared sub-schemas at every use site.
// In-progress entries mean the node is an ancestor of itself in the call
// graph; the reference is returned anyway, tagged with a component-kind
// effect, and the consumer must tolerate the forward reference. Absent
// entries synthesize the definition under an in-progress mark.
func (r *Registry) lookupOrGenerate(g *Generator, node *schema.Node, name string, st state) (*Result, error) {
	if e, found := r.entries[node.ID()]; found {
		ref := openapi.NewRef(g.RefFor(e.Name))
		if e.State == StateComplete {
			return &Result{Schema: ref, Effects: append([]Effect(nil), e.Effects...)}, nil
		}
		g.logger.Debug("cycle short-circuited to forward reference",
			"name", e.Name, "node", node.ID(), "mode", st.mode.String())
		return &Result{Schema: ref, Effects: []Effect{{
			Kind:      EffectComponent,
			Direction: st.mode,
			NodeID:    node.ID(),
			Path:      st.path,
			Component: e.Name,
		}}}, nil
	}

	if owner, taken := r.names[name]; taken && owner != node.ID() {
		return nil, &zoderrors.DuplicateRefError{
			Name:       name,
			ExistingID: owner,
			NewID:      node.ID(),
			Path:       st.path,
		}
	}

	// Mark in progress before recursing: this ordering, not stack-depth
	// detection, is what prevents non-termination on cyclic graphs.
	entry := &Entry{Name: name, NodeID: node.ID(), State: StateInProgress}
	r.entries[node.ID()] = entry
	r.names[name] = node.ID()
	g.logger.Debug("registering component", "name", name, "node", node.ID())

	res, err := g.generateInner(node, st)
	if err != nil {
		return nil, err
	}
	if res.Schema.IsRef() {
		// The definition collapsed to a bare alias of another component.
		// Registering it would publish a component that is nothing but a
		// $ref, which consumers reject.
		return nil, &zoderrors.UnexpectedReferenceError{Ref: res.Schema.Ref, Path: st.path}
	}
	entry.State = StateComplete
	entry.Schema = res.Schema
	entry.Effects = res.Effects
	r.order = append(r.order, node.ID())
	return &Result{
		Schema:  openapi.NewRef(g.RefFor(name)),
		Effects: append([]Effect(nil), res.Effects...),
	}, nil
}
