package generator

import (
	"github.com/pmsfc/zod-openapi/openapi"
	"github.com/pmsfc/zod-openapi/schema"
)

// DefaultRefPrefix is the reference path prefix used when no
// WithRefPrefix option is given.
const DefaultRefPrefix = "#/components/schemas/"

// Generator synthesizes OpenAPI fragments from schema node trees. All
// fragments produced by one Generator share its component registry.
//
// Concurrency: Generator instances are not safe for concurrent use.
// Create separate Generator instances for concurrent operations.
type Generator struct {
	registry  *Registry
	refPrefix string
	logger    openapi.Logger
}

// Option configures a Generator instance.
// Options are applied when creating a new Generator with New().
type Option func(*Generator)

// WithRefPrefix sets the path prefix prepended to registered component
// names when formatting $ref values. The default is
// "#/components/schemas/".
func WithRefPrefix(prefix string) Option {
	return func(g *Generator) { g.refPrefix = prefix }
}

// WithLogger sets the structured logger. The default discards all output.
func WithLogger(logger openapi.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithRegistry shares an existing component registry, so several root
// fragments deduplicate against the same components. Note that a registry
// stores one fragment per node identity: callers materializing both input
// and output documents should use separate registries, and the returned
// effects to decide whether the two documents actually differ.
func WithRegistry(registry *Registry) Option {
	return func(g *Generator) {
		if registry != nil {
			g.registry = registry
		}
	}
}

// New creates a Generator.
func New(opts ...Option) *Generator {
	g := &Generator{
		refPrefix: DefaultRefPrefix,
		logger:    openapi.NopLogger{},
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.registry == nil {
		g.registry = NewRegistry()
	}
	return g
}

// Registry returns the generator's component registry. After synthesis the
// registry holds every completed component for the document assembler to
// serialize under components.schemas.
func (g *Generator) Registry() *Registry { return g.registry }

// RefFor formats the $ref value for a registered component name. It is a
// pure function of the name and the configured prefix.
func (g *Generator) RefFor(name string) string { return g.refPrefix + name }

// Input synthesizes the node's input-mode fragment: the shape of data
// before defaults materialize and transforms run.
func (g *Generator) Input(node *schema.Node) (*openapi.Schema, []Effect, error) {
	return g.Generate(node, ModeInput)
}

// Output synthesizes the node's output-mode fragment: the shape of data
// after defaults materialize and transforms run.
func (g *Generator) Output(node *schema.Node) (*openapi.Schema, []Effect, error) {
	return g.Generate(node, ModeOutput)
}

// Generate synthesizes the node's fragment in the given mode. The returned
// effect list is the exact pre-order concatenation of every divergence
// observed anywhere in the tree; an empty list means the input and output
// documents for this tree are identical.
func (g *Generator) Generate(node *schema.Node, mode Mode) (*openapi.Schema, []Effect, error) {
	res, err := g.generate(node, state{mode: mode})
	if err != nil {
		return nil, nil, err
	}
	return res.Schema, res.Effects, nil
}

// state is the recursion state threaded through synthesis. It is passed by
// value: push copies the path, so a child's segments never leak into its
// parent or siblings.
type state struct {
	mode Mode
	path []string
}

func (s state) push(segment string) state {
	p := make([]string, len(s.path)+1)
	copy(p, s.path)
	p[len(s.path)] = segment
	return state{mode: s.mode, path: p}
}
