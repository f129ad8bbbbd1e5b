package document

import (
	"fmt"
	"strings"
	"text/template"

	json "github.com/goccy/go-json"
	"go.yaml.in/yaml/v4"

	"github.com/pmsfc/zod-openapi/generator"
	"github.com/pmsfc/zod-openapi/openapi"
	"github.com/pmsfc/zod-openapi/schema"
	"github.com/pmsfc/zod-openapi/zoderrors"
)

// Info is the info block of an assembled document.
type Info struct {
	Title       string `json:"title" yaml:"title"`
	Version     string `json:"version" yaml:"version"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Components holds the reusable objects of an assembled document.
// Schemas preserve registration order when serialized.
type Components struct {
	Schemas openapi.Properties `json:"schemas,omitempty" yaml:"schemas,omitempty"`
}

// Document is an assembled OpenAPI document fragment: the info block plus
// every component registered during synthesis.
type Document struct {
	OpenAPI    string      `json:"openapi" yaml:"openapi"`
	Info       Info        `json:"info" yaml:"info"`
	Components *Components `json:"components,omitempty" yaml:"components,omitempty"`

	// Effects records every input/output divergence observed while the
	// document was built. An empty slice means the document reads the
	// same in both modes. Not serialized.
	Effects []generator.Effect `json:"-" yaml:"-"`

	// Unresolved names components that were referenced during synthesis
	// but never completed. Non-empty only when schemas were added whose
	// references point outside the document. Not serialized.
	Unresolved []string `json:"-" yaml:"-"`
}

// JSON serializes the document as indented JSON.
func (d *Document) JSON() ([]byte, error) {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling document to JSON: %w", err)
	}
	return data, nil
}

// YAML serializes the document as YAML.
func (d *Document) YAML() ([]byte, error) {
	data, err := yaml.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("marshaling document to YAML: %w", err)
	}
	return data, nil
}

type pendingSchema struct {
	name string
	node *schema.Node
}

// Builder accumulates root schemas and assembles them into a Document.
//
// Builder instances are not safe for concurrent use.
type Builder struct {
	cfg     config
	pending []pendingSchema
}

// New creates a Builder with the given options applied over the
// defaults.
func New(opts ...Option) *Builder {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return &Builder{cfg: cfg}
}

// AddSchema queues a root schema for the document under the given
// component name. If the node already carries its own reference name,
// that name wins and no naming strategy is applied. Returns the builder
// for chaining; validation happens in Build.
func (b *Builder) AddSchema(name string, node *schema.Node) *Builder {
	b.pending = append(b.pending, pendingSchema{name: name, node: node})
	return b
}

// Build synthesizes every queued schema in the builder's mode and
// assembles the document. Components appear in components.schemas in
// the order their synthesis completed, nested dependencies before the
// roots that need them.
func (b *Builder) Build() (*Document, error) {
	tmpl, err := b.nameTemplate()
	if err != nil {
		return nil, err
	}

	gen := generator.New(
		generator.WithRefPrefix(b.cfg.refPrefix),
		generator.WithLogger(b.cfg.logger),
	)

	var effects []generator.Effect
	for i, p := range b.pending {
		node, err := b.resolveComponent(tmpl, p, i)
		if err != nil {
			return nil, err
		}
		b.cfg.logger.Debug("synthesizing component", "name", node.RefName(), "mode", b.cfg.mode.String())
		_, fx, err := gen.Generate(node, b.cfg.mode)
		if err != nil {
			return nil, fmt.Errorf("building component %q: %w", node.RefName(), err)
		}
		effects = append(effects, fx...)
	}

	doc := &Document{
		OpenAPI: b.cfg.openapiVersion,
		Info: Info{
			Title:       b.cfg.title,
			Version:     b.cfg.version,
			Description: b.cfg.description,
		},
		Effects: effects,
	}

	entries := gen.Registry().Entries()
	if len(entries) > 0 {
		components := &Components{}
		for _, entry := range entries {
			components.Schemas = components.Schemas.Add(entry.Name, entry.Schema)
		}
		doc.Components = components
	}

	if unresolved := gen.Registry().Unresolved(); len(unresolved) > 0 {
		doc.Unresolved = unresolved
		b.cfg.logger.Warn("document has unresolved component references",
			"components", strings.Join(unresolved, ", "))
	}

	return doc, nil
}

// nameTemplate parses the configured name template, if any.
func (b *Builder) nameTemplate() (*template.Template, error) {
	if b.cfg.nameTemplate == "" {
		return nil, nil
	}
	tmpl, err := template.New("component-name").Funcs(namingFuncs).Parse(b.cfg.nameTemplate)
	if err != nil {
		return nil, &zoderrors.ConfigError{
			Option:  "name template",
			Value:   b.cfg.nameTemplate,
			Message: "malformed template",
			Cause:   err,
		}
	}
	return tmpl, nil
}

// resolveComponent determines the component name for a queued schema and
// returns a node carrying it. Nodes with their own reference name pass
// through unchanged.
func (b *Builder) resolveComponent(tmpl *template.Template, p pendingSchema, index int) (*schema.Node, error) {
	if p.node == nil {
		return nil, &zoderrors.DefinitionError{
			Path:    []string{p.name},
			Message: "nil schema added to document",
		}
	}
	if own := p.node.RefName(); own != "" {
		return p.node, nil
	}

	name := p.name
	switch {
	case tmpl != nil:
		var sb strings.Builder
		if err := tmpl.Execute(&sb, nameContext{Name: p.name, Index: index}); err != nil {
			return nil, &zoderrors.ConfigError{
				Option:  "name template",
				Value:   b.cfg.nameTemplate,
				Message: fmt.Sprintf("rendering name for %q", p.name),
				Cause:   err,
			}
		}
		name = sb.String()
	default:
		name = b.cfg.naming.Apply(name)
	}
	if name == "" {
		return nil, &zoderrors.DefinitionError{
			Path:    []string{fmt.Sprintf("schema %d", index)},
			Message: "component name required",
		}
	}
	return p.node.Ref(name), nil
}
