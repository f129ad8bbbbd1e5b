package document

import (
	"github.com/pmsfc/zod-openapi/generator"
	"github.com/pmsfc/zod-openapi/openapi"
)

// config holds the assembly configuration built from options.
type config struct {
	title          string
	version        string
	description    string
	openapiVersion string
	mode           generator.Mode
	naming         NamingStrategy
	nameTemplate   string
	refPrefix      string
	logger         openapi.Logger
}

func defaultConfig() config {
	return config{
		title:          "Generated API",
		version:        "1.0.0",
		openapiVersion: "3.1.0",
		mode:           generator.ModeOutput,
		refPrefix:      generator.DefaultRefPrefix,
		logger:         openapi.NopLogger{},
	}
}

// Option configures a Builder.
type Option func(*config)

// WithTitle sets the info.title of the assembled document.
func WithTitle(title string) Option {
	return func(c *config) { c.title = title }
}

// WithVersion sets the info.version of the assembled document.
func WithVersion(version string) Option {
	return func(c *config) { c.version = version }
}

// WithDescription sets the info.description of the assembled document.
func WithDescription(description string) Option {
	return func(c *config) { c.description = description }
}

// WithOpenAPIVersion overrides the openapi version string. The default
// is "3.1.0".
func WithOpenAPIVersion(version string) Option {
	return func(c *config) { c.openapiVersion = version }
}

// WithMode selects the interpretation the document is built for. The
// default is [generator.ModeOutput], the response-side view.
func WithMode(mode generator.Mode) Option {
	return func(c *config) { c.mode = mode }
}

// WithNaming sets the strategy used to normalize component names that
// were supplied to AddSchema. Names carried by the nodes themselves are
// never rewritten.
func WithNaming(strategy NamingStrategy) Option {
	return func(c *config) { c.naming = strategy }
}

// WithNameTemplate sets a text/template rendered to produce component
// names, overriding WithNaming. The template receives .Name and .Index
// and may use the pascal, camel, snake, kebab, title, upper and lower
// functions:
//
//	document.WithNameTemplate("Api{{ pascal .Name }}")
//
// A malformed template is reported by Build.
func WithNameTemplate(tmpl string) Option {
	return func(c *config) { c.nameTemplate = tmpl }
}

// WithRefPrefix overrides the reference prefix used for component
// references. The default is [generator.DefaultRefPrefix].
func WithRefPrefix(prefix string) Option {
	return func(c *config) { c.refPrefix = prefix }
}

// WithLogger sets the logger used during assembly and synthesis.
func WithLogger(logger openapi.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}
