// Package document assembles synthesized schema fragments into a full
// OpenAPI document.
//
// A Builder wraps one generator run: root schemas added with AddSchema are
// synthesized in the builder's mode, registered as components, and
// serialized under components.schemas in registration order. The builder
// also accumulates every divergence effect observed across the run, so a
// caller can check after Build whether the document is valid for both the
// input and output interpretations of its schemas or only for the mode it
// was built in.
//
// Component names can be normalized with a built-in naming strategy
// (PascalCase, snake_case, ...) or a custom template:
//
//	doc := document.New(
//	    document.WithTitle("Pet Store"),
//	    document.WithVersion("1.0.0"),
//	    document.WithNaming(document.NamingPascalCase),
//	)
//
// Concurrency: Builder instances are not safe for concurrent use.
// Create separate Builder instances for concurrent operations.
package document
