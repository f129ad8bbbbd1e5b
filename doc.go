// Package zodopenapi converts composable data-validation schemas into
// OpenAPI (JSON Schema compatible) documents.
//
// A schema is described as an immutable tree of typed nodes (string, number,
// object, array, union, optional, default, transform, ...) built with the
// schema package. The generator package synthesizes an OpenAPI schema
// fragment from such a tree, deduplicating named sub-schemas through a
// shared component registry and tracking every point where a schema's
// "input" shape (before defaults and transforms apply) diverges from its
// "output" shape.
//
// # Overview
//
// The library consists of five primary packages:
//
//   - schema: construct immutable, identity-tagged schema node trees
//   - generator: synthesize OpenAPI fragments from node trees
//   - openapi: the fragment object model with order-preserving marshaling
//   - document: assemble fragments and registered components into a full
//     OpenAPI document
//   - schemadef: load declarative YAML/JSON schema definitions into node
//     trees (used by the CLI and MCP server)
//
// # Quick Start
//
// Build a schema and synthesize its OpenAPI fragment:
//
//	import (
//	    "github.com/pmsfc/zod-openapi/generator"
//	    "github.com/pmsfc/zod-openapi/schema"
//	)
//
//	user := schema.Object(schema.Fields{
//	    {Name: "name", Node: schema.String()},
//	    {Name: "role", Node: schema.String().Default("user")},
//	}).Ref("User")
//
//	gen := generator.New()
//	frag, effects, err := gen.Output(user)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// frag is {"$ref": "#/components/schemas/User"}; the registered
//	// component lists "role" as required because defaults always
//	// materialize in output mode. effects records that divergence.
//
// Assemble a document:
//
//	doc, err := document.New(
//	    document.WithTitle("My API"),
//	    document.WithVersion("1.0.0"),
//	).AddSchema("User", user).Build()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	out, err := doc.YAML()
//
// # Input and Output Modes
//
// Defaults, preprocessing steps and transforms make a schema mean different
// things depending on whether it describes data arriving at a boundary
// (input) or data leaving it (output). The generator synthesizes one mode at
// a time and returns the full list of divergence effects so a caller can
// decide whether a single document suffices or separate request/response
// materializations are needed.
//
// # Component Registry
//
// Nodes carrying an explicit reference name are registered once per
// generator and emitted as $ref everywhere they appear, including inside
// their own definition: in-progress entries short-circuit cyclic schemas
// into forward references instead of recursing forever.
//
// # Command-Line Interface
//
// A CLI is provided for working with declarative schema definitions:
//
//	# Synthesize an OpenAPI document from a definition file
//	zod-openapi synthesize -o openapi.yaml schemas.yaml
//
//	# Report input/output divergence points
//	zod-openapi effects schemas.yaml
//
//	# Run the MCP server over stdio
//	zod-openapi mcp
//
// Install the CLI:
//
//	go install github.com/pmsfc/zod-openapi/cmd/zod-openapi@latest
package zodopenapi
