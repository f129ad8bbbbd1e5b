// Package openapi defines the schema fragment object model that zod-openapi
// synthesizes into.
//
// Schema is a JSON Schema superset object covering the keys the generator
// and document assembler emit ($ref, type, properties, required,
// additionalProperties, allOf, enum, const, items, prefixItems, ...).
// Property order is significant: Properties preserves declaration order
// through both JSON and YAML marshaling instead of sorting keys
// alphabetically.
//
// JSON marshaling uses github.com/goccy/go-json; YAML marshaling uses
// go.yaml.in/yaml/v4 node trees to keep mapping order stable.
package openapi
