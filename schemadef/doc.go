// Package schemadef loads declarative schema definitions from YAML or
// JSON files and compiles them into schema node trees.
//
// A definition file maps component names to definitions:
//
//	schemas:
//	  Pet:
//	    type: object
//	    properties:
//	      name: {type: string}
//	      age: {type: integer, optional: true}
//	  Dog:
//	    extends: Pet
//	    properties:
//	      breed: {type: string}
//
// Property order in the file is preserved through compilation and into
// the synthesized document. Definitions may reference each other by
// name (ref), extend earlier object definitions (extends), and carry
// the same modifiers the programmatic schema builders expose: optional,
// nullable, default, strict, passthrough, catchall, enum, const, items,
// prefixItems, values, variants, discriminator and leaf constraints.
//
// Compilation failures are reported as [zoderrors.DefinitionError]
// values carrying the path to the offending key.
package schemadef
