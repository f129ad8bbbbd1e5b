// Package generator synthesizes OpenAPI schema fragments from schema node
// trees.
//
// A Generator walks a tree depth-first, dispatching on each node's kind and
// assembling an openapi.Schema fragment per node. Three concerns thread
// through the recursion:
//
//   - Modes: a schema means different things before defaults and transforms
//     apply (input) and after (output). One synthesis call materializes one
//     mode; every point where the two modes diverge is returned as an
//     Effect tagged with the traversal path where it was observed.
//   - Components: nodes requesting a reference name are synthesized once,
//     stored in the generator's Registry, and emitted as $ref at every use
//     site. Registry entries are keyed by node identity, never by shape.
//   - Cycles: a named node reached while its own definition is still being
//     synthesized short-circuits into a forward reference plus a
//     component-kind Effect instead of recursing forever. This in-progress
//     check is the only cycle guard; it runs before recursion begins.
//
// Object nodes built with schema.Extend synthesize as an allOf composition
// against the base's reference when the extension is purely additive (no
// shared field overridden by a different node, base not strict, base
// catch-all absent or Never); anything else falls back to a flattened
// object.
//
// Synthesis is synchronous and single-threaded; a Generator is not safe for
// concurrent use. Errors abort the whole call, but components completed
// before the failure stay registered and are reused if the caller retries
// with a corrected tree.
package generator
