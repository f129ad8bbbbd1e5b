// Package zoderrors provides structured error types for zod-openapi.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between different categories
// of synthesis failures.
//
// # Error Categories
//
//   - UnrecognizedKindError: a schema node's variant has no generator and no
//     manual-override fragment
//   - DuplicateRefError: two distinct node identities requested the same
//     component name
//   - UnexpectedReferenceError: an internal invariant violation — a call site
//     expected a plain fragment but received a reference
//   - DefinitionError: a declarative schema definition failed to load
//   - ConfigError: invalid configuration or input options
//
// # Usage with errors.Is
//
//	frag, _, err := gen.Output(node)
//	if err != nil {
//	    var kindErr *zoderrors.UnrecognizedKindError
//	    if errors.As(err, &kindErr) {
//	        fmt.Printf("unsupported %s at %s\n", kindErr.Kind, kindErr.PathString())
//	    }
//	}
package zoderrors
