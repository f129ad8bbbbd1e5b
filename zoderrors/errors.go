package zoderrors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrUnrecognizedKind indicates a schema node with no matching generator.
	ErrUnrecognizedKind = errors.New("unrecognized schema kind")

	// ErrDuplicateRef indicates a component name bound to two distinct nodes.
	ErrDuplicateRef = errors.New("duplicate component reference")

	// ErrUnexpectedReference indicates an internal invariant violation where
	// a plain fragment was expected but a reference was produced.
	ErrUnexpectedReference = errors.New("unexpected reference fragment")

	// ErrDefinition indicates a declarative schema definition failed to load.
	ErrDefinition = errors.New("definition error")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// joinPath renders a synthesis traversal path for diagnostics.
// An empty path renders as the document root.
func joinPath(path []string) string {
	if len(path) == 0 {
		return "<root>"
	}
	return strings.Join(path, " > ")
}

// UnrecognizedKindError represents a schema node whose variant has no
// matching generator and no manual-override fragment. This is a schema
// authoring defect and aborts the whole synthesis.
type UnrecognizedKindError struct {
	// Kind is the rendering of the unresolvable node's variant tag
	Kind string
	// Node is a human-readable rendering of the node itself
	Node string
	// Path is the traversal path at which the node was encountered
	Path []string
}

// Error returns a human-readable error message.
func (e *UnrecognizedKindError) Error() string {
	msg := "unrecognized schema kind"
	if e.Kind != "" {
		msg += " " + e.Kind
	}
	if e.Node != "" {
		msg += fmt.Sprintf(" (%s)", e.Node)
	}
	msg += " at " + joinPath(e.Path)
	return msg
}

// PathString returns the traversal path rendered for diagnostics.
func (e *UnrecognizedKindError) PathString() string {
	return joinPath(e.Path)
}

// Is reports whether target matches this error type.
func (e *UnrecognizedKindError) Is(target error) bool {
	return target == ErrUnrecognizedKind
}

// DuplicateRefError represents two distinct schema node identities
// requesting the same component registry name. Names are permanently bound
// to the first identity that completes; rebinding is never silent.
type DuplicateRefError struct {
	// Name is the contested component name
	Name string
	// ExistingID is the node identity the name is already bound to
	ExistingID uint64
	// NewID is the node identity that attempted the rebinding
	NewID uint64
	// Path is the traversal path of the attempted rebinding
	Path []string
}

// Error returns a human-readable error message.
func (e *DuplicateRefError) Error() string {
	return fmt.Sprintf(
		"duplicate component reference %q: bound to node %d, requested again by node %d at %s",
		e.Name, e.ExistingID, e.NewID, joinPath(e.Path))
}

// Is reports whether target matches this error type.
func (e *DuplicateRefError) Is(target error) bool {
	return target == ErrDuplicateRef
}

// UnexpectedReferenceError represents an internal invariant violation: a
// call site that required a plain schema fragment received a $ref instead.
// It should never be reachable through normal schema shapes.
type UnexpectedReferenceError struct {
	// Ref is the reference that was unexpectedly produced
	Ref string
	// Path is the traversal path at which it was produced
	Path []string
}

// Error returns a human-readable error message.
func (e *UnexpectedReferenceError) Error() string {
	msg := "unexpected reference fragment"
	if e.Ref != "" {
		msg += " " + e.Ref
	}
	msg += " at " + joinPath(e.Path)
	return msg
}

// Is reports whether target matches this error type.
func (e *UnexpectedReferenceError) Is(target error) bool {
	return target == ErrUnexpectedReference
}

// DefinitionError represents a failure to load a declarative schema
// definition from YAML or JSON.
type DefinitionError struct {
	// Path is the definition path to the offending key
	Path []string
	// Message describes the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *DefinitionError) Error() string {
	msg := "definition error at " + joinPath(e.Path)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *DefinitionError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *DefinitionError) Is(target error) bool {
	return target == ErrDefinition
}

// ConfigError represents an invalid configuration or input.
// This includes invalid options, missing required inputs, and conflicting settings.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
