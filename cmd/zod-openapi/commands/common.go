// Package commands provides CLI command handlers for zod-openapi.
package commands

import (
	"fmt"
	"io"
	"os"

	json "github.com/goccy/go-json"
	"go.yaml.in/yaml/v4"

	"github.com/pmsfc/zod-openapi/document"
	"github.com/pmsfc/zod-openapi/generator"
	"github.com/pmsfc/zod-openapi/schemadef"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// ValidateDocumentFormat validates a document serialization format.
func ValidateDocumentFormat(format string) error {
	if format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s", format, FormatJSON, FormatYAML)
	}
	return nil
}

// ParseMode maps a -mode flag value to a synthesis mode.
func ParseMode(s string) (generator.Mode, error) {
	switch s {
	case "input":
		return generator.ModeInput, nil
	case "output":
		return generator.ModeOutput, nil
	default:
		return 0, fmt.Errorf("invalid mode '%s'. Valid modes: input, output", s)
	}
}

// LoadDefinitions reads a definition file, or stdin when path is "-".
// Stdin content is parsed as YAML, which also accepts JSON documents.
func LoadDefinitions(path string) (*schemadef.File, error) {
	if path == StdinFilePath {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading from stdin: %w", err)
		}
		return schemadef.LoadYAML(data)
	}
	return schemadef.LoadFile(path)
}

// BuildDocument compiles definitions and assembles a document from them.
func BuildDocument(file *schemadef.File, opts ...document.Option) (*document.Document, error) {
	named, err := file.Compile()
	if err != nil {
		return nil, err
	}
	b := document.New(opts...)
	for _, n := range named {
		b.AddSchema(n.Name, n.Node)
	}
	return b.Build()
}

// OutputStructured outputs data in the specified format (json or yaml) to
// stdout. Returns an error if marshaling fails.
func OutputStructured(data any, format string) error {
	var bytes []byte
	var err error

	switch format {
	case FormatJSON:
		bytes, err = json.MarshalIndent(data, "", "  ")
	case FormatYAML:
		bytes, err = yaml.Marshal(data)
	default:
		return fmt.Errorf("invalid format for structured output: %s", format)
	}

	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}

	fmt.Println(string(bytes))
	return nil
}

// WriteOutput writes data to the given path, or stdout when path is empty.
func WriteOutput(path string, data []byte) error {
	if path == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	return nil
}
