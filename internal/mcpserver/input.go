package mcpserver

import (
	"fmt"
	"strings"

	"github.com/pmsfc/zod-openapi/generator"
	"github.com/pmsfc/zod-openapi/schemadef"
)

// defInput represents the two ways a schema definition can be provided
// to a tool. Exactly one of File or Content must be set.
type defInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to a schema definition file on disk (.yaml, .yml or .json)"`
	Content string `json:"content,omitempty" jsonschema:"Inline schema definition content"`
	Format  string `json:"format,omitempty"  jsonschema:"Format of inline content: yaml (default) or json"`
}

// resolve loads and parses the definitions from whichever input was
// provided.
func (d defInput) resolve() (*schemadef.File, error) {
	switch {
	case d.File != "" && d.Content != "":
		return nil, fmt.Errorf("exactly one of file or content must be provided (got both)")
	case d.File != "":
		return schemadef.LoadFile(d.File)
	case d.Content != "":
		if int64(len(d.Content)) > cfg.MaxInlineSize {
			return nil, fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use file input instead, or set ZODOPENAPI_MAX_INLINE_SIZE to increase",
				len(d.Content), cfg.MaxInlineSize)
		}
		switch strings.ToLower(d.Format) {
		case "", "yaml", "yml":
			return schemadef.LoadYAML([]byte(d.Content))
		case "json":
			return schemadef.LoadJSON([]byte(d.Content))
		default:
			return nil, fmt.Errorf("unsupported inline format %q; use yaml or json", d.Format)
		}
	default:
		return nil, fmt.Errorf("exactly one of file or content must be provided (got none)")
	}
}

// parseMode maps a tool-call mode string to a synthesis mode, falling
// back to the configured default when empty.
func parseMode(s string) (generator.Mode, error) {
	if s == "" {
		s = cfg.DefaultMode
	}
	switch strings.ToLower(s) {
	case "input":
		return generator.ModeInput, nil
	case "output":
		return generator.ModeOutput, nil
	default:
		return 0, fmt.Errorf("invalid mode %q; valid values: input, output", s)
	}
}
