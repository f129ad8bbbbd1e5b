package schemadef

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"go.yaml.in/yaml/v4"

	"github.com/pmsfc/zod-openapi/zoderrors"
)

// LoadYAML parses a YAML definition file.
func LoadYAML(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, &zoderrors.DefinitionError{
			Message: "parsing YAML definitions",
			Cause:   err,
		}
	}
	return &f, nil
}

// LoadJSON parses a JSON definition file.
func LoadJSON(data []byte) (*File, error) {
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, &zoderrors.DefinitionError{
			Message: "parsing JSON definitions",
			Cause:   err,
		}
	}
	return &f, nil
}

// LoadFile reads and parses a definition file, choosing the format from
// the file extension. ".json" selects JSON; ".yaml" and ".yml" select
// YAML; anything else is an error.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading definition file: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return LoadJSON(data)
	case ".yaml", ".yml":
		return LoadYAML(data)
	default:
		return nil, &zoderrors.DefinitionError{
			Path:    []string{path},
			Message: fmt.Sprintf("unsupported definition file extension %q", filepath.Ext(path)),
		}
	}
}
