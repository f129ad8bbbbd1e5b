package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDefsYAML = `schemas:
  Pet:
    type: object
    properties:
      name: {type: string}
      age: {type: integer, optional: true}
  Dog:
    extends: Pet
    properties:
      breed: {type: string}
`

func writeDefs(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "schemas.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestHandleSynthesize_WritesJSON(t *testing.T) {
	defs := writeDefs(t, testDefsYAML)
	out := filepath.Join(t.TempDir(), "openapi.json")

	err := HandleSynthesize([]string{"-o", out, "-title", "Pet Store", defs})
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	s := string(data)
	assert.Contains(t, s, `"openapi": "3.1.0"`)
	assert.Contains(t, s, `"title": "Pet Store"`)
	assert.Contains(t, s, `"#/components/schemas/Pet"`)
}

func TestHandleSynthesize_WritesYAML(t *testing.T) {
	defs := writeDefs(t, testDefsYAML)
	out := filepath.Join(t.TempDir(), "openapi.yaml")

	err := HandleSynthesize([]string{"-format", "yaml", "-o", out, defs})
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "openapi: 3.1.0")
	assert.Contains(t, string(data), "Dog:")
}

func TestHandleSynthesize_InputMode(t *testing.T) {
	defs := writeDefs(t, `schemas:
  Page:
    type: object
    properties:
      limit: {type: integer, default: 10}
`)
	out := filepath.Join(t.TempDir(), "openapi.json")

	err := HandleSynthesize([]string{"-mode", "input", "-quiet", "-o", out, defs})
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.NotContains(t, string(data), `"required"`)
}

func TestHandleSynthesize_Errors(t *testing.T) {
	defs := writeDefs(t, testDefsYAML)
	tests := []struct {
		name string
		args []string
	}{
		{"no file", []string{}},
		{"two files", []string{defs, defs}},
		{"bad format", []string{"-format", "toml", defs}},
		{"bad mode", []string{"-mode", "sideways", defs}},
		{"missing file", []string{filepath.Join(t.TempDir(), "missing.yaml")}},
		{"bad extension", []string{writeBadExt(t)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, HandleSynthesize(tt.args))
		})
	}
}

func writeBadExt(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "schemas.toml")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))
	return path
}

func TestValidateDocumentFormat(t *testing.T) {
	assert.NoError(t, ValidateDocumentFormat(FormatJSON))
	assert.NoError(t, ValidateDocumentFormat(FormatYAML))
	assert.Error(t, ValidateDocumentFormat(FormatText))
	assert.Error(t, ValidateDocumentFormat("toml"))
}
