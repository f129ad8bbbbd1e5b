package mcpserver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
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

func TestSynthesizeTool_JSON(t *testing.T) {
	input := synthesizeInput{
		Definitions: defInput{Content: testDefsYAML},
		Title:       "Pet Store",
		APIVersion:  "2.0.0",
	}
	_, output, err := handleSynthesize(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.True(t, output.Success)
	assert.Equal(t, "output", output.Mode)
	assert.Equal(t, 2, output.ComponentCount)
	assert.Equal(t, []string{"Pet", "Dog"}, output.Components)
	assert.Equal(t, 0, output.EffectCount)
	assert.Empty(t, output.Unresolved)
	assert.Contains(t, output.Document, `"openapi": "3.1.0"`)
	assert.Contains(t, output.Document, `"title": "Pet Store"`)
	assert.Contains(t, output.Document, "#/components/schemas/Pet")
}

func TestSynthesizeTool_YAMLFormat(t *testing.T) {
	input := synthesizeInput{
		Definitions: defInput{Content: testDefsYAML},
		Format:      "yaml",
	}
	_, output, err := handleSynthesize(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.True(t, output.Success)
	assert.Contains(t, output.Document, "openapi: 3.1.0")
	assert.Contains(t, output.Document, "Pet:")
}

func TestSynthesizeTool_InputMode(t *testing.T) {
	defs := `schemas:
  Page:
    type: object
    properties:
      limit: {type: integer, default: 10}
`
	input := synthesizeInput{
		Definitions: defInput{Content: defs},
		Mode:        "input",
	}
	_, output, err := handleSynthesize(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.Equal(t, "input", output.Mode)
	assert.Equal(t, 1, output.EffectCount)
	assert.NotContains(t, output.Document, `"required"`)
}

func TestSynthesizeTool_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "defs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testDefsYAML), 0o600))

	input := synthesizeInput{
		Definitions: defInput{File: path},
	}
	_, output, err := handleSynthesize(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.True(t, output.Success)
	assert.Equal(t, 2, output.ComponentCount)
}

func TestSynthesizeTool_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input synthesizeInput
	}{
		{"no input", synthesizeInput{}},
		{"both inputs", synthesizeInput{Definitions: defInput{File: "x.yaml", Content: "schemas: {}"}}},
		{"bad mode", synthesizeInput{Definitions: defInput{Content: testDefsYAML}, Mode: "sideways"}},
		{"bad format", synthesizeInput{Definitions: defInput{Content: testDefsYAML}, Format: "toml"}},
		{"bad definitions", synthesizeInput{Definitions: defInput{Content: "schemas:\n  X: {type: frobnicate}\n"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, _, err := handleSynthesize(context.Background(), &mcp.CallToolRequest{}, tt.input)
			require.NoError(t, err)
			require.NotNil(t, result)
			assert.True(t, result.IsError)
		})
	}
}

func TestSanitizeError_StripsPaths(t *testing.T) {
	input := synthesizeInput{
		Definitions: defInput{File: "/tmp/nope/definitely-missing.yaml"},
	}
	result, _, err := handleSynthesize(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.NotNil(t, result)
	require.True(t, result.IsError)
	text := result.Content[0].(*mcp.TextContent).Text
	assert.NotContains(t, text, "/tmp/nope")
	assert.Contains(t, text, "<path>")
}
