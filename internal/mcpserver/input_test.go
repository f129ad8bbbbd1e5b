package mcpserver

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pmsfc/zod-openapi/generator"
)

func TestDefInput_ResolveInline(t *testing.T) {
	f, err := defInput{Content: testDefsYAML}.resolve()
	require.NoError(t, err)
	assert.Len(t, f.Schemas, 2)

	f, err = defInput{Content: `{"schemas":{"X":{"type":"string"}}}`, Format: "json"}.resolve()
	require.NoError(t, err)
	assert.Len(t, f.Schemas, 1)
}

func TestDefInput_RejectsOversizedContent(t *testing.T) {
	old := cfg.MaxInlineSize
	cfg.MaxInlineSize = 16
	defer func() { cfg.MaxInlineSize = old }()

	_, err := defInput{Content: strings.Repeat("x", 32)}.resolve()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds maximum")
}

func TestDefInput_UnsupportedFormat(t *testing.T) {
	_, err := defInput{Content: testDefsYAML, Format: "toml"}.resolve()
	require.Error(t, err)
}

func TestParseMode(t *testing.T) {
	mode, err := parseMode("input")
	require.NoError(t, err)
	assert.Equal(t, generator.ModeInput, mode)

	mode, err = parseMode("OUTPUT")
	require.NoError(t, err)
	assert.Equal(t, generator.ModeOutput, mode)

	mode, err = parseMode("")
	require.NoError(t, err)
	assert.Equal(t, generator.ModeOutput, mode)

	_, err = parseMode("sideways")
	require.Error(t, err)
}
