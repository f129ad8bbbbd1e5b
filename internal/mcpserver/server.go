// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes schema synthesis as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	zodopenapi "github.com/pmsfc/zod-openapi"
)

const serverInstructions = `zod-openapi MCP server — synthesizes OpenAPI schema components from declarative schema definitions.

Definitions are YAML or JSON files mapping component names to schema definitions (type, properties, optional, default, ref, extends, enum, variants, constraints). Provide them inline via content or by path via file.

Key settings (environment variables in your MCP client config):
- ZODOPENAPI_MAX_INLINE_SIZE (default: 2097152) — maximum inline content size in bytes
- ZODOPENAPI_DEFAULT_MODE (default: output) — synthesis mode when a call omits one
- ZODOPENAPI_DEFAULT_FORMAT (default: json) — document serialization format

Modes: output describes response payloads (defaulted fields are required); input describes request payloads (defaulted fields are optional). The effects tool reports every place where the two modes diverge.`

// Run starts the MCP server over stdio and blocks until the client
// disconnects or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "zod-openapi", Version: zodopenapi.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "synthesize",
		Description: "Synthesize an OpenAPI document from a schema definition file. Returns the document with one entry under components.schemas per definition, dependencies registered before the roots that need them. Choose mode=input for request-side schemas or mode=output (default) for response-side schemas; the two differ wherever definitions carry defaults or transforms.",
	}, handleSynthesize)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "effects",
		Description: "Report the input/output divergence points of a schema definition file. Each effect names the traversal path of a default or transform whose input and output interpretations differ. An empty list means one document serves both directions.",
	}, handleEffects)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
