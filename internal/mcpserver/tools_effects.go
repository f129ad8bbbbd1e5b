package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type effectsInput struct {
	Definitions defInput `json:"definitions"    jsonschema:"The schema definitions to analyze"`
	Mode        string   `json:"mode,omitempty" jsonschema:"Synthesis mode to analyze: input or output (default: output)"`
}

type effectInfo struct {
	Kind      string   `json:"kind"`
	Direction string   `json:"direction"`
	Path      []string `json:"path,omitempty"`
	Component string   `json:"component,omitempty"`
}

type effectsOutput struct {
	Success     bool         `json:"success"`
	Mode        string       `json:"mode"`
	EffectCount int          `json:"effect_count"`
	Effects     []effectInfo `json:"effects,omitempty"`
	// ModesAgree is true when the definitions read identically in input
	// and output mode, so one document serves both directions.
	ModesAgree bool `json:"modes_agree"`
}

func handleEffects(_ context.Context, _ *mcp.CallToolRequest, input effectsInput) (*mcp.CallToolResult, effectsOutput, error) {
	doc, mode, err := buildDocument(input.Definitions, input.Mode, "", "")
	if err != nil {
		return errResult(err), effectsOutput{}, nil
	}

	output := effectsOutput{
		Success:    true,
		Mode:       mode.String(),
		ModesAgree: len(doc.Effects) == 0,
	}
	output.EffectCount = len(doc.Effects)
	for _, fx := range doc.Effects {
		output.Effects = append(output.Effects, effectInfo{
			Kind:      fx.Kind.String(),
			Direction: fx.Direction.String(),
			Path:      fx.Path,
			Component: fx.Component,
		})
	}
	return nil, output, nil
}
