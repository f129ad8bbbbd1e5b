package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	zodopenapi "github.com/pmsfc/zod-openapi"
	"github.com/pmsfc/zod-openapi/cmd/zod-openapi/commands"
	"github.com/pmsfc/zod-openapi/internal/mcpserver"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("zod-openapi v%s\n", zodopenapi.Version())
	case "help", "-h", "--help":
		printUsage()
	case "synthesize":
		if err := commands.HandleSynthesize(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "effects":
		if err := commands.HandleEffects(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if err := mcpserver.Run(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`zod-openapi - OpenAPI schema synthesis from declarative definitions

Usage:
  zod-openapi <command> [options]

Commands:
  synthesize  Synthesize an OpenAPI document from a schema definition file
  effects     Report input/output divergence points of a definition file
  mcp         Run the MCP server over stdio
  version     Show version information
  help        Show this help message

Examples:
  zod-openapi synthesize schemas.yaml
  zod-openapi synthesize -format yaml -o openapi.yaml schemas.yaml
  zod-openapi synthesize -mode input schemas.yaml
  zod-openapi effects -format json schemas.yaml

Run 'zod-openapi <command> --help' for more information on a command.`)
}
