package commands

import (
	"flag"
	"fmt"
	"os"

	"github.com/pmsfc/zod-openapi/document"
)

// synthesizeFlags contains flags for the synthesize command
type synthesizeFlags struct {
	output     string
	format     string
	mode       string
	title      string
	apiVersion string
	quiet      bool
}

func setupSynthesizeFlags() (*flag.FlagSet, *synthesizeFlags) {
	fs := flag.NewFlagSet("synthesize", flag.ContinueOnError)
	flags := &synthesizeFlags{}

	fs.StringVar(&flags.output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.format, "format", FormatJSON, "document format: json or yaml")
	fs.StringVar(&flags.mode, "mode", "output", "synthesis mode: input (request side) or output (response side)")
	fs.StringVar(&flags.title, "title", "Generated API", "info.title of the generated document")
	fs.StringVar(&flags.apiVersion, "api-version", "1.0.0", "info.version of the generated document")
	fs.BoolVar(&flags.quiet, "quiet", false, "suppress the effect summary on stderr")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: zod-openapi synthesize [flags] <definitions-file>\n\n")
		_, _ = fmt.Fprintf(output, "Synthesize an OpenAPI document from a schema definition file.\n")
		_, _ = fmt.Fprintf(output, "Use '-' as the file to read definitions from stdin.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  zod-openapi synthesize schemas.yaml\n")
		_, _ = fmt.Fprintf(output, "  zod-openapi synthesize -format yaml -o openapi.yaml schemas.yaml\n")
		_, _ = fmt.Fprintf(output, "  zod-openapi synthesize -mode input -title 'Pet Store' schemas.yaml\n")
	}

	return fs, flags
}

// HandleSynthesize implements the synthesize command.
func HandleSynthesize(args []string) error {
	fs, flags := setupSynthesizeFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("synthesize command requires exactly one definitions file")
	}
	if err := ValidateDocumentFormat(flags.format); err != nil {
		return err
	}
	mode, err := ParseMode(flags.mode)
	if err != nil {
		return err
	}

	file, err := LoadDefinitions(fs.Arg(0))
	if err != nil {
		return err
	}
	doc, err := BuildDocument(file,
		document.WithTitle(flags.title),
		document.WithVersion(flags.apiVersion),
		document.WithMode(mode),
	)
	if err != nil {
		return err
	}

	var data []byte
	if flags.format == FormatYAML {
		data, err = doc.YAML()
	} else {
		data, err = doc.JSON()
	}
	if err != nil {
		return err
	}
	if err := WriteOutput(flags.output, data); err != nil {
		return err
	}

	if !flags.quiet && len(doc.Effects) > 0 {
		fmt.Fprintf(os.Stderr, "Note: %d divergence point(s) between input and output mode; this document is valid for %s mode only. Run 'zod-openapi effects' for details.\n",
			len(doc.Effects), mode)
	}
	if !flags.quiet && len(doc.Unresolved) > 0 {
		fmt.Fprintf(os.Stderr, "Warning: unresolved component references: %v\n", doc.Unresolved)
	}
	return nil
}
