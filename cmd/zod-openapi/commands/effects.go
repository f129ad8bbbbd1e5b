package commands

import (
	"flag"
	"fmt"
	"strings"

	"github.com/pmsfc/zod-openapi/document"
)

// effectsFlags contains flags for the effects command
type effectsFlags struct {
	format string
	mode   string
}

func setupEffectsFlags() (*flag.FlagSet, *effectsFlags) {
	fs := flag.NewFlagSet("effects", flag.ContinueOnError)
	flags := &effectsFlags{}

	fs.StringVar(&flags.format, "format", FormatText, "output format: text, json, or yaml")
	fs.StringVar(&flags.mode, "mode", "output", "synthesis mode to analyze: input or output")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: zod-openapi effects [flags] <definitions-file>\n\n")
		_, _ = fmt.Fprintf(output, "Report where the input and output interpretations of the definitions diverge.\n")
		_, _ = fmt.Fprintf(output, "Each effect names the path of a default or transform; no effects means one\n")
		_, _ = fmt.Fprintf(output, "document serves both directions.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  zod-openapi effects schemas.yaml\n")
		_, _ = fmt.Fprintf(output, "  zod-openapi effects -mode input -format json schemas.yaml\n")
	}

	return fs, flags
}

// effectReport is the structured output of the effects command.
type effectReport struct {
	Mode        string             `json:"mode" yaml:"mode"`
	ModesAgree  bool               `json:"modes_agree" yaml:"modes_agree"`
	EffectCount int                `json:"effect_count" yaml:"effect_count"`
	Effects     []effectReportItem `json:"effects,omitempty" yaml:"effects,omitempty"`
}

type effectReportItem struct {
	Kind      string   `json:"kind" yaml:"kind"`
	Direction string   `json:"direction" yaml:"direction"`
	Path      []string `json:"path,omitempty" yaml:"path,omitempty,flow"`
	Component string   `json:"component,omitempty" yaml:"component,omitempty"`
}

// HandleEffects implements the effects command.
func HandleEffects(args []string) error {
	fs, flags := setupEffectsFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("effects command requires exactly one definitions file")
	}
	if flags.format != FormatText && flags.format != FormatJSON && flags.format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", flags.format, FormatText, FormatJSON, FormatYAML)
	}
	mode, err := ParseMode(flags.mode)
	if err != nil {
		return err
	}

	file, err := LoadDefinitions(fs.Arg(0))
	if err != nil {
		return err
	}
	doc, err := BuildDocument(file, document.WithMode(mode))
	if err != nil {
		return err
	}

	report := effectReport{
		Mode:        mode.String(),
		ModesAgree:  len(doc.Effects) == 0,
		EffectCount: len(doc.Effects),
	}
	for _, fx := range doc.Effects {
		report.Effects = append(report.Effects, effectReportItem{
			Kind:      fx.Kind.String(),
			Direction: fx.Direction.String(),
			Path:      fx.Path,
			Component: fx.Component,
		})
	}

	if flags.format != FormatText {
		return OutputStructured(report, flags.format)
	}

	if report.ModesAgree {
		fmt.Printf("No divergence points: input and output mode produce the same document.\n")
		return nil
	}
	fmt.Printf("%d divergence point(s) in %s mode:\n", report.EffectCount, report.Mode)
	for _, item := range report.Effects {
		location := "<root>"
		if len(item.Path) > 0 {
			location = strings.Join(item.Path, " > ")
		}
		if item.Component != "" {
			fmt.Printf("  - [%s] %s (component %s)\n", item.Kind, location, item.Component)
		} else {
			fmt.Printf("  - [%s] %s\n", item.Kind, location)
		}
	}
	return nil
}
