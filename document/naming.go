package document

import (
	"fmt"
	"strings"
	"text/template"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NamingStrategy selects how component names are normalized before
// registration. The zero value leaves names untouched.
type NamingStrategy int

const (
	// NamingAsIs registers component names exactly as given.
	NamingAsIs NamingStrategy = iota
	// NamingPascalCase normalizes names to PascalCase.
	NamingPascalCase
	// NamingCamelCase normalizes names to camelCase.
	NamingCamelCase
	// NamingSnakeCase normalizes names to snake_case.
	NamingSnakeCase
	// NamingKebabCase normalizes names to kebab-case.
	NamingKebabCase
)

// String returns the name of the strategy.
func (s NamingStrategy) String() string {
	switch s {
	case NamingAsIs:
		return "as-is"
	case NamingPascalCase:
		return "PascalCase"
	case NamingCamelCase:
		return "camelCase"
	case NamingSnakeCase:
		return "snake_case"
	case NamingKebabCase:
		return "kebab-case"
	default:
		return fmt.Sprintf("NamingStrategy(%d)", int(s))
	}
}

// Apply normalizes name according to the strategy.
func (s NamingStrategy) Apply(name string) string {
	switch s {
	case NamingPascalCase:
		return toPascalCase(name)
	case NamingCamelCase:
		return toCamelCase(name)
	case NamingSnakeCase:
		return toSnakeCase(name)
	case NamingKebabCase:
		return toKebabCase(name)
	default:
		return name
	}
}

var titleCaser = cases.Title(language.English)

// namingFuncs are available inside name templates registered with
// WithNameTemplate.
var namingFuncs = template.FuncMap{
	"pascal": toPascalCase,
	"camel":  toCamelCase,
	"snake":  toSnakeCase,
	"kebab":  toKebabCase,
	"title":  titleCaser.String,
	"upper":  strings.ToUpper,
	"lower":  strings.ToLower,
}

// nameContext is the data passed to a name template.
type nameContext struct {
	// Name is the component name as supplied to AddSchema, or the node's
	// own reference name.
	Name string
	// Index is the zero-based position of the schema within the builder.
	Index int
}

func toPascalCase(s string) string {
	if s == "" {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	capitalizeNext := true
	for _, r := range s {
		switch r {
		case '_', '-', '.', '/', ' ':
			capitalizeNext = true
		default:
			if capitalizeNext {
				b.WriteRune(unicode.ToUpper(r))
				capitalizeNext = false
			} else {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}

func toCamelCase(s string) string {
	p := toPascalCase(s)
	if p == "" {
		return p
	}
	runes := []rune(p)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

func toSnakeCase(s string) string {
	return toSeparated(s, '_')
}

func toKebabCase(s string) string {
	return toSeparated(s, '-')
}

func toSeparated(s string, sep rune) string {
	if s == "" {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + len(s)/2)
	prevLower := false
	for _, r := range s {
		switch {
		case r == '_' || r == '-' || r == '.' || r == '/' || r == ' ':
			if b.Len() > 0 {
				b.WriteRune(sep)
			}
			prevLower = false
		case unicode.IsUpper(r):
			if prevLower {
				b.WriteRune(sep)
			}
			b.WriteRune(unicode.ToLower(r))
			prevLower = false
		default:
			b.WriteRune(r)
			prevLower = true
		}
	}
	return b.String()
}
