package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"

	"numbind-generator/catalog"
	"numbind-generator/internal/analyze"
	"numbind-generator/internal/diagnostic"
	"numbind-generator/numeric"
)

// GeneratorConfig holds configuration for token generation.
type GeneratorConfig struct {
	// PackageName is the package clause of the generated file.
	// Empty means the target's own package name.
	PackageName string
	// Filename is the name of the generated file.
	// Empty means "<type>_tokens.go" in lower case.
	Filename string
	// Subset selects which catalog subsets to generate.
	Subset catalog.SubsetEnum
	// Tokens, when non-empty, selects individual catalog entries by name
	// instead of whole subsets.
	Tokens []string
	// Prefix is prepended to every generated token function name.
	Prefix string
	// WithNum also emits the num() conversion helper.
	WithNum bool
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Subset:  catalog.SubsetAll,
		WithNum: true,
	}
}

// Generator emits token functions for one binding target.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "celsius_tokens.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Generate validates the selected catalog entries against the target's
// kind and emits one formatted file of token functions. Validation
// failures abort generation: an unrepresentable entry must surface here,
// at definition time, not as a truncated value at run time.
func (g *Generator) Generate(target *analyze.BindingTarget) (*GeneratedFile, diagnostic.Diagnostics, error) {
	var diags diagnostic.Diagnostics

	entries := g.selectEntries(target, &diags)
	for _, e := range entries {
		if numeric.Representable(target.Kind, e) {
			continue
		}

		diags.AddError(diagnostic.CodeUnsupportedConversion,
			fmt.Sprintf("%s cannot represent %s (%s)", target.Kind, e.Name, e.Doc),
			target.ID.String(), e.Name)
	}

	if diags.HasErrors() {
		return nil, diags, diags.Error()
	}

	if g.config.WithNum && target.Kind.IsInteger() {
		diags.AddWarning(diagnostic.CodeRuntimeCheck,
			"num() for an integer type defers the conversion check to the call site",
			target.ID.String(), g.config.Prefix+"num")
	}

	data := g.buildTemplateData(target, entries)

	var buf bytes.Buffer
	if err := tokenFileTemplate.Execute(&buf, data); err != nil {
		return nil, diags, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, diags, fmt.Errorf("formatting generated code: %w", err)
	}

	return &GeneratedFile{
		Filename: g.filename(target),
		Content:  formatted,
	}, diags, nil
}

// selectEntries resolves the configured token selection to catalog entries.
func (g *Generator) selectEntries(target *analyze.BindingTarget, diags *diagnostic.Diagnostics) []catalog.Entry {
	if len(g.config.Tokens) == 0 {
		return catalog.Entries(g.config.Subset)
	}

	var entries []catalog.Entry
	for _, name := range g.config.Tokens {
		entry, ok := catalog.Lookup(name)
		if !ok {
			diags.AddError(diagnostic.CodeUnknownToken,
				fmt.Sprintf("%q is not a catalog token", name),
				target.ID.String(), name)
			continue
		}

		entries = append(entries, entry)
	}

	return entries
}

// filename returns the configured or derived output file name.
func (g *Generator) filename(target *analyze.BindingTarget) string {
	if g.config.Filename != "" {
		return g.config.Filename
	}

	return strings.ToLower(target.ID.Name) + "_tokens.go"
}
