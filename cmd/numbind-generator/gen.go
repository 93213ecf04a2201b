package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"numbind-generator/catalog"
	"numbind-generator/internal/analyze"
	"numbind-generator/internal/gen"
)

type genOptions struct {
	Package string   `mapstructure:"package"`
	Type    string   `mapstructure:"type"`
	Subset  string   `mapstructure:"subset"`
	Tokens  []string `mapstructure:"tokens"`
	Prefix  string   `mapstructure:"prefix"`
	Output  string   `mapstructure:"output"`
	Dir     string   `mapstructure:"dir"`
	NoNum   bool     `mapstructure:"no-num"`
}

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "generate a token file for a named numeric type",
	RunE:  runGen,
}

func init() {
	flags := genCmd.Flags()
	flags.String("package", ".", "package pattern containing the target type")
	flags.String("type", "", "target type name")
	flags.String("subset", "all", "comma-separated catalog subsets: literal, constant, special, all")
	flags.StringSlice("tokens", nil, "individual catalog tokens to generate instead of whole subsets")
	flags.String("prefix", "", "prefix for generated token function names")
	flags.String("output", "", "output file name (default <type>_tokens.go)")
	flags.String("dir", ".", "output directory")
	flags.Bool("no-num", false, "skip the num() conversion helper")

	_ = genCmd.MarkFlagRequired("type")
}

func runGen(cmd *cobra.Command, _ []string) error {
	var opts genOptions
	if err := decodeOpts(cmd, &opts); err != nil {
		return err
	}

	cfg := gen.DefaultGeneratorConfig()
	cfg.Prefix = opts.Prefix
	cfg.Filename = opts.Output
	cfg.Tokens = opts.Tokens
	cfg.WithNum = !opts.NoNum

	if len(opts.Tokens) == 0 {
		subset, err := catalog.ParseSubset(opts.Subset)
		if err != nil {
			return err
		}
		cfg.Subset = subset
	}

	target, err := analyze.NewResolver("").Resolve(opts.Package, opts.Type)
	if err != nil {
		return err
	}

	file, diags, err := gen.NewGenerator(cfg).Generate(target)
	printDiags(diags)
	if err != nil {
		return err
	}

	if err := gen.WriteFile(file, opts.Dir); err != nil {
		return err
	}

	fmt.Println("wrote", filepath.Join(opts.Dir, file.Filename))
	return nil
}
