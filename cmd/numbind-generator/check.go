package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"numbind-generator/catalog"
	"numbind-generator/internal/analyze"
	"numbind-generator/internal/common"
	"numbind-generator/internal/diagnostic"
	"numbind-generator/numeric"
)

type checkOptions struct {
	Package string `mapstructure:"package"`
	Type    string `mapstructure:"type"`
	Subset  string `mapstructure:"subset"`
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "check which catalog tokens a type can bind",
	RunE:  runCheck,
}

func init() {
	flags := checkCmd.Flags()
	flags.String("package", ".", "package pattern containing the target type")
	flags.String("type", "", "target type name")
	flags.String("subset", "all", "comma-separated catalog subsets: literal, constant, special, all")

	_ = checkCmd.MarkFlagRequired("type")
}

func runCheck(cmd *cobra.Command, _ []string) error {
	var opts checkOptions
	if err := decodeOpts(cmd, &opts); err != nil {
		return err
	}

	subset, err := catalog.ParseSubset(opts.Subset)
	if err != nil {
		return err
	}

	target, err := analyze.NewResolver("").Resolve(opts.Package, opts.Type)
	if err != nil {
		return err
	}

	display := common.PkgAlias(target.ID.PkgPath) + "." + target.ID.Name
	entries := catalog.Entries(subset)

	var diags diagnostic.Diagnostics
	bindable := 0
	for _, e := range entries {
		if numeric.Representable(target.Kind, e) {
			bindable++
			continue
		}

		diags.AddError(diagnostic.CodeUnsupportedConversion,
			fmt.Sprintf("%s cannot represent %s (%s)", target.Kind, e.Name, e.Doc),
			display, e.Name)
	}

	fmt.Printf("%s (%s): %d of %d tokens bindable\n", display, target.Kind, bindable, len(entries))
	printDiags(diags)

	return diags.Error()
}
