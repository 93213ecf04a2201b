package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"numbind-generator/catalog"
)

type listOptions struct {
	Subset string `mapstructure:"subset"`
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "print the token catalog",
	RunE:  runList,
}

func init() {
	listCmd.Flags().String("subset", "all", "comma-separated catalog subsets: literal, constant, special, all")
}

func runList(cmd *cobra.Command, _ []string) error {
	var opts listOptions
	if err := decodeOpts(cmd, &opts); err != nil {
		return err
	}

	subset, err := catalog.ParseSubset(opts.Subset)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, e := range catalog.Entries(subset) {
		fmt.Fprintf(w, "%s\t%s\t%s\n", e.Name, e.Subset, e.Doc)
	}

	return w.Flush()
}
