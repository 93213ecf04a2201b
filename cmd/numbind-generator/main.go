// Package main provides the CLI entrypoint for numbind-generator.
//
// numbind-generator emits zero-argument numeric token functions bound to a
// named Go type, driven by the fixed literal catalog:
//   - gen: resolve a type and write its token file
//   - check: validate a type against the catalog without writing
//   - list: print the catalog exhaustively
package main

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"numbind-generator/internal/diagnostic"
)

var rootCmd = &cobra.Command{
	Use:           "numbind-generator",
	Short:         "generate typed numeric literal tokens from the fixed catalog",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(loadConfig)
	rootCmd.AddCommand(genCmd, checkCmd, listCmd)
}

// loadConfig merges an optional .numbind.yaml from the working directory.
// Explicitly set flags still win over config values.
func loadConfig() {
	viper.SetConfigName(".numbind")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	_ = viper.ReadInConfig() // a missing config file is fine
}

// decodeOpts binds the command's flags into viper and decodes the merged
// settings into out.
func decodeOpts(cmd *cobra.Command, out any) error {
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}

	return mapstructure.WeakDecode(viper.AllSettings(), out)
}

// printDiags reports warnings and errors on stderr.
func printDiags(diags diagnostic.Diagnostics) {
	for _, d := range diags.Warnings {
		fmt.Fprintf(os.Stderr, "%s: %s\n", d.Severity, d)
	}

	for _, d := range diags.Errors {
		fmt.Fprintf(os.Stderr, "%s: %s\n", d.Severity, d)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
