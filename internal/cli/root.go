// Package cli implements the adcheck command line for offline comparison
// runs: a fleet CSV and a manifest of extracted directives in, a results
// table out.
package cli

import (
	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
}

// NewRootCommand creates the root command for the adcheck CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "adcheck",
		Short: "Airworthiness directive applicability checks",
		Long:  "Check which aircraft of a fleet are affected by extracted airworthiness directives.",
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(NewCompareCommand(opts))

	return cmd
}
