package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "ngsim",
	Short: "Spice netlist parser and manipulation tool",
	Long: `ngsim parses spice netlists into a structured circuit model,
filters and rewrites circuit elements, and regenerates simulation-ready
netlist text.

Examples:
  ngsim parse amplifier.sp                     # Show the parsed circuit model
  ngsim clean amplifier.sp                     # Normalize a netlist
  ngsim filter amplifier.sp instance=xr.*      # Find matching elements
  ngsim alter amplifier.sp -f instance=vdd --args 1.8`,
	Version: "1.0.0",
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
