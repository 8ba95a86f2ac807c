package cmd

import (
	"fmt"

	"github.com/christoph-weiser/ngsim/pkg/netlist"
	"github.com/spf13/cobra"
)

var cleanOutput string

var cleanCmd = &cobra.Command{
	Use:   "clean <netlist>",
	Short: "Normalize a netlist",
	Long: `Normalize a spice netlist: merge continuation lines, strip comments,
unify whitespace and case. The result is printed to stdout unless -o is
given.

Examples:
  ngsim clean amplifier.sp
  ngsim clean -o amplifier.norm.sp amplifier.sp`,
	Args: cobra.ExactArgs(1),
	RunE: runClean,
}

func init() {
	rootCmd.AddCommand(cleanCmd)

	cleanCmd.Flags().StringVarP(&cleanOutput, "output", "o", "",
		"write the normalized netlist to a file")
}

func runClean(cmd *cobra.Command, args []string) error {
	text, err := netlist.ReadNetlist(args[0])
	if err != nil {
		return err
	}
	if cleanOutput != "" {
		if err := netlist.WriteNetlist(text, cleanOutput); err != nil {
			return err
		}
		if verbose {
			fmt.Printf("Wrote normalized netlist to %s\n", cleanOutput)
		}
		return nil
	}
	fmt.Println(text)
	return nil
}
