package cmd

import (
	"fmt"
	"strings"

	"github.com/christoph-weiser/ngsim/pkg/netlist"
	"github.com/spf13/cobra"
)

var (
	alterFilters []string
	alterArgs    string
	alterSet     []string
	alterOutput  string
)

var alterCmd = &cobra.Command{
	Use:   "alter <netlist>",
	Short: "Rewrite matching circuit elements and regenerate the netlist",
	Long: `Alter elements selected by -f criteria: overwrite their argument list
with --args, or replace individual key=value arguments with --set. The
regenerated netlist is printed to stdout unless -o is given.

Examples:
  ngsim alter amplifier.sp -f instance=vdd --args 1.8
  ngsim alter amplifier.sp -f instance=xr.* --set w=2u --set l=180n`,
	Args: cobra.ExactArgs(1),
	RunE: runAlter,
}

func init() {
	rootCmd.AddCommand(alterCmd)

	alterCmd.Flags().StringArrayVarP(&alterFilters, "filter", "f", nil,
		"field=pattern criterion, repeatable, combined with AND")
	alterCmd.Flags().StringVar(&alterArgs, "args", "",
		"overwrite the argument list of matched elements")
	alterCmd.Flags().StringArrayVar(&alterSet, "set", nil,
		"replace a key=value argument of matched elements, repeatable")
	alterCmd.Flags().StringVarP(&alterOutput, "output", "o", "",
		"write the altered netlist to a file")
	alterCmd.MarkFlagRequired("filter")
}

func runAlter(cmd *cobra.Command, args []string) error {
	cir, err := netlist.FromFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to parse netlist: %w", err)
	}
	criteria, err := parseCriteria(alterFilters)
	if err != nil {
		return err
	}

	n := 0
	if alterArgs != "" {
		newArgs := strings.Fields(alterArgs)
		n, err = cir.Apply(func(el *netlist.Element) {
			el.Args = newArgs
		}, criteria...)
		if err != nil {
			return err
		}
	}

	if len(alterSet) > 0 {
		uids, err := cir.Filter(criteria...)
		if err != nil {
			return err
		}
		for _, set := range alterSet {
			key, value, ok := strings.Cut(set, "=")
			if !ok {
				return fmt.Errorf("--set %q is not of the form key=value", set)
			}
			for _, uid := range uids {
				if err := cir.ReplaceArgument(uid, key, value); err != nil {
					return err
				}
			}
		}
		n = len(uids)
	}

	if verbose {
		fmt.Printf("Altered %d element(s)\n", n)
	}
	if alterOutput != "" {
		return cir.Write(alterOutput)
	}
	fmt.Print(cir.Netlist())
	return nil
}
