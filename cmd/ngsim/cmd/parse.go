package cmd

import (
	"fmt"

	"github.com/christoph-weiser/ngsim/pkg/netlist"
	"github.com/spf13/cobra"
)

var showUIDs bool

var parseCmd = &cobra.Command{
	Use:   "parse <netlist>",
	Short: "Parse a netlist and display the circuit model",
	Long: `Parse a spice netlist into the circuit model and display every element
with its type, hierarchy location, port connections and arguments.

Examples:
  ngsim parse amplifier.sp
  ngsim parse --uids amplifier.sp`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().BoolVarP(&showUIDs, "uids", "u", false,
		"show element identifiers")
}

func runParse(cmd *cobra.Command, args []string) error {
	filename := args[0]

	if verbose {
		fmt.Printf("Parsing netlist: %s\n\n", filename)
	}

	cir, err := netlist.FromFile(filename)
	if err != nil {
		return fmt.Errorf("failed to parse netlist: %w", err)
	}

	fmt.Printf("Circuit: %s (%d elements)\n\n", filename, cir.Len())
	fmt.Printf("%-12s %-28s %-16s %-24s %s\n", "INSTANCE", "TYPE", "LOCATION", "PORTS", "ARGS")
	for _, uid := range cir.UIDs() {
		el, err := cir.Get(uid)
		if err != nil {
			return err
		}
		ports := el.Ports.String()
		args := ""
		if len(el.Args) > 0 {
			args = fmt.Sprintf("%v", el.Args)
		}
		fmt.Printf("%-12s %-28s %-16s %-24s %s\n", el.Instance, el.Type, el.Location, ports, args)
		if showUIDs {
			fmt.Printf("             uid=%s\n", uid)
		}
	}
	return nil
}
