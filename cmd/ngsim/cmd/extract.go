package cmd

import (
	"fmt"
	"os"

	"github.com/christoph-weiser/ngsim/pkg/xschem"
	"github.com/spf13/cobra"
)

var (
	extractControl bool
	extractPlots   bool
)

var extractCmd = &cobra.Command{
	Use:   "extract <netlist>",
	Short: "Split an xschem-exported netlist into circuit and control parts",
	Long: `Extract either the circuit elements or the .control section from a
netlist exported by xschem.

Examples:
  ngsim extract exported.sp
  ngsim extract --control exported.sp`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().BoolVarP(&extractControl, "control", "c", false,
		"extract the control section instead of the circuit")
	extractCmd.Flags().BoolVar(&extractPlots, "plots", false,
		"keep plot statements when extracting the control section")
}

func runExtract(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	if extractControl {
		fmt.Println(xschem.ExtractControl(string(data), !extractPlots))
		return nil
	}
	fmt.Println(xschem.ExtractCircuit(string(data)))
	return nil
}
