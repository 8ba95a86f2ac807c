package cmd

import (
	"fmt"
	"strings"

	"github.com/christoph-weiser/ngsim/pkg/netlist"
	"github.com/spf13/cobra"
)

var filterCmd = &cobra.Command{
	Use:   "filter <netlist> <field=pattern>...",
	Short: "Find circuit elements matching regex criteria",
	Long: `Filter the circuit model by one or more field=pattern criteria.
Criteria are combined with logical AND. Valid fields are instance, type,
ports and location; patterns are full-match regular expressions.

Examples:
  ngsim filter amplifier.sp instance=xr.*
  ngsim filter amplifier.sp type=mosfet location=root/ota`,
	Args: cobra.MinimumNArgs(2),
	RunE: runFilter,
}

func init() {
	rootCmd.AddCommand(filterCmd)
}

// parseCriteria converts field=pattern arguments into filter criteria.
func parseCriteria(args []string) ([]netlist.Criterion, error) {
	criteria := make([]netlist.Criterion, 0, len(args))
	for _, arg := range args {
		field, pattern, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, fmt.Errorf("criterion %q is not of the form field=pattern", arg)
		}
		criteria = append(criteria, netlist.C(field, pattern))
	}
	return criteria, nil
}

func runFilter(cmd *cobra.Command, args []string) error {
	cir, err := netlist.FromFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to parse netlist: %w", err)
	}
	criteria, err := parseCriteria(args[1:])
	if err != nil {
		return err
	}

	uids, err := cir.Filter(criteria...)
	if err != nil {
		return err
	}
	if verbose {
		fmt.Printf("%d of %d elements match\n\n", len(uids), cir.Len())
	}
	for _, uid := range uids {
		el, err := cir.Get(uid)
		if err != nil {
			return err
		}
		fmt.Println(el.String())
	}
	return nil
}
