// Package xschem drives schematic-to-netlist export through the xschem CAD
// tool and slices the exported netlists into their circuit and control parts.
package xschem

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

// Markers xschem wraps around user architecture code in exported netlists.
const (
	beginUserCode = "**** begin user architecture code"
	endUserCode   = "**** end user architecture code"
)

// Export runs xschem headless to generate a spice netlist from a schematic.
// rcFile points at the xschemrc of the design; the command runs from its
// directory so relative library paths resolve.
func Export(ctx context.Context, schematic, outputDir, rcFile string) error {
	cmd := exec.CommandContext(ctx, "xschem", "-x", "-n", "-q", schematic,
		"-o", outputDir,
		"--tcl", "set cmdline_ignore true; set dummy_ignore true",
		"--rcfile", rcFile)
	cmd.Dir = filepath.Dir(rcFile)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("xschem export of %s: %w: %s", schematic, err, strings.TrimSpace(string(out)))
	}
	return nil
}

// ExtractCircuit returns the circuit part of an xschem-exported netlist,
// discarding the user architecture code blocks that carry simulator control
// statements.
func ExtractCircuit(text string) string {
	insideUserCode := false
	var kept []string
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, beginUserCode) {
			insideUserCode = true
		}
		if !insideUserCode {
			kept = append(kept, line)
		}
		if strings.HasPrefix(line, endUserCode) {
			insideUserCode = false
		}
	}
	return strings.Join(kept, "\n")
}

// ExtractControl returns the .control/.endc block of an xschem-exported
// netlist. Plot statements are dropped when skipPlots is set, since they
// would open windows during batch runs.
func ExtractControl(text string, skipPlots bool) string {
	insideControl := false
	var kept []string
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, ".control") {
			insideControl = true
		}
		if insideControl {
			if !(skipPlots && strings.HasPrefix(line, "plot")) {
				kept = append(kept, line)
			}
		}
		if strings.HasPrefix(line, ".endc") {
			insideControl = false
		}
	}
	return strings.Join(kept, "\n")
}
