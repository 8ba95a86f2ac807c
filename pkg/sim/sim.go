// Package sim builds ngspice analysis commands and bundles them with their
// output handling for use in a control section.
package sim

import (
	"fmt"
	"strings"
)

// Simulation couples an ngspice analysis command with the print, plot,
// measure and output statements that belong to it. Identifier is the
// uppercased analysis name and prefixes output files and echo markers.
type Simulation struct {
	Cmd        string
	Prints     []string
	Outputs    []string
	Measure    []string
	Plots      []string
	Location   string
	Name       string
	Identifier string
}

// New creates a simulation from an analysis command, deriving the identifier
// from its first word.
func New(cmd string) *Simulation {
	first, _, _ := strings.Cut(cmd, " ")
	return &Simulation{
		Cmd:        cmd,
		Identifier: strings.ToUpper(first),
	}
}

// Tran builds a transient analysis command. tstart, tmax and uic are
// optional; empty strings and false leave them out.
func Tran(tstep, tstop, tstart, tmax string, uic bool) string {
	cmd := fmt.Sprintf("tran %s %s", tstep, tstop)
	if tstart != "" {
		cmd += " tstart=" + tstart
	}
	if tmax != "" {
		cmd += " tmax=" + tmax
	}
	if uic {
		cmd += " uic"
	}
	return cmd
}

// DC builds a DC sweep command over the named source.
func DC(srcname, vstart, vstop, vincrement string) string {
	return fmt.Sprintf("dc %s %s %s %s", srcname, vstart, vstop, vincrement)
}

// AC builds an AC analysis command. method is one of dec, oct or lin; pts is
// the number of points per method unit.
func AC(method string, pts int, fmin, fmax string) string {
	return fmt.Sprintf("ac %s %d %s %s", method, pts, fmin, fmax)
}

// TF builds a transfer-function analysis command.
func TF(outvar, insrc string) string {
	return fmt.Sprintf("tf %s %s", outvar, strings.ToLower(insrc))
}

// PZ builds a pole-zero analysis command. stype is the signal type (vol or
// cur); otype selects poles, zeros or both (pol, zer, pz).
func PZ(vinp, vinn, voutp, voutn, stype, otype string) string {
	return fmt.Sprintf("pz %s %s %s %s %s %s", vinp, vinn, voutp, voutn, stype, otype)
}

// Noise builds a noise analysis command for a single output node.
func Noise(vout, src, method string, pts int, fstart, fstop string, ptsSum int) string {
	return fmt.Sprintf("noise v(%s) %s %s %d %s %s %d", vout, src, method, pts, fstart, fstop, ptsSum)
}

// NoiseDiff builds a noise analysis command for a differential output.
func NoiseDiff(voutp, voutn, src, method string, pts int, fstart, fstop string, ptsSum int) string {
	return fmt.Sprintf("noise v(%s,%s) %s %s %d %s %s %d", voutp, voutn, src, method, pts, fstart, fstop, ptsSum)
}
