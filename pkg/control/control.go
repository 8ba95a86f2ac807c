// Package control builds and wraps ngspice control sections. A control
// section carries the simulation commands and output handling that run
// against a circuit; it is kept independent of the circuit netlist so the
// same circuit can be swept under different control setups.
package control

import (
	"fmt"
	"strings"

	"github.com/christoph-weiser/ngsim/pkg/netlist"
	"github.com/christoph-weiser/ngsim/pkg/sim"
)

// Section is anything that can render itself as control-section netlist text.
type Section interface {
	Netlist() string
}

// External is a control section taken verbatim from a file or string, passed
// through the same normalization as circuit netlists.
type External struct {
	text string
}

// FromFile reads and normalizes a control section from a file.
func FromFile(path string) (*External, error) {
	text, err := netlist.ReadNetlist(path)
	if err != nil {
		return nil, err
	}
	return &External{text: text}, nil
}

// FromString normalizes a control section given as text.
func FromString(text string) *External {
	return &External{text: netlist.Clean(text)}
}

// Netlist returns the normalized control-section text.
func (e *External) Netlist() string { return e.text }

// Option is a key/value simulator setting; an empty value emits the bare key.
type Option struct {
	Key   string
	Value string
}

func (o Option) String() string {
	if o.Value == "" {
		return o.Key
	}
	return o.Key + "=" + o.Value
}

// Logical assembles a control section from its parts: simulator settings,
// signals to save, one block per simulation and the trailing options and
// includes.
type Logical struct {
	Simulations []*sim.Simulation
	Includes    []string
	// SweepNum tags output files when the section is part of a sweep;
	// zero means no sweep.
	SweepNum   int
	SimOptions []Option
	NgOptions  []Option
	Save       []string
	OutputFile string
	OutputDir  string
	// FileType selects ascii or binary output data.
	FileType      string
	WrSingleScale bool
	WrVecnames    bool
	ExitPostRun   bool
}

// NewLogical creates a control section with the usual defaults: ascii output
// to output.csv in the working directory, all signals saved, single scale
// and named vector columns, exiting ngspice after the run.
func NewLogical(simulations ...*sim.Simulation) *Logical {
	return &Logical{
		Simulations:   simulations,
		Save:          []string{"all"},
		OutputFile:    "output.csv",
		OutputDir:     ".",
		FileType:      "ascii",
		WrSingleScale: true,
		WrVecnames:    true,
		ExitPostRun:   true,
	}
}

// Netlist assembles the control section.
func (l *Logical) Netlist() string {
	lines := []string{"", "* Control section", "", ".control"}
	app := func(s string) { lines = append(lines, s) }

	app("set filetype=" + l.FileType)
	if l.WrSingleScale {
		app("set wr_singlescale")
	}
	if l.WrVecnames {
		app("set wr_vecnames")
	}
	for _, opt := range l.NgOptions {
		app("set " + opt.String())
	}
	// hspice compatibility mode.
	app("set ngbehavior=hsa")
	for _, sig := range l.Save {
		app("save " + sig)
	}

	for _, s := range l.Simulations {
		app(s.Cmd)
		app(fmt.Sprintf("echo --- start %s ---", s.Identifier))
		for _, p := range s.Prints {
			app("print " + p)
		}
		for _, p := range s.Plots {
			app("plot " + p)
		}
		if len(s.Outputs) > 0 {
			dir := l.OutputDir
			if s.Location != "" {
				dir = s.Location
			}
			name := l.OutputFile
			if s.Name != "" {
				name = s.Name
			}
			id := strings.ToLower(s.Identifier)
			if l.SweepNum > 0 {
				app(fmt.Sprintf("wrdata %s/%s_%d_%s %s", dir, id, l.SweepNum, name, strings.Join(s.Outputs, " ")))
			} else {
				app(fmt.Sprintf("wrdata %s/%s_%s %s", dir, id, name, strings.Join(s.Outputs, " ")))
			}
		}
		for _, m := range s.Measure {
			app(m)
		}
		app(fmt.Sprintf("echo --- end %s ---", s.Identifier))
	}

	if l.ExitPostRun {
		app("exit")
	}
	app(".endc")
	for _, opt := range l.SimOptions {
		app(".option " + opt.String())
	}
	for _, lib := range l.Includes {
		app(fmt.Sprintf(".include %q", lib))
	}
	app(".end")

	return strings.Join(lines, "\n") + "\n"
}

// WriteSimNetlist combines a circuit and a control section into one
// simulation-ready netlist file.
func WriteSimNetlist(cir *netlist.CircuitSection, ctl Section, path string) error {
	return netlist.WriteNetlist(cir.Netlist()+ctl.Netlist(), path)
}
