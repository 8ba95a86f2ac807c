package netlist

import (
	"strings"
)

// Netlist regenerates simulation-ready netlist text from the live circuit.
// Elements are rendered in insertion order, each as instance, port nodes and
// args. A blank line follows every subcircuit terminator for readability, and
// the first line names the source the circuit was built from.
func (c *CircuitSection) Netlist() string {
	var b strings.Builder
	b.WriteString("* " + c.Filename + "\n\n")
	for _, uid := range c.circuit.order {
		el := c.circuit.elems[uid]
		b.WriteString(el.String())
		b.WriteByte('\n')
		if el.Instance == ".ends" {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
