package netlist

import (
	"strings"
)

// Port is a single connection terminal of an element: a canonical role name
// (e.g. "n+") bound to the node it connects to.
type Port struct {
	Name string
	Node string
}

// Ports is the ordered port list of an element. Order matches the role order
// declared in the element type table and is preserved through serialization.
type Ports []Port

// Get returns the node connected to the named port.
func (p Ports) Get(name string) (string, bool) {
	for _, port := range p {
		if port.Name == name {
			return port.Node, true
		}
	}
	return "", false
}

// Set rebinds the named port to a new node. It reports whether the port exists.
func (p Ports) Set(name, node string) bool {
	for i, port := range p {
		if port.Name == name {
			p[i].Node = node
			return true
		}
	}
	return false
}

// Nodes returns the connected nodes in port order.
func (p Ports) Nodes() []string {
	nodes := make([]string, len(p))
	for i, port := range p {
		nodes[i] = port.Node
	}
	return nodes
}

// String returns the space-joined node values, the form used both by the
// serializer and as the match target for port filtering.
func (p Ports) String() string {
	return strings.Join(p.Nodes(), " ")
}

// Clone returns an independent copy of the port list.
func (p Ports) Clone() Ports {
	if p == nil {
		return nil
	}
	c := make(Ports, len(p))
	copy(c, p)
	return c
}

// Element is one parsed netlist statement: a component instance, a directive
// or a structural marker such as a subcircuit boundary.
type Element struct {
	// Instance is the leading token, e.g. "r1" or ".param".
	Instance string
	// Type is the category resolved from the element type table.
	Type string
	// Ports holds the fixed terminals for the category; empty for
	// directives, subcircuit instances and multi-terminal devices.
	Ports Ports
	// Location is the slash-joined subcircuit hierarchy path, rooted at
	// "root".
	Location string
	// Args are the tokens remaining after the ports, kept verbatim.
	Args []string
}

// Clone returns a deep copy of the element.
func (e *Element) Clone() *Element {
	c := &Element{
		Instance: e.Instance,
		Type:     e.Type,
		Ports:    e.Ports.Clone(),
		Location: e.Location,
	}
	if e.Args != nil {
		c.Args = make([]string, len(e.Args))
		copy(c.Args, e.Args)
	}
	return c
}

// String renders the element back into netlist form: instance, port nodes,
// then args, space-joined.
func (e *Element) String() string {
	s := e.Instance
	if ports := e.Ports.String(); ports != "" {
		s += " " + ports
	}
	if len(e.Args) > 0 {
		s += " " + strings.Join(e.Args, " ")
	}
	return strings.TrimRight(s, " ")
}

// field returns the element attribute used as a match target. Args is a token
// list, not a single string, and is deliberately not matchable.
func (e *Element) field(name string) (string, error) {
	switch name {
	case "instance":
		return e.Instance, nil
	case "type":
		return e.Type, nil
	case "ports":
		return e.Ports.String(), nil
	case "location":
		return e.Location, nil
	default:
		return "", &FieldError{Field: name}
	}
}

// elementType describes one entry of the element type table: the category
// name and the ordered port roles. An empty role list means everything after
// the instance name is args.
type elementType struct {
	name  string
	ports []string
}

// elementTypes maps the one or two leading characters of an instance token to
// its category. Two-letter prefixes distinguish xschem-style subcircuit
// wrappers for passives and mosfets from plain subcircuit instances.
var elementTypes = map[string]elementType{
	"*":  {"comment", nil},
	".":  {"statement", nil},
	"A":  {"xspice", nil},
	"B":  {"behavioral source", []string{"n+", "n-"}},
	"C":  {"capacitor", []string{"n+", "n-"}},
	"D":  {"diode", []string{"n+", "n-"}},
	"E":  {"vcvs", []string{"n+", "n-", "nc+", "nc-"}},
	"F":  {"cccs", []string{"n+", "n-"}},
	"G":  {"vccs", []string{"n+", "n-", "nc+", "nc-"}},
	"H":  {"ccvs", []string{"n+", "n-"}},
	"I":  {"isource", []string{"n+", "n-"}},
	"J":  {"jfet", []string{"n1", "n2", "n3"}},
	"K":  {"coupled inductor", nil},
	"L":  {"inductor", []string{"n+", "n-"}},
	"M":  {"mosfet", []string{"n1", "n2", "n3", "n4"}},
	"N":  {"numerical device gss", nil},
	"O":  {"lossy transmission line", []string{"n1", "n2", "n3", "n4"}},
	"P":  {"coupled multiconductor line", nil},
	"Q":  {"bjt", []string{"n1", "n2", "n3", "n4"}},
	"R":  {"resistor", []string{"n+", "n-"}},
	"S":  {"vcsw", []string{"n+", "n-", "nc+", "nc-"}},
	"T":  {"lossless transmission line", []string{"n1", "n2", "n3", "n4"}},
	"U":  {"uniformely distributed rc line", []string{"n1", "n2", "n3"}},
	"V":  {"vsource", []string{"n+", "n-"}},
	"W":  {"icsw", []string{"n+", "n-"}},
	"X":  {"subcircuit", nil},
	"XC": {"capacitor", []string{"n1", "n2"}},
	"XM": {"mosfet", []string{"n1", "n2", "n3", "n4"}},
	"Y":  {"single lossy transmission line", []string{"n1", "n2", "n3", "n4"}},
	"Z":  {"mesfet", []string{"n1", "n2", "n3"}},
}

// identifyType resolves the type-table key for a netlist line. Lookup is
// case-insensitive on the first one or two characters.
func identifyType(line string) (string, error) {
	line = strings.TrimLeft(line, " \t")
	if line == "" {
		return "", ErrUnknownElementType
	}
	key := strings.ToUpper(line[:1])
	if key == "X" && len(line) > 1 {
		second := strings.ToUpper(line[1:2])
		if second == "M" || second == "C" {
			key += second
		}
	}
	if _, ok := elementTypes[key]; !ok {
		return "", ErrUnknownElementType
	}
	return key, nil
}
