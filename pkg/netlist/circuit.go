// Package netlist parses spice netlists into a queryable, mutable circuit
// model and regenerates simulation-ready netlist text from it. The model
// preserves source order and subcircuit hierarchy, supports regex filtering
// across element fields and bulk mutation of matched elements, and round
// trips any normalized netlist.
package netlist

import (
	"fmt"
)

// CircuitSection is the structured representation of a spice netlist: an
// ordered collection of elements keyed by unique identifier. The parse result
// is kept as an immutable reference so edits can be rolled back with Reset.
//
// A CircuitSection is not safe for concurrent mutation; parallel workers must
// each own a private instance.
type CircuitSection struct {
	// Filename is the source path, or a generic label when the circuit
	// was built from a string. It is written to the serialized header.
	Filename string

	parsed  *arena
	circuit *arena
}

// FromFile reads, normalizes and parses a netlist file.
func FromFile(path string) (*CircuitSection, error) {
	text, err := ReadNetlist(path)
	if err != nil {
		return nil, err
	}
	c, err := fromClean(text)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	c.Filename = path
	return c, nil
}

// FromString normalizes and parses netlist text.
func FromString(text string) (*CircuitSection, error) {
	c, err := fromClean(Clean(text))
	if err != nil {
		return nil, err
	}
	c.Filename = "netlist"
	return c, nil
}

func fromClean(text string) (*CircuitSection, error) {
	parsed, err := parse(text)
	if err != nil {
		return nil, err
	}
	return &CircuitSection{
		parsed:  parsed,
		circuit: parsed.clone(),
	}, nil
}

// UIDs returns the element identifiers in insertion order.
func (c *CircuitSection) UIDs() []string {
	uids := make([]string, len(c.circuit.order))
	copy(uids, c.circuit.order)
	return uids
}

// Len returns the number of elements in the live circuit.
func (c *CircuitSection) Len() int {
	return len(c.circuit.order)
}

// Get returns the live element stored under uid. The returned pointer aliases
// the model; mutating it mutates the circuit.
func (c *CircuitSection) Get(uid string) (*Element, error) {
	el, ok := c.circuit.elems[uid]
	if !ok {
		return nil, fmt.Errorf("uid %s: %w", uid, ErrUnknownIdentifier)
	}
	return el, nil
}

// Set replaces the element stored under an existing uid. Storing under an
// unknown uid is refused; new elements enter the circuit through Append.
func (c *CircuitSection) Set(uid string, el *Element) error {
	if _, ok := c.circuit.elems[uid]; !ok {
		return fmt.Errorf("uid %s: %w", uid, ErrUnknownIdentifier)
	}
	c.circuit.elems[uid] = el
	return nil
}

// Reset discards all live edits and restores the circuit from the original
// parse result.
func (c *CircuitSection) Reset() {
	c.circuit = c.parsed.clone()
}

// Append parses one raw netlist line as if it were appended at the end of the
// source and inserts it under a freshly minted identifier. The identifier is
// salted with a counter so that appending identical text repeatedly always
// yields distinct elements. Returns the new uid.
func (c *CircuitSection) Append(line string) (string, error) {
	parsed, err := parse(Clean(line))
	if err != nil {
		return "", fmt.Errorf("append: %w", err)
	}
	if len(parsed.order) != 1 {
		return "", fmt.Errorf("append: expected one element in %q, got %d", line, len(parsed.order))
	}
	el := parsed.elems[parsed.order[0]]

	var uid string
	for salt := 0; ; salt++ {
		uid = computeUID(salt, line)
		if _, ok := c.circuit.elems[uid]; !ok {
			break
		}
	}
	if err := c.circuit.insert(uid, el); err != nil {
		return "", err
	}
	return uid, nil
}

// String returns the serialized netlist.
func (c *CircuitSection) String() string {
	return c.Netlist()
}

// Write serializes the circuit and writes it to a file.
func (c *CircuitSection) Write(path string) error {
	return WriteNetlist(c.Netlist(), path)
}
