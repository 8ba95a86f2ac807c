package netlist

import (
	"fmt"
	"regexp"
)

// Criterion pairs an element field name with a regular expression. Valid
// fields are "instance", "type", "ports" and "location"; ports are matched
// against the space-joined node string.
type Criterion struct {
	Key     string
	Pattern string
}

// C is a shorthand constructor for a filter criterion.
func C(key, pattern string) Criterion {
	return Criterion{Key: key, Pattern: pattern}
}

// Match returns the uids of all elements whose field fully matches the
// pattern, in insertion order.
func (c *CircuitSection) Match(key, pattern string) ([]string, error) {
	re, err := regexp.Compile("^(?:" + pattern + ")$")
	if err != nil {
		return nil, fmt.Errorf("match %s: %w", key, err)
	}
	var matches []string
	for _, uid := range c.circuit.order {
		val, err := c.circuit.elems[uid].field(key)
		if err != nil {
			return nil, err
		}
		if re.MatchString(val) {
			matches = append(matches, uid)
		}
	}
	return matches, nil
}

// Filter returns the uids satisfying every criterion. Criteria are combined
// with logical AND; the result keeps the element order of the first
// criterion's match set. No matches is not an error.
func (c *CircuitSection) Filter(criteria ...Criterion) ([]string, error) {
	if len(criteria) == 0 {
		return nil, nil
	}
	matches, err := c.Match(criteria[0].Key, criteria[0].Pattern)
	if err != nil {
		return nil, err
	}
	for _, crit := range criteria[1:] {
		next, err := c.Match(crit.Key, crit.Pattern)
		if err != nil {
			return nil, err
		}
		in := make(map[string]struct{}, len(next))
		for _, uid := range next {
			in[uid] = struct{}{}
		}
		kept := matches[:0]
		for _, uid := range matches {
			if _, ok := in[uid]; ok {
				kept = append(kept, uid)
			}
		}
		matches = kept
	}
	return matches, nil
}

// Apply runs fn on every element matching the criteria and returns the number
// of elements visited. The transform receives the live element and may mutate
// it freely, including replacing it wholesale through the pointer. Zero
// matches means zero mutations and a zero count.
func (c *CircuitSection) Apply(fn func(*Element), criteria ...Criterion) (int, error) {
	matches, err := c.Filter(criteria...)
	if err != nil {
		return 0, err
	}
	for _, uid := range matches {
		fn(c.circuit.elems[uid])
	}
	return len(matches), nil
}
