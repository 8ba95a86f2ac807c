package netlist

import (
	"crypto/md5"
	"encoding/hex"
	"strconv"
	"strings"
)

// arena is an ordered uid → element collection. Insertion order reproduces
// the source file ordering and is preserved across filter/apply/serialize
// cycles.
type arena struct {
	order []string
	elems map[string]*Element
}

func newArena() *arena {
	return &arena{elems: make(map[string]*Element)}
}

func (a *arena) insert(uid string, el *Element) error {
	if _, ok := a.elems[uid]; ok {
		return ErrDuplicateIdentifier
	}
	a.order = append(a.order, uid)
	a.elems[uid] = el
	return nil
}

func (a *arena) clone() *arena {
	c := &arena{
		order: make([]string, len(a.order)),
		elems: make(map[string]*Element, len(a.elems)),
	}
	copy(c.order, a.order)
	for uid, el := range a.elems {
		c.elems[uid] = el.Clone()
	}
	return c
}

// computeUID derives the identifier of an element from its line index and
// exact line text.
func computeUID(index int, line string) string {
	sum := md5.Sum([]byte(strconv.Itoa(index) + line))
	return hex.EncodeToString(sum[:])
}

// parse interprets normalized netlist text into elements. It tracks the
// subcircuit hierarchy, skips control sections and fails fast on the first
// unparseable line.
func parse(text string) (*arena, error) {
	a := newArena()
	hierarchy := []string{"root"}
	insideControl := false
	for i, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || line == ".end" || strings.HasPrefix(line, "*") {
			continue
		}
		if strings.HasPrefix(line, ".subckt") {
			// The declaration itself belongs to the frame it opens,
			// so push before classifying.
			tokens := strings.Split(line, " ")
			if len(tokens) < 2 {
				return nil, &ParseError{Line: i, Text: line, Err: ErrUnknownElementType}
			}
			hierarchy = append(hierarchy, tokens[1])
		}
		if strings.HasPrefix(line, ".control") || insideControl {
			// Control sections are opaque to the circuit model.
			insideControl = true
			if strings.HasPrefix(line, ".endc") {
				insideControl = false
			}
		} else {
			el, err := parseLine(line, hierarchy)
			if err != nil {
				return nil, &ParseError{Line: i, Text: line, Err: err}
			}
			if err := a.insert(computeUID(i, line), el); err != nil {
				return nil, &ParseError{Line: i, Text: line, Err: err}
			}
		}
		if strings.HasPrefix(line, ".ends") && len(hierarchy) > 1 {
			hierarchy = hierarchy[:len(hierarchy)-1]
		}
	}
	return a, nil
}

// parseLine converts one normalized line plus the current hierarchy into an
// element. The category's fixed ports consume the tokens after the instance
// name; whatever is left over is args.
func parseLine(line string, hierarchy []string) (*Element, error) {
	key, err := identifyType(line)
	if err != nil {
		return nil, err
	}
	et := elementTypes[key]

	tokens, err := splitStatement(line)
	if err != nil {
		return nil, err
	}

	el := &Element{
		Instance: tokens[0],
		Type:     et.name,
		Location: strings.Join(hierarchy, "/"),
	}
	next := 1
	for _, role := range et.ports {
		if next >= len(tokens) {
			break
		}
		el.Ports = append(el.Ports, Port{Name: role, Node: tokens[next]})
		next++
	}
	if next < len(tokens) {
		el.Args = tokens[next:]
	}
	return el, nil
}
