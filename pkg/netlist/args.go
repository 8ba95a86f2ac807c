package netlist

import (
	"fmt"
	"strings"
)

// Arg is one unpacked argument token. HasValue distinguishes "key=value"
// assignments from bare flag tokens.
type Arg struct {
	Key      string
	Value    string
	HasValue bool
}

// Args is an ordered argument mapping. Order follows the original token
// order, so RepackArgs(UnpackArgs(x)) == x for well-formed token lists.
type Args []Arg

// Get returns the value of the named argument.
func (a Args) Get(key string) (Arg, bool) {
	for _, arg := range a {
		if arg.Key == key {
			return arg, true
		}
	}
	return Arg{}, false
}

// Set overwrites the value of the named argument, reporting whether the key
// was present.
func (a Args) Set(key, value string) bool {
	for i, arg := range a {
		if arg.Key == key {
			a[i].Value = value
			a[i].HasValue = true
			return true
		}
	}
	return false
}

// UnpackArgs converts an argument token list into an ordered key/value
// mapping. Tokens are split on the first "="; tokens without one become bare
// keys with no value.
func UnpackArgs(args []string) Args {
	unpacked := make(Args, 0, len(args))
	for _, tok := range args {
		key, value, found := strings.Cut(tok, "=")
		unpacked = append(unpacked, Arg{Key: key, Value: value, HasValue: found})
	}
	return unpacked
}

// RepackArgs is the inverse of UnpackArgs: assignments become "key=value"
// tokens, bare keys are emitted as-is, in mapping order.
func RepackArgs(args Args) []string {
	repacked := make([]string, 0, len(args))
	for _, arg := range args {
		if arg.HasValue {
			repacked = append(repacked, arg.Key+"="+arg.Value)
		} else {
			repacked = append(repacked, arg.Key)
		}
	}
	return repacked
}

// ReplaceArgument sets the value of one key=value argument of the element
// stored under uid. A key that is present as a bare flag token has no value
// to replace and is reported as malformed, leaving the element untouched. A
// key that is absent is appended as a new key=value token.
func (c *CircuitSection) ReplaceArgument(uid, key, value string) error {
	el, err := c.Get(uid)
	if err != nil {
		return err
	}
	args := UnpackArgs(el.Args)
	if arg, ok := args.Get(key); ok {
		if !arg.HasValue {
			return fmt.Errorf("uid %s: argument %q: %w", uid, key, ErrMalformedArgument)
		}
		args.Set(key, value)
	} else {
		args = append(args, Arg{Key: key, Value: value, HasValue: true})
	}
	el.Args = RepackArgs(args)
	return nil
}
