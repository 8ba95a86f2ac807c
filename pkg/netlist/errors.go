package netlist

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownElementType signals a line whose leading characters are not
	// in the element type table. Parsing aborts.
	ErrUnknownElementType = errors.New("unknown element type")

	// ErrDuplicateIdentifier signals a uid collision during parsing. The
	// line index is part of the hash input, so a collision indicates a
	// parser bug rather than bad input.
	ErrDuplicateIdentifier = errors.New("duplicate identifier")

	// ErrMalformedArgument signals an argument token that was expected to
	// carry a key=value assignment but does not.
	ErrMalformedArgument = errors.New("malformed argument")

	// ErrUnknownIdentifier signals access to a uid that is not in the
	// circuit.
	ErrUnknownIdentifier = errors.New("unknown identifier")
)

// ParseError reports a failure for a specific line of the normalized input.
type ParseError struct {
	Line int    // zero-based line index
	Text string // offending line text
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// FieldError reports a query against an element field that does not exist or
// cannot be used as a match target.
type FieldError struct {
	Field string
}

func (e *FieldError) Error() string {
	if e.Field == "args" {
		return "field args is a token list and cannot be matched"
	}
	return fmt.Sprintf("unknown element field %q", e.Field)
}
