// Package parseerr defines the parse error type collected during a parse
// and a small List type for treating several of them as one error value.
// The sink and ParseResult hold collected errors as a plain
// []ParseError.
//
// A ParseError never aborts a parse: the parser always produces a tree,
// embedding Error nodes and Missing HIR expressions at the point of
// failure. This package only models the "what went wrong" value; see
// pkg/parser for where errors are raised and pkg/green for how they are
// collected into the sink's output.
package parseerr

import (
	"fmt"
	"strings"

	"github.com/nibble-lang/nibble/pkg/lexer"
)

// ParseError records an expected-but-absent token: the set of kinds that
// would have been accepted, the kind actually found (nil at EOF), and the
// byte range where the mismatch was detected.
type ParseError struct {
	Expected []lexer.Kind
	Found    *lexer.Kind
	Range    lexer.Range
}

func (e ParseError) Error() string {
	var found string
	if e.Found == nil {
		found = "end of input"
	} else {
		found = e.Found.String()
	}

	names := make([]string, len(e.Expected))
	for i, k := range e.Expected {
		names[i] = k.String()
	}

	return fmt.Sprintf("at %d..%d: expected %s but found %s",
		e.Range.Start, e.Range.End, strings.Join(names, " or "), found)
}

// List is an ordered collection of ParseError, in the order they were
// raised during the parse.
type List []ParseError

// HasErrors reports whether any errors were collected.
func (l List) HasErrors() bool { return len(l) > 0 }

// Error implements the error interface over the whole collection, joining
// individual messages. Useful for callers that want a single error value
// (e.g. a REPL deciding whether to refuse evaluation).
func (l List) Error() string {
	if len(l) == 0 {
		return "no errors"
	}
	if len(l) == 1 {
		return l[0].Error()
	}

	msgs := make([]string, len(l))
	for i, e := range l {
		msgs[i] = e.Error()
	}

	return fmt.Sprintf("%d parse errors:\n%s", len(l), strings.Join(msgs, "\n"))
}
