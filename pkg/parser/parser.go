// Package parser implements the event-emitting front-end parser: a
// recursive-descent driver at the statement level and a Pratt driver
// (with markers and forward-parent reparenting) at the expression level.
//
// The parser never builds a tree directly. It emits an ordered Event tape
// that pkg/green's Sink later replays against the token stream to
// materialize a lossless green tree. This indirection is what lets an
// already-completed node (say, a Literal) become the left child of a
// BinaryExpr discovered only once the operator token is seen — see
// Marker.Precede.
package parser

import (
	"github.com/nibble-lang/nibble/internal/parseerr"
	"github.com/nibble-lang/nibble/pkg/lexer"
	"github.com/nibble-lang/nibble/pkg/source"
)

// initialFuel bounds how many consecutive no-progress lookahead calls the
// parser tolerates before it concludes a grammar rule is looping and
// panics. This is an assertion against a programmer error in the grammar
// (spec.md §7's "fatal conditions"), never a user-facing ParseError.
const initialFuel = 255

// ErrParserStuck is the panic value raised when fuel is exhausted.
type ErrParserStuck struct{}

func (ErrParserStuck) Error() string {
	return "parser made no progress before running out of fuel"
}

// Parser drives the event stream. Construct one with New and call Parse.
type Parser struct {
	source *source.Source
	events []Event
	fuel   int
}

// New creates a parser over tokens.
func New(tokens []lexer.Token) *Parser {
	return &Parser{
		source: source.New(tokens),
		fuel:   initialFuel,
	}
}

// Parse runs the root grammar rule and returns the resulting event tape.
func (p *Parser) Parse() []Event {
	parseRoot(p)

	return p.events
}

// Peek returns the kind of the next non-trivia token without consuming
// it, or false at end of input.
func (p *Parser) Peek() (TokenKind, bool) {
	p.consumeFuel()

	return p.source.PeekKind()
}

// At reports whether the next non-trivia token has the given kind.
func (p *Parser) At(kind TokenKind) bool {
	k, ok := p.Peek()

	return ok && k == kind
}

// AtEOF reports whether the cursor has reached the end of the token
// stream.
func (p *Parser) AtEOF() bool {
	_, ok := p.Peek()

	return !ok
}

// Bump consumes the next non-trivia token unconditionally and emits an
// AddToken event for it. Callers must have already checked the token's
// kind via At/Peek; Bump panics if there is nothing left to consume,
// since that indicates a grammar rule bumped without checking EOF first.
func (p *Parser) Bump() {
	if _, ok := p.source.NextToken(); !ok {
		panic("parser: Bump called at end of input")
	}

	p.events = append(p.events, Event{Kind: EventAddToken})
	p.fuel = initialFuel
}

// Eat consumes the next token if it has the given kind and reports
// whether it did.
func (p *Parser) Eat(kind TokenKind) bool {
	if p.At(kind) {
		p.Bump()

		return true
	}

	return false
}

// Start reserves a marker for a node whose kind will be decided later.
func (p *Parser) Start() Marker {
	return p.startMarker()
}

// Expect consumes the next token if it matches kind, otherwise records a
// ParseError (expected: {kind}) at the current position and performs the
// grammar's single-token recovery: if the offending token is EOF or in
// recoverySet, it is left unconsumed; otherwise it is wrapped in an Error
// node so the parser still makes progress.
func (p *Parser) Expect(kind TokenKind, recoverySet ...TokenKind) bool {
	if p.Eat(kind) {
		return true
	}

	p.errorExpected([]TokenKind{kind}, recoverySet)

	return false
}

// errorExpected implements the recovery algorithm from spec.md §4.3: emit
// an Error event naming what was expected, then either step aside (EOF or
// a token in recoverySet) or consume-and-wrap the offending token in an
// Error node.
func (p *Parser) errorExpected(expected []TokenKind, recoverySet []TokenKind) {
	found, foundOK := p.source.PeekKind()

	var foundPtr *lexer.Kind
	if foundOK {
		foundPtr = &found
	}

	rng := p.currentRange()
	p.events = append(p.events, Event{
		Kind: EventError,
		Err: parseerr.ParseError{
			Expected: expected,
			Found:    foundPtr,
			Range:    rng,
		},
	})

	if !foundOK {
		return
	}
	for _, k := range recoverySet {
		if found == k {
			return
		}
	}

	m := p.Start()
	p.Bump()
	m.Complete(p, lexer.Error)
}

// currentRange reports the byte range that a ParseError raised right now
// should point at: the next non-trivia token's range, or a zero-width
// range at the end of input.
func (p *Parser) currentRange() lexer.Range {
	if r, ok := p.source.PeekRange(); ok {
		return r
	}
	if r, ok := p.source.LastTokenRange(); ok {
		return lexer.Range{Start: r.End, End: r.End}
	}

	return lexer.Range{}
}

func (p *Parser) consumeFuel() {
	if p.fuel == 0 {
		panic(ErrParserStuck{})
	}
	p.fuel--
}
