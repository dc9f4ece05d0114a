package parser

import "github.com/nibble-lang/nibble/pkg/lexer"

// exprStartKinds is the FIRST set of an expression: the token kinds that
// parseAtom knows how to begin an expression with. Used to build the
// "expected" set on a ParseError when an expression was required but the
// current token can't start one.
var exprStartKinds = []TokenKind{lexer.Number, lexer.Identifier, lexer.Minus, lexer.LParen}

// prefixRightBindingPower is the binding power the unary "-" binds its
// operand with — tighter than any infix operator, so "-a * b" parses as
// "(-a) * b" rather than "-(a * b)".
const prefixRightBindingPower = 5

// infixBindingPower returns the (left, right) binding power pair for an
// infix operator kind, or ok=false if kind isn't an infix operator. The
// asymmetry (right = left+1) is what makes every operator here
// left-associative: at equal precedence, parseExprBindingPower's
// `left < minBP` check stops the loop on a repeat of the same operator
// only after it has already become the new lhs, so "a - b - c" groups as
// "(a - b) - c".
func infixBindingPower(kind TokenKind) (left, right uint8, ok bool) {
	switch kind {
	case lexer.Plus, lexer.Minus:
		return 1, 2, true
	case lexer.Star, lexer.Slash:
		return 3, 4, true
	default:
		return 0, 0, false
	}
}

// parseExpr parses one expression at the lowest binding power.
func parseExpr(p *Parser) (CompletedMarker, bool) {
	return parseExprBindingPower(p, 0)
}

// parseExprBindingPower is the Pratt driver proper. It parses one atom,
// then repeatedly folds in infix operators whose left binding power is at
// least minBP, re-parenting the running left-hand side via Marker.Precede
// each time.
func parseExprBindingPower(p *Parser, minBP uint8) (CompletedMarker, bool) {
	lhs, ok := parseAtom(p)
	if !ok {
		return CompletedMarker{}, false
	}

	for {
		opKind, atOp := p.Peek()
		if !atOp {
			break
		}

		left, right, isInfix := infixBindingPower(opKind)
		if !isInfix || left < minBP {
			break
		}

		m := lhs.Precede(p)
		p.Bump()
		parseExprBindingPower(p, right) // rhs; a missing rhs lowers to Missing in pkg/hir.
		lhs = m.Complete(p, lexer.BinaryExpr)
	}

	return lhs, true
}

// parseAtom parses a single expression atom: a literal, a variable
// reference, a prefix "-", or a parenthesized expression. It reports
// ok=false without consuming anything if the current token can't start
// an expression, so callers can fall back to their own recovery.
func parseAtom(p *Parser) (CompletedMarker, bool) {
	m := p.Start()

	switch {
	case p.At(lexer.Number):
		p.Bump()

		return m.Complete(p, lexer.Literal), true

	case p.At(lexer.Identifier):
		p.Bump()

		return m.Complete(p, lexer.VariableRef), true

	case p.At(lexer.Minus):
		p.Bump()
		parseExprBindingPower(p, prefixRightBindingPower) // operand; missing lowers to Missing.

		return m.Complete(p, lexer.PrefixExpr), true

	case p.At(lexer.LParen):
		p.Bump()
		parseExprBindingPower(p, 0) // inner; missing lowers to Missing.
		p.Expect(lexer.RParen)

		return m.Complete(p, lexer.ParenExpr), true

	default:
		m.Abandon(p)

		return CompletedMarker{}, false
	}
}
