package parser

import "github.com/nibble-lang/nibble/pkg/lexer"

// parseRoot is the top-level grammar rule: a Root node wrapping zero or
// more statements, run until end of input.
func parseRoot(p *Parser) {
	m := p.Start()

	for !p.AtEOF() {
		parseStatement(p)
	}

	m.Complete(p, lexer.Root)
}

// parseStatement dispatches on the lookahead keyword to decide which
// statement production to run. The core grammar only recognizes
// var_def (`let`) and plain expressions; the remaining cases implement
// the optional procedure/block extension (spec.md §9).
func parseStatement(p *Parser) {
	switch {
	case p.At(lexer.LetKw):
		parseVariableDef(p)
	case p.At(lexer.FnKw), p.At(lexer.ProcKw):
		parseProcDef(p)
	case p.At(lexer.LBrace):
		parseBlock(p)
	case p.At(lexer.ReturnKw):
		parseReturnStmt(p)
	default:
		parseAssignmentOrExprStmt(p)
	}
}

// parseVariableDef parses `let IDENT = expr`. Each missing piece is
// recovered with single-token skip per spec.md §4.3, and the resulting
// VariableDef node still gets completed — a malformed definition is
// never a reason to drop the statement from the tree.
//
// The recovery set passed to each Expect is the FIRST set of whatever
// follows in the grammar ("=" after the name, an expression after "="),
// not lexer.LetKw: stopping recovery at the very token the production
// needs next is what keeps a missing identifier (spec.md §8 scenario 6,
// "let = 1") to exactly one ParseError instead of cascading into a
// second error when the "=" Expect call immediately follows.
func parseVariableDef(p *Parser) {
	m := p.Start()

	p.Bump() // "let"
	p.Expect(lexer.Identifier, lexer.Equals)
	p.Expect(lexer.Equals, exprStartKinds...)
	parseExpr(p) // value; missing lowers to Missing.

	m.Complete(p, lexer.VariableDef)
}

// parseAssignmentOrExprStmt parses a bare expression statement, or — if
// the expression is immediately followed by "=" — an assignment. There is
// no wrapping node for a plain expression statement: the expression's own
// completed node is the statement (spec.md §8 scenario 1's
// `Root[BinaryExpr[...]]` has no intervening ExprStmt node).
func parseAssignmentOrExprStmt(p *Parser) {
	lhs, ok := parseExpr(p)
	if !ok {
		p.errorExpected(exprStartKinds, []TokenKind{lexer.LetKw})

		return
	}

	if p.At(lexer.Equals) {
		m := lhs.Precede(p)
		p.Bump()
		parseExpr(p) // rhs; missing lowers to Missing.
		m.Complete(p, lexer.Assignment)
	}
}
