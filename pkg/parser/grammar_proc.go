package parser

import "github.com/nibble-lang/nibble/pkg/lexer"

// The productions in this file implement the procedure/block/assignment
// extension described in spec.md §9 as an Open Question ("treat
// procedure/block/assignment grammar as an optional extension orthogonal
// to the CST/HIR core"). They are grounded on original_source's
// predecessor parser (src/parser.rs: parse_procedure/parse_block/
// parse_return/parse_ty), reworked into the event/marker style the core
// grammar uses instead of that source's direct AST construction.
//
// Every production here is defensive about missing pieces: unlike the
// original Rust parser (which calls a panicking `error` helper on any
// unexpected token), nothing here ever aborts. A malformed procedure
// still produces a tree; what's missing is recovered with the same
// single-token-skip discipline as the core grammar.

// parseProcDef parses `("fn"|"proc") IDENT "(" params? ")" return_ty? block`.
func parseProcDef(p *Parser) {
	m := p.Start()

	p.Bump() // "fn" or "proc", already checked by the caller's dispatch.
	p.Expect(lexer.Identifier, lexer.LParen, lexer.RParen, lexer.LBrace)

	if p.At(lexer.LParen) {
		p.Bump()
		parseParamList(p)
		p.Expect(lexer.RParen, lexer.LBrace)
	} else {
		p.errorExpected([]TokenKind{lexer.LParen}, []TokenKind{lexer.LBrace})
	}

	if p.At(lexer.Identifier) {
		p.Bump() // return type name; no dedicated CST node, just a token.
	}

	if p.At(lexer.LBrace) {
		parseBlock(p)
	} else {
		p.errorExpected([]TokenKind{lexer.LBrace}, nil)
	}

	m.Complete(p, lexer.ProcDef)
}

// parseParamList parses a comma-separated parameter list up to (but not
// including) the closing ")".
func parseParamList(p *Parser) {
	m := p.Start()

	for !p.At(lexer.RParen) && !p.AtEOF() {
		parseParam(p)

		if p.At(lexer.Comma) {
			p.Bump()
		} else {
			break
		}
	}

	m.Complete(p, lexer.ParamList)
}

// parseParam parses a single `IDENT IDENT` parameter (name, then type
// name); the type name is treated as optional here even though the
// original grammar requires it, since recovering a missing type is
// cheaper than abandoning the whole parameter.
func parseParam(p *Parser) {
	m := p.Start()

	if p.Expect(lexer.Identifier, lexer.Comma, lexer.RParen) && p.At(lexer.Identifier) {
		p.Bump()
	}

	m.Complete(p, lexer.Param)
}

// parseBlock parses `"{" stmt* "}"`.
func parseBlock(p *Parser) {
	m := p.Start()

	p.Bump() // "{"
	for !p.At(lexer.RBrace) && !p.AtEOF() {
		parseStatement(p)
	}
	p.Expect(lexer.RBrace)

	m.Complete(p, lexer.Block)
}

// parseReturnStmt parses `"return" expr?`.
func parseReturnStmt(p *Parser) {
	m := p.Start()

	p.Bump() // "return"
	if atExprStart(p) {
		parseExpr(p)
	}

	m.Complete(p, lexer.ReturnStmt)
}

func atExprStart(p *Parser) bool {
	kind, ok := p.Peek()
	if !ok {
		return false
	}

	for _, want := range exprStartKinds {
		if kind == want {
			return true
		}
	}

	return false
}
