// Package syntax provides thin, non-owning typed views over a
// pkg/green tree. Every view wraps a *green.Node (or, for leaf
// accessors, a *green.Token) plus the absolute byte range green.Walk
// computed for it; none of them copy or own tree data. The sealed
// interfaces below (Stmt, Expr) follow the same unexported-marker-method
// idiom the teacher uses for internal/types.Node/Expr — a closed set of
// concrete implementations, switched on with a type switch rather than
// subclassed.
package syntax

import (
	"github.com/nibble-lang/nibble/pkg/green"
	"github.com/nibble-lang/nibble/pkg/lexer"
)

// Root is the top-level view: a parsed program.
type Root struct {
	node  *green.Node
	rng   lexer.Range
}

// NewRoot wraps a green tree whose Kind is lexer.Root. It panics if node
// is nil or of the wrong kind — every caller in this module passes the
// root node a green.Sink produced, which always has kind Root.
func NewRoot(node *green.Node) Root {
	if node == nil || node.Kind != lexer.Root {
		panic("syntax: NewRoot requires a non-nil node of kind Root")
	}

	rng := lexer.Range{End: node.Len()}

	return Root{node: node, rng: rng}
}

// Green returns the underlying green node, for callers (such as
// pkg/hir) that need to walk it directly.
func (r Root) Green() *green.Node { return r.node }

// Range returns r's absolute byte range.
func (r Root) Range() lexer.Range { return r.rng }

// Stmts returns every top-level statement in document order.
func (r Root) Stmts() []Stmt {
	var stmts []Stmt

	offset := r.rng.Start
	for _, child := range r.node.Children {
		node, ok := child.(*green.Node)
		if !ok {
			offset += child.Len()

			continue
		}

		if stmt, ok := asStmt(node, offset); ok {
			stmts = append(stmts, stmt)
		}

		offset += child.Len()
	}

	return stmts
}

// Stmt is implemented by every top-level and block-level statement kind:
// the core grammar's VariableDef and bare expressions (any Expr is also a
// Stmt), plus the procedure/block extension's ProcDef, Block, Assignment,
// and ReturnStmt.
type Stmt interface {
	Range() lexer.Range

	stmtNode()
}

func asStmt(node *green.Node, offset int) (Stmt, bool) {
	rng := lexer.Range{Start: offset, End: offset + node.Len()}

	switch node.Kind {
	case lexer.VariableDef:
		return VariableDef{node: node, rng: rng}, true
	case lexer.ProcDef:
		return ProcDef{node: node, rng: rng}, true
	case lexer.Block:
		return Block{node: node, rng: rng}, true
	case lexer.Assignment:
		return Assignment{node: node, rng: rng}, true
	case lexer.ReturnStmt:
		return ReturnStmt{node: node, rng: rng}, true
	default:
		if expr, ok := asExpr(node, offset); ok {
			return expr, true
		}

		return nil, false
	}
}

// VariableDef is `"let" IDENT "=" expr`.
type VariableDef struct {
	node *green.Node
	rng  lexer.Range
}

func (VariableDef) stmtNode()          {}
func (v VariableDef) Range() lexer.Range { return v.rng }

// Name returns the identifier token's text, or "" if it is missing or was
// replaced by an Error node during recovery.
func (v VariableDef) Name() (string, bool) {
	for _, child := range v.node.Children {
		if tok, ok := child.(*green.Token); ok && tok.Kind == lexer.Identifier {
			return tok.Text, true
		}
	}

	return "", false
}

// Value returns the definition's value expression, if one was parsed.
func (v VariableDef) Value() (Expr, bool) {
	return lastExprChild(v.node, v.rng.Start)
}

// ProcDef is `("fn"|"proc") IDENT "(" params ")" return_ty? block`.
type ProcDef struct {
	node *green.Node
	rng  lexer.Range
}

func (ProcDef) stmtNode()          {}
func (p ProcDef) Range() lexer.Range { return p.rng }

// Name returns the procedure's identifier token text.
func (p ProcDef) Name() (string, bool) {
	for _, child := range p.node.Children {
		if tok, ok := child.(*green.Token); ok && tok.Kind == lexer.Identifier {
			return tok.Text, true
		}
	}

	return "", false
}

// Params returns the declared parameter names, in order, skipping any
// parameter whose name is missing.
func (p ProcDef) Params() []string {
	var names []string

	for _, child := range p.node.Children {
		paramList, ok := child.(*green.Node)
		if !ok || paramList.Kind != lexer.ParamList {
			continue
		}

		for _, pc := range paramList.Children {
			param, ok := pc.(*green.Node)
			if !ok || param.Kind != lexer.Param {
				continue
			}
			for _, tc := range param.Children {
				if tok, ok := tc.(*green.Token); ok && tok.Kind == lexer.Identifier {
					names = append(names, tok.Text)

					break
				}
			}
		}
	}

	return names
}

// Body returns the procedure's block, if one was parsed.
func (p ProcDef) Body() (Block, bool) {
	offset := p.rng.Start

	for _, child := range p.node.Children {
		node, ok := child.(*green.Node)
		if ok && node.Kind == lexer.Block {
			rng := lexer.Range{Start: childOffset(p.node, child, p.rng.Start), End: 0}
			rng.End = rng.Start + node.Len()

			return Block{node: node, rng: rng}, true
		}
		offset += child.Len()
	}

	return Block{}, false
}

// Block is `"{" stmt* "}"`.
type Block struct {
	node *green.Node
	rng  lexer.Range
}

func (Block) stmtNode()          {}
func (b Block) Range() lexer.Range { return b.rng }

// Stmts returns every statement inside the block, in document order.
func (b Block) Stmts() []Stmt {
	var stmts []Stmt

	offset := b.rng.Start
	for _, child := range b.node.Children {
		node, ok := child.(*green.Node)
		if !ok {
			offset += child.Len()

			continue
		}

		if stmt, ok := asStmt(node, offset); ok {
			stmts = append(stmts, stmt)
		}

		offset += child.Len()
	}

	return stmts
}

// Assignment is `expr "=" expr`.
type Assignment struct {
	node *green.Node
	rng  lexer.Range
}

func (Assignment) stmtNode()          {}
func (a Assignment) Range() lexer.Range { return a.rng }

// Target and Value return the left- and right-hand expressions of the
// assignment, located positionally (expr child 0, expr child 1) rather
// than by "first"/"last found": when the value is missing (e.g. "x="),
// there is only one expr child, and exprChildAt(…, 1) correctly reports
// ok=false instead of re-returning the target as its own value.
func (a Assignment) Target() (Expr, bool) { return exprChildAt(a.node, a.rng.Start, 0) }
func (a Assignment) Value() (Expr, bool)  { return exprChildAt(a.node, a.rng.Start, 1) }

// ReturnStmt is `"return" expr?`.
type ReturnStmt struct {
	node *green.Node
	rng  lexer.Range
}

func (ReturnStmt) stmtNode()          {}
func (r ReturnStmt) Range() lexer.Range { return r.rng }

// Value returns the returned expression, if any was written.
func (r ReturnStmt) Value() (Expr, bool) {
	return lastExprChild(r.node, r.rng.Start)
}

// Expr is implemented by every expression node kind. Every Expr is also a
// Stmt, since a bare expression is a valid statement with no wrapping
// node in the CST (spec.md §8 scenario 1).
type Expr interface {
	Stmt

	exprNode()
}

func asExpr(node *green.Node, offset int) (Expr, bool) {
	rng := lexer.Range{Start: offset, End: offset + node.Len()}

	switch node.Kind {
	case lexer.Literal:
		return Literal{node: node, rng: rng}, true
	case lexer.VariableRef:
		return VariableRef{node: node, rng: rng}, true
	case lexer.PrefixExpr:
		return PrefixExpr{node: node, rng: rng}, true
	case lexer.BinaryExpr:
		return BinaryExpr{node: node, rng: rng}, true
	case lexer.ParenExpr:
		return ParenExpr{node: node, rng: rng}, true
	default:
		return nil, false
	}
}

// Literal is a numeric literal token.
type Literal struct {
	node *green.Node
	rng  lexer.Range
}

func (Literal) stmtNode()          {}
func (Literal) exprNode()          {}
func (l Literal) Range() lexer.Range { return l.rng }

// Text returns the literal's exact source text (e.g. "007", preserved
// verbatim so pkg/hir can decide whether it parses as a valid number).
func (l Literal) Text() string {
	for _, child := range l.node.Children {
		if tok, ok := child.(*green.Token); ok && tok.Kind == lexer.Number {
			return tok.Text
		}
	}

	return ""
}

// VariableRef is a bare identifier used as an expression.
type VariableRef struct {
	node *green.Node
	rng  lexer.Range
}

func (VariableRef) stmtNode()          {}
func (VariableRef) exprNode()          {}
func (v VariableRef) Range() lexer.Range { return v.rng }

// Name returns the referenced identifier's text.
func (v VariableRef) Name() string {
	for _, child := range v.node.Children {
		if tok, ok := child.(*green.Token); ok && tok.Kind == lexer.Identifier {
			return tok.Text
		}
	}

	return ""
}

// PrefixExpr is `"-" expr`.
type PrefixExpr struct {
	node *green.Node
	rng  lexer.Range
}

func (PrefixExpr) stmtNode()          {}
func (PrefixExpr) exprNode()          {}
func (p PrefixExpr) Range() lexer.Range { return p.rng }

// Operand returns the operand expression, if one was parsed.
func (p PrefixExpr) Operand() (Expr, bool) {
	return lastExprChild(p.node, p.rng.Start)
}

// BinaryExpr is `expr op expr`.
type BinaryExpr struct {
	node *green.Node
	rng  lexer.Range
}

func (BinaryExpr) stmtNode()          {}
func (BinaryExpr) exprNode()          {}
func (b BinaryExpr) Range() lexer.Range { return b.rng }

// Op returns the operator token's kind (one of Plus, Minus, Star, Slash).
func (b BinaryExpr) Op() (lexer.Kind, bool) {
	for _, child := range b.node.Children {
		if tok, ok := child.(*green.Token); ok {
			switch tok.Kind {
			case lexer.Plus, lexer.Minus, lexer.Star, lexer.Slash:
				return tok.Kind, true
			}
		}
	}

	return 0, false
}

// Left and Right return the two operand expressions, located positionally
// (expr child 0, expr child 1) rather than by "first"/"last found": when
// the right operand is missing (e.g. "1+"), the node has only the lhs as
// an expr child, and exprChildAt(…, 1) correctly reports ok=false instead
// of re-returning the lhs as its own right operand.
func (b BinaryExpr) Left() (Expr, bool)  { return exprChildAt(b.node, b.rng.Start, 0) }
func (b BinaryExpr) Right() (Expr, bool) { return exprChildAt(b.node, b.rng.Start, 1) }

// ParenExpr is `"(" expr ")"`.
type ParenExpr struct {
	node *green.Node
	rng  lexer.Range
}

func (ParenExpr) stmtNode()          {}
func (ParenExpr) exprNode()          {}
func (p ParenExpr) Range() lexer.Range { return p.rng }

// Inner returns the parenthesized expression, if one was parsed.
func (p ParenExpr) Inner() (Expr, bool) {
	return firstExprChild(p.node, p.rng.Start)
}

// firstExprChild and lastExprChild scan a node's direct children for the
// first or last one that's an expression, computing its absolute range
// from parent's start offset and preceding sibling lengths.
func firstExprChild(node *green.Node, parentStart int) (Expr, bool) {
	offset := parentStart
	for _, child := range node.Children {
		if n, ok := child.(*green.Node); ok {
			if expr, ok := asExpr(n, offset); ok {
				return expr, true
			}
		}
		offset += child.Len()
	}

	return nil, false
}

func lastExprChild(node *green.Node, parentStart int) (Expr, bool) {
	var (
		found  Expr
		foundOK bool
	)

	offset := parentStart
	for _, child := range node.Children {
		if n, ok := child.(*green.Node); ok {
			if expr, ok := asExpr(n, offset); ok {
				found, foundOK = expr, true
			}
		}
		offset += child.Len()
	}

	return found, foundOK
}

// exprChildAt returns the nth expression child (0-indexed among
// expression children only). Used wherever a node's grammar fixes two
// expression children in a specific left/right order (BinaryExpr,
// Assignment) — picking child n positionally, rather than "first found"
// or "last found", is what keeps a missing second operand from
// resolving back to the first one.
func exprChildAt(node *green.Node, parentStart int, n int) (Expr, bool) {
	offset := parentStart
	count := 0
	for _, child := range node.Children {
		if cn, ok := child.(*green.Node); ok {
			if expr, ok := asExpr(cn, offset); ok {
				if count == n {
					return expr, true
				}
				count++
			}
		}
		offset += child.Len()
	}

	return nil, false
}

func childOffset(parent *green.Node, target green.Element, parentStart int) int {
	offset := parentStart
	for _, child := range parent.Children {
		if child == target {
			return offset
		}
		offset += child.Len()
	}

	return offset
}
