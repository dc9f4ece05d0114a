// Package hir lowers the typed CST (pkg/syntax) into a high-level
// intermediate representation: an arena of expressions referenced by
// opaque ExprIdx handles, and a statement list referring into it. This is
// new code with no direct teacher analogue (the teacher's Nix AST has no
// arena), grounded instead on original_source/crates/hir/src/lib.rs's
// shape (`Db`/`Idx<Expr>`/`lower`) and la_arena's Idx<T> pattern,
// re-expressed as a plain Go slice and a uint32 handle.
package hir

import (
	"strconv"

	"github.com/nibble-lang/nibble/pkg/lexer"
	"github.com/nibble-lang/nibble/pkg/syntax"
)

// ExprIdx is an opaque handle into an Arena. It is only meaningful
// alongside the Arena that produced it; indices from two different
// Arenas are never comparable.
type ExprIdx uint32

// BinaryOp enumerates the recognized infix operators.
type BinaryOp int

const (
	Add BinaryOp = iota
	Sub
	Mul
	Div
)

// UnaryOp enumerates the recognized prefix operators.
type UnaryOp int

const (
	Neg UnaryOp = iota
)

// Expr is the closed set of HIR expression shapes. Missing, Literal, and
// VariableRef are leaves; Binary and Unary reference their operands by
// ExprIdx into the owning Arena. Lower allocates every expression in the
// Arena, leaves included; no leaf is stored inline in its parent.
type Expr interface {
	exprNode()
}

// Missing marks a syntactically absent sub-expression — a VariableDef
// with no value, a BinaryExpr missing an operand, and so on. It is
// distinct from a Literal whose text failed to parse.
type Missing struct{}

func (Missing) exprNode() {}

// Literal is an integer literal. N is nil when the literal's text did
// not parse as a valid value (overflow, or digits malformed beyond what
// the lexer's Number token can produce) — the text itself is still
// preserved in the CST, this is the HIR-level "present but malformed"
// signal, distinct from Missing.
type Literal struct {
	N *uint64
}

func (Literal) exprNode() {}

// Binary is a binary operator expression.
type Binary struct {
	Op       BinaryOp
	Lhs, Rhs ExprIdx
}

func (Binary) exprNode() {}

// Unary is a prefix operator expression.
type Unary struct {
	Op      UnaryOp
	Operand ExprIdx
}

func (Unary) exprNode() {}

// VariableRef is a reference to a binding by name. Name resolution
// against a live environment is the evaluator's job (pkg/env), not this
// package's — lowering never fails a VariableRef for an unknown name.
type VariableRef struct {
	Name string
}

func (VariableRef) exprNode() {}

// Stmt is the closed set of HIR statement shapes: the core grammar's
// VariableDef and ExprStmt, plus the procedure/block extension's
// ProcDef, Block, Assign, and Return. These extension variants are
// additive — they never substitute for a core Expr/Stmt variant.
type Stmt interface {
	stmtNode()
}

// VariableDef is `let NAME = value`. Value is always a valid ExprIdx:
// when the definition has no value expression, it indexes a Missing
// node allocated in the arena, rather than Value being optional itself.
type VariableDef struct {
	Name  string
	Value ExprIdx
}

func (VariableDef) stmtNode() {}

// ExprStmt wraps a bare expression statement.
type ExprStmt struct {
	Value ExprIdx
}

func (ExprStmt) stmtNode() {}

// ProcDef is a `fn`/`proc` definition: a name, its parameter names in
// order, and a lowered statement list for its body. The body is a plain
// slice, not arena-allocated — the arena only ever holds expressions
// (spec.md §4.6's arena discipline), and statements are never referenced
// by index.
type ProcDef struct {
	Name   string
	Params []string
	Body   []Stmt
}

func (ProcDef) stmtNode() {}

// Block is a `{ ... }` statement list used as a statement in its own
// right (not only as a procedure body).
type Block struct {
	Stmts []Stmt
}

func (Block) stmtNode() {}

// Assign is `target = value`. Both sides are always valid ExprIdx values
// (Missing when a side failed to parse), matching VariableDef's
// discipline.
type Assign struct {
	Target ExprIdx
	Value  ExprIdx
}

func (Assign) stmtNode() {}

// Return is `return value?`. Value indexes Missing when no expression
// was written.
type Return struct {
	Value ExprIdx
}

func (Return) stmtNode() {}

// Arena is an append-only store of expressions. It is the unit of
// lifetime for every ExprIdx it hands out: an index is never valid
// outside the Arena that produced it, and nothing is ever removed from
// one, so indices never dangle.
type Arena struct {
	exprs []Expr
}

// Get returns the expression at idx. It panics if idx is out of range for
// this Arena; an index taken from a different Arena that happens to be in
// range is not detected and returns whatever expression sits there.
func (a *Arena) Get(idx ExprIdx) Expr {
	return a.exprs[idx]
}

// Len returns the number of expressions interned so far.
func (a *Arena) Len() int { return len(a.exprs) }

func (a *Arena) alloc(e Expr) ExprIdx {
	idx := ExprIdx(len(a.exprs))
	a.exprs = append(a.exprs, e)

	return idx
}

// Lower walks root's statements and lowers each into HIR, interning every
// expression it encounters into a fresh Arena. The returned Stmt slice
// and Arena are a matched pair: every ExprIdx reachable from the
// statements is valid in the returned Arena and no other.
func Lower(root syntax.Root) (*Arena, []Stmt) {
	arena := &Arena{}

	var stmts []Stmt
	for _, s := range root.Stmts() {
		if stmt, ok := lowerStmt(arena, s); ok {
			stmts = append(stmts, stmt)
		}
	}

	return arena, stmts
}

func lowerStmt(arena *Arena, s syntax.Stmt) (Stmt, bool) {
	switch v := s.(type) {
	case syntax.VariableDef:
		name, _ := v.Name()

		return VariableDef{Name: name, Value: lowerOptionalExpr(arena, v.Value)}, true

	case syntax.ProcDef:
		name, _ := v.Name()

		var body []Stmt
		if block, ok := v.Body(); ok {
			body = lowerBlockStmts(arena, block)
		}

		return ProcDef{Name: name, Params: v.Params(), Body: body}, true

	case syntax.Block:
		return Block{Stmts: lowerBlockStmts(arena, v)}, true

	case syntax.Assignment:
		return Assign{
			Target: lowerOptionalExpr(arena, v.Target),
			Value:  lowerOptionalExpr(arena, v.Value),
		}, true

	case syntax.ReturnStmt:
		return Return{Value: lowerOptionalExpr(arena, v.Value)}, true

	case syntax.Expr:
		return ExprStmt{Value: lowerExpr(arena, v)}, true

	default:
		return nil, false
	}
}

func lowerBlockStmts(arena *Arena, b syntax.Block) []Stmt {
	var out []Stmt
	for _, s := range b.Stmts() {
		if stmt, ok := lowerStmt(arena, s); ok {
			out = append(out, stmt)
		}
	}

	return out
}

// lowerOptionalExpr allocates Missing when get reports no expression,
// otherwise lowers the expression it found — the single chokepoint every
// "this operand/value might be absent" call site in lowerStmt/lowerExpr
// goes through.
func lowerOptionalExpr(arena *Arena, get func() (syntax.Expr, bool)) ExprIdx {
	e, ok := get()
	if !ok {
		return arena.alloc(Missing{})
	}

	return lowerExpr(arena, e)
}

func lowerExpr(arena *Arena, e syntax.Expr) ExprIdx {
	switch v := e.(type) {
	case syntax.Literal:
		return arena.alloc(lowerLiteral(v))

	case syntax.VariableRef:
		return arena.alloc(VariableRef{Name: v.Name()})

	case syntax.PrefixExpr:
		return arena.alloc(Unary{Op: Neg, Operand: lowerOptionalExpr(arena, v.Operand)})

	case syntax.BinaryExpr:
		opKind, hasOp := v.Op()

		binOp, recognized := binaryOpFromToken(opKind)
		if !hasOp || !recognized {
			return arena.alloc(Missing{})
		}

		return arena.alloc(Binary{
			Op:  binOp,
			Lhs: lowerOptionalExpr(arena, v.Left),
			Rhs: lowerOptionalExpr(arena, v.Right),
		})

	case syntax.ParenExpr:
		// No HIR node for the parentheses themselves — lower straight
		// through to the inner expression.
		inner, ok := v.Inner()
		if !ok {
			return arena.alloc(Missing{})
		}

		return lowerExpr(arena, inner)

	default:
		return arena.alloc(Missing{})
	}
}

func lowerLiteral(l syntax.Literal) Expr {
	n, err := strconv.ParseUint(l.Text(), 10, 64)
	if err != nil {
		return Literal{N: nil}
	}

	return Literal{N: &n}
}

func binaryOpFromToken(k lexer.Kind) (BinaryOp, bool) {
	switch k {
	case lexer.Plus:
		return Add, true
	case lexer.Minus:
		return Sub, true
	case lexer.Star:
		return Mul, true
	case lexer.Slash:
		return Div, true
	default:
		return 0, false
	}
}
