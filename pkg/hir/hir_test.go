package hir_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nibble-lang/nibble/pkg/green"
	"github.com/nibble-lang/nibble/pkg/hir"
	"github.com/nibble-lang/nibble/pkg/lexer"
	"github.com/nibble-lang/nibble/pkg/parser"
	"github.com/nibble-lang/nibble/pkg/syntax"
)

func lower(t *testing.T, input string) (*hir.Arena, []hir.Stmt) {
	t.Helper()

	tokens := lexer.Lex(input)
	events := parser.New(tokens).Parse()
	tree, _ := green.NewSink(tokens, events).Finish()

	return hir.Lower(syntax.NewRoot(tree))
}

func u64(n uint64) *uint64 { return &n }

func TestLowerBinaryExprPrecedence(t *testing.T) {
	arena, stmts := lower(t, "1+2*3")
	require.Len(t, stmts, 1)

	exprStmt, ok := stmts[0].(hir.ExprStmt)
	require.True(t, ok)

	outer, ok := arena.Get(exprStmt.Value).(hir.Binary)
	require.True(t, ok)
	assert.Equal(t, hir.Add, outer.Op)

	lhs, ok := arena.Get(outer.Lhs).(hir.Literal)
	require.True(t, ok)
	assert.Equal(t, u64(1), lhs.N)

	rhs, ok := arena.Get(outer.Rhs).(hir.Binary)
	require.True(t, ok)
	assert.Equal(t, hir.Mul, rhs.Op)
}

func TestLowerVariableDef(t *testing.T) {
	arena, stmts := lower(t, "let a = 10 / 2")
	require.Len(t, stmts, 1)

	def, ok := stmts[0].(hir.VariableDef)
	require.True(t, ok)
	assert.Equal(t, "a", def.Name)

	value, ok := arena.Get(def.Value).(hir.Binary)
	require.True(t, ok)
	assert.Equal(t, hir.Div, value.Op)
}

func TestLowerUnaryChainsLeftAssociatively(t *testing.T) {
	arena, stmts := lower(t, "-1-2")
	require.Len(t, stmts, 1)

	exprStmt := stmts[0].(hir.ExprStmt)
	outer, ok := arena.Get(exprStmt.Value).(hir.Binary)
	require.True(t, ok)
	assert.Equal(t, hir.Sub, outer.Op)

	lhs, ok := arena.Get(outer.Lhs).(hir.Unary)
	require.True(t, ok)
	assert.Equal(t, hir.Neg, lhs.Op)

	rhs, ok := arena.Get(outer.Rhs).(hir.Literal)
	require.True(t, ok)
	assert.Equal(t, u64(2), rhs.N)
}

func TestLowerParenExprProducesNoExtraNode(t *testing.T) {
	arena, stmts := lower(t, "(1+2)*3")
	require.Len(t, stmts, 1)

	exprStmt := stmts[0].(hir.ExprStmt)
	outer, ok := arena.Get(exprStmt.Value).(hir.Binary)
	require.True(t, ok)
	assert.Equal(t, hir.Mul, outer.Op)

	// The ParenExpr contributes no HIR node of its own: Lhs lowers
	// straight through to the inner "1+2" Binary.
	lhs, ok := arena.Get(outer.Lhs).(hir.Binary)
	require.True(t, ok)
	assert.Equal(t, hir.Add, lhs.Op)
}

func TestLowerCommentOnlyStatementYieldsLiteral(t *testing.T) {
	arena, stmts := lower(t, "# hi\n1")
	require.Len(t, stmts, 1)

	exprStmt := stmts[0].(hir.ExprStmt)
	lit, ok := arena.Get(exprStmt.Value).(hir.Literal)
	require.True(t, ok)
	assert.Equal(t, u64(1), lit.N)
}

func TestLowerMissingIdentifierYieldsEmptyName(t *testing.T) {
	arena, stmts := lower(t, "let = 1")
	require.Len(t, stmts, 1)

	def, ok := stmts[0].(hir.VariableDef)
	require.True(t, ok)
	assert.Equal(t, "", def.Name)

	value, ok := arena.Get(def.Value).(hir.Literal)
	require.True(t, ok)
	assert.Equal(t, u64(1), value.N)
}

func TestLowerVariableDefWithoutValueIsMissing(t *testing.T) {
	arena, stmts := lower(t, "let a =")
	require.Len(t, stmts, 1)

	def := stmts[0].(hir.VariableDef)
	_, ok := arena.Get(def.Value).(hir.Missing)
	assert.True(t, ok)
}

func TestLowerOverflowingLiteralHasNilN(t *testing.T) {
	arena, stmts := lower(t, "99999999999999999999999999")
	require.Len(t, stmts, 1)

	exprStmt := stmts[0].(hir.ExprStmt)
	lit, ok := arena.Get(exprStmt.Value).(hir.Literal)
	require.True(t, ok)
	assert.Nil(t, lit.N)
}

func TestLowerProcDefAndReturn(t *testing.T) {
	_, stmts := lower(t, "fn add(a int, b int) int { return a + b }")
	require.Len(t, stmts, 1)

	proc, ok := stmts[0].(hir.ProcDef)
	require.True(t, ok)
	assert.Equal(t, "add", proc.Name)
	assert.Equal(t, []string{"a", "b"}, proc.Params)
	require.Len(t, proc.Body, 1)

	_, ok = proc.Body[0].(hir.Return)
	assert.True(t, ok)
}

func TestLowerAssignment(t *testing.T) {
	arena, stmts := lower(t, "x = 1")
	require.Len(t, stmts, 1)

	assign, ok := stmts[0].(hir.Assign)
	require.True(t, ok)

	target, ok := arena.Get(assign.Target).(hir.VariableRef)
	require.True(t, ok)
	assert.Equal(t, "x", target.Name)
}

func TestLowerBinaryExprWithMissingRhsIsMissingNotLhs(t *testing.T) {
	arena, stmts := lower(t, "1+")
	require.Len(t, stmts, 1)

	exprStmt := stmts[0].(hir.ExprStmt)
	outer, ok := arena.Get(exprStmt.Value).(hir.Binary)
	require.True(t, ok)
	assert.Equal(t, hir.Add, outer.Op)

	lhs, ok := arena.Get(outer.Lhs).(hir.Literal)
	require.True(t, ok)
	assert.Equal(t, u64(1), lhs.N)

	_, ok = arena.Get(outer.Rhs).(hir.Missing)
	assert.True(t, ok, "missing rhs must lower to Missing, not a duplicate of lhs")
}

func TestLowerAssignmentWithMissingValueIsMissingNotTarget(t *testing.T) {
	arena, stmts := lower(t, "x=")
	require.Len(t, stmts, 1)

	assign, ok := stmts[0].(hir.Assign)
	require.True(t, ok)

	target, ok := arena.Get(assign.Target).(hir.VariableRef)
	require.True(t, ok)
	assert.Equal(t, "x", target.Name)

	_, ok = arena.Get(assign.Value).(hir.Missing)
	assert.True(t, ok, "missing value must lower to Missing, not a duplicate of target")
}

func TestArenaIndicesAreValidAndDistinct(t *testing.T) {
	arena, stmts := lower(t, "1+2*3")
	require.Len(t, stmts, 1)
	assert.True(t, arena.Len() > 0)

	// Every expression the arena holds must be retrievable without panic.
	for i := 0; i < arena.Len(); i++ {
		assert.NotNil(t, arena.Get(hir.ExprIdx(i)))
	}
}
