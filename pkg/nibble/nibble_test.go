package nibble_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nibble-lang/nibble/pkg/nibble"
)

func TestParseNothingDebugTree(t *testing.T) {
	result := nibble.Parse([]byte(""))
	assert.Equal(t, "Root@0..0", result.DebugTree())
	assert.Empty(t, result.Errors)
}

func TestParseWhitespaceDebugTree(t *testing.T) {
	result := nibble.Parse([]byte("   "))
	assert.Equal(t, "Root@0..3\n  Whitespace@0..3 \"   \"", result.DebugTree())
}

func TestParseCommentDebugTree(t *testing.T) {
	result := nibble.Parse([]byte("# hi\n1"))

	expected := "Root@0..6\n" +
		"  Comment@0..4 \"# hi\"\n" +
		"  Whitespace@4..5 \"\\n\"\n" +
		"  Literal@5..6\n" +
		"    Number@5..6 \"1\""
	assert.Equal(t, expected, result.DebugTree())
	assert.Empty(t, result.Errors)
}

func TestParseScenarioTablePreservesBytesAndErrorCounts(t *testing.T) {
	cases := []struct {
		input      string
		errorCount int
	}{
		{"1+2*3", 0},
		{"let a = 10 / 2", 0},
		{"-1-2", 0},
		{"(1+2)*3", 0},
		{"# hi\n1", 0},
		{"let = 1", 1},
	}

	for _, c := range cases {
		result := nibble.Parse([]byte(c.input))
		assert.Equal(t, c.input, result.Tree.Text(), "input %q", c.input)
		assert.Len(t, result.Errors, c.errorCount, "input %q", c.input)
	}
}

func TestParseIsPure(t *testing.T) {
	input := "1+2*3-let a = (4/2)"

	a := nibble.Parse([]byte(input))
	b := nibble.Parse([]byte(input))

	assert.Equal(t, a.DebugTree(), b.DebugTree())
	assert.Equal(t, len(a.Errors), len(b.Errors))
}

func TestRootStmtsMatchesExpressionCount(t *testing.T) {
	result := nibble.Parse([]byte("let a = 1\na\nlet b = 2"))
	require.Empty(t, result.Errors)
	assert.Len(t, result.Root.Stmts(), 3)
}
