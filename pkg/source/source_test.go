package source

import (
	"testing"

	"github.com/nibble-lang/nibble/pkg/lexer"
)

func TestPeekKindSkipsTrivia(t *testing.T) {
	toks := lexer.Lex("  1")
	s := New(toks)

	kind, ok := s.PeekKind()
	if !ok || kind != lexer.Number {
		t.Fatalf("got (%s, %v), want (Number, true)", kind, ok)
	}
}

func TestNextTokenLeavesTriviaForTheSink(t *testing.T) {
	toks := lexer.Lex("  1")
	s := New(toks)

	tok, ok := s.NextToken()
	if !ok || tok.Kind != lexer.Number {
		t.Fatalf("got (%+v, %v), want a Number token", tok, ok)
	}

	// The whitespace before "1" was never consumed by the cursor; it
	// still exists at its original index in the token slice, which the
	// sink walks independently.
	if toks[0].Kind != lexer.Whitespace {
		t.Fatalf("expected the underlying slice to still start with Whitespace, got %s", toks[0].Kind)
	}
}

func TestPeekKindAtEOF(t *testing.T) {
	s := New(lexer.Lex(""))
	if _, ok := s.PeekKind(); ok {
		t.Fatalf("PeekKind on empty input unexpectedly succeeded")
	}
}

func TestLastTokenRange(t *testing.T) {
	toks := lexer.Lex("12")
	s := New(toks)

	r, ok := s.LastTokenRange()
	if !ok {
		t.Fatalf("expected a last token range")
	}
	if r != toks[len(toks)-1].Range {
		t.Errorf("got %+v, want %+v", r, toks[len(toks)-1].Range)
	}
}
