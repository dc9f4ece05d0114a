package lexer

import "testing"

func TestLexTotalCoverage(t *testing.T) {
	input := "let a = 10 / 2"

	tests := []struct {
		kind Kind
		text string
	}{
		{LetKw, "let"},
		{Whitespace, " "},
		{Identifier, "a"},
		{Whitespace, " "},
		{Equals, "="},
		{Whitespace, " "},
		{Number, "10"},
		{Whitespace, " "},
		{Slash, "/"},
		{Whitespace, " "},
		{Number, "2"},
		{Eof, ""},
	}

	tokens := Lex(input)
	if len(tokens) != len(tests) {
		t.Fatalf("got %d tokens, want %d: %+v", len(tokens), len(tests), tokens)
	}

	for i, want := range tests {
		got := tokens[i]
		if got.Kind != want.kind || got.Text != want.text {
			t.Errorf("token %d: got {%s %q}, want {%s %q}", i, got.Kind, got.Text, want.kind, want.text)
		}
	}
}

func TestLexReconstructsInput(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"# hi\n1",
		"1+2*3",
		"-1-2",
		"(1+2)*3",
		"let = 1",
		"let a = 10 / 2",
		"@",
		"fn proc var return true false",
	}

	for _, in := range inputs {
		var buf []byte
		for _, tok := range Lex(in) {
			buf = append(buf, tok.Text...)
		}
		if string(buf) != in {
			t.Errorf("Lex(%q) did not reconstruct input, got %q", in, string(buf))
		}
	}
}

func TestLexUnrecognizedByteBecomesErrorToken(t *testing.T) {
	tokens := Lex("1@2")
	if len(tokens) != 4 {
		t.Fatalf("got %d tokens, want 4: %+v", len(tokens), tokens)
	}
	if tokens[1].Kind != Error || tokens[1].Text != "@" {
		t.Errorf("got %+v, want an Error token for '@'", tokens[1])
	}
}

func TestLexErrorRunsAreNotMerged(t *testing.T) {
	tokens := Lex("@@")
	if len(tokens) != 3 {
		t.Fatalf("got %d tokens, want 3 (two Error + Eof): %+v", len(tokens), tokens)
	}
	if tokens[0].Kind != Error || tokens[1].Kind != Error {
		t.Errorf("expected two distinct Error tokens, got %+v", tokens[:2])
	}
}

func TestLexRangesAreContiguousAndAbsolute(t *testing.T) {
	tokens := Lex("ab cd")
	prevEnd := 0
	for _, tok := range tokens {
		if tok.Range.Start != prevEnd {
			t.Fatalf("token %+v does not start where previous token ended (%d)", tok, prevEnd)
		}
		prevEnd = tok.Range.End
	}
}

func TestLookupIdentKeywordsAreCaseSensitive(t *testing.T) {
	if LookupIdent("Let") != Identifier {
		t.Errorf("keyword lookup must be byte-exact; 'Let' should not match 'let'")
	}
	if LookupIdent("let") != LetKw {
		t.Errorf("expected 'let' to be recognized as LetKw")
	}
}

func TestIsTrivia(t *testing.T) {
	for _, k := range []Kind{Whitespace, Comment} {
		if !IsTrivia(k) {
			t.Errorf("expected %s to be trivia", k)
		}
	}
	for _, k := range []Kind{Number, Identifier, LetKw, Plus, Eof} {
		if IsTrivia(k) {
			t.Errorf("expected %s to not be trivia", k)
		}
	}
}
