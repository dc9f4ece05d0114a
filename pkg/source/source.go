// Package source wraps a token slice in a cursor that exposes non-trivia
// lookahead to the parser while leaving trivia in the stream for the sink
// to consume. Grounded on original_source's parser/source.rs Source
// (next_token/peek_kind skipping trivia internally, last_token_range for
// EOF-position errors).
package source

import "github.com/nibble-lang/nibble/pkg/lexer"

// Source is a read cursor over a token slice. It never mutates the slice;
// Cursor only moves forward.
type Source struct {
	tokens []lexer.Token
	cursor int
}

// New wraps tokens in a Source positioned before the first token.
func New(tokens []lexer.Token) *Source {
	return &Source{tokens: tokens}
}

// PeekKind returns the kind of the next non-trivia token, or false at end
// of input (past the last token, or at the lexer's Eof sentinel). It moves
// the cursor past any trivia, which NextToken would skip anyway; the
// trivia tokens themselves stay in the slice for the sink.
func (s *Source) PeekKind() (lexer.Kind, bool) {
	s.skipTrivia()

	if s.atEnd() {
		return 0, false
	}

	return s.tokens[s.cursor].Kind, true
}

// NextToken returns the next non-trivia token and advances the cursor
// past it. Trivia encountered along the way is left in the token slice
// for the sink to pick up later, in the same document order.
func (s *Source) NextToken() (*lexer.Token, bool) {
	s.skipTrivia()

	if s.atEnd() {
		return nil, false
	}

	tok := &s.tokens[s.cursor]
	s.cursor++

	return tok, true
}

// PeekRange returns the byte range of the next non-trivia token.
func (s *Source) PeekRange() (lexer.Range, bool) {
	s.skipTrivia()

	if s.atEnd() {
		return lexer.Range{}, false
	}

	return s.tokens[s.cursor].Range, true
}

// LastTokenRange returns the byte range of the final token in the
// underlying slice (typically the Eof sentinel), used when a caller needs
// a range to attach an error to at end of input.
func (s *Source) LastTokenRange() (lexer.Range, bool) {
	if len(s.tokens) == 0 {
		return lexer.Range{}, false
	}

	return s.tokens[len(s.tokens)-1].Range, true
}

// atEnd reports whether the cursor is past the last token or on the Eof
// sentinel, which marks end of input rather than a consumable token.
func (s *Source) atEnd() bool {
	return s.cursor >= len(s.tokens) || s.tokens[s.cursor].Kind == lexer.Eof
}

func (s *Source) skipTrivia() {
	for s.cursor < len(s.tokens) && lexer.IsTrivia(s.tokens[s.cursor].Kind) {
		s.cursor++
	}
}
