package green

import (
	"github.com/nibble-lang/nibble/internal/parseerr"
	"github.com/nibble-lang/nibble/pkg/lexer"
	"github.com/nibble-lang/nibble/pkg/parser"
)

// Sink replays a parser event tape against the original token slice to
// materialize a green tree, following original_source's
// crates/parser/src/sink.rs algorithm: a single forward pass in which
// every event is consumed exactly once (overwritten by a Placeholder as
// it's inspected, standing in for Rust's mem::replace), with trivia
// interleaved after each step.
type Sink struct {
	tokens  []lexer.Token
	cursor  int
	events  []parser.Event
	builder *Builder
	errors  []parseerr.ParseError
}

// NewSink pairs a token slice with the event tape pkg/parser produced
// from it.
func NewSink(tokens []lexer.Token, events []parser.Event) *Sink {
	return &Sink{
		tokens:  tokens,
		events:  events,
		builder: NewBuilder(),
	}
}

// Finish runs the sink algorithm to completion and returns the resulting
// tree together with every ParseError collected along the way, in the
// order they were raised.
func (s *Sink) Finish() (*Node, []parseerr.ParseError) {
	for idx := range s.events {
		ev := s.events[idx]
		s.events[idx] = parser.Event{} // zero value is EventPlaceholder; never reprocessed.

		switch ev.Kind {
		case parser.EventStartNode:
			s.startNodeChain(idx, ev)
		case parser.EventAddToken:
			s.bumpToken()
		case parser.EventFinishNode:
			s.builder.FinishNode()
		case parser.EventError:
			s.errors = append(s.errors, ev.Err)
		case parser.EventPlaceholder:
			// Either an already-resolved forward-parent hop (handled by
			// startNodeChain when it was first discovered) or an
			// abandoned marker's leftover slot. Either way, nothing to
			// emit.
		}

		s.eatTrivia()
	}

	root, err := s.builder.Finish()
	if err != nil {
		// A well-formed event tape — the only kind pkg/parser's marker
		// discipline can produce — always balances; see
		// pkg/parser.eventsBalanced in its tests.
		panic(err)
	}

	return root, s.errors
}

// startNodeChain handles one StartNode event, following its
// forward-parent chain (if any) to collect every kind that should open
// here, then opens them outermost-first.
func (s *Sink) startNodeChain(idx int, first parser.Event) {
	kinds := []Kind{first.NodeKind}
	fp := first.ForwardParentDelta

	for fp != nil {
		idx += *fp

		hopped := s.events[idx]
		s.events[idx] = parser.Event{} // consume the hop target too.

		if hopped.Kind != parser.EventStartNode {
			panic("green: forward-parent chain did not land on a StartNode event")
		}

		kinds = append(kinds, hopped.NodeKind)
		fp = hopped.ForwardParentDelta
	}

	for i := len(kinds) - 1; i >= 0; i-- {
		s.builder.StartNode(kinds[i])
	}
}

func (s *Sink) bumpToken() {
	if s.cursor >= len(s.tokens) {
		panic("green: AddToken event but no tokens remain")
	}

	tok := s.tokens[s.cursor]
	s.builder.Token(tok.Kind, tok.Text)
	s.cursor++
}

// eatTrivia emits every trivia token at the cursor as a leaf of whatever
// node is currently open, so whitespace and comments land next to the
// non-trivia token they were adjacent to in the source rather than being
// buffered until some arbitrary later point.
func (s *Sink) eatTrivia() {
	for s.cursor < len(s.tokens) && lexer.IsTrivia(s.tokens[s.cursor].Kind) {
		s.bumpToken()
	}
}
