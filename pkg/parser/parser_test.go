package parser

import (
	"testing"

	"github.com/nibble-lang/nibble/pkg/lexer"
)

// eventsBalanced walks events the way the sink will and checks that every
// StartNode (after following forward-parent hops) is matched by a
// FinishNode, with nothing left open at the end.
func eventsBalanced(t *testing.T, events []Event) {
	t.Helper()

	depth := 0
	for _, e := range events {
		switch e.Kind {
		case EventStartNode:
			depth++
		case EventFinishNode:
			depth--
			if depth < 0 {
				t.Fatalf("FinishNode with no matching StartNode")
			}
		}
	}
	if depth != 0 {
		t.Fatalf("events left %d node(s) unclosed", depth)
	}
}

func parse(input string) []Event {
	return New(lexer.Lex(input)).Parse()
}

func TestParseBalancedEvents(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"# hi\n1",
		"1+2*3",
		"let a = 10 / 2",
		"-1-2",
		"(1+2)*3",
		"let = 1",
		"fn add(a int, b int) int { return a + b }",
		"x = 1",
	}

	for _, in := range inputs {
		eventsBalanced(t, parse(in))
	}
}

func TestParseEveryNonTriviaTokenGetsOneAddToken(t *testing.T) {
	input := "1+2*3"
	events := parse(input)

	var addTokenCount int
	for _, e := range events {
		if e.Kind == EventAddToken {
			addTokenCount++
		}
	}

	var nonTrivia int
	for _, tok := range lexer.Lex(input) {
		if !lexer.IsTrivia(tok.Kind) && tok.Kind != lexer.Eof {
			nonTrivia++
		}
	}

	if addTokenCount != nonTrivia {
		t.Errorf("got %d AddToken events, want %d (one per non-trivia token)", addTokenCount, nonTrivia)
	}
}

func TestParseDoesNotPanicOnGarbageInput(t *testing.T) {
	inputs := []string{"@@@", ")))", "+++", "(((((", "let let let"}
	for _, in := range inputs {
		func() {
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("Parse(%q) panicked: %v", in, r)
				}
			}()
			eventsBalanced(t, parse(in))
		}()
	}
}
