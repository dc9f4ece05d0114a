package parser

import (
	"github.com/nibble-lang/nibble/internal/parseerr"
	"github.com/nibble-lang/nibble/pkg/lexer"
)

// EventKind discriminates the Event tagged union. Go has no native sum
// type, so Event carries a kind tag plus whichever fields that kind uses
// — the same shape original_source's parser crate expresses as a Rust
// enum (StartNode/AddToken/FinishNode/Placeholder/Error).
type EventKind int

const (
	// EventPlaceholder reserves a slot that a later StartNode overwrites
	// (see Marker.Complete). A Placeholder that survives to the sink
	// unreplaced is simply skipped — this is also what abandoned markers
	// and already-resolved forward-parent hops decay into.
	EventPlaceholder EventKind = iota
	// EventStartNode opens a node of Kind, optionally deferring to a
	// later StartNode event (ForwardParentDelta) which should be opened
	// first so this one's subtree becomes its child.
	EventStartNode
	// EventAddToken consumes the next non-trivia token from the cursor
	// and emits it as a leaf.
	EventAddToken
	// EventFinishNode closes the most recently opened node.
	EventFinishNode
	// EventError records a parse error without emitting a tree node.
	EventError
)

// Event is one entry in the parser's output tape. Only the fields
// relevant to Kind are meaningful; see the EventKind constants.
type Event struct {
	Kind EventKind

	// EventStartNode fields.
	NodeKind TokenKind

	// ForwardParentDelta, when non-nil, is the forward index delta (in
	// events, always > 0) to a later StartNode event that should be
	// opened before this one. It encodes "this already-completed
	// subtree becomes the child of a node discovered afterward" without
	// rewinding or re-emitting any events — see Marker.Precede.
	ForwardParentDelta *int

	// EventError field.
	Err parseerr.ParseError
}

// TokenKind is an alias so this package can talk about "the kind of a
// node or token" without importing lexer.Kind under two names; green
// tree nodes and lexer tokens share the same closed Kind enumeration
// (spec.md §3: synthetic kinds only ever appear on nodes).
type TokenKind = lexer.Kind
