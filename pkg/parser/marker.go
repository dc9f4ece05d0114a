package parser

// Marker reserves a slot in the parser's event tape for a node whose kind
// isn't known yet — the parser opens one before parsing an atom, and only
// decides what kind of node it turned out to be once parsing finishes
// (Literal? the left operand of a BinaryExpr? etc).
type Marker struct {
	pos int
}

// CompletedMarker is what a Marker becomes once its kind is known. It can
// still be preceded: Precede lets an already-completed subtree become the
// left child of a node discovered afterward, without moving any events.
type CompletedMarker struct {
	pos  int
	kind TokenKind
}

func (p *Parser) startMarker() Marker {
	pos := len(p.events)
	p.events = append(p.events, Event{Kind: EventPlaceholder})

	return Marker{pos: pos}
}

// Complete overwrites m's placeholder with a StartNode event of kind,
// pushes a matching FinishNode, and returns a handle that can later be
// preceded by an enclosing node.
func (m Marker) Complete(p *Parser, kind TokenKind) CompletedMarker {
	p.events[m.pos] = Event{Kind: EventStartNode, NodeKind: kind}
	p.events = append(p.events, Event{Kind: EventFinishNode})

	return CompletedMarker{pos: m.pos, kind: kind}
}

// Abandon erases m's reserved slot. Used when an expression atom fails to
// parse: the marker was opened speculatively and nothing should be
// emitted for it.
func (m Marker) Abandon(p *Parser) {
	if m.pos == len(p.events)-1 {
		p.events = p.events[:m.pos]
	}
	// If other events were pushed after m (shouldn't generally happen
	// for an abandoned atom marker, since nothing was parsed under it),
	// leave the Placeholder in place; the sink skips unreplaced
	// placeholders harmlessly.
}

// Precede creates a new marker that, once completed, becomes cm's parent:
// cm's already-emitted StartNode event gets a forward-parent pointer to
// the new marker's StartNode event. This is how the Pratt loop turns a
// completed Literal into the left child of a BinaryExpr discovered only
// after the operator token is seen, without rewinding the event tape.
func (cm CompletedMarker) Precede(p *Parser) Marker {
	newMarker := p.startMarker()

	if start, ok := p.events[cm.pos].asStartNode(); ok {
		delta := newMarker.pos - cm.pos
		start.ForwardParentDelta = &delta
		p.events[cm.pos] = *start
	}

	return newMarker
}

// Kind returns the syntax kind the marker was completed with.
func (cm CompletedMarker) Kind() TokenKind { return cm.kind }

func (e Event) asStartNode() (*Event, bool) {
	if e.Kind != EventStartNode {
		return nil, false
	}
	cp := e

	return &cp, true
}
