// Package green implements the lossless, immutable syntax tree that
// pkg/parser's event tape gets replayed into. Nodes and tokens only know
// their own byte length, never an absolute position — exactly like
// rowan's green layer, whose position-free, hash-consed nodes are the
// reference design named in original_source's sink.rs. Absolute byte
// ranges are derived on demand by walking the tree and accumulating
// sibling lengths (see Walk), which is what lets structurally identical
// subtrees at different offsets still share one *Node/*Token.
package green

import (
	"strings"

	"github.com/nibble-lang/nibble/pkg/lexer"
)

// Kind reuses the lexer's closed token-kind enumeration: green tree nodes
// and tokens share one kind space, as spec.md's data model requires.
type Kind = lexer.Kind

// Element is a node or a token in the green tree.
type Element interface {
	// Len is the number of bytes this element spans.
	Len() int

	isElement()
}

// Token is a leaf: a kind plus the exact source text it covers. Two
// tokens with the same kind and text are always the same *Token value
// (see Builder), since neither carries a position.
type Token struct {
	Kind Kind
	Text string
}

func (t *Token) Len() int  { return len(t.Text) }
func (*Token) isElement()  {}

// Node is an interior tree element: a kind plus an ordered list of
// children (which may themselves be Nodes or Tokens, including trivia
// tokens interleaved at their original positions).
type Node struct {
	Kind     Kind
	Children []Element
	length   int
}

func (n *Node) Len() int { return n.length }
func (*Node) isElement() {}

// Text reconstructs the exact source bytes spanned by n by concatenating
// every descendant token's text in document order. For a root node this
// reproduces the original input byte-for-byte — the module's central
// losslessness invariant.
func (n *Node) Text() string {
	var sb strings.Builder
	writeText(n, &sb)

	return sb.String()
}

func writeText(e Element, sb *strings.Builder) {
	switch v := e.(type) {
	case *Token:
		sb.WriteString(v.Text)
	case *Node:
		for _, c := range v.Children {
			writeText(c, sb)
		}
	}
}

// Positioned pairs an Element with the absolute byte range it occupies,
// as computed by Walk.
type Positioned struct {
	Element Element
	Range   lexer.Range
}

// Walk visits root and every descendant in preorder, calling visit with
// each element's absolute byte range (computed by accumulating sibling
// lengths from offset 0) and its depth below root (root itself is depth
// 0).
func Walk(root Element, visit func(Positioned, int)) {
	walk(root, 0, 0, visit)
}

func walk(e Element, start int, depth int, visit func(Positioned, int)) {
	rng := lexer.Range{Start: start, End: start + e.Len()}
	visit(Positioned{Element: e, Range: rng}, depth)

	node, ok := e.(*Node)
	if !ok {
		return
	}

	childStart := start
	for _, c := range node.Children {
		walk(c, childStart, depth+1, visit)
		childStart += c.Len()
	}
}
