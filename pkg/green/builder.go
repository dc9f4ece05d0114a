package green

import (
	"fmt"
	"strings"
)

// Builder assembles a green tree bottom-up from a stack of open nodes,
// the way rowan.GreenNodeBuilder does, with one addition: every finished
// Token and Node is hash-consed through a pair of caches keyed on content
// (kind+text for tokens, kind+child-identity-sequence for nodes), so two
// structurally identical subtrees — however many times they recur in one
// parse — end up sharing a single allocation. Sink is the only caller;
// pkg/parser never touches this type directly.
type Builder struct {
	stack []*building

	tokenCache map[string]*Token
	nodeCache  map[string]*Node

	root *Node
}

type building struct {
	kind     Kind
	children []Element
}

// NewBuilder returns an empty Builder ready for a sequence of
// StartNode/Token/FinishNode calls.
func NewBuilder() *Builder {
	return &Builder{
		tokenCache: make(map[string]*Token),
		nodeCache:  make(map[string]*Node),
	}
}

// StartNode opens a new node of kind as a child of whatever node is
// currently open (or as the prospective root, if none is).
func (b *Builder) StartNode(kind Kind) {
	b.stack = append(b.stack, &building{kind: kind})
}

// Token appends an interned leaf token to the currently open node.
func (b *Builder) Token(kind Kind, text string) {
	key := tokenKey(kind, text)

	tok, ok := b.tokenCache[key]
	if !ok {
		tok = &Token{Kind: kind, Text: text}
		b.tokenCache[key] = tok
	}

	b.attach(tok)
}

// FinishNode closes the most recently opened node, interns it, and
// attaches it to its parent — or, if no node remains open, records it as
// the tree's root.
func (b *Builder) FinishNode() {
	if len(b.stack) == 0 {
		panic("green: FinishNode called with no open node")
	}

	top := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]

	length := 0
	for _, c := range top.children {
		length += c.Len()
	}

	key := nodeKey(top.kind, top.children)

	node, ok := b.nodeCache[key]
	if !ok {
		node = &Node{Kind: top.kind, Children: top.children, length: length}
		b.nodeCache[key] = node
	}

	if len(b.stack) == 0 {
		b.root = node

		return
	}

	b.attach(node)
}

func (b *Builder) attach(e Element) {
	if len(b.stack) == 0 {
		panic("green: Token emitted with no open node to attach it to")
	}

	top := b.stack[len(b.stack)-1]
	top.children = append(top.children, e)
}

// Finish returns the completed tree. It is an error to call Finish with
// any node still open, or before any node has been finished at all —
// both indicate an unbalanced event tape, which a well-formed parser
// never produces (see pkg/parser's marker discipline).
func (b *Builder) Finish() (*Node, error) {
	if len(b.stack) != 0 {
		return nil, fmt.Errorf("green: %d node(s) left open at finish", len(b.stack))
	}
	if b.root == nil {
		return nil, fmt.Errorf("green: no root node was ever finished")
	}

	return b.root, nil
}

func tokenKey(kind Kind, text string) string {
	return fmt.Sprintf("t%d:%s", kind, text)
}

// nodeKey derives a cache key from a node's kind and the identities of
// its already-interned children. Since every child reaching here is
// itself either an interned *Token or *Node, pointer equality is content
// equality — two nodes with the same kind and the same child pointers in
// the same order are structurally identical.
func nodeKey(kind Kind, children []Element) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "n%d:%d:", kind, len(children))
	for _, c := range children {
		fmt.Fprintf(&sb, "%p,", c)
	}

	return sb.String()
}
