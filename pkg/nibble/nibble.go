// Package nibble is the module's public facade: it wires the lexer,
// parser, and sink together behind a single Parse entry point and
// exposes the stable debug-tree dump format spec.md §8 specifies for
// tests. Grounded on the teacher's top-level package (the thing
// main.go imports) being the one place that sequences
// lexer→parser→eval; here the pipeline stops one stage earlier, at the
// green tree and its typed view, since evaluation is out of scope.
package nibble

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/nibble-lang/nibble/internal/parseerr"
	"github.com/nibble-lang/nibble/pkg/green"
	"github.com/nibble-lang/nibble/pkg/lexer"
	"github.com/nibble-lang/nibble/pkg/parser"
	"github.com/nibble-lang/nibble/pkg/syntax"
)

// ParseResult is everything Parse produces: the green tree, the
// collected parse errors (always in byte-range order), and a Root view
// for callers that want typed CST access or HIR lowering.
type ParseResult struct {
	Tree   *green.Node
	Root   syntax.Root
	Errors []parseerr.ParseError
}

// Parse lexes, parses, and sinks input into a ParseResult. It never
// returns an error itself — a malformed input still produces a tree,
// with the malformation reflected in Errors (spec.md §7: parsing never
// short-circuits).
func Parse(input []byte) ParseResult {
	text := string(input)

	tokens := lexer.Lex(text)
	slog.Debug("nibble: lexed", "tokens", len(tokens), "bytes", len(text))

	events := parser.New(tokens).Parse()
	tree, errs := green.NewSink(tokens, events).Finish()
	slog.Debug("nibble: parsed", "errors", len(errs))

	return ParseResult{
		Tree:   tree,
		Root:   syntax.NewRoot(tree),
		Errors: errs,
	}
}

// DebugTree renders r.Tree in the stable format spec.md §8 fixes for
// tests: preorder, two-space indentation per depth, "Kind@start..end"
// for nodes, and `Kind@start..end "text"` for tokens, with no trailing
// newline.
func (r ParseResult) DebugTree() string {
	var sb strings.Builder

	green.Walk(r.Tree, func(p green.Positioned, depth int) {
		if sb.Len() > 0 {
			sb.WriteByte('\n')
		}

		sb.WriteString(strings.Repeat("  ", depth))

		switch v := p.Element.(type) {
		case *green.Token:
			fmt.Fprintf(&sb, "%s@%d..%d %s", v.Kind, p.Range.Start, p.Range.End, strconv.Quote(v.Text))
		case *green.Node:
			fmt.Fprintf(&sb, "%s@%d..%d", v.Kind, p.Range.Start, p.Range.End)
		}
	})

	return sb.String()
}
