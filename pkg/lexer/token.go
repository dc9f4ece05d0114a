package lexer

import (
	"fmt"
)

// Kind represents the classification of lexical tokens in the language.
// Each kind corresponds to a specific syntactic element that the parser,
// sink, and CST views can recognize. The set is closed: new kinds are
// added here and nowhere else needs a parallel enumeration.
type Kind int

// Token kind constants. The iota enumeration assigns a unique integer to
// each kind. Groups mirror the grammar: trivia first, then
// literals/identifiers, keywords, punctuation, and finally the synthetic
// non-terminals that appear on green tree nodes (Error is the one of them
// that Lex also puts on tokens, for unrecognized bytes).
const (
	// Trivia - syntactically insignificant but preserved for losslessness.
	Whitespace Kind = iota
	Comment

	// Literals and identifiers.
	Number
	Identifier

	// Keywords. ProcKw/VarKw/ReturnKw/TrueKw/FalseKw back the optional
	// procedure/block extension (see pkg/parser's grammar_proc.go);
	// LetKw/FnKw are the core grammar's only keywords.
	LetKw
	FnKw
	ProcKw
	VarKw
	ReturnKw
	TrueKw
	FalseKw

	// Punctuation.
	Plus
	Minus
	Star
	Slash
	Equals
	LParen
	RParen
	LBrace
	RBrace
	Comma
	Colon
	ColonEqual

	// Synthetic non-terminals. The sink assigns them to green tree nodes;
	// apart from Error, which Lex uses for one-byte unrecognized-input
	// tokens, they never appear on a Token produced by Lex.
	Root
	BinaryExpr
	PrefixExpr
	ParenExpr
	VariableRef
	Literal
	VariableDef
	Error
	ProcDef
	Block
	Assignment
	ReturnStmt
	Param
	ParamList

	// Sentinel.
	Eof
)

var kindNames = map[Kind]string{
	Whitespace:  "Whitespace",
	Comment:     "Comment",
	Number:      "Number",
	Identifier:  "Identifier",
	LetKw:       "LetKw",
	FnKw:        "FnKw",
	ProcKw:      "ProcKw",
	VarKw:       "VarKw",
	ReturnKw:    "ReturnKw",
	TrueKw:      "TrueKw",
	FalseKw:     "FalseKw",
	Plus:        "Plus",
	Minus:       "Minus",
	Star:        "Star",
	Slash:       "Slash",
	Equals:      "Equals",
	LParen:      "LParen",
	RParen:      "RParen",
	LBrace:      "LBrace",
	RBrace:      "RBrace",
	Comma:       "Comma",
	Colon:       "Colon",
	ColonEqual:  "ColonEqual",
	Root:        "Root",
	BinaryExpr:  "BinaryExpr",
	PrefixExpr:  "PrefixExpr",
	ParenExpr:   "ParenExpr",
	VariableRef: "VariableRef",
	Literal:     "Literal",
	VariableDef: "VariableDef",
	Error:       "Error",
	ProcDef:     "ProcDef",
	Block:       "Block",
	Assignment:  "Assignment",
	ReturnStmt:  "ReturnStmt",
	Param:       "Param",
	ParamList:   "ParamList",
	Eof:         "Eof",
}

// String implements fmt.Stringer, used throughout error messages and the
// debug tree dump.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsTrivia reports whether a kind is Whitespace or Comment. Trivia tokens
// carry no syntactic weight but must still be preserved in the green tree
// for losslessness.
func IsTrivia(k Kind) bool {
	return k == Whitespace || k == Comment
}

// keywords maps reserved words to their keyword kind. Anything not in this
// table that otherwise matches an identifier is an Identifier token.
var keywords = map[string]Kind{
	"let":    LetKw,
	"fn":     FnKw,
	"proc":   ProcKw,
	"var":    VarKw,
	"return": ReturnKw,
	"true":   TrueKw,
	"false":  FalseKw,
}

// LookupIdent reports the keyword kind for ident, or Identifier if ident
// is not reserved.
func LookupIdent(ident string) Kind {
	if kind, ok := keywords[ident]; ok {
		return kind
	}

	return Identifier
}

// Range is a half-open byte range [Start, End) into the original input.
type Range struct {
	Start int
	End   int
}

// Len returns the number of bytes spanned by the range.
func (r Range) Len() int { return r.End - r.Start }

// Token is a single lexical unit: a kind, the exact source bytes it
// covers, and its absolute byte range. Token borrows its Text from the
// input slice passed to Lex; it does not copy.
type Token struct {
	Kind  Kind
	Text  string
	Range Range
}

func isLetter(ch byte) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isIdentChar(ch byte) bool {
	return isLetter(ch) || isDigit(ch)
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n'
}
