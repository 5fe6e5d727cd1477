// Package lexer turns Iris SDL source text into a doubly-linked stream of
// tokens, the way the teacher's internal/lexer package turns TypeMUX IDL
// text into a stream of Tokens (internal/lexer/lexer.go) — generalized here
// to runes, to the doubly-linked-list token contract spec.md §4.1 requires,
// and to Iris's richer literal grammar (block strings, unicode escapes).
package lexer

import "github.com/iris-graphql/iris/internal/source"

// Kind identifies what a Token represents.
type Kind int

const (
	SOF Kind = iota
	EOF
	NAME
	INT
	FLOAT
	STRING
	BLOCK_STRING
	COMMENT

	BANG      // !
	DOLLAR    // $
	AMP       // &
	PAREN_L   // (
	PAREN_R   // )
	SPREAD    // ...
	COLON     // :
	EQUALS    // =
	AT        // @
	BRACKET_L // [
	BRACKET_R // ]
	BRACE_L   // {
	PIPE      // |
	BRACE_R   // }
	QUESTION  // ?
)

var kindNames = map[Kind]string{
	SOF: "<SOF>", EOF: "<EOF>",
	NAME: "Name", INT: "Int", FLOAT: "Float", STRING: "String", BLOCK_STRING: "BlockString",
	COMMENT: "Comment",
	BANG: "!", DOLLAR: "$", AMP: "&", PAREN_L: "(", PAREN_R: ")", SPREAD: "...",
	COLON: ":", EQUALS: "=", AT: "@", BRACKET_L: "[", BRACKET_R: "]",
	BRACE_L: "{", PIPE: "|", BRACE_R: "}", QUESTION: "?",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "<unknown>"
}

// Token is a node in the doubly-linked token list spanning an entire
// source. advance() skips COMMENT tokens but they remain reachable through
// Prev, matching spec.md §3's Token data model exactly.
type Token struct {
	Kind   Kind
	Start  int // byte offset, inclusive
	End    int // byte offset, exclusive
	Line   int
	Column int
	Value  string // populated for NAME/INT/FLOAT/STRING/BLOCK_STRING/COMMENT

	Prev *Token
	Next *Token

	source *source.Source
}

// Position and Src let Token satisfy internal/ierror.Locatable so errors
// can point directly at a token without internal/ierror depending on this
// package.
func (t *Token) Position() int { return t.Start }

// Src returns the source this token was lexed from.
func (t *Token) Src() *source.Source { return t.source }

// Desc renders the token the way parser error messages expect: the kind
// name, or the quoted literal value for NAME/INT/FLOAT/STRING.
func (t *Token) Desc() string {
	switch t.Kind {
	case EOF:
		return "<EOF>"
	case NAME, INT, FLOAT:
		return t.Kind.String() + " \"" + t.Value + "\""
	case STRING, BLOCK_STRING:
		return "String \"" + t.Value + "\""
	default:
		return "\"" + t.Kind.String() + "\""
	}
}
