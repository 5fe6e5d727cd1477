// Package ierror implements Iris's structured error type: a message plus
// zero or more source locations, with source-excerpt rendering deferred
// until the error is actually displayed. This mirrors the teacher's
// parser.Errors()/PrintErrors() split (internal/parser/parser.go): errors
// are collected eagerly but formatted lazily.
package ierror

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/iris-graphql/iris/internal/source"
)

// Locatable is satisfied by any AST node that carries a location, so this
// package never needs to import internal/ast (which would be a cycle).
type Locatable interface {
	Position() int
	Src() *source.Source
}

// Error is Iris's single structured error type, used for both the "fatal"
// (lex/parse/build) and "accumulated" (validation) channels described in
// spec.md §7.
type Error struct {
	Message string
	Nodes   []Locatable
	// Err is an optional wrapped cause, reachable through Unwrap. Line and
	// column pairs are not stored; Locations() resolves them from Nodes on
	// each call.
	Err error
}

// New builds an Error with no location information (schema-construction
// errors such as "unknown type" that are not anchored to a single AST node
// still often carry one, via WithNode).
func New(format string, args ...any) *Error {
	return &Error{Message: fmt.Sprintf(format, args...)}
}

// WithNode attaches node(s) that pinpoint where the error occurred.
func (e *Error) WithNode(nodes ...Locatable) *Error {
	e.Nodes = append(e.Nodes, nodes...)
	return e
}

// Wrap records an underlying cause, reachable through Unwrap.
func (e *Error) Wrap(err error) *Error {
	e.Err = err
	return e
}

func (e *Error) Unwrap() error { return e.Err }

// Locations resolves each attached node's location on demand.
func (e *Error) Locations() []source.Location {
	locs := make([]source.Location, 0, len(e.Nodes))
	for _, n := range e.Nodes {
		if n == nil || n.Src() == nil {
			continue
		}
		locs = append(locs, n.Src().LocationFromPosition(n.Position()))
	}
	return locs
}

// Error implements the standard error interface. Rendering (including the
// source excerpt) happens here, not at construction time.
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)

	for i, n := range e.Nodes {
		if n == nil || n.Src() == nil {
			continue
		}
		src := n.Src()
		loc := src.LocationFromPosition(n.Position())
		b.WriteString("\n\n")
		fmt.Fprintf(&b, "%s:%d:%d\n", src.Name, loc.Line, loc.Column)
		b.WriteString(excerpt(src, loc))
		if i < len(e.Nodes)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// Pretty renders the same message as Error but colorizes the "Syntax
// Error"/location header when the terminal supports it, grounded in
// sunholo/ailang's use of github.com/fatih/color for CLI diagnostics.
func (e *Error) Pretty() string {
	red := color.New(color.FgRed, color.Bold)
	var b strings.Builder
	b.WriteString(red.Sprint(e.Message))
	for _, n := range e.Nodes {
		if n == nil || n.Src() == nil {
			continue
		}
		src := n.Src()
		loc := src.LocationFromPosition(n.Position())
		b.WriteString("\n\n")
		fmt.Fprintf(&b, "%s\n", color.CyanString("%s:%d:%d", src.Name, loc.Line, loc.Column))
		b.WriteString(excerpt(src, loc))
	}
	return b.String()
}

// excerpt renders the offending line plus one line of context on either
// side, with a caret under the reported column, gutter-aligned on the
// widest line number shown — the rendering spec.md §4.1 requires.
func excerpt(src *source.Source, loc source.Location) string {
	first := loc.Line - 1
	if first < 1 {
		first = 1
	}
	last := loc.Line + 1
	if last > src.LineCount() {
		last = src.LineCount()
	}

	gutter := len(strconv.Itoa(last))
	var b strings.Builder
	for n := first; n <= last; n++ {
		text := src.Line(n)
		fmt.Fprintf(&b, "%*d | %s\n", gutter, n, text)
		if n == loc.Line {
			pad := strings.Repeat(" ", gutter) + " | " + strings.Repeat(" ", max0(loc.Column-1))
			b.WriteString(pad)
			b.WriteString("^\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func max0(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

// List is an accumulated error channel: validation rules append to it and
// never throw, per spec.md §7's "accumulated" policy.
type List []*Error

func (l List) Error() string {
	parts := make([]string, len(l))
	for i, e := range l {
		parts[i] = e.Error()
	}
	return strings.Join(parts, "\n\n")
}

// jsonError is the wire shape spec.md §4.7 describes as toJSON(): just the
// message and resolved locations, never the AST nodes or source.
type jsonError struct {
	Message   string             `json:"message"`
	Locations []source.Location  `json:"locations,omitempty"`
}

// MarshalJSON implements spec.md's toJSON(): { message, locations }.
func (e *Error) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonError{Message: e.Message, Locations: e.Locations()})
}

// Syntaxf builds a lexer/parser fatal error using the "Syntax Error: ..."
// prefix spec.md §4.1 mandates.
func Syntaxf(format string, args ...any) *Error {
	return New("Syntax Error: "+format, args...)
}
