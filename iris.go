// Package iris provides a public API for using Iris as a Go library. Iris
// is a GraphQL-family schema definition language: a single SDL document
// declares data (input/serializable) and resolver (output/queryable) types,
// which this package parses into an AST, builds into a closed type graph,
// validates, and uses to coerce and type-check values.
//
// Basic usage:
//
//	doc, err := iris.Parse(sdl)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	schema, err := iris.BuildSchema(doc, iris.BuildOptions{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// With an overlay and introspection enabled:
//
//	ov, _ := overlay.LoadAll(overlayFiles)
//	schema, err := iris.BuildSchema(doc, iris.BuildOptions{
//	    Overlay:       ov,
//	    Introspection: true,
//	})
package iris

import (
	"github.com/iris-graphql/iris/internal/ast"
	"github.com/iris-graphql/iris/internal/coerce"
	"github.com/iris-graphql/iris/internal/ierror"
	"github.com/iris-graphql/iris/internal/introspection"
	"github.com/iris-graphql/iris/internal/overlay"
	"github.com/iris-graphql/iris/internal/parser"
	"github.com/iris-graphql/iris/internal/schema"
	"github.com/iris-graphql/iris/internal/source"
	"github.com/iris-graphql/iris/internal/types"
	"github.com/iris-graphql/iris/internal/validate"
)

// Document is a parsed Iris SDL document.
type Document = ast.Document

// Node is any AST node; returned by the single-production parse entry
// points (ParseValue, ParseConstValue, ParseType).
type Node = ast.Node

// Schema is a built, closed type graph ready for validation and coercion.
type Schema = types.Schema

// IrisType is the Named|List|Maybe type-reference union.
type IrisType = types.IrisType

// Version is the Iris language version this library implements.
const Version = "1.0.0"

// Parse parses an Iris SDL document from a string.
//
// Example:
//
//	sdl := `
//	  data User {
//	    id: String
//	    email: String
//	  }
//
//	  resolver Query {
//	    user(id: String): User?
//	  }
//	`
//	doc, err := iris.Parse(sdl)
func Parse(content string) (*Document, error) {
	return ParseNamed(content, "")
}

// ParseNamed parses an Iris SDL document, attributing diagnostics to name
// (typically the source file path) instead of the parser's generic default.
func ParseNamed(content, name string) (*Document, error) {
	src := source.New(content)
	if name != "" {
		src = source.NewNamed(content, name)
	}
	return parser.ParseDocument(src, parser.Options{})
}

// ParseValue parses a single executable value literal, which may reference
// variables (e.g. inside a query's argument list).
func ParseValue(content string) (Node, error) {
	return parser.ParseValue(source.New(content))
}

// ParseConstValue parses a single constant value literal, such as a field's
// default value or a directive argument, which may not reference variables.
func ParseConstValue(content string) (Node, error) {
	return parser.ParseConstValue(source.New(content))
}

// ParseType parses a single type reference (Name, [Name], or Name?).
func ParseType(content string) (Node, error) {
	return parser.ParseType(source.New(content))
}

// BuildOptions controls BuildSchema's enrichment and validation behavior.
type BuildOptions struct {
	// AssumeValid skips both SDL and schema-shape validation.
	AssumeValid bool

	// AssumeValidSDL skips only SDL (document-shape) validation; schema
	// validation still runs after the schema is built.
	AssumeValidSDL bool

	// Introspection grafts internal/introspection's fixed schema onto doc's
	// Query type before the schema is built.
	Introspection bool

	// Overlay, if non-nil, is applied onto doc before validation/building.
	Overlay *overlay.Overlay
}

// BuildSchema builds a closed Schema from a parsed Document. Unless
// suppressed by opts, it runs SDL validation before building and
// schema-shape validation after.
func BuildSchema(doc *Document, opts BuildOptions) (*Schema, error) {
	if opts.Overlay != nil {
		overlay.Apply(doc, opts.Overlay)
	}
	if opts.Introspection {
		if err := introspection.Inject(doc); err != nil {
			return nil, err
		}
	}

	if !opts.AssumeValid && !opts.AssumeValidSDL {
		if errs := validate.SDL(doc); len(errs) > 0 {
			return nil, ierror.List(errs)
		}
	}

	s, err := schema.Build(doc)
	if err != nil {
		return nil, err
	}

	if !opts.AssumeValid {
		if errs := validate.Schema(s); len(errs) > 0 {
			return nil, ierror.List(errs)
		}
	}

	return s, nil
}

// ValidateSDL runs document-shape validation (unique names, known type
// references, required directive arguments) against a parsed Document,
// optionally checking field redefinitions against an already-built Schema.
func ValidateSDL(doc *Document, existing *Schema) []error {
	errs := validate.SDLAgainst(doc, existing)
	out := make([]error, len(errs))
	for i, e := range errs {
		out[i] = e
	}
	return out
}

// ValidateSchema runs schema-shape validation (root type shape, directive
// argument shape, field type shape) against an already-built Schema.
func ValidateSchema(s *Schema) []error {
	errs := validate.Schema(s)
	out := make([]error, len(errs))
	for i, e := range errs {
		out[i] = e
	}
	return out
}

// ValidateDocument validates an executable document (queries, mutations,
// fragments) against a built Schema: field existence, inline-fragment
// requirements on abstract types, and fragment-spread possibility.
func ValidateDocument(doc *Document, s *Schema) []error {
	errs := validate.Document(doc, s)
	out := make([]error, len(errs))
	for i, e := range errs {
		out[i] = e
	}
	return out
}

// ValueFromAST coerces an AST value node into a host Go value according to
// typ, substituting variables from the supplied map. ok is false if the
// literal cannot be coerced to typ.
func ValueFromAST(node Node, typ IrisType, variables map[string]any) (value any, ok bool) {
	return coerce.ValueFromAST(node, typ, variables)
}

// ValueFromASTUntyped coerces an AST value node into a host Go value with
// no expected type, used for directive arguments and other untyped
// contexts.
func ValueFromASTUntyped(node Node, variables map[string]any) any {
	return coerce.ValueFromASTUntyped(node, variables)
}

// TypeCheckValue checks and normalizes a host Go value against typ,
// resolving variant membership for data/resolver types via the schema's
// type map.
func TypeCheckValue(value any, typ IrisType, s *Schema) (any, error) {
	return coerce.TypeCheckValue(value, typ, s)
}

// Introspect reflects a built Schema into the introspection value shapes
// (__Schema/__Type/__Field/...), for callers that want the data without
// grafting meta-fields onto their own Query type via BuildOptions.Introspection.
func Introspect(s *Schema) introspection.Schema {
	return introspection.Describe(s)
}
