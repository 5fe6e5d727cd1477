package introspection

import (
	"sync"

	"github.com/iris-graphql/iris/internal/ast"
	"github.com/iris-graphql/iris/internal/ierror"
	"github.com/iris-graphql/iris/internal/parser"
	"github.com/iris-graphql/iris/internal/source"
)

var fixed struct {
	once sync.Once
	doc  *ast.Document
	err  error
}

// parsedSDL parses SDL once; internal/ast documents are immutable after
// parse (spec.md §2 lifecycle), so the same node tree can safely seed every
// Inject call's appended definitions.
func parsedSDL() (*ast.Document, error) {
	fixed.once.Do(func() {
		fixed.doc, fixed.err = parser.ParseDocument(source.New(SDL), parser.Options{})
	})
	return fixed.doc, fixed.err
}

// Inject appends the fixed introspection type definitions to doc and
// grafts the __schema/__type meta-fields onto doc's own Query resolver
// type, mutating doc in place ahead of a schema.Build call. doc must
// already declare a record-form Query resolver type — the same shape
// internal/schema's builder requires of every root type.
func Inject(doc *ast.Document) error {
	sdl, err := parsedSDL()
	if err != nil {
		return err
	}

	query := findQuery(doc)
	if query == nil {
		return ierror.New(`Query root type must be provided before introspection fields can be added.`)
	}
	if len(query.Variants) != 1 || query.Variants[0].Name.Value != "Query" || !query.Variants[0].HasRecordBody() {
		return ierror.New(
			`Query root type must be a record resolver with a single variant named "Query" before introspection fields can be added.`,
		)
	}

	for _, def := range sdl.Definitions {
		if r, ok := def.(*ast.ResolverTypeDefinition); ok && r.Name.Value == "Query" {
			query.Variants[0].Fields = append(query.Variants[0].Fields, r.Variants[0].Fields...)
			continue
		}
		doc.Definitions = append(doc.Definitions, def)
	}
	return nil
}

func findQuery(doc *ast.Document) *ast.ResolverTypeDefinition {
	for _, def := range doc.Definitions {
		if r, ok := def.(*ast.ResolverTypeDefinition); ok && r.Name.Value == "Query" {
			return r
		}
	}
	return nil
}
