package overlay_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iris-graphql/iris/internal/ast"
	"github.com/iris-graphql/iris/internal/overlay"
	"github.com/iris-graphql/iris/internal/parser"
	"github.com/iris-graphql/iris/internal/schema"
	"github.com/iris-graphql/iris/internal/source"
)

func mustParse(t *testing.T, body string) *ast.Document {
	t.Helper()
	doc, err := parser.ParseDocument(source.New(body), parser.Options{})
	require.NoError(t, err)
	return doc
}

func TestApplyOverridesTypeAndFieldDescription(t *testing.T) {
	doc := mustParse(t, `
data Point {
  x: Int
  y: Int
}

resolver Query {
  origin: Point
}
`)

	o, err := overlay.Parse([]byte(`
types:
  Point:
    description: "A 2D coordinate"
    fields:
      x:
        description: "Horizontal offset"
`))
	require.NoError(t, err)

	overlay.Apply(doc, o)

	var point *ast.DataTypeDefinition
	for _, def := range doc.Definitions {
		if d, ok := def.(*ast.DataTypeDefinition); ok && d.Name.Value == "Point" {
			point = d
		}
	}
	require.NotNil(t, point)
	require.Equal(t, "A 2D coordinate", point.Description.Value)

	variant := point.Variants[0]
	for _, f := range variant.Fields {
		if f.Name.Value == "x" {
			require.Equal(t, "Horizontal offset", f.Description.Value)
		}
	}
}

func TestApplyAddsDeprecationDirective(t *testing.T) {
	doc := mustParse(t, `
resolver Query {
  legacy: String
  current: String
}
`)

	o, err := overlay.Parse([]byte(`
types:
  Query:
    fields:
      legacy:
        deprecated:
          reason: "use current instead"
`))
	require.NoError(t, err)

	overlay.Apply(doc, o)

	s, err := schema.Build(doc)
	require.NoError(t, err)

	variant, ok := s.Query.DefaultVariant()
	require.True(t, ok)
	legacy, found := variant.Fields.Get("legacy")
	require.True(t, found)
	require.NotNil(t, legacy.DeprecationReason)
	require.Equal(t, "use current instead", *legacy.DeprecationReason)

	current, found := variant.Fields.Get("current")
	require.True(t, found)
	require.Nil(t, current.DeprecationReason)
}

func TestApplyOverridesVariantDescription(t *testing.T) {
	doc := mustParse(t, `
resolver Animal = Dog | Cat
resolver Dog { name: String }
resolver Cat { name: String }

resolver Query {
  pet: Animal
}
`)

	o, err := overlay.Parse([]byte(`
types:
  Animal:
    variants:
      Dog:
        description: "A loyal companion"
`))
	require.NoError(t, err)

	overlay.Apply(doc, o)

	var animal *ast.ResolverTypeDefinition
	for _, def := range doc.Definitions {
		if d, ok := def.(*ast.ResolverTypeDefinition); ok && d.Name.Value == "Animal" {
			animal = d
		}
	}
	require.NotNil(t, animal)

	var found bool
	for _, v := range animal.Variants {
		if v.Name.Value == "Dog" {
			require.NotNil(t, v.Description)
			require.Equal(t, "A loyal companion", v.Description.Value)
			found = true
		}
	}
	require.True(t, found)
}

func TestLoadAllMergesLaterFilesOverEarlier(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.yaml")
	second := filepath.Join(dir, "second.yaml")

	require.NoError(t, os.WriteFile(first, []byte(`
types:
  Point:
    description: "from first"
`), 0644))
	require.NoError(t, os.WriteFile(second, []byte(`
types:
  Point:
    description: "from second"
`), 0644))

	merged, err := overlay.LoadAll([]string{first, second})
	require.NoError(t, err)
	require.Equal(t, "from second", *merged.Types["Point"].Description)
}

func TestApplyIgnoresUnknownType(t *testing.T) {
	doc := mustParse(t, `
resolver Query {
  ok: Boolean
}
`)

	o, err := overlay.Parse([]byte(`
types:
  DoesNotExist:
    description: "unused"
`))
	require.NoError(t, err)

	require.NotPanics(t, func() {
		overlay.Apply(doc, o)
	})
}
