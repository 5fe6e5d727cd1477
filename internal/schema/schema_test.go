package schema_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iris-graphql/iris/internal/parser"
	"github.com/iris-graphql/iris/internal/schema"
	"github.com/iris-graphql/iris/internal/source"
	"github.com/iris-graphql/iris/internal/types"
)

func build(t *testing.T, body string) (*types.Schema, error) {
	t.Helper()
	doc, err := parser.ParseDocument(source.New(body), parser.Options{})
	require.NoError(t, err)
	return schema.Build(doc)
}

func TestBuildTreeSchema(t *testing.T) {
	s, err := build(t, `
data Tree = Leaf { name: String } | Node { children: [Tree] }

resolver Query {
  tree: Tree
}
`)
	require.NoError(t, err)
	require.NotNil(t, s.Query)
	require.Contains(t, s.TypeMap, "Tree")

	tree := s.TypeMap["Tree"]
	variants := tree.Variants()
	require.Len(t, variants, 2)
	require.Equal(t, "Leaf", variants[0].Name)
	require.Equal(t, "Node", variants[1].Name)

	childrenField, ok := variants[1].Fields.Get("children")
	require.True(t, ok)
	list, ok := childrenField.Type.(types.List)
	require.True(t, ok)
	named, ok := list.Of.(types.Named)
	require.True(t, ok)
	require.Equal(t, "Tree", named.Def.Name)
}

func TestBuildRequiresQuery(t *testing.T) {
	doc, err := parser.ParseDocument(source.New(`data Flag`), parser.Options{})
	require.NoError(t, err)
	_, err = schema.Build(doc)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Query root type must be provided.")
}

func TestBuildQueryMustBeRecord(t *testing.T) {
	_, err := build(t, `
resolver Query = Foo | Bar
data Foo
data Bar
`)
	require.Error(t, err)
	require.Contains(t, err.Error(), "must be a record resolver")
}

func TestBuildUnknownTypeError(t *testing.T) {
	_, err := build(t, `
resolver Query {
  user: User
}
`)
	require.Error(t, err)
	require.Contains(t, err.Error(), `Unknown type "User".`)
}

func TestBuildDuplicateTypeNameError(t *testing.T) {
	doc, err := parser.ParseDocument(source.New(`
data Point { x: Int }
data Point { y: Int }
resolver Query {
  p: Point
}
`), parser.Options{})
	require.NoError(t, err)
	_, err = schema.Build(doc)
	require.Error(t, err)
	require.Contains(t, err.Error(), `multiple types named "Point"`)
}

func TestBuildCannotRedefineBuiltinScalar(t *testing.T) {
	doc, err := parser.ParseDocument(source.New(`
data String { x: Int }
resolver Query {
  ok: Boolean
}
`), parser.Options{})
	require.NoError(t, err)
	_, err = schema.Build(doc)
	require.Error(t, err)
}

func TestBuildDeprecatedDirectiveDefaultReason(t *testing.T) {
	s, err := build(t, `
data Widget {
  legacy: String @deprecated
  modern: String @deprecated(reason: "use modern instead")
}

resolver Query {
  widget: Widget
}
`)
	require.NoError(t, err)
	widget := s.TypeMap["Widget"]
	fields := widget.Variants()[0].Fields
	legacy, _ := fields.Get("legacy")
	modern, _ := fields.Get("modern")
	require.NotNil(t, legacy.DeprecationReason)
	require.Equal(t, "", *legacy.DeprecationReason)
	require.NotNil(t, modern.DeprecationReason)
	require.Equal(t, "use modern instead", *modern.DeprecationReason)

	dep, ok := s.DirectiveByName("deprecated")
	require.True(t, ok)
	require.Contains(t, dep.Locations, "FIELD_DEFINITION")
	require.Contains(t, dep.Locations, "VARIANT_DEFINITION")
}

func TestBuildArgumentDefaultValue(t *testing.T) {
	s, err := build(t, `
resolver Query {
  greet(name: String = "world"): String
}
`)
	require.NoError(t, err)
	greet, _ := s.Query.Variants()[0].Fields.Get("greet")
	require.Len(t, greet.Args, 1)
	require.True(t, greet.Args[0].HasDefaultValue)
	require.Equal(t, "world", greet.Args[0].DefaultValue)
}

func TestBuildClosureExcludesUnreachableTypes(t *testing.T) {
	s, err := build(t, `
data Unused { x: Int }

resolver Query {
  ping: String
}
`)
	require.NoError(t, err)
	require.NotContains(t, s.TypeMap, "Unused")
	require.Contains(t, s.TypeMap, "Query")
}

func TestBuildBareSubtypeVariant(t *testing.T) {
	s, err := build(t, `
data Animal = Dog | Cat
data Dog { name: String }
data Cat { name: String }

resolver Query {
  pet: Animal
}
`)
	require.NoError(t, err)
	animal := s.TypeMap["Animal"]
	variants := animal.Variants()
	require.Len(t, variants, 2)
	require.Nil(t, variants[0].Fields)
	named, ok := variants[0].Type.(types.Named)
	require.True(t, ok)
	require.Equal(t, "Dog", named.Def.Name)
}
