package introspection_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iris-graphql/iris/internal/introspection"
	"github.com/iris-graphql/iris/internal/parser"
	"github.com/iris-graphql/iris/internal/schema"
	"github.com/iris-graphql/iris/internal/source"
)

func TestSDLBuildsStandalone(t *testing.T) {
	doc, err := parser.ParseDocument(source.New(introspection.SDL), parser.Options{})
	require.NoError(t, err)

	s, err := schema.Build(doc)
	require.NoError(t, err)
	require.Contains(t, s.TypeMap, "__Schema")
	require.Contains(t, s.TypeMap, "__Type")
	require.Contains(t, s.TypeMap, "__Directive")
	require.Contains(t, s.TypeMap, "__TypeKind")
	require.Contains(t, s.TypeMap, "__DirectiveLocation")

	kind := s.TypeMap["__TypeKind"]
	require.Len(t, kind.Variants(), 5)
}

func TestInjectGraftsMetaFieldsOntoQuery(t *testing.T) {
	doc, err := parser.ParseDocument(source.New(`
resolver Query {
  widget: String
}
`), parser.Options{})
	require.NoError(t, err)

	require.NoError(t, introspection.Inject(doc))

	s, err := schema.Build(doc)
	require.NoError(t, err)

	variant, ok := s.Query.DefaultVariant()
	require.True(t, ok)
	_, hasSchema := variant.Fields.Get("__schema")
	require.True(t, hasSchema)
	_, hasType := variant.Fields.Get("__type")
	require.True(t, hasType)
	_, hasWidget := variant.Fields.Get("widget")
	require.True(t, hasWidget)

	require.Contains(t, s.TypeMap, "__Schema")
	require.Contains(t, s.TypeMap, "__Type")
}

func TestInjectRejectsMissingQuery(t *testing.T) {
	doc, err := parser.ParseDocument(source.New(`data Flag`), parser.Options{})
	require.NoError(t, err)

	err = introspection.Inject(doc)
	require.Error(t, err)
}

func TestDescribeReflectsSchema(t *testing.T) {
	doc, err := parser.ParseDocument(source.New(`
data Tree = Leaf { name: String } | Node { children: [Tree] }

resolver Query {
  tree: Tree?
}
`), parser.Options{})
	require.NoError(t, err)
	s, err := schema.Build(doc)
	require.NoError(t, err)

	desc := introspection.Describe(s)
	require.Equal(t, introspection.KindResolver, desc.QueryType.Kind)
	require.Len(t, desc.QueryType.Fields, 1)

	treeField := desc.QueryType.Fields[0]
	require.Equal(t, "tree", treeField.Name)
	require.Equal(t, introspection.KindMaybe, treeField.Type.Kind)
	require.Equal(t, introspection.KindData, treeField.Type.OfType.Kind)
	require.Equal(t, "Tree", *treeField.Type.OfType.Name)
	require.ElementsMatch(t, []string{"Leaf", "Node"}, treeField.Type.OfType.Variants)

	var hasDeprecated bool
	for _, d := range desc.Directives {
		if d.Name == "deprecated" {
			hasDeprecated = true
			require.Contains(t, d.Locations, "FIELD_DEFINITION")
		}
	}
	require.True(t, hasDeprecated)
}
