package parser_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iris-graphql/iris/internal/ast"
	"github.com/iris-graphql/iris/internal/parser"
	"github.com/iris-graphql/iris/internal/source"
)

func parseDoc(t *testing.T, body string) *ast.Document {
	t.Helper()
	doc, err := parser.ParseDocument(source.New(body), parser.Options{})
	require.NoError(t, err)
	return doc
}

func TestParseImplicitRecordVariant(t *testing.T) {
	doc := parseDoc(t, `data Point { x: Int y: Int }`)
	require.Len(t, doc.Definitions, 1)
	def := doc.Definitions[0].(*ast.DataTypeDefinition)
	require.Equal(t, "Point", def.Name.Value)
	require.Len(t, def.Variants, 1)
	require.Equal(t, "Point", def.Variants[0].Name.Value)
	require.Len(t, def.Variants[0].Fields, 2)
	require.Equal(t, "x", def.Variants[0].Fields[0].Name.Value)
}

func TestParseNoBodyBareType(t *testing.T) {
	doc := parseDoc(t, `data Flag`)
	def := doc.Definitions[0].(*ast.DataTypeDefinition)
	require.Len(t, def.Variants, 1)
	require.NotNil(t, def.Variants[0].Fields)
	require.Len(t, def.Variants[0].Fields, 0)
}

func TestParseExplicitSingleRecordVariant(t *testing.T) {
	doc := parseDoc(t, `data Point = { x: Int y: Int }`)
	def := doc.Definitions[0].(*ast.DataTypeDefinition)
	require.Len(t, def.Variants, 1)
	require.Equal(t, "Point", def.Variants[0].Name.Value)
}

func TestParseVariantUnion(t *testing.T) {
	doc := parseDoc(t, `
data Shape =
  | Circle { radius: Float }
  | Square { side: Float }
`)
	def := doc.Definitions[0].(*ast.DataTypeDefinition)
	require.Len(t, def.Variants, 2)
	require.Equal(t, "Circle", def.Variants[0].Name.Value)
	require.True(t, def.Variants[0].HasRecordBody())
	require.Equal(t, "Square", def.Variants[1].Name.Value)
}

func TestParseEnumLikeVariants(t *testing.T) {
	doc := parseDoc(t, `data Color = Red | Green | Blue`)
	def := doc.Definitions[0].(*ast.DataTypeDefinition)
	require.Len(t, def.Variants, 3)
	for _, v := range def.Variants {
		require.False(t, v.HasRecordBody())
	}
}

func TestParseReservedVariantNameRejected(t *testing.T) {
	_, err := parser.ParseDocument(source.New(`data Bad = true | false`), parser.Options{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "reserved")
}

func TestParseResolverFieldArguments(t *testing.T) {
	doc := parseDoc(t, `
resolver Query {
  user(id: ID): User?
}
`)
	def := doc.Definitions[0].(*ast.ResolverTypeDefinition)
	field := def.Variants[0].Fields[0]
	require.Equal(t, "user", field.Name.Value)
	require.Len(t, field.Arguments, 1)
	require.Equal(t, "id", field.Arguments[0].Name.Value)
	maybeType, ok := field.Type.(*ast.MaybeType)
	require.True(t, ok)
	named, ok := maybeType.Type.(*ast.NamedType)
	require.True(t, ok)
	require.Equal(t, "User", named.Name.Value)
}

func TestParseListAndMaybeTypes(t *testing.T) {
	doc := parseDoc(t, `data Wrapper { items: [String?]? }`)
	def := doc.Definitions[0].(*ast.DataTypeDefinition)
	ty := def.Variants[0].Fields[0].Type
	outerMaybe, ok := ty.(*ast.MaybeType)
	require.True(t, ok)
	list, ok := outerMaybe.Type.(*ast.ListType)
	require.True(t, ok)
	innerMaybe, ok := list.Type.(*ast.MaybeType)
	require.True(t, ok)
	_, ok = innerMaybe.Type.(*ast.NamedType)
	require.True(t, ok)
}

func TestParseDirectiveDefinitionRepeatableOn(t *testing.T) {
	doc := parseDoc(t, `directive @deprecated(reason: String = "No longer supported") on ARGUMENT_DEFINITION | FIELD_DEFINITION | VARIANT_DEFINITION`)
	dd := doc.Definitions[0].(*ast.DirectiveDefinition)
	require.Equal(t, "deprecated", dd.Name.Value)
	require.False(t, dd.Repeatable)
	require.Len(t, dd.Locations, 3)
}

func TestParseDirectiveDefinitionRepeatable(t *testing.T) {
	doc := parseDoc(t, `directive @tag(name: String) repeatable on FIELD_DEFINITION`)
	dd := doc.Definitions[0].(*ast.DirectiveDefinition)
	require.True(t, dd.Repeatable)
}

func TestParseFieldAndTypeDirectives(t *testing.T) {
	doc := parseDoc(t, `
data Example @cacheControl(maxAge: 60) {
  legacy: String @deprecated(reason: "use modern")
}
`)
	def := doc.Definitions[0].(*ast.DataTypeDefinition)
	require.Len(t, def.Directives, 1)
	require.Equal(t, "cacheControl", def.Directives[0].Name.Value)
	field := def.Variants[0].Fields[0]
	require.Len(t, field.Directives, 1)
	require.Equal(t, "deprecated", field.Directives[0].Name.Value)
}

func TestParseValueLiterals(t *testing.T) {
	v, err := parser.ParseConstValue(source.New(`{ a: 1, b: [1, 2, "x"], c: null, d: true, e: RED }`))
	require.NoError(t, err)
	obj, ok := v.(*ast.ObjectValue)
	require.True(t, ok)
	require.Len(t, obj.Fields, 5)
	require.Equal(t, "a", obj.Fields[0].Name.Value)
	_, ok = obj.Fields[0].Value.(*ast.IntValue)
	require.True(t, ok)
	list := obj.Fields[1].Value.(*ast.ListValue)
	require.Len(t, list.Values, 3)
	_, ok = obj.Fields[2].Value.(*ast.NullValue)
	require.True(t, ok)
	b := obj.Fields[3].Value.(*ast.BooleanValue)
	require.True(t, b.Value)
	_, ok = obj.Fields[4].Value.(*ast.EnumValue)
	require.True(t, ok)
}

func TestParseConstValueRejectsVariable(t *testing.T) {
	_, err := parser.ParseConstValue(source.New(`$x`))
	require.Error(t, err)
	require.Contains(t, err.Error(), "variable")
}

func TestParseValueAllowsVariable(t *testing.T) {
	v, err := parser.ParseValue(source.New(`$x`))
	require.NoError(t, err)
	variable, ok := v.(*ast.Variable)
	require.True(t, ok)
	require.Equal(t, "x", variable.Name.Value)
}

func TestParseType(t *testing.T) {
	ty, err := parser.ParseType(source.New(`[Int?]?`))
	require.NoError(t, err)
	outer, ok := ty.(*ast.MaybeType)
	require.True(t, ok)
	_, ok = outer.Type.(*ast.ListType)
	require.True(t, ok)
}

func TestParseBlockStringDescription(t *testing.T) {
	doc := parseDoc(t, `
"""
A point in space.
"""
data Point { x: Int }
`)
	def := doc.Definitions[0].(*ast.DataTypeDefinition)
	require.NotNil(t, def.Description)
	require.True(t, def.Description.Block)
	require.Equal(t, "A point in space.", def.Description.Value)
}

func TestParseQueryDocument(t *testing.T) {
	doc := parseDoc(t, `
query GetUser($id: ID?) {
  user(id: $id) {
    name
    ...FriendFields
    ... on Admin {
      permissions
    }
  }
}

fragment FriendFields on User {
  friends { name }
}
`)
	require.Len(t, doc.Definitions, 2)
	op := doc.Definitions[0].(*ast.OperationDefinition)
	require.Equal(t, "query", op.Operation)
	require.Equal(t, "GetUser", op.Name.Value)
	require.Len(t, op.VariableDefinitions, 1)
	userField := op.SelectionSet.Selections[0].(*ast.Field)
	require.Equal(t, "user", userField.Name.Value)
	require.Len(t, userField.Arguments, 1)
	require.Len(t, userField.SelectionSet.Selections, 3)
	_, ok := userField.SelectionSet.Selections[1].(*ast.FragmentSpread)
	require.True(t, ok)
	_, ok = userField.SelectionSet.Selections[2].(*ast.InlineFragment)
	require.True(t, ok)

	frag := doc.Definitions[1].(*ast.FragmentDefinition)
	require.Equal(t, "FriendFields", frag.Name.Value)
	require.Equal(t, "User", frag.TypeCondition.Name.Value)
}

func TestParseAnonymousQuery(t *testing.T) {
	doc := parseDoc(t, `{ hello }`)
	op := doc.Definitions[0].(*ast.OperationDefinition)
	require.Equal(t, "query", op.Operation)
	require.Nil(t, op.Name)
}

func TestParseFieldAlias(t *testing.T) {
	doc := parseDoc(t, `{ greeting: hello }`)
	op := doc.Definitions[0].(*ast.OperationDefinition)
	f := op.SelectionSet.Selections[0].(*ast.Field)
	require.Equal(t, "greeting", f.Alias.Value)
	require.Equal(t, "hello", f.Name.Value)
}

func TestParseErrorUnexpectedToken(t *testing.T) {
	_, err := parser.ParseDocument(source.New(`data 123`), parser.Options{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "Expected Name")
}

func TestParseErrorExpectedVariant(t *testing.T) {
	_, err := parser.ParseDocument(source.New(`data Foo = 123`), parser.Options{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "Expected Variant")
}

func TestParseNoLocationOption(t *testing.T) {
	doc, err := parser.ParseDocument(source.New(`data Flag`), parser.Options{NoLocation: true})
	require.NoError(t, err)
	require.Nil(t, doc.GetLoc())
}
