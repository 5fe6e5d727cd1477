package ast_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iris-graphql/iris/internal/ast"
)

func strName(v string) *ast.Name { return &ast.Name{Value: v} }

func simpleDoc() *ast.Document {
	return &ast.Document{
		Definitions: []ast.Node{
			&ast.DataTypeDefinition{
				Name: strName("Hello"),
				Variants: []*ast.VariantDefinition{
					{
						Name:   strName("Hello"),
						Fields: []*ast.FieldDefinition{{Name: strName("world"), Type: &ast.NamedType{Name: strName("String")}}},
					},
				},
			},
		},
	}
}

func TestPredicates(t *testing.T) {
	doc := simpleDoc()
	def := doc.Definitions[0]
	require.True(t, ast.IsDefinitionNode(def))
	require.True(t, ast.IsTypeDefinitionNode(def))
	require.False(t, ast.IsExecutableDefinitionNode(def))

	require.True(t, ast.IsValueNode(&ast.IntValue{Value: "1"}))
	require.True(t, ast.IsConstValueNode(&ast.IntValue{Value: "1"}))
	require.False(t, ast.IsConstValueNode(&ast.Variable{Name: strName("x")}))

	list := &ast.ListValue{Values: []ast.Node{&ast.IntValue{Value: "1"}, &ast.Variable{Name: strName("x")}}}
	require.False(t, ast.IsConstValueNode(list))
}

func TestChildren(t *testing.T) {
	doc := simpleDoc()
	children := ast.Children(doc)
	require.Len(t, children, 1)

	typeDef := children[0].(*ast.DataTypeDefinition)
	tdChildren := ast.Children(typeDef)
	// name + one variant (no description, no directives)
	require.Len(t, tdChildren, 2)
}

func TestVisitPreOrder(t *testing.T) {
	doc := simpleDoc()
	var order []string
	ast.Visit(doc, &ast.Visitor{
		Enter: func(n ast.Node, parent ast.Node, ancestors []ast.Node) ast.Result {
			order = append(order, n.Kind().String())
			return ast.ResultContinue
		},
	})
	require.Contains(t, order, "Document")
	require.Contains(t, order, "DataTypeDefinition")
	require.Contains(t, order, "FieldDefinition")
	require.Equal(t, "Document", order[0])
}

func TestVisitSkip(t *testing.T) {
	doc := simpleDoc()
	var visitedFieldDef bool
	ast.Visit(doc, &ast.Visitor{
		EnterKind: map[ast.Kind]ast.VisitFunc{
			ast.KindVariantDefinition: func(n ast.Node, parent ast.Node, ancestors []ast.Node) ast.Result {
				return ast.ResultSkip
			},
			ast.KindFieldDefinition: func(n ast.Node, parent ast.Node, ancestors []ast.Node) ast.Result {
				visitedFieldDef = true
				return ast.ResultContinue
			},
		},
	})
	require.False(t, visitedFieldDef)
}

func TestVisitBreak(t *testing.T) {
	doc := simpleDoc()
	count := 0
	ast.Visit(doc, &ast.Visitor{
		Enter: func(n ast.Node, parent ast.Node, ancestors []ast.Node) ast.Result {
			count++
			if n.Kind() == ast.KindDataTypeDefinition {
				return ast.ResultBreak
			}
			return ast.ResultContinue
		},
	})
	require.Equal(t, 2, count) // Document, DataTypeDefinition
}

func TestVisitInParallelPausesOnSkip(t *testing.T) {
	doc := simpleDoc()
	var aVisited, bVisited []string

	a := &ast.Visitor{
		EnterKind: map[ast.Kind]ast.VisitFunc{
			ast.KindVariantDefinition: func(n ast.Node, parent ast.Node, ancestors []ast.Node) ast.Result {
				return ast.ResultSkip
			},
		},
		Enter: func(n ast.Node, parent ast.Node, ancestors []ast.Node) ast.Result {
			aVisited = append(aVisited, n.Kind().String())
			return ast.ResultContinue
		},
	}
	b := &ast.Visitor{
		Enter: func(n ast.Node, parent ast.Node, ancestors []ast.Node) ast.Result {
			bVisited = append(bVisited, n.Kind().String())
			return ast.ResultContinue
		},
	}

	ast.Visit(doc, ast.VisitInParallel([]*ast.Visitor{a, b}))

	require.NotContains(t, aVisited, "FieldDefinition")
	require.Contains(t, bVisited, "FieldDefinition")
}
