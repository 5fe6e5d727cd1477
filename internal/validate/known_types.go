package validate

import (
	"github.com/iris-graphql/iris/internal/ast"
	"github.com/iris-graphql/iris/internal/ierror"
	"github.com/iris-graphql/iris/internal/suggest"
)

// knownTypeNames implements spec.md §4.6's KnownTypeNames rule: every
// NamedType reference and every bare-variant reference must resolve to a
// built-in scalar or a type declared in this document. Unknown names get a
// "Did you mean" suggestion list ranked by internal/suggest.
func (v *validator) knownTypeNames() {
	for _, def := range v.doc.Definitions {
		switch d := def.(type) {
		case *ast.DataTypeDefinition:
			v.checkVariantReferences(d.Variants)
		case *ast.ResolverTypeDefinition:
			v.checkVariantReferences(d.Variants)
		case *ast.DirectiveDefinition:
			for _, arg := range d.Arguments {
				v.checkTypeRef(arg.Type)
			}
		}
	}
}

func (v *validator) checkVariantReferences(variants []*ast.VariantDefinition) {
	for _, variant := range variants {
		if !variant.HasRecordBody() {
			if !v.typeNames[variant.Name.Value] {
				v.unknownType(variant.Name.Value, variant)
			}
			continue
		}
		for _, f := range variant.Fields {
			v.checkTypeRef(f.Type)
			for _, a := range f.Arguments {
				v.checkTypeRef(a.Type)
			}
		}
	}
}

// checkTypeRef descends through List/Maybe wrappers to the underlying
// NamedType, the only node kind knownTypeNames actually constrains.
func (v *validator) checkTypeRef(n ast.Node) {
	switch t := n.(type) {
	case *ast.NamedType:
		if !v.typeNames[t.Name.Value] {
			v.unknownType(t.Name.Value, t)
		}
	case *ast.ListType:
		v.checkTypeRef(t.Type)
	case *ast.MaybeType:
		v.checkTypeRef(t.Type)
	}
}

func (v *validator) unknownType(name string, node ierror.Locatable) {
	msg := `Unknown type "` + name + `".`
	if sugg := suggest.Suggestions(name, v.typeNameList()); len(sugg) > 0 {
		msg += ` Did you mean ` + suggest.QuotedOrList(sugg) + `?`
	}
	v.addErr(ierror.New("%s", msg).WithNode(node))
}
