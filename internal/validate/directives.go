package validate

import (
	"github.com/iris-graphql/iris/internal/ast"
	"github.com/iris-graphql/iris/internal/ierror"
)

// providedRequiredArgumentsOnDirectives implements spec.md §4.6's
// ProvidedRequiredArgumentsOnDirectives rule: every directive use in the
// document must supply every argument its definition requires (non-Maybe,
// no default value). The built-in @deprecated directive's only argument
// ("reason") always has a default, so it never has a required argument to
// check.
func (v *validator) providedRequiredArgumentsOnDirectives() {
	ast.Visit(v.doc, &ast.Visitor{
		EnterKind: map[ast.Kind]ast.VisitFunc{
			ast.KindDirective: func(n ast.Node, _ ast.Node, _ []ast.Node) ast.Result {
				v.checkDirectiveUse(n.(*ast.Directive))
				return ast.ResultContinue
			},
		},
	})
}

func (v *validator) checkDirectiveUse(d *ast.Directive) {
	if d.Name.Value == "deprecated" {
		return
	}
	def, ok := v.directiveDefs[d.Name.Value]
	if !ok {
		return // KnownDirectiveNames is not among spec.md §4.6's listed rules
	}

	provided := make(map[string]bool, len(d.Arguments))
	for _, a := range d.Arguments {
		provided[a.Name.Value] = true
	}

	for _, argDef := range def.Arguments {
		if !isRequiredArgDef(argDef) || provided[argDef.Name.Value] {
			continue
		}
		v.addErr(ierror.New(
			`Directive "@%s" argument "%s" of type "%s" is required, but it was not provided.`,
			d.Name.Value, argDef.Name.Value, typeRefString(argDef.Type),
		).WithNode(d))
	}
}

func isRequiredArgDef(ad *ast.ArgumentDefinition) bool {
	if ad.DefaultValue != nil {
		return false
	}
	_, maybe := ad.Type.(*ast.MaybeType)
	return !maybe
}

func typeRefString(n ast.Node) string {
	switch t := n.(type) {
	case *ast.NamedType:
		return t.Name.Value
	case *ast.ListType:
		return "[" + typeRefString(t.Type) + "]"
	case *ast.MaybeType:
		return typeRefString(t.Type) + "?"
	default:
		return "Unknown"
	}
}
