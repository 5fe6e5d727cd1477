package validate

import (
	"github.com/iris-graphql/iris/internal/ierror"
	"github.com/iris-graphql/iris/internal/types"
)

// rootTypeShape implements spec.md §4.6's RootType rule: Query (and, if
// present, Mutation/Subscription) must be a record resolver with a single
// variant named after the type itself. internal/schema's builder already
// enforces this fatally at build time; this copy exists so the rule also
// fires for schemas assembled programmatically via schema.NewSchema and
// for re-validation after an overlay merge.
func (v *validator) rootTypeShape() {
	for _, root := range []*types.IrisTypeDefinition{v.schema.Query, v.schema.Mutation, v.schema.Subscription} {
		if root == nil {
			continue
		}
		if !root.IsRecord() {
			v.addErr(ierror.New(
				"%s root type must be a record resolver with a single variant named %q.", root.Name, root.Name,
			))
		}
	}
}

// directiveArgumentShape implements the Directive half of spec.md §4.6's
// schema-shape rule: directive arguments must be data types, and a
// required argument cannot carry @deprecated (a caller could never supply
// it without the field also being considered deprecated-but-mandatory).
func (v *validator) directiveArgumentShape() {
	for _, d := range v.schema.Directives {
		for _, arg := range d.Args {
			if !isDataType(arg.Type) {
				v.addErr(ierror.New(
					`Directive "@%s" argument "%s" must be a data type, but "%s" is a resolver type.`,
					d.Name, arg.Name, typeName(arg.Type),
				))
			}
			if arg.DeprecationReason != nil && isRequiredArg(arg) {
				v.addErr(ierror.New(
					`Required argument "%s" on directive "@%s" cannot be deprecated.`, arg.Name, d.Name,
				))
			}
		}
	}
}

// fieldTypeShape implements the Field half of spec.md §4.6's schema-shape
// rule: every resolver field's type must be an output type (a resolver
// type or a scalar) and every data field's type must be a data type (a
// data type or a scalar); resolver field arguments follow the same
// data-type and deprecated-but-required constraints as directive arguments.
func (v *validator) fieldTypeShape() {
	for _, def := range v.schema.TypeMap {
		for _, variant := range def.Variants() {
			if variant.Fields == nil {
				continue
			}
			variant.Fields.Each(func(f *types.IrisField) {
				if def.Role == types.RoleResolver {
					v.checkResolverField(def, f)
				} else {
					v.checkDataField(def, f)
				}
			})
		}
	}
}

func (v *validator) checkResolverField(def *types.IrisTypeDefinition, f *types.IrisField) {
	if !isOutputType(f.Type) {
		v.addErr(ierror.New(
			`Field "%s.%s" must be an output type, but "%s" is a data type.`, def.Name, f.Name, typeName(f.Type),
		))
	}
	for _, arg := range f.Args {
		if !isDataType(arg.Type) {
			v.addErr(ierror.New(
				`Argument "%s" on field "%s.%s" must be a data type, but "%s" is a resolver type.`,
				arg.Name, def.Name, f.Name, typeName(arg.Type),
			))
		}
		if arg.DeprecationReason != nil && isRequiredArg(arg) {
			v.addErr(ierror.New(
				`Required argument "%s" on field "%s.%s" cannot be deprecated.`, arg.Name, def.Name, f.Name,
			))
		}
	}
}

func (v *validator) checkDataField(def *types.IrisTypeDefinition, f *types.IrisField) {
	if !isDataType(f.Type) {
		v.addErr(ierror.New(
			`Field "%s.%s" must be a data type, but "%s" is a resolver type.`, def.Name, f.Name, typeName(f.Type),
		))
	}
}

func isDataType(t types.IrisType) bool {
	named, ok := types.NamedOf(t)
	if !ok {
		return true
	}
	return named.Def.IsScalar() || named.Def.Role == types.RoleData
}

func isOutputType(t types.IrisType) bool {
	named, ok := types.NamedOf(t)
	if !ok {
		return true
	}
	return named.Def.IsScalar() || named.Def.Role == types.RoleResolver
}

func typeName(t types.IrisType) string {
	if named, ok := types.NamedOf(t); ok {
		return named.Def.Name
	}
	return t.String()
}

func isRequiredArg(arg *types.IrisArgument) bool {
	return !types.IsMaybeType(arg.Type) && !arg.HasDefaultValue
}
