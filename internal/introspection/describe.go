package introspection

import (
	"fmt"
	"sort"

	"github.com/iris-graphql/iris/internal/types"
)

// TypeKind mirrors __TypeKind's five marker values.
type TypeKind string

const (
	KindScalar   TypeKind = "SCALAR"
	KindData     TypeKind = "DATA"
	KindResolver TypeKind = "RESOLVER"
	KindList     TypeKind = "LIST"
	KindMaybe    TypeKind = "MAYBE"
)

// Type is the Go-side shape of a __Type instance.
type Type struct {
	Kind        TypeKind
	Name        *string
	Description *string
	Fields      []Field
	Variants    []string
	OfType      *Type
}

// Field is the Go-side shape of a __Field instance.
type Field struct {
	Name              string
	Description       *string
	Args              []InputValue
	Type              Type
	IsDeprecated      bool
	DeprecationReason *string
}

// InputValue is the Go-side shape of a __InputValue instance.
type InputValue struct {
	Name         string
	Description  *string
	Type         Type
	DefaultValue *string
}

// Directive is the Go-side shape of a __Directive instance.
type Directive struct {
	Name         string
	Description  *string
	Locations    []string
	Args         []InputValue
	IsRepeatable bool
}

// Schema is the Go-side shape of a __Schema instance.
type Schema struct {
	Description      *string
	Types            []Type
	QueryType        Type
	MutationType     *Type
	SubscriptionType *Type
	Directives       []Directive
}

// Describe reflects a built *types.Schema into the introspection shapes
// spec.md's C11 component describes, in lieu of a query executor: the
// toolkit stops at producing values a caller can serialize however their
// transport layer wants, per spec.md §1's "no network transport" non-goal.
func Describe(schema *types.Schema) Schema {
	desc := Schema{Description: schema.Description}

	names := make([]string, 0, len(schema.TypeMap))
	for name := range schema.TypeMap {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		desc.Types = append(desc.Types, describeDef(schema.TypeMap[name]))
	}

	if schema.Query != nil {
		desc.QueryType = describeDef(schema.Query)
	}
	if schema.Mutation != nil {
		m := describeDef(schema.Mutation)
		desc.MutationType = &m
	}
	if schema.Subscription != nil {
		s := describeDef(schema.Subscription)
		desc.SubscriptionType = &s
	}
	for _, d := range schema.Directives {
		desc.Directives = append(desc.Directives, describeDirective(d))
	}
	return desc
}

func describeDef(def *types.IrisTypeDefinition) Type {
	kind := KindData
	switch {
	case def.IsScalar():
		kind = KindScalar
	case def.Role == types.RoleResolver:
		kind = KindResolver
	}
	name := def.Name
	t := Type{Kind: kind, Name: &name, Description: def.Description}

	if variant, ok := def.DefaultVariant(); ok && variant.Fields != nil {
		variant.Fields.Each(func(f *types.IrisField) {
			t.Fields = append(t.Fields, describeField(f))
		})
		return t
	}
	for _, variant := range def.Variants() {
		t.Variants = append(t.Variants, variant.Name)
	}
	return t
}

func describeField(f *types.IrisField) Field {
	args := make([]InputValue, 0, len(f.Args))
	for _, a := range f.Args {
		args = append(args, describeArg(a))
	}
	return Field{
		Name:              f.Name,
		Description:       f.Description,
		Args:              args,
		Type:              typeOf(f.Type),
		IsDeprecated:      f.DeprecationReason != nil,
		DeprecationReason: f.DeprecationReason,
	}
}

func describeArg(a *types.IrisArgument) InputValue {
	iv := InputValue{Name: a.Name, Type: typeOf(a.Type)}
	if a.HasDefaultValue {
		s := fmt.Sprintf("%v", a.DefaultValue)
		iv.DefaultValue = &s
	}
	return iv
}

func describeDirective(d *types.Directive) Directive {
	args := make([]InputValue, 0, len(d.Args))
	for _, a := range d.Args {
		args = append(args, describeArg(a))
	}
	return Directive{
		Name:         d.Name,
		Description:  d.Description,
		Locations:    d.Locations,
		Args:         args,
		IsRepeatable: d.Repeatable,
	}
}

func typeOf(t types.IrisType) Type {
	switch v := t.(type) {
	case types.List:
		inner := typeOf(v.Of)
		return Type{Kind: KindList, OfType: &inner}
	case types.Maybe:
		inner := typeOf(v.Of)
		return Type{Kind: KindMaybe, OfType: &inner}
	case types.Named:
		return describeDef(v.Def)
	default:
		return Type{}
	}
}
