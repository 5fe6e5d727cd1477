// Package ast defines Iris's AST: a closed set of node kinds (spec.md §3),
// a static child-key table driving a generic visitor (spec.md §4.3), and
// classification predicates. This replaces the teacher's flat per-concept
// struct set (internal/ast/ast.go: Schema/Enum/Type/Union/Field/Service)
// with the single tagged-node hierarchy spec.md §9 calls for ("replace the
// isX/assertX family on types by a single tagged enum").
package ast

// Kind is the stable discriminant every Node carries, spec.md §3's closed
// kind set.
type Kind int

const (
	// Lexical values.
	KindVariable Kind = iota
	KindIntValue
	KindFloatValue
	KindStringValue
	KindBooleanValue
	KindNullValue
	KindEnumValue
	KindListValue
	KindObjectValue
	KindObjectField
	KindArgument

	// Type refs.
	KindNamedType
	KindListType
	KindMaybeType

	// Definitions.
	KindDocument
	KindDataTypeDefinition
	KindResolverTypeDefinition
	KindVariantDefinition
	KindFieldDefinition
	KindArgumentDefinition
	KindDirectiveDefinition
	KindDirective

	// Executable (parsed, validated, but not consumed by the type system —
	// see spec.md §9 Open Questions and DESIGN.md's decision #1).
	KindOperationDefinition
	KindFragmentDefinition
	KindFragmentSpread
	KindInlineFragment
	KindField
	KindSelectionSet
	KindVariableDefinition

	// Supporting, unlisted-but-necessary node: a bare identifier used as a
	// Name child (spec.md's NamedType/EnumValue etc. all reference a Name).
	KindName
)

var kindNames = map[Kind]string{
	KindVariable: "Variable", KindIntValue: "IntValue", KindFloatValue: "FloatValue",
	KindStringValue: "StringValue", KindBooleanValue: "BooleanValue", KindNullValue: "NullValue",
	KindEnumValue: "EnumValue", KindListValue: "ListValue", KindObjectValue: "ObjectValue",
	KindObjectField: "ObjectField", KindArgument: "Argument",
	KindNamedType: "NamedType", KindListType: "ListType", KindMaybeType: "MaybeType",
	KindDocument: "Document", KindDataTypeDefinition: "DataTypeDefinition",
	KindResolverTypeDefinition: "ResolverTypeDefinition", KindVariantDefinition: "VariantDefinition",
	KindFieldDefinition: "FieldDefinition", KindArgumentDefinition: "ArgumentDefinition",
	KindDirectiveDefinition: "DirectiveDefinition", KindDirective: "Directive",
	KindOperationDefinition: "OperationDefinition", KindFragmentDefinition: "FragmentDefinition",
	KindFragmentSpread: "FragmentSpread", KindInlineFragment: "InlineFragment",
	KindField: "Field", KindSelectionSet: "SelectionSet", KindVariableDefinition: "VariableDefinition",
	KindName: "Name",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Unknown"
}
