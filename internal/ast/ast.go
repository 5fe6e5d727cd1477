package ast

import "github.com/iris-graphql/iris/internal/source"

// tokenLike is the minimal token surface this package needs; satisfied by
// *lexer.Token without importing internal/lexer (which imports this
// package's sibling internal/source, not ast, so there's no cycle risk
// either way — kept as an interface purely to keep ast dependency-free of
// lexer's token representation details).
type tokenLike interface {
	Position() int
}

// Loc mirrors spec.md's `loc = { start: Token, end: Token, source }`.
type Loc struct {
	Start  tokenLike
	End    tokenLike
	Source *source.Source
}

// Node is implemented by every AST node. Position()/Src() let any Node
// satisfy internal/ierror.Locatable directly.
type Node interface {
	Kind() Kind
	GetLoc() *Loc
}

// Position returns the node's start byte offset, or 0 if it has no
// location (e.g. parsed with NoLocation).
func Position(n Node) int {
	loc := n.GetLoc()
	if loc == nil || loc.Start == nil {
		return 0
	}
	return loc.Start.Position()
}

// Src returns the node's source, or nil.
func Src(n Node) *source.Source {
	loc := n.GetLoc()
	if loc == nil {
		return nil
	}
	return loc.Source
}

// base is embedded by every concrete node type to carry Loc and save each
// node from repeating the same GetLoc() method.
type base struct {
	Loc *Loc
}

func (b *base) GetLoc() *Loc { return b.Loc }

// SetLoc is used by internal/parser to attach location info after
// constructing a node; exported because base's field is not, so a
// constructor outside this package cannot set Loc via a composite literal.
func (b *base) SetLoc(l *Loc) { b.Loc = l }

// Position and Src implement internal/ierror.Locatable, promoted through
// every node's embedded base so schema/validation errors can attach a node
// directly (e.g. ierror.New(...).WithNode(typeNode)) without this package
// importing internal/ierror.
func (b *base) Position() int {
	if b.Loc == nil || b.Loc.Start == nil {
		return 0
	}
	return b.Loc.Start.Position()
}

func (b *base) Src() *source.Source {
	if b.Loc == nil {
		return nil
	}
	return b.Loc.Source
}

// --- Name -------------------------------------------------------------

type Name struct {
	base
	Value string
}

func (*Name) Kind() Kind { return KindName }

// --- Value nodes (spec.md §3 "Lexical values") -------------------------

type Variable struct {
	base
	Name *Name
}

func (*Variable) Kind() Kind { return KindVariable }

type IntValue struct {
	base
	Value string
}

func (*IntValue) Kind() Kind { return KindIntValue }

type FloatValue struct {
	base
	Value string
}

func (*FloatValue) Kind() Kind { return KindFloatValue }

type StringValue struct {
	base
	Value string
	Block bool
}

func (*StringValue) Kind() Kind { return KindStringValue }

type BooleanValue struct {
	base
	Value bool
}

func (*BooleanValue) Kind() Kind { return KindBooleanValue }

type NullValue struct {
	base
}

func (*NullValue) Kind() Kind { return KindNullValue }

type EnumValue struct {
	base
	Value string
}

func (*EnumValue) Kind() Kind { return KindEnumValue }

type ListValue struct {
	base
	Values []Node // ValueNode
}

func (*ListValue) Kind() Kind { return KindListValue }

type ObjectValue struct {
	base
	Fields []*ObjectField
}

func (*ObjectValue) Kind() Kind { return KindObjectValue }

type ObjectField struct {
	base
	Name  *Name
	Value Node // ValueNode
}

func (*ObjectField) Kind() Kind { return KindObjectField }

type Argument struct {
	base
	Name  *Name
	Value Node // ValueNode
}

func (*Argument) Kind() Kind { return KindArgument }

// --- Type refs (spec.md: NamedType, ListType, MaybeType) ---------------

type NamedType struct {
	base
	Name *Name
}

func (*NamedType) Kind() Kind { return KindNamedType }

type ListType struct {
	base
	Type Node // TypeNode
}

func (*ListType) Kind() Kind { return KindListType }

// MaybeType is Iris's `T?` optional wrapper (spec.md: "the internal kind is
// MAYBE_TYPE"); there is no NonNullType counterpart (see DESIGN.md Open
// Question #2 and spec.md §9).
type MaybeType struct {
	base
	Type Node // TypeNode
}

func (*MaybeType) Kind() Kind { return KindMaybeType }

// --- Directives ----------------------------------------------------------

type Directive struct {
	base
	Name      *Name
	Arguments []*Argument
}

func (*Directive) Kind() Kind { return KindDirective }

// --- Definitions ---------------------------------------------------------

// Role distinguishes a data (input/serializable) type from a resolver
// (output/queryable) type, per spec.md §1/§3.
type Role int

const (
	RoleData Role = iota
	RoleResolver
)

func (r Role) String() string {
	if r == RoleResolver {
		return "resolver"
	}
	return "data"
}

// Document is the root node: Document = Definition+.
type Document struct {
	base
	Definitions []Node
}

func (*Document) Kind() Kind { return KindDocument }

// DataTypeDefinition declares a `data Name = variants` type.
type DataTypeDefinition struct {
	base
	Description *StringValue
	Name        *Name
	Directives  []*Directive
	Variants    []*VariantDefinition
}

func (*DataTypeDefinition) Kind() Kind { return KindDataTypeDefinition }

// ResolverTypeDefinition declares a `resolver Name = variants` type.
type ResolverTypeDefinition struct {
	base
	Description *StringValue
	Name        *Name
	Directives  []*Directive
	Variants    []*VariantDefinition
}

func (*ResolverTypeDefinition) Kind() Kind { return KindResolverTypeDefinition }

// VariantDefinition is one alternative of a data/resolver type: either a
// bare reference to another named type (a "subtype" union member with no
// Fields), or a record body with Fields.
type VariantDefinition struct {
	base
	Description *StringValue
	Name        *Name
	Directives  []*Directive
	// Fields is nil for a bare subtype-reference variant, non-nil
	// (possibly empty) for a record variant with a `{ ... }` body.
	Fields []*FieldDefinition
}

func (*VariantDefinition) Kind() Kind { return KindVariantDefinition }

// HasRecordBody reports whether this variant carries a `{ ... }` body
// (spec.md §3 invariant 5 only applies to these).
func (v *VariantDefinition) HasRecordBody() bool { return v.Fields != nil }

// FieldDefinition is a field inside a variant's record body. Arguments is
// only populated when the enclosing type has RoleResolver (spec.md §3).
type FieldDefinition struct {
	base
	Description *StringValue
	Name        *Name
	Arguments   []*ArgumentDefinition
	Type        Node // TypeNode
	Directives  []*Directive
}

func (*FieldDefinition) Kind() Kind { return KindFieldDefinition }

type ArgumentDefinition struct {
	base
	Description  *StringValue
	Name         *Name
	Type         Node // TypeNode
	DefaultValue Node // ConstValueNode, optional
	Directives   []*Directive
}

func (*ArgumentDefinition) Kind() Kind { return KindArgumentDefinition }

type DirectiveDefinition struct {
	base
	Description *StringValue
	Name        *Name
	Arguments   []*ArgumentDefinition
	Repeatable  bool
	Locations   []*Name
}

func (*DirectiveDefinition) Kind() Kind { return KindDirectiveDefinition }

// --- Executable definitions (parsed, validated; see DESIGN.md Open
// Question #1 for why the type system never consumes these) -------------

type OperationDefinition struct {
	base
	Operation           string // "query" | "mutation" | "subscription"
	Name                *Name
	VariableDefinitions []*VariableDefinition
	Directives          []*Directive
	SelectionSet        *SelectionSet
}

func (*OperationDefinition) Kind() Kind { return KindOperationDefinition }

type VariableDefinition struct {
	base
	Variable     *Variable
	Type         Node // TypeNode
	DefaultValue Node // ConstValueNode, optional
}

func (*VariableDefinition) Kind() Kind { return KindVariableDefinition }

type SelectionSet struct {
	base
	Selections []Node // SelectionNode
}

func (*SelectionSet) Kind() Kind { return KindSelectionSet }

type Field struct {
	base
	Alias        *Name
	Name         *Name
	Arguments    []*Argument
	Directives   []*Directive
	SelectionSet *SelectionSet
}

func (*Field) Kind() Kind { return KindField }

type FragmentSpread struct {
	base
	Name       *Name
	Directives []*Directive
}

func (*FragmentSpread) Kind() Kind { return KindFragmentSpread }

type InlineFragment struct {
	base
	TypeCondition *NamedType
	Directives    []*Directive
	SelectionSet  *SelectionSet
}

func (*InlineFragment) Kind() Kind { return KindInlineFragment }

type FragmentDefinition struct {
	base
	Name                *Name
	VariableDefinitions []*VariableDefinition
	TypeCondition       *NamedType
	Directives          []*Directive
	SelectionSet        *SelectionSet
}

func (*FragmentDefinition) Kind() Kind { return KindFragmentDefinition }
