// Package types implements Iris's type graph (spec.md §3/§6 C6): IrisType
// as a tagged Named|List|Maybe union, IrisTypeDefinition with a
// cycle-breaking thunked variant list, IrisVariant, IrisField, IrisArgument,
// Directive, and Schema. Grounded on the teacher's ast.Type/ast.Union/
// ast.Enum/ast.Field/ast.FieldType structs (internal/ast/ast.go) for field
// shape, restructured per spec.md §9's "OnceCell<Vec<Variant>>" guidance
// into thunk-memoized variants that tolerate cyclic type graphs.
package types

import (
	"sync"

	"github.com/iris-graphql/iris/internal/ast"
)

// Role mirrors ast.Role; kept as its own type so this package never forces
// its callers to import internal/ast just to spell "data"/"resolver".
type Role = ast.Role

const (
	RoleData     = ast.RoleData
	RoleResolver = ast.RoleResolver
)

// IrisType is the tagged union spec.md §3 describes:
// Named(*IrisTypeDefinition) | List(IrisType) | Maybe(IrisType).
type IrisType interface {
	irisType()
	String() string
}

// Named wraps a concrete, user- or built-in-defined type.
type Named struct {
	Def *IrisTypeDefinition
}

func (Named) irisType()     {}
func (n Named) String() string { return n.Def.Name }

// List is IrisType's list wrapper: List(T).
type List struct {
	Of IrisType
}

func (List) irisType()     {}
func (l List) String() string { return "[" + l.Of.String() + "]" }

// Maybe is Iris's optional wrapper (`T?`); absence of Maybe means required,
// per spec.md's glossary and §9 Open Question #2 (no NonNull counterpart).
type Maybe struct {
	Of IrisType
}

func (Maybe) irisType()     {}
func (m Maybe) String() string { return m.Of.String() + "?" }

// IsMaybeType reports whether t is a Maybe wrapper, the predicate
// spec.md §4.5 calls isMaybeType.
func IsMaybeType(t IrisType) bool {
	_, ok := t.(Maybe)
	return ok
}

// NamedOf unwraps List/Maybe layers and returns the underlying Named type
// (or false if t is not ultimately Named — it always is, since List/Maybe
// always wrap something, but the helper saves call sites a loop).
func NamedOf(t IrisType) (Named, bool) {
	for {
		switch v := t.(type) {
		case Named:
			return v, true
		case List:
			t = v.Of
		case Maybe:
			t = v.Of
		default:
			return Named{}, false
		}
	}
}

// ScalarBehavior is a custom scalar's pair of function values, spec.md §9's
// "record of two function pointers/closures" — mirroring the teacher's
// house style of small behavior-carrying structs (ast.Field's
// ShouldIncludeInGenerator, ast.FieldType's GetMapValueType) over deep
// interface hierarchies.
type ScalarBehavior struct {
	// ParseLiteral converts an AST value node into a host value, or
	// returns (nil, false) if the literal is invalid for this scalar.
	ParseLiteral func(node ast.Node, variables map[string]any) (any, bool)
	// Serialize converts a host value into its JSON-shaped external form,
	// or returns (nil, false) if the value cannot be serialized.
	Serialize func(value any) (any, bool)
}

// IrisTypeDefinition is a named definition in the type map: spec.md's
// `IrisTypeDefinition { role, name, description?, variants: Thunk<...>, astNode? }`.
type IrisTypeDefinition struct {
	Role        Role
	Name        string
	Description *string
	AstNode     ast.Node

	// Scalar is non-nil only for the five built-in primitive scalars
	// (String, Int, Float, Boolean, ID) or a user-registered custom
	// scalar; such a definition has no Variants.
	Scalar *ScalarBehavior

	variantsOnce sync.Once
	variantsFn   func() []*IrisVariant
	variants     []*IrisVariant
}

// SetVariantsThunk installs the lazy variant-producing closure. Called once
// by the schema builder while constructing placeholders; Variants() then
// memoizes the first call, the "OnceCell" spec.md §5/§9 describes, safe to
// call from multiple goroutines holding a shared *Schema.
func (d *IrisTypeDefinition) SetVariantsThunk(fn func() []*IrisVariant) {
	d.variantsFn = fn
}

// Variants evaluates (once) and returns this type's variants. For a
// Scalar-backed definition it always returns nil.
func (d *IrisTypeDefinition) Variants() []*IrisVariant {
	if d.Scalar != nil {
		return nil
	}
	d.variantsOnce.Do(func() {
		if d.variantsFn != nil {
			d.variants = d.variantsFn()
		}
	})
	return d.variants
}

// IsScalar reports whether this definition is a primitive/custom scalar
// (no variants, no enum values).
func (d *IrisTypeDefinition) IsScalar() bool { return d.Scalar != nil }

// IsRecord reports whether this is a single-variant type whose variant
// name equals the type's own name — the "record form" spec.md's glossary
// describes, required for Query/Mutation/Subscription root types.
func (d *IrisTypeDefinition) IsRecord() bool {
	vs := d.Variants()
	return len(vs) == 1 && vs[0].Name == d.Name && vs[0].Fields != nil
}

// DefaultVariant returns the only variant of a single-variant type (the
// record variant for a record-form type, but also a lone bare subtype
// variant), used when coercing/serializing a value with no explicit
// __typename discriminator (spec.md §4.5). It reports false when the type
// has zero or several variants.
func (d *IrisTypeDefinition) DefaultVariant() (*IrisVariant, bool) {
	vs := d.Variants()
	if len(vs) == 1 {
		return vs[0], true
	}
	return nil, false
}

// VariantByName looks up a variant by name within this type.
func (d *IrisTypeDefinition) VariantByName(name string) (*IrisVariant, bool) {
	for _, v := range d.Variants() {
		if v.Name == name {
			return v, true
		}
	}
	return nil, false
}

// IrisVariant is one alternative of a data/resolver type: spec.md's
// `IrisVariant { name, description?, deprecationReason?, fields?, type? }`.
type IrisVariant struct {
	Name              string
	Description       *string
	DeprecationReason *string

	// Fields is nil for a bare subtype-reference variant (Type is set
	// instead); non-nil (an ordered map) for a record variant.
	Fields     *FieldMap
	Type       IrisType // set only for bare-name subtype variants
	AstNode    ast.Node
}

// FieldMap preserves field definition order while supporting name lookup,
// matching spec.md's "Fields preserve definition order" invariant.
type FieldMap struct {
	order []string
	byKey map[string]*IrisField
}

func NewFieldMap() *FieldMap {
	return &FieldMap{byKey: map[string]*IrisField{}}
}

func (m *FieldMap) Set(f *IrisField) {
	if _, exists := m.byKey[f.Name]; !exists {
		m.order = append(m.order, f.Name)
	}
	m.byKey[f.Name] = f
}

func (m *FieldMap) Get(name string) (*IrisField, bool) {
	f, ok := m.byKey[name]
	return f, ok
}

func (m *FieldMap) Len() int { return len(m.order) }

// Each calls fn for every field in definition order.
func (m *FieldMap) Each(fn func(*IrisField)) {
	for _, name := range m.order {
		fn(m.byKey[name])
	}
}

// Names returns field names in definition order.
func (m *FieldMap) Names() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

// IrisField is a field of a variant: spec.md's
// `IrisField<role> { name, type, description?, deprecationReason?, args? }`.
// Args is only populated when the enclosing type has RoleResolver.
type IrisField struct {
	Name              string
	Type              IrisType
	Description       *string
	DeprecationReason *string
	Args              []*IrisArgument
	AstNode           ast.Node
}

// IrisArgument is spec.md's `IrisArgument { name, type, defaultValue?, deprecationReason?, astNode? }`.
type IrisArgument struct {
	Name              string
	Type              IrisType
	DefaultValue      any // host value already coerced via ValueFromAST, or nil
	HasDefaultValue   bool
	DeprecationReason *string
	AstNode           ast.Node
}

// Directive is a directive definition: name + argument shape + allowed
// locations + repeatability.
type Directive struct {
	Name        string
	Description *string
	Args        []*IrisArgument
	Repeatable  bool
	Locations   []string
	AstNode     ast.Node
}

// Schema is spec.md's root value: `{ description?, query?, mutation?,
// subscription?, directives, typeMap, validationErrors }`.
type Schema struct {
	Description  *string
	Query        *IrisTypeDefinition
	Mutation     *IrisTypeDefinition
	Subscription *IrisTypeDefinition
	Directives   []*Directive
	TypeMap      map[string]*IrisTypeDefinition
	AstNode      *ast.Document

	validationOnce sync.Once
	validationFn   func() []error
	validationErrs []error
}

// DirectiveByName looks up a directive definition by name.
func (s *Schema) DirectiveByName(name string) (*Directive, bool) {
	for _, d := range s.Directives {
		if d.Name == name {
			return d, true
		}
	}
	return nil, false
}

// SetValidationThunk installs the (once-memoized) validation closure; see
// internal/schema's builder and internal/validate's schema-shape rules.
func (s *Schema) SetValidationThunk(fn func() []error) { s.validationFn = fn }

// ValidationErrors evaluates (once) and caches this schema's validation
// result, the single-shot memoization spec.md §5 requires, safe to observe
// from multiple goroutines holding a shared *Schema reference.
func (s *Schema) ValidationErrors() []error {
	s.validationOnce.Do(func() {
		if s.validationFn != nil {
			s.validationErrs = s.validationFn()
		}
	})
	return s.validationErrs
}
