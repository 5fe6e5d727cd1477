// Package coerce implements Iris's bidirectional value coercion (spec.md
// §4.5, C8): turning a parsed literal into a host value under a target
// type (ValueFromAST), and normalizing a host value into its JSON-shaped
// external form under a type (TypeCheckValue). Grounded in spec.md §4.5
// directly — no pack repo implements GraphQL-style literal<->value
// coercion — with the scalar behavior split (ParseLiteral/Serialize as a
// pair of function values on internal/types.ScalarBehavior) following the
// teacher's house style of small behavior-carrying structs over deep
// interface hierarchies (ast.Field.ShouldIncludeInGenerator,
// ast.FieldType.GetMapValueType in the teacher's internal/ast/ast.go).
package coerce

import (
	"reflect"
	"strconv"

	"github.com/iris-graphql/iris/internal/ast"
	"github.com/iris-graphql/iris/internal/ierror"
	"github.com/iris-graphql/iris/internal/types"
)

// ValueFromAST produces a host value from a literal node under typ, or
// (nil, false) if the literal is invalid for that type (spec.md §4.5).
func ValueFromAST(node ast.Node, typ types.IrisType, variables map[string]any) (any, bool) {
	if v, isVar := node.(*ast.Variable); isVar {
		val, bound := variables[v.Name.Value]
		if !bound {
			return nil, false
		}
		if val == nil && !types.IsMaybeType(typ) {
			return nil, false
		}
		return val, true
	}

	switch t := typ.(type) {
	case types.Maybe:
		if _, isNull := node.(*ast.NullValue); isNull {
			return nil, true
		}
		return ValueFromAST(node, t.Of, variables)
	case types.List:
		return valueFromASTList(node, t, variables)
	case types.Named:
		return valueFromASTNamed(node, t, variables)
	default:
		return nil, false
	}
}

func valueFromASTList(node ast.Node, t types.List, variables map[string]any) (any, bool) {
	if _, isNull := node.(*ast.NullValue); isNull {
		return nil, false
	}

	if lv, ok := node.(*ast.ListValue); ok {
		result := make([]any, 0, len(lv.Values))
		for _, item := range lv.Values {
			if v, isVar := item.(*ast.Variable); isVar {
				val, bound := variables[v.Name.Value]
				if !bound || val == nil {
					if types.IsMaybeType(t.Of) {
						result = append(result, nil)
						continue
					}
					return nil, false
				}
				result = append(result, val)
				continue
			}
			v, ok := ValueFromAST(item, t.Of, variables)
			if !ok {
				return nil, false
			}
			result = append(result, v)
		}
		return result, true
	}

	// A bare non-list value coerces to a single-item list (spec.md §4.5);
	// a bare *variable* of list type never reaches here — the generic
	// Variable branch in ValueFromAST already returned its raw bound
	// value unwrapped, per the "not singleton-wrapped" rule.
	v, ok := ValueFromAST(node, t.Of, variables)
	if !ok {
		return nil, false
	}
	return []any{v}, true
}

func valueFromASTNamed(node ast.Node, t types.Named, variables map[string]any) (any, bool) {
	def := t.Def
	if def.IsScalar() {
		v, ok := def.Scalar.ParseLiteral(node, variables)
		if !ok {
			return nil, false
		}
		return v, true
	}
	return valueFromASTObject(node, def, variables)
}

func valueFromASTObject(node ast.Node, def *types.IrisTypeDefinition, variables map[string]any) (any, bool) {
	switch n := node.(type) {
	case *ast.EnumValue:
		v, ok := def.VariantByName(n.Value)
		if !ok || v.Fields != nil {
			return nil, false
		}
		return v.Name, true
	case *ast.ObjectValue:
		variant, lit, ok := resolveVariantLiteral(def, n)
		if !ok {
			return nil, false
		}
		if variant.Fields == nil {
			return nil, false
		}
		out := map[string]any{}
		for _, name := range variant.Fields.Names() {
			f, _ := variant.Fields.Get(name)
			litNode, present := lit[name]
			if !present {
				if types.IsMaybeType(f.Type) {
					out[name] = nil
					continue
				}
				return nil, false
			}
			v, ok := ValueFromAST(litNode, f.Type, variables)
			if !ok {
				return nil, false
			}
			out[name] = v
		}
		if _, had := lit["__typename"]; had {
			out["__typename"] = variant.Name
		}
		return out, true
	default:
		return nil, false
	}
}

// resolveVariantLiteral picks the variant an ObjectValue literal targets:
// the variant named by an explicit `__typename` field, or the type's
// default (single-record) variant.
func resolveVariantLiteral(def *types.IrisTypeDefinition, obj *ast.ObjectValue) (*types.IrisVariant, map[string]ast.Node, bool) {
	fields := make(map[string]ast.Node, len(obj.Fields))
	for _, f := range obj.Fields {
		fields[f.Name.Value] = f.Value
	}
	if tnNode, ok := fields["__typename"]; ok {
		sv, ok := tnNode.(*ast.StringValue)
		if !ok {
			return nil, nil, false
		}
		v, ok := def.VariantByName(sv.Value)
		if !ok {
			return nil, nil, false
		}
		return v, fields, true
	}
	v, ok := def.DefaultVariant()
	if !ok {
		return nil, nil, false
	}
	return v, fields, true
}

// TypeCheckValue normalizes a host value into its JSON-shaped serialized
// form under typ, the inverse of ValueFromAST (spec.md §4.5).
func TypeCheckValue(value any, typ types.IrisType, schema *types.Schema) (any, error) {
	switch t := typ.(type) {
	case types.Maybe:
		if value == nil {
			return nil, nil
		}
		return TypeCheckValue(value, t.Of, schema)
	case types.List:
		return typeCheckList(value, t, schema)
	case types.Named:
		return typeCheckNamed(value, t, schema)
	default:
		return nil, ierror.New("Cannot serialize value of unknown type.")
	}
}

func typeCheckList(value any, t types.List, schema *types.Schema) (any, error) {
	rv := reflect.ValueOf(value)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return nil, ierror.New("Value of type %T is not iterable, expected a list.", value)
	}
	out := make([]any, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		v, err := TypeCheckValue(rv.Index(i).Interface(), t.Of, schema)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func typeCheckNamed(value any, t types.Named, schema *types.Schema) (any, error) {
	def := t.Def
	if def.IsScalar() {
		v, ok := def.Scalar.Serialize(value)
		if !ok {
			return nil, ierror.New("Value %v is not a valid %s.", value, def.Name)
		}
		return v, nil
	}
	return typeCheckVariant(value, def, schema)
}

func typeCheckVariant(value any, def *types.IrisTypeDefinition, schema *types.Schema) (any, error) {
	var variantName string
	var fieldsSrc map[string]any

	switch v := value.(type) {
	case string:
		variantName = v
		fieldsSrc = map[string]any{}
	case map[string]any:
		if tn, ok := v["__typename"].(string); ok {
			variantName = tn
		} else if dv, ok := def.DefaultVariant(); ok {
			variantName = dv.Name
		} else {
			return nil, ierror.New("Value for union type %q must include __typename.", def.Name)
		}
		fieldsSrc = v
	default:
		return nil, ierror.New("Value of type %T cannot be serialized as %q.", value, def.Name)
	}

	variant, ok := def.VariantByName(variantName)
	if !ok {
		return nil, ierror.New("Unknown variant %q for type %q.", variantName, def.Name)
	}
	if variant.Fields == nil || variant.Fields.Len() == 0 {
		return variant.Name, nil
	}

	out := map[string]any{"__typename": variant.Name}
	for _, name := range variant.Fields.Names() {
		f, _ := variant.Fields.Get(name)
		raw, present := fieldsSrc[name]
		if !present {
			if types.IsMaybeType(f.Type) {
				out[name] = nil
				continue
			}
			return nil, ierror.New("Field %q of required type is missing.", name)
		}
		serialized, err := TypeCheckValue(raw, f.Type, schema)
		if err != nil {
			return nil, err
		}
		out[name] = serialized
	}
	return out, nil
}

// ValueFromASTUntyped converts a literal node straight to a JSON-shaped
// host value with no target type, used for internal defaults that are
// captured before their declared type is fully known.
func ValueFromASTUntyped(node ast.Node, variables map[string]any) any {
	switch n := node.(type) {
	case *ast.NullValue:
		return nil
	case *ast.IntValue:
		i, err := strconv.ParseInt(n.Value, 10, 64)
		if err != nil {
			return nil
		}
		return i
	case *ast.FloatValue:
		f, err := strconv.ParseFloat(n.Value, 64)
		if err != nil {
			return nil
		}
		return f
	case *ast.StringValue:
		return n.Value
	case *ast.BooleanValue:
		return n.Value
	case *ast.EnumValue:
		return n.Value
	case *ast.ListValue:
		out := make([]any, len(n.Values))
		for i, v := range n.Values {
			out[i] = ValueFromASTUntyped(v, variables)
		}
		return out
	case *ast.ObjectValue:
		out := make(map[string]any, len(n.Fields))
		for _, f := range n.Fields {
			out[f.Name.Value] = ValueFromASTUntyped(f.Value, variables)
		}
		return out
	case *ast.Variable:
		return variables[n.Name.Value]
	default:
		return nil
	}
}
