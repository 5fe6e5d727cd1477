package types

import (
	"fmt"
	"math"
	"strconv"

	"github.com/iris-graphql/iris/internal/ast"
)

// builtinScalarNames lists spec.md §6's five built-in scalars, in the
// order a fresh type map registers them.
var builtinScalarNames = []string{"String", "Int", "Float", "Boolean", "ID"}

// NewBuiltinTypeMap returns a fresh typeMap pre-populated with the five
// built-in scalars, the starting point for every schema build (spec.md §4.4
// step 1: "Built-in scalars ... are pre-registered").
func NewBuiltinTypeMap() map[string]*IrisTypeDefinition {
	m := make(map[string]*IrisTypeDefinition, len(builtinScalarNames))
	for _, name := range builtinScalarNames {
		m[name] = builtinScalarDef(name)
	}
	return m
}

// IsBuiltinScalarName reports whether name is one of the five reserved
// scalar names user SDL may not redefine (spec.md §4.4 step 1).
func IsBuiltinScalarName(name string) bool {
	for _, n := range builtinScalarNames {
		if n == name {
			return true
		}
	}
	return false
}

func builtinScalarDef(name string) *IrisTypeDefinition {
	switch name {
	case "String":
		return &IrisTypeDefinition{Role: RoleData, Name: "String", Scalar: &ScalarBehavior{
			ParseLiteral: parseStringLiteral,
			Serialize:    serializeString,
		}}
	case "Int":
		return &IrisTypeDefinition{Role: RoleData, Name: "Int", Scalar: &ScalarBehavior{
			ParseLiteral: parseIntLiteral,
			Serialize:    serializeInt,
		}}
	case "Float":
		return &IrisTypeDefinition{Role: RoleData, Name: "Float", Scalar: &ScalarBehavior{
			ParseLiteral: parseFloatLiteral,
			Serialize:    serializeFloat,
		}}
	case "Boolean":
		return &IrisTypeDefinition{Role: RoleData, Name: "Boolean", Scalar: &ScalarBehavior{
			ParseLiteral: parseBooleanLiteral,
			Serialize:    serializeBoolean,
		}}
	case "ID":
		return &IrisTypeDefinition{Role: RoleData, Name: "ID", Scalar: &ScalarBehavior{
			ParseLiteral: parseIDLiteral,
			Serialize:    serializeID,
		}}
	default:
		panic("unknown builtin scalar: " + name)
	}
}

func parseStringLiteral(node ast.Node, _ map[string]any) (any, bool) {
	if s, ok := node.(*ast.StringValue); ok {
		return s.Value, true
	}
	return nil, false
}

func serializeString(v any) (any, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case fmt.Stringer:
		return t.String(), true
	default:
		return fmt.Sprintf("%v", v), true
	}
}

func parseIntLiteral(node ast.Node, _ map[string]any) (any, bool) {
	i, ok := node.(*ast.IntValue)
	if !ok {
		return nil, false
	}
	n, err := strconv.ParseInt(i.Value, 10, 64)
	if err != nil || n < math.MinInt32 || n > math.MaxInt32 {
		return nil, false
	}
	return int32(n), true
}

func serializeInt(v any) (any, bool) {
	switch t := v.(type) {
	case int32:
		return t, true
	case int:
		if t < math.MinInt32 || t > math.MaxInt32 {
			return nil, false
		}
		return int32(t), true
	case int64:
		if t < math.MinInt32 || t > math.MaxInt32 {
			return nil, false
		}
		return int32(t), true
	case float64:
		if t != math.Trunc(t) || t < math.MinInt32 || t > math.MaxInt32 {
			return nil, false
		}
		return int32(t), true
	default:
		return nil, false
	}
}

func parseFloatLiteral(node ast.Node, _ map[string]any) (any, bool) {
	switch n := node.(type) {
	case *ast.FloatValue:
		f, err := strconv.ParseFloat(n.Value, 64)
		if err != nil {
			return nil, false
		}
		return f, true
	case *ast.IntValue:
		f, err := strconv.ParseFloat(n.Value, 64)
		if err != nil {
			return nil, false
		}
		return f, true
	default:
		return nil, false
	}
}

func serializeFloat(v any) (any, bool) {
	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case float32:
		f = float64(t)
	case int:
		f = float64(t)
	case int32:
		f = float64(t)
	case int64:
		f = float64(t)
	default:
		return nil, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, false
	}
	return f, true
}

func parseBooleanLiteral(node ast.Node, _ map[string]any) (any, bool) {
	if b, ok := node.(*ast.BooleanValue); ok {
		return b.Value, true
	}
	return nil, false
}

func serializeBoolean(v any) (any, bool) {
	b, ok := v.(bool)
	return b, ok
}

// ID accepts a string-or-integer literal on input but always serializes to
// a string on output, per spec.md §6.
func parseIDLiteral(node ast.Node, _ map[string]any) (any, bool) {
	switch n := node.(type) {
	case *ast.StringValue:
		return n.Value, true
	case *ast.IntValue:
		return n.Value, true
	default:
		return nil, false
	}
}

func serializeID(v any) (any, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case int, int32, int64:
		return fmt.Sprintf("%d", t), true
	default:
		return nil, false
	}
}
