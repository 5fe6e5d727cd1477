package ast

// IsDefinitionNode classifies top-level Document children.
func IsDefinitionNode(n Node) bool {
	switch n.Kind() {
	case KindDataTypeDefinition, KindResolverTypeDefinition, KindDirectiveDefinition,
		KindOperationDefinition, KindFragmentDefinition:
		return true
	}
	return false
}

// IsExecutableDefinitionNode classifies definitions consumed by an
// executor, not the type system (spec.md §9 Open Question #1).
func IsExecutableDefinitionNode(n Node) bool {
	switch n.Kind() {
	case KindOperationDefinition, KindFragmentDefinition:
		return true
	}
	return false
}

// IsTypeSystemDefinitionNode classifies schema-shape definitions.
func IsTypeSystemDefinitionNode(n Node) bool {
	switch n.Kind() {
	case KindDataTypeDefinition, KindResolverTypeDefinition, KindDirectiveDefinition:
		return true
	}
	return false
}

// IsTypeDefinitionNode classifies the two role-carrying type definitions.
func IsTypeDefinitionNode(n Node) bool {
	switch n.Kind() {
	case KindDataTypeDefinition, KindResolverTypeDefinition:
		return true
	}
	return false
}

// IsSelectionNode classifies selection-set members.
func IsSelectionNode(n Node) bool {
	switch n.Kind() {
	case KindField, KindFragmentSpread, KindInlineFragment:
		return true
	}
	return false
}

// IsTypeNode classifies type-reference nodes.
func IsTypeNode(n Node) bool {
	switch n.Kind() {
	case KindNamedType, KindListType, KindMaybeType:
		return true
	}
	return false
}

// IsValueNode classifies value-literal nodes.
func IsValueNode(n Node) bool {
	switch n.Kind() {
	case KindVariable, KindIntValue, KindFloatValue, KindStringValue, KindBooleanValue,
		KindNullValue, KindEnumValue, KindListValue, KindObjectValue:
		return true
	}
	return false
}

// IsConstValueNode classifies value nodes containing no Variable,
// recursively: a ListValue/ObjectValue is const iff every child is.
func IsConstValueNode(n Node) bool {
	switch v := n.(type) {
	case *Variable:
		return false
	case *ListValue:
		for _, item := range v.Values {
			if !IsConstValueNode(item) {
				return false
			}
		}
		return true
	case *ObjectValue:
		for _, f := range v.Fields {
			if !IsConstValueNode(f.Value) {
				return false
			}
		}
		return true
	default:
		return IsValueNode(n)
	}
}
