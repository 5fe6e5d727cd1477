package ast

// childrenOf is the static child-key table spec.md §4.3 describes,
// expressed the idiomatic-Go way spec.md §9 suggests ("generate this table
// ... the visitor then traverses without per-node reflection"): a map from
// Kind to a function that returns the node's children in document order,
// rather than a table of reflected field names. Each entry lists, in a
// comment, the attribute names a reflection-based table would have held,
// so the mapping back to spec.md's child-key table remains legible.
var childrenOf = map[Kind]func(Node) []Node{
	KindDocument: func(n Node) []Node { return n.(*Document).Definitions }, // "definitions"

	KindVariable:     func(Node) []Node { return nil },
	KindIntValue:     func(Node) []Node { return nil },
	KindFloatValue:   func(Node) []Node { return nil },
	KindStringValue:  func(Node) []Node { return nil },
	KindBooleanValue: func(Node) []Node { return nil },
	KindNullValue:    func(Node) []Node { return nil },
	KindEnumValue:    func(Node) []Node { return nil },
	KindName:         func(Node) []Node { return nil },

	KindListValue: func(n Node) []Node { return n.(*ListValue).Values }, // "values"
	KindObjectValue: func(n Node) []Node { // "fields"
		v := n.(*ObjectValue)
		out := make([]Node, len(v.Fields))
		for i, f := range v.Fields {
			out[i] = f
		}
		return out
	},
	KindObjectField: func(n Node) []Node { // "name", "value"
		f := n.(*ObjectField)
		return []Node{f.Name, f.Value}
	},
	KindArgument: func(n Node) []Node { // "name", "value"
		a := n.(*Argument)
		return []Node{a.Name, a.Value}
	},

	KindNamedType: func(n Node) []Node { return []Node{n.(*NamedType).Name} }, // "name"
	KindListType:  func(n Node) []Node { return []Node{n.(*ListType).Type} },  // "type"
	KindMaybeType: func(n Node) []Node { return []Node{n.(*MaybeType).Type} }, // "type"

	KindDirective: func(n Node) []Node { // "name", "arguments"
		d := n.(*Directive)
		out := []Node{d.Name}
		for _, a := range d.Arguments {
			out = append(out, a)
		}
		return out
	},

	KindDataTypeDefinition: func(n Node) []Node { // "description","name","directives","variants"
		d := n.(*DataTypeDefinition)
		out := optionalStringValue(d.Description)
		out = append(out, d.Name)
		out = append(out, directiveNodes(d.Directives)...)
		for _, v := range d.Variants {
			out = append(out, v)
		}
		return out
	},
	KindResolverTypeDefinition: func(n Node) []Node {
		d := n.(*ResolverTypeDefinition)
		out := optionalStringValue(d.Description)
		out = append(out, d.Name)
		out = append(out, directiveNodes(d.Directives)...)
		for _, v := range d.Variants {
			out = append(out, v)
		}
		return out
	},
	KindVariantDefinition: func(n Node) []Node { // "description","name","directives","fields"
		v := n.(*VariantDefinition)
		out := optionalStringValue(v.Description)
		out = append(out, v.Name)
		out = append(out, directiveNodes(v.Directives)...)
		for _, f := range v.Fields {
			out = append(out, f)
		}
		return out
	},
	KindFieldDefinition: func(n Node) []Node { // "description","name","arguments","type","directives"
		f := n.(*FieldDefinition)
		out := optionalStringValue(f.Description)
		out = append(out, f.Name)
		for _, a := range f.Arguments {
			out = append(out, a)
		}
		out = append(out, f.Type)
		out = append(out, directiveNodes(f.Directives)...)
		return out
	},
	KindArgumentDefinition: func(n Node) []Node { // "description","name","type","defaultValue","directives"
		a := n.(*ArgumentDefinition)
		out := optionalStringValue(a.Description)
		out = append(out, a.Name, a.Type)
		if a.DefaultValue != nil {
			out = append(out, a.DefaultValue)
		}
		out = append(out, directiveNodes(a.Directives)...)
		return out
	},
	KindDirectiveDefinition: func(n Node) []Node { // "description","name","arguments","locations"
		d := n.(*DirectiveDefinition)
		out := optionalStringValue(d.Description)
		out = append(out, d.Name)
		for _, a := range d.Arguments {
			out = append(out, a)
		}
		for _, l := range d.Locations {
			out = append(out, l)
		}
		return out
	},

	KindOperationDefinition: func(n Node) []Node { // "name","variableDefinitions","directives","selectionSet"
		o := n.(*OperationDefinition)
		var out []Node
		if o.Name != nil {
			out = append(out, o.Name)
		}
		for _, v := range o.VariableDefinitions {
			out = append(out, v)
		}
		out = append(out, directiveNodes(o.Directives)...)
		out = append(out, o.SelectionSet)
		return out
	},
	KindVariableDefinition: func(n Node) []Node { // "variable","type","defaultValue"
		v := n.(*VariableDefinition)
		out := []Node{v.Variable, v.Type}
		if v.DefaultValue != nil {
			out = append(out, v.DefaultValue)
		}
		return out
	},
	KindSelectionSet: func(n Node) []Node { return n.(*SelectionSet).Selections }, // "selections"
	KindField: func(n Node) []Node { // "alias","name","arguments","directives","selectionSet"
		f := n.(*Field)
		var out []Node
		if f.Alias != nil {
			out = append(out, f.Alias)
		}
		out = append(out, f.Name)
		for _, a := range f.Arguments {
			out = append(out, a)
		}
		out = append(out, directiveNodes(f.Directives)...)
		if f.SelectionSet != nil {
			out = append(out, f.SelectionSet)
		}
		return out
	},
	KindFragmentSpread: func(n Node) []Node { // "name","directives"
		f := n.(*FragmentSpread)
		out := []Node{f.Name}
		out = append(out, directiveNodes(f.Directives)...)
		return out
	},
	KindInlineFragment: func(n Node) []Node { // "typeCondition","directives","selectionSet"
		f := n.(*InlineFragment)
		var out []Node
		if f.TypeCondition != nil {
			out = append(out, f.TypeCondition)
		}
		out = append(out, directiveNodes(f.Directives)...)
		out = append(out, f.SelectionSet)
		return out
	},
	KindFragmentDefinition: func(n Node) []Node { // "name","variableDefinitions","typeCondition","directives","selectionSet"
		f := n.(*FragmentDefinition)
		out := []Node{f.Name}
		for _, v := range f.VariableDefinitions {
			out = append(out, v)
		}
		if f.TypeCondition != nil {
			out = append(out, f.TypeCondition)
		}
		out = append(out, directiveNodes(f.Directives)...)
		out = append(out, f.SelectionSet)
		return out
	},
}

func directiveNodes(ds []*Directive) []Node {
	out := make([]Node, len(ds))
	for i, d := range ds {
		out[i] = d
	}
	return out
}

// optionalStringValue returns a single-element slice when d isn't nil,
// else nil — used for the Description child every definition-level node
// carries (SPEC_FULL.md §C.2).
func optionalStringValue(d *StringValue) []Node {
	if d == nil {
		return nil
	}
	return []Node{d}
}

// Children returns n's children in document order, per the child-key table.
func Children(n Node) []Node {
	fn, ok := childrenOf[n.Kind()]
	if !ok {
		return nil
	}
	return fn(n)
}
