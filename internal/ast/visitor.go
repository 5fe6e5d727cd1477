package ast

// Action tells Visit what to do after a callback returns.
type Action int

const (
	// Continue walks into the node's children as usual.
	Continue Action = iota
	// Skip skips the node's children (only meaningful from Enter).
	Skip
	// Break stops the walk immediately, the sentinel spec.md §4.3 calls
	// BREAK.
	Break
	// Delete removes the node from its parent's child list.
	Delete
	// Replace swaps the node for Result.Replacement.
	Replace
)

// Result is what an Enter/Leave callback returns: either a bare Action
// (Continue/Skip/Break/Delete) or Replace with a Replacement node.
type Result struct {
	Action      Action
	Replacement Node
}

var ResultContinue = Result{Action: Continue}
var ResultSkip = Result{Action: Skip}
var ResultBreak = Result{Action: Break}
var ResultDelete = Result{Action: Delete}

func ResultReplace(n Node) Result { return Result{Action: Replace, Replacement: n} }

// VisitFunc is called on enter/leave of every node the walk visits, along
// with its parent and the chain of ancestors from the root.
type VisitFunc func(node Node, parent Node, ancestors []Node) Result

// Visitor pairs a generic Enter/Leave with optional per-Kind overrides,
// matching spec.md §4.3 ("per-kind and generic" callbacks).
type Visitor struct {
	Enter     VisitFunc
	Leave     VisitFunc
	EnterKind map[Kind]VisitFunc
	LeaveKind map[Kind]VisitFunc

	paused bool // set by VisitInParallel bookkeeping
}

func (v *Visitor) enter(n, parent Node, ancestors []Node) Result {
	if fn, ok := v.EnterKind[n.Kind()]; ok {
		return fn(n, parent, ancestors)
	}
	if v.Enter != nil {
		return v.Enter(n, parent, ancestors)
	}
	return ResultContinue
}

func (v *Visitor) leave(n, parent Node, ancestors []Node) Result {
	if fn, ok := v.LeaveKind[n.Kind()]; ok {
		return fn(n, parent, ancestors)
	}
	if v.Leave != nil {
		return v.Leave(n, parent, ancestors)
	}
	return ResultContinue
}

// broke is a sentinel used to unwind the recursive walk on Break.
type broke struct{}

// Visit performs a pre-order traversal of root, calling Enter before a
// node's children and Leave after, per the static child-key table. It
// returns the (possibly rewritten) tree; Replace/Delete apply only to
// non-root nodes since the root's parent has nowhere to store the edit.
func Visit(root Node, v *Visitor) (result Node) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(broke); ok {
				result = root
				return
			}
			panic(r)
		}
	}()
	walk(root, nil, nil, v)
	return root
}

// walk returns the possibly-replaced node, or nil if it was deleted.
func walk(n Node, parent Node, ancestors []Node, v *Visitor) Node {
	if n == nil {
		return nil
	}

	res := v.enter(n, parent, ancestors)
	switch res.Action {
	case Break:
		panic(broke{})
	case Skip:
		return n
	case Delete:
		return nil
	case Replace:
		n = res.Replacement
		if n == nil {
			return nil
		}
	}

	childAncestors := append(append([]Node{}, ancestors...), n)
	visitChildrenInPlace(n, childAncestors, v)

	res = v.leave(n, parent, ancestors)
	switch res.Action {
	case Break:
		panic(broke{})
	case Delete:
		return nil
	case Replace:
		return res.Replacement
	}
	return n
}

// visitChildrenInPlace walks each of n's children, writing replacements
// (or removals) back into n's own fields via the type switch below. This
// keeps mutation local to each concrete node type instead of requiring
// reflection, matching this package's reflection-free design (see
// childkeys.go).
func visitChildrenInPlace(n Node, ancestors []Node, v *Visitor) {
	switch t := n.(type) {
	case *Document:
		t.Definitions = walkSlice(t.Definitions, n, ancestors, v)
	case *ListValue:
		t.Values = walkSlice(t.Values, n, ancestors, v)
	case *ObjectValue:
		t.Fields = walkTypedSlice(t.Fields, n, ancestors, v)
	case *ObjectField:
		t.Name = walkTyped(t.Name, n, ancestors, v)
		t.Value = walk(t.Value, n, ancestors, v)
	case *Argument:
		t.Name = walkTyped(t.Name, n, ancestors, v)
		t.Value = walk(t.Value, n, ancestors, v)
	case *NamedType:
		t.Name = walkTyped(t.Name, n, ancestors, v)
	case *ListType:
		t.Type = walk(t.Type, n, ancestors, v)
	case *MaybeType:
		t.Type = walk(t.Type, n, ancestors, v)
	case *Directive:
		t.Name = walkTyped(t.Name, n, ancestors, v)
		t.Arguments = walkTypedSlice(t.Arguments, n, ancestors, v)
	case *DataTypeDefinition:
		t.Description = walkTyped(t.Description, n, ancestors, v)
		t.Name = walkTyped(t.Name, n, ancestors, v)
		t.Directives = walkTypedSlice(t.Directives, n, ancestors, v)
		t.Variants = walkTypedSlice(t.Variants, n, ancestors, v)
	case *ResolverTypeDefinition:
		t.Description = walkTyped(t.Description, n, ancestors, v)
		t.Name = walkTyped(t.Name, n, ancestors, v)
		t.Directives = walkTypedSlice(t.Directives, n, ancestors, v)
		t.Variants = walkTypedSlice(t.Variants, n, ancestors, v)
	case *VariantDefinition:
		t.Description = walkTyped(t.Description, n, ancestors, v)
		t.Name = walkTyped(t.Name, n, ancestors, v)
		t.Directives = walkTypedSlice(t.Directives, n, ancestors, v)
		if t.Fields != nil {
			t.Fields = walkTypedSlice(t.Fields, n, ancestors, v)
		}
	case *FieldDefinition:
		t.Description = walkTyped(t.Description, n, ancestors, v)
		t.Name = walkTyped(t.Name, n, ancestors, v)
		t.Arguments = walkTypedSlice(t.Arguments, n, ancestors, v)
		t.Type = walk(t.Type, n, ancestors, v)
		t.Directives = walkTypedSlice(t.Directives, n, ancestors, v)
	case *ArgumentDefinition:
		t.Description = walkTyped(t.Description, n, ancestors, v)
		t.Name = walkTyped(t.Name, n, ancestors, v)
		t.Type = walk(t.Type, n, ancestors, v)
		if t.DefaultValue != nil {
			t.DefaultValue = walk(t.DefaultValue, n, ancestors, v)
		}
		t.Directives = walkTypedSlice(t.Directives, n, ancestors, v)
	case *DirectiveDefinition:
		t.Description = walkTyped(t.Description, n, ancestors, v)
		t.Name = walkTyped(t.Name, n, ancestors, v)
		t.Arguments = walkTypedSlice(t.Arguments, n, ancestors, v)
		t.Locations = walkTypedSlice(t.Locations, n, ancestors, v)
	case *OperationDefinition:
		t.Name = walkTyped(t.Name, n, ancestors, v)
		t.VariableDefinitions = walkTypedSlice(t.VariableDefinitions, n, ancestors, v)
		t.Directives = walkTypedSlice(t.Directives, n, ancestors, v)
		if t.SelectionSet != nil {
			t.SelectionSet = walkTyped(t.SelectionSet, n, ancestors, v)
		}
	case *VariableDefinition:
		t.Variable = walkTyped(t.Variable, n, ancestors, v)
		t.Type = walk(t.Type, n, ancestors, v)
		if t.DefaultValue != nil {
			t.DefaultValue = walk(t.DefaultValue, n, ancestors, v)
		}
	case *SelectionSet:
		t.Selections = walkSlice(t.Selections, n, ancestors, v)
	case *Field:
		t.Alias = walkTyped(t.Alias, n, ancestors, v)
		t.Name = walkTyped(t.Name, n, ancestors, v)
		t.Arguments = walkTypedSlice(t.Arguments, n, ancestors, v)
		t.Directives = walkTypedSlice(t.Directives, n, ancestors, v)
		if t.SelectionSet != nil {
			t.SelectionSet = walkTyped(t.SelectionSet, n, ancestors, v)
		}
	case *FragmentSpread:
		t.Name = walkTyped(t.Name, n, ancestors, v)
		t.Directives = walkTypedSlice(t.Directives, n, ancestors, v)
	case *InlineFragment:
		if t.TypeCondition != nil {
			t.TypeCondition = walkTyped(t.TypeCondition, n, ancestors, v)
		}
		t.Directives = walkTypedSlice(t.Directives, n, ancestors, v)
		t.SelectionSet = walkTyped(t.SelectionSet, n, ancestors, v)
	case *FragmentDefinition:
		t.Name = walkTyped(t.Name, n, ancestors, v)
		t.VariableDefinitions = walkTypedSlice(t.VariableDefinitions, n, ancestors, v)
		if t.TypeCondition != nil {
			t.TypeCondition = walkTyped(t.TypeCondition, n, ancestors, v)
		}
		t.Directives = walkTypedSlice(t.Directives, n, ancestors, v)
		t.SelectionSet = walkTyped(t.SelectionSet, n, ancestors, v)
	}
}

func walkSlice(items []Node, parent Node, ancestors []Node, v *Visitor) []Node {
	out := items[:0:0]
	for _, item := range items {
		replaced := walk(item, parent, ancestors, v)
		if replaced != nil {
			out = append(out, replaced)
		}
	}
	return out
}

// walkTyped handles a single pointer-typed child of concrete type T,
// returning the replacement cast back to T (or the zero value if deleted).
func walkTyped[T Node](item T, parent Node, ancestors []Node, v *Visitor) T {
	var zero T
	if isNilNode(item) {
		return item
	}
	replaced := walk(item, parent, ancestors, v)
	if replaced == nil {
		return zero
	}
	if typed, ok := replaced.(T); ok {
		return typed
	}
	return zero
}

func walkTypedSlice[T Node](items []T, parent Node, ancestors []Node, v *Visitor) []T {
	out := items[:0:0]
	for _, item := range items {
		replaced := walkTyped(item, parent, ancestors, v)
		if !isNilNode(replaced) {
			out = append(out, replaced)
		}
	}
	return out
}

func isNilNode(n Node) bool {
	switch t := any(n).(type) {
	case *Name:
		return t == nil
	case *StringValue:
		return t == nil
	case *Directive:
		return t == nil
	case *VariantDefinition:
		return t == nil
	case *FieldDefinition:
		return t == nil
	case *ArgumentDefinition:
		return t == nil
	case *VariableDefinition:
		return t == nil
	case *SelectionSet:
		return t == nil
	case *NamedType:
		return t == nil
	case *Variable:
		return t == nil
	}
	return n == nil
}

// VisitInParallel multiplexes several visitors over one walk: once a
// sub-visitor returns Skip from Enter it is paused (its Leave is not
// called, and neither is its Enter for descendants) until the matching
// Leave for the node that paused it, per spec.md §4.3.
func VisitInParallel(visitors []*Visitor) *Visitor {
	skipDepth := make([]int, len(visitors))
	depth := 0

	enter := func(n, parent Node, ancestors []Node) Result {
		depth++
		for i, sub := range visitors {
			if sub.paused {
				continue
			}
			res := sub.enter(n, parent, ancestors)
			switch res.Action {
			case Skip:
				sub.paused = true
				skipDepth[i] = depth
			case Break:
				return ResultBreak
			case Delete, Replace:
				return res
			}
		}
		return ResultContinue
	}

	leave := func(n, parent Node, ancestors []Node) Result {
		for i, sub := range visitors {
			if sub.paused {
				if skipDepth[i] == depth {
					sub.paused = false
				}
				continue
			}
			res := sub.leave(n, parent, ancestors)
			switch res.Action {
			case Break:
				depth--
				return ResultBreak
			case Delete, Replace:
				depth--
				return res
			}
		}
		depth--
		return ResultContinue
	}

	return &Visitor{Enter: enter, Leave: leave}
}
