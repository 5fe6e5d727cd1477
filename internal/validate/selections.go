package validate

import (
	"sort"

	"github.com/iris-graphql/iris/internal/ast"
	"github.com/iris-graphql/iris/internal/ierror"
	"github.com/iris-graphql/iris/internal/suggest"
	"github.com/iris-graphql/iris/internal/types"
)

// validateSelections implements spec.md §4.6's FieldsOnCorrectType and
// PossibleFragmentSpreads rules over every operation's and fragment's
// selection set, threading the enclosing resolver type through the walk
// the way a TypeInfo visitor would.
func (v *validator) validateSelections() {
	for _, def := range v.doc.Definitions {
		switch d := def.(type) {
		case *ast.OperationDefinition:
			v.validateSelectionSet(d.SelectionSet, v.operationRoot(d.Operation))
		case *ast.FragmentDefinition:
			if d.TypeCondition == nil {
				continue
			}
			if target, ok := v.schema.TypeMap[d.TypeCondition.Name.Value]; ok {
				v.validateSelectionSet(d.SelectionSet, target)
			}
		}
	}
}

func (v *validator) operationRoot(op string) *types.IrisTypeDefinition {
	switch op {
	case "mutation":
		return v.schema.Mutation
	case "subscription":
		return v.schema.Subscription
	default:
		return v.schema.Query
	}
}

func (v *validator) validateSelectionSet(set *ast.SelectionSet, parent *types.IrisTypeDefinition) {
	if set == nil || parent == nil {
		return
	}
	for _, sel := range set.Selections {
		switch s := sel.(type) {
		case *ast.Field:
			v.validateField(s, parent)
		case *ast.FragmentSpread:
			v.validateFragmentSpread(s, parent)
		case *ast.InlineFragment:
			target := parent
			if s.TypeCondition != nil {
				if t, ok := v.schema.TypeMap[s.TypeCondition.Name.Value]; ok {
					v.possibleFragmentSpread(parent, t, s)
					target = t
				}
			}
			v.validateSelectionSet(s.SelectionSet, target)
		}
	}
}

// validateField implements FieldsOnCorrectType for a single selected field:
// a record type's own field set is checked directly, with typo suggestions
// on miss; an abstract (union-like) type has no fields of its own, so any
// selection beyond __typename suggests spreading an inline fragment on
// whichever members define the field.
func (v *validator) validateField(f *ast.Field, parent *types.IrisTypeDefinition) {
	name := f.Name.Value
	if name == "__typename" {
		return
	}

	if variant, ok := parent.DefaultVariant(); ok && variant.Fields != nil {
		fd, found := variant.Fields.Get(name)
		if !found {
			v.fieldNotFound(name, parent.Name, variant.Fields.Names(), f)
			return
		}
		if f.SelectionSet != nil {
			if named, ok := types.NamedOf(fd.Type); ok {
				v.validateSelectionSet(f.SelectionSet, named.Def)
			}
		}
		return
	}

	if members := v.membersDefiningField(parent, name); len(members) > 0 {
		v.addErr(ierror.New(
			`Cannot query field "%s" on type "%s". Did you mean to use an inline fragment on %s?`,
			name, parent.Name, suggest.QuotedOrList(members),
		).WithNode(f))
		return
	}
	v.fieldNotFound(name, parent.Name, nil, f)
}

func (v *validator) fieldNotFound(field, typeName string, known []string, node ierror.Locatable) {
	msg := `Cannot query field "` + field + `" on type "` + typeName + `".`
	if sugg := suggest.Suggestions(field, known); len(sugg) > 0 {
		msg += ` Did you mean ` + suggest.QuotedOrList(sugg) + `?`
	}
	v.addErr(ierror.New("%s", msg).WithNode(node))
}

// membersDefiningField ranks parent's bare-name subtype members that
// define field by usage count (how often each member is referenced
// elsewhere in the schema's type graph) and then by name, the tiebreak
// order spec.md §4.6 specifies for the inline-fragment suggestion.
func (v *validator) membersDefiningField(parent *types.IrisTypeDefinition, field string) []string {
	type candidate struct {
		name  string
		usage int
	}
	var candidates []candidate
	for _, variant := range parent.Variants() {
		if variant.Type == nil {
			continue
		}
		named, ok := types.NamedOf(variant.Type)
		if !ok || !named.Def.IsRecord() {
			continue
		}
		rv, _ := named.Def.DefaultVariant()
		if rv.Fields == nil {
			continue
		}
		if _, has := rv.Fields.Get(field); has {
			candidates = append(candidates, candidate{named.Def.Name, v.usageCount(named.Def.Name)})
		}
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].usage != candidates[j].usage {
			return candidates[i].usage > candidates[j].usage
		}
		return candidates[i].name < candidates[j].name
	})
	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = c.name
	}
	return out
}

// usageCount counts how many field/variant type references across the
// whole schema name the given type, the "usage count" spec.md §4.6's
// suggestion ranking is keyed on.
func (v *validator) usageCount(name string) int {
	count := 0
	for _, def := range v.schema.TypeMap {
		for _, variant := range def.Variants() {
			if variant.Type != nil {
				if named, ok := types.NamedOf(variant.Type); ok && named.Def.Name == name {
					count++
				}
			}
			if variant.Fields != nil {
				variant.Fields.Each(func(f *types.IrisField) {
					if named, ok := types.NamedOf(f.Type); ok && named.Def.Name == name {
						count++
					}
				})
			}
		}
	}
	return count
}

func (v *validator) validateFragmentSpread(s *ast.FragmentSpread, parent *types.IrisTypeDefinition) {
	frag, ok := v.fragmentDefs[s.Name.Value]
	if !ok || frag.TypeCondition == nil {
		return
	}
	target, ok := v.schema.TypeMap[frag.TypeCondition.Name.Value]
	if !ok {
		return
	}
	v.possibleFragmentSpread(parent, target, s)
}

// possibleFragmentSpread implements PossibleFragmentSpreads: a spread is
// only valid when the parent and fragment types' possible-type sets
// overlap.
func (v *validator) possibleFragmentSpread(parent, fragType *types.IrisTypeDefinition, node ierror.Locatable) {
	parentTypes := possibleTypes(parent)
	fragTypes := possibleTypes(fragType)
	for name := range parentTypes {
		if fragTypes[name] {
			return
		}
	}
	v.addErr(ierror.New(
		`Fragment cannot be spread here as objects of type "%s" can never be of type "%s".`,
		parent.Name, fragType.Name,
	).WithNode(node))
}

// possibleTypes returns the set of concrete record-form type names def
// could resolve to at runtime: itself if it's already a record, or the
// union of every bare-name subtype member's own possible types.
func possibleTypes(def *types.IrisTypeDefinition) map[string]bool {
	out := map[string]bool{}
	if def.IsRecord() {
		out[def.Name] = true
		return out
	}
	for _, variant := range def.Variants() {
		if variant.Type == nil {
			continue
		}
		if named, ok := types.NamedOf(variant.Type); ok {
			for name := range possibleTypes(named.Def) {
				out[name] = true
			}
		}
	}
	return out
}
