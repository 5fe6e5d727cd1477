// Package validate implements Iris's SDL and schema validation rules
// (spec.md §4.6, C9): UniqueVariantAndFieldDefinitionNames, KnownTypeNames,
// ProvidedRequiredArgumentsOnDirectives, FieldsOnCorrectType,
// PossibleFragmentSpreads, and the RootType/Directive/Field schema-shape
// rules. Every rule accumulates into an error slice and never throws, the
// "Accumulated (return list)" channel spec.md §7 describes — grounded on
// the teacher's internal/annotations.Validator (errors []*ValidationError,
// addError, never panics mid-pass).
package validate

import (
	"github.com/iris-graphql/iris/internal/ast"
	"github.com/iris-graphql/iris/internal/ierror"
	"github.com/iris-graphql/iris/internal/types"
)

// validator carries the mutable state of one validation pass: a lookup
// table of known type/directive/fragment names built from the document
// under test, an optional previously-built schema (for rules that compare
// against existing state), and the accumulated error list.
type validator struct {
	doc    *ast.Document
	schema *types.Schema

	typeNames     map[string]bool
	directiveDefs map[string]*ast.DirectiveDefinition
	fragmentDefs  map[string]*ast.FragmentDefinition

	errs []*ierror.Error
}

func newValidator(doc *ast.Document, schema *types.Schema) *validator {
	v := &validator{
		doc:           doc,
		schema:        schema,
		typeNames:     map[string]bool{"String": true, "Int": true, "Float": true, "Boolean": true, "ID": true},
		directiveDefs: map[string]*ast.DirectiveDefinition{},
		fragmentDefs:  map[string]*ast.FragmentDefinition{},
	}
	if doc == nil {
		return v
	}
	for _, def := range doc.Definitions {
		switch d := def.(type) {
		case *ast.DataTypeDefinition:
			v.typeNames[d.Name.Value] = true
		case *ast.ResolverTypeDefinition:
			v.typeNames[d.Name.Value] = true
		case *ast.DirectiveDefinition:
			v.directiveDefs[d.Name.Value] = d
		case *ast.FragmentDefinition:
			v.fragmentDefs[d.Name.Value] = d
		}
	}
	return v
}

func (v *validator) addErr(e *ierror.Error) { v.errs = append(v.errs, e) }

func (v *validator) typeNameList() []string {
	out := make([]string, 0, len(v.typeNames))
	for n := range v.typeNames {
		out = append(out, n)
	}
	return out
}

// SDL runs the type-system-level rules over a freshly parsed Document:
// UniqueVariantAndFieldDefinitionNames, KnownTypeNames, and
// ProvidedRequiredArgumentsOnDirectives. It never throws; buildSchema
// composes this with the construction pass at the facade layer, running it
// first and aborting with a combined error on any violation (spec.md §7).
func SDL(doc *ast.Document) []*ierror.Error {
	return SDLAgainst(doc, nil)
}

// SDLAgainst is SDL plus the "pre-existing Schema extension target" half of
// UniqueVariantAndFieldDefinitionNames: fields already defined on existing
// can't be redefined by doc. internal/overlay uses this when merging an
// annotation overlay's supplementary fields onto an already-built schema.
func SDLAgainst(doc *ast.Document, existing *types.Schema) []*ierror.Error {
	v := newValidator(doc, existing)
	v.uniqueVariantAndFieldDefinitionNames()
	v.knownTypeNames()
	v.providedRequiredArgumentsOnDirectives()
	return v.errs
}

// Schema runs the RootType/Directive/Field schema-shape rules over an
// already-built Schema: these can only be checked once every type
// reference has been resolved to a concrete *types.IrisTypeDefinition.
func Schema(schema *types.Schema) []*ierror.Error {
	v := &validator{schema: schema}
	v.rootTypeShape()
	v.directiveArgumentShape()
	v.fieldTypeShape()
	return v.errs
}

// Document runs the executable-document rules — FieldsOnCorrectType and
// PossibleFragmentSpreads — validating a query/fragment document's
// selections against an already-built Schema.
func Document(doc *ast.Document, schema *types.Schema) []*ierror.Error {
	v := newValidator(doc, schema)
	v.validateSelections()
	return v.errs
}

// uniqueVariantAndFieldDefinitionNames implements spec.md §4.6's first
// rule: per type, variant names are unique; per variant, field names are
// unique; fields already defined in a pre-existing Schema extension target
// cannot be redefined.
func (v *validator) uniqueVariantAndFieldDefinitionNames() {
	seenTypes := map[string]bool{}
	for _, def := range v.doc.Definitions {
		var name string
		var variants []*ast.VariantDefinition
		var node ierror.Locatable
		switch d := def.(type) {
		case *ast.DataTypeDefinition:
			name, variants, node = d.Name.Value, d.Variants, d
		case *ast.ResolverTypeDefinition:
			name, variants, node = d.Name.Value, d.Variants, d
		default:
			continue
		}
		if seenTypes[name] {
			v.addErr(ierror.New(
				`Schema must contain uniquely named types but contains multiple types named "%s".`, name,
			).WithNode(node))
		}
		seenTypes[name] = true
		v.uniqueVariantNames(name, variants)
	}
}

func (v *validator) uniqueVariantNames(typeName string, variants []*ast.VariantDefinition) {
	seen := map[string]bool{}
	for _, variant := range variants {
		vname := variant.Name.Value
		if seen[vname] {
			v.addErr(ierror.New(
				`Type "%s" must contain uniquely named variants but contains multiple variants named "%s".`,
				typeName, vname,
			).WithNode(variant))
		}
		seen[vname] = true
		if variant.HasRecordBody() {
			v.uniqueFieldNames(typeName, vname, variant.Fields)
		}
	}
}

func (v *validator) uniqueFieldNames(typeName, variantName string, fields []*ast.FieldDefinition) {
	seen := map[string]bool{}

	var existingFields *types.FieldMap
	if v.schema != nil {
		if def, ok := v.schema.TypeMap[typeName]; ok {
			if variant, ok := def.VariantByName(variantName); ok {
				existingFields = variant.Fields
			}
		}
	}

	for _, f := range fields {
		fname := f.Name.Value
		if seen[fname] {
			v.addErr(ierror.New(
				`Variant "%s.%s" must contain uniquely named fields but contains multiple fields named "%s".`,
				typeName, variantName, fname,
			).WithNode(f))
		}
		seen[fname] = true

		if existingFields != nil {
			if _, has := existingFields.Get(fname); has {
				v.addErr(ierror.New(
					`Field "%s.%s.%s" is already defined and cannot be redefined.`, typeName, variantName, fname,
				).WithNode(f))
			}
		}
	}
}
