// Package schemadiff computes a structural diff between two built
// *types.Schema values: added, removed, and changed named types, variants,
// and fields, classified by how likely the change is to break an existing
// client. Grounded directly in the teacher's internal/diff package
// (diff.go, types.go), generalized from TypeMUX's type/enum/union/service
// diffing to Iris's single IrisTypeDefinition/IrisVariant/IrisField graph.
// Operates purely on two already-built schema values; it has no executor
// and produces no network or persistence behavior.
package schemadiff

import (
	"fmt"

	"github.com/iris-graphql/iris/internal/types"
)

// ChangeType identifies the kind of structural change detected.
type ChangeType string

const (
	ChangeTypeRemoved           ChangeType = "type_removed"
	ChangeTypeAdded             ChangeType = "type_added"
	ChangeTypeRoleChanged       ChangeType = "type_role_changed"
	ChangeTypeVariantRemoved    ChangeType = "variant_removed"
	ChangeTypeVariantAdded      ChangeType = "variant_added"
	ChangeTypeFieldRemoved      ChangeType = "field_removed"
	ChangeTypeFieldAdded        ChangeType = "field_added"
	ChangeTypeFieldTypeChanged  ChangeType = "field_type_changed"
	ChangeTypeFieldMadeRequired ChangeType = "field_made_required"
	ChangeTypeFieldMadeOptional ChangeType = "field_made_optional"
	ChangeTypeFieldDeprecated   ChangeType = "field_deprecated"
)

// Severity indicates how likely a change is to break an existing client.
type Severity string

const (
	SeverityBreaking    Severity = "breaking"
	SeverityDangerous   Severity = "dangerous"
	SeverityNonBreaking Severity = "non-breaking"
)

// Change is a single detected difference between the base and head schema.
type Change struct {
	Type        ChangeType
	Severity    Severity
	Path        string // e.g. "User.email"
	Description string
	OldValue    string
	NewValue    string
}

// Result collects every change found by a Differ.Compare call.
type Result struct {
	Changes          []*Change
	BreakingCount    int
	DangerousCount   int
	NonBreakingCount int
}

func (r *Result) add(c *Change) {
	r.Changes = append(r.Changes, c)
	switch c.Severity {
	case SeverityBreaking:
		r.BreakingCount++
	case SeverityDangerous:
		r.DangerousCount++
	default:
		r.NonBreakingCount++
	}
}

// GetChangesBySeverity returns the subset of changes at a given severity.
func (r *Result) GetChangesBySeverity(s Severity) []*Change {
	var out []*Change
	for _, c := range r.Changes {
		if c.Severity == s {
			out = append(out, c)
		}
	}
	return out
}

// HasBreakingChanges reports whether any breaking change was found.
func (r *Result) HasBreakingChanges() bool { return r.BreakingCount > 0 }

// HasDangerousChanges reports whether any dangerous change was found.
func (r *Result) HasDangerousChanges() bool { return r.DangerousCount > 0 }

// RecommendedSemverBump suggests a semver bump level from the changes found.
func (r *Result) RecommendedSemverBump() string {
	switch {
	case r.BreakingCount > 0:
		return "major"
	case r.DangerousCount > 0 || r.NonBreakingCount > 0:
		return "minor"
	default:
		return "patch"
	}
}

// Differ compares a base and head schema.
type Differ struct {
	base, head *types.Schema
	result     *Result
}

// NewDiffer creates a Differ for the given base (old) and head (new) schemas.
func NewDiffer(base, head *types.Schema) *Differ {
	return &Differ{base: base, head: head, result: &Result{}}
}

// Compare walks both type maps and returns every detected change.
func (d *Differ) Compare() *Result {
	d.compareTypes()
	return d.result
}

func (d *Differ) compareTypes() {
	for name, baseDef := range d.base.TypeMap {
		headDef, ok := d.head.TypeMap[name]
		if !ok {
			d.result.add(&Change{
				Type:        ChangeTypeRemoved,
				Severity:    SeverityBreaking,
				Path:        name,
				Description: fmt.Sprintf("type %q was removed", name),
				OldValue:    name,
			})
			continue
		}
		d.compareType(name, baseDef, headDef)
	}

	for name := range d.head.TypeMap {
		if _, ok := d.base.TypeMap[name]; !ok {
			d.result.add(&Change{
				Type:        ChangeTypeAdded,
				Severity:    SeverityNonBreaking,
				Path:        name,
				Description: fmt.Sprintf("type %q was added", name),
				NewValue:    name,
			})
		}
	}
}

func (d *Differ) compareType(name string, base, head *types.IrisTypeDefinition) {
	if base.Role != head.Role {
		d.result.add(&Change{
			Type:        ChangeTypeRoleChanged,
			Severity:    SeverityBreaking,
			Path:        name,
			Description: fmt.Sprintf("type %q changed role from %s to %s", name, base.Role, head.Role),
			OldValue:    base.Role.String(),
			NewValue:    head.Role.String(),
		})
	}
	if base.IsScalar() || head.IsScalar() {
		return
	}
	d.compareVariants(name, base, head)
}

func (d *Differ) compareVariants(typeName string, base, head *types.IrisTypeDefinition) {
	headVariants := make(map[string]*types.IrisVariant, len(head.Variants()))
	for _, v := range head.Variants() {
		headVariants[v.Name] = v
	}

	for _, baseVariant := range base.Variants() {
		path := typeName + "." + baseVariant.Name
		headVariant, ok := headVariants[baseVariant.Name]
		if !ok {
			d.result.add(&Change{
				Type:        ChangeTypeVariantRemoved,
				Severity:    SeverityBreaking,
				Path:        path,
				Description: fmt.Sprintf("variant %q was removed from %q", baseVariant.Name, typeName),
				OldValue:    baseVariant.Name,
			})
			continue
		}
		delete(headVariants, baseVariant.Name)

		if baseVariant.DeprecationReason == nil && headVariant.DeprecationReason != nil {
			d.result.add(&Change{
				Type:        ChangeTypeFieldDeprecated,
				Severity:    SeverityNonBreaking,
				Path:        path,
				Description: fmt.Sprintf("variant %q was marked deprecated", path),
				NewValue:    *headVariant.DeprecationReason,
			})
		}

		if baseVariant.Fields != nil && headVariant.Fields != nil {
			d.compareFields(path, baseVariant.Fields, headVariant.Fields)
		}
	}

	for name := range headVariants {
		d.result.add(&Change{
			Type:        ChangeTypeVariantAdded,
			Severity:    SeverityNonBreaking,
			Path:        typeName + "." + name,
			Description: fmt.Sprintf("variant %q was added to %q", name, typeName),
			NewValue:    name,
		})
	}
}

func (d *Differ) compareFields(variantPath string, base, head *types.FieldMap) {
	seen := make(map[string]bool, head.Len())
	head.Each(func(f *types.IrisField) { seen[f.Name] = true })

	base.Each(func(baseField *types.IrisField) {
		path := variantPath + "." + baseField.Name
		headField, ok := head.Get(baseField.Name)
		if !ok {
			d.result.add(&Change{
				Type:        ChangeTypeFieldRemoved,
				Severity:    SeverityBreaking,
				Path:        path,
				Description: fmt.Sprintf("field %q was removed", path),
				OldValue:    baseField.Name,
			})
			return
		}
		delete(seen, baseField.Name)
		d.compareFieldChange(path, baseField, headField)
	})

	head.Each(func(headField *types.IrisField) {
		if seen[headField.Name] {
			d.result.add(&Change{
				Type:        ChangeTypeFieldAdded,
				Severity:    SeverityNonBreaking,
				Path:        variantPath + "." + headField.Name,
				Description: fmt.Sprintf("field %q was added", variantPath+"."+headField.Name),
				NewValue:    headField.Name,
			})
		}
	})
}

func (d *Differ) compareFieldChange(path string, base, head *types.IrisField) {
	baseType, headType := base.Type.String(), head.Type.String()
	if baseType != headType {
		switch {
		case types.IsMaybeType(base.Type) && !types.IsMaybeType(head.Type):
			d.result.add(&Change{
				Type:        ChangeTypeFieldMadeRequired,
				Severity:    SeverityBreaking,
				Path:        path,
				Description: fmt.Sprintf("field %q became required", path),
				OldValue:    baseType,
				NewValue:    headType,
			})
		case !types.IsMaybeType(base.Type) && types.IsMaybeType(head.Type):
			d.result.add(&Change{
				Type:        ChangeTypeFieldMadeOptional,
				Severity:    SeverityDangerous,
				Path:        path,
				Description: fmt.Sprintf("field %q became optional", path),
				OldValue:    baseType,
				NewValue:    headType,
			})
		default:
			d.result.add(&Change{
				Type:        ChangeTypeFieldTypeChanged,
				Severity:    SeverityBreaking,
				Path:        path,
				Description: fmt.Sprintf("field %q changed type", path),
				OldValue:    baseType,
				NewValue:    headType,
			})
		}
	}

	if base.DeprecationReason == nil && head.DeprecationReason != nil {
		d.result.add(&Change{
			Type:        ChangeTypeFieldDeprecated,
			Severity:    SeverityNonBreaking,
			Path:        path,
			Description: fmt.Sprintf("field %q was marked deprecated", path),
			NewValue:    *head.DeprecationReason,
		})
	}
}
