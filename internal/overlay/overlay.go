// Package overlay implements Iris's YAML annotation overlay: deployment- or
// team-specific metadata (descriptions, deprecation reasons) keyed by
// type/variant/field path and merged onto an already-parsed *ast.Document
// before internal/schema builds it. Generalizes the teacher's
// internal/annotations YAML-merge subsystem (yaml.go, merger.go) from
// TypeMUX's namespace/type/enum/union/service shape to Iris's two-role
// (data/resolver) type system.
package overlay

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/iris-graphql/iris/internal/ast"
)

// Overlay is the root structure of a YAML overlay file. Types is keyed by
// type name (data or resolver, Iris has no separate enum/union/service
// namespaces); each TypeOverlay may in turn annotate the type's own
// variants and fields.
type Overlay struct {
	Types map[string]*TypeOverlay `yaml:"types"`
}

// TypeOverlay annotates a single data/resolver type definition.
type TypeOverlay struct {
	Description *string                    `yaml:"description,omitempty"`
	Deprecated  *Deprecation               `yaml:"deprecated,omitempty"`
	Variants    map[string]*VariantOverlay `yaml:"variants,omitempty"`
	Fields      map[string]*FieldOverlay   `yaml:"fields,omitempty"`
}

// VariantOverlay annotates one variant of a type (a record-body member or a
// bare subtype reference).
type VariantOverlay struct {
	Description *string      `yaml:"description,omitempty"`
	Deprecated  *Deprecation `yaml:"deprecated,omitempty"`
}

// FieldOverlay annotates the field of that name in every record variant of
// a type that has one.
type FieldOverlay struct {
	Description *string      `yaml:"description,omitempty"`
	Deprecated  *Deprecation `yaml:"deprecated,omitempty"`
}

// Deprecation mirrors the built-in @deprecated directive's single "reason"
// argument.
type Deprecation struct {
	Reason string `yaml:"reason"`
}

// Load reads and parses an overlay file.
func Load(path string) (*Overlay, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read overlay file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse parses an overlay document from raw YAML bytes.
func Parse(data []byte) (*Overlay, error) {
	var o Overlay
	if err := yaml.Unmarshal(data, &o); err != nil {
		return nil, fmt.Errorf("failed to parse overlay file: %w", err)
	}
	return &o, nil
}

// LoadAll reads and merges a sequence of overlay files, later files
// overriding earlier ones on conflicting keys.
func LoadAll(paths []string) (*Overlay, error) {
	result := &Overlay{Types: make(map[string]*TypeOverlay)}
	for _, path := range paths {
		o, err := Load(path)
		if err != nil {
			return nil, err
		}
		result.merge(o)
	}
	return result, nil
}

func (o *Overlay) merge(other *Overlay) {
	if o.Types == nil {
		o.Types = make(map[string]*TypeOverlay)
	}
	for name, t := range other.Types {
		if existing, ok := o.Types[name]; ok {
			existing.mergeFrom(t)
		} else {
			o.Types[name] = t
		}
	}
}

func (t *TypeOverlay) mergeFrom(other *TypeOverlay) {
	if other.Description != nil {
		t.Description = other.Description
	}
	if other.Deprecated != nil {
		t.Deprecated = other.Deprecated
	}
	if len(other.Variants) > 0 {
		if t.Variants == nil {
			t.Variants = make(map[string]*VariantOverlay)
		}
		for name, v := range other.Variants {
			t.Variants[name] = v
		}
	}
	if len(other.Fields) > 0 {
		if t.Fields == nil {
			t.Fields = make(map[string]*FieldOverlay)
		}
		for name, f := range other.Fields {
			t.Fields[name] = f
		}
	}
}

// Apply merges o onto doc in place, ahead of a schema.Build call. Overlay
// descriptions and deprecation reasons override whatever the SDL already
// declared inline.
func Apply(doc *ast.Document, o *Overlay) {
	for _, def := range doc.Definitions {
		switch d := def.(type) {
		case *ast.DataTypeDefinition:
			applyType(o, d.Name.Value, &d.Description, d.Variants)
		case *ast.ResolverTypeDefinition:
			applyType(o, d.Name.Value, &d.Description, d.Variants)
		}
	}
}

func applyType(o *Overlay, name string, description **ast.StringValue, variants []*ast.VariantDefinition) {
	t, ok := o.Types[name]
	if !ok {
		return
	}
	if t.Description != nil {
		*description = describeValue(*t.Description)
	}

	for _, v := range variants {
		if vo, ok := t.Variants[v.Name.Value]; ok {
			if vo.Description != nil {
				v.Description = describeValue(*vo.Description)
			}
			if vo.Deprecated != nil {
				setDeprecated(&v.Directives, vo.Deprecated.Reason)
			}
		}
		if v.Fields == nil {
			continue
		}
		for _, f := range v.Fields {
			fo, ok := t.Fields[f.Name.Value]
			if !ok {
				continue
			}
			if fo.Description != nil {
				f.Description = describeValue(*fo.Description)
			}
			if fo.Deprecated != nil {
				setDeprecated(&f.Directives, fo.Deprecated.Reason)
			}
		}
	}
}

func describeValue(s string) *ast.StringValue {
	return &ast.StringValue{Value: s}
}

// setDeprecated replaces any existing @deprecated directive in directives
// with one carrying reason, or appends a new one.
func setDeprecated(directives *[]*ast.Directive, reason string) {
	d := &ast.Directive{
		Name: &ast.Name{Value: "deprecated"},
		Arguments: []*ast.Argument{
			{Name: &ast.Name{Value: "reason"}, Value: &ast.StringValue{Value: reason}},
		},
	}
	for i, existing := range *directives {
		if existing.Name.Value == "deprecated" {
			(*directives)[i] = d
			return
		}
	}
	*directives = append(*directives, d)
}
