// Package schema implements Iris's two-pass schema builder (spec.md §4.4,
// C7): turning a validated AST Document into a *types.Schema. Grounded on
// the teacher's cmd/typemux/main.go parseSchemaWithImports flow (parse,
// then register-then-resolve against a TypeRegistry), generalized from
// TypeMUX's namespace-qualified registry to Iris's single flat typeMap with
// thunked variants (internal/types.IrisTypeDefinition.SetVariantsThunk).
package schema

import (
	"github.com/iris-graphql/iris/internal/ast"
	"github.com/iris-graphql/iris/internal/coerce"
	"github.com/iris-graphql/iris/internal/ierror"
	"github.com/iris-graphql/iris/internal/types"
)

// deprecatedLocations are the occurrences the built-in @deprecated directive
// is valid at; VARIANT_DEFINITION is included per this package's resolution
// of the directive-location closed set (enum-like variants can be marked
// deprecated the same way a field can).
var deprecatedLocations = []string{
	"FIELD_DEFINITION", "ARGUMENT_DEFINITION", "VARIANT_DEFINITION",
}

// builder carries the mutable state of one Build call: the type map being
// assembled and an accumulated fatal-error list (schema-construction errors
// are the "Fatal (throw)" channel per spec.md §7; internally they're
// collected rather than returned on first sight, so a single Build call
// reports every independent problem in one pass).
type builder struct {
	typeMap map[string]*types.IrisTypeDefinition
	// defNodes holds the originating AST node for every user-registered
	// type, consulted when wiring each type's variants thunk.
	defNodes      map[string]ast.Node
	directiveDefs []*ast.DirectiveDefinition
	errs          []*ierror.Error
}

func (b *builder) addErr(e *ierror.Error) { b.errs = append(b.errs, e) }

// asLocatable adapts an ast.Node (whose static interface carries only
// Kind/GetLoc) to ierror.Locatable via the promoted Position/Src methods
// every concrete node has through its embedded base.
func asLocatable(n ast.Node) ierror.Locatable {
	if n == nil {
		return nil
	}
	l, _ := n.(ierror.Locatable)
	return l
}

// Build assembles a *types.Schema from a parsed Document, implementing
// spec.md §4.4's six steps. It does not itself run SDL validation — callers
// that need spec.md's "buildSchema runs validateSDL first" behavior compose
// this with internal/validate at the facade layer.
func Build(doc *ast.Document) (*types.Schema, error) {
	b := &builder{
		typeMap:  types.NewBuiltinTypeMap(),
		defNodes: map[string]ast.Node{},
	}

	// Step 1: register placeholders for every top-level type definition.
	for _, def := range doc.Definitions {
		switch d := def.(type) {
		case *ast.DataTypeDefinition:
			b.registerType(d.Name.Value, types.RoleData, d.Description, d)
		case *ast.ResolverTypeDefinition:
			b.registerType(d.Name.Value, types.RoleResolver, d.Description, d)
		case *ast.DirectiveDefinition:
			b.directiveDefs = append(b.directiveDefs, d)
		}
	}
	if len(b.errs) > 0 {
		return nil, ierror.List(b.errs)
	}

	// Step 3 (wiring): each type's variants thunk is installed now but only
	// evaluated lazily — except that Build forces every thunk below so that
	// schema-construction errors (unknown type refs, bad defaults) surface
	// as part of this single fatal call instead of on first later access.
	for name, node := range b.defNodes {
		def := b.typeMap[name]
		astNode := node
		def.SetVariantsThunk(func() []*types.IrisVariant {
			return b.buildVariants(def, astNode)
		})
	}

	// Step 4: directive definitions.
	directives := b.buildDirectives()

	for _, def := range b.typeMap {
		def.Variants()
	}
	if len(b.errs) > 0 {
		return nil, ierror.List(b.errs)
	}

	// Step 5: root operation types.
	query := b.rootType("Query", true)
	mutation := b.rootType("Mutation", false)
	subscription := b.rootType("Subscription", false)
	if len(b.errs) > 0 {
		return nil, ierror.List(b.errs)
	}

	// Step 6: reachable type-map closure.
	roots := make([]*types.IrisTypeDefinition, 0, 3)
	if query != nil {
		roots = append(roots, query)
	}
	if mutation != nil {
		roots = append(roots, mutation)
	}
	if subscription != nil {
		roots = append(roots, subscription)
	}
	typeMap, err := closure(roots, directives)
	if err != nil {
		return nil, err
	}

	return &types.Schema{
		Query:        query,
		Mutation:     mutation,
		Subscription: subscription,
		Directives:   directives,
		TypeMap:      typeMap,
		AstNode:      doc,
	}, nil
}

func (b *builder) registerType(name string, role types.Role, desc *ast.StringValue, node ast.Node) {
	if _, exists := b.typeMap[name]; exists {
		b.addErr(ierror.New(
			`Schema must contain uniquely named types but contains multiple types named "%s".`, name,
		).WithNode(asLocatable(node)))
		return
	}
	def := &types.IrisTypeDefinition{Role: role, Name: name, AstNode: node}
	if desc != nil {
		d := desc.Value
		def.Description = &d
	}
	b.typeMap[name] = def
	b.defNodes[name] = node
}

// getWrappedType implements spec.md §4.4 step 2. Errors are accumulated on
// b rather than returned, so callers (variant/field/argument builders) can
// stay simple; a placeholder Named is returned in the error case purely to
// keep the resulting type graph well-formed for the rest of construction.
func (b *builder) getWrappedType(node ast.Node) types.IrisType {
	switch t := node.(type) {
	case *ast.NamedType:
		def, ok := b.typeMap[t.Name.Value]
		if !ok {
			b.addErr(ierror.New(`Unknown type "%s".`, t.Name.Value).WithNode(t))
			return types.Named{Def: &types.IrisTypeDefinition{Name: t.Name.Value}}
		}
		return types.Named{Def: def}
	case *ast.ListType:
		return types.List{Of: b.getWrappedType(t.Type)}
	case *ast.MaybeType:
		return types.Maybe{Of: b.getWrappedType(t.Type)}
	default:
		b.addErr(ierror.New("Invalid type reference node.").WithNode(asLocatable(node)))
		return types.Named{Def: &types.IrisTypeDefinition{Name: "Unknown"}}
	}
}

// buildVariants is the thunk body installed on every user-defined type,
// spec.md §4.4 step 3.
func (b *builder) buildVariants(def *types.IrisTypeDefinition, node ast.Node) []*types.IrisVariant {
	var astVariants []*ast.VariantDefinition
	switch n := node.(type) {
	case *ast.DataTypeDefinition:
		astVariants = n.Variants
	case *ast.ResolverTypeDefinition:
		astVariants = n.Variants
	}

	out := make([]*types.IrisVariant, 0, len(astVariants))
	for _, v := range astVariants {
		out = append(out, b.buildVariant(def, v))
	}
	return out
}

func (b *builder) buildVariant(def *types.IrisTypeDefinition, v *ast.VariantDefinition) *types.IrisVariant {
	iv := &types.IrisVariant{Name: v.Name.Value, AstNode: v}
	if v.Description != nil {
		d := v.Description.Value
		iv.Description = &d
	}
	if reason, ok := b.deprecationReason(v.Directives); ok {
		iv.DeprecationReason = &reason
	}

	if !v.HasRecordBody() {
		ref, ok := b.typeMap[v.Name.Value]
		if !ok {
			b.addErr(ierror.New(`Unknown type "%s".`, v.Name.Value).WithNode(v))
			return iv
		}
		iv.Type = types.Named{Def: ref}
		return iv
	}

	fields := types.NewFieldMap()
	for _, fd := range v.Fields {
		fields.Set(b.buildField(def, fd))
	}
	iv.Fields = fields
	return iv
}

func (b *builder) buildField(def *types.IrisTypeDefinition, fd *ast.FieldDefinition) *types.IrisField {
	f := &types.IrisField{
		Name:    fd.Name.Value,
		Type:    b.getWrappedType(fd.Type),
		AstNode: fd,
	}
	if fd.Description != nil {
		d := fd.Description.Value
		f.Description = &d
	}
	if reason, ok := b.deprecationReason(fd.Directives); ok {
		f.DeprecationReason = &reason
	}
	// Arguments only exist on resolver-role fields (spec.md §3).
	if def.Role == types.RoleResolver {
		for _, ad := range fd.Arguments {
			f.Args = append(f.Args, b.buildArgument(ad))
		}
	}
	return f
}

func (b *builder) buildArgument(ad *ast.ArgumentDefinition) *types.IrisArgument {
	arg := &types.IrisArgument{
		Name:    ad.Name.Value,
		Type:    b.getWrappedType(ad.Type),
		AstNode: ad,
	}
	if reason, ok := b.deprecationReason(ad.Directives); ok {
		arg.DeprecationReason = &reason
	}
	if ad.DefaultValue != nil {
		v, ok := coerce.ValueFromAST(ad.DefaultValue, arg.Type, nil)
		if !ok {
			b.addErr(ierror.New("Argument %q has an invalid default value.", ad.Name.Value).WithNode(ad.DefaultValue))
		} else {
			arg.DefaultValue = v
			arg.HasDefaultValue = true
		}
	}
	return arg
}

// deprecationReason looks for a @deprecated directive among directives,
// returning (reason, true) if present — using its explicit "reason"
// argument if given, else the built-in directive's own default ("").
func (b *builder) deprecationReason(directives []*ast.Directive) (string, bool) {
	for _, d := range directives {
		if d.Name.Value != "deprecated" {
			continue
		}
		for _, arg := range d.Arguments {
			if arg.Name.Value == "reason" {
				if sv, ok := arg.Value.(*ast.StringValue); ok {
					return sv.Value, true
				}
			}
		}
		return "", true
	}
	return "", false
}

func (b *builder) buildDirectives() []*types.Directive {
	out := make([]*types.Directive, 0, len(b.directiveDefs)+1)
	seen := map[string]bool{}

	out = append(out, &types.Directive{
		Name: "deprecated",
		Args: []*types.IrisArgument{{
			Name:            "reason",
			Type:            types.Named{Def: b.typeMap["String"]},
			DefaultValue:    "",
			HasDefaultValue: true,
		}},
		Locations: deprecatedLocations,
	})
	seen["deprecated"] = true

	for _, dd := range b.directiveDefs {
		name := dd.Name.Value
		if seen[name] {
			continue
		}
		seen[name] = true

		d := &types.Directive{Name: name, Repeatable: dd.Repeatable, AstNode: dd}
		if dd.Description != nil {
			desc := dd.Description.Value
			d.Description = &desc
		}
		for _, loc := range dd.Locations {
			d.Locations = append(d.Locations, loc.Value)
		}
		for _, ad := range dd.Arguments {
			d.Args = append(d.Args, b.buildArgument(ad))
		}
		out = append(out, d)
	}
	return out
}

// rootType resolves one of Query/Mutation/Subscription, enforcing the
// "record" shape constraint spec.md §4.4 step 5 requires of all three.
func (b *builder) rootType(name string, required bool) *types.IrisTypeDefinition {
	def, ok := b.typeMap[name]
	if !ok {
		if required {
			b.addErr(ierror.New("Query root type must be provided."))
		}
		return nil
	}
	if !def.IsRecord() {
		b.addErr(ierror.New(
			"%s root type must be a record resolver with a single variant named %q.", name, name,
		).WithNode(asLocatable(def.AstNode)))
		return nil
	}
	return def
}

// closure performs the DFS spec.md §4.4 step 6 describes, starting from
// roots plus every directive argument's named type, collecting every
// reachable *types.IrisTypeDefinition keyed by name.
func closure(roots []*types.IrisTypeDefinition, directives []*types.Directive) (map[string]*types.IrisTypeDefinition, error) {
	seen := map[string]*types.IrisTypeDefinition{}
	var errs ierror.List

	var visit func(def *types.IrisTypeDefinition)
	visit = func(def *types.IrisTypeDefinition) {
		if def == nil {
			return
		}
		if def.Name == "" {
			errs = append(errs, ierror.New("One of the provided types for building the Schema is missing a name."))
			return
		}
		if existing, ok := seen[def.Name]; ok {
			if existing != def {
				errs = append(errs, ierror.New(
					`Schema must contain uniquely named types but contains multiple types named "%s".`, def.Name,
				))
			}
			return
		}
		seen[def.Name] = def

		for _, v := range def.Variants() {
			if v.Type != nil {
				if named, ok := types.NamedOf(v.Type); ok {
					visit(named.Def)
				}
			}
			if v.Fields != nil {
				v.Fields.Each(func(f *types.IrisField) {
					if named, ok := types.NamedOf(f.Type); ok {
						visit(named.Def)
					}
					for _, arg := range f.Args {
						if named, ok := types.NamedOf(arg.Type); ok {
							visit(named.Def)
						}
					}
				})
			}
		}
	}

	for _, r := range roots {
		visit(r)
	}
	for _, d := range directives {
		for _, arg := range d.Args {
			if named, ok := types.NamedOf(arg.Type); ok {
				visit(named.Def)
			}
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return seen, nil
}

// Config is the programmatic construction surface, the counterpart of
// spec.md §6's buildSchema for callers that already hold built
// *types.IrisTypeDefinition values (e.g. internal/introspection's fixed
// schema) rather than an AST Document.
type Config struct {
	Description  *string
	Query        *types.IrisTypeDefinition
	Mutation     *types.IrisTypeDefinition
	Subscription *types.IrisTypeDefinition
	// Types lists additional types to force into the schema's closure even
	// if unreachable from the root operation types (spec.md §4.4 step 6's
	// "user-supplied type lists").
	Types      []*types.IrisTypeDefinition
	Directives []*types.Directive
}

// NewSchema builds a *types.Schema directly from already-constructed type
// definitions, bypassing AST/Document parsing entirely.
func NewSchema(cfg Config) (*types.Schema, error) {
	for _, root := range []*types.IrisTypeDefinition{cfg.Query, cfg.Mutation, cfg.Subscription} {
		if root == nil {
			continue
		}
		if !root.IsRecord() {
			return nil, ierror.New(
				"%s root type must be a record resolver with a single variant named %q.", root.Name, root.Name,
			)
		}
	}
	if cfg.Query == nil {
		return nil, ierror.New("Query root type must be provided.")
	}

	roots := make([]*types.IrisTypeDefinition, 0, len(cfg.Types)+3)
	roots = append(roots, cfg.Query)
	if cfg.Mutation != nil {
		roots = append(roots, cfg.Mutation)
	}
	if cfg.Subscription != nil {
		roots = append(roots, cfg.Subscription)
	}
	roots = append(roots, cfg.Types...)

	typeMap, err := closure(roots, cfg.Directives)
	if err != nil {
		return nil, err
	}

	return &types.Schema{
		Description:  cfg.Description,
		Query:        cfg.Query,
		Mutation:     cfg.Mutation,
		Subscription: cfg.Subscription,
		Directives:   cfg.Directives,
		TypeMap:      typeMap,
	}, nil
}
