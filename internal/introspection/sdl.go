// Package introspection implements Iris's fixed introspection schema
// (spec.md §1, C11): the `__Schema`/`__Type`/`__Field`/`__InputValue`/
// `__Directive`/`__TypeKind`/`__DirectiveLocation` type definitions plus the
// `__schema`/`__type` meta-fields a built Query type gains when
// introspection is enabled. Grounded on internal/generator/gqlgen.go's
// convention of embedding a constant template string and feeding it
// through the ordinary pipeline instead of hand-assembling Go structs;
// here the "template" is SDL text run through internal/parser and
// internal/schema exactly as user schemas are.
//
// Enum-style values (type kinds, directive locations) have no direct
// counterpart in Iris's variant model — spec.md's bare-variant syntax
// always references another declared type (the "subtype" case), so each
// enum member is declared as its own zero-field marker type first, the
// same pattern spec.md's "Absence of `=` entirely: treat as empty record"
// rule produces.
package introspection

// SDL is the fixed document describing Iris's introspection type system,
// including a synthetic Query type whose two fields (__schema, __type) are
// the meta-fields grafted onto a caller's own Query type by Inject.
const SDL = `
resolver __Schema {
  description: String?
  types: [__Type]
  queryType: __Type
  mutationType: __Type?
  subscriptionType: __Type?
  directives: [__Directive]
}

data __KIND_SCALAR
data __KIND_DATA
data __KIND_RESOLVER
data __KIND_LIST
data __KIND_MAYBE

data __TypeKind = __KIND_SCALAR | __KIND_DATA | __KIND_RESOLVER | __KIND_LIST | __KIND_MAYBE

resolver __Type {
  kind: __TypeKind
  name: String?
  description: String?
  fields: [__Field]?
  variants: [String]?
  ofType: __Type?
}

resolver __Field {
  name: String
  description: String?
  args: [__InputValue]
  type: __Type
  isDeprecated: Boolean
  deprecationReason: String?
}

resolver __InputValue {
  name: String
  description: String?
  type: __Type
  defaultValue: String?
}

data __LOC_QUERY
data __LOC_MUTATION
data __LOC_SUBSCRIPTION
data __LOC_FIELD
data __LOC_FRAGMENT_DEFINITION
data __LOC_FRAGMENT_SPREAD
data __LOC_INLINE_FRAGMENT
data __LOC_VARIABLE_DEFINITION
data __LOC_SCHEMA
data __LOC_SCALAR
data __LOC_OBJECT
data __LOC_FIELD_DEFINITION
data __LOC_ARGUMENT_DEFINITION
data __LOC_INTERFACE
data __LOC_UNION
data __LOC_ENUM
data __LOC_ENUM_VALUE
data __LOC_INPUT_OBJECT
data __LOC_INPUT_FIELD_DEFINITION

data __DirectiveLocation =
    __LOC_QUERY
  | __LOC_MUTATION
  | __LOC_SUBSCRIPTION
  | __LOC_FIELD
  | __LOC_FRAGMENT_DEFINITION
  | __LOC_FRAGMENT_SPREAD
  | __LOC_INLINE_FRAGMENT
  | __LOC_VARIABLE_DEFINITION
  | __LOC_SCHEMA
  | __LOC_SCALAR
  | __LOC_OBJECT
  | __LOC_FIELD_DEFINITION
  | __LOC_ARGUMENT_DEFINITION
  | __LOC_INTERFACE
  | __LOC_UNION
  | __LOC_ENUM
  | __LOC_ENUM_VALUE
  | __LOC_INPUT_OBJECT
  | __LOC_INPUT_FIELD_DEFINITION

resolver __Directive {
  name: String
  description: String?
  locations: [__DirectiveLocation]
  args: [__InputValue]
  isRepeatable: Boolean
}

resolver Query {
  __schema: __Schema
  __type(name: String): __Type?
}
`
