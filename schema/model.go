// Package schema is the normalized, kind-partitioned model of an introspected
// GraphQL schema.
//
// A Schema is built once per generation run and not modified afterwards.
// Type references are kept in their raw introspection shape; they are
// resolved, and their targets looked up, only when code is generated.
package schema

import "github.com/Yamashou/gqlbuilder/introspection"

type Schema struct {
	// Types indexes every type by name.
	Types map[string]Type

	// The per-kind slices keep introspection order.
	Objects      []*Object
	Interfaces   []*Interface
	Unions       []*Union
	Enums        []*Enum
	Scalars      []*Scalar
	InputObjects []*InputObject

	Operations []*Operation
}

// Lookup returns the type called name.
func (s *Schema) Lookup(name string) (Type, bool) {
	t, ok := s.Types[name]
	return t, ok
}

// Type is one of *Object, *Interface, *Union, *Enum, *Scalar or *InputObject.
type Type interface {
	TypeName() string
	Kind() introspection.TypeKind
}

type Object struct {
	Name        string
	Description string
	Fields      []*Field
	Interfaces  []string
}

type Interface struct {
	Name          string
	Description   string
	Fields        []*Field
	PossibleTypes []string
}

type Union struct {
	Name          string
	Description   string
	PossibleTypes []string
}

type Enum struct {
	Name        string
	Description string
	Values      []*EnumValue
}

type Scalar struct {
	Name        string
	Description string
}

type InputObject struct {
	Name        string
	Description string
	Fields      []*InputValue
}

func (t *Object) TypeName() string      { return t.Name }
func (t *Interface) TypeName() string   { return t.Name }
func (t *Union) TypeName() string       { return t.Name }
func (t *Enum) TypeName() string        { return t.Name }
func (t *Scalar) TypeName() string      { return t.Name }
func (t *InputObject) TypeName() string { return t.Name }

func (*Object) Kind() introspection.TypeKind      { return introspection.TypeKindObject }
func (*Interface) Kind() introspection.TypeKind   { return introspection.TypeKindInterface }
func (*Union) Kind() introspection.TypeKind       { return introspection.TypeKindUnion }
func (*Enum) Kind() introspection.TypeKind        { return introspection.TypeKindEnum }
func (*Scalar) Kind() introspection.TypeKind      { return introspection.TypeKindScalar }
func (*InputObject) Kind() introspection.TypeKind { return introspection.TypeKindInputObject }

type Field struct {
	Name              string
	Description       string
	Args              []*InputValue
	Type              *introspection.TypeRef
	IsDeprecated      bool
	DeprecationReason string
}

type InputValue struct {
	Name        string
	Description string
	Type        *introspection.TypeRef
	// DefaultValue is the GraphQL literal text, nil when there is no default.
	DefaultValue *string
}

type EnumValue struct {
	Name              string
	Description       string
	IsDeprecated      bool
	DeprecationReason string
}

type OperationKind string

const (
	OperationQuery        OperationKind = "query"
	OperationMutation     OperationKind = "mutation"
	OperationSubscription OperationKind = "subscription"
)

// Operation is a root entry point of the schema.
type Operation struct {
	Kind OperationKind
	// TypeName is the root object type.
	TypeName       string
	IsSubscription bool
}
