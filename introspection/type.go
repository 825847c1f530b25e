// Package introspection holds the wire shape of a GraphQL introspection
// result, the query that produces it, and helpers to obtain one from a JSON
// document or from SDL sources.
package introspection

type TypeKind string

const (
	TypeKindScalar      TypeKind = "SCALAR"
	TypeKindObject      TypeKind = "OBJECT"
	TypeKindInterface   TypeKind = "INTERFACE"
	TypeKindUnion       TypeKind = "UNION"
	TypeKindEnum        TypeKind = "ENUM"
	TypeKindInputObject TypeKind = "INPUT_OBJECT"
	TypeKindList        TypeKind = "LIST"
	TypeKindNonNull     TypeKind = "NON_NULL"
)

type FullTypes []*FullType

// NameMap indexes the types by name. Unnamed entries are skipped.
func (fs FullTypes) NameMap() map[string]*FullType {
	typeMap := make(map[string]*FullType, len(fs))
	for _, typ := range fs {
		if typ == nil || typ.Name == nil {
			continue
		}
		typeMap[*typ.Name] = typ
	}

	return typeMap
}

type FullType struct {
	Kind          TypeKind      `json:"kind"`
	Name          *string       `json:"name"`
	Description   *string       `json:"description"`
	Fields        []*FieldValue `json:"fields"`
	InputFields   []*InputValue `json:"inputFields"`
	Interfaces    []*TypeRef    `json:"interfaces"`
	EnumValues    []*EnumValue  `json:"enumValues"`
	PossibleTypes []*TypeRef    `json:"possibleTypes"`
}

type FieldValue struct {
	Type              *TypeRef      `json:"type"`
	Description       *string       `json:"description"`
	DeprecationReason *string       `json:"deprecationReason"`
	Name              string        `json:"name"`
	Args              []*InputValue `json:"args"`
	IsDeprecated      bool          `json:"isDeprecated"`
}

type InputValue struct {
	Type         *TypeRef `json:"type"`
	Description  *string  `json:"description"`
	DefaultValue *string  `json:"defaultValue"`
	Name         string   `json:"name"`
}

type EnumValue struct {
	Description       *string `json:"description"`
	DeprecationReason *string `json:"deprecationReason"`
	Name              string  `json:"name"`
	IsDeprecated      bool    `json:"isDeprecated"`
}

// TypeRef is one level of a type reference. Wrapper kinds (LIST, NON_NULL)
// carry OfType and no name; named kinds carry a name and no OfType.
type TypeRef struct {
	Name   *string  `json:"name"`
	OfType *TypeRef `json:"ofType"`
	Kind   TypeKind `json:"kind"`
}

type NamedRef struct {
	Name *string `json:"name"`
}

type Schema struct {
	QueryType        *NamedRef        `json:"queryType"`
	MutationType     *NamedRef        `json:"mutationType"`
	SubscriptionType *NamedRef        `json:"subscriptionType"`
	Types            FullTypes        `json:"types"`
	Directives       []*DirectiveType `json:"directives"`
}

type Query struct {
	Schema *Schema `json:"__schema"`
}

type DirectiveType struct {
	Name        string        `json:"name"`
	Description *string       `json:"description"`
	Locations   []string      `json:"locations"`
	Args        []*InputValue `json:"args"`
}
