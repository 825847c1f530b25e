package introspection

import (
	"fmt"

	gqlintrospection "github.com/99designs/gqlgen/graphql/introspection"
	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
)

// FromSDL loads schema definition sources and returns the introspection
// result a server built from them would report. Deprecated fields and enum
// values are included.
func FromSDL(sources ...*ast.Source) (*Query, error) {
	schema, err := gqlparser.LoadSchema(sources...)
	if err != nil {
		return nil, fmt.Errorf("load schema: %w", err)
	}

	return fromSchema(gqlintrospection.WrapSchema(schema)), nil
}

func fromSchema(s *gqlintrospection.Schema) *Query {
	out := &Schema{
		QueryType:        namedRef(s.QueryType()),
		MutationType:     namedRef(s.MutationType()),
		SubscriptionType: namedRef(s.SubscriptionType()),
	}

	for _, t := range s.Types() {
		out.Types = append(out.Types, fromType(&t))
	}

	return &Query{Schema: out}
}

func namedRef(t *gqlintrospection.Type) *NamedRef {
	if t == nil {
		return nil
	}

	return &NamedRef{Name: t.Name()}
}

func fromType(t *gqlintrospection.Type) *FullType {
	ft := &FullType{
		Kind:        TypeKind(t.Kind()),
		Name:        t.Name(),
		Description: t.Description(),
	}

	switch ft.Kind {
	case TypeKindObject, TypeKindInterface:
		ft.Fields = make([]*FieldValue, 0)
		for _, f := range t.Fields(true) {
			ft.Fields = append(ft.Fields, &FieldValue{
				Type:              typeRef(f.Type),
				Description:       f.Description(),
				DeprecationReason: f.DeprecationReason(),
				Name:              f.Name,
				Args:              fromInputValues(f.Args),
				IsDeprecated:      f.IsDeprecated(),
			})
		}

		ft.Interfaces = make([]*TypeRef, 0)
		for _, iface := range t.Interfaces() {
			ft.Interfaces = append(ft.Interfaces, typeRef(&iface))
		}
	case TypeKindEnum:
		ft.EnumValues = make([]*EnumValue, 0)
		for _, v := range t.EnumValues(true) {
			ft.EnumValues = append(ft.EnumValues, &EnumValue{
				Description:       v.Description(),
				DeprecationReason: v.DeprecationReason(),
				Name:              v.Name,
				IsDeprecated:      v.IsDeprecated(),
			})
		}
	case TypeKindInputObject:
		ft.InputFields = fromInputValues(t.InputFields())
	}

	if ft.Kind == TypeKindInterface || ft.Kind == TypeKindUnion {
		ft.PossibleTypes = make([]*TypeRef, 0)
		for _, p := range t.PossibleTypes() {
			ft.PossibleTypes = append(ft.PossibleTypes, typeRef(&p))
		}
	}

	return ft
}

func fromInputValues(values []gqlintrospection.InputValue) []*InputValue {
	out := make([]*InputValue, 0, len(values))
	for _, v := range values {
		out = append(out, &InputValue{
			Type:         typeRef(v.Type),
			Description:  v.Description(),
			DefaultValue: v.DefaultValue,
			Name:         v.Name,
		})
	}

	return out
}

func typeRef(t *gqlintrospection.Type) *TypeRef {
	if t == nil {
		return nil
	}

	return &TypeRef{
		Name:   t.Name(),
		OfType: typeRef(t.OfType()),
		Kind:   TypeKind(t.Kind()),
	}
}
