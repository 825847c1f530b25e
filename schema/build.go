package schema

import (
	"fmt"

	"github.com/Yamashou/gqlbuilder/introspection"
)

// Parse decodes an introspection result document and builds its Schema.
func Parse(data []byte) (*Schema, error) {
	q, err := introspection.Decode(data)
	if err != nil {
		return nil, &ParseError{Kind: Decode, Err: err}
	}

	return Build(q)
}

// Build normalizes a decoded introspection result. The first structural
// problem aborts the build; referential integrity is not checked here.
func Build(q *introspection.Query) (*Schema, error) {
	if q == nil || q.Schema == nil {
		return nil, &ParseError{Kind: MissingField, Field: "__schema"}
	}
	raw := q.Schema

	queryType := refName(raw.QueryType)
	if queryType == "" {
		return nil, &ParseError{Kind: MissingQueryType}
	}

	s := &Schema{Types: make(map[string]Type, len(raw.Types))}
	for i, ft := range raw.Types {
		t, err := buildType(i, ft)
		if err != nil {
			return nil, err
		}
		if _, ok := s.Types[t.TypeName()]; ok {
			return nil, &ParseError{Kind: DuplicateType, TypeName: t.TypeName()}
		}
		s.Types[t.TypeName()] = t

		switch t := t.(type) {
		case *Object:
			s.Objects = append(s.Objects, t)
		case *Interface:
			s.Interfaces = append(s.Interfaces, t)
		case *Union:
			s.Unions = append(s.Unions, t)
		case *Enum:
			s.Enums = append(s.Enums, t)
		case *Scalar:
			s.Scalars = append(s.Scalars, t)
		case *InputObject:
			s.InputObjects = append(s.InputObjects, t)
		}
	}

	s.Operations = append(s.Operations, &Operation{Kind: OperationQuery, TypeName: queryType})
	if name := refName(raw.MutationType); name != "" {
		s.Operations = append(s.Operations, &Operation{Kind: OperationMutation, TypeName: name})
	}
	if name := refName(raw.SubscriptionType); name != "" {
		s.Operations = append(s.Operations, &Operation{Kind: OperationSubscription, TypeName: name, IsSubscription: true})
	}

	return s, nil
}

func buildType(index int, ft *introspection.FullType) (Type, error) {
	if ft == nil || ft.Name == nil || *ft.Name == "" {
		return nil, &ParseError{Kind: MissingName, Field: fmt.Sprintf("types[%d]", index)}
	}
	name := *ft.Name
	description := deref(ft.Description)

	switch ft.Kind {
	case introspection.TypeKindObject:
		if ft.Fields == nil {
			return nil, &ParseError{Kind: MissingField, TypeName: name, Field: "fields"}
		}
		fields, err := buildFields(name, ft.Fields)
		if err != nil {
			return nil, err
		}
		interfaces, err := refNames(name, "interfaces", ft.Interfaces)
		if err != nil {
			return nil, err
		}

		return &Object{Name: name, Description: description, Fields: fields, Interfaces: interfaces}, nil
	case introspection.TypeKindInterface:
		if ft.Fields == nil {
			return nil, &ParseError{Kind: MissingField, TypeName: name, Field: "fields"}
		}
		fields, err := buildFields(name, ft.Fields)
		if err != nil {
			return nil, err
		}
		possibleTypes, err := refNames(name, "possibleTypes", ft.PossibleTypes)
		if err != nil {
			return nil, err
		}

		return &Interface{Name: name, Description: description, Fields: fields, PossibleTypes: possibleTypes}, nil
	case introspection.TypeKindUnion:
		if ft.PossibleTypes == nil {
			return nil, &ParseError{Kind: MissingField, TypeName: name, Field: "possibleTypes"}
		}
		possibleTypes, err := refNames(name, "possibleTypes", ft.PossibleTypes)
		if err != nil {
			return nil, err
		}

		return &Union{Name: name, Description: description, PossibleTypes: possibleTypes}, nil
	case introspection.TypeKindEnum:
		if ft.EnumValues == nil {
			return nil, &ParseError{Kind: MissingField, TypeName: name, Field: "enumValues"}
		}
		values := make([]*EnumValue, 0, len(ft.EnumValues))
		for i, v := range ft.EnumValues {
			if v == nil || v.Name == "" {
				return nil, &ParseError{Kind: MissingName, TypeName: name, Field: fmt.Sprintf("enumValues[%d]", i)}
			}
			values = append(values, &EnumValue{
				Name:              v.Name,
				Description:       deref(v.Description),
				IsDeprecated:      v.IsDeprecated,
				DeprecationReason: deref(v.DeprecationReason),
			})
		}

		return &Enum{Name: name, Description: description, Values: values}, nil
	case introspection.TypeKindScalar:
		return &Scalar{Name: name, Description: description}, nil
	case introspection.TypeKindInputObject:
		if ft.InputFields == nil {
			return nil, &ParseError{Kind: MissingField, TypeName: name, Field: "inputFields"}
		}
		fields, err := buildInputValues(name, "inputFields", ft.InputFields)
		if err != nil {
			return nil, err
		}

		return &InputObject{Name: name, Description: description, Fields: fields}, nil
	}

	return nil, &ParseError{Kind: UnknownKind, TypeName: name, Value: string(ft.Kind)}
}

func buildFields(typeName string, raw []*introspection.FieldValue) ([]*Field, error) {
	fields := make([]*Field, 0, len(raw))
	for i, f := range raw {
		if f == nil || f.Name == "" {
			return nil, &ParseError{Kind: MissingName, TypeName: typeName, Field: fmt.Sprintf("fields[%d]", i)}
		}
		if f.Type == nil {
			return nil, &ParseError{Kind: MissingField, TypeName: typeName, Field: f.Name + ".type"}
		}
		args, err := buildInputValues(typeName, f.Name+".args", f.Args)
		if err != nil {
			return nil, err
		}

		fields = append(fields, &Field{
			Name:              f.Name,
			Description:       deref(f.Description),
			Args:              args,
			Type:              f.Type,
			IsDeprecated:      f.IsDeprecated,
			DeprecationReason: deref(f.DeprecationReason),
		})
	}

	return fields, nil
}

func buildInputValues(typeName, path string, raw []*introspection.InputValue) ([]*InputValue, error) {
	values := make([]*InputValue, 0, len(raw))
	for i, v := range raw {
		if v == nil || v.Name == "" {
			return nil, &ParseError{Kind: MissingName, TypeName: typeName, Field: fmt.Sprintf("%s[%d]", path, i)}
		}
		if v.Type == nil {
			return nil, &ParseError{Kind: MissingField, TypeName: typeName, Field: fmt.Sprintf("%s.%s.type", path, v.Name)}
		}

		values = append(values, &InputValue{
			Name:         v.Name,
			Description:  deref(v.Description),
			Type:         v.Type,
			DefaultValue: v.DefaultValue,
		})
	}

	return values, nil
}

func refNames(typeName, path string, refs []*introspection.TypeRef) ([]string, error) {
	names := make([]string, 0, len(refs))
	for i, ref := range refs {
		if ref == nil || ref.Name == nil || *ref.Name == "" {
			return nil, &ParseError{Kind: MissingName, TypeName: typeName, Field: fmt.Sprintf("%s[%d]", path, i)}
		}
		names = append(names, *ref.Name)
	}

	return names, nil
}

func refName(ref *introspection.NamedRef) string {
	if ref == nil {
		return ""
	}
	return deref(ref.Name)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
