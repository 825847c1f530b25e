package selection

import (
	"fmt"

	"github.com/go-json-experiment/json"
)

const typenameField = "__typename"

// Case is the selection made when the concrete type of an abstract value is
// TypeName.
type Case[T any] struct {
	TypeName string
	fields   []Field
	decode   func(obj Object) (T, error)
}

// On returns the case for the object type typeName.
func On[T, O any](typeName string, sel Selection[T, O]) Case[T] {
	return Case[T]{TypeName: typeName, fields: sel.fields, decode: sel.Decode}
}

// Match selects on an interface or union L by dispatching on __typename.
func Match[L, T any](cases ...Case[T]) Selection[T, L] {
	fields := []Field{{Name: typenameField}}
	for _, c := range cases {
		fields = mergeFields(fields, []Field{{TypeCondition: c.TypeName, Selections: c.fields}})
	}

	return Selection[T, L]{
		fields: fields,
		decode: func(obj Object) (T, error) {
			var zero T

			raw, ok := obj[typenameField]
			if !ok {
				return zero, fmt.Errorf("%s: %w", typenameField, ErrMissingField)
			}
			var typeName string
			if err := json.Unmarshal(raw, &typeName); err != nil {
				return zero, fmt.Errorf("%s: %w", typenameField, err)
			}

			for _, c := range cases {
				if c.TypeName == typeName {
					return c.decode(obj)
				}
			}

			return zero, fmt.Errorf("no case for type %s", typeName)
		},
	}
}
