package schema

import "fmt"

type ParseErrorKind string

const (
	MissingQueryType ParseErrorKind = "MissingQueryType"
	MissingField     ParseErrorKind = "MissingField"
	MissingName      ParseErrorKind = "MissingName"
	UnknownKind      ParseErrorKind = "UnknownKind"
	DuplicateType    ParseErrorKind = "DuplicateType"
	Decode           ParseErrorKind = "Decode"
)

// ParseError is a structural problem in an introspection payload.
type ParseError struct {
	Kind ParseErrorKind
	// TypeName is the offending type, empty when the problem is at the
	// schema level or the type has no name.
	TypeName string
	// Field is the missing or offending member, e.g. "fields" or "user.type".
	Field string
	// Value holds the unexpected kind for UnknownKind.
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case MissingQueryType:
		return "introspection: schema has no queryType"
	case MissingField:
		if e.TypeName == "" {
			return fmt.Sprintf("introspection: missing %s", e.Field)
		}
		return fmt.Sprintf("introspection: type %s is missing %s", e.TypeName, e.Field)
	case MissingName:
		if e.TypeName == "" {
			return fmt.Sprintf("introspection: %s has no name", e.Field)
		}
		return fmt.Sprintf("introspection: type %s: %s has no name", e.TypeName, e.Field)
	case UnknownKind:
		return fmt.Sprintf("introspection: type %s has unknown kind %q", e.TypeName, e.Value)
	case DuplicateType:
		return fmt.Sprintf("introspection: type %s is declared more than once", e.TypeName)
	case Decode:
		return fmt.Sprintf("introspection: %v", e.Err)
	}
	return fmt.Sprintf("introspection: %s", e.Kind)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
