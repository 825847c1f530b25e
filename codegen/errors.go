package codegen

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Yamashou/gqlbuilder/scalar"
	"github.com/Yamashou/gqlbuilder/typeref"
)

type ErrorKind string

const (
	DanglingTypeReference     ErrorKind = "DanglingTypeReference"
	UnmappedScalar            ErrorKind = "UnmappedScalar"
	UnterminatedTypeRef       ErrorKind = "UnterminatedTypeRef"
	MalformedTypeRef          ErrorKind = "MalformedTypeRef"
	UnsupportedDefaultLiteral ErrorKind = "UnsupportedDefaultLiteral"
	IdentifierCollision       ErrorKind = "IdentifierCollision"
	InvalidPossibleType       ErrorKind = "InvalidPossibleType"
)

// Error aborts a generation run. Entity and Field locate the problem in the
// schema; Name is the offending type, scalar or Go identifier.
type Error struct {
	Kind   ErrorKind
	Entity string
	Field  string
	Name   string
	// Other is the second schema name of an IdentifierCollision.
	Other string
	Err   error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("generate ")
	b.WriteString(e.Entity)
	if e.Field != "" {
		b.WriteString("." + e.Field)
	}
	b.WriteString(": ")

	switch e.Kind {
	case DanglingTypeReference:
		fmt.Fprintf(&b, "type %s is not defined in the schema", e.Name)
	case UnmappedScalar:
		fmt.Fprintf(&b, "scalar %s has no Go type mapping", e.Name)
	case IdentifierCollision:
		fmt.Fprintf(&b, "identifier %s is also produced by %s", e.Name, e.Other)
	case InvalidPossibleType:
		fmt.Fprintf(&b, "possible type %s is not an object", e.Name)
	case UnsupportedDefaultLiteral:
		b.WriteString("unsupported default value")
	default:
		b.WriteString(string(e.Kind))
	}
	if e.Err != nil {
		b.WriteString(": " + e.Err.Error())
	}

	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// wrapError converts errors of the typeref and scalar packages into an
// *Error located at entity and field.
func wrapError(entity, field string, err error) error {
	var typeRefErr *typeref.Error
	if errors.As(err, &typeRefErr) {
		kind := MalformedTypeRef
		if typeRefErr.Kind == typeref.UnterminatedTypeRef {
			kind = UnterminatedTypeRef
		}
		return &Error{Kind: kind, Entity: entity, Field: field, Name: typeRefErr.TypeName, Err: err}
	}

	var unmapped *scalar.UnmappedScalarError
	if errors.As(err, &unmapped) {
		return &Error{Kind: UnmappedScalar, Entity: entity, Field: field, Name: unmapped.Name, Err: err}
	}

	var genErr *Error
	if errors.As(err, &genErr) {
		return err
	}

	return &Error{Kind: MalformedTypeRef, Entity: entity, Field: field, Err: err}
}
