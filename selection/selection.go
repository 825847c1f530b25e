// Package selection is the runtime used by generated query builders.
//
// A Selection[T, L] is a set of fields picked on a GraphQL type, represented
// in Go by its lock type L, together with a decoder that turns the matching
// part of a response into a T. Selections are composed with Build and Pick,
// and turned into an executable document with NewOperation.
//
//	sel := selection.Build(func(s *selection.Set[gen.Human]) Hero {
//		return Hero{
//			Name:   selection.Pick(s, gen.Human_name()),
//			Height: selection.Pick(s, gen.Human_height(nil)),
//		}
//	})
package selection

import (
	"github.com/go-json-experiment/json/jsontext"
)

// Object is a decoded JSON object keyed by response key.
type Object map[string]jsontext.Value

// Selection is a typed set of fields on the type locked by L.
type Selection[T, L any] struct {
	fields []Field
	decode func(obj Object) (T, error)
}

// Fields returns the selected fields.
func (s Selection[T, L]) Fields() []Field {
	return s.fields
}

// Decode decodes obj, the JSON object the fields were selected on.
func (s Selection[T, L]) Decode(obj Object) (T, error) {
	if s.decode == nil {
		var zero T
		return zero, nil
	}
	return s.decode(obj)
}

// Set collects fields while a Build function runs for the first time and
// hands out decoded values every later time.
type Set[L any] struct {
	collecting bool
	fields     []Field
	obj        Object
	err        error
}

// Build turns fn into a selection. fn is called once up front to collect the
// fields it picks and once per decoded object, so it must pick the same
// selections every time and must not have side effects.
func Build[T, L any](fn func(s *Set[L]) T) Selection[T, L] {
	collect := &Set[L]{collecting: true}
	fn(collect)

	return Selection[T, L]{
		fields: collect.fields,
		decode: func(obj Object) (T, error) {
			s := &Set[L]{obj: obj}
			v := fn(s)
			if s.err != nil {
				var zero T
				return zero, s.err
			}
			return v, nil
		},
	}
}

// Pick adds sel to s and returns its decoded value. While fields are being
// collected it returns the zero value.
func Pick[T, L any](s *Set[L], sel Selection[T, L]) T {
	var zero T
	if s.collecting {
		s.fields = mergeFields(s.fields, sel.fields)
		return zero
	}
	if s.err != nil {
		return zero
	}

	v, err := sel.Decode(s.obj)
	if err != nil {
		s.err = err
		return zero
	}

	return v
}

// Map transforms the decoded value of sel.
func Map[T, U, L any](sel Selection[T, L], fn func(T) U) Selection[U, L] {
	return Selection[U, L]{
		fields: sel.fields,
		decode: func(obj Object) (U, error) {
			v, err := sel.Decode(obj)
			if err != nil {
				var zero U
				return zero, err
			}
			return fn(v), nil
		},
	}
}

// ID is a GraphQL ID.
type ID string

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}
