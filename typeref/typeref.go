// Package typeref collapses GraphQL wrapper chains (NON_NULL and LIST around a
// named type) into a flat canonical form.
//
// Resolve is the only place the recursive ofType shape of an introspection
// type reference is walked; everything downstream works on TypeRef.
package typeref

import (
	"strings"

	"github.com/Yamashou/gqlbuilder/introspection"
)

// MaxDepth is the deepest wrapper chain accepted. It matches the number of
// ofType levels requested by introspection.Introspection.
const MaxDepth = 7

type Wrapper int

const (
	List Wrapper = iota + 1
	NonNull
)

func (w Wrapper) String() string {
	switch w {
	case List:
		return "List"
	case NonNull:
		return "NonNull"
	}
	return "Unknown"
}

// TypeRef is a canonical type reference: the named type at the end of the
// chain and the wrappers around it, outermost first.
type TypeRef struct {
	Name     string
	Kind     introspection.TypeKind
	Wrappers []Wrapper
}

// Named returns a reference to name with no wrappers.
func Named(kind introspection.TypeKind, name string, wrappers ...Wrapper) TypeRef {
	return TypeRef{Name: name, Kind: kind, Wrappers: wrappers}
}

// Resolve walks ref from the outside in and returns its canonical form.
func Resolve(ref *introspection.TypeRef) (TypeRef, error) {
	var wrappers []Wrapper

	for cur := ref; ; cur = cur.OfType {
		if cur == nil {
			return TypeRef{}, &Error{Kind: UnterminatedTypeRef, Depth: len(wrappers)}
		}

		switch cur.Kind {
		case introspection.TypeKindNonNull, introspection.TypeKindList:
			if len(wrappers) == MaxDepth {
				return TypeRef{}, &Error{Kind: UnterminatedTypeRef, Depth: len(wrappers)}
			}

			w := List
			if cur.Kind == introspection.TypeKindNonNull {
				w = NonNull
				if len(wrappers) > 0 && wrappers[len(wrappers)-1] == NonNull {
					return TypeRef{}, &Error{Kind: MalformedTypeRef, Depth: len(wrappers), Reason: "NON_NULL wraps NON_NULL"}
				}
			}
			wrappers = append(wrappers, w)
		case introspection.TypeKindScalar,
			introspection.TypeKindObject,
			introspection.TypeKindInterface,
			introspection.TypeKindUnion,
			introspection.TypeKindEnum,
			introspection.TypeKindInputObject:
			if cur.Name == nil || *cur.Name == "" {
				return TypeRef{}, &Error{Kind: MalformedTypeRef, Depth: len(wrappers), Reason: string(cur.Kind) + " without a name"}
			}
			if cur.OfType != nil {
				return TypeRef{}, &Error{Kind: MalformedTypeRef, TypeName: *cur.Name, Depth: len(wrappers), Reason: "named type wraps another type"}
			}

			return TypeRef{Name: *cur.Name, Kind: cur.Kind, Wrappers: wrappers}, nil
		default:
			return TypeRef{}, &Error{Kind: MalformedTypeRef, Depth: len(wrappers), Reason: "unexpected kind " + string(cur.Kind)}
		}
	}
}

// Encode rebuilds the nested introspection shape of t.
func Encode(t TypeRef) *introspection.TypeRef {
	name := t.Name
	ref := &introspection.TypeRef{Kind: t.Kind, Name: &name}

	for i := len(t.Wrappers) - 1; i >= 0; i-- {
		kind := introspection.TypeKindList
		if t.Wrappers[i] == NonNull {
			kind = introspection.TypeKindNonNull
		}
		ref = &introspection.TypeRef{Kind: kind, OfType: ref}
	}

	return ref
}

// Depth is the number of list levels.
func (t TypeRef) Depth() int {
	depth := 0
	for _, w := range t.Wrappers {
		if w == List {
			depth++
		}
	}
	return depth
}

// Nullability reports, for every list depth from 0 (the value itself) to
// Depth() (the named type), whether the value at that depth may be null.
func (t TypeRef) Nullability() []bool {
	out := make([]bool, 0, t.Depth()+1)

	nullable := true
	for _, w := range t.Wrappers {
		switch w {
		case NonNull:
			nullable = false
		case List:
			out = append(out, nullable)
			nullable = true
		}
	}

	return append(out, nullable)
}

// IsNullable reports whether the value at list depth d may be null. d must be
// between 0 and Depth().
func (t TypeRef) IsNullable(d int) bool {
	return t.Nullability()[d]
}

// ElementNullable reports whether the named type itself may be null.
func (t TypeRef) ElementNullable() bool {
	return t.IsNullable(t.Depth())
}

// String renders t in GraphQL type syntax, e.g. [String!]!.
func (t TypeRef) String() string {
	var b strings.Builder
	for _, w := range t.Wrappers {
		if w == List {
			b.WriteByte('[')
		}
	}
	b.WriteString(t.Name)

	for i := len(t.Wrappers) - 1; i >= 0; i-- {
		switch t.Wrappers[i] {
		case NonNull:
			b.WriteByte('!')
		case List:
			b.WriteByte(']')
		}
	}

	return b.String()
}
