package typeref

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Yamashou/gqlbuilder/introspection"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	type want struct {
		typeRef TypeRef
		err     ErrorKind
	}

	tests := []struct {
		name  string
		input *introspection.TypeRef
		want  want
	}{
		{
			name:  "named type",
			input: named(introspection.TypeKindScalar, "String"),
			want:  want{typeRef: Named(introspection.TypeKindScalar, "String")},
		},
		{
			name:  "non-null list of non-null",
			input: wrap(named(introspection.TypeKindScalar, "String"), NonNull, List, NonNull),
			want:  want{typeRef: Named(introspection.TypeKindScalar, "String", NonNull, List, NonNull)},
		},
		{
			name:  "seven wrappers is the bound",
			input: wrap(named(introspection.TypeKindObject, "User"), List, NonNull, List, NonNull, List, NonNull, List),
			want:  want{typeRef: Named(introspection.TypeKindObject, "User", List, NonNull, List, NonNull, List, NonNull, List)},
		},
		{
			name:  "eight wrappers exceeds the bound",
			input: wrap(named(introspection.TypeKindObject, "User"), List, NonNull, List, NonNull, List, NonNull, List, NonNull),
			want:  want{err: UnterminatedTypeRef},
		},
		{
			name:  "chain ends in a wrapper",
			input: &introspection.TypeRef{Kind: introspection.TypeKindNonNull, OfType: &introspection.TypeRef{Kind: introspection.TypeKindList}},
			want:  want{err: UnterminatedTypeRef},
		},
		{
			name:  "nil reference",
			input: nil,
			want:  want{err: UnterminatedTypeRef},
		},
		{
			name:  "unexpected kind mid chain",
			input: &introspection.TypeRef{Kind: "WRAPPER", OfType: named(introspection.TypeKindScalar, "Int")},
			want:  want{err: MalformedTypeRef},
		},
		{
			name:  "named kind without name",
			input: &introspection.TypeRef{Kind: introspection.TypeKindScalar},
			want:  want{err: MalformedTypeRef},
		},
		{
			name:  "non-null wrapping non-null",
			input: wrap(named(introspection.TypeKindScalar, "Int"), NonNull, NonNull),
			want:  want{err: MalformedTypeRef},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Resolve(tt.input)
			if tt.want.err != "" {
				var typeRefErr *Error
				if !errors.As(err, &typeRefErr) {
					t.Fatalf("error = %v, want *Error", err)
				}
				if diff := cmp.Diff(tt.want.err, typeRefErr.Kind); diff != "" {
					t.Errorf("error kind diff(-want +got): %s", diff)
				}
				return
			}
			if err != nil {
				t.Fatalf("error = %v, want nil", err)
			}

			if diff := cmp.Diff(tt.want.typeRef, got); diff != "" {
				t.Errorf("diff(-want +got): %s", diff)
			}
		})
	}
}

func TestResolve_EncodeRoundTrip(t *testing.T) {
	t.Parallel()

	refs := []TypeRef{
		Named(introspection.TypeKindScalar, "Int"),
		Named(introspection.TypeKindScalar, "Int", NonNull),
		Named(introspection.TypeKindEnum, "Episode", List),
		Named(introspection.TypeKindObject, "User", NonNull, List, NonNull),
		Named(introspection.TypeKindObject, "User", List, List, NonNull),
		Named(introspection.TypeKindInputObject, "Point", NonNull, List, NonNull, List, NonNull, List, NonNull),
	}

	for _, ref := range refs {
		t.Run(ref.String(), func(t *testing.T) {
			t.Parallel()

			got, err := Resolve(Encode(ref))
			if err != nil {
				t.Fatalf("Resolve(Encode(%s)) error = %v", ref, err)
			}
			if diff := cmp.Diff(ref, got); diff != "" {
				t.Errorf("round trip diff(-want +got): %s", diff)
			}
		})
	}
}

func TestTypeRef_Nullability(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		ref         TypeRef
		wantDepth   int
		wantNulls   []bool
		wantElem    bool
		wantGraphQL string
	}{
		{
			name:        "nullable scalar",
			ref:         Named(introspection.TypeKindScalar, "String"),
			wantDepth:   0,
			wantNulls:   []bool{true},
			wantElem:    true,
			wantGraphQL: "String",
		},
		{
			name:        "non-null list of non-null",
			ref:         Named(introspection.TypeKindScalar, "String", NonNull, List, NonNull),
			wantDepth:   1,
			wantNulls:   []bool{false, false},
			wantElem:    false,
			wantGraphQL: "[String!]!",
		},
		{
			name:        "nullable list of nullable lists of non-null",
			ref:         Named(introspection.TypeKindScalar, "Int", List, List, NonNull),
			wantDepth:   2,
			wantNulls:   []bool{true, true, false},
			wantElem:    false,
			wantGraphQL: "[[Int!]]",
		},
		{
			name:        "non-null list of nullable",
			ref:         Named(introspection.TypeKindObject, "User", NonNull, List),
			wantDepth:   1,
			wantNulls:   []bool{false, true},
			wantElem:    true,
			wantGraphQL: "[User]!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(tt.wantDepth, tt.ref.Depth()); diff != "" {
				t.Errorf("Depth() diff(-want +got): %s", diff)
			}
			if diff := cmp.Diff(tt.wantNulls, tt.ref.Nullability()); diff != "" {
				t.Errorf("Nullability() diff(-want +got): %s", diff)
			}
			for d, want := range tt.wantNulls {
				if got := tt.ref.IsNullable(d); got != want {
					t.Errorf("IsNullable(%d) = %v, want %v", d, got, want)
				}
			}
			if got := tt.ref.ElementNullable(); got != tt.wantElem {
				t.Errorf("ElementNullable() = %v, want %v", got, tt.wantElem)
			}
			if diff := cmp.Diff(tt.wantGraphQL, tt.ref.String()); diff != "" {
				t.Errorf("String() diff(-want +got): %s", diff)
			}
		})
	}
}

func named(kind introspection.TypeKind, name string) *introspection.TypeRef {
	return &introspection.TypeRef{Kind: kind, Name: &name}
}

// wrap applies wrappers outermost first.
func wrap(ref *introspection.TypeRef, wrappers ...Wrapper) *introspection.TypeRef {
	for i := len(wrappers) - 1; i >= 0; i-- {
		kind := introspection.TypeKindList
		if wrappers[i] == NonNull {
			kind = introspection.TypeKindNonNull
		}
		ref = &introspection.TypeRef{Kind: kind, OfType: ref}
	}
	return ref
}
