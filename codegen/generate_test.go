package codegen

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Yamashou/gqlbuilder/introspection"
	"github.com/Yamashou/gqlbuilder/scalar"
	"github.com/Yamashou/gqlbuilder/schema"
	"github.com/Yamashou/gqlbuilder/typeref"
)

func TestGenerate_Order(t *testing.T) {
	t.Parallel()

	decls, err := Generate(starWarsSchema(t), starWarsConfig())
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	type entry struct {
		Category Category
		Name     string
	}
	got := make([]entry, 0, len(decls))
	for _, d := range decls {
		got = append(got, entry{d.Category, d.Name})
	}

	want := []entry{
		{CategoryOperations, "Query"},
		{CategoryOperations, "Mutation"},
		{CategoryOperations, "Subscription"},
		{CategoryObjects, "Query"},
		{CategoryObjects, "Mutation"},
		{CategoryObjects, "Subscription"},
		{CategoryObjects, "Human"},
		{CategoryObjects, "Droid"},
		{CategoryObjects, "Review"},
		{CategoryInterfaces, "Character"},
		{CategoryUnions, "SearchResult"},
		{CategoryEnums, "Episode"},
		{CategoryEnums, "LengthUnit"},
		{CategoryInputObjects, "ReviewInput"},
		{CategoryInputObjects, "ColorInput"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("diff(-want +got): %s", diff)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	t.Parallel()

	s := starWarsSchema(t)

	first, err := Generate(s, starWarsConfig())
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	second, err := Generate(s, starWarsConfig())
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("second run diff(-want +got): %s", diff)
	}

	cfg := starWarsConfig()
	cfg.Concurrency = 4
	parallel, err := Generate(s, cfg)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if diff := cmp.Diff(first, parallel); diff != "" {
		t.Errorf("parallel run diff(-want +got): %s", diff)
	}
}

func TestGenerate_Objects(t *testing.T) {
	t.Parallel()

	decls, err := Generate(starWarsSchema(t), starWarsConfig())
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	query := declaration(t, decls, CategoryObjects, "Query")
	if diff := cmp.Diff([]string{scalar.DefaultRuntimeImport}, query.Imports); diff != "" {
		t.Errorf("Query imports diff(-want +got): %s", diff)
	}
	assertContains(t, query.Text,
		"type Query struct{}\n",
		`// Query_hero selects the hero field of Query.
func Query_hero[T any](sel selection.Selection[T, Character], episode *Episode) selection.Selection[*T, Query] {
	return selection.Nest[Query]("hero", sel, func(d selection.Decoder[T]) selection.Decoder[*T] {
		return selection.Nullable(d)
	}, selection.OptionalArg("episode", "Episode", episode))
}
`,
		`func Query_human[T any](sel selection.Selection[T, Human], id selection.ID) selection.Selection[*T, Query] {`,
		`selection.Arg("id", "ID!", id)`,
		// required arguments come first
		`func Query_search[T any](sel selection.Selection[T, SearchResult], text string, first *int) selection.Selection[[]T, Query] {`,
		`selection.Arg("text", "String!", text), selection.OptionalArg("first", "Int", first)`,
		`func Query_greeting() selection.Selection[string, Query] {
	return selection.Leaf[Query]("greeting", selection.Value[string]())
}
`,
		"type Query_Scalars struct {\n\tGreeting string\n}\n",
	)

	human := declaration(t, decls, CategoryObjects, "Human")
	assertContains(t, human.Text,
		`func Human_height(unit *LengthUnit) selection.Selection[*float64, Human] {
	return selection.Leaf[Human]("height", selection.Nullable(selection.Value[float64]()), selection.OptionalArg("unit", "LengthUnit", unit))
}
`,
		`func Human_appearsIn() selection.Selection[[]Episode, Human] {
	return selection.Leaf[Human]("appearsIn", selection.List(selection.Value[Episode]()))
}
`,
		`func Human_friends[T any](sel selection.Selection[T, Character]) selection.Selection[*[]*T, Human] {
	return selection.Nest[Human]("friends", sel, func(d selection.Decoder[T]) selection.Decoder[*[]*T] {
		return selection.Nullable(selection.List(selection.Nullable(d)))
	})
}
`,
		"// Deprecated: Use weight.\nfunc Human_mass()",
		`func Human_AllScalars() selection.Selection[Human_Scalars, Human] {
	return selection.Build(func(s *selection.Set[Human]) Human_Scalars {
		return Human_Scalars{
			Id: selection.Pick(s, Human_id()),
			Name: selection.Pick(s, Human_name()),
			AppearsIn: selection.Pick(s, Human_appearsIn()),
			HomePlanet: selection.Pick(s, Human_homePlanet()),
			Height: selection.Pick(s, Human_height(nil)),
			Mass: selection.Pick(s, Human_mass()),
		}
	})
}
`,
	)

	review := declaration(t, decls, CategoryObjects, "Review")
	if diff := cmp.Diff([]string{scalar.DefaultRuntimeImport, "time"}, review.Imports); diff != "" {
		t.Errorf("Review imports diff(-want +got): %s", diff)
	}
	assertContains(t, review.Text, "func Review_createdAt() selection.Selection[*time.Time, Review] {")

	mutation := declaration(t, decls, CategoryObjects, "Mutation")
	assertContains(t, mutation.Text,
		`func Mutation_createReview[T any](sel selection.Selection[T, Review], episode Episode, review ReviewInput) selection.Selection[*T, Mutation] {`)
	if strings.Contains(mutation.Text, "Mutation_Scalars") {
		t.Errorf("Mutation has no scalar fields but got a scalars struct:\n%s", mutation.Text)
	}
}

func TestGenerate_AbstractTypes(t *testing.T) {
	t.Parallel()

	decls, err := Generate(starWarsSchema(t), starWarsConfig())
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	character := declaration(t, decls, CategoryInterfaces, "Character")
	assertContains(t, character.Text,
		"type Character struct{}\n",
		"// The id of the character\nfunc Character_id()",
		`func Character_On[T any](human selection.Selection[T, Human], droid selection.Selection[T, Droid]) selection.Selection[T, Character] {
	return selection.Match[Character, T](selection.On("Human", human), selection.On("Droid", droid))
}
`,
	)

	union := declaration(t, decls, CategoryUnions, "SearchResult")
	assertContains(t, union.Text,
		"type SearchResult struct{}\n",
		`func SearchResult_On[T any](human selection.Selection[T, Human], droid selection.Selection[T, Droid]) selection.Selection[T, SearchResult] {`,
	)
}

// The match function takes one case per possible type, in schema order
// rather than sorted.
func TestGenerate_UnionCaseOrder(t *testing.T) {
	t.Parallel()

	s := &schema.Schema{
		Types: map[string]schema.Type{},
	}
	query := &schema.Object{Name: "Query", Fields: []*schema.Field{}}
	zebra := &schema.Object{Name: "Zebra", Fields: []*schema.Field{}}
	aardvark := &schema.Object{Name: "Aardvark", Fields: []*schema.Field{}}
	animal := &schema.Union{Name: "Animal", PossibleTypes: []string{"Zebra", "Aardvark"}}
	for _, typ := range []schema.Type{query, zebra, aardvark, animal} {
		s.Types[typ.TypeName()] = typ
	}
	s.Objects = []*schema.Object{query, zebra, aardvark}
	s.Unions = []*schema.Union{animal}
	s.Operations = []*schema.Operation{{Kind: schema.OperationQuery, TypeName: "Query"}}

	decls, err := Generate(s, Config{})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	union := declaration(t, decls, CategoryUnions, "Animal")
	assertContains(t, union.Text,
		"func Animal_On[T any](zebra selection.Selection[T, Zebra], aardvark selection.Selection[T, Aardvark]) selection.Selection[T, Animal] {")
}

func TestGenerate_Enums(t *testing.T) {
	t.Parallel()

	decls, err := Generate(starWarsSchema(t), starWarsConfig())
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	episode := declaration(t, decls, CategoryEnums, "Episode")
	if len(episode.Imports) != 0 {
		t.Errorf("Episode imports = %v, want none", episode.Imports)
	}
	want := `// The episodes in the Star Wars trilogy
type Episode string

const (
	// Star Wars Episode IV: A New Hope
	Episode_newhope Episode = "NEWHOPE"
	Episode_empire Episode = "EMPIRE"
	// Deprecated: Not canon.
	Episode_jedi Episode = "JEDI"
)

// Values returns every Episode value in schema order.
func (Episode) Values() []Episode {
	return []Episode{Episode_newhope, Episode_empire, Episode_jedi}
}

// IsValid reports whether e is one of the values declared by the schema.
func (e Episode) IsValid() bool {
	switch e {
	case Episode_newhope, Episode_empire, Episode_jedi:
		return true
	}
	return false
}
`
	if diff := cmp.Diff(want, episode.Text); diff != "" {
		t.Errorf("diff(-want +got): %s", diff)
	}
}

func TestGenerate_InputObjects(t *testing.T) {
	t.Parallel()

	decls, err := Generate(starWarsSchema(t), starWarsConfig())
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	review := declaration(t, decls, CategoryInputObjects, "ReviewInput")
	want := "type ReviewInput struct {\n" +
		"\tStars int `json:\"stars\"`\n" +
		"\tCommentary *string `json:\"commentary,omitzero\"`\n" +
		"\tFavoriteColor *ColorInput `json:\"favoriteColor,omitzero\"`\n" +
		"\tTags *[]string `json:\"tags,omitzero\"`\n" +
		"\tEpisode *Episode `json:\"episode,omitzero\"`\n" +
		"}\n" +
		"\n" +
		"// ReviewInput_New returns a ReviewInput with the schema defaults applied.\n" +
		"func ReviewInput_New() ReviewInput {\n" +
		"\tvar v ReviewInput\n" +
		"\tv.Stars = 5\n" +
		"\tv.Tags = &[]string{\"classic\"}\n" +
		"\tv.Episode = selection.Ptr[Episode](Episode_jedi)\n" +
		"\treturn v\n" +
		"}\n"
	if diff := cmp.Diff(want, review.Text); diff != "" {
		t.Errorf("diff(-want +got): %s", diff)
	}
	if diff := cmp.Diff([]string{scalar.DefaultRuntimeImport}, review.Imports); diff != "" {
		t.Errorf("imports diff(-want +got): %s", diff)
	}

	color := declaration(t, decls, CategoryInputObjects, "ColorInput")
	assertContains(t, color.Text, "\tv.Red = 0\n", "\tv.Green = 0\n", "\tv.Blue = 0\n")
	if len(color.Imports) != 0 {
		t.Errorf("ColorInput imports = %v, want none", color.Imports)
	}
}

func TestGenerate_Operations(t *testing.T) {
	t.Parallel()

	decls, err := Generate(starWarsSchema(t), starWarsConfig())
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	assertContains(t, declaration(t, decls, CategoryOperations, "Query").Text,
		`// NewQuery roots sel at the query type Query.
func NewQuery[T any](sel selection.Selection[T, Query]) selection.Operation[T] {
	return selection.NewOperation(selection.OperationQuery, sel)
}
`)
	assertContains(t, declaration(t, decls, CategoryOperations, "Mutation").Text,
		"return selection.NewOperation(selection.OperationMutation, sel)")
	assertContains(t, declaration(t, decls, CategoryOperations, "Subscription").Text,
		"func NewSubscription[T any](sel selection.Selection[T, Subscription]) selection.Operation[T] {",
		"return selection.NewOperation(selection.OperationSubscription, sel)")
}

func TestGenerate_RuntimeImport(t *testing.T) {
	t.Parallel()

	s := sdlSchema(t, `type Query { node(id: ID!): String }`)

	decls, err := Generate(s, Config{RuntimeImport: "example.com/client/gqlrt"})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	query := declaration(t, decls, CategoryObjects, "Query")
	assertContains(t, query.Text, `func Query_node(id gqlrt.ID) gqlrt.Selection[*string, Query] {`)
	if diff := cmp.Diff([]string{"example.com/client/gqlrt"}, query.Imports); diff != "" {
		t.Errorf("imports diff(-want +got): %s", diff)
	}
}

// A type named after another type's field, the way GitHub's schema has
// RepositoryOwner next to Repository.owner, gets declarations of its own.
func TestGenerate_TypeNamedAfterField(t *testing.T) {
	t.Parallel()

	s := sdlSchema(t, `
interface RepositoryOwner { login: String! }
type User implements RepositoryOwner { login: String! }
type Repository { owner: RepositoryOwner!, ownerScalars: String }
type RepositoryOn { name: String }
type Query { repository: Repository, repositoryOn: RepositoryOn }`)

	decls, err := Generate(s, Config{})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	assertContains(t, declaration(t, decls, CategoryInterfaces, "RepositoryOwner").Text,
		"type RepositoryOwner struct{}\n",
		"func RepositoryOwner_login() selection.Selection[string, RepositoryOwner] {",
		"func RepositoryOwner_On[T any](user selection.Selection[T, User]) selection.Selection[T, RepositoryOwner] {",
	)
	assertContains(t, declaration(t, decls, CategoryObjects, "Repository").Text,
		"func Repository_owner[T any](sel selection.Selection[T, RepositoryOwner]) selection.Selection[T, Repository] {",
		"func Repository_ownerScalars() selection.Selection[*string, Repository] {",
		"type Repository_Scalars struct {",
	)
	assertContains(t, declaration(t, decls, CategoryObjects, "RepositoryOn").Text,
		"type RepositoryOn struct{}\n",
		"func RepositoryOn_name() selection.Selection[*string, RepositoryOn] {",
	)
	assertContains(t, declaration(t, decls, CategoryObjects, "Query").Text,
		"func Query_repositoryOn[T any](sel selection.Selection[T, RepositoryOn]) selection.Selection[*T, Query] {",
	)
}

func TestGenerate_ParamEscaping(t *testing.T) {
	t.Parallel()

	s := sdlSchema(t, `
scalar DateTime
type Query {
  items(type: String, range: Int, sel: Boolean, selection: ID, string: String, time: DateTime, first: Int, _: Int): [String!]!
}`)

	decls, err := Generate(s, Config{Scalars: scalar.New(map[string]string{"DateTime": "time.Time"})})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	assertContains(t, declaration(t, decls, CategoryObjects, "Query").Text,
		"func Query_items(type_ *string, range_ *int, sel_ *bool, selection_ *selection.ID, string_ *string, time_ *time.Time, first *int, __ *int) selection.Selection[[]string, Query] {",
		`selection.OptionalArg("_", "Int", __)`)
}

func TestGenerate_UnmappedScalar(t *testing.T) {
	t.Parallel()

	s := starWarsSchema(t)

	_, err := Generate(s, Config{})

	var genErr *Error
	if !errors.As(err, &genErr) {
		t.Fatalf("error = %v, want *Error", err)
	}
	want := &Error{Kind: UnmappedScalar, Entity: "Review", Field: "createdAt", Name: "DateTime"}
	if diff := cmp.Diff(want, genErr, cmp.FilterPath(func(p cmp.Path) bool { return p.Last().String() == ".Err" }, cmp.Ignore())); diff != "" {
		t.Errorf("diff(-want +got): %s", diff)
	}
	var unmapped *scalar.UnmappedScalarError
	if !errors.As(err, &unmapped) || unmapped.Name != "DateTime" {
		t.Errorf("error does not wrap *scalar.UnmappedScalarError for DateTime: %v", err)
	}

	if _, err := Generate(s, starWarsConfig()); err != nil {
		t.Errorf("Generate() with DateTime mapped error = %v", err)
	}
}

func TestGenerate_Errors(t *testing.T) {
	t.Parallel()

	named := func(kind introspection.TypeKind, name string, wrappers ...typeref.Wrapper) *introspection.TypeRef {
		return typeref.Encode(typeref.Named(kind, name, wrappers...))
	}
	build := func(types ...schema.Type) *schema.Schema {
		s := &schema.Schema{Types: map[string]schema.Type{}}
		for _, typ := range types {
			s.Types[typ.TypeName()] = typ
			switch typ := typ.(type) {
			case *schema.Object:
				s.Objects = append(s.Objects, typ)
			case *schema.Union:
				s.Unions = append(s.Unions, typ)
			case *schema.Enum:
				s.Enums = append(s.Enums, typ)
			case *schema.Scalar:
				s.Scalars = append(s.Scalars, typ)
			case *schema.InputObject:
				s.InputObjects = append(s.InputObjects, typ)
			}
		}
		s.Operations = []*schema.Operation{{Kind: schema.OperationQuery, TypeName: "Query"}}
		return s
	}
	str := &schema.Scalar{Name: "String"}
	deep := &introspection.TypeRef{Kind: introspection.TypeKindNonNull, OfType: named(introspection.TypeKindScalar, "String",
		typeref.List, typeref.NonNull, typeref.List, typeref.NonNull, typeref.List, typeref.NonNull, typeref.List)}

	tests := []struct {
		name   string
		schema *schema.Schema
		want   *Error
	}{
		{
			name: "dangling type reference",
			schema: build(&schema.Object{Name: "Query", Fields: []*schema.Field{
				{Name: "me", Type: named(introspection.TypeKindObject, "User")},
			}}),
			want: &Error{Kind: DanglingTypeReference, Entity: "Query", Field: "me", Name: "User"},
		},
		{
			name: "eight wrappers",
			schema: build(str, &schema.Object{Name: "Query", Fields: []*schema.Field{
				{Name: "deep", Type: deep},
			}}),
			want: &Error{Kind: UnterminatedTypeRef, Entity: "Query", Field: "deep"},
		},
		{
			name: "identifier collision after casing",
			schema: build(
				&schema.Object{Name: "Query", Fields: []*schema.Field{}},
				&schema.Object{Name: "HTTPServer", Fields: []*schema.Field{}},
				&schema.Object{Name: "HttpServer", Fields: []*schema.Field{}},
			),
			want: &Error{Kind: IdentifierCollision, Entity: "HttpServer", Name: "HttpServer", Other: "HTTPServer"},
		},
		{
			name: "field functions of one type collide after casing",
			schema: build(
				str,
				&schema.Object{Name: "Query", Fields: []*schema.Field{}},
				&schema.Object{Name: "User", Fields: []*schema.Field{
					{Name: "userName", Type: named(introspection.TypeKindScalar, "String")},
					{Name: "user_name", Type: named(introspection.TypeKindScalar, "String")},
				}},
			),
			want: &Error{Kind: IdentifierCollision, Entity: "User", Field: "user_name", Name: "User_userName", Other: "User.userName"},
		},
		{
			name: "parameter collision after casing",
			schema: build(str, &schema.Object{Name: "Query", Fields: []*schema.Field{
				{Name: "find", Type: named(introspection.TypeKindScalar, "String"), Args: []*schema.InputValue{
					{Name: "user_id", Type: named(introspection.TypeKindScalar, "String")},
					{Name: "userId", Type: named(introspection.TypeKindScalar, "String")},
				}},
			}}),
			want: &Error{Kind: IdentifierCollision, Entity: "Query", Field: "find", Name: "userId", Other: "user_id"},
		},
		{
			name: "possible type is not an object",
			schema: build(
				&schema.Object{Name: "Query", Fields: []*schema.Field{}},
				&schema.Enum{Name: "Color", Values: []*schema.EnumValue{{Name: "RED"}}},
				&schema.Union{Name: "Result", PossibleTypes: []string{"Color"}},
			),
			want: &Error{Kind: InvalidPossibleType, Entity: "Result", Field: "possibleTypes", Name: "Color"},
		},
		{
			name: "possible type is missing",
			schema: build(
				&schema.Object{Name: "Query", Fields: []*schema.Field{}},
				&schema.Union{Name: "Result", PossibleTypes: []string{"Ghost"}},
			),
			want: &Error{Kind: DanglingTypeReference, Entity: "Result", Field: "possibleTypes", Name: "Ghost"},
		},
		{
			name: "default enum value not in the enum",
			schema: build(
				&schema.Object{Name: "Query", Fields: []*schema.Field{}},
				&schema.Enum{Name: "Color", Values: []*schema.EnumValue{{Name: "RED"}}},
				&schema.InputObject{Name: "Paint", Fields: []*schema.InputValue{
					{Name: "color", Type: named(introspection.TypeKindEnum, "Color"), DefaultValue: strPtr("BLUE")},
				}},
			),
			want: &Error{Kind: UnsupportedDefaultLiteral, Entity: "Paint", Field: "color", Name: "Color"},
		},
		{
			name: "default null for a non-null member",
			schema: build(
				str,
				&schema.Object{Name: "Query", Fields: []*schema.Field{}},
				&schema.InputObject{Name: "Filter", Fields: []*schema.InputValue{
					{Name: "text", Type: named(introspection.TypeKindScalar, "String", typeref.NonNull), DefaultValue: strPtr("null")},
				}},
			),
			want: &Error{Kind: UnsupportedDefaultLiteral, Entity: "Filter", Field: "text", Name: "String"},
		},
		{
			name: "default of a custom scalar",
			schema: build(
				&schema.Scalar{Name: "Date"},
				&schema.Object{Name: "Query", Fields: []*schema.Field{}},
				&schema.InputObject{Name: "Range", Fields: []*schema.InputValue{
					{Name: "from", Type: named(introspection.TypeKindScalar, "Date"), DefaultValue: strPtr(`"2020-01-01"`)},
				}},
			),
			want: &Error{Kind: UnsupportedDefaultLiteral, Entity: "Range", Field: "from", Name: "Date"},
		},
		{
			name: "root type is missing",
			schema: build(str),
			want:   &Error{Kind: DanglingTypeReference, Entity: "query", Name: "Query"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := Config{Scalars: scalar.New(map[string]string{"Date": "time.Time"})}
			decls, err := Generate(tt.schema, cfg)
			if decls != nil {
				t.Errorf("Generate() returned declarations with an error")
			}

			var genErr *Error
			if !errors.As(err, &genErr) {
				t.Fatalf("error = %v, want *Error", err)
			}
			if diff := cmp.Diff(tt.want, genErr, cmp.FilterPath(func(p cmp.Path) bool { return p.Last().String() == ".Err" }, cmp.Ignore())); diff != "" {
				t.Errorf("diff(-want +got): %s", diff)
			}
			if genErr.Error() == "" {
				t.Errorf("empty error message")
			}
		})
	}
}
