package codegen

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vektah/gqlparser/v2/ast"

	"github.com/Yamashou/gqlbuilder/introspection"
	"github.com/Yamashou/gqlbuilder/scalar"
	"github.com/Yamashou/gqlbuilder/schema"
)

func starWarsSchema(t *testing.T) *schema.Schema {
	t.Helper()

	data, err := os.ReadFile(filepath.Join("..", "testdata", "schema", "starwars.json"))
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	s, err := schema.Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return s
}

func sdlSchema(t *testing.T, sdl string) *schema.Schema {
	t.Helper()

	q, err := introspection.FromSDL(&ast.Source{Name: "schema.graphql", Input: sdl})
	if err != nil {
		t.Fatalf("FromSDL() error = %v", err)
	}
	s, err := schema.Build(q)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return s
}

func starWarsConfig() Config {
	return Config{Scalars: scalar.New(map[string]string{"DateTime": "time.Time"})}
}

func declaration(t *testing.T, decls []Declaration, category Category, name string) Declaration {
	t.Helper()

	for _, d := range decls {
		if d.Category == category && d.Name == name {
			return d
		}
	}
	t.Fatalf("no %s declaration for %s", category, name)
	return Declaration{}
}

func assertContains(t *testing.T, text string, wants ...string) {
	t.Helper()

	for _, want := range wants {
		if !strings.Contains(text, want) {
			t.Errorf("generated code does not contain\n%s\n--- got ---\n%s", want, text)
		}
	}
}

func strPtr(s string) *string {
	return &s
}
