// Package scalar maps GraphQL scalar names to Go types.
package scalar

import (
	"fmt"
	"strings"
)

// DefaultRuntimeImport is the import path of the package generated code
// depends on for its selection builders and the ID type.
const DefaultRuntimeImport = "github.com/Yamashou/gqlbuilder/selection"

// GoType is a possibly package-qualified Go type name.
type GoType struct {
	// Package is the import path, empty for predeclared types.
	Package string
	Name    string
}

// String returns the type as written in source, qualified by the last
// element of its import path.
func (t GoType) String() string {
	if t.Package == "" {
		return t.Name
	}
	return PackageName(t.Package) + "." + t.Name
}

// PackageName guesses the package name from an import path the same way
// goimports does for unresolved imports: the last path element, ignoring a
// trailing major version suffix.
func PackageName(importPath string) string {
	parts := strings.Split(importPath, "/")
	name := parts[len(parts)-1]
	if len(parts) > 1 && isMajorVersion(name) {
		name = parts[len(parts)-2]
	}
	name = strings.TrimPrefix(name, "go-")
	return strings.NewReplacer("-", "", ".", "").Replace(name)
}

func isMajorVersion(s string) bool {
	if len(s) < 2 || s[0] != 'v' {
		return false
	}
	for _, r := range s[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ParseGoType parses "int", "time.Time" or "github.com/google/uuid.UUID".
func ParseGoType(s string) (GoType, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return GoType{}, fmt.Errorf("empty Go type")
	}

	i := strings.LastIndex(s, ".")
	if i < 0 {
		return GoType{Name: s}, nil
	}
	// a dot before the last slash belongs to a host name, not a type
	if strings.LastIndex(s, "/") > i {
		return GoType{}, fmt.Errorf("Go type %q has no type name", s)
	}
	pkg, name := s[:i], s[i+1:]
	if pkg == "" || name == "" {
		return GoType{}, fmt.Errorf("malformed Go type %q", s)
	}

	return GoType{Package: pkg, Name: name}, nil
}

// UnmappedScalarError reports a scalar that is neither built in nor mapped by
// the user.
type UnmappedScalarError struct {
	Name string
}

func (e *UnmappedScalarError) Error() string {
	return fmt.Sprintf("scalar %s has no Go type mapping; add it to the scalars section of the config", e.Name)
}

// Mapper resolves scalar names. The zero value is not usable; use New.
type Mapper struct {
	mapping map[string]string
}

// New returns a Mapper with the built-in scalars plus mapping. Entries in
// mapping override the built-ins.
func New(mapping map[string]string) *Mapper {
	return NewWithRuntime(DefaultRuntimeImport, mapping)
}

// NewWithRuntime is New with ID resolved against runtimeImport.
func NewWithRuntime(runtimeImport string, mapping map[string]string) *Mapper {
	m := map[string]string{
		"Int":     "int",
		"Float":   "float64",
		"String":  "string",
		"Boolean": "bool",
		"ID":      runtimeImport + ".ID",
	}
	for k, v := range mapping {
		m[k] = v
	}

	return &Mapper{mapping: m}
}

// Resolve returns the Go type for the scalar called name.
func (m *Mapper) Resolve(name string) (GoType, error) {
	v, ok := m.mapping[name]
	if !ok {
		return GoType{}, &UnmappedScalarError{Name: name}
	}

	t, err := ParseGoType(v)
	if err != nil {
		return GoType{}, fmt.Errorf("scalar %s: %w", name, err)
	}

	return t, nil
}

// IsBuiltin reports whether name is one of the five GraphQL built-in scalars.
func IsBuiltin(name string) bool {
	switch name {
	case "Int", "Float", "String", "Boolean", "ID":
		return true
	}
	return false
}
