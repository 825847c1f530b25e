package codegen

import (
	"fmt"
	gotypes "go/types"
	"maps"
	"slices"

	"github.com/Yamashou/gqlbuilder/introspection"
	"github.com/Yamashou/gqlbuilder/scalar"
	"github.com/Yamashou/gqlbuilder/schema"
	"github.com/Yamashou/gqlbuilder/typeref"
)

// emitter generates the declaration of one schema entity. It builds go/types
// values for the types it refers to and records the imports they need.
type emitter struct {
	g       *generator
	entity  string
	local   *gotypes.Package
	runtime *gotypes.Package
	imports map[string]struct{}
}

func (g *generator) newEmitter(entity string) *emitter {
	return &emitter{
		g:       g,
		entity:  entity,
		local:   gotypes.NewPackage("", "generated"),
		runtime: gotypes.NewPackage(g.runtimeImport, g.runtimeName),
		imports: map[string]struct{}{},
	}
}

func (e *emitter) sortedImports() []string {
	return slices.Sorted(maps.Keys(e.imports))
}

// rt qualifies a runtime identifier.
func (e *emitter) rt(name string) string {
	e.imports[e.runtime.Path()] = struct{}{}
	return e.g.runtimeName + "." + name
}

func (e *emitter) qualifier(p *gotypes.Package) string {
	if p == nil || p == e.local {
		return ""
	}
	e.imports[p.Path()] = struct{}{}
	return p.Name()
}

func (e *emitter) typeString(t gotypes.Type) string {
	return gotypes.TypeString(t, e.qualifier)
}

func (e *emitter) newNamed(pkg *gotypes.Package, name string) gotypes.Type {
	return gotypes.NewNamed(gotypes.NewTypeName(0, pkg, name, nil), gotypes.NewStruct(nil, nil), nil)
}

// typeParamType stands for the type parameter T of generic selection
// functions.
func (e *emitter) typeParamType() gotypes.Type {
	return e.newNamed(nil, typeParam)
}

// localType is a type declared by the generated package.
func (e *emitter) localType(schemaName string) gotypes.Type {
	return e.newNamed(e.local, typeIdent(schemaName))
}

func (e *emitter) scalarGoType(name string) (gotypes.Type, error) {
	goType, err := e.g.scalars.Resolve(name)
	if err != nil {
		return nil, err
	}

	switch {
	case goType.Package == e.runtime.Path():
		return e.newNamed(e.runtime, goType.Name), nil
	case goType.Package != "":
		return e.newNamed(gotypes.NewPackage(goType.Package, scalar.PackageName(goType.Package)), goType.Name), nil
	}

	if obj, ok := gotypes.Universe.Lookup(goType.Name).(*gotypes.TypeName); ok {
		return obj.Type(), nil
	}
	// an unqualified name that is not predeclared lives next to the
	// generated code
	return e.newNamed(e.local, goType.Name), nil
}

// namedGoType is the Go type of a leaf or input value of type t, before list
// and null wrapping.
func (e *emitter) namedGoType(t schema.Type) (gotypes.Type, error) {
	if s, ok := t.(*schema.Scalar); ok {
		return e.scalarGoType(s.Name)
	}
	return e.localType(t.TypeName()), nil
}

// lookup resolves ref and finds its named type in the schema.
func (e *emitter) lookup(field string, raw *introspection.TypeRef) (typeref.TypeRef, schema.Type, error) {
	ref, err := typeref.Resolve(raw)
	if err != nil {
		return typeref.TypeRef{}, nil, wrapError(e.entity, field, err)
	}

	t, ok := e.g.schema.Lookup(ref.Name)
	if !ok {
		return typeref.TypeRef{}, nil, &Error{Kind: DanglingTypeReference, Entity: e.entity, Field: field, Name: ref.Name}
	}

	return ref, t, nil
}

// wrapWithListAndNullability wraps a base type according to the wrappers of
// ref: a nullable value becomes a pointer and a list becomes a slice.
func (e *emitter) wrapWithListAndNullability(base gotypes.Type, ref typeref.TypeRef) gotypes.Type {
	return e.wrapFromDepth(base, ref, 0)
}

// wrapFromDepth is the Go type of the value found at list depth d of ref.
func (e *emitter) wrapFromDepth(base gotypes.Type, ref typeref.TypeRef, d int) gotypes.Type {
	nullability := ref.Nullability()
	depth := ref.Depth()

	t := base
	if nullability[depth] {
		t = gotypes.NewPointer(t)
	}
	for i := depth - 1; i >= d; i-- {
		t = gotypes.NewSlice(t)
		if nullability[i] {
			t = gotypes.NewPointer(t)
		}
	}

	return t
}

// decoderExpr wraps inner, a runtime decoder of the named type, into the
// decoder of the whole reference.
func (e *emitter) decoderExpr(ref typeref.TypeRef, inner string) string {
	nullability := ref.Nullability()
	depth := ref.Depth()

	expr := inner
	if nullability[depth] {
		expr = fmt.Sprintf("%s(%s)", e.rt("Nullable"), expr)
	}
	for i := depth - 1; i >= 0; i-- {
		expr = fmt.Sprintf("%s(%s)", e.rt("List"), expr)
		if nullability[i] {
			expr = fmt.Sprintf("%s(%s)", e.rt("Nullable"), expr)
		}
	}

	return expr
}
