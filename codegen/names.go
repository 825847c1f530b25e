package codegen

import (
	"go/token"
	gotypes "go/types"
	"strings"

	"github.com/Yamashou/gqlbuilder/casing"
	"github.com/Yamashou/gqlbuilder/schema"
)

// typeParam is the type parameter of generic selection functions.
const typeParam = "T"

// typeIdent is the Go identifier of a schema type.
func typeIdent(name string) string {
	return exportedIdent(casing.PascalCase(name))
}

// memberIdent is the Go identifier of a struct member or a function suffix
// derived from a schema field name.
func memberIdent(name string) string {
	return exportedIdent(casing.PascalCase(name))
}

// exportedIdent makes an identifier out of a pascal-cased name that starts
// with a digit or is empty.
func exportedIdent(s string) string {
	if s == "" || (s[0] >= '0' && s[0] <= '9') {
		return "X" + s
	}
	return s
}

func enumConstIdent(enum, value string) string {
	return typeIdent(enum) + "_" + casing.CamelCasePreservingSurroundingUnderscores(value)
}

// Identifiers scoped to a schema type are "<Type>_<suffix>". Type
// identifiers never contain an underscore, so the prefix keeps each type's
// identifiers apart from every other type's and from the type names
// themselves. Field suffixes never start with an upper case letter, which
// leaves upper case suffixes to the fixed helpers below.

func fieldFuncIdent(owner, field string) string {
	return typeIdent(owner) + "_" + casing.CamelCasePreservingSurroundingUnderscores(field)
}

func scalarsStructIdent(owner string) string { return typeIdent(owner) + "_Scalars" }
func allScalarsFuncIdent(owner string) string { return typeIdent(owner) + "_AllScalars" }
func matchFuncIdent(owner string) string { return typeIdent(owner) + "_On" }
func inputConstructorIdent(input string) string { return typeIdent(input) + "_New" }

func operationFuncIdent(kind schema.OperationKind) string {
	switch kind {
	case schema.OperationMutation:
		return "NewMutation"
	case schema.OperationSubscription:
		return "NewSubscription"
	}
	return "NewQuery"
}

// paramIdent is the Go identifier of a function parameter named after a
// schema name. Names that would shadow something the function body refers
// to get a trailing underscore.
func (g *generator) paramIdent(name string) string {
	ident := casing.CamelCasePreservingSurroundingUnderscores(name)
	switch ident {
	case "":
		ident = "_" + name
	case "_":
		// the blank identifier cannot be read back
		ident = "__"
	}
	if token.IsKeyword(ident) || gotypes.Universe.Lookup(ident) != nil || g.reservedParams[ident] {
		return ident + "_"
	}
	return ident
}

// identRegistry detects distinct schema names that map to the same Go
// identifier in one namespace.
type identRegistry struct {
	owners map[string]string
}

func newIdentRegistry() *identRegistry {
	return &identRegistry{owners: map[string]string{}}
}

// claim records that owner declares ident. entity and field locate owner for
// the error.
func (r *identRegistry) claim(ident, owner, entity, field string) error {
	if prev, ok := r.owners[ident]; ok {
		return &Error{Kind: IdentifierCollision, Entity: entity, Field: field, Name: ident, Other: prev}
	}
	r.owners[ident] = owner
	return nil
}

// isGenerated reports whether the type called name gets declarations.
// Introspection meta types are left out.
func isGenerated(name string) bool {
	return !strings.HasPrefix(name, "__")
}

// checkIdentifiers claims every package-level identifier the run declares and
// every member and parameter identifier inside each declaration.
func (g *generator) checkIdentifiers() error {
	pkg := newIdentRegistry()
	if err := pkg.claim(typeParam, "the type parameter of selection functions", typeParam, ""); err != nil {
		return err
	}

	claimType := func(name string) error {
		return pkg.claim(typeIdent(name), name, name, "")
	}
	claimFields := func(owner string, fields []*schema.Field) error {
		for _, f := range fields {
			if !g.fieldIsGenerated(f) {
				continue
			}
			if err := pkg.claim(fieldFuncIdent(owner, f.Name), owner+"."+f.Name, owner, f.Name); err != nil {
				return err
			}

			params := newIdentRegistry()
			for _, arg := range f.Args {
				if err := params.claim(g.paramIdent(arg.Name), arg.Name, owner, f.Name); err != nil {
					return err
				}
			}
		}
		return nil
	}
	claimPossibleTypes := func(owner string, possibleTypes []string) error {
		if err := pkg.claim(matchFuncIdent(owner), owner+" match", owner, ""); err != nil {
			return err
		}
		params := newIdentRegistry()
		for _, name := range possibleTypes {
			if err := params.claim(g.paramIdent(name), name, owner, name); err != nil {
				return err
			}
		}
		return nil
	}

	for _, op := range g.schema.Operations {
		if err := pkg.claim(operationFuncIdent(op.Kind), string(op.Kind)+" operation", op.TypeName, ""); err != nil {
			return err
		}
	}

	for _, o := range g.schema.Objects {
		if !isGenerated(o.Name) {
			continue
		}
		if err := claimType(o.Name); err != nil {
			return err
		}
		if err := claimFields(o.Name, o.Fields); err != nil {
			return err
		}
		if len(g.scalarFields(o.Fields)) > 0 {
			if err := pkg.claim(scalarsStructIdent(o.Name), o.Name+" scalars", o.Name, ""); err != nil {
				return err
			}
			if err := pkg.claim(allScalarsFuncIdent(o.Name), o.Name+" all scalars", o.Name, ""); err != nil {
				return err
			}

			members := newIdentRegistry()
			for _, f := range g.scalarFields(o.Fields) {
				if err := members.claim(memberIdent(f.Name), f.Name, o.Name, f.Name); err != nil {
					return err
				}
			}
		}
	}

	for _, i := range g.schema.Interfaces {
		if !isGenerated(i.Name) {
			continue
		}
		if err := claimType(i.Name); err != nil {
			return err
		}
		if err := claimFields(i.Name, i.Fields); err != nil {
			return err
		}
		if err := claimPossibleTypes(i.Name, i.PossibleTypes); err != nil {
			return err
		}
	}

	for _, u := range g.schema.Unions {
		if !isGenerated(u.Name) {
			continue
		}
		if err := claimType(u.Name); err != nil {
			return err
		}
		if err := claimPossibleTypes(u.Name, u.PossibleTypes); err != nil {
			return err
		}
	}

	for _, e := range g.schema.Enums {
		if !isGenerated(e.Name) {
			continue
		}
		if err := claimType(e.Name); err != nil {
			return err
		}
		for _, v := range e.Values {
			if err := pkg.claim(enumConstIdent(e.Name, v.Name), e.Name+"."+v.Name, e.Name, v.Name); err != nil {
				return err
			}
		}
	}

	for _, in := range g.schema.InputObjects {
		if !isGenerated(in.Name) {
			continue
		}
		if err := claimType(in.Name); err != nil {
			return err
		}
		if err := pkg.claim(inputConstructorIdent(in.Name), in.Name+" constructor", in.Name, ""); err != nil {
			return err
		}

		members := newIdentRegistry()
		for _, f := range in.Fields {
			if err := members.claim(memberIdent(f.Name), f.Name, in.Name, f.Name); err != nil {
				return err
			}
		}
	}

	return nil
}
