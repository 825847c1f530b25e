package codegen

import (
	"fmt"
	gotypes "go/types"
	"strconv"
	"strings"

	"github.com/Yamashou/gqlbuilder/schema"
)

func (e *emitter) lockType(name, kind, description string) string {
	doc := []string{
		fmt.Sprintf("%s is the lock type of the %s %s. Selections made on it carry it", typeIdent(name), name, kind),
		"as a type parameter; it has no values.",
	}
	if description != "" {
		doc = append(append(doc, ""), descriptionDoc(description, false, "")...)
	}
	return e.g.formatter.FormatTypeDecl(doc, typeIdent(name), "struct{}")
}

func (e *emitter) selectionType(result, lock string) string {
	return fmt.Sprintf("%s[%s, %s]", e.rt("Selection"), result, lock)
}

// fieldFuncs classifies fields and renders a selection function per field.
func (e *emitter) fieldFuncs(owner string, fields []*schema.Field) ([]*ClassifiedField, []string, error) {
	var classified []*ClassifiedField
	var funcs []string
	for _, f := range fields {
		if !e.g.fieldIsGenerated(f) {
			continue
		}

		c, err := e.classifyField(f)
		if err != nil {
			return nil, nil, err
		}
		fn, err := e.fieldFunc(owner, c)
		if err != nil {
			return nil, nil, err
		}

		classified = append(classified, c)
		funcs = append(funcs, fn)
	}

	return classified, funcs, nil
}

// argParams renders the parameters and runtime arguments of a field
// function.
func (e *emitter) argParams(c *ClassifiedField) ([]Param, []string, error) {
	params := make([]Param, 0, len(c.Args))
	args := make([]string, 0, len(c.Args))
	for _, a := range c.Args {
		base, err := e.namedGoType(a.Target)
		if err != nil {
			return nil, nil, wrapError(e.entity, c.Field.Name+"("+a.Value.Name+")", err)
		}
		t := e.wrapWithListAndNullability(base, a.Ref)

		name := e.g.paramIdent(a.Value.Name)
		if a.Required {
			args = append(args, fmt.Sprintf("%s(%s, %s, %s)", e.rt("Arg"), strconv.Quote(a.Value.Name), strconv.Quote(a.Ref.String()), name))
		} else {
			if _, ok := t.(*gotypes.Pointer); !ok {
				t = gotypes.NewPointer(t)
			}
			args = append(args, fmt.Sprintf("%s(%s, %s, %s)", e.rt("OptionalArg"), strconv.Quote(a.Value.Name), strconv.Quote(a.Ref.String()), name))
		}
		params = append(params, Param{Name: name, Type: e.typeString(t)})
	}

	return params, args, nil
}

// fieldFunc renders the selection function of one field of owner.
//
// Leaf fields:
//
//	func Human_name() selection.Selection[string, Human]
//
// Composite fields take the selection made on the field's type:
//
//	func Query_hero[T any](sel selection.Selection[T, Character], episode *Episode) selection.Selection[*T, Query]
func (e *emitter) fieldFunc(owner string, c *ClassifiedField) (string, error) {
	f := c.Field
	lock := typeIdent(owner)
	name := fieldFuncIdent(owner, f.Name)

	params, args, err := e.argParams(c)
	if err != nil {
		return "", err
	}

	doc := []string{fmt.Sprintf("%s selects the %s field of %s.", name, f.Name, owner)}
	if lines := descriptionDoc(f.Description, f.IsDeprecated, f.DeprecationReason); len(lines) > 0 {
		doc = append(append(doc, ""), lines...)
	}

	fn := FuncDecl{Doc: doc, Name: name}
	switch c.Kind {
	case LeafField:
		base, err := e.namedGoType(c.Target)
		if err != nil {
			return "", wrapError(e.entity, f.Name, err)
		}
		result := e.typeString(e.wrapWithListAndNullability(base, c.Ref))
		decoder := e.decoderExpr(c.Ref, fmt.Sprintf("%s[%s]()", e.rt("Value"), e.typeString(base)))

		callArgs := append([]string{strconv.Quote(f.Name), decoder}, args...)
		fn.Params = params
		fn.Result = e.selectionType(result, lock)
		fn.Body = []Statement{
			&ReturnStatement{Value: fmt.Sprintf("%s[%s](%s)", e.rt("Leaf"), lock, strings.Join(callArgs, ", "))},
		}
	case CompositeField:
		tp := e.typeParamType()
		result := e.typeString(e.wrapWithListAndNullability(tp, c.Ref))
		wrap := fmt.Sprintf("func(d %s[%s]) %s[%s] {\n\treturn %s\n}",
			e.rt("Decoder"), typeParam, e.rt("Decoder"), result, e.decoderExpr(c.Ref, "d"))

		callArgs := append([]string{strconv.Quote(f.Name), "sel", wrap}, args...)
		fn.TypeParams = typeParam + " any"
		fn.Params = append([]Param{{Name: "sel", Type: e.selectionType(typeParam, typeIdent(c.Target.TypeName()))}}, params...)
		fn.Result = e.selectionType(result, lock)
		fn.Body = []Statement{
			&ReturnStatement{Value: fmt.Sprintf("%s[%s](%s)", e.rt("Nest"), lock, strings.Join(callArgs, ", "))},
		}
	}

	return e.g.formatter.FormatFunc(fn), nil
}

// scalarsDecl renders the static selection of every leaf field of owner that
// needs no arguments.
func (e *emitter) scalarsDecl(owner string, classified []*ClassifiedField) (string, error) {
	var members []StructMember
	var picks []string
	for _, c := range classified {
		if c.Kind != LeafField || hasRequiredArg(c) {
			continue
		}

		base, err := e.namedGoType(c.Target)
		if err != nil {
			return "", wrapError(e.entity, c.Field.Name, err)
		}
		member := memberIdent(c.Field.Name)
		members = append(members, StructMember{
			Doc:  descriptionDoc(c.Field.Description, c.Field.IsDeprecated, c.Field.DeprecationReason),
			Name: member,
			Type: e.typeString(e.wrapWithListAndNullability(base, c.Ref)),
		})

		nils := make([]string, len(c.Args))
		for i := range nils {
			nils[i] = "nil"
		}
		picks = append(picks, fmt.Sprintf("\t%s: %s(s, %s(%s)),", member, e.rt("Pick"), fieldFuncIdent(owner, c.Field.Name), strings.Join(nils, ", ")))
	}
	if len(members) == 0 {
		return "", nil
	}

	structName := scalarsStructIdent(owner)
	lock := typeIdent(owner)

	var buf strings.Builder
	buf.WriteString(e.g.formatter.FormatStructDecl(
		[]string{fmt.Sprintf("%s holds the scalar and enum fields of %s that take no required arguments.", structName, owner)},
		structName, members))
	buf.WriteString("\n")

	build := fmt.Sprintf("%s(func(s *%s[%s]) %s {\n\treturn %s{\n%s\n\t}\n})",
		e.rt("Build"), e.rt("Set"), lock, structName, structName, indentLines(picks, "\t"))
	buf.WriteString(e.g.formatter.FormatFunc(FuncDecl{
		Doc:    []string{fmt.Sprintf("%s selects every member of %s, leaving optional arguments unset.", allScalarsFuncIdent(owner), structName)},
		Name:   allScalarsFuncIdent(owner),
		Result: e.selectionType(structName, lock),
		Body:   []Statement{&ReturnStatement{Value: build}},
	}))

	return buf.String(), nil
}

func hasRequiredArg(c *ClassifiedField) bool {
	for _, a := range c.Args {
		if a.Required {
			return true
		}
	}
	return false
}

func indentLines(lines []string, indent string) string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = indent + l
	}
	return strings.Join(out, "\n")
}

// matchFunc renders the exhaustive match over the possible types of an
// interface or union: one parameter per possible type, in schema order.
func (e *emitter) matchFunc(owner string, possibleTypes []string) (string, error) {
	params := make([]Param, 0, len(possibleTypes))
	cases := make([]string, 0, len(possibleTypes))
	for _, name := range possibleTypes {
		t, ok := e.g.schema.Lookup(name)
		if !ok {
			return "", &Error{Kind: DanglingTypeReference, Entity: e.entity, Field: "possibleTypes", Name: name}
		}
		if _, ok := t.(*schema.Object); !ok {
			return "", &Error{Kind: InvalidPossibleType, Entity: e.entity, Field: "possibleTypes", Name: name}
		}

		param := e.g.paramIdent(name)
		params = append(params, Param{Name: param, Type: e.selectionType(typeParam, typeIdent(name))})
		cases = append(cases, fmt.Sprintf("%s(%s, %s)", e.rt("On"), strconv.Quote(name), param))
	}

	lock := typeIdent(owner)
	return e.g.formatter.FormatFunc(FuncDecl{
		Doc: []string{
			fmt.Sprintf("%s selects on the concrete type of a %s value. Every possible type needs", matchFuncIdent(owner), owner),
			"a selection with the same result type.",
		},
		Name:       matchFuncIdent(owner),
		TypeParams: typeParam + " any",
		Params:     params,
		Result:     e.selectionType(typeParam, lock),
		Body: []Statement{
			&ReturnStatement{Value: fmt.Sprintf("%s[%s, %s](%s)", e.rt("Match"), lock, typeParam, strings.Join(cases, ", "))},
		},
	}), nil
}

func (e *emitter) object(o *schema.Object) (string, error) {
	classified, funcs, err := e.fieldFuncs(o.Name, o.Fields)
	if err != nil {
		return "", err
	}
	scalars, err := e.scalarsDecl(o.Name, classified)
	if err != nil {
		return "", err
	}

	parts := append([]string{e.lockType(o.Name, "object", o.Description)}, funcs...)
	if scalars != "" {
		parts = append(parts, scalars)
	}
	return strings.Join(parts, "\n"), nil
}

func (e *emitter) iface(i *schema.Interface) (string, error) {
	_, funcs, err := e.fieldFuncs(i.Name, i.Fields)
	if err != nil {
		return "", err
	}
	match, err := e.matchFunc(i.Name, i.PossibleTypes)
	if err != nil {
		return "", err
	}

	parts := append([]string{e.lockType(i.Name, "interface", i.Description)}, funcs...)
	return strings.Join(append(parts, match), "\n"), nil
}

func (e *emitter) union(u *schema.Union) (string, error) {
	match, err := e.matchFunc(u.Name, u.PossibleTypes)
	if err != nil {
		return "", err
	}
	return e.lockType(u.Name, "union", u.Description) + "\n" + match, nil
}
