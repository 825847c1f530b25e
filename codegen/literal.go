package codegen

import (
	"errors"
	"fmt"
	gotypes "go/types"
	"slices"
	"strconv"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"

	"github.com/Yamashou/gqlbuilder/schema"
	"github.com/Yamashou/gqlbuilder/typeref"
)

// maxLiteralDepth bounds how far defaults of nested input objects are
// expanded.
const maxLiteralDepth = 32

var errNullForNonNull = errors.New("null for a non-null type")

// parseDefault parses the GraphQL literal text reported as a default value.
func parseDefault(text string) (*ast.Value, error) {
	doc, err := parser.ParseQuery(&ast.Source{Name: "default", Input: "{f(v: " + text + ")}"})
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", text, err)
	}
	if len(doc.Operations) != 1 || len(doc.Operations[0].SelectionSet) != 1 {
		return nil, fmt.Errorf("parse %q: not a single value", text)
	}
	field, ok := doc.Operations[0].SelectionSet[0].(*ast.Field)
	if !ok || len(field.Arguments) != 1 {
		return nil, fmt.Errorf("parse %q: not a single value", text)
	}

	return field.Arguments[0].Value, nil
}

// defaultLiteral renders the default value text of an input value of type
// ref as a Go expression of the member's Go type.
func (e *emitter) defaultLiteral(where, text string, ref typeref.TypeRef, target schema.Type, depth int) (string, error) {
	v, err := parseDefault(text)
	if err != nil {
		return "", &Error{Kind: UnsupportedDefaultLiteral, Entity: e.entity, Field: where, Err: err}
	}

	lit, err := e.literal(v, ref, target, 0, depth)
	if err != nil {
		return "", &Error{Kind: UnsupportedDefaultLiteral, Entity: e.entity, Field: where, Name: target.TypeName(), Err: err}
	}

	return lit, nil
}

// literal renders v as the value found at list depth d of ref.
func (e *emitter) literal(v *ast.Value, ref typeref.TypeRef, target schema.Type, d, depth int) (string, error) {
	nullable := ref.IsNullable(d)

	switch v.Kind {
	case ast.Variable:
		return "", fmt.Errorf("variable $%s", v.Raw)
	case ast.NullValue:
		if !nullable {
			return "", errNullForNonNull
		}
		return "nil", nil
	}

	base, err := e.namedGoType(target)
	if err != nil {
		return "", err
	}

	if d < ref.Depth() {
		items := []*ast.Value{v}
		if v.Kind == ast.ListValue {
			items = make([]*ast.Value, 0, len(v.Children))
			for _, child := range v.Children {
				items = append(items, child.Value)
			}
		}

		elems := make([]string, 0, len(items))
		for _, item := range items {
			elem, err := e.literal(item, ref, target, d+1, depth)
			if err != nil {
				return "", err
			}
			elems = append(elems, elem)
		}

		slice := e.typeString(e.wrapFromDepth(base, ref, d+1))
		lit := fmt.Sprintf("[]%s{%s}", slice, strings.Join(elems, ", "))
		if nullable {
			return "&" + lit, nil
		}
		return lit, nil
	}

	named, err := e.namedLiteral(v, target, depth)
	if err != nil {
		return "", err
	}
	if !nullable {
		return named, nil
	}
	if _, ok := target.(*schema.InputObject); ok {
		return "&" + named, nil
	}
	return fmt.Sprintf("%s[%s](%s)", e.rt("Ptr"), e.typeString(base), named), nil
}

// namedLiteral renders a non-null value of the named type target.
func (e *emitter) namedLiteral(v *ast.Value, target schema.Type, depth int) (string, error) {
	switch t := target.(type) {
	case *schema.Scalar:
		return e.scalarLiteral(v, t)
	case *schema.Enum:
		if v.Kind != ast.EnumValue {
			return "", fmt.Errorf("%s is not a value of enum %s", v.String(), t.Name)
		}
		if !slices.ContainsFunc(t.Values, func(ev *schema.EnumValue) bool { return ev.Name == v.Raw }) {
			return "", fmt.Errorf("enum %s has no value %s", t.Name, v.Raw)
		}
		return enumConstIdent(t.Name, v.Raw), nil
	case *schema.InputObject:
		if v.Kind != ast.ObjectValue {
			return "", fmt.Errorf("%s is not an object", v.String())
		}
		return e.inputObjectLiteral(v, t, depth)
	}

	return "", fmt.Errorf("%s %s has no literal form", target.Kind(), target.TypeName())
}

func (e *emitter) scalarLiteral(v *ast.Value, s *schema.Scalar) (string, error) {
	var lit string
	switch {
	case s.Name == "Int" && v.Kind == ast.IntValue:
		lit = v.Raw
	case s.Name == "Float" && (v.Kind == ast.IntValue || v.Kind == ast.FloatValue):
		lit = v.Raw
	case s.Name == "String" && (v.Kind == ast.StringValue || v.Kind == ast.BlockValue):
		lit = strconv.Quote(v.Raw)
	case s.Name == "Boolean" && v.Kind == ast.BooleanValue:
		lit = v.Raw
	case s.Name == "ID" && (v.Kind == ast.StringValue || v.Kind == ast.IntValue):
		lit = strconv.Quote(v.Raw)
	case s.Name == "Int", s.Name == "Float", s.Name == "String", s.Name == "Boolean", s.Name == "ID":
		return "", fmt.Errorf("%s is not a valid %s", v.String(), s.Name)
	default:
		return "", fmt.Errorf("default of custom scalar %s", s.Name)
	}

	t, err := e.scalarGoType(s.Name)
	if err != nil {
		return "", err
	}
	if _, ok := t.(*gotypes.Basic); ok {
		return lit, nil
	}
	return fmt.Sprintf("%s(%s)", e.typeString(t), lit), nil
}

// inputObjectLiteral renders an object value. Members the value leaves out
// take their own defaults.
func (e *emitter) inputObjectLiteral(v *ast.Value, in *schema.InputObject, depth int) (string, error) {
	if depth >= maxLiteralDepth {
		return "", fmt.Errorf("defaults of %s nest deeper than %d levels", in.Name, maxLiteralDepth)
	}

	given := make(map[string]*ast.Value, len(v.Children))
	for _, child := range v.Children {
		if !slices.ContainsFunc(in.Fields, func(f *schema.InputValue) bool { return f.Name == child.Name }) {
			return "", fmt.Errorf("input object %s has no field %s", in.Name, child.Name)
		}
		given[child.Name] = child.Value
	}

	var members []string
	for _, f := range in.Fields {
		value, ok := given[f.Name]
		if !ok && f.DefaultValue == nil {
			continue
		}

		ref, err := typeref.Resolve(f.Type)
		if err != nil {
			return "", err
		}
		target, found := e.g.schema.Lookup(ref.Name)
		if !found {
			return "", fmt.Errorf("type %s is not defined in the schema", ref.Name)
		}

		var lit string
		if ok {
			lit, err = e.literal(value, ref, target, 0, depth+1)
		} else {
			var parsed *ast.Value
			parsed, err = parseDefault(*f.DefaultValue)
			if err == nil {
				lit, err = e.literal(parsed, ref, target, 0, depth+1)
			}
		}
		if err != nil {
			return "", fmt.Errorf("%s.%s: %w", in.Name, f.Name, err)
		}
		members = append(members, memberIdent(f.Name)+": "+lit)
	}

	return fmt.Sprintf("%s{%s}", typeIdent(in.Name), strings.Join(members, ", ")), nil
}
