package codegen

import (
	"fmt"
	"strings"

	"github.com/Yamashou/gqlbuilder/schema"
)

// inputObject renders the struct of an input object and its constructor.
// Nullable members are pointers and are left out of the JSON encoding when
// nil. They are tagged omitzero rather than omitempty: the latter would also
// drop a pointer to "", an empty list or an empty object.
func (e *emitter) inputObject(in *schema.InputObject) (string, error) {
	name := typeIdent(in.Name)
	f := e.g.formatter

	members := make([]StructMember, 0, len(in.Fields))
	var body []Statement
	body = append(body, &VariableDecl{Name: "v", Type: name})

	for _, field := range in.Fields {
		a, err := e.classifyInputValue(field.Name, field)
		if err != nil {
			return "", err
		}
		base, err := e.namedGoType(a.Target)
		if err != nil {
			return "", wrapError(e.entity, field.Name, err)
		}

		tag := fmt.Sprintf(`json:"%s"`, field.Name)
		if a.Ref.IsNullable(0) {
			tag = fmt.Sprintf(`json:"%s,omitzero"`, field.Name)
		}
		members = append(members, StructMember{
			Doc:  descriptionDoc(field.Description, false, ""),
			Name: memberIdent(field.Name),
			Type: e.typeString(e.wrapWithListAndNullability(base, a.Ref)),
			Tag:  tag,
		})

		if field.DefaultValue == nil {
			continue
		}
		lit, err := e.defaultLiteral(field.Name, *field.DefaultValue, a.Ref, a.Target, 0)
		if err != nil {
			return "", err
		}
		if lit == "nil" {
			continue
		}
		body = append(body, &Assignment{Target: "v." + memberIdent(field.Name), Value: lit})
	}
	body = append(body, &ReturnStatement{Value: "v"})

	var buf strings.Builder
	buf.WriteString(f.FormatStructDecl(descriptionDoc(in.Description, false, ""), name, members))
	buf.WriteString("\n")
	buf.WriteString(f.FormatFunc(FuncDecl{
		Doc:    []string{fmt.Sprintf("%s returns a %s with the schema defaults applied.", inputConstructorIdent(in.Name), name)},
		Name:   inputConstructorIdent(in.Name),
		Result: name,
		Body:   body,
	}))

	return buf.String(), nil
}
