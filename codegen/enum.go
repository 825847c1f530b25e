package codegen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Yamashou/gqlbuilder/schema"
)

// enum renders a string type with one constant per value, keeping the wire
// name as the constant's value.
func (e *emitter) enum(en *schema.Enum) string {
	name := typeIdent(en.Name)
	f := e.g.formatter

	consts := make([]ConstSpec, 0, len(en.Values))
	idents := make([]string, 0, len(en.Values))
	for _, v := range en.Values {
		ident := enumConstIdent(en.Name, v.Name)
		consts = append(consts, ConstSpec{
			Doc:   descriptionDoc(v.Description, v.IsDeprecated, v.DeprecationReason),
			Name:  ident,
			Type:  name,
			Value: strconv.Quote(v.Name),
		})
		idents = append(idents, ident)
	}

	var buf strings.Builder
	buf.WriteString(f.FormatTypeDecl(descriptionDoc(en.Description, false, ""), name, "string"))
	buf.WriteString("\n")
	if block := f.FormatConstBlock(consts); block != "" {
		buf.WriteString(block)
		buf.WriteString("\n")
	}

	buf.WriteString(f.FormatFunc(FuncDecl{
		Doc:      []string{fmt.Sprintf("Values returns every %s value in schema order.", name)},
		Receiver: name,
		Name:     "Values",
		Result:   "[]" + name,
		Body:     []Statement{&ReturnStatement{Value: fmt.Sprintf("[]%s{%s}", name, strings.Join(idents, ", "))}},
	}))
	buf.WriteString("\n")

	buf.WriteString(f.FormatFunc(FuncDecl{
		Doc:      []string{"IsValid reports whether e is one of the values declared by the schema."},
		Receiver: "e " + name,
		Name:     "IsValid",
		Result:   "bool",
		Body: []Statement{
			&SwitchStatement{
				Expr:  "e",
				Cases: []SwitchCase{{Values: idents, Body: []Statement{&ReturnStatement{Value: "true"}}}},
			},
			&ReturnStatement{Value: "false"},
		},
	}))

	return buf.String()
}
