package codegen

import (
	"fmt"

	"github.com/Yamashou/gqlbuilder/schema"
)

func operationKindConst(kind schema.OperationKind) string {
	switch kind {
	case schema.OperationMutation:
		return "OperationMutation"
	case schema.OperationSubscription:
		return "OperationSubscription"
	}
	return "OperationQuery"
}

// operation renders the constructor rooting a selection at an operation type.
func (e *emitter) operation(op *schema.Operation) (string, error) {
	t, ok := e.g.schema.Lookup(op.TypeName)
	if !ok {
		return "", &Error{Kind: DanglingTypeReference, Entity: string(op.Kind), Name: op.TypeName}
	}
	if _, ok := t.(*schema.Object); !ok {
		return "", &Error{
			Kind:   MalformedTypeRef,
			Entity: string(op.Kind),
			Name:   op.TypeName,
			Err:    fmt.Errorf("root type %s is a %s, not an object", op.TypeName, t.Kind()),
		}
	}

	name := operationFuncIdent(op.Kind)
	doc := []string{fmt.Sprintf("%s roots sel at the %s type %s.", name, op.Kind, op.TypeName)}
	if op.IsSubscription {
		doc = append(doc, "", "Subscriptions need a streaming transport; client.Do refuses them.")
	}

	return e.g.formatter.FormatFunc(FuncDecl{
		Doc:        doc,
		Name:       name,
		TypeParams: typeParam + " any",
		Params:     []Param{{Name: "sel", Type: e.selectionType(typeParam, typeIdent(op.TypeName))}},
		Result:     fmt.Sprintf("%s[%s]", e.rt("Operation"), typeParam),
		Body: []Statement{
			&ReturnStatement{Value: fmt.Sprintf("%s(%s, sel)", e.rt("NewOperation"), e.rt(operationKindConst(op.Kind)))},
		},
	}), nil
}
