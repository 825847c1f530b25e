package selection

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-json-experiment/json"
)

type OperationKind string

const (
	OperationQuery        OperationKind = "query"
	OperationMutation     OperationKind = "mutation"
	OperationSubscription OperationKind = "subscription"
)

// Operation is an executable GraphQL operation whose data decodes into T.
type Operation[T any] struct {
	Kind OperationKind
	Name string

	fields []Field
	decode func(obj Object) (T, error)
}

// NewOperation roots sel at the operation type of kind.
func NewOperation[T, L any](kind OperationKind, sel Selection[T, L]) Operation[T] {
	return Operation[T]{Kind: kind, fields: sel.fields, decode: sel.Decode}
}

// Named returns a copy of o with an operation name.
func (o Operation[T]) Named(name string) Operation[T] {
	o.Name = name
	return o
}

// Document renders the operation and the variables its arguments were
// turned into. Variables are named $v0, $v1, ... in document order.
func (o Operation[T]) Document() (string, map[string]any) {
	r := &renderer{variables: map[string]any{}}

	var body strings.Builder
	r.selectionSet(&body, o.fields, 0)

	var b strings.Builder
	b.WriteString(string(o.Kind))
	if o.Name != "" {
		b.WriteString(" " + o.Name)
	}
	if len(r.definitions) > 0 {
		b.WriteString("(" + strings.Join(r.definitions, ", ") + ")")
	}
	b.WriteString(" ")
	b.WriteString(body.String())
	b.WriteString("\n")

	return b.String(), r.variables
}

// Decode decodes the data member of a response.
func (o Operation[T]) Decode(data []byte) (T, error) {
	var obj Object
	if err := json.Unmarshal(data, &obj); err != nil {
		var zero T
		return zero, fmt.Errorf("decode data: %w", err)
	}
	if o.decode == nil {
		var zero T
		return zero, nil
	}

	return o.decode(obj)
}

type renderer struct {
	definitions []string
	variables   map[string]any
}

func (r *renderer) selectionSet(b *strings.Builder, fields []Field, depth int) {
	indent := strings.Repeat("  ", depth+1)

	b.WriteString("{\n")
	for _, f := range fields {
		b.WriteString(indent)
		switch {
		case f.TypeCondition != "":
			b.WriteString("... on " + f.TypeCondition)
		default:
			if f.Alias != "" {
				b.WriteString(f.Alias + ": ")
			}
			b.WriteString(f.Name)
			r.arguments(b, f.Arguments)
		}
		if len(f.Selections) > 0 {
			b.WriteString(" ")
			r.selectionSet(b, f.Selections, depth+1)
		}
		b.WriteString("\n")
	}
	b.WriteString(strings.Repeat("  ", depth) + "}")
}

func (r *renderer) arguments(b *strings.Builder, args []Argument) {
	if len(args) == 0 {
		return
	}

	parts := make([]string, 0, len(args))
	for _, arg := range args {
		name := "v" + strconv.Itoa(len(r.definitions))
		r.definitions = append(r.definitions, "$"+name+": "+arg.Type)
		r.variables[name] = arg.Value
		parts = append(parts, arg.Name+": $"+name)
	}
	b.WriteString("(" + strings.Join(parts, ", ") + ")")
}
