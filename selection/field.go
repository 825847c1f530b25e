package selection

import (
	"fmt"
	"slices"

	"github.com/cespare/xxhash/v2"
	"github.com/go-json-experiment/json"
)

// Field is one entry of a selection set: a field, or an inline fragment when
// TypeCondition is set.
type Field struct {
	Alias         string
	Name          string
	Arguments     []Argument
	TypeCondition string
	Selections    []Field
}

// ResponseKey is the key the field's value appears under in a response.
func (f Field) ResponseKey() string {
	switch {
	case f.TypeCondition != "":
		return "... on " + f.TypeCondition
	case f.Alias != "":
		return f.Alias
	}
	return f.Name
}

// Argument is a field argument. It is sent as a variable of type Type.
type Argument struct {
	Name  string
	Type  string
	Value any

	omitted bool
}

// Arg returns a required argument.
func Arg(name, typ string, value any) Argument {
	return Argument{Name: name, Type: typ, Value: value}
}

// OptionalArg returns an argument that is left out of the document when value
// is nil, so that the server applies its default.
func OptionalArg[V any](name, typ string, value *V) Argument {
	if value == nil {
		return Argument{Name: name, Type: typ, omitted: true}
	}
	return Argument{Name: name, Type: typ, Value: *value}
}

// Leaf selects a field with no sub-selection on L.
func Leaf[L, T any](name string, dec Decoder[T], args ...Argument) Selection[T, L] {
	f := newField(name, args)

	return Selection[T, L]{
		fields: []Field{f},
		decode: func(obj Object) (T, error) {
			v, err := dec(obj[f.ResponseKey()])
			if err != nil {
				return v, fmt.Errorf("%s: %w", f.ResponseKey(), err)
			}
			return v, nil
		},
	}
}

// Nest selects a field of composite type on L. child is the selection made on
// the field's named type; wrap applies the field's list and null wrappers.
func Nest[L, T, C, CL any](name string, child Selection[C, CL], wrap func(Decoder[C]) Decoder[T], args ...Argument) Selection[T, L] {
	f := newField(name, args)
	f.Selections = child.fields
	dec := wrap(object(child))

	return Selection[T, L]{
		fields: []Field{f},
		decode: func(obj Object) (T, error) {
			v, err := dec(obj[f.ResponseKey()])
			if err != nil {
				return v, fmt.Errorf("%s: %w", f.ResponseKey(), err)
			}
			return v, nil
		},
	}
}

func newField(name string, args []Argument) Field {
	f := Field{Name: name}
	for _, arg := range args {
		if arg.omitted {
			continue
		}
		f.Arguments = append(f.Arguments, arg)
	}
	if len(f.Arguments) > 0 {
		f.Alias = alias(name, f.Arguments)
	}

	return f
}

// alias derives a response key from the field name and its arguments, so
// that the same field picked with different arguments does not conflict.
func alias(name string, args []Argument) string {
	h := xxhash.New()
	_, _ = h.WriteString(name)
	for _, arg := range args {
		_, _ = h.WriteString("\x00" + arg.Name + "\x00" + arg.Type + "\x00")
		b, err := json.Marshal(arg.Value, json.Deterministic(true))
		if err != nil {
			b = fmt.Appendf(nil, "%#v", arg.Value)
		}
		_, _ = h.Write(b)
	}

	return fmt.Sprintf("%s_%08x", name, uint32(h.Sum64()))
}

// mergeFields appends more to fields. Entries with a response key already
// present have their sub-selections merged instead.
func mergeFields(fields, more []Field) []Field {
	for _, f := range more {
		i := slices.IndexFunc(fields, func(g Field) bool {
			return g.ResponseKey() == f.ResponseKey()
		})
		if i < 0 {
			fields = append(fields, f)
			continue
		}

		merged := fields[i]
		merged.Selections = mergeFields(slices.Clone(merged.Selections), f.Selections)
		fields = slices.Clone(fields)
		fields[i] = merged
	}

	return fields
}
