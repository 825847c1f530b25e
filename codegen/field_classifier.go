package codegen

import (
	"fmt"

	"github.com/Yamashou/gqlbuilder/schema"
	"github.com/Yamashou/gqlbuilder/typeref"
)

// FieldKind はオブジェクトのフィールドが生成するセレクション関数の種類を表す。
type FieldKind int

const (
	// LeafField は scalar または enum 型のフィールド。サブセレクションを持たない。
	LeafField FieldKind = iota + 1
	// CompositeField は object、interface、union 型のフィールド。
	// 子のセレクションを受け取るジェネリック関数になる。
	CompositeField
)

// ClassifiedField は分類済みのフィールドを表す。
type ClassifiedField struct {
	Field  *schema.Field
	Ref    typeref.TypeRef
	Target schema.Type
	Kind   FieldKind
	// Args はパラメータ順の引数。必須の引数が先に並ぶ。
	Args []ClassifiedArg
}

// ClassifiedArg は型解決済みの引数を表す。
type ClassifiedArg struct {
	Value    *schema.InputValue
	Ref      typeref.TypeRef
	Target   schema.Type
	Required bool
}

// isRequired は引数が省略できないかどうかを返す。
//
// 非 null 型でデフォルト値を持たない引数だけが必須になる。
func isRequired(ref typeref.TypeRef, v *schema.InputValue) bool {
	return len(ref.Wrappers) > 0 && ref.Wrappers[0] == typeref.NonNull && v.DefaultValue == nil
}

// classifyField はフィールドの型と引数を解決して分類する。
//
// 引数は必須のものを先に、それ以外をスキーマの順序のまま後ろに並べる。
func (e *emitter) classifyField(f *schema.Field) (*ClassifiedField, error) {
	ref, target, err := e.lookup(f.Name, f.Type)
	if err != nil {
		return nil, err
	}

	c := &ClassifiedField{Field: f, Ref: ref, Target: target}
	switch target.(type) {
	case *schema.Scalar, *schema.Enum:
		c.Kind = LeafField
	case *schema.Object, *schema.Interface, *schema.Union:
		c.Kind = CompositeField
	default:
		return nil, &Error{
			Kind:   MalformedTypeRef,
			Entity: e.entity,
			Field:  f.Name,
			Name:   target.TypeName(),
			Err:    fmt.Errorf("%s %s cannot be the type of an output field", target.Kind(), target.TypeName()),
		}
	}

	var required, optional []ClassifiedArg
	for _, arg := range f.Args {
		a, err := e.classifyInputValue(f.Name+"("+arg.Name+")", arg)
		if err != nil {
			return nil, err
		}
		if a.Required {
			required = append(required, a)
		} else {
			optional = append(optional, a)
		}
	}
	c.Args = append(required, optional...)

	return c, nil
}

// classifyInputValue は引数または input object のメンバーの型を解決する。
func (e *emitter) classifyInputValue(where string, v *schema.InputValue) (ClassifiedArg, error) {
	ref, target, err := e.lookup(where, v.Type)
	if err != nil {
		return ClassifiedArg{}, err
	}

	switch target.(type) {
	case *schema.Scalar, *schema.Enum, *schema.InputObject:
	default:
		return ClassifiedArg{}, &Error{
			Kind:   MalformedTypeRef,
			Entity: e.entity,
			Field:  where,
			Name:   target.TypeName(),
			Err:    fmt.Errorf("%s %s cannot be the type of an input value", target.Kind(), target.TypeName()),
		}
	}

	return ClassifiedArg{Value: v, Ref: ref, Target: target, Required: isRequired(ref, v)}, nil
}

// fieldIsGenerated はフィールドがセレクション関数を持つかどうかを返す。
//
// イントロスペクション用のメタ型（"__" で始まる型）を返すフィールドは生成しない。
// 型を解決できないフィールドは生成対象とし、エラーは生成時に報告する。
func (g *generator) fieldIsGenerated(f *schema.Field) bool {
	ref, err := typeref.Resolve(f.Type)
	if err != nil {
		return true
	}
	return isGenerated(ref.Name)
}

// scalarFields は静的な "全 scalar" セレクションに含めるフィールドを返す。
//
// 対象は scalar または enum 型で、必須の引数を持たないフィールド。
func (g *generator) scalarFields(fields []*schema.Field) []*schema.Field {
	var out []*schema.Field
	for _, f := range fields {
		ref, err := typeref.Resolve(f.Type)
		if err != nil || !isGenerated(ref.Name) {
			continue
		}
		target, ok := g.schema.Lookup(ref.Name)
		if !ok {
			continue
		}
		switch target.(type) {
		case *schema.Scalar, *schema.Enum:
		default:
			continue
		}

		hasRequired := false
		for _, arg := range f.Args {
			argRef, err := typeref.Resolve(arg.Type)
			if err != nil || isRequired(argRef, arg) {
				hasRequired = true
				break
			}
		}
		if !hasRequired {
			out = append(out, f)
		}
	}

	return out
}
