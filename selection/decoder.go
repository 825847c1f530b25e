package selection

import (
	"errors"
	"fmt"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

var (
	ErrMissingField   = errors.New("field missing from response")
	ErrUnexpectedNull = errors.New("unexpected null")
)

// Decoder decodes one JSON value.
type Decoder[T any] func(raw jsontext.Value) (T, error)

// Value decodes a non-null value with json.Unmarshal.
func Value[T any]() Decoder[T] {
	return func(raw jsontext.Value) (T, error) {
		var v T
		if len(raw) == 0 {
			return v, ErrMissingField
		}
		if raw.Kind() == 'n' {
			return v, ErrUnexpectedNull
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return v, fmt.Errorf("decode %T: %w", v, err)
		}

		return v, nil
	}
}

// Nullable decodes null as nil and everything else with d.
func Nullable[T any](d Decoder[T]) Decoder[*T] {
	return func(raw jsontext.Value) (*T, error) {
		if len(raw) == 0 || raw.Kind() == 'n' {
			return nil, nil
		}
		v, err := d(raw)
		if err != nil {
			return nil, err
		}

		return &v, nil
	}
}

// List decodes a non-null list whose elements are decoded with d.
func List[T any](d Decoder[T]) Decoder[[]T] {
	return func(raw jsontext.Value) ([]T, error) {
		if len(raw) == 0 {
			return nil, ErrMissingField
		}
		if raw.Kind() == 'n' {
			return nil, ErrUnexpectedNull
		}

		var elems []jsontext.Value
		if err := json.Unmarshal(raw, &elems); err != nil {
			return nil, fmt.Errorf("decode list: %w", err)
		}

		out := make([]T, 0, len(elems))
		for i, elem := range elems {
			v, err := d(elem)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			out = append(out, v)
		}

		return out, nil
	}
}

// object decodes a non-null JSON object with sel.
func object[T, L any](sel Selection[T, L]) Decoder[T] {
	return func(raw jsontext.Value) (T, error) {
		var zero T
		if len(raw) == 0 {
			return zero, ErrMissingField
		}
		if raw.Kind() == 'n' {
			return zero, ErrUnexpectedNull
		}

		var obj Object
		if err := json.Unmarshal(raw, &obj); err != nil {
			return zero, fmt.Errorf("decode object: %w", err)
		}

		return sel.Decode(obj)
	}
}
