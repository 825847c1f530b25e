package introspection

import (
	"errors"
	"fmt"

	"github.com/go-json-experiment/json"
)

var ErrNoSchema = errors.New("neither data nor __schema present")

// Decode reads an introspection result. Both the GraphQL response envelope
// ({"data": {"__schema": ...}}) and a bare {"__schema": ...} document are
// accepted.
func Decode(data []byte) (*Query, error) {
	var envelope struct {
		Data   *Query  `json:"data"`
		Schema *Schema `json:"__schema"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("decode introspection result: %w", err)
	}

	switch {
	case envelope.Data != nil:
		return envelope.Data, nil
	case envelope.Schema != nil:
		return &Query{Schema: envelope.Schema}, nil
	}

	return nil, fmt.Errorf("decode introspection result: %w", ErrNoSchema)
}
