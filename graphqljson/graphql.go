// Package graphqljson decodes GraphQL response envelopes.
package graphqljson

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

// Response is the envelope of a GraphQL response.
type Response struct {
	Data       jsontext.Value `json:"data,omitzero"`
	Errors     Errors         `json:"errors,omitempty"`
	Extensions map[string]any `json:"extensions,omitempty"`
}

// Error is one entry of the errors member of a response.
type Error struct {
	Message    string         `json:"message"`
	Locations  []Location     `json:"locations,omitempty"`
	Path       []any          `json:"path,omitempty"`
	Extensions map[string]any `json:"extensions,omitempty"`
}

type Location struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

func (e *Error) Error() string {
	if len(e.Path) == 0 {
		return e.Message
	}

	path := make([]string, 0, len(e.Path))
	for _, p := range e.Path {
		path = append(path, fmt.Sprint(p))
	}
	return fmt.Sprintf("%s (path: %s)", e.Message, strings.Join(path, "."))
}

// Errors is the errors member of a response.
type Errors []*Error

func (errs Errors) Error() string {
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, e.Error())
	}
	return "graphql: " + strings.Join(msgs, "; ")
}

// DecodeResponse decodes a response body. A response with a non-empty errors
// member is returned together with those errors.
func DecodeResponse(body []byte) (*Response, error) {
	var resp Response
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode graphql response: %w", err)
	}
	if len(resp.Errors) > 0 {
		return &resp, resp.Errors
	}

	return &resp, nil
}

// UnmarshalData parses the GraphQL response payload contained in data and stores
// the result into v, which must be a non-nil pointer.
func UnmarshalData(data jsontext.Value, v any) error {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("decode graphql data: decode json: cannot decode into non-pointer %T", v)
	}
	if len(data) == 0 || data.Kind() == 'n' {
		return fmt.Errorf("decode graphql data: response has no data")
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode graphql data: decode json: %w", err)
	}

	return nil
}
