package client

import (
	"fmt"
	"io"
	"net/http"

	"github.com/Yamashou/gqlbuilder/graphqljson"
)

// HTTPError is returned for responses with a non-2xx status.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http status %d: %s", e.StatusCode, e.Body)
}

// ParseResponse reads a GraphQL response and decodes its data member into
// out. GraphQL errors in the response are returned as graphqljson.Errors.
func ParseResponse(resp *http.Response, out any) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &HTTPError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	result, err := graphqljson.DecodeResponse(body)
	if err != nil {
		return err
	}

	if err := graphqljson.UnmarshalData(result.Data, out); err != nil {
		return fmt.Errorf("failed to decode data into response: %w", err)
	}

	return nil
}
