package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-json-experiment/json/jsontext"

	"github.com/Yamashou/gqlbuilder/introspection"
	"github.com/Yamashou/gqlbuilder/selection"
)

// ErrSubscription is returned by Do for subscription operations, which need a
// streaming transport.
var ErrSubscription = errors.New("subscriptions cannot be executed over a single HTTP request")

type Client struct {
	client   *http.Client
	header   http.Header
	endpoint string
}

// NewClient creates a new http client wrapper.
func NewClient(endpoint string, options ...Option) *Client {
	client := &Client{
		endpoint: endpoint,
		client:   http.DefaultClient,
	}
	for _, option := range options {
		option(client)
	}

	return client
}

type Option func(*Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.client = httpClient
	}
}

func WithHTTPHeader(header http.Header) Option {
	return func(c *Client) {
		c.header = header
	}
}

// Post sends a GraphQL request and decodes the data member of the response
// into out.
func (c *Client) Post(ctx context.Context, operationName, query string, variables map[string]any, out any) error {
	req, err := NewRequest(ctx, c.endpoint, operationName, query, variables)
	if err != nil {
		return fmt.Errorf("failed to create post request: %w", err)
	}
	for key, values := range c.header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	return ParseResponse(resp, out)
}

// Introspect runs the introspection query and returns the data member of the
// response.
func (c *Client) Introspect(ctx context.Context) (jsontext.Value, error) {
	var data jsontext.Value
	if err := c.Post(ctx, introspection.OperationName, introspection.Introspection, nil, &data); err != nil {
		return nil, fmt.Errorf("introspection: %w", err)
	}

	return data, nil
}

// Do executes op and decodes its result.
func Do[T any](ctx context.Context, c *Client, op selection.Operation[T]) (T, error) {
	var zero T
	if op.Kind == selection.OperationSubscription {
		return zero, ErrSubscription
	}

	query, variables := op.Document()

	var data jsontext.Value
	if err := c.Post(ctx, op.Name, query, variables, &data); err != nil {
		return zero, err
	}

	return op.Decode(data)
}
