package config

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Yamashou/gqlbuilder/client"
	"github.com/Yamashou/gqlbuilder/introspection"
)

func introspectEndpoint(ctx context.Context, endpoint *EndPointConfig) (*introspection.Query, error) {
	httpClient := endpoint.Client
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	header := make(http.Header, len(endpoint.Headers))
	for key, value := range endpoint.Headers {
		header.Set(key, value)
	}

	gqlClient := client.NewClient(endpoint.URL, client.WithHTTPClient(httpClient), client.WithHTTPHeader(header))

	data, err := gqlClient.Introspect(ctx)
	if err != nil {
		return nil, fmt.Errorf("introspection query failed: %w", err)
	}

	q, err := introspection.Decode(data)
	if err != nil {
		return nil, err
	}

	return q, nil
}
