package config

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/Yamashou/gqlbuilder/codegen"
	"github.com/Yamashou/gqlbuilder/introspection"
	"github.com/Yamashou/gqlbuilder/scalar"
)

// DefaultConfigFilenames are searched by FindConfigFile, in order.
var DefaultConfigFilenames = []string{".gqlbuilder.yml", "gqlbuilder.yml", ".gqlbuilder.yaml", "gqlbuilder.yaml"}

var (
	errSchemaAndEndpoint = errors.New("'schema' and 'endpoint' both specified. Use schema to load from a local file, use endpoint to load from a remote server (using introspection)")
	errNoSource          = errors.New("neither 'schema' nor 'endpoint' specified. Use schema to load from a local file, use endpoint to load from a remote server (using introspection)")
)

// Config represents the config file.
type Config struct {
	SchemaFilename string            `yaml:"schema,omitempty"`
	Endpoint       *EndPointConfig   `yaml:"endpoint,omitempty"`
	Output         OutputConfig      `yaml:"output"`
	Runtime        string            `yaml:"runtime,omitempty"`
	Scalars        map[string]string `yaml:"scalars,omitempty"`
	Concurrency    int               `yaml:"concurrency,omitempty"`
}

// EndPointConfig are the allowed options for the 'endpoint' config.
type EndPointConfig struct {
	URL     string            `yaml:"url"`
	Headers map[string]string `yaml:"headers,omitempty"`
	Client  *http.Client      `yaml:"-"`
}

type OutputConfig struct {
	Dir     string `yaml:"dir,omitempty"`
	Package string `yaml:"package"`
}

// LoadConfig loads and parses the config file. Environment variables in the
// file are expanded before parsing.
func LoadConfig(configFilename string) (*Config, error) {
	configContent, err := os.ReadFile(configFilename)
	if err != nil {
		return nil, fmt.Errorf("unable to read config: %w", err)
	}

	var c Config

	yamlDecoder := yaml.NewDecoder(bytes.NewReader([]byte(os.ExpandEnv(string(configContent)))), yaml.DisallowUnknownField())
	if err := yamlDecoder.Decode(&c); err != nil {
		return nil, fmt.Errorf("unable to parse config: %w", err)
	}

	if err := c.check(); err != nil {
		return nil, err
	}

	if c.Output.Dir == "" {
		c.Output.Dir = "."
	}
	if c.Runtime == "" {
		c.Runtime = scalar.DefaultRuntimeImport
	}

	return &c, nil
}

func (c *Config) check() error {
	// validation
	if c.SchemaFilename != "" && c.Endpoint != nil {
		return errSchemaAndEndpoint
	}

	if c.SchemaFilename == "" && c.Endpoint == nil {
		return errNoSource
	}

	if c.Endpoint != nil && c.Endpoint.URL == "" {
		return errors.New("endpoint: 'url' must be set")
	}

	if c.Output.Package == "" {
		return errors.New("output: 'package' must be set")
	}

	if c.Concurrency < 0 {
		return fmt.Errorf("concurrency: must not be negative, got %d", c.Concurrency)
	}

	for name, goType := range c.Scalars {
		if _, err := scalar.ParseGoType(goType); err != nil {
			return fmt.Errorf("scalars: %s: %w", name, err)
		}
	}

	return nil
}

// CodegenConfig returns the generator configuration the file describes.
func (c *Config) CodegenConfig() codegen.Config {
	return codegen.Config{
		Scalars:       scalar.NewWithRuntime(c.Runtime, c.Scalars),
		RuntimeImport: c.Runtime,
		Concurrency:   c.Concurrency,
	}
}

// LoadPayload returns the introspection result of the configured schema,
// read from the schema file or fetched from the endpoint.
func (c *Config) LoadPayload(ctx context.Context) (*introspection.Query, error) {
	switch {
	case c.SchemaFilename != "":
		q, err := loadSchemaFile(c.SchemaFilename)
		if err != nil {
			return nil, fmt.Errorf("load local schema failed: %w", err)
		}
		return q, nil
	case c.Endpoint != nil:
		q, err := introspectEndpoint(ctx, c.Endpoint)
		if err != nil {
			return nil, fmt.Errorf("introspect schema failed: %w", err)
		}
		return q, nil
	}

	return nil, errNoSource
}

// loadSchemaFile reads an introspection result, or schema definition
// language when the file has a .graphql or .graphqls extension.
func loadSchemaFile(filename string) (*introspection.Query, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("unable to open schema: %w", err)
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".graphql", ".graphqls", ".gql":
		return introspection.FromSDL(&ast.Source{Name: filename, Input: string(content)})
	}

	return introspection.Decode(content)
}

// FindConfigFile searches dir and then each of its parents for a file called
// one of names, DefaultConfigFilenames when names is empty.
func FindConfigFile(dir string, names []string) (string, error) {
	if len(names) == 0 {
		names = DefaultConfigFilenames
	}

	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("unable to get directory: %w", err)
	}

	for {
		for _, name := range names {
			path := filepath.Join(dir, name)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find config file (%s)", strings.Join(names, ", "))
		}
		dir = parent
	}
}
