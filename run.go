package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Yamashou/gqlbuilder/assembler"
	"github.com/Yamashou/gqlbuilder/codegen"
	"github.com/Yamashou/gqlbuilder/config"
	"github.com/Yamashou/gqlbuilder/schema"
	"github.com/Yamashou/gqlbuilder/writer"
)

func loadConfig(configFile string) (*config.Config, error) {
	if configFile == "" {
		var err error
		configFile, err = config.FindConfigFile(".", nil)
		if err != nil {
			return nil, fmt.Errorf("failed to find config file: %w", err)
		}
	}

	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}
	slog.Debug("loaded config", "path", configFile)

	return cfg, nil
}

func run(ctx context.Context, configFile string) error {
	cfg, err := loadConfig(configFile)
	if err != nil {
		return err
	}

	payload, err := cfg.LoadPayload(ctx)
	if err != nil {
		return fmt.Errorf("failed to load schema: %w", err)
	}

	s, err := schema.Build(payload)
	if err != nil {
		return fmt.Errorf("failed to build schema: %w", err)
	}
	slog.InfoContext(ctx, "loaded schema", "types", len(s.Types), "operations", len(s.Operations))

	decls, err := codegen.Generate(s, cfg.CodegenConfig())
	if err != nil {
		return fmt.Errorf("failed to generate code: %w", err)
	}

	units := assembler.Assemble(decls, assembler.Options{
		Package:       cfg.Output.Package,
		RuntimeImport: cfg.Runtime,
	})

	if err := writer.Write(ctx, units, cfg.Output.Dir); err != nil {
		return fmt.Errorf("failed to write code: %w", err)
	}

	return nil
}
