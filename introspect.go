package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"github.com/spf13/cobra"
)

func newIntrospectCmd(configFile *string) *cobra.Command {
	var outputSchema string

	cmd := &cobra.Command{
		Use:   "introspect",
		Short: "Print the introspection result of the configured schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return introspect(cmd.Context(), *configFile, outputSchema, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&outputSchema, "output", "o", "", "save introspection result to file")

	return cmd
}

func introspect(ctx context.Context, configFile, output string, stdout io.Writer) error {
	cfg, err := loadConfig(configFile)
	if err != nil {
		return err
	}

	payload, err := cfg.LoadPayload(ctx)
	if err != nil {
		return fmt.Errorf("failed to load schema: %w", err)
	}

	jsonData, err := json.Marshal(payload, jsontext.WithIndent("  "))
	if err != nil {
		return fmt.Errorf("marshal introspection json: %w", err)
	}
	jsonData = append(jsonData, '\n')

	if output != "" {
		return os.WriteFile(output, jsonData, 0o644)
	}
	_, err = stdout.Write(jsonData)

	return err
}
