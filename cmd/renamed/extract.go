package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	renamed "github.com/renamed-to/renamed-sdk"
)

func newExtractCmd(opts *cliOptions) *cobra.Command {
	eo := &extractOptions{
		opts: opts,
	}

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract structured data from a document",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := eo.complete(); err != nil {
				return err
			}
			return eo.run(cmd)
		},
	}

	eo.addFlags(cmd)

	return cmd
}

type extractOptions struct {
	filePath   string
	prompt     string
	schemaPath string
	output     string
	opts       *cliOptions
	schema     map[string]any
	apiKey     string
}

func (o *extractOptions) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.filePath, "file", "f", "", "Document to extract data from")
	cmd.Flags().StringVar(&o.prompt, "prompt", "", "Natural language description of what to extract")
	cmd.Flags().StringVar(&o.schemaPath, "schema", "", "Path to a JSON schema describing the expected structure")
	cmd.Flags().StringVarP(&o.output, "output", "o", "", "Optional path to save the extracted JSON")
}

func (o *extractOptions) complete() error {
	if o.filePath == "" {
		return fmt.Errorf("flag --file is required")
	}

	if o.schemaPath != "" {
		content, err := os.ReadFile(o.schemaPath)
		if err != nil {
			return fmt.Errorf("read schema: %w", err)
		}
		if err := json.Unmarshal(content, &o.schema); err != nil {
			return fmt.Errorf("parse schema %s: %w", o.schemaPath, err)
		}
	}

	apiKey, err := resolveAPIKey(o.opts)
	if err != nil {
		return err
	}
	o.apiKey = apiKey

	return nil
}

func (o *extractOptions) run(cmd *cobra.Command) error {
	cli, err := buildClient(o.apiKey, o.opts)
	if err != nil {
		return err
	}
	defer cli.Close()

	ctx := cmd.Context()
	fileLabel := filepath.Base(o.filePath)

	var opts *renamed.ExtractOptions
	if o.prompt != "" || o.schema != nil {
		opts = &renamed.ExtractOptions{Prompt: o.prompt, Schema: o.schema}
	}

	result, err := cli.Extract(ctx, renamed.FileFromPath(o.filePath), opts)
	if err != nil {
		if logErr := logFailure(o.opts.failLogPath, o.filePath, err); logErr != nil {
			return fmt.Errorf("%w; also failed to write fail log: %v", err, logErr)
		}
		return fmt.Errorf("extract failed for %s: %w", fileLabel, err)
	}

	if o.output != "" {
		return writeJSON(o.output, result)
	}

	content, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(content))

	return nil
}
