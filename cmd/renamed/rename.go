package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	renamed "github.com/renamed-to/renamed-sdk"
)

func newRenameCmd(opts *cliOptions) *cobra.Command {
	ro := &renameOptions{
		opts: opts,
	}

	cmd := &cobra.Command{
		Use:   "rename",
		Short: "Suggest AI-generated filenames (single file or directory)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ro.Complete(); err != nil {
				target := ro.inputPath
				if target == "" {
					target = ro.filePath
				}
				if logErr := logFailure(ro.opts.failLogPath, target, err); logErr != nil {
					return fmt.Errorf("%w; also failed to write fail log: %v", err, logErr)
				}
				return err
			}

			if err := ro.Validate(); err != nil {
				return err
			}

			return ro.Run(cmd)
		},
	}

	ro.addFlags(cmd)

	return cmd
}

type renameOptions struct {
	filePath    string
	inputPath   string
	template    string
	apply       bool
	output      string
	concurrency int
	opts        *cliOptions
	files       []string
	apiKey      string
}

type renameJobConfig struct {
	template string
	apply    bool
	output   string
	failLog  string
}

func (o *renameOptions) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.filePath, "file", "f", "", "Document to rename")
	cmd.Flags().StringVarP(&o.inputPath, "path", "p", "", "Path to a document or a directory of documents")
	cmd.Flags().StringVar(&o.template, "template", "", "Custom template for filename generation")
	cmd.Flags().BoolVar(&o.apply, "apply", false, "Rename the file on disk to the suggestion")
	cmd.Flags().StringVarP(&o.output, "output", "o", "", "Optional path to save the rename result JSON (single file only)")
	cmd.Flags().IntVar(&o.concurrency, "concurrency", 3, "Number of concurrent uploads when using --path")
}

func (o *renameOptions) Complete() error {
	if o.filePath == "" && o.inputPath == "" {
		return errors.New("flag --file or --path is required")
	}

	if o.concurrency <= 0 {
		o.concurrency = 3
	}

	targetPath := o.filePath
	if targetPath == "" {
		targetPath = o.inputPath
	}

	files, err := collectInputFiles(targetPath)
	if err != nil {
		return err
	}
	o.files = files

	return nil
}

func (o *renameOptions) Validate() error {
	if len(o.files) == 0 {
		return fmt.Errorf("no supported documents found in %s", o.inputPath)
	}
	return nil
}

func (o *renameOptions) Run(cmd *cobra.Command) error {
	apiKey, err := resolveAPIKey(o.opts)
	if err != nil {
		if logErr := logFailure(o.opts.failLogPath, "", err); logErr != nil {
			return fmt.Errorf("%w; also failed to write fail log: %v", err, logErr)
		}
		return err
	}
	o.apiKey = apiKey

	cli, err := buildClient(o.apiKey, o.opts)
	if err != nil {
		return err
	}
	defer cli.Close()

	ctx := cmd.Context()

	jobCfg := renameJobConfig{
		template: o.template,
		apply:    o.apply,
		output:   o.output,
		failLog:  o.opts.failLogPath,
	}

	if len(o.files) == 1 {
		return handleRenameFile(ctx, cmd, cli, o.files[0], jobCfg)
	}

	jobCfg.output = ""
	return runRenameBatch(ctx, cmd, cli, o.files, o.concurrency, jobCfg)
}

func handleRenameFile(ctx context.Context, cmd *cobra.Command, cli renamed.Client, doc string, job renameJobConfig) error {
	fileLabel := filepath.Base(doc)

	var opts *renamed.RenameOptions
	if job.template != "" {
		opts = &renamed.RenameOptions{Template: job.template}
	}

	result, err := cli.Rename(ctx, renamed.FileFromPath(doc), opts)
	if err != nil {
		if logErr := logFailure(job.failLog, doc, err); logErr != nil {
			return fmt.Errorf("%w; also failed to write fail log: %v", err, logErr)
		}
		return fmt.Errorf("rename failed for %s: %w", fileLabel, err)
	}

	printOut(cmd, "Rename suggestion",
		slog.String("file", fileLabel),
		slog.String("suggested", result.SuggestedFilename),
		slog.String("folder", result.FolderPath),
		slog.Float64("confidence", result.Confidence),
	)

	if job.output != "" {
		if err := writeJSON(job.output, result); err != nil {
			if logErr := logFailure(job.failLog, doc, err); logErr != nil {
				return fmt.Errorf("%w; also failed to write fail log: %v", err, logErr)
			}
			return err
		}
	}

	if job.apply {
		newPath := filepath.Join(filepath.Dir(doc), result.SuggestedFilename)
		if err := os.Rename(doc, newPath); err != nil {
			if logErr := logFailure(job.failLog, doc, err); logErr != nil {
				return fmt.Errorf("%w; also failed to write fail log: %v", err, logErr)
			}
			return fmt.Errorf("apply rename: %w", err)
		}
		printOut(cmd, "Renamed on disk",
			slog.String("from", fileLabel),
			slog.String("to", result.SuggestedFilename),
		)
	}

	return nil
}

func runRenameBatch(ctx context.Context, cmd *cobra.Command, cli renamed.Client, files []string, concurrency int, job renameJobConfig) error {
	eg, ctx := errgroup.WithContext(ctx)
	if concurrency > 0 {
		eg.SetLimit(concurrency)
	}

	var (
		errs []error
		mu   sync.Mutex
	)

	for _, doc := range files {
		doc := doc
		eg.Go(func() error {
			if err := handleRenameFile(ctx, cmd, cli, doc, job); err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	if len(errs) > 0 {
		return fmt.Errorf("batch completed with %d errors, first: %w", len(errs), errs[0])
	}

	return nil
}
