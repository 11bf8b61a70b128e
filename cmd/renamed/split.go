package main

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	renamed "github.com/renamed-to/renamed-sdk"
)

func newSplitCmd(opts *cliOptions) *cobra.Command {
	so := &splitOptions{
		opts: opts,
	}

	cmd := &cobra.Command{
		Use:   "split",
		Short: "Split a PDF into separate documents",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := so.complete(); err != nil {
				return err
			}
			return so.run(cmd)
		},
	}

	so.addFlags(cmd)

	return cmd
}

type splitOptions struct {
	filePath      string
	mode          string
	pagesPerSplit int
	wait          bool
	interval      time.Duration
	maxAttempts   int
	download      bool
	outputDir     string
	opts          *cliOptions
	splitMode     renamed.SplitMode
	apiKey        string
}

func (o *splitOptions) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.filePath, "file", "f", "", "PDF file to split")
	cmd.Flags().StringVar(&o.mode, "mode", string(renamed.SplitModeAuto), "Split mode: auto|pages|blank")
	cmd.Flags().IntVar(&o.pagesPerSplit, "pages-per-split", 0, "Pages per document (pages mode)")
	cmd.Flags().BoolVar(&o.wait, "wait", true, "Wait for the split job to finish")
	cmd.Flags().DurationVar(&o.interval, "interval", renamed.DefaultPollInterval, "Polling interval for job status")
	cmd.Flags().IntVar(&o.maxAttempts, "max-attempts", renamed.DefaultMaxPollAttempts, "Maximum status polls before giving up")
	cmd.Flags().BoolVar(&o.download, "download", false, "Download the split documents when ready")
	cmd.Flags().StringVar(&o.outputDir, "output-dir", ".", "Directory to store downloaded documents")
}

func (o *splitOptions) complete() error {
	if o.filePath == "" {
		return fmt.Errorf("flag --file is required")
	}

	mode, err := parseSplitMode(o.mode)
	if err != nil {
		return err
	}
	o.splitMode = mode

	apiKey, err := resolveAPIKey(o.opts)
	if err != nil {
		return err
	}
	o.apiKey = apiKey

	return nil
}

func (o *splitOptions) run(cmd *cobra.Command) error {
	cli, err := buildClient(o.apiKey, o.opts)
	if err != nil {
		return err
	}
	defer cli.Close()

	ctx := cmd.Context()
	fileLabel := filepath.Base(o.filePath)

	job, err := cli.PDFSplit(ctx, renamed.FileFromPath(o.filePath),
		&renamed.PDFSplitOptions{Mode: o.splitMode, PagesPerSplit: o.pagesPerSplit},
		renamed.WithJobPollInterval(o.interval),
		renamed.WithJobMaxAttempts(o.maxAttempts),
	)
	if err != nil {
		if logErr := logFailure(o.opts.failLogPath, o.filePath, err); logErr != nil {
			return fmt.Errorf("%w; also failed to write fail log: %v", err, logErr)
		}
		return fmt.Errorf("split failed for %s: %w", fileLabel, err)
	}

	printOut(cmd, "Split job started",
		slog.String("file", fileLabel),
		slog.String("job", job.ID()),
	)

	if !o.wait {
		printOut(cmd, "Poll for completion",
			slog.String("status_url", job.StatusURL()),
		)
		return nil
	}

	result, err := job.Wait(ctx, func(status *renamed.JobStatusResponse) {
		if status.Progress != nil {
			printOut(cmd, "Split progress",
				slog.String("status", string(status.Status)),
				slog.Int("progress", *status.Progress),
			)
		}
	})
	if err != nil {
		if logErr := logFailure(o.opts.failLogPath, o.filePath, err); logErr != nil {
			return fmt.Errorf("%w; also failed to write fail log: %v", err, logErr)
		}
		return err
	}

	printOut(cmd, "Split finished",
		slog.String("file", fileLabel),
		slog.Int("documents", len(result.Documents)),
		slog.Int("total_pages", result.TotalPages),
	)

	for _, doc := range result.Documents {
		printOut(cmd, "Document",
			slog.Int("index", doc.Index),
			slog.String("filename", doc.Filename),
			slog.String("pages", doc.Pages),
			slog.Int64("size", doc.Size),
		)
	}

	if !o.download {
		return nil
	}

	for _, doc := range result.Documents {
		target := filepath.Join(o.outputDir, doc.Filename)
		if err := downloadToFile(ctx, cli, doc.DownloadURL, target); err != nil {
			if logErr := logFailure(o.opts.failLogPath, doc.Filename, err); logErr != nil {
				return fmt.Errorf("%w; also failed to write fail log: %v", err, logErr)
			}
			return fmt.Errorf("download %s: %w", doc.Filename, err)
		}
		printOut(cmd, "Downloaded document",
			slog.String("path", target),
		)
	}

	return nil
}
