package main

import (
	"time"

	"github.com/spf13/cobra"

	renamed "github.com/renamed-to/renamed-sdk"
)

type cliOptions struct {
	apiKey      string
	baseURL     string
	timeout     time.Duration
	debug       bool
	failLogPath string
}

func newRootCmd() *cobra.Command {
	opts := &cliOptions{}

	cmd := &cobra.Command{
		Use:           "renamed",
		Short:         "renamed.to API CLI helper",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.apiKey, "api-key", "", "renamed.to API key (or set RENAMED_API_KEY)")
	cmd.PersistentFlags().StringVar(&opts.baseURL, "base-url", renamed.DefaultBaseURL, "Base URL for the renamed.to API")
	cmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", renamed.DefaultTimeout, "HTTP timeout for API requests")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Log SDK request diagnostics to stderr")
	cmd.PersistentFlags().StringVar(&opts.failLogPath, "fail-log", "fail.log", "Path to write failed task logs")

	cmd.AddCommand(newRenameCmd(opts))
	cmd.AddCommand(newSplitCmd(opts))
	cmd.AddCommand(newExtractCmd(opts))
	cmd.AddCommand(newUserCmd(opts))
	cmd.AddCommand(newDownloadCmd(opts))
	cmd.AddCommand(newCompletionCmd())

	return cmd
}
