package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

func newDownloadCmd(opts *cliOptions) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:               "download <url>",
		Short:             "Download a result file from a URL",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: positionalAlwaysFlags,
		RunE: func(cmd *cobra.Command, args []string) error {
			downloadURL := args[0]

			apiKey, err := resolveAPIKey(opts)
			if err != nil {
				return err
			}

			cli, err := buildClient(apiKey, opts)
			if err != nil {
				return err
			}
			defer cli.Close()

			target := output
			if target == "" {
				target = defaultDownloadName(downloadURL)
			}

			if err := downloadToFile(cmd.Context(), cli, downloadURL, target); err != nil {
				if logErr := logFailure(opts.failLogPath, downloadURL, err); logErr != nil {
					return fmt.Errorf("%w; also failed to write fail log: %v", err, logErr)
				}
				return err
			}

			printOut(cmd, "Downloaded file",
				slog.String("path", target),
			)

			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Download path (defaults to the URL's file name)")

	return cmd
}
