package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

func newUserCmd(opts *cliOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:               "user",
		Short:             "Show the authenticated user profile and credits",
		ValidArgsFunction: positionalAlwaysFlags,
		RunE: func(cmd *cobra.Command, args []string) error {
			apiKey, err := resolveAPIKey(opts)
			if err != nil {
				return err
			}

			cli, err := buildClient(apiKey, opts)
			if err != nil {
				return err
			}
			defer cli.Close()

			user, err := cli.GetUser(cmd.Context())
			if err != nil {
				return err
			}

			attrs := []slog.Attr{
				slog.String("id", user.ID),
				slog.String("email", user.Email),
			}
			if user.Name != "" {
				attrs = append(attrs, slog.String("name", user.Name))
			}
			if user.Credits != nil {
				attrs = append(attrs, slog.Int("credits", *user.Credits))
			}
			if user.Team != nil {
				attrs = append(attrs, slog.String("team", user.Team.Name))
			}

			printOut(cmd, "User profile", attrs...)

			return nil
		},
	}

	return cmd
}
