package cmd

import (
	"fmt"

	"logistica/internal/core/container"

	"github.com/spf13/cobra"
)

func newLoginCmd(opts *rootOptions) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate and store the session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withApp(cmd, nil, func(app *container.Container) error {
				s, err := app.Login.Submit(cmd.Context(), email, password)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s - %s\n", s.Name, s.Profile)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password")

	return cmd
}

func newLogoutCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withApp(cmd, nil, func(app *container.Container) error {
				return app.Home.Logout(cmd.Context())
			})
		},
	}
}

func newWhoamiCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the stored session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withApp(cmd, nil, func(app *container.Container) error {
				header := app.Home.Header(cmd.Context())
				if header == "" {
					fmt.Fprintln(cmd.OutOrStdout(), "Not logged in")
					return nil
				}

				fmt.Fprintln(cmd.OutOrStdout(), header)
				for _, item := range app.Home.Menu() {
					fmt.Fprintf(cmd.OutOrStdout(), "  %s (%s)\n", item.Label, item.Route)
				}
				return nil
			})
		},
	}
}
