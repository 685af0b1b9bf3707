package cmd

import (
	"fmt"
	"text/tabwriter"

	"logistica/internal/core/container"
	"logistica/pkg/models"

	"github.com/spf13/cobra"
)

func newUsersCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage user accounts",
	}
	cmd.AddCommand(newUsersListCmd(opts), newUsersToggleCmd(opts), newUsersRegisterCmd(opts))

	return cmd
}

func newUsersListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List user accounts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withApp(cmd, nil, func(app *container.Container) error {
				users, err := app.Users.Load(cmd.Context())
				if err != nil {
					return err
				}
				return printUsers(cmd, users)
			})
		},
	}
}

func newUsersToggleCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <id>",
		Short: "Flip the active flag of a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd, nil, func(app *container.Container) error {
				if _, err := app.Users.Load(cmd.Context()); err != nil {
					return err
				}
				if _, err := app.Users.Toggle(cmd.Context(), models.ID(args[0])); err != nil {
					return err
				}
				return printUsers(cmd, app.Users.Users())
			})
		},
	}
}

func newUsersRegisterCmd(opts *rootOptions) *cobra.Command {
	var req models.RegisterUserRequest

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a user account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withApp(cmd, nil, func(app *container.Container) error {
				return app.UserRegister.Submit(cmd.Context(), req)
			})
		},
	}
	cmd.Flags().StringVar(&req.Name, "name", "", "Full name")
	cmd.Flags().StringVar(&req.Email, "email", "", "Email")
	cmd.Flags().StringVar(&req.Password, "password", "", "Password")
	cmd.Flags().StringVar(&req.Profile, "profile", "", "Profile (admin, operador, motorista)")
	cmd.Flags().StringVar(&req.Document, "document", "", "Document number")
	cmd.Flags().StringVar(&req.FullAddress, "address", "", "Full address")

	return cmd
}

func printUsers(cmd *cobra.Command, users []models.User) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPROFILE\tACTIVE")
	for _, u := range users {
		fmt.Fprintf(w, "%s\t%s\t%s\t%t\n", u.ID, u.Name, u.Profile, u.IsActive())
	}
	return w.Flush()
}
