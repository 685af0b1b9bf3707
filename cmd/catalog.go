package cmd

import (
	"fmt"
	"text/tabwriter"

	"logistica/internal/core/container"

	"github.com/spf13/cobra"
)

func newProductsCmd(opts *rootOptions) *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "products",
		Short: "List products, optionally filtered by name or branch",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withApp(cmd, nil, func(app *container.Container) error {
				if _, err := app.Products.Load(cmd.Context()); err != nil {
					return err
				}

				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "ID\tNAME\tPRODUCT\tBRANCH\tQUANTITY")
				for _, p := range app.Products.Search(search) {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n", p.ID, p.Name, p.ProductName, p.Branch, p.Quantity)
				}
				return w.Flush()
			})
		},
	}
	cmd.Flags().StringVarP(&search, "search", "s", "", "Case-insensitive filter")

	return cmd
}

func newBranchesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "branches",
		Short: "List branch options",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withApp(cmd, nil, func(app *container.Container) error {
				branches, err := app.MovementRegister.Mount(cmd.Context())
				if err != nil {
					return err
				}

				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "ID\tNAME")
				for _, b := range branches {
					fmt.Fprintf(w, "%s\t%s\n", b.ID, b.Name)
				}
				return w.Flush()
			})
		},
	}
}
