package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"logistica/internal/core/container"
	"logistica/internal/movements"
	"logistica/internal/screens"
	"logistica/pkg/metadata"
	"logistica/pkg/models"

	"github.com/spf13/cobra"
)

func newMovementsCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "movements",
		Aliases: []string{"mov"},
		Short:   "Create and track inter-branch movements",
	}
	cmd.AddCommand(
		newMovementsListCmd(opts),
		newMovementsCreateCmd(opts),
		newMovementsTransitionCmd(opts, metadata.TransitionStart, "Start a created movement"),
		newMovementsTransitionCmd(opts, metadata.TransitionEnd, "Confirm the delivery of a movement"),
		newMovementsMapCmd(opts),
	)

	return cmd
}

func newMovementsListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List movements with their available actions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withApp(cmd, nil, func(app *container.Container) error {
				if err := app.MovementList.Mount(cmd.Context()); err != nil {
					return err
				}
				return printRows(cmd, app.MovementList.Rows())
			})
		},
	}
}

func newMovementsCreateCmd(opts *rootOptions) *cobra.Command {
	var (
		form      movements.Form
		imagePath string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Register a movement, starting it when an image is given",
		RunE: func(cmd *cobra.Command, _ []string) error {
			image, err := loadImage(imagePath)
			if err != nil {
				return err
			}

			return opts.withApp(cmd, nil, func(app *container.Container) error {
				app.MovementRegister.SetForm(form)
				app.MovementRegister.SetImage(image)

				result, err := app.MovementRegister.Submit(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Movement %s created (started: %t)\n", result.ID, result.Started)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&form.OriginBranchID, "origin", "", "Origin branch id")
	cmd.Flags().StringVar(&form.DestinationBranchID, "destination", "", "Destination branch id")
	cmd.Flags().StringVar(&form.ProductID, "product", "", "Product id")
	cmd.Flags().StringVar(&form.Quantity, "quantity", "", "Quantity")
	cmd.Flags().StringVar(&form.Motorista, "driver", "", "Driver name")
	cmd.Flags().StringVar(&imagePath, "image", "", "Start evidence photo (JPEG)")

	return cmd
}

func newMovementsTransitionCmd(opts *rootOptions, t metadata.Transition, short string) *cobra.Command {
	images := &fileImageSource{}

	cmd := &cobra.Command{
		Use:   string(t) + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd, images, func(app *container.Container) error {
				if err := app.MovementList.Mount(cmd.Context()); err != nil {
					return err
				}
				return app.MovementList.Perform(cmd.Context(), models.ID(args[0]), t)
			})
		},
	}
	cmd.Flags().StringVar(&images.path, "image", "", "Evidence photo (JPEG)")

	return cmd
}

func newMovementsMapCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "map <id>",
		Short: "Show the route of a movement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd, nil, func(app *container.Container) error {
				if err := app.MovementList.Mount(cmd.Context()); err != nil {
					return err
				}
				if err := app.MovementList.OpenMap(models.ID(args[0])); err != nil {
					return err
				}

				visit, _ := app.Navigator.Current()
				params, ok := visit.Params.(screens.MapParams)
				if !ok {
					return fmt.Errorf("no route to show")
				}

				view := app.Map.View(params)
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Region: %.4f, %.4f (±%.2f°)\n", view.Region.Latitude, view.Region.Longitude, view.Region.LatitudeDelta)
				for _, m := range view.Markers {
					fmt.Fprintf(out, "  %s: %.4f, %.4f\n", m.Title, m.Latitude, m.Longitude)
				}
				fmt.Fprintf(out, "Distance: %.1f km\n", view.DistanceKm)
				return nil
			})
		},
	}
}

func printRows(cmd *cobra.Command, rows []screens.MovementRow) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPRODUCT\tQTY\tFROM\tTO\tSTATUS\tDRIVER\tACTIONS")
	for _, r := range rows {
		m := r.Movement

		actions := make([]string, 0, len(r.Actions)+1)
		for _, a := range r.Actions {
			actions = append(actions, string(a))
		}
		if r.ShowMap {
			actions = append(actions, "map")
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			m.ID, m.Produto.Nome, m.Quantity, m.Origem.Nome, m.Destino.Nome, m.Status, m.Motorista, strings.Join(actions, ","))
	}
	return w.Flush()
}
