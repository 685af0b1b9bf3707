package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"logistica/internal/alert"
	"logistica/internal/config"
	"logistica/internal/core/container"
	"logistica/internal/core/logger"
	"logistica/internal/screens"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type rootOptions struct {
	verbose bool
	apiURL  string
	timeout time.Duration
}

func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "logistica",
		Short:         "Logistics client: products, users and inter-branch movements",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&opts.apiURL, "api-url", "", "Backend base URL (overrides LOGISTICA_API_URL)")
	rootCmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 0, "Request timeout (overrides LOGISTICA_TIMEOUT)")

	rootCmd.AddCommand(
		newLoginCmd(opts),
		newLogoutCmd(opts),
		newWhoamiCmd(opts),
		newProductsCmd(opts),
		newBranchesCmd(opts),
		newUsersCmd(opts),
		newMovementsCmd(opts),
		newServeCmd(opts),
	)

	return rootCmd
}

func Execute(ctx context.Context) {
	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (o *rootOptions) config() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}

	if o.apiURL != "" {
		cfg.APIURL = o.apiURL
	}
	if o.timeout != 0 {
		cfg.Timeout = o.timeout
	}
	return cfg, cfg.Validate()
}

// withApp builds the container for one command run. Alerts are printed on
// the command output.
func (o *rootOptions) withApp(cmd *cobra.Command, images screens.ImageSource, fn func(*container.Container) error) error {
	cfg, err := o.config()
	if err != nil {
		return err
	}

	log := logger.NewLogger(o.verbose)
	defer func() { _ = log.Sync() }()

	app, err := container.NewAppContainer(cfg, log, alert.NewWriterNotifier(cmd.OutOrStdout()), images)
	if err != nil {
		return err
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Warn("Unable to close container", zap.Error(err))
		}
	}()

	return fn(app)
}
