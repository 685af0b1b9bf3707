package cmd

import (
	"logistica/internal/core/logger"
	"logistica/internal/devserver"

	"github.com/spf13/cobra"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the in-memory development backend",
		Long:  `Serves every endpoint the client uses, seeded with demo data. Development only.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.config()
			if err != nil {
				return err
			}
			if addr == "" {
				addr = cfg.ServeAddr
			}

			log := logger.NewLogger(true)
			defer func() { _ = log.Sync() }()

			srv, err := devserver.New(devserver.Options{JWTSecret: cfg.JWTSecret, TrustedProxies: cfg.TrustedProxies, Seed: true}, log)
			if err != nil {
				return err
			}
			return srv.Run(cmd.Context(), addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides LOGISTICA_SERVE_ADDR)")

	return cmd
}
