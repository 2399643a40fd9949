package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"amphi/internal/logging"
	"amphi/internal/search"
	"amphi/internal/web"
)

func newServeCommand(opts *options) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the landing page and search API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Server.Addr = addr
			}

			logger, err := logging.NewConsole(cfg.Log.Level)
			if err != nil {
				return fmt.Errorf("set up logging: %w", err)
			}
			defer func() { _ = logger.Sync() }()

			// The server always answers from the local corpus; pointing it at
			// a remote backend would only proxy to itself
			backend := search.NewStaticBackend(cfg.Search.Latency.Duration)
			srv := web.New(cfg, backend, logger)

			fmt.Fprintf(cmd.OutOrStdout(), "Serving amphi on http://localhost%s\n", cfg.Server.Addr)
			if err := srv.ListenAndServe(cmd.Context(), cfg.Server.Addr); err != nil {
				logger.Error("server stopped", zap.Error(err))
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default :4002)")
	return cmd
}
