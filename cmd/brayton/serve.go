package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bft-labs/brayton/internal/cliconfig"
	"github.com/bft-labs/brayton/internal/server"
	logAdapter "github.com/bft-labs/brayton/pkg/log"
)

func newServeCmd(cfg *cliconfig.Config, cfgPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the solver over HTTP",
		Long: "Serve the solver as a stateless JSON API with SVG diagrams and a Swagger UI at /swagger/.\n" +
			"The --cp and --cv flags set the default gas for requests that do not override it.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resolved, err := newLoader(*cfg, *cfgPath, changedFlags(cmd)).load()
			if err != nil {
				return err
			}
			gas, err := resolved.Gas()
			if err != nil {
				return err
			}

			log := cliconfig.Logger(resolved.LogLevel)
			srv := server.New(
				server.WithGas(gas),
				server.WithLogger(logAdapter.NewZerologAdapterWithLogger(log)),
			)

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return srv.ListenAndServe(ctx, resolved.ListenAddr, resolved.ShutdownTimeout)
		},
	}

	cmd.Flags().StringVar(&cfg.ListenAddr, "listen", cfg.ListenAddr, "address to listen on")
	cmd.Flags().DurationVar(&cfg.ShutdownTimeout, "shutdown-timeout", cfg.ShutdownTimeout, "graceful shutdown timeout")
	return cmd
}
