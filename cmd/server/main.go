package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ricirt/webservice/internal/api"
	"github.com/ricirt/webservice/internal/config"
	"github.com/ricirt/webservice/internal/server"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(run).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the CLI. Flag defaults come from the environment via
// config.Load; runFn receives the validated result.
func newRootCmd(runFn func(context.Context, *config.Config) error) *cobra.Command {
	cfg := config.Load()

	cmd := &cobra.Command{
		Use:          "webservice",
		Short:        "Liveness HTTP service",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runFn(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVar(&cfg.Host, "host", cfg.Host, "Address to bind")
	cmd.Flags().IntVarP(&cfg.Port, "port", "p", cfg.Port, "Default port")
	cmd.Flags().IntVarP(&cfg.Workers, "workers", "w", cfg.Workers, "Number of workers")
	cmd.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")

	return cmd
}

func run(ctx context.Context, cfg *config.Config) error {
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	router := api.NewRouter(logger)
	srv := server.New(cfg, router, logger)

	if err := srv.Run(ctx); err != nil {
		logger.Error("server error", zap.Error(err))
		return err
	}
	return nil
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = lvl
	return zcfg.Build()
}
