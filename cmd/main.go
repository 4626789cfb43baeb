// Package main provides the CLI entrypoint for the scanguard service.
// It wires subcommands (serve, migrate, jwt, project), loads configuration, and initializes logging.
package main

import (
	"context"
	"fmt"
	"os"
	"scanguard/internal/config"
	"scanguard/pkg/logger"
	"scanguard/pkg/storage/postgres"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// getPostgres creates a PostgreSQL client using configuration values and returns it
// along with a cleanup function to close the connection pool.
func getPostgres(ctx context.Context, cfg *config.Config) (*postgres.PgSQL, func()) {
	pgsql, err := postgres.New(ctx, postgres.Options{
		Username:           cfg.Database.Username,
		Password:           cfg.Database.Password,
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		Database:           cfg.Database.DatabaseName,
		ConnMaxLifetime:    cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime:    cfg.Database.ConnMaxIdleTime,
		MaxOpenConnections: cfg.Database.MaxOpenConnections,
		MaxIdleConnections: cfg.Database.MaxIdleConnections,
		SslMode:            cfg.Database.SslMode,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create postgres storage", zap.Error(err))
	}

	return pgsql, func() {
		logger.Info(ctx, "closing postgres client...")
		if err = pgsql.Close(); err != nil {
			logger.Warn(ctx, "could not close postgres connection", zap.Error(err))
		}
	}
}

// main sets up the root Cobra command and registers subcommands before
// executing the CLI. Subcommands receive the config pointer at construction;
// it is filled from the --config file before any of them runs.
func main() {
	cfg := &config.Config{}
	var configPath string

	rootCmd := &cobra.Command{
		Use:          "scanguard",
		Short:        "Scan-run lifecycle and safety-halt service",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("could not load config file %s: %w", configPath, err)
			}
			*cfg = *loaded

			logger.Setup(cfg.Environment)
			logger.Debug(cmd.Context(), "config loaded",
				zap.String("path", configPath), zap.String("environment", cfg.Environment))

			return nil
		},
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yml", "Config File Path")

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			_ = logger.Get(ctx).Sync()

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		migrateCommand(cfg),
		serveCommand(cfg),
		JWTCommand(cfg),
		projectCommand(cfg),
	)

	err := rootCmd.ExecuteContext(ctx)
	_ = logger.Get(ctx).Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}
