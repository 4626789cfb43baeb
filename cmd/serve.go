package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"scanguard/internal/api"
	"scanguard/internal/api/handler/v1handler"
	"scanguard/internal/config"
	"scanguard/internal/halt"
	"scanguard/internal/lifecycle"
	"scanguard/internal/worker"
	"scanguard/pkg/bus"
	"scanguard/pkg/logger"
	"scanguard/pkg/metrics"
	"syscall"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

// setupNotifier decides how committed halts reach running executors. Without
// NATS only the executors of this process are told; with NATS every process
// subscribed to the halt subject is, this one included.
func setupNotifier(ctx context.Context, cfg *config.Config, cancels *worker.Canceller) (halt.Notifier, func()) {
	if cfg.NATS.URL == "" {
		logger.Info(ctx, "nats is not configured, halt events stay in process")

		return cancels, func() {}
	}

	b, err := bus.New(cfg.NATS.URL, nats.Name("scanguard"), nats.MaxReconnects(-1))
	if err != nil {
		logger.Fatal(ctx, "could not connect to nats", zap.Error(err))
	}

	sub, err := b.Subscribe(ctx, cfg.NATS.Subject, cancels.HandleHaltedMessage)
	if err != nil {
		logger.Fatal(ctx, "could not subscribe to halt events", zap.Error(err))
	}

	return halt.NewBusNotifier(b, cfg.NATS.Subject), func() {
		logger.Info(ctx, "closing nats connection...")
		if err := sub.Close(); err != nil {
			logger.Warn(ctx, "could not close halt subscription", zap.Error(err))
		}
		b.Close()
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and the run executor",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			dryRunDelay, _ := cmd.Flags().GetDuration("dry-run-delay")

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			mp, err := metrics.NewMeterProvider(prometheus.DefaultRegisterer)
			if err != nil {
				logger.Fatal(ctx, "could not create meter provider", zap.Error(err))
			}

			cancels := worker.NewCanceller()
			notifier, closeBus := setupNotifier(ctx, cfg, cancels)
			defer closeBus()

			coordinator, err := halt.New(strg, notifier, halt.NewOptions(cfg, mp))
			if err != nil {
				logger.Fatal(ctx, "could not create halt coordinator", zap.Error(err))
			}
			runs := lifecycle.New(strg, lifecycle.NewOptions(cfg))

			executor, err := worker.NewRunExecutorWorker(runs,
				worker.DryRunner{Delay: dryRunDelay},
				cancels,
				worker.NewOptions(cfg, mp))
			if err != nil {
				logger.Fatal(ctx, "could not create run executor", zap.Error(err))
			}
			// river stops through Stop below so in-flight tasks get the shutdown timeout
			riverClient, err := worker.Start(context.WithoutCancel(ctx), strg.Pool, executor)
			if err != nil {
				logger.Fatal(ctx, "could not start run executor", zap.Error(err))
			}

			stopWebserver := setupServer(ctx, cfg, api.Deps{
				Deps: v1handler.Deps{
					Halt:      coordinator,
					Lifecycle: runs,
				},
				MeterProvider: mp,
			})

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)

			logger.Info(shutdownCtx, "stopping run executor...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(shutdownCtx, "could not stop run executor", zap.Error(err))
			}
			if err := mp.Shutdown(shutdownCtx); err != nil {
				logger.Warn(shutdownCtx, "could not shut down meter provider", zap.Error(err))
			}
		},
	}

	cmd.Flags().Duration("dry-run-delay", 2*time.Second, "How long the dry-run executor spends on each task")

	return cmd
}
