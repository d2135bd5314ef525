package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	httpadapter "affiliate-escrow/internal/adapter/http"
	"affiliate-escrow/internal/adapter/usecase"
	"affiliate-escrow/internal/db"
	"affiliate-escrow/internal/metrics"
)

// signalError records the signal that stopped the server so main can exit
// with the conventional 128+signal code.
type signalError struct {
	sig syscall.Signal
}

func (e signalError) Error() string {
	return fmt.Sprintf("stopped by %v", e.sig)
}

func exitCode(err error) int {
	var sigErr signalError
	if errors.As(err, &sigErr) {
		return 128 + int(sigErr.sig)
	}
	return 1
}

func serveCommand() *cobra.Command {
	var seed bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the escrow HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(quit)

			ctx := cmd.Context()

			ledger, closeLedger, err := db.OpenLedger(ctx, cfg, logger)
			if err != nil {
				return err
			}
			defer closeLedger()

			if seed {
				if err = db.Seed(ctx, ledger, db.DefaultSeed()); err != nil {
					return fmt.Errorf("seed: %w", err)
				}
				logger.Info("demo data seeded")
			}

			registry := prometheus.NewRegistry()
			registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

			svc := usecase.NewEscrowUseCase(ledger,
				usecase.WithLogger(logger),
				usecase.WithMetrics(metrics.New(registry)),
				usecase.WithMaxRetries(cfg.Storage.MaxRetries),
				usecase.WithRetryBudget(cfg.Storage.RetryBudget),
			)

			opts := []httpadapter.HandlerOption{httpadapter.WithCurrency(cfg.Currency)}
			if cfg.Metrics.Enabled {
				opts = append(opts, httpadapter.WithMetrics(cfg.Metrics.Path, promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
			}
			handler := httpadapter.NewHandler(svc, logger, opts...)
			srv := &http.Server{
				Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
				Handler:           handler.Router(),
				ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
			}

			errCh := make(chan error, 1)
			go func() {
				logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			var value os.Signal
			select {
			case err = <-errCh:
				return fmt.Errorf("server error: %w", err)
			case value = <-quit:
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
			defer cancel()
			if err = srv.Shutdown(shutdownCtx); err != nil {
				logger.Error("server shutdown error", slog.Any("error", err))
			} else {
				logger.Info("server gracefully stopped")
			}
			return signalError{sig: value.(syscall.Signal)}
		},
	}
	cmd.Flags().BoolVar(&seed, "seed", false, "write demo parties before serving")
	return cmd
}
