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

	"connectrpc.com/connect"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
	"golang.org/x/sync/errgroup"

	"github.com/splitease/splitease/internal/config"
	"github.com/splitease/splitease/internal/metrics"
	"github.com/splitease/splitease/internal/middleware"
	"github.com/splitease/splitease/internal/service"
	"github.com/splitease/splitease/internal/storage"
	"github.com/splitease/splitease/internal/storage/memory"
	"github.com/splitease/splitease/internal/storage/sqlite"
	"github.com/splitease/splitease/pkg/api"
	"github.com/splitease/splitease/pkg/logging"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return err
	}

	logging.Setup(cfg.LogLevel, cfg.LogFormat)

	store, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer store.Close()
	slog.Info("Storage initialized", "backend", cfg.StoreBackend)

	m := metrics.New()

	mux := http.NewServeMux()

	// Register Connect services
	billSvc := service.NewBillService(store,
		service.WithStrategy(cfg.Strategy),
		service.WithMetrics(m),
	)
	billPath, billHandler := api.NewBillServiceHandler(billSvc,
		connect.WithInterceptors(
			middleware.LoggingInterceptor(),
			middleware.MetricsInterceptor(m),
		),
	)
	mux.Handle(billPath, billHandler)

	mux.Handle("/metrics", m.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Wrap with h2c for HTTP/2 without TLS (required for Connect)
	handler := h2c.NewHandler(middleware.Logging(middleware.CORS(mux)), &http2.Server{})

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: handler,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("Connect server starting",
			"address", srv.Addr,
			"url", fmt.Sprintf("http://localhost%s", srv.Addr),
			"strategy", cfg.Strategy,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		slog.Info("Shutting down server", "timeout", cfg.ShutdownTimeout)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	slog.Info("Server stopped")
	return nil
}

func openStore(cfg *config.Config) (storage.Store, error) {
	switch cfg.StoreBackend {
	case config.BackendSQLite:
		slog.Info("Opening SQLite database", "database", cfg.DBPath)
		return sqlite.New(cfg.DBPath)
	default:
		return memory.New(), nil
	}
}
