package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kiwiorbit/speechive-7.1/internal/analytics"
	"github.com/kiwiorbit/speechive-7.1/internal/catalog"
	"github.com/kiwiorbit/speechive-7.1/internal/clock"
	"github.com/kiwiorbit/speechive-7.1/internal/config"
	"github.com/kiwiorbit/speechive-7.1/internal/engine"
	"github.com/kiwiorbit/speechive-7.1/internal/event"
	"github.com/kiwiorbit/speechive-7.1/internal/logger"
	"github.com/kiwiorbit/speechive-7.1/internal/metrics"
	"github.com/kiwiorbit/speechive-7.1/internal/notification"
	"github.com/kiwiorbit/speechive-7.1/internal/server"
	"github.com/kiwiorbit/speechive-7.1/internal/store"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Default logger until configuration is loaded, so config failures
	// still come out structured.
	logger.InitLogger(logger.DefaultConfig())

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)

	ctx := context.Background()

	st, err := openStore(ctx, cfg)
	if err != nil {
		slog.Error("Store initialization failed", "driver", cfg.StoreDriver, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := st.Close(); err != nil {
			slog.Warn("Store close failed", "error", err)
		}
	}()
	slog.Info("Store ready", "driver", cfg.StoreDriver)

	cat, err := catalog.NewLoader().Load(cfg.CatalogPath)
	if err != nil {
		slog.Error("Catalog load failed", "path", cfg.CatalogPath, "error", err)
		os.Exit(1)
	}
	slog.Info("Catalog loaded", "path", cfg.CatalogPath, "version", cat.Version)

	bus := event.NewMemoryBus()

	collector := metrics.NewEventMetricsCollector()
	if err := collector.Register(bus); err != nil {
		slog.Error("Metrics collector registration failed", "error", err)
		os.Exit(1)
	}

	clk := clock.NewRealClock()

	eng, err := engine.NewService(ctx, st, bus, clk, cat,
		engine.WithMinSessionSeconds(cfg.MinSessionSeconds))
	if err != nil {
		slog.Error("Engine initialization failed", "error", err)
		os.Exit(1)
	}

	notif, err := notification.NewService(ctx, st, clk)
	if err != nil {
		slog.Error("Notification service initialization failed", "error", err)
		os.Exit(1)
	}
	notif.Subscribe(bus)

	srv := server.NewServer(cfg.Port, eng, analytics.NewService(eng, clk), notif)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	case sig := <-stop:
		slog.Info("Shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		slog.Error("Shutdown failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Shutdown complete")
}

// openStore selects the persistence backend from configuration.
func openStore(ctx context.Context, cfg *config.Config) (store.Store, error) {
	switch cfg.StoreDriver {
	case config.StoreMemory:
		return store.NewMemoryStore(), nil
	case config.StoreFile:
		return store.NewFileStore(cfg.DataDir)
	case config.StoreRedis:
		return store.NewRedisStore(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	case config.StorePostgres:
		return store.NewPostgresStore(ctx, cfg.GetDBConnString())
	default:
		return store.NewMemoryStore(), nil
	}
}
