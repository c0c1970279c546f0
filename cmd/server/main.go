// cmd/server/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"mergington-activities/internal/common/config"
	"mergington-activities/internal/common/logger"
	"mergington-activities/internal/common/observability"
	"mergington-activities/internal/notifications"
	"mergington-activities/internal/registry"
	"mergington-activities/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New("info", "console")
		bootLog.Fatal("config load failed", zap.Error(err))
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog)
	zapLog.Info("Starting activities service...",
		zap.String("environment", cfg.App.Environment),
	)

	obs := observability.New(cfg.Observability.ServiceName)
	defer obs.Shutdown()

	var tracing *observability.Tracing
	if cfg.Observability.TracingEnabled {
		tracing = observability.NewTracing(cfg.Observability.ServiceName, cfg.Observability.JaegerEndpoint)
		defer tracing.Shutdown()
	}

	// --- Init Activity Registry ---
	var reg *registry.Registry
	if cfg.Registry.SeedFile != "" {
		seed, err := registry.LoadSeedFile(cfg.Registry.SeedFile)
		if err != nil {
			zapLog.Fatal("seed file rejected", zap.Error(err))
		}
		reg = registry.New(seed)
		zapLog.Info("registry seeded from file",
			zap.String("path", cfg.Registry.SeedFile),
			zap.Int("activities", len(seed)),
		)
	} else {
		reg = registry.NewDefault()
		zapLog.Info("registry seeded with built-in data set")
	}

	notifier, err := notifications.New(cfg.Notifications, log)
	if err != nil {
		zapLog.Fatal("notifier init failed", zap.Error(err))
	}

	srv := server.New(cfg, reg, notifier, log, obs, tracing)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			zapLog.Fatal("server failed", zap.Error(err))
		}
	case sig := <-sigCh:
		zapLog.Info("Shutdown signal received, draining connections...",
			zap.String("signal", sig.String()),
		)
		ctx, cancel := context.WithTimeout(context.Background(),
			time.Duration(cfg.Server.ShutdownTimeout)*time.Millisecond)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			zapLog.Error("shutdown incomplete", zap.Error(err))
		}
	}

	zapLog.Info("Activities service stopped")
}
