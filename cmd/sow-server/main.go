// cmd/sow-server/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"sow-engine/internal/common/config"
	"sow-engine/internal/common/database"
	"sow-engine/internal/common/logger"
	"sow-engine/internal/common/observability"
	"sow-engine/internal/notify"
	"sow-engine/internal/orchestrator"
	"sow-engine/internal/server"
	"sow-engine/internal/sow"
	"sow-engine/internal/sow/templates"
	"sow-engine/internal/store"
	"sow-engine/internal/takeoff"
	"sow-engine/pkg/registry"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2 // Exponential backoff
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting SOW engine...")

	obs := observability.New("sow-engine")
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Init PostgreSQL with retry ---
	var pg *database.PostgresClient
	err = retryWithBackoff(func() error {
		var err error
		pg, err = database.NewPostgres(cfg.Database.Postgres)
		if err != nil {
			return err
		}
		return pg.Ping(ctx)
	}, 15, 2*time.Second, zapLog, "PostgreSQL connection")

	if err != nil {
		zapLog.Fatal("postgres failed after retries", zap.Error(err))
	}
	defer pg.Close()
	zapLog.Info("PostgreSQL connected successfully")

	// --- Init Redis with retry ---
	var rd *database.RedisClient
	err = retryWithBackoff(func() error {
		var err error
		rd, err = database.NewRedis(cfg.Database.Redis)
		if err != nil {
			return err
		}
		return rd.Ping(ctx)
	}, 10, 2*time.Second, zapLog, "Redis connection")

	if err != nil {
		zapLog.Fatal("redis failed after retries", zap.Error(err))
	}
	defer rd.Close()
	zapLog.Info("Redis connected successfully")

	// --- Template catalog ---
	selector := templates.NewSelector()
	if path := cfg.Templates.RegistryPath; path != "" {
		reg, err := registry.LoadRegistry(path)
		if err != nil {
			zapLog.Warn("Registry load failed, using built-in catalog",
				zap.String("path", path), zap.Error(err))
		} else {
			selector = templates.NewSelectorFromRegistry(reg)
			zapLog.Info("Template registry loaded",
				zap.String("path", path), zap.Int("templates", len(reg.Templates)))
		}
	}

	// --- Optional completion emails ---
	var notifier *notify.Notifier
	if cfg.Notifications.Email.Enabled {
		mailer, err := notify.NewSESMailer(ctx, cfg.Notifications.AWS.Region)
		if err != nil {
			zapLog.Warn("SES init failed, completion emails disabled", zap.Error(err))
		} else {
			notifier = notify.NewNotifier(mailer, cfg.Notifications.Email.FromEmail, log)
			zapLog.Info("Completion emails enabled")
		}
	}

	// --- Wire the workflow ---
	st := store.New(pg.DB, rd.Client, log, cfg.Generation.GetProjectCacheTTL())
	validator := takeoff.NewValidator(log)
	generator := sow.NewGenerator(selector)

	orch := orchestrator.New(orchestrator.Config{
		DownloadBaseURL: cfg.Generation.DownloadBaseURL,
		NotifyRecipient: cfg.Notifications.Email.ToEmail,
	}, validator, generator, selector, st, notifier, obs, log)

	srv := server.New(cfg, log, orch, validator, selector, st)

	httpServer := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      srv.Handler(),
		ReadTimeout:  config.GetDuration(cfg.Server.ReadTimeout),
		WriteTimeout: config.GetDuration(cfg.Server.WriteTimeout),
	}

	go func() {
		zapLog.Info("HTTP server listening", zap.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// --- Graceful shutdown ---
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	zapLog.Info("Shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(),
		config.GetDuration(cfg.Server.ShutdownTimeout))
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("HTTP server shutdown failed", zap.Error(err))
	}

	zapLog.Info("SOW engine stopped gracefully")
}
