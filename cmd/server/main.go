// Package main provides the entry point for the HTTP server.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	appConfig "github.com/festy23/veterans_league/internal/config"
	"github.com/festy23/veterans_league/internal/database/database"
	"github.com/festy23/veterans_league/internal/database/migrate"
	"github.com/festy23/veterans_league/pkg/logger"
)

func main() {
	if err := appConfig.LoadDotEnv(); err != nil {
		log.Fatalf("failed to load .env: %v", err)
	}

	cfg := appConfig.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	zapLogger, err := logger.NewWithConfig(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() { _ = zapLogger.Sync() }()

	db, err := database.New(zapLogger)
	if err != nil {
		zapLogger.Fatalw("failed to connect to database", "error", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			zapLogger.Errorw("failed to close database", "error", err)
		}
	}()

	if err := migrate.Migrate(db); err != nil {
		zapLogger.Fatalw("failed to run migrations", "error", err)
	}

	gin.SetMode(cfg.GinMode)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	srv := &http.Server{
		Addr:         cfg.Server.GetAddress(),
		Handler:      newRouter(cfg, db, reg, zapLogger),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		zapLogger.Infow("server starting", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	zapLogger.Infow("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLogger.Errorw("server forced to shutdown", "error", err)
	}
}
