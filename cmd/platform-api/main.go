// Package main provides the entry point for platform-api.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/jconover/kubernetes-platform/internal/core/service"
	"github.com/jconover/kubernetes-platform/internal/infra/buildinfo"
	"github.com/jconover/kubernetes-platform/internal/infra/confloader"
	"github.com/jconover/kubernetes-platform/internal/infra/shutdown"
	"github.com/jconover/kubernetes-platform/internal/server/config"
	"github.com/jconover/kubernetes-platform/internal/server/httpserver"
	"github.com/jconover/kubernetes-platform/internal/server/httpserver/handler"
	"github.com/jconover/kubernetes-platform/internal/telemetry/logger"
	"github.com/jconover/kubernetes-platform/internal/telemetry/metric"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// All configuration comes from the environment
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := initLogger(cfg)

	info := buildinfo.Get()
	log.Info("starting platform-api",
		"service", cfg.ServiceName,
		"version", info.Version,
		"commit", info.Commit,
		"go_version", info.GoVersion,
		"environment", cfg.Environment,
		"port", cfg.Port)

	// Fail fast on a broken API document
	if err := handler.ValidateOpenAPIDocument(context.Background()); err != nil {
		return err
	}

	// One registry per process, shared by the middleware and /metrics
	registry := metric.NewRegistry()

	router := httpserver.NewRouter(&httpserver.RouterConfig{
		Config:  cfg,
		Demo:    service.NewDemoService(),
		Metrics: registry,
		Logger:  log,
	})

	httpServer := httpserver.New(cfg.Addr(), router)

	// Setup graceful shutdown
	shutdownHandler := shutdown.NewHandler(30 * time.Second)

	shutdownHandler.OnShutdown(func(ctx context.Context) error {
		log.Info("shutting down HTTP server")
		return httpServer.Shutdown(ctx)
	})

	// Start HTTP server in goroutine
	go func() {
		log.Info("HTTP server listening", "addr", cfg.Addr())

		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			shutdownHandler.Fail(err)
		}
	}()

	// Wait for a shutdown signal or a listener failure
	if err := shutdownHandler.Wait(); err != nil {
		log.Error("shutdown error", "error", err)
		return err
	}

	log.Info("server stopped gracefully")
	return nil
}

// loadConfig builds the configuration from defaults and environment
// variables.
func loadConfig() (*config.Config, error) {
	cfg := config.Default()

	if err := confloader.NewLoader().Load(cfg); err != nil {
		return nil, err
	}

	if err := config.Verify(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// initLogger initializes the structured logger and installs it as
// the process default. Development environments get human-readable
// text output, everything else logs JSON.
func initLogger(cfg *config.Config) *slog.Logger {
	format := "json"
	if cfg.IsDevelopment() {
		format = "text"
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: format,
		Output: os.Stdout,
	})
	logger.SetDefault(log)

	return log
}
