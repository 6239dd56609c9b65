// Package httpserver provides the HTTP server for the platform API.
package httpserver

import (
	"log/slog"
	"net/http"

	"github.com/jconover/kubernetes-platform/internal/core/service"
	"github.com/jconover/kubernetes-platform/internal/server/config"
	"github.com/jconover/kubernetes-platform/internal/server/httpserver/handler"
	"github.com/jconover/kubernetes-platform/internal/telemetry/logger"
	"github.com/jconover/kubernetes-platform/internal/telemetry/metric"
)

// RouterConfig holds the dependencies for the HTTP router.
type RouterConfig struct {
	// Config is the runtime configuration exposed by the API.
	Config *config.Config

	// Demo provides the sample data operations.
	Demo *service.DemoService

	// Metrics is the registry every request is observed on. The
	// router also mounts its exposition handler at /metrics.
	Metrics *metric.Registry

	// Logger for request logging.
	Logger *slog.Logger

	// CORSAllowedOrigins is the list of allowed CORS origins (empty = allow all).
	CORSAllowedOrigins []string
}

// NewRouter creates the HTTP router with all routes and middleware.
func NewRouter(cfg *RouterConfig) http.Handler {
	log := cfg.Logger
	if log == nil {
		log = logger.Default()
	}

	h := handler.New(cfg.Config, cfg.Demo, cfg.Metrics.Handler())

	// Apply middleware so the first entry is the outermost wrapper.
	// RequestID is the only middleware that swaps the request, and it
	// has to stay outside Metrics: the mux writes the matched pattern
	// into the request it was given, so Metrics must hold that same
	// request when it reads the pattern back.
	return Chain(h,
		RequestID(log),
		RequestLog(log),
		Metrics(cfg.Metrics),
		CORS(cfg.CORSAllowedOrigins),
		Recover(log),
	)
}
