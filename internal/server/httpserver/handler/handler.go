// Package handler provides HTTP request handlers for the platform API.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jconover/kubernetes-platform/internal/core/domain"
	"github.com/jconover/kubernetes-platform/internal/core/service"
	"github.com/jconover/kubernetes-platform/internal/server/config"
	"github.com/jconover/kubernetes-platform/internal/telemetry/logger"
)

// apiVersion is advertised in the service metadata payloads.
const apiVersion = "1.0.0"

// apiDescription is the human-readable service description in the
// root payload.
const apiDescription = "Kubernetes Platform Microservice"

// Handler is the main HTTP handler that routes requests to appropriate handlers.
type Handler struct {
	cfg     *config.Config
	demo    *service.DemoService
	metrics http.Handler
	mux     *http.ServeMux
}

// New creates a new Handler.
//
// metrics is mounted unchanged at GET /metrics so the response body
// stays whatever exposition format the registry produces.
func New(cfg *config.Config, demo *service.DemoService, metrics http.Handler) *Handler {
	h := &Handler{
		cfg:     cfg,
		demo:    demo,
		metrics: metrics,
		mux:     http.NewServeMux(),
	}

	h.registerRoutes()
	return h
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

// registerRoutes registers all HTTP routes.
func (h *Handler) registerRoutes() {
	// Service metadata ("/{$}" matches exactly "/")
	h.mux.HandleFunc("GET /{$}", h.handleRoot)

	// Probe endpoints for Kubernetes liveness and readiness checks
	h.mux.HandleFunc("GET /health", h.handleHealth)
	h.mux.HandleFunc("GET /ready", h.handleReady)

	// API endpoints
	h.mux.HandleFunc("GET /api/status", h.handleStatus)
	h.mux.HandleFunc("GET /api/data", h.handleListData)
	h.mux.HandleFunc("POST /api/data", h.handleCreateData)
	h.mux.HandleFunc("GET /api/config", h.handleConfig)
	h.mux.HandleFunc("GET /api/simulate-error", h.handleSimulateError)

	// Observability endpoints
	h.mux.Handle("GET /metrics", h.metrics)
	h.mux.HandleFunc("GET /openapi.json", h.handleOpenAPI)
}

// writeJSON writes data as the JSON response body.
func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.L(r.Context()).Error("failed to encode response", "error", err)
	}
}

// writeError writes an error response with a detail message.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, status int, detail string) {
	h.writeJSON(w, r, status, ErrorResponse{Detail: detail})
}

// handleServiceError converts service errors to HTTP responses. The
// error message doubles as the response detail string.
func (h *Handler) handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var status int
	switch {
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, domain.ErrInternal):
		status = http.StatusInternalServerError
	default:
		logger.L(r.Context()).Error("unhandled service error", "error", err)
		status = http.StatusInternalServerError
	}
	h.writeError(w, r, status, err.Error())
}
