// Package handler provides HTTP request handlers for the platform API.
package handler

import (
	"net/http"
	"time"
)

// handleHealth handles GET /health, the Kubernetes liveness probe.
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, ProbeStatus{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Service:   h.cfg.ServiceName,
	})
}

// handleReady handles GET /ready, the Kubernetes readiness probe.
// The service has no external dependencies to wait on, so readiness
// only differs from liveness in the status string.
func (h *Handler) handleReady(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, ProbeStatus{
		Status:    "ready",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Service:   h.cfg.ServiceName,
	})
}
