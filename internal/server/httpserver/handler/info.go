// Package handler provides HTTP request handlers for the platform API.
package handler

import (
	"net/http"
	"time"
)

// handleRoot handles GET /, the service metadata endpoint.
func (h *Handler) handleRoot(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, ServiceInfo{
		Service:     h.cfg.ServiceName,
		Version:     apiVersion,
		Description: apiDescription,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Status:      "healthy",
	})
}

// handleStatus handles GET /api/status.
func (h *Handler) handleStatus(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, ServiceStatus{
		Service:     h.cfg.ServiceName,
		Version:     apiVersion,
		Environment: h.cfg.Environment,
		NodeName:    h.cfg.NodeName,
		PodName:     h.cfg.PodName,
		PodIP:       h.cfg.PodIP,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Uptime:      "Service is running",
	})
}

// handleConfig handles GET /api/config. Only fields safe to expose
// are included; the downward API identifiers and the error selector
// stay private.
func (h *Handler) handleConfig(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, ConfigView{
		ServiceName: h.cfg.ServiceName,
		Port:        h.cfg.Port,
		Environment: h.cfg.Environment,
		LogLevel:    h.cfg.LogLevel,
		Features: Features{
			Metrics:      true,
			HealthChecks: true,
			CORS:         true,
		},
	})
}
