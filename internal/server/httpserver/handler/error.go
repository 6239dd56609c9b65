// Package handler provides HTTP request handlers for the platform API.
package handler

import "net/http"

// handleSimulateError handles GET /api/simulate-error. It always
// fails with the error class selected by the ERROR_TYPE variable, so
// operators can exercise alerting and dashboards on demand.
func (h *Handler) handleSimulateError(w http.ResponseWriter, r *http.Request) {
	err := h.demo.SimulateError(h.cfg.ErrorType)
	h.handleServiceError(w, r, err)
}
