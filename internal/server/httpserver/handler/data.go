// Package handler provides HTTP request handlers for the platform API.
package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/jconover/kubernetes-platform/internal/telemetry/logger"
)

// handleListData handles GET /api/data.
func (h *Handler) handleListData(w http.ResponseWriter, r *http.Request) {
	items := h.demo.Items()

	h.writeJSON(w, r, http.StatusOK, DataList{
		Data:      items,
		Count:     len(items),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// handleCreateData handles POST /api/data. The body may be any JSON
// object; the service assigns id and created_at and the full item is
// echoed back.
func (h *Handler) handleCreateData(w http.ResponseWriter, r *http.Request) {
	var payload map[string]any
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.writeError(w, r, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if payload == nil {
		h.writeError(w, r, http.StatusBadRequest, "Request body must be a JSON object")
		return
	}

	item := h.demo.CreateItem(payload)

	logger.L(r.Context()).Info("created new item", "id", item["id"])

	h.writeJSON(w, r, http.StatusOK, DataCreated{
		Message:   "Item created successfully",
		Item:      item,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
