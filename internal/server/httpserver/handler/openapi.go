// Package handler provides HTTP request handlers for the platform API.
package handler

import (
	"context"
	_ "embed"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
)

// openAPIDocument is the API contract served at /openapi.json. It is
// maintained by hand alongside the handlers; ValidateOpenAPIDocument
// keeps it structurally sound.
//
//go:embed openapi.json
var openAPIDocument []byte

// ValidateOpenAPIDocument parses and validates the embedded API
// document. Call it at startup so a malformed document fails the
// process instead of serving garbage to clients.
func ValidateOpenAPIDocument(ctx context.Context) error {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(openAPIDocument)
	if err != nil {
		return fmt.Errorf("failed to load OpenAPI document: %w", err)
	}
	if err := doc.Validate(ctx); err != nil {
		return fmt.Errorf("invalid OpenAPI document: %w", err)
	}
	return nil
}

// handleOpenAPI handles GET /openapi.json.
func (h *Handler) handleOpenAPI(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(openAPIDocument)
}
