// Package handler provides HTTP request handlers for the platform API.
//
// This package contains handlers for all HTTP endpoints:
//
//   - info.go: Service metadata, status, and configuration
//   - health.go: Liveness and readiness probes
//   - data.go: Demo data listing and creation
//   - error.go: Error simulation
//   - openapi.go: API contract document
//
// All handlers follow a consistent pattern:
//
//   - Parse and validate request
//   - Call domain service
//   - Format and return response
//   - Handle errors with appropriate HTTP status codes
//
// Responses are flat JSON objects; errors carry a single detail
// field.
package handler
