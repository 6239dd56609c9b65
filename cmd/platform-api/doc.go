// Package main provides the entry point for platform-api.
//
// platform-api is the demo microservice of the Kubernetes platform:
//
//   - Service metadata and status endpoints under / and /api
//   - Liveness and readiness probes for Kubernetes
//   - Prometheus metrics at /metrics
//   - OpenAPI contract at /openapi.json
//
// Usage:
//
//	platform-api
//
// There are no flags; all configuration is read from environment
// variables (SERVICE_NAME, PORT, ENVIRONMENT, LOG_LEVEL, NODE_NAME,
// POD_NAME, POD_IP, ERROR_TYPE).
package main
