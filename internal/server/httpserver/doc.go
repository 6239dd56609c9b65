// Package httpserver provides the HTTP server for the platform API.
//
// This package implements the external API using stdlib net/http:
//
//   - Root endpoint: /
//   - Probe endpoints: /health, /ready
//   - API endpoints: /api/status, /api/data, /api/config, /api/simulate-error
//   - Observability endpoints: /metrics, /openapi.json
//
// Features:
//
//   - Middleware chain: RequestID, RequestLog, Metrics, CORS, Recover
//   - Prometheus metrics labeled by route pattern, not raw path
//   - Graceful shutdown with configurable timeout
package httpserver
