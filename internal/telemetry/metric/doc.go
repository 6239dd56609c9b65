// Package metric provides Prometheus metrics for the platform service.
//
// This package implements metrics collection and exposition:
//
//   - prometheus.go: Prometheus registry, request observations, HTTP handler
//
// Metrics include:
//
//   - http_requests_total counter, labeled by method, endpoint, status
//   - http_request_duration_seconds histogram, labeled by method, endpoint
//
// Metrics are exposed at /metrics in Prometheus format.
package metric
