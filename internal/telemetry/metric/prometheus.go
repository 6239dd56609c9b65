// Package metric provides Prometheus metrics for the platform service.
//
// It exposes metrics in Prometheus format for monitoring
// request rates and latencies per route.
package metric

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds all application metrics.
//
// Construct one per process and share it between the middleware and
// the exposition handler. There is no package-level instance.
type Registry struct {
	registry *prometheus.Registry

	// Request metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

// NewRegistry creates a new metrics registry.
//
// The underlying Prometheus registry is created bare, without runtime
// or process collectors, so the exposition contains exactly the series
// this package declares and is identical between scrapes when no
// traffic arrives.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	requestsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	reg.MustRegister(requestsTotal, requestDuration)

	return &Registry{
		registry:        reg,
		RequestsTotal:   requestsTotal,
		RequestDuration: requestDuration,
	}
}

// ObserveRequest records one completed request: the counter gains one
// increment and the histogram one observation.
func (r *Registry) ObserveRequest(method, endpoint string, status int, duration time.Duration) {
	code := strconv.Itoa(status)
	r.RequestsTotal.WithLabelValues(method, endpoint, code).Inc()
	r.RequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// Handler returns an HTTP handler that renders the registry in
// Prometheus text exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
