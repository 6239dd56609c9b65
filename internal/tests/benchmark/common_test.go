package benchmark

import (
	"io"
	"net/http"

	"github.com/jconover/kubernetes-platform/internal/core/service"
	"github.com/jconover/kubernetes-platform/internal/server/config"
	"github.com/jconover/kubernetes-platform/internal/server/httpserver"
	"github.com/jconover/kubernetes-platform/internal/telemetry/logger"
	"github.com/jconover/kubernetes-platform/internal/telemetry/metric"
)

// newBenchRouter builds the full server stack with logging discarded,
// so the numbers reflect request handling rather than log encoding.
func newBenchRouter() http.Handler {
	log := logger.New(logger.Config{Level: "error", Format: "json", Output: io.Discard})
	logger.SetDefault(log)

	return httpserver.NewRouter(&httpserver.RouterConfig{
		Config:  config.Default(),
		Demo:    service.NewDemoService(),
		Metrics: metric.NewRegistry(),
		Logger:  log,
	})
}
