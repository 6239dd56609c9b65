// Package handler provides HTTP request handlers for the platform API.
package handler

import "github.com/jconover/kubernetes-platform/internal/core/domain"

// ServiceInfo is the GET / response.
type ServiceInfo struct {
	Service     string `json:"service"`
	Version     string `json:"version"`
	Description string `json:"description"`
	Timestamp   string `json:"timestamp"`
	Status      string `json:"status"`
}

// ProbeStatus is the GET /health and GET /ready response.
type ProbeStatus struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Service   string `json:"service"`
}

// ServiceStatus is the GET /api/status response. The node and pod
// fields carry whatever the Kubernetes downward API injected into
// the environment.
type ServiceStatus struct {
	Service     string `json:"service"`
	Version     string `json:"version"`
	Environment string `json:"environment"`
	NodeName    string `json:"node_name"`
	PodName     string `json:"pod_name"`
	PodIP       string `json:"pod_ip"`
	Timestamp   string `json:"timestamp"`
	Uptime      string `json:"uptime"`
}

// DataList is the GET /api/data response.
type DataList struct {
	Data      []domain.Item `json:"data"`
	Count     int           `json:"count"`
	Timestamp string        `json:"timestamp"`
}

// DataCreated is the POST /api/data response. Item echoes the
// request body plus the fields the service filled in.
type DataCreated struct {
	Message   string         `json:"message"`
	Item      map[string]any `json:"item"`
	Timestamp string         `json:"timestamp"`
}

// ConfigView is the GET /api/config response, filtered to the fields
// safe to expose.
type ConfigView struct {
	ServiceName string   `json:"service_name"`
	Port        int      `json:"port"`
	Environment string   `json:"environment"`
	LogLevel    string   `json:"log_level"`
	Features    Features `json:"features"`
}

// Features reports which optional capabilities this build serves.
type Features struct {
	Metrics      bool `json:"metrics"`
	HealthChecks bool `json:"health_checks"`
	CORS         bool `json:"cors"`
}

// ErrorResponse is the body of every JSON error response.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
