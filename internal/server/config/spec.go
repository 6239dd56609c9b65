// Package config defines the server configuration structure.
package config

import "fmt"

// Config is the root configuration for platform-api.
//
// Every field maps to one environment variable: the koanf tag
// uppercased is the variable name (service_name -> SERVICE_NAME).
type Config struct {
	// ServiceName identifies the service in response payloads.
	ServiceName string `koanf:"service_name"`

	// Port is the TCP port the server binds on all interfaces.
	Port int `koanf:"port"`

	// Environment names the deployment environment (development,
	// staging, production). Development switches logs to text format.
	Environment string `koanf:"environment"`

	// LogLevel is the minimum log level, case-insensitive.
	LogLevel string `koanf:"log_level"`

	// NodeName, PodName, and PodIP carry scheduling facts injected by
	// the Kubernetes downward API. They default to "unknown" outside a
	// cluster.
	NodeName string `koanf:"node_name"`
	PodName  string `koanf:"pod_name"`
	PodIP    string `koanf:"pod_ip"`

	// ErrorType selects the failure served by the error simulation
	// endpoint: "404", "403", or anything else for 500.
	ErrorType string `koanf:"error_type"`
}

// Addr returns the listen address, binding all interfaces.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// IsDevelopment reports whether the service runs in the development
// environment.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
