// Package config provides server configuration for platform-api.
//
// This package defines the server configuration structure and validation:
//
//   - spec.go: Config struct definition
//   - default.go: Default configuration values
//   - verify.go: Business validation (port range, log level)
//
// Configuration is loaded via internal/infra/confloader from bare
// environment variables (SERVICE_NAME, PORT, ...), falling back to
// the defaults in default.go.
package config
