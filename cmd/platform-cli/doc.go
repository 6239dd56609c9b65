// Package main provides the entry point for platform-cli.
//
// The CLI tool provides command-line access to the platform API for:
//
//   - Service status and placement (status)
//   - Health and readiness probes (health)
//   - Demo data set (data list, data create)
//   - Runtime configuration (config)
//   - Prometheus metrics (metrics)
//
// Usage:
//
//	platform-cli [command] [flags]
//	platform-cli status --output json
//	platform-cli data create '{"name": "box"}'
//	platform-cli health --ready --server staging.internal:8000
//
// The server address, output format, and config file path can also be
// set through PLATFORM_* environment variables or ~/.platform/cli.yaml.
package main
