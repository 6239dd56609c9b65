// Package command provides CLI command definitions for platform-cli.
//
// This package defines all CLI commands using urfave/cli/v2:
//
//   - root.go: Root command, global flags, config resolution
//   - status.go: Service status command
//   - health.go: Liveness/readiness probe command
//   - data.go: Demo data subcommand group
//   - config.go: Server runtime configuration command
//   - metrics.go: Prometheus exposition dump command
//
// Commands follow a consistent pattern of resolving configuration,
// calling the API over HTTP, and formatting output.
package command
