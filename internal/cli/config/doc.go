// Package config provides CLI configuration for platform-cli.
//
// This package defines CLI-specific configuration:
//
//   - spec.go: CLIConfig struct (~/.platform/cli.yaml)
//   - loader.go: Configuration loading and merging
//
// Sources are merged with the usual precedence:
//
//   - Command-line flags (passed in as overrides)
//   - PLATFORM_* environment variables
//   - Config file
//   - Built-in defaults
package config
