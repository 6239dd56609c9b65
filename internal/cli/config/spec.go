// Package config defines the CLI configuration structure.
package config

// CLIConfig is the configuration for platform-cli.
type CLIConfig struct {
	// Server is the address of the platform API. A bare host:port is
	// dialed over plain HTTP.
	Server string `koanf:"server"`

	// Output is the default output format: table, json, or yaml.
	Output string `koanf:"output"`
}

// Default returns the default CLI configuration.
func Default() *CLIConfig {
	return &CLIConfig{
		Server: "localhost:8000",
		Output: "table",
	}
}
