// Package config defines the CLI configuration structure.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jconover/kubernetes-platform/internal/infra/confloader"
)

// envPrefix namespaces the CLI's environment variables, keeping them
// apart from the server's unprefixed ones.
const envPrefix = "PLATFORM_"

// DefaultConfigPath returns the default CLI config file path.
func DefaultConfigPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".platform", "cli.yaml")
}

// Load loads CLI configuration with the usual precedence: flag
// overrides beat PLATFORM_* environment variables, which beat the
// config file, which beats defaults. A missing config file is not an
// error; the remaining sources still apply.
func Load(path string, overrides map[string]any) (*CLIConfig, error) {
	cfg := Default()

	if path == "" {
		path = DefaultConfigPath()
	}

	opts := []confloader.Option{confloader.WithEnvPrefix(envPrefix)}
	if _, err := os.Stat(path); err == nil {
		opts = append(opts, confloader.WithConfigFile(path))
	}

	loader := confloader.NewLoader(opts...)
	if err := loader.Load(cfg); err != nil {
		return nil, err
	}

	if len(overrides) > 0 {
		if err := loader.LoadMap(overrides); err != nil {
			return nil, err
		}
		if err := loader.Unmarshal(cfg); err != nil {
			return nil, fmt.Errorf("unmarshal config: %w", err)
		}
	}

	return cfg, nil
}
