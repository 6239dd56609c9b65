// Package command provides CLI command definitions for platform-cli.
package command

import (
	"fmt"
	"os"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/jconover/kubernetes-platform/internal/cli/config"
	"github.com/jconover/kubernetes-platform/internal/cli/connection"
	"github.com/jconover/kubernetes-platform/internal/infra/buildinfo"
)

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "platform-cli",
		Usage:   "Command-line client for the platform API",
		Version: buildinfo.String(),
		Flags:   globalFlags(),
		Commands: []*cli.Command{
			StatusCommand(),
			HealthCommand(),
			DataCommand(),
			ConfigCommand(),
			MetricsCommand(),
		},
	}
}

// globalFlags returns the global CLI flags.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "server",
			Aliases: []string{"s"},
			Usage:   "Platform API address (e.g., localhost:8000)",
			EnvVars: []string{"PLATFORM_SERVER"},
			Value:   "localhost:8000",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output format: table, json, yaml",
			EnvVars: []string{"PLATFORM_OUTPUT"},
			Value:   "table",
		},
		&cli.StringFlag{
			Name:    "config",
			Usage:   "Path to CLI config file (default ~/.platform/cli.yaml)",
			EnvVars: []string{"PLATFORM_CONFIG"},
		},
	}
}

// ClientConfig resolves the effective CLI configuration for a command
// invocation. Flags set on the command line (or through their
// environment variables) override the config file.
func ClientConfig(c *cli.Context) (*config.CLIConfig, error) {
	overrides := map[string]any{}
	if c.IsSet("server") {
		overrides["server"] = c.String("server")
	}
	if c.IsSet("output") {
		overrides["output"] = c.String("output")
	}

	return config.Load(c.String("config"), overrides)
}

// EnsureConnected resolves the configuration and returns the HTTP
// client pointed at the configured server.
func EnsureConnected(c *cli.Context) (*connection.HTTPClient, *config.CLIConfig, error) {
	cfg, err := ClientConfig(c)
	if err != nil {
		return nil, nil, err
	}

	return connection.NewHTTPClient(cfg.Server), cfg, nil
}

// PrintError prints an error message to stderr.
func PrintError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
}

// formatValue renders a decoded JSON value for table cells. Numbers
// arrive as float64; whole values print without a fraction.
func formatValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", val)
	}
}
