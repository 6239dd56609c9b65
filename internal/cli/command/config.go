// Package command provides CLI command definitions for platform-cli.
package command

import (
	"context"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/jconover/kubernetes-platform/internal/cli/connection"
	"github.com/jconover/kubernetes-platform/internal/cli/output"
)

// ConfigCommand returns the config command. It shows the server's
// runtime configuration, not the CLI's own config file.
func ConfigCommand() *cli.Command {
	return &cli.Command{
		Name:   "config",
		Usage:  "Show the service's runtime configuration",
		Action: configAction,
	}
}

func configAction(c *cli.Context) error {
	client, cfg, err := EnsureConnected(c)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	resp, err := client.Get(ctx, "/api/config")
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	var result map[string]any
	if err := connection.ParseResponse(resp, &result); err != nil {
		return err
	}

	switch output.Format(cfg.Output) {
	case output.FormatJSON, output.FormatYAML:
		formatter := output.NewFormatter(output.Format(cfg.Output))
		return formatter.Format(os.Stdout, result)
	default:
		table := &output.Table{
			Headers: []string{"KEY", "VALUE"},
		}
		for _, key := range []string{"service_name", "port", "environment", "log_level"} {
			if v, ok := result[key]; ok {
				table.AddRow(key, formatValue(v))
			}
		}
		if features, ok := result["features"].(map[string]any); ok {
			names := make([]string, 0, len(features))
			for name := range features {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				table.AddRow("features."+name, formatValue(features[name]))
			}
		}
		return table.Render(os.Stdout)
	}
}
