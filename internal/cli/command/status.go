// Package command provides CLI command definitions for platform-cli.
package command

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/jconover/kubernetes-platform/internal/cli/connection"
	"github.com/jconover/kubernetes-platform/internal/cli/output"
)

// StatusCommand returns the status command.
func StatusCommand() *cli.Command {
	return &cli.Command{
		Name:   "status",
		Usage:  "Show service status and cluster placement",
		Action: statusAction,
	}
}

func statusAction(c *cli.Context) error {
	client, cfg, err := EnsureConnected(c)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	resp, err := client.Get(ctx, "/api/status")
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
		fmt.Printf("Service Status\n")
		fmt.Printf("==============\n\n")

		if service, ok := result["service"].(string); ok {
			fmt.Printf("Service:     %s\n", service)
		}
		if version, ok := result["version"].(string); ok {
			fmt.Printf("Version:     %s\n", version)
		}
		if env, ok := result["environment"].(string); ok {
			fmt.Printf("Environment: %s\n", env)
		}
		if node, ok := result["node_name"].(string); ok {
			fmt.Printf("Node:        %s\n", node)
		}
		if pod, ok := result["pod_name"].(string); ok {
			fmt.Printf("Pod:         %s\n", pod)
		}
		if ip, ok := result["pod_ip"].(string); ok {
			fmt.Printf("Pod IP:      %s\n", ip)
		}
		if uptime, ok := result["uptime"].(string); ok {
			fmt.Printf("Uptime:      %s\n", uptime)
		}
		return nil
	}
}
