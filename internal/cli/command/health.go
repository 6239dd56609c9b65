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

// HealthCommand returns the health command.
func HealthCommand() *cli.Command {
	return &cli.Command{
		Name:  "health",
		Usage: "Check the service's health probe",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "ready",
				Aliases: []string{"r"},
				Usage:   "Check the readiness probe instead of liveness",
			},
		},
		Action: healthAction,
	}
}

func healthAction(c *cli.Context) error {
	client, cfg, err := EnsureConnected(c)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	path := "/health"
	wantStatus := "healthy"
	if c.Bool("ready") {
		path = "/ready"
		wantStatus = "ready"
	}

	resp, err := client.Get(ctx, path)
	if err != nil {
		PrintError("Health check failed: %v", err)
		return fmt.Errorf("service unreachable")
	}

	var result struct {
		Status    string `json:"status"`
		Timestamp string `json:"timestamp"`
		Service   string `json:"service"`
	}
	if err := connection.ParseResponse(resp, &result); err != nil {
		return err
	}

	switch output.Format(cfg.Output) {
	case output.FormatJSON, output.FormatYAML:
		formatter := output.NewFormatter(output.Format(cfg.Output))
		return formatter.Format(os.Stdout, result)
	default:
		if result.Status == wantStatus {
			fmt.Printf("✓ %s is %s\n", result.Service, result.Status)
			fmt.Printf("  Target: %s\n", client.BaseURL())
		} else {
			fmt.Printf("✗ %s reported status %q\n", result.Service, result.Status)
		}
		return nil
	}
}
