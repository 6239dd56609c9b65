// Package command provides CLI command definitions for platform-cli.
package command

import (
	"context"
	"fmt"
	"time"

	"github.com/urfave/cli/v2"
)

// MetricsCommand returns the metrics command. The exposition is
// already plain text, so the output format flag does not apply.
func MetricsCommand() *cli.Command {
	return &cli.Command{
		Name:   "metrics",
		Usage:  "Dump the service's Prometheus metrics",
		Action: metricsAction,
	}
}

func metricsAction(c *cli.Context) error {
	client, _, err := EnsureConnected(c)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	text, err := client.GetText(ctx, "/metrics")
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	fmt.Print(text)
	return nil
}
