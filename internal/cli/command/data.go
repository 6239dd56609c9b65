// Package command provides CLI command definitions for platform-cli.
package command

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/jconover/kubernetes-platform/internal/cli/connection"
	"github.com/jconover/kubernetes-platform/internal/cli/output"
)

// DataCommand returns the data subcommand group.
func DataCommand() *cli.Command {
	return &cli.Command{
		Name:  "data",
		Usage: "Work with the demo data set",
		Subcommands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List items",
				Action: dataList,
			},
			{
				Name:      "create",
				Usage:     "Create a new item from a JSON object",
				ArgsUsage: "[JSON]",
				Action:    dataCreate,
			},
		},
	}
}

func dataList(c *cli.Context) error {
	client, cfg, err := EnsureConnected(c)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	resp, err := client.Get(ctx, "/api/data")
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	var result struct {
		Data  []map[string]any `json:"data"`
		Count int              `json:"count"`
	}
	if err := connection.ParseResponse(resp, &result); err != nil {
		return err
	}

	switch output.Format(cfg.Output) {
	case output.FormatJSON, output.FormatYAML:
		formatter := output.NewFormatter(output.Format(cfg.Output))
		return formatter.Format(os.Stdout, result.Data)
	default:
		table := &output.Table{
			Headers: []string{"ID", "NAME", "TYPE", "STATUS"},
		}
		for _, item := range result.Data {
			table.AddRow(
				formatValue(item["id"]),
				formatValue(item["name"]),
				formatValue(item["type"]),
				formatValue(item["status"]),
			)
		}
		if err := table.Render(os.Stdout); err != nil {
			return err
		}
		fmt.Printf("\nTotal: %d items\n", result.Count)
		return nil
	}
}

func dataCreate(c *cli.Context) error {
	raw := c.Args().First()
	if raw == "" {
		raw = "{}"
	}

	var payload map[string]any
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return fmt.Errorf("invalid JSON payload: %w", err)
	}
	if payload == nil {
		return fmt.Errorf("payload must be a JSON object")
	}

	client, cfg, err := EnsureConnected(c)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	resp, err := client.Post(ctx, "/api/data", payload)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	var result struct {
		Message string         `json:"message"`
		Item    map[string]any `json:"item"`
	}
	if err := connection.ParseResponse(resp, &result); err != nil {
		return err
	}

	switch output.Format(cfg.Output) {
	case output.FormatJSON, output.FormatYAML:
		formatter := output.NewFormatter(output.Format(cfg.Output))
		return formatter.Format(os.Stdout, result.Item)
	default:
		fmt.Printf("%s\n", result.Message)
		fmt.Printf("  ID:      %s\n", formatValue(result.Item["id"]))
		fmt.Printf("  Created: %s\n", formatValue(result.Item["created_at"]))
		return nil
	}
}
