// Package main provides the entry point for platform-cli.
package main

import (
	"fmt"
	"os"

	"github.com/jconover/kubernetes-platform/internal/cli/command"
)

func main() {
	app := command.App()

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
