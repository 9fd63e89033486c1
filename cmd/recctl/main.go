/*
Package main is the entry point for recctl, a command line front end to the
recommendation service.

Usage:

	recctl [command] [flags]

Every command reads the same form flags (--id, --name, --product-id,
--recommended-product-id, --type), sends one request and prints the message,
the resulting form and, for search, the result table.
*/
package main

import (
	"context"
	"fmt"
	"os"

	"recs-admin/internal/cli"
	"recs-admin/internal/console"
	"recs-admin/pkg/logger"

	"github.com/spf13/cobra"
)

func main() {
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		level = "warn"
	}
	if err := logger.Init(level, "console"); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	var opts cli.Options
	rootCmd := &cobra.Command{
		Use:           "recctl",
		Short:         "Create, retrieve, update, delete and search product recommendations",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	opts.BindFlags(rootCmd)

	for _, cmd := range console.Commands {
		if cmd == console.CommandClear {
			continue
		}
		rootCmd.AddCommand(cli.NewCommandCmd(cmd, &opts))
	}

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
