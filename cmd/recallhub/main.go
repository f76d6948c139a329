package main

import (
	"os"

	"github.com/spf13/cobra"

	"recallhub/internal/interfaces/cli/migrate"
	"recallhub/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "recallhub",
		Short: "Recallhub - vehicle recall registry",
		Long:  `Recallhub is an HTTP service for managing vehicle manufacturers, car models, and recall records, with built-in migration tooling.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
