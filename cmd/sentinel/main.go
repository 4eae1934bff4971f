package main

import (
	"os"

	"github.com/spf13/cobra"

	"sentinel/internal/interfaces/cli/migrate"
	"sentinel/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sentinel",
		Short: "Sentinel - session-based authentication service",
		Long:  `Sentinel is an authentication service with registration, session management, and credential recovery, plus built-in migration tools.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
