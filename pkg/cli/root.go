// Package cli implements the fieldtrack admin command-line interface. It
// operates directly on the SQLite database, so it is meant to run on the
// host that owns the database file.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
)

// Execute runs the CLI.
func Execute() int {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var dbPath string

	rootCmd := &cobra.Command{
		Use:           "fieldtrack",
		Short:         "Fieldtrack administration CLI",
		Long:          "Administrative commands for the fieldtrack service database.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Precedence: flag > env > default.
			if !cmd.Flags().Changed("db") {
				if v := os.Getenv("DB_PATH"); v != "" {
					dbPath = v
				}
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "fieldtrack.sqlite", "Path to the SQLite database file")

	rootCmd.AddCommand(newUserCmd(&dbPath))
	rootCmd.AddCommand(newTokenCmd(&dbPath))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}
