package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"fieldtrack/internal/config"
	"fieldtrack/internal/service"
)

func newTokenCmd(dbPath *string) *cobra.Command {
	var (
		secret  string
		expires time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token <email>",
		Short: "Issue an HS256 token for an existing user",
		Long:  "Issue a signed HS256 JWT for an existing user, for development and scripting.",
		Example: `  # Issue a 48h token for alice using the server's JWT secret
  JWT_SECRET=... fieldtrack token alice@example.com --expires 48h`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("secret") {
				if v := os.Getenv("JWT_SECRET"); v != "" {
					secret = v
				}
			}

			repo, closeDB, err := openUserRepo(*dbPath)
			if err != nil {
				return err
			}
			defer closeDB()

			u, err := repo.GetByEmail(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			auth := service.NewAuthService(repo, secret, expires)
			signed, err := auth.IssueToken(u)
			if err != nil {
				return fmt.Errorf("sign token: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), signed)
			return nil
		},
	}

	cmd.Flags().StringVar(&secret, "secret", config.DefaultJWTSecret, "HS256 signing secret (or JWT_SECRET env)")
	cmd.Flags().DurationVar(&expires, "expires", 24*time.Hour, "Token lifetime")
	return cmd
}
