package cli

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/term"

	"fieldtrack/internal/domain"
)

func newUserCmd(dbPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage user accounts",
	}

	cmd.AddCommand(newUserCreateCmd(dbPath))
	cmd.AddCommand(newUserListCmd(dbPath))
	cmd.AddCommand(newUserPromoteCmd(dbPath))
	return cmd
}

func newUserCreateCmd(dbPath *string) *cobra.Command {
	var (
		name     string
		role     string
		password string
	)

	cmd := &cobra.Command{
		Use:   "create <email>",
		Short: "Create a user account",
		Example: `  # Create an admin, prompting for the password
  fieldtrack user create alice@example.com --name "Alice" --role admin`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			email := args[0]
			if password == "" {
				var err error
				password, err = promptPassword("Password: ")
				if err != nil {
					return err
				}
			}

			req := &domain.CreateUserRequest{
				Name:     name,
				Email:    email,
				Password: password,
				Role:     role,
			}
			if err := req.Validate(); err != nil {
				return err
			}

			hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("hash password: %w", err)
			}

			repo, closeDB, err := openUserRepo(*dbPath)
			if err != nil {
				return err
			}
			defer closeDB()

			u, err := repo.Create(cmd.Context(), &domain.User{
				Name:         name,
				Email:        email,
				PasswordHash: string(hash),
				Role:         domain.ParseRole(role),
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created user %d (%s, role %s)\n", u.ID, u.Email, u.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&role, "role", "standard", "Role (standard or admin)")
	cmd.Flags().StringVar(&password, "password", "", "Password (prompted when omitted)")
	return cmd
}

func newUserListCmd(dbPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List user accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			repo, closeDB, err := openUserRepo(*dbPath)
			if err != nil {
				return err
			}
			defer closeDB()

			users, total, err := repo.List(cmd.Context(), domain.PageRequest{MaxResults: domain.MaxMaxResults})
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tEMAIL\tNAME\tROLE\tCREATED")
			for _, u := range users {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
					u.ID, u.Email, u.Name, u.Role, u.CreatedAt.Format("2006-01-02 15:04:05"))
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d user(s)\n", total)
			return nil
		},
	}
}

func newUserPromoteCmd(dbPath *string) *cobra.Command {
	var role string

	cmd := &cobra.Command{
		Use:   "promote <email>",
		Short: "Change a user's role",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, closeDB, err := openUserRepo(*dbPath)
			if err != nil {
				return err
			}
			defer closeDB()

			u, err := repo.GetByEmail(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			newRole := domain.ParseRole(role)
			if err := repo.UpdateRole(cmd.Context(), u.ID, newRole); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "user %s is now %s\n", u.Email, newRole)
			return nil
		},
	}

	cmd.Flags().StringVar(&role, "role", "admin", "Role to assign (standard or admin)")
	return cmd
}

// promptPassword reads a password without echo when stdin is a terminal and
// falls back to a plain line read otherwise (pipes, CI).
func promptPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	if term.IsTerminal(int(os.Stdin.Fd())) {
		b, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return string(b), nil
	}
	var line string
	if _, err := fmt.Fscanln(os.Stdin, &line); err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimSpace(line), nil
}
