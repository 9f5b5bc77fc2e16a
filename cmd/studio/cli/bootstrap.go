package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newBootstrapCmd() *cobra.Command {
	var (
		email    string
		password string
	)

	cmd := &cobra.Command{
		Use:   "bootstrap",
		Short: "Create the first super-admin account",
		Long: `Create the super-admin account on an empty installation. Fails once any
account exists; further accounts are created through the admin API.`,
		Example: `  studio bootstrap --email owner@studio.com --password secret123
  studio bootstrap --email owner@studio.com  # prompts for password`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				pw, err := promptPassword()
				if err != nil {
					return err
				}
				password = pw
			}

			ctx := cmd.Context()
			rt, err := openRuntime(ctx)
			if err != nil {
				return err
			}
			defer rt.Close(ctx)

			res, err := rt.newAuthService(nil, nil).Bootstrap(ctx, email, password)
			if err != nil {
				return fmt.Errorf("bootstrap: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Super-admin %s created (id %s)\n", res.Account.Email, res.Account.ID)
			fmt.Fprintf(cmd.OutOrStdout(), "Token: %s\n", res.Token)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Super-admin email address (required)")
	cmd.Flags().StringVar(&password, "password", "", "Super-admin password (prompted if omitted)")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func promptPassword() (string, error) {
	fmt.Print("Password: ")
	pw, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	fmt.Println()

	fmt.Print("Confirm password: ")
	confirm, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return "", fmt.Errorf("failed to read confirmation: %w", err)
	}
	fmt.Println()

	if string(pw) != string(confirm) {
		return "", fmt.Errorf("passwords do not match")
	}
	return string(pw), nil
}
