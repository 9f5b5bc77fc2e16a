package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newAccountsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Inspect admin accounts",
	}
	cmd.AddCommand(newAccountsListCmd())
	return cmd
}

func newAccountsListCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every account",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			rt, err := openRuntime(ctx)
			if err != nil {
				return err
			}
			defer rt.Close(ctx)

			accounts, err := rt.repos.Accounts.List(ctx)
			if err != nil {
				return fmt.Errorf("list accounts: %w", err)
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(accounts)
			}

			if len(accounts) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No accounts. Run 'studio bootstrap' to create the super-admin.")
				return nil
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-26s %-32s %-12s %s\n", "ID", "EMAIL", "ROLE", "CREATED")
			fmt.Fprintf(out, "%-26s %-32s %-12s %s\n", "--", "-----", "----", "-------")
			for _, a := range accounts {
				fmt.Fprintf(out, "%-26s %-32s %-12s %s\n", a.ID, a.Email, a.Role, a.CreatedAt.Format("2006-01-02 15:04"))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
