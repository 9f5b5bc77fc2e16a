package cli

import (
	"github.com/spf13/cobra"
)

// appVersion is reported by /health and the version command.
var appVersion string

// Execute creates the root command tree and runs it.
func Execute(version, commit, date string) error {
	appVersion = version
	return newRootCmd(version, commit, date).Execute()
}

func newRootCmd(version, commit, date string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "studio",
		Short: "Content API for the studio website",
		Long: `studio serves the public content of the studio website and the admin API
behind it. Configuration is read from the environment (JWT_SECRET, MONGO_URI,
REDIS_ADDR, ...).`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newBootstrapCmd())
	cmd.AddCommand(newAccountsCmd())
	cmd.AddCommand(newVersionCmd(version, commit, date))

	return cmd
}
