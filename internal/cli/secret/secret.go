package secret

import (
	"github.com/spf13/cobra"
)

// SecretCmd returns the secret parent command
func SecretCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "secret",
		Short: "Manage values in the secure store",
		Long: `Store, read, and remove single string values in the platform keyring.

Each key holds exactly one value. Setting a key again replaces its value.`,
	}

	cmd.AddCommand(SetCmd())
	cmd.AddCommand(GetCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}
