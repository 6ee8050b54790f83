package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/cofre/internal/cli/secret"
	"github.com/thenoetrevino/cofre/internal/cli/task"
)

var rootCmd = &cobra.Command{
	Use:   "cofre",
	Short: "cofre - a keyring-backed value store and a local task list",
	Long: `cofre keeps two independent things on this machine:

  secret  single string values stored in the platform keyring
  task    a list of tasks in a local SQLite database

The two stores never touch each other.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(secret.SecretCmd())
	rootCmd.AddCommand(task.TaskCmd())
	rootCmd.AddCommand(ConfigCmd())
}

func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
