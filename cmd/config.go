package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/cofre/internal/cli"
	"github.com/thenoetrevino/cofre/internal/config"
)

// ConfigCmd returns the config parent command
func ConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the config file",
	}

	cmd.AddCommand(configPathCmd())
	cmd.AddCommand(configInitCmd())

	return cmd
}

func configPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print where the config file is read from",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.Path()
			if err != nil {
				return cli.Exit(cli.ExitError, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}

func configInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			force, _ := cmd.Flags().GetBool("force")

			path, err := config.Path()
			if err != nil {
				return cli.Exit(cli.ExitError, err)
			}

			if _, err := os.Stat(path); err == nil && !force {
				return cli.Exit(cli.ExitUsage, fmt.Errorf("config already exists at %s (use --force to overwrite)", path))
			}

			if err := config.Default().Save(); err != nil {
				return cli.Exit(cli.ExitError, fmt.Errorf("failed to write config: %w", err))
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote default config to %s\n", path)
			return nil
		},
	}

	cmd.Flags().Bool("force", false, "Overwrite an existing config file")

	return cmd
}
