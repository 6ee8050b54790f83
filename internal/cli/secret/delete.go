package secret

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/cofre/internal/cli"
)

// DeleteCmd returns the secret delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Remove the value stored under a key",
		Long:  "Remove the value stored under a key. Removing a key that holds nothing succeeds.",
		RunE:  runDelete,
	}

	cmd.Flags().String("key", "", "Key to remove (required)")
	cli.MarkRequired(cmd, "key")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	key, _ := cmd.Flags().GetString("key")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		formatter.Error("INITIALIZATION_ERROR", err.Error())
		return cli.Exit(cli.ExitError, err)
	}
	defer func() { _ = cliInstance.Close() }()

	if err := cliInstance.App.SecretService.DeleteSecret(ctx, key); err != nil {
		return formatter.Fail("delete the value", err)
	}

	if quietMode {
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"key":     key,
		})
	}

	formatter.Done(fmt.Sprintf("Key %s deleted", key))
	return nil
}
