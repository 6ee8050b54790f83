package secret

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/cofre/internal/cli"
)

// SetCmd returns the secret set subcommand
func SetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Store a value under a key",
		Long: `Store a value under a key, replacing any previous value.

Examples:
  cofre secret set --key=api-token --value=abc123

  # Read the value from stdin so it stays out of shell history
  pass show api | cofre secret set --key=api-token --value=-
`,
		RunE: runSet,
	}

	cmd.Flags().String("key", "", "Key to store under (required)")
	cmd.Flags().String("value", "", "Value to store, or - for stdin (required)")
	cli.MarkRequired(cmd, "key", "value")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runSet(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	key, _ := cmd.Flags().GetString("key")
	value, _ := cmd.Flags().GetString("value")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	if value == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			formatter.Error("STDIN_READ_ERROR", err.Error())
			return cli.Exit(cli.ExitDataErr, err)
		}
		value = strings.TrimRight(string(data), "\r\n")
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		formatter.Error("INITIALIZATION_ERROR", err.Error())
		return cli.Exit(cli.ExitError, err)
	}
	defer func() { _ = cliInstance.Close() }()

	if err := cliInstance.App.SecretService.SetSecret(ctx, key, value); err != nil {
		return formatter.Fail("save the value", err)
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

	formatter.Done(fmt.Sprintf("Value stored under key: %s", key))
	return nil
}
