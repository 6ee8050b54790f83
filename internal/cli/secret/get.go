package secret

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/cofre/internal/cli"
	"github.com/thenoetrevino/cofre/internal/cli/styles"
)

// GetCmd returns the secret get subcommand
func GetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Read the value stored under a key",
		Long: `Read the value stored under a key.

A key with no value is not an error: an informational message is printed
and the command exits with code 3 so scripts can tell the cases apart.

Examples:
  cofre secret get --key=api-token

  # Only the value, for capture
  TOKEN=$(cofre secret get --key=api-token --quiet)
`,
		RunE: runGet,
	}

	cmd.Flags().String("key", "", "Key to read (required)")
	cli.MarkRequired(cmd, "key")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runGet(cmd *cobra.Command, args []string) error {
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

	value, found, err := cliInstance.App.SecretService.GetSecret(ctx, key)
	if err != nil {
		return formatter.Fail("read the value", err)
	}

	if jsonOutput {
		data := map[string]interface{}{
			"key":   key,
			"found": found,
		}
		if found {
			data["value"] = value
		}
		if err := json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"data":    data,
		}); err != nil {
			return err
		}
	} else if found {
		if quietMode {
			fmt.Println(value)
		} else {
			fmt.Printf("%s %s\n", styles.LabelStyle.Render("Value:"), styles.ValueStyle.Render(value))
		}
	} else {
		formatter.Info(fmt.Sprintf("No value stored under key: %s", key))
	}

	if !found {
		return cli.Exit(cli.ExitNotFound, nil)
	}
	return nil
}
