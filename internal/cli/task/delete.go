package task

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/cofre/internal/cli"
	"github.com/thenoetrevino/cofre/internal/cli/styles"
)

// DeleteCmd returns the task delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a task",
		Long: `Delete a task by ID (requires confirmation unless --force or --quiet).

Deleting an id that does not exist succeeds and changes nothing.
Ids are never reused.`,
		RunE: runDelete,
	}

	cmd.Flags().Int("id", 0, "Task ID (required)")
	cli.MarkRequired(cmd, "id")

	cmd.Flags().Bool("force", false, "Skip confirmation")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	taskID, _ := cmd.Flags().GetInt("id")
	force, _ := cmd.Flags().GetBool("force")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	// Ask for confirmation unless force, quiet, or json mode
	if !force && !quietMode && !jsonOutput {
		fmt.Print(styles.DangerStyle.Render(fmt.Sprintf("Delete task #%d? (y/N): ", taskID)))
		response, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		response = strings.ToLower(strings.TrimSpace(response))
		if response != "y" && response != "yes" {
			fmt.Println("Cancelled")
			return nil
		}
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		formatter.Error("INITIALIZATION_ERROR", err.Error())
		return cli.Exit(cli.ExitError, err)
	}
	defer func() { _ = cliInstance.Close() }()

	if err := cliInstance.App.TaskService.DeleteTask(ctx, taskID); err != nil {
		return formatter.Fail("delete the task", err)
	}

	if quietMode {
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"task_id": taskID,
		})
	}

	formatter.Done(fmt.Sprintf("Task %d deleted", taskID))
	return nil
}
