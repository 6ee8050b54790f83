package task

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/cofre/internal/cli"
	taskservice "github.com/thenoetrevino/cofre/internal/services/task"
)

// AddCmd returns the task add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new task",
		Long: `Add a new task. The store assigns the id.

Examples:
  cofre task add --title="Buy milk" --description="2L whole milk"

  # JSON output for agents
  cofre task add --title="Buy milk" --description="2L whole milk" --json

  # Quiet mode for bash capture
  TASK_ID=$(cofre task add --title="Buy milk" --description="2L whole milk" --quiet)

  # Description from stdin (markdown is rendered by 'task list')
  cofre task add --title="Release notes" --description=- < notes.md
`,
		RunE: runAdd,
	}

	cmd.Flags().String("title", "", "Task title (required)")
	cli.MarkRequired(cmd, "title")

	cmd.Flags().String("description", "", "Task description, or - for stdin (required)")
	cli.MarkRequired(cmd, "description")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	taskTitle, _ := cmd.Flags().GetString("title")
	taskDescription, _ := cmd.Flags().GetString("description")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	// Handle description from stdin
	description := taskDescription
	if description == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			formatter.Error("STDIN_READ_ERROR", err.Error())
			return cli.Exit(cli.ExitDataErr, err)
		}
		description = string(data)
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		formatter.Error("INITIALIZATION_ERROR", err.Error())
		return cli.Exit(cli.ExitError, err)
	}
	defer func() { _ = cliInstance.Close() }()

	task, err := cliInstance.App.TaskService.CreateTask(ctx, taskservice.CreateTaskRequest{
		Title:       taskTitle,
		Description: description,
	})
	if err != nil {
		return formatter.Fail("add the task", err)
	}

	if quietMode {
		return formatter.Success(task)
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"task":    task,
		})
	}

	formatter.Done(fmt.Sprintf("Task '%s' added (ID: %d)", task.Title, task.ID))
	return nil
}
