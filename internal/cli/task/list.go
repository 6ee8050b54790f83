package task

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/cofre/internal/cli"
	"github.com/thenoetrevino/cofre/internal/cli/styles"
	"github.com/thenoetrevino/cofre/internal/models"
)

// ListCmd returns the task list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all tasks",
		Long: `List every task in the order it was added.

Descriptions are rendered as markdown in human-readable mode.
--quiet prints one id per line.`,
		RunE: runList,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		formatter.Error("INITIALIZATION_ERROR", err.Error())
		return cli.Exit(cli.ExitError, err)
	}
	defer func() { _ = cliInstance.Close() }()

	tasks, err := cliInstance.App.TaskService.ListTasks(ctx)
	if err != nil {
		return formatter.Fail("load the tasks", err)
	}

	if quietMode {
		for _, task := range tasks {
			if err := formatter.Success(task); err != nil {
				return err
			}
		}
		return nil
	}

	if jsonOutput {
		return formatter.Success(tasks)
	}

	if len(tasks) == 0 {
		formatter.Info("No tasks yet. Add one with 'cofre task add'.")
		return nil
	}

	fmt.Print(renderTasks(tasks))
	return nil
}

// renderTasks renders each task as a card with its description as markdown
func renderTasks(tasks []*models.Task) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(styles.CardWidth-4),
	)
	if err != nil {
		slog.Debug("markdown renderer unavailable", "error", err)
		renderer = nil
	}

	var b strings.Builder
	for _, task := range tasks {
		header := styles.TitleStyle.Render(fmt.Sprintf("#%d %s", task.ID, task.Title))
		body := renderDescription(renderer, task.Description)
		b.WriteString(styles.CardStyle.Render(header + "\n" + body))
		b.WriteString("\n")
	}
	return b.String()
}

func renderDescription(renderer *glamour.TermRenderer, description string) string {
	if renderer == nil {
		return styles.ValueStyle.Render(description)
	}
	out, err := renderer.Render(description)
	if err != nil {
		slog.Debug("markdown render failed", "error", err)
		return styles.ValueStyle.Render(description)
	}
	return strings.Trim(out, "\n")
}
