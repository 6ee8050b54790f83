package task

import (
	"github.com/spf13/cobra"
)

// TaskCmd returns the task parent command
func TaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
		Long: `Add, list, and delete tasks in the local task database.

Tasks cannot be edited once created; delete and add again instead.`,
	}

	cmd.AddCommand(AddCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}
