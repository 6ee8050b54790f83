package cli

import (
	"log"

	"github.com/spf13/cobra"
)

// AddOutputFlags registers the agent-friendly flags every command takes
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")
}

// MarkRequired marks each named flag as required
func MarkRequired(cmd *cobra.Command, names ...string) {
	for _, name := range names {
		if err := cmd.MarkFlagRequired(name); err != nil {
			log.Printf("Error marking flag as required: %v", err)
		}
	}
}
