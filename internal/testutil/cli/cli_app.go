package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/cofre/internal/app"
	clipkg "github.com/thenoetrevino/cofre/internal/cli"
	"github.com/thenoetrevino/cofre/internal/testutil"
)

// ExecuteCLICommand executes a CLI command with a test app instance
// This injects the app through the command context so commands never
// touch the user's config, database, or keyring
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()
	return ExecuteCLICommandWithInput(t, testApp, cmd, args, "")
}

// ExecuteCLICommandWithInput is ExecuteCLICommand with stdin set to input
func ExecuteCLICommandWithInput(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string, input string) (string, error) {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil - SetupCLITest must be called first")
	}

	ctx := clipkg.WithApp(context.Background(), testApp)

	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(input))
	cmd.SetContext(ctx)

	// Disable usage output on error for cleaner test output
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	var executeErr error
	output := testutil.CaptureOutput(t, func() {
		executeErr = cmd.ExecuteContext(ctx)
	})

	return output, executeErr
}
