package cli

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func TestAddOutputFlags(t *testing.T) {
	cmd := &cobra.Command{Use: "x"}
	AddOutputFlags(cmd)

	for _, name := range []string{"json", "quiet"} {
		if cmd.Flags().Lookup(name) == nil {
			t.Errorf("Expected --%s to be registered", name)
		}
	}
}

func TestMarkRequired(t *testing.T) {
	cmd := &cobra.Command{Use: "x", RunE: func(*cobra.Command, []string) error { return nil }}
	cmd.Flags().String("key", "", "")
	MarkRequired(cmd, "key")

	cmd.SetArgs([]string{})
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	err := cmd.Execute()
	if err == nil || !strings.Contains(err.Error(), "key") {
		t.Errorf("Expected missing required flag error, got %v", err)
	}
}

func TestMarkRequired_UnknownFlagLogsInsteadOfPanicking(t *testing.T) {
	var buf bytes.Buffer
	oldOutput := log.Writer()
	log.SetOutput(&buf)
	defer log.SetOutput(oldOutput)

	cmd := &cobra.Command{Use: "x"}
	MarkRequired(cmd, "missing")

	if !strings.Contains(buf.String(), "Error marking flag as required") {
		t.Errorf("Expected a log line, got '%s'", buf.String())
	}
}
