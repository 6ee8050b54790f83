package cli

import (
	"encoding/json"
	"errors"
	"testing"

	clipkg "github.com/thenoetrevino/cofre/internal/cli"
)

// ParseJSON parses JSON output from CLI commands
func ParseJSON(t *testing.T, output string) map[string]interface{} {
	t.Helper()

	var result map[string]interface{}
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("Failed to parse JSON output: %v\nOutput: %s", err, output)
	}

	return result
}

// ExitCode extracts the exit code carried by a command error, 0 for nil
func ExitCode(t *testing.T, err error) int {
	t.Helper()
	if err == nil {
		return clipkg.ExitSuccess
	}
	var codedErr *clipkg.CodedError
	if !errors.As(err, &codedErr) {
		t.Fatalf("Expected *cli.CodedError, got %T: %v", err, err)
	}
	return codedErr.Code
}
