package cli

import "fmt"

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Storage failures (database file, keyring) and anything
	// that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags or unknown arguments.
	ExitUsage = 2

	// ExitNotFound indicates a requested value was not found.
	// Use for: secret get on a key that holds nothing. This is a normal
	// outcome reported for scripting, not a failure of the store.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: Unreadable stdin input.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Empty keys, values, titles, descriptions, or non-positive ids.
	ExitValidation = 5
)

// CodedError carries the process exit code for a command that has already
// reported its outcome to the user.
type CodedError struct {
	Code int
	Err  error
}

func (e *CodedError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *CodedError) Unwrap() error {
	return e.Err
}

// Exit wraps err with an exit code
func Exit(code int, err error) error {
	return &CodedError{Code: code, Err: err}
}
