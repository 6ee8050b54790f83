package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/thenoetrevino/cofre/internal/cli/styles"
	"github.com/thenoetrevino/cofre/internal/models"
	secretservice "github.com/thenoetrevino/cofre/internal/services/secret"
	taskservice "github.com/thenoetrevino/cofre/internal/services/task"
)

// validationErrors are shown to the user verbatim
var validationErrors = []error{
	taskservice.ErrEmptyTitle,
	taskservice.ErrTitleTooLong,
	taskservice.ErrEmptyDescription,
	taskservice.ErrInvalidTaskID,
	secretservice.ErrEmptyKey,
	secretservice.ErrEmptyValue,
}

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool
}

// Success outputs a successful result in JSON or quiet mode.
// Quiet mode prints only the ID when data has one. Human mode prints nothing;
// commands render their own confirmation.
func (f *OutputFormatter) Success(data interface{}) error {
	if f.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"data":    data,
		})
	}

	if f.Quiet {
		if idGetter, ok := data.(interface{ GetID() int }); ok {
			fmt.Printf("%d\n", idGetter.GetID())
		}
	}
	return nil
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]interface{}{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": false,
			"error":   errData,
		})
	}

	// Human-readable error
	fmt.Fprintf(os.Stderr, "❌ Error: %s\n", message)
	if suggestion != "" {
		fmt.Fprintf(os.Stderr, "💡 Suggestion: %s\n", suggestion)
	}
	return nil
}

// Info prints an informational line in human mode only
func (f *OutputFormatter) Info(message string) {
	if f.JSON || f.Quiet {
		return
	}
	fmt.Println(styles.InfoStyle.Render("ℹ " + message))
}

// Done prints a confirmation line in human mode only
func (f *OutputFormatter) Done(message string) {
	if f.JSON || f.Quiet {
		return
	}
	fmt.Println(styles.SuccessStyle.Render("✓ " + message))
}

// Fail reports err and returns the *CodedError the command should return.
// Storage failures get a generic notice; the raw error only goes to the log.
func (f *OutputFormatter) Fail(action string, err error) error {
	for _, v := range validationErrors {
		if errors.Is(err, v) {
			f.report("VALIDATION_ERROR", v.Error(), "")
			return Exit(ExitValidation, err)
		}
	}

	if models.IsStorageError(err) {
		slog.Error("storage failure", "action", action, "error", err)
		f.report("STORAGE_ERROR", fmt.Sprintf("could not %s", action),
			"the underlying store rejected the operation; details are in the log file")
		return Exit(ExitError, err)
	}

	f.report("ERROR", err.Error(), "")
	return Exit(ExitError, err)
}

func (f *OutputFormatter) report(code, message, suggestion string) {
	if err := f.ErrorWithSuggestion(code, message, suggestion); err != nil {
		slog.Error("failed to format error message", "error", err)
	}
}
