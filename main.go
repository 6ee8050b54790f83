package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/thenoetrevino/cofre/cmd"
	"github.com/thenoetrevino/cofre/internal/cli"
)

func main() {
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)

	err := cmd.Execute(ctx)
	cancel()

	os.Exit(exitCode(err))
}

// exitCode maps a command error to a process exit code.
// Commands that return *cli.CodedError have already told the user what happened.
func exitCode(err error) int {
	if err == nil {
		return cli.ExitSuccess
	}

	var codedErr *cli.CodedError
	if errors.As(err, &codedErr) {
		return codedErr.Code
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return cli.ExitUsage
}
