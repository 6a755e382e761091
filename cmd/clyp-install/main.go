package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/clyp-lang/clyp-install/internal/messages"
)

var executeFunc = execute

// Version, Commit, and BuildDate are overridden at build time.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

func main() {
	runMain(os.Args, os.Stdout, os.Stderr, os.Exit)
}

// SilentExitError reports an exit code without emitting error output. The
// command has already printed whatever the user needs to see.
type SilentExitError struct {
	Code int
}

func (e SilentExitError) Error() string {
	return fmt.Sprintf("exit %d", e.Code)
}

// UsageError marks a command-line parse failure so it exits with code 2.
type UsageError struct {
	Err error
}

func (e UsageError) Error() string {
	return e.Err.Error()
}

func (e UsageError) Unwrap() error {
	return e.Err
}

// execute runs the CLI command with the provided args and output writers.
func execute(args []string, stdout io.Writer, stderr io.Writer) error {
	cmd := newRootCmd()
	cliArgs := []string{}
	if len(args) > 1 {
		cliArgs = args[1:]
	}
	cmd.SetArgs(cliArgs)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd.Execute()
}

// runMain executes the CLI and maps errors onto the exit-code contract:
// 0 success or clean user exit, 1 failures, 2 usage errors.
func runMain(args []string, stdout io.Writer, stderr io.Writer, exit func(int)) {
	if err := executeFunc(args, stdout, stderr); err != nil {
		var silent *SilentExitError
		if errors.As(err, &silent) {
			exit(silent.Code)
			return
		}
		var usage *UsageError
		if errors.As(err, &usage) {
			_, _ = fmt.Fprintln(stderr, usage.Err)
			_, _ = fmt.Fprintln(stderr, messages.RootUsageHint)
			exit(2)
			return
		}
		_, _ = fmt.Fprintln(stderr, err)
		exit(1)
	}
}
