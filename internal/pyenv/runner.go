// Package pyenv discovers Python interpreters and probes their packaging
// capabilities.
package pyenv

import (
	"bytes"
	"context"
	"os"
	"os/exec"
)

// Runner executes interpreter subprocesses. The package-local interface keeps
// discovery and probe logic testable without spawning real interpreters.
type Runner interface {
	// Run executes name with args attached to the installer's own stdio,
	// so the user sees the command's output live.
	Run(ctx context.Context, name string, args ...string) error
	// Output executes name with args and returns its stdout.
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
	// CombinedOutput executes name with args and returns stdout and
	// stderr interleaved. Interpreters print version banners to stderr.
	CombinedOutput(ctx context.Context, name string, args ...string) ([]byte, error)
	// LookPath resolves an executable name the way exec.LookPath does.
	LookPath(name string) (string, error)
}

// ExecRunner implements Runner with os/exec.
type ExecRunner struct{}

var execCommandContext = exec.CommandContext

// Run executes the command wired to the process stdio.
func (ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	cmd := execCommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// Output executes the command and returns its stdout.
func (ExecRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := execCommandContext(ctx, name, args...)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	err := cmd.Run()
	return stdout.Bytes(), err
}

// CombinedOutput executes the command and returns stdout and stderr together.
func (ExecRunner) CombinedOutput(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := execCommandContext(ctx, name, args...)
	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf
	err := cmd.Run()
	return buf.Bytes(), err
}

// LookPath wraps exec.LookPath.
func (ExecRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}
