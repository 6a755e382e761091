package pyenv

import "context"

// UvAvailable reports whether uv is installed in the interpreter's
// environment. uv is only consulted as a fallback inside virtual envs.
func UvAvailable(ctx context.Context, runner Runner, python string) bool {
	_, err := runner.Output(ctx, python, "-m", "uv", "--version")
	return err == nil
}
