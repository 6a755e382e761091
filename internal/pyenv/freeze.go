package pyenv

import "context"

// Snapshot returns the environment's installed packages as reported by
// `pip freeze`. Snapshot failures yield an empty listing; the delta report
// is best effort and never blocks an install.
func Snapshot(ctx context.Context, runner Runner, python string) string {
	out, err := runner.Output(ctx, python, "-m", "pip", "freeze")
	if err != nil {
		return ""
	}
	return string(out)
}
