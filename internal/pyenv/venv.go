package pyenv

import (
	"context"
	"strings"
)

// venvProbe covers modern venvs (base_prefix) and legacy virtualenv
// (real_prefix) in one expression.
const venvProbe = "import sys; print(hasattr(sys, 'real_prefix') or (hasattr(sys, 'base_prefix') and sys.base_prefix != sys.prefix))"

// InVirtualEnv reports whether the interpreter runs inside a virtual
// environment. A probe that fails to run claims no isolation.
func InVirtualEnv(ctx context.Context, runner Runner, python string) bool {
	out, err := runner.Output(ctx, python, "-c", venvProbe)
	if err != nil {
		return false
	}
	return strings.TrimSpace(string(out)) == "True"
}
