package pyenv

import "context"

// PipAvailable reports whether the interpreter can run pip as a module.
func PipAvailable(ctx context.Context, runner Runner, python string) bool {
	_, err := runner.Output(ctx, python, "-m", "pip", "--version")
	return err == nil
}

// EnsurePip bootstraps pip via ensurepip, streaming its output to the user.
// A non-nil error means the interpreter cannot provision pip at all.
func EnsurePip(ctx context.Context, runner Runner, python string) error {
	return runner.Run(ctx, python, "-m", "ensurepip", "--upgrade")
}

// CanImport reports whether the interpreter can import the named module.
// This is the installer's ground truth for a working installation.
func CanImport(ctx context.Context, runner Runner, python string, module string) bool {
	_, err := runner.Output(ctx, python, "-c", "import "+module)
	return err == nil
}
