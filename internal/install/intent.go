package install

// Operation selects what a run does to the target environment.
type Operation string

const (
	// OpInstall installs the clyp package.
	OpInstall Operation = "install"
	// OpUninstall removes the clyp package.
	OpUninstall Operation = "uninstall"
)

// Intent describes one requested run against a chosen interpreter.
type Intent struct {
	// Python is the interpreter executable that owns the environment.
	Python string
	// Operation is install or uninstall.
	Operation Operation
	// Version pins an exact clyp release; empty installs the latest.
	// Uninstalls never use it.
	Version string
}

// Result is the single outcome of a run that got far enough to act on the
// environment. Fatal runs (pip missing and not bootstrappable) end with an
// error instead and never produce a Result.
type Result struct {
	// Success is true when the installed package imports cleanly, or for
	// uninstalls, when the uninstall command was executed.
	Success bool
	// UsedFallback is true when the uv fallback command ran.
	UsedFallback bool
	// Message is the user-facing outcome line.
	Message string
	// EnvDiff shows package changes between before/after pip freeze
	// snapshots of a successful install; empty when unavailable.
	EnvDiff string
}
