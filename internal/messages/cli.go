package messages

// CLI messages for the root command and its flags.
const (
	// RootUse is the CLI command name.
	RootUse = "clyp-install"
	// RootShort is the short description for the root command.
	RootShort = "Install or uninstall the Clyp programming language"
	RootLong  = "Discovers Python interpreters on this machine and installs the clyp package\ninto the one you pick, with automatic pip bootstrapping and a uv fallback\ninside virtual environments."

	RootFlagPython    = "Path to the Python executable to use (skips the interpreter prompt)"
	RootFlagVersion   = "Exact Clyp version to install (e.g. 1.2.3); default is the latest release"
	RootFlagUninstall = "Uninstall Clyp instead of installing it"
	RootFlagSilent    = "Run without prompts using the first discovered interpreter and default choices"
	RootFlagGUI       = "Force the full-screen wizard"
	RootFlagConsole   = "Force plain console prompts"
	RootFlagDebug     = "Enable debug logging"
	RootFlagNoColor   = "Disable colored output"

	RootRequiresTerminal = "clyp-install prompts require an interactive terminal; re-run with --silent (or pass --python) to install without prompts"

	RootUnexpectedArgsFmt = "unexpected argument: %s"
	RootUsageHint         = "Run 'clyp-install --help' for usage."

	PythonNotFoundFmt = "Specified Python executable not found: %s"

	NoPythonFound        = "No Python installations found on your system."
	NoPythonFoundAdvice  = "Please install Python from https://www.python.org/downloads/"
	NoPythonSelected     = "No Python installation selected. Exiting."
	OldPythonWarningFmt  = "Warning: %s is older than Python %s; Clyp may not work correctly.\n"
	LoadSettingsErrFmt   = "load settings: %w"
	SetupLoggingErrFmt   = "set up logging: %w"
	DiscoverPythonErrFmt = "discover Python interpreters: %w"
)
