package messages

// Install run progress and outcome text.
const (
	PipMissingFmt       = "pip is not installed for %s."
	PipBootstrapping    = "Attempting to install pip using ensurepip..."
	PipBootstrapped     = "pip installed successfully!"
	PipBootstrapFailed  = "Failed to install pip automatically. Please install pip manually for this Python interpreter."
	PipRequired         = "pip is required to install or uninstall Clyp. Exiting."
	InstallingFmt       = "Installing Clyp with %s..."
	UninstallingFmt     = "Uninstalling Clyp from %s..."
	VerifyingInstall    = "Checking the installation..."
	FallbackWithUv      = "pip install failed. Trying to install with uv..."
	InstallSucceeded    = "Clyp is now installed! Restart your shell to use it."
	InstallFailed       = "Clyp installation failed. Please check the output above for errors."
	UninstallSucceeded  = "Clyp has been uninstalled!"
	EnvChangesHeader    = "Environment changes:"
	AcquireEnvLockFmt   = "acquire environment lock for %s: %w"
	EnvLockOpenFmt      = "open lock file %s: %w"
	EnvLockTimeoutFmt   = "timed out waiting for environment lock after %s"
	RunAlreadyStarted   = "install run already started"
	IntentPythonMissing = "intent is missing a Python interpreter path"
)
