package messages

// Wizard page titles, prompts, and validation text.
const (
	WizardTitle = "Clyp Installer"

	WizardLicenseTitle   = "License Agreement"
	WizardLicensePrompt  = "Do you accept the license terms?"
	WizardLicenseHint    = "You must accept the license to install Clyp."
	WizardLicenseRefused = "License not accepted. Exiting without changes."

	WizardPythonPrompt      = "Select the Python installation to use"
	WizardPythonHint        = "Interpreters discovered on your PATH."
	WizardOldPythonSuffix   = " [outdated]"
	WizardVersionPrompt     = "Choose a version of Clyp to install"
	WizardVersionLatest     = "Latest (recommended)"
	WizardVersionSpecify    = "Specify version..."
	WizardVersionInputTitle = "Enter the Clyp version (e.g. 1.2.3)"
	WizardConfirmInstallFmt = "Install Clyp using %s?"
	WizardConfirmRemoveFmt  = "Uninstall Clyp from %s?"

	WizardInstallingTitle = "Installing"
	WizardFinishedTitle   = "Finished"
	WizardFinishedHint    = "Press any key to exit."

	WizardExitWithoutChanges = "Exited without making changes."

	WizardPythonRequired  = "a Python interpreter must be selected"
	WizardVersionRequired = "a version is required when specifying one"

	WizardRunFailedFmt = "install wizard failed: %w"
	WizardUIFailedFmt  = "wizard prompt failed: %w"
)
