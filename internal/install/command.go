package install

import "strings"

// packageName is the PyPI distribution and import name being managed.
const packageName = "clyp"

// requirement renders the pip requirement string, pinned when a version was
// chosen. The pin appears here and nowhere else.
func requirement(version string) string {
	version = strings.TrimSpace(version)
	if version == "" {
		return packageName
	}
	return packageName + "==" + version
}

// pipArgs returns the interpreter arguments for the primary pip command.
// Uninstall commands never carry a version pin.
func pipArgs(intent Intent) []string {
	if intent.Operation == OpUninstall {
		return []string{"-m", "pip", "uninstall", "-y", packageName}
	}
	return []string{"-m", "pip", "install", requirement(intent.Version)}
}

// uvArgs returns the interpreter arguments for the uv fallback install.
func uvArgs(intent Intent) []string {
	return []string{"-m", "uv", "pip", "install", requirement(intent.Version)}
}
