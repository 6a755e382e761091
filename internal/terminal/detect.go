// Package terminal reports whether the installer can prompt the user.
package terminal

import (
	"os"

	"golang.org/x/term"
)

// IsInteractive reports whether stdin and stdout are both terminals.
// The wizard and console prompts refuse to start when this is false;
// silent mode is the non-interactive path.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
