//go:build windows

package install

import "os"

// Advisory file locks are not taken on Windows; the lock file still marks
// the environment as in use for inspection.
func lockFile(_ *os.File) error {
	return nil
}

func unlockFile(_ *os.File) error {
	return nil
}
