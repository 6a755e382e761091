package install

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/clyp-lang/clyp-install/internal/messages"
)

// acquireEnvLock takes an exclusive advisory lock keyed on the interpreter
// path so concurrent installer processes cannot interleave pip operations on
// one environment. The returned func releases the lock.
func acquireEnvLock(dir string, python string) (func(), error) {
	if dir == "" {
		dir = filepath.Join(xdg.StateHome, "clyp-install", "locks")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf(messages.AcquireEnvLockFmt, python, err)
	}
	sum := sha256.Sum256([]byte(python))
	path := filepath.Join(dir, hex.EncodeToString(sum[:8])+".lock")

	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return nil, fmt.Errorf(messages.EnvLockOpenFmt, path, err)
	}
	if err := lockFile(file); err != nil {
		_ = file.Close()
		return nil, fmt.Errorf(messages.AcquireEnvLockFmt, python, err)
	}
	return func() {
		_ = unlockFile(file)
		_ = file.Close()
	}, nil
}
