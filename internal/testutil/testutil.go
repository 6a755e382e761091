package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// WriteStub writes an executable shell stub that exits successfully.
// t is the active test; dir is the output directory; name is the executable file name.
func WriteStub(t *testing.T, dir string, name string) string {
	t.Helper()
	return WriteStubWithExit(t, dir, name, 0)
}

// WriteStubWithExit writes an executable shell stub that exits with the provided code.
// t is the active test; dir is the output directory; name is the executable file name.
func WriteStubWithExit(t *testing.T, dir string, name string, exitCode int) string {
	t.Helper()
	return WriteScriptStub(t, dir, name, fmt.Sprintf("exit %d", exitCode))
}

// WriteScriptStub writes an executable stub whose body is the provided shell script.
// t is the active test; dir is the output directory; name is the executable file name.
func WriteScriptStub(t *testing.T, dir string, name string, script string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	content := []byte("#!/bin/sh\n" + script + "\n")
	if err := os.WriteFile(path, content, 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	return path
}

// WritePythonStub writes a stub that answers --version with the given banner
// on stderr, the way CPython 2 and early 3.x releases did, and exits zero for
// every other invocation.
// t is the active test; dir is the output directory; name is the executable
// file name; banner is the version line to print.
func WritePythonStub(t *testing.T, dir string, name string, banner string) string {
	t.Helper()
	script := fmt.Sprintf("if [ \"$1\" = \"--version\" ]; then echo %q >&2; fi\nexit 0", banner)
	return WriteScriptStub(t, dir, name, script)
}

// PrependPath puts dir at the front of PATH for the duration of the test.
// t is the active test; dir is the directory holding stub executables.
func PrependPath(t *testing.T, dir string) {
	t.Helper()
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
}
