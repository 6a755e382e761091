package pyenv

import (
	"context"
	"os/exec"
	"strings"
	"sync"
)

// fakeRunner scripts interpreter behavior per command line. Keys are the
// full command joined with spaces, e.g. "/usr/bin/python3 -m pip --version".
type fakeRunner struct {
	mu    sync.Mutex
	calls []string

	// lookup maps launch names to resolved paths; absent names are not on PATH.
	lookup map[string]string
	// stdout and combined map command lines to captured output.
	stdout   map[string]string
	combined map[string]string
	// fail maps command lines to errors.
	fail map[string]error
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{
		lookup:   map[string]string{},
		stdout:   map[string]string{},
		combined: map[string]string{},
		fail:     map[string]error{},
	}
}

func key(name string, args []string) string {
	return strings.Join(append([]string{name}, args...), " ")
}

func (f *fakeRunner) record(name string, args []string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	k := key(name, args)
	f.calls = append(f.calls, k)
	return k
}

func (f *fakeRunner) recorded() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) error {
	return f.fail[f.record(name, args)]
}

func (f *fakeRunner) Output(_ context.Context, name string, args ...string) ([]byte, error) {
	k := f.record(name, args)
	return []byte(f.stdout[k]), f.fail[k]
}

func (f *fakeRunner) CombinedOutput(_ context.Context, name string, args ...string) ([]byte, error) {
	k := f.record(name, args)
	if out, ok := f.combined[k]; ok {
		return []byte(out), f.fail[k]
	}
	return []byte(f.stdout[k]), f.fail[k]
}

func (f *fakeRunner) LookPath(name string) (string, error) {
	if path, ok := f.lookup[name]; ok {
		return path, nil
	}
	return "", &exec.Error{Name: name, Err: exec.ErrNotFound}
}
