package install

import (
	"context"
	"strings"
	"sync"
)

// stubRunner scripts subprocess behavior through injectable funcs keyed by
// the full command line, and records every command it was asked to run.
type stubRunner struct {
	mu    sync.Mutex
	calls []string

	// RunFunc handles attached commands (pip install/uninstall, ensurepip,
	// uv). Nil means success.
	RunFunc func(key string) error
	// OutputFunc handles captured commands (probes, freeze, verify).
	// Nil means success with empty output.
	OutputFunc func(key string) (string, error)
}

func (s *stubRunner) record(name string, args []string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := strings.Join(append([]string{name}, args...), " ")
	s.calls = append(s.calls, key)
	return key
}

func (s *stubRunner) recorded() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.calls...)
}

func (s *stubRunner) Run(_ context.Context, name string, args ...string) error {
	key := s.record(name, args)
	if s.RunFunc == nil {
		return nil
	}
	return s.RunFunc(key)
}

func (s *stubRunner) Output(_ context.Context, name string, args ...string) ([]byte, error) {
	key := s.record(name, args)
	if s.OutputFunc == nil {
		return nil, nil
	}
	out, err := s.OutputFunc(key)
	return []byte(out), err
}

func (s *stubRunner) CombinedOutput(ctx context.Context, name string, args ...string) ([]byte, error) {
	return s.Output(ctx, name, args...)
}

func (s *stubRunner) LookPath(name string) (string, error) {
	return name, nil
}
