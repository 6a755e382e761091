package pyenv

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"golang.org/x/sync/errgroup"

	"github.com/clyp-lang/clyp-install/internal/logging"
	"github.com/clyp-lang/clyp-install/internal/messages"
)

// ErrNoInterpreter is returned when no usable Python interpreter answers the
// discovery probes.
var ErrNoInterpreter = errors.New("no Python interpreter found")

// Candidate is a Python interpreter that answered the version probe.
type Candidate struct {
	// Path is the resolved executable path.
	Path string
	// Version is the banner reported by `Path --version`, e.g. "Python 3.12.1".
	Version string
}

// Label renders the candidate the way the interpreter picker shows it.
func (c Candidate) Label() string {
	return fmt.Sprintf("%s (%s)", c.Version, c.Path)
}

// Names returns the interpreter launch names probed on this platform, in
// preference order. Windows prefers the py launcher.
func Names() []string {
	if runtime.GOOS == "windows" {
		return []string{"py", "python", "python3"}
	}
	return []string{"python3", "python"}
}

// Discover probes extras followed by the platform launch names and returns
// the interpreters that resolved on PATH and answered the version query, in
// probe order. Probes run concurrently; a name that fails is dropped without
// an error. Zero survivors is ErrNoInterpreter.
func Discover(ctx context.Context, runner Runner, extras []string, timeout time.Duration) ([]Candidate, error) {
	log := logging.Component("pyenv")

	names := make([]string, 0, len(extras)+3)
	for _, extra := range extras {
		expanded, err := homedir.Expand(extra)
		if err != nil {
			log.Debug().Str("path", extra).Err(err).Msg("skipping extra path")
			continue
		}
		names = append(names, expanded)
	}
	names = append(names, Names()...)

	found := make([]*Candidate, len(names))
	g, gctx := errgroup.WithContext(ctx)
	for i, name := range names {
		g.Go(func() error {
			path, err := runner.LookPath(name)
			if err != nil {
				log.Debug().Str("name", name).Msg("not on PATH")
				return nil
			}
			version, err := QueryVersion(gctx, runner, path, timeout)
			if err != nil {
				log.Debug().Str("path", path).Err(err).Msg("version query failed")
				return nil
			}
			found[i] = &Candidate{Path: path, Version: version}
			return nil
		})
	}
	_ = g.Wait()

	candidates := make([]Candidate, 0, len(found))
	for _, c := range found {
		if c != nil {
			candidates = append(candidates, *c)
		}
	}
	if len(candidates) == 0 {
		return nil, ErrNoInterpreter
	}
	log.Debug().Int("count", len(candidates)).Msg("discovered interpreters")
	return candidates, nil
}

// Explicit resolves a user-supplied interpreter path into a candidate. The
// path may be a bare name (searched on PATH) or a file path; tildes are
// expanded. The version query must succeed for the interpreter to count.
func Explicit(ctx context.Context, runner Runner, path string, timeout time.Duration) (Candidate, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return Candidate{}, fmt.Errorf("%w: "+messages.PythonNotFoundFmt, ErrNoInterpreter, path)
	}
	resolved, err := runner.LookPath(expanded)
	if err != nil {
		return Candidate{}, fmt.Errorf("%w: "+messages.PythonNotFoundFmt, ErrNoInterpreter, path)
	}
	version, err := QueryVersion(ctx, runner, resolved, timeout)
	if err != nil {
		return Candidate{}, fmt.Errorf("%w: "+messages.PythonNotFoundFmt, ErrNoInterpreter, path)
	}
	return Candidate{Path: resolved, Version: version}, nil
}
