package pyenv

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
)

// MinSupported is the oldest interpreter Clyp is tested against. Older
// interpreters are still offered, with a warning.
var MinSupported = semver.MustParse("3.10.0")

var errEmptyVersion = errors.New("interpreter printed no version")

// QueryVersion runs `path --version` and returns the trimmed banner.
// Some interpreters print the banner to stderr, so both streams are read.
func QueryVersion(ctx context.Context, runner Runner, path string, timeout time.Duration) (string, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	out, err := runner.CombinedOutput(ctx, path, "--version")
	if err != nil {
		return "", err
	}
	// Keep the first line only; interpreters sometimes append warnings.
	line, _, _ := strings.Cut(strings.TrimSpace(string(out)), "\n")
	banner := strings.TrimSpace(line)
	if banner == "" {
		return "", errEmptyVersion
	}
	return banner, nil
}

// ParseVersion extracts the numeric version from a banner like
// "Python 3.12.1". It returns nil when no field parses as a version.
func ParseVersion(banner string) *semver.Version {
	for _, field := range strings.Fields(banner) {
		if v, err := semver.NewVersion(field); err == nil {
			return v
		}
	}
	return nil
}

// Outdated reports whether the candidate's interpreter is older than
// MinSupported. Unparseable banners are never outdated.
func (c Candidate) Outdated() bool {
	v := ParseVersion(c.Version)
	return v != nil && v.LessThan(MinSupported)
}
