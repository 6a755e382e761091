// Package logging configures the process-wide structured logger.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
)

// Logger is the process-wide logger. Setup replaces it; before Setup it
// discards everything so package code can log unconditionally.
var Logger = zerolog.Nop()

var (
	mu      sync.Mutex
	logFile *os.File
)

// Options control Setup.
type Options struct {
	// Level is a zerolog level name; empty or unparseable values fall
	// back to warn.
	Level string
	// Debug forces debug level regardless of Level.
	Debug bool
	// ToFile tees events into the state-dir log file.
	ToFile bool
}

// FilePath returns the log file location under the XDG state directory.
func FilePath() string {
	return filepath.Join(xdg.StateHome, "clyp-install", "install.log")
}

// Setup builds the global Logger: a console writer on stderr, optionally
// teeing into the state-dir log file, with a fresh run ID attached to every
// event. It returns the run ID.
func Setup(opts Options) (string, error) {
	mu.Lock()
	defer mu.Unlock()

	lvl, err := zerolog.ParseLevel(opts.Level)
	if err != nil || opts.Level == "" {
		lvl = zerolog.WarnLevel
	}
	if opts.Debug {
		lvl = zerolog.DebugLevel
	}

	writers := []io.Writer{zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}}

	closeFileLocked()
	if opts.ToFile {
		path := FilePath()
		if mkErr := os.MkdirAll(filepath.Dir(path), 0o755); mkErr != nil {
			return "", mkErr
		}
		f, openErr := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
		if openErr != nil {
			return "", openErr
		}
		logFile = f
		writers = append(writers, f)
	}

	runID := ulid.Make().String()
	Logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(lvl).
		With().
		Timestamp().
		Str("run_id", runID).
		Logger()
	return runID, nil
}

// Close releases the log file, if one is open.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	closeFileLocked()
}

func closeFileLocked() {
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
}

// Component returns a child logger tagged with the given component name.
func Component(name string) zerolog.Logger {
	return Logger.With().Str("component", name).Logger()
}
