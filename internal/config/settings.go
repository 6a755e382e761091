// Package config loads the optional installer settings file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"

	"github.com/clyp-lang/clyp-install/internal/messages"
)

// Mode names accepted by ui.mode.
const (
	ModeConsole = "console"
	ModeGUI     = "gui"
)

const defaultProbeTimeout = 10 * time.Second

// Settings is the optional on-disk configuration. The zero value is the
// default behavior; nothing in the installer requires the file to exist.
type Settings struct {
	UI        UISettings        `toml:"ui"`
	Discovery DiscoverySettings `toml:"discovery"`
	Probe     ProbeSettings     `toml:"probe"`
	Logging   LoggingSettings   `toml:"logging"`
}

// UISettings select the default presentation.
type UISettings struct {
	// Mode is "console" or "gui"; empty means console when interactive.
	Mode    string `toml:"mode"`
	NoColor bool   `toml:"no_color"`
}

// DiscoverySettings extend interpreter discovery.
type DiscoverySettings struct {
	// ExtraPaths are explicit interpreter paths probed before the
	// platform launch names. Tildes are expanded.
	ExtraPaths []string `toml:"extra_paths"`
}

// ProbeSettings bound subprocess probes.
type ProbeSettings struct {
	// TimeoutSeconds caps each discovery probe; zero means 10.
	TimeoutSeconds int `toml:"timeout_seconds"`
}

// LoggingSettings mirror the --debug flag and the file sink.
type LoggingSettings struct {
	Level string `toml:"level"`
	File  bool   `toml:"file"`
}

// DefaultPath returns the settings file location under the XDG config dir.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "clyp-install", "config.toml")
}

// Load reads the settings file at path. A missing file is not an error;
// callers get defaults. Malformed TOML or invalid values are errors.
func Load(path string) (Settings, error) {
	var s Settings
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf(messages.ConfigReadFmt, path, err)
	}
	if err := toml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf(messages.ConfigParseFmt, path, err)
	}
	if err := s.validate(); err != nil {
		return s, err
	}
	return s, nil
}

func (s Settings) validate() error {
	switch s.UI.Mode {
	case "", ModeConsole, ModeGUI:
	default:
		return fmt.Errorf(messages.ConfigUnknownModeFmt, s.UI.Mode)
	}
	if s.Probe.TimeoutSeconds < 0 {
		return errors.New(messages.ConfigNegativeTimeout)
	}
	return nil
}

// ProbeTimeout returns the effective per-probe timeout.
func (s Settings) ProbeTimeout() time.Duration {
	if s.Probe.TimeoutSeconds <= 0 {
		return defaultProbeTimeout
	}
	return time.Duration(s.Probe.TimeoutSeconds) * time.Second
}
