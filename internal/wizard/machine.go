package wizard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/clyp-lang/clyp-install/internal/install"
	"github.com/clyp-lang/clyp-install/internal/messages"
)

// Page identifies a wizard screen.
type Page int

const (
	PageLicense Page = iota
	PageOptions
	PageInstalling
	PageFinished
)

// VersionChoice selects between the latest release and a pinned version.
type VersionChoice int

const (
	VersionLatest VersionChoice = iota
	VersionCustom
)

// ErrValidationRefused reports an incomplete selection. It is advisory:
// the machine stays on its page and the caller re-prompts.
var ErrValidationRefused = errors.New("wizard selection incomplete")

// Selection holds everything the user picks across the wizard pages.
type Selection struct {
	Python          string
	Operation       install.Operation
	VersionChoice   VersionChoice
	CustomVersion   string
	LicenseAccepted bool
}

// Machine is the wizard's page state. It does no I/O; the console flow and
// the full-screen program both drive it and render its pages their own way.
type Machine struct {
	page      Page
	Selection Selection
}

// NewMachine returns a machine on the license page for the given operation.
func NewMachine(op install.Operation) *Machine {
	return &Machine{Selection: Selection{Operation: op}}
}

// Page returns the current page.
func (m *Machine) Page() Page {
	return m.page
}

// Next advances to the following page when its gate passes and reports
// whether it moved. License requires acceptance; Options requires a valid
// selection. Installing only advances through Finish.
func (m *Machine) Next() bool {
	switch m.page {
	case PageLicense:
		if !m.Selection.LicenseAccepted {
			return false
		}
		m.page = PageOptions
		return true
	case PageOptions:
		if m.Validate() != nil {
			return false
		}
		m.page = PageInstalling
		return true
	}
	return false
}

// Back returns to the previous page where that is allowed and reports
// whether it moved. Only Options can go back; an install in flight and a
// finished run have nothing to go back to.
func (m *Machine) Back() bool {
	if m.page != PageOptions {
		return false
	}
	m.page = PageLicense
	return true
}

// Finish moves Installing to Finished once the run's terminal event has
// arrived and reports whether it moved.
func (m *Machine) Finish() bool {
	if m.page != PageInstalling {
		return false
	}
	m.page = PageFinished
	return true
}

// Validate checks the selection is complete enough to start a run.
func (m *Machine) Validate() error {
	if strings.TrimSpace(m.Selection.Python) == "" {
		return fmt.Errorf("%w: %s", ErrValidationRefused, messages.WizardPythonRequired)
	}
	if m.Selection.Operation == install.OpInstall &&
		m.Selection.VersionChoice == VersionCustom &&
		strings.TrimSpace(m.Selection.CustomVersion) == "" {
		return fmt.Errorf("%w: %s", ErrValidationRefused, messages.WizardVersionRequired)
	}
	return nil
}

// PinnedVersion returns the version to pin, empty for the latest release.
func (m *Machine) PinnedVersion() string {
	if m.Selection.VersionChoice == VersionCustom {
		return strings.TrimSpace(m.Selection.CustomVersion)
	}
	return ""
}

// Intent renders the selection as an install intent.
func (m *Machine) Intent() install.Intent {
	return install.Intent{
		Python:    m.Selection.Python,
		Operation: m.Selection.Operation,
		Version:   m.PinnedVersion(),
	}
}
