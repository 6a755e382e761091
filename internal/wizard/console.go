package wizard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/clyp-lang/clyp-install/internal/install"
	"github.com/clyp-lang/clyp-install/internal/messages"
	"github.com/clyp-lang/clyp-install/internal/pyenv"
)

// Starter launches an install run and returns its event stream.
type Starter func(ctx context.Context, intent install.Intent) (<-chan install.Event, error)

// ErrRunFailed reports that a run finished unsuccessfully after its outcome
// was already printed. Callers map it to an exit code without reprinting.
var ErrRunFailed = errors.New("install run failed")

var errLicenseDeclined = errors.New("license declined")

// RunConsole drives the wizard machine through plain console prompts and
// streams the run's output to stdout.
func RunConsole(ctx context.Context, ui UI, machine *Machine, candidates []pyenv.Candidate, start Starter) error {
	return RunConsoleWithWriter(ctx, ui, machine, candidates, start, os.Stdout)
}

// RunConsoleWithWriter is RunConsole writing user-facing output to out.
func RunConsoleWithWriter(ctx context.Context, ui UI, machine *Machine, candidates []pyenv.Candidate, start Starter, out io.Writer) error {
	if out == nil {
		out = os.Stdout
	}

	if err := promptConsoleFlow(ui, machine, candidates); err != nil {
		if errors.Is(err, errLicenseDeclined) {
			_, _ = fmt.Fprintln(out, messages.WizardLicenseRefused)
			return nil
		}
		if errors.Is(err, errWizardBack) || errors.Is(err, errWizardCancelled) {
			_, _ = fmt.Fprintln(out, messages.WizardExitWithoutChanges)
			return nil
		}
		return err
	}

	if !machine.Next() {
		return machine.Validate()
	}

	events, err := start(ctx, machine.Intent())
	if err != nil {
		return fmt.Errorf(messages.WizardRunFailedFmt, err)
	}
	terminal := RenderEvents(events, out)
	machine.Finish()
	if Failed(terminal) {
		return ErrRunFailed
	}
	return nil
}

// consoleStep identifies one prompt of the console flow. Selections already
// fixed by command-line flags are not prompted for, in either direction.
type consoleStep int

const (
	stepLicense consoleStep = iota
	stepInterpreter
	stepVersion
	stepConfirm
)

func consoleSteps(m *Machine) []consoleStep {
	steps := []consoleStep{stepLicense}
	if strings.TrimSpace(m.Selection.Python) == "" {
		steps = append(steps, stepInterpreter)
	}
	if m.Selection.Operation == install.OpInstall && strings.TrimSpace(m.Selection.CustomVersion) == "" {
		steps = append(steps, stepVersion)
	}
	return append(steps, stepConfirm)
}

// promptConsoleFlow walks the steps, snapshotting the selection before each
// one so Esc restores it and returns to the previous step. Esc on the first
// step exits without changes.
func promptConsoleFlow(ui UI, m *Machine, candidates []pyenv.Candidate) error {
	steps := consoleSteps(m)
	for i := 0; i < len(steps); {
		snapshot := m.Selection
		var err error

		switch steps[i] {
		case stepLicense:
			err = promptLicense(ui, m)
		case stepInterpreter:
			err = promptInterpreter(ui, m, candidates)
		case stepVersion:
			err = promptVersion(ui, m)
		case stepConfirm:
			err = promptConfirm(ui, m)
		}

		if err == nil {
			i++
			continue
		}
		if !errors.Is(err, errWizardBack) {
			return err
		}

		m.Selection = snapshot
		if i == 0 {
			return errWizardCancelled
		}
		i--
		if steps[i] == stepLicense {
			m.Back()
		}
	}
	return nil
}

func promptLicense(ui UI, m *Machine) error {
	if err := ui.Note(messages.WizardLicenseTitle, messages.LicenseText); err != nil {
		return err
	}
	accept := true
	if err := ui.Confirm(messages.WizardLicensePrompt, &accept); err != nil {
		return err
	}
	m.Selection.LicenseAccepted = accept
	if !accept {
		return errLicenseDeclined
	}
	m.Next()
	return nil
}

func promptInterpreter(ui UI, m *Machine, candidates []pyenv.Candidate) error {
	if len(candidates) == 0 {
		return errors.New(messages.NoPythonFound)
	}

	labels := make([]string, len(candidates))
	for i := range candidates {
		labels[i] = CandidateLabel(candidates[i])
	}
	current := labels[0]
	for i := range candidates {
		if candidates[i].Path == m.Selection.Python {
			current = labels[i]
		}
	}

	if err := ui.Select(messages.WizardPythonPrompt, labels, &current); err != nil {
		return err
	}
	for i := range candidates {
		if labels[i] == current {
			m.Selection.Python = candidates[i].Path
			return nil
		}
	}
	return errors.New(messages.NoPythonSelected)
}

// CandidateLabel renders an interpreter choice, flagging versions below the
// supported floor.
func CandidateLabel(c pyenv.Candidate) string {
	label := c.Label()
	if c.Outdated() {
		label += messages.WizardOldPythonSuffix
	}
	return label
}

func promptVersion(ui UI, m *Machine) error {
	choice := messages.WizardVersionLatest
	if m.Selection.VersionChoice == VersionCustom {
		choice = messages.WizardVersionSpecify
	}
	options := []string{messages.WizardVersionLatest, messages.WizardVersionSpecify}
	if err := ui.Select(messages.WizardVersionPrompt, options, &choice); err != nil {
		return err
	}
	if choice != messages.WizardVersionSpecify {
		m.Selection.VersionChoice = VersionLatest
		m.Selection.CustomVersion = ""
		return nil
	}

	version := m.Selection.CustomVersion
	if err := ui.Input(messages.WizardVersionInputTitle, &version); err != nil {
		return err
	}
	version = strings.TrimSpace(version)
	if version == "" {
		// A blank answer falls back to the latest release.
		m.Selection.VersionChoice = VersionLatest
		m.Selection.CustomVersion = ""
		return nil
	}
	m.Selection.VersionChoice = VersionCustom
	m.Selection.CustomVersion = version
	return nil
}

func promptConfirm(ui UI, m *Machine) error {
	prompt := fmt.Sprintf(messages.WizardConfirmInstallFmt, m.Selection.Python)
	if m.Selection.Operation == install.OpUninstall {
		prompt = fmt.Sprintf(messages.WizardConfirmRemoveFmt, m.Selection.Python)
	}
	confirm := true
	if err := ui.Confirm(prompt, &confirm); err != nil {
		return err
	}
	if !confirm {
		return errWizardCancelled
	}
	return nil
}

// RenderEvents prints a run's event stream to out and returns the terminal
// event. Progress lines are colored by tone; the outcome is green or red.
func RenderEvents(events <-chan install.Event, out io.Writer) install.Event {
	var terminal install.Event
	for ev := range events {
		if !ev.Terminal {
			_, _ = toneColor(ev.Tone).Fprintln(out, ev.Text)
			continue
		}
		terminal = ev
		RenderOutcome(ev, out)
	}
	return terminal
}

// RenderOutcome prints a run's terminal event to out. The full-screen
// wizard also calls it once its alternate screen is gone, so the outcome
// survives on the scrollback.
func RenderOutcome(ev install.Event, out io.Writer) {
	switch {
	case errors.Is(ev.Err, install.ErrBootstrapFailed):
		_, _ = color.New(color.FgRed).Fprintln(out, messages.PipBootstrapFailed)
		_, _ = color.New(color.FgRed).Fprintln(out, messages.PipRequired)
	case ev.Err != nil:
		_, _ = color.New(color.FgRed).Fprintln(out, ev.Err.Error())
	case ev.Result == nil:
	case !ev.Result.Success:
		_, _ = color.New(color.FgRed).Fprintln(out, ev.Result.Message)
	default:
		_, _ = color.New(color.FgGreen).Fprintln(out, ev.Result.Message)
		if ev.Result.EnvDiff != "" {
			_, _ = fmt.Fprintln(out, messages.EnvChangesHeader)
			_, _ = fmt.Fprintln(out, ev.Result.EnvDiff)
		}
	}
}

// Failed reports whether a terminal event ended the run unsuccessfully.
func Failed(terminal install.Event) bool {
	if terminal.Err != nil {
		return true
	}
	return terminal.Result != nil && !terminal.Result.Success
}

func toneColor(tone install.Tone) *color.Color {
	switch tone {
	case install.ToneWarn:
		return color.New(color.FgYellow)
	case install.ToneGood:
		return color.New(color.FgGreen)
	default:
		return color.New(color.FgCyan)
	}
}
