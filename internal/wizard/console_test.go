package wizard

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clyp-lang/clyp-install/internal/install"
	"github.com/clyp-lang/clyp-install/internal/messages"
	"github.com/clyp-lang/clyp-install/internal/pyenv"
)

func consoleCandidates() []pyenv.Candidate {
	return []pyenv.Candidate{
		{Path: "/usr/bin/python3", Version: "Python 3.12.1"},
		{Path: "/opt/old/python3", Version: "Python 3.8.10"},
	}
}

// scriptedStarter returns a Starter that replays events and captures the
// intent it was started with.
func scriptedStarter(events ...install.Event) (Starter, *install.Intent) {
	var got install.Intent
	starter := func(_ context.Context, intent install.Intent) (<-chan install.Event, error) {
		got = intent
		ch := make(chan install.Event, len(events))
		for _, ev := range events {
			ch <- ev
		}
		close(ch)
		return ch, nil
	}
	return starter, &got
}

func neverStarter(t *testing.T) Starter {
	return func(context.Context, install.Intent) (<-chan install.Event, error) {
		t.Fatal("run started when it should not have")
		return nil, nil
	}
}

func successEvents() []install.Event {
	return []install.Event{
		{Text: messages.VerifyingInstall},
		{Terminal: true, Result: &install.Result{Success: true, Message: messages.InstallSucceeded}},
	}
}

func TestRunConsoleInstallHappyPath(t *testing.T) {
	m := NewMachine(install.OpInstall)
	starter, intent := scriptedStarter(successEvents()...)

	var out bytes.Buffer
	err := RunConsoleWithWriter(context.Background(), &MockUI{}, m, consoleCandidates(), starter, &out)

	require.NoError(t, err)
	assert.Equal(t, PageFinished, m.Page())
	assert.Equal(t, "/usr/bin/python3", intent.Python)
	assert.Equal(t, install.OpInstall, intent.Operation)
	assert.Empty(t, intent.Version)
	assert.Contains(t, out.String(), messages.VerifyingInstall)
	assert.Contains(t, out.String(), messages.InstallSucceeded)
}

func TestRunConsoleLicenseDeclined(t *testing.T) {
	m := NewMachine(install.OpInstall)
	ui := &MockUI{
		ConfirmFunc: func(title string, value *bool) error {
			if title == messages.WizardLicensePrompt {
				*value = false
			}
			return nil
		},
	}

	var out bytes.Buffer
	err := RunConsoleWithWriter(context.Background(), ui, m, consoleCandidates(), neverStarter(t), &out)

	require.NoError(t, err)
	assert.Contains(t, out.String(), messages.WizardLicenseRefused)
	assert.Equal(t, PageLicense, m.Page())
	assert.False(t, m.Selection.LicenseAccepted)
}

func TestRunConsoleEscOnFirstStepExitsWithoutChanges(t *testing.T) {
	m := NewMachine(install.OpInstall)
	ui := &MockUI{
		NoteFunc: func(string, string) error { return errWizardBack },
	}

	var out bytes.Buffer
	err := RunConsoleWithWriter(context.Background(), ui, m, consoleCandidates(), neverStarter(t), &out)

	require.NoError(t, err)
	assert.Contains(t, out.String(), messages.WizardExitWithoutChanges)
}

func TestRunConsoleBackFromVersionRevisitsInterpreter(t *testing.T) {
	m := NewMachine(install.OpInstall)

	var pythonPrompts, versionPrompts int
	ui := &MockUI{
		SelectFunc: func(title string, options []string, current *string) error {
			switch title {
			case messages.WizardPythonPrompt:
				pythonPrompts++
			case messages.WizardVersionPrompt:
				versionPrompts++
				if versionPrompts == 1 {
					return errWizardBack
				}
			}
			return nil
		},
	}
	starter, intent := scriptedStarter(successEvents()...)

	var out bytes.Buffer
	err := RunConsoleWithWriter(context.Background(), ui, m, consoleCandidates(), starter, &out)

	require.NoError(t, err)
	assert.Equal(t, 2, pythonPrompts, "expected to revisit the interpreter step after back")
	assert.Equal(t, 2, versionPrompts)
	assert.Equal(t, "/usr/bin/python3", intent.Python)
}

func TestRunConsoleCtrlCExitsWithoutChanges(t *testing.T) {
	m := NewMachine(install.OpInstall)
	ui := &MockUI{
		SelectFunc: func(title string, options []string, current *string) error {
			if title == messages.WizardPythonPrompt {
				return errWizardCancelled
			}
			return nil
		},
	}

	var out bytes.Buffer
	err := RunConsoleWithWriter(context.Background(), ui, m, consoleCandidates(), neverStarter(t), &out)

	require.NoError(t, err)
	assert.Contains(t, out.String(), messages.WizardExitWithoutChanges)
}

func TestRunConsoleConfirmDeclinedExitsWithoutChanges(t *testing.T) {
	m := NewMachine(install.OpInstall)
	var confirmTitle string
	ui := &MockUI{
		ConfirmFunc: func(title string, value *bool) error {
			if title != messages.WizardLicensePrompt {
				confirmTitle = title
				*value = false
			}
			return nil
		},
	}

	var out bytes.Buffer
	err := RunConsoleWithWriter(context.Background(), ui, m, consoleCandidates(), neverStarter(t), &out)

	require.NoError(t, err)
	assert.Contains(t, confirmTitle, "/usr/bin/python3")
	assert.Contains(t, out.String(), messages.WizardExitWithoutChanges)
}

func TestRunConsolePresetPythonSkipsInterpreterPrompt(t *testing.T) {
	m := NewMachine(install.OpInstall)
	m.Selection.Python = "/custom/bin/python3"

	ui := &MockUI{
		SelectFunc: func(title string, options []string, current *string) error {
			require.NotEqual(t, messages.WizardPythonPrompt, title)
			return nil
		},
	}
	starter, intent := scriptedStarter(successEvents()...)

	var out bytes.Buffer
	err := RunConsoleWithWriter(context.Background(), ui, m, nil, starter, &out)

	require.NoError(t, err)
	assert.Equal(t, "/custom/bin/python3", intent.Python)
}

func TestRunConsolePresetVersionSkipsVersionPrompt(t *testing.T) {
	m := NewMachine(install.OpInstall)
	m.Selection.VersionChoice = VersionCustom
	m.Selection.CustomVersion = "1.2.3"

	ui := &MockUI{
		SelectFunc: func(title string, options []string, current *string) error {
			require.NotEqual(t, messages.WizardVersionPrompt, title)
			return nil
		},
	}
	starter, intent := scriptedStarter(successEvents()...)

	var out bytes.Buffer
	err := RunConsoleWithWriter(context.Background(), ui, m, consoleCandidates(), starter, &out)

	require.NoError(t, err)
	assert.Equal(t, "1.2.3", intent.Version)
}

func TestRunConsoleUninstallSkipsVersionPrompt(t *testing.T) {
	m := NewMachine(install.OpUninstall)

	var confirmTitle string
	ui := &MockUI{
		SelectFunc: func(title string, options []string, current *string) error {
			require.NotEqual(t, messages.WizardVersionPrompt, title)
			return nil
		},
		ConfirmFunc: func(title string, value *bool) error {
			if title != messages.WizardLicensePrompt {
				confirmTitle = title
			}
			return nil
		},
	}
	starter, intent := scriptedStarter(install.Event{
		Terminal: true,
		Result:   &install.Result{Success: true, Message: messages.UninstallSucceeded},
	})

	var out bytes.Buffer
	err := RunConsoleWithWriter(context.Background(), ui, m, consoleCandidates(), starter, &out)

	require.NoError(t, err)
	assert.Equal(t, install.OpUninstall, intent.Operation)
	assert.Contains(t, confirmTitle, "Uninstall")
	assert.Contains(t, out.String(), messages.UninstallSucceeded)
}

func TestRunConsoleCustomVersionInput(t *testing.T) {
	m := NewMachine(install.OpInstall)
	ui := &MockUI{
		SelectFunc: func(title string, options []string, current *string) error {
			if title == messages.WizardVersionPrompt {
				*current = messages.WizardVersionSpecify
			}
			return nil
		},
		InputFunc: func(title string, value *string) error {
			if title == messages.WizardVersionInputTitle {
				*value = " 2.0.0 "
			}
			return nil
		},
	}
	starter, intent := scriptedStarter(successEvents()...)

	var out bytes.Buffer
	err := RunConsoleWithWriter(context.Background(), ui, m, consoleCandidates(), starter, &out)

	require.NoError(t, err)
	assert.Equal(t, "2.0.0", intent.Version)
}

func TestRunConsoleBlankCustomVersionFallsBackToLatest(t *testing.T) {
	m := NewMachine(install.OpInstall)
	ui := &MockUI{
		SelectFunc: func(title string, options []string, current *string) error {
			if title == messages.WizardVersionPrompt {
				*current = messages.WizardVersionSpecify
			}
			return nil
		},
		InputFunc: func(title string, value *string) error {
			*value = "   "
			return nil
		},
	}
	starter, intent := scriptedStarter(successEvents()...)

	var out bytes.Buffer
	err := RunConsoleWithWriter(context.Background(), ui, m, consoleCandidates(), starter, &out)

	require.NoError(t, err)
	assert.Empty(t, intent.Version)
	assert.Equal(t, VersionLatest, m.Selection.VersionChoice)
}

func TestRunConsoleFailureReturnsErrRunFailed(t *testing.T) {
	m := NewMachine(install.OpInstall)
	starter, _ := scriptedStarter(install.Event{
		Terminal: true,
		Result:   &install.Result{Success: false, Message: messages.InstallFailed},
	})

	var out bytes.Buffer
	err := RunConsoleWithWriter(context.Background(), &MockUI{}, m, consoleCandidates(), starter, &out)

	require.ErrorIs(t, err, ErrRunFailed)
	assert.Contains(t, out.String(), messages.InstallFailed)
}

func TestRunConsoleBootstrapFailurePrintsPipGuidance(t *testing.T) {
	m := NewMachine(install.OpInstall)
	starter, _ := scriptedStarter(install.Event{
		Terminal: true,
		Err:      install.ErrBootstrapFailed,
	})

	var out bytes.Buffer
	err := RunConsoleWithWriter(context.Background(), &MockUI{}, m, consoleCandidates(), starter, &out)

	require.ErrorIs(t, err, ErrRunFailed)
	assert.Contains(t, out.String(), messages.PipBootstrapFailed)
	assert.Contains(t, out.String(), messages.PipRequired)
}

func TestRunConsoleStarterErrorIsWrapped(t *testing.T) {
	m := NewMachine(install.OpInstall)
	startErr := errors.New("already started")
	starter := func(context.Context, install.Intent) (<-chan install.Event, error) {
		return nil, startErr
	}

	var out bytes.Buffer
	err := RunConsoleWithWriter(context.Background(), &MockUI{}, m, consoleCandidates(), starter, &out)

	require.ErrorIs(t, err, startErr)
}

func TestRunConsoleOutdatedInterpreterLabeled(t *testing.T) {
	m := NewMachine(install.OpInstall)

	var seen []string
	ui := &MockUI{
		SelectFunc: func(title string, options []string, current *string) error {
			if title == messages.WizardPythonPrompt {
				seen = append([]string(nil), options...)
			}
			return nil
		},
	}
	starter, _ := scriptedStarter(successEvents()...)

	var out bytes.Buffer
	err := RunConsoleWithWriter(context.Background(), ui, m, consoleCandidates(), starter, &out)

	require.NoError(t, err)
	require.Len(t, seen, 2)
	assert.Equal(t, "Python 3.12.1 (/usr/bin/python3)", seen[0])
	assert.Equal(t, "Python 3.8.10 (/opt/old/python3)"+messages.WizardOldPythonSuffix, seen[1])
}

func TestRenderEventsShowsEnvironmentChanges(t *testing.T) {
	ch := make(chan install.Event, 2)
	ch <- install.Event{Text: messages.VerifyingInstall}
	ch <- install.Event{Terminal: true, Result: &install.Result{
		Success: true,
		Message: messages.InstallSucceeded,
		EnvDiff: "+clyp==1.2.3",
	}}
	close(ch)

	var out bytes.Buffer
	terminal := RenderEvents(ch, &out)

	assert.False(t, Failed(terminal))
	assert.Contains(t, out.String(), messages.EnvChangesHeader)
	assert.Contains(t, out.String(), "+clyp==1.2.3")
}

func TestFailed(t *testing.T) {
	assert.False(t, Failed(install.Event{Terminal: true, Result: &install.Result{Success: true}}))
	assert.True(t, Failed(install.Event{Terminal: true, Result: &install.Result{Success: false}}))
	assert.True(t, Failed(install.Event{Terminal: true, Err: install.ErrBootstrapFailed}))
	assert.False(t, Failed(install.Event{}))
}
