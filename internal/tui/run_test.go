package tui

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clyp-lang/clyp-install/internal/install"
	"github.com/clyp-lang/clyp-install/internal/messages"
	"github.com/clyp-lang/clyp-install/internal/wizard"
)

// stubProgram replaces the terminal program with fn acting on the model.
func stubProgram(t *testing.T, fn func(m *Model)) {
	t.Helper()
	orig := runProgram
	runProgram = func(m *Model) error {
		if fn != nil {
			fn(m)
		}
		return nil
	}
	t.Cleanup(func() { runProgram = orig })
}

func runWizard(t *testing.T, machine *wizard.Machine) (string, error) {
	t.Helper()
	var out bytes.Buffer
	starter, _ := scriptedStarter()
	err := RunWithWriter(context.Background(), machine, tuiCandidates(), starter, &out)
	return out.String(), err
}

func TestRunExitWithoutChanges(t *testing.T) {
	stubProgram(t, func(m *Model) {
		m.aborted = true
	})

	out, err := runWizard(t, wizard.NewMachine(install.OpInstall))

	require.NoError(t, err)
	assert.Contains(t, out, messages.WizardExitWithoutChanges)
}

func TestRunSuccessPrintsOutcome(t *testing.T) {
	stubProgram(t, func(m *Model) {
		m.terminal = &install.Event{Terminal: true, Result: &install.Result{
			Success: true,
			Message: messages.InstallSucceeded,
			EnvDiff: "+clyp==1.2.3",
		}}
	})

	out, err := runWizard(t, wizard.NewMachine(install.OpInstall))

	require.NoError(t, err)
	assert.Contains(t, out, messages.InstallSucceeded)
	assert.Contains(t, out, messages.EnvChangesHeader)
	assert.Contains(t, out, "+clyp==1.2.3")
}

func TestRunFailureMapsToErrRunFailed(t *testing.T) {
	stubProgram(t, func(m *Model) {
		m.terminal = &install.Event{Terminal: true, Result: &install.Result{
			Success: false,
			Message: messages.InstallFailed,
		}}
	})

	out, err := runWizard(t, wizard.NewMachine(install.OpInstall))

	assert.ErrorIs(t, err, wizard.ErrRunFailed)
	assert.Contains(t, out, messages.InstallFailed)
}

func TestRunBootstrapFailurePrintsPipGuidance(t *testing.T) {
	stubProgram(t, func(m *Model) {
		m.terminal = &install.Event{Terminal: true, Err: install.ErrBootstrapFailed}
	})

	out, err := runWizard(t, wizard.NewMachine(install.OpInstall))

	assert.ErrorIs(t, err, wizard.ErrRunFailed)
	assert.Contains(t, out, messages.PipBootstrapFailed)
	assert.Contains(t, out, messages.PipRequired)
}

func TestRunStartErrorIsWrapped(t *testing.T) {
	startErr := errors.New("run already started")
	stubProgram(t, func(m *Model) {
		m.startErr = startErr
	})

	_, err := runWizard(t, wizard.NewMachine(install.OpInstall))

	require.Error(t, err)
	assert.ErrorIs(t, err, startErr)
	assert.Contains(t, err.Error(), "install wizard failed")
}

func TestRunProgramErrorIsWrapped(t *testing.T) {
	orig := runProgram
	uiErr := errors.New("tty gone")
	runProgram = func(*Model) error { return uiErr }
	t.Cleanup(func() { runProgram = orig })

	_, err := runWizard(t, wizard.NewMachine(install.OpInstall))

	require.Error(t, err)
	assert.ErrorIs(t, err, uiErr)
}

func TestRunRequiresInterpreters(t *testing.T) {
	stubProgram(t, func(*Model) {
		t.Fatal("program should not run without interpreters")
	})

	var out bytes.Buffer
	err := RunWithWriter(context.Background(), wizard.NewMachine(install.OpInstall), nil, neverStarter(t), &out)

	require.Error(t, err)
	assert.Contains(t, err.Error(), messages.NoPythonFound)
}
