package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/clyp-lang/clyp-install/internal/messages"
	"github.com/clyp-lang/clyp-install/internal/pyenv"
	"github.com/clyp-lang/clyp-install/internal/wizard"
)

// runProgram is swapped in tests to avoid opening a real terminal program.
var runProgram = func(m *Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Run drives the full-screen wizard to completion and maps its outcome the
// same way the console flow does: a clean exit before the run prints a
// notice and returns nil, a failed run returns ErrRunFailed after the
// outcome has been printed.
func Run(ctx context.Context, machine *wizard.Machine, candidates []pyenv.Candidate, start wizard.Starter) error {
	return RunWithWriter(ctx, machine, candidates, start, os.Stdout)
}

// RunWithWriter is Run writing the post-program outcome to out. The program
// itself draws on an alternate screen that vanishes on exit, so the outcome
// is printed again to stay visible.
func RunWithWriter(ctx context.Context, machine *wizard.Machine, candidates []pyenv.Candidate, start wizard.Starter, out io.Writer) error {
	if out == nil {
		out = os.Stdout
	}
	if len(candidates) == 0 && strings.TrimSpace(machine.Selection.Python) == "" {
		return errors.New(messages.NoPythonFound)
	}

	m := New(ctx, machine, candidates, start)
	if err := runProgram(m); err != nil {
		return fmt.Errorf(messages.WizardUIFailedFmt, err)
	}

	if m.startErr != nil {
		return fmt.Errorf(messages.WizardRunFailedFmt, m.startErr)
	}
	if m.terminal == nil {
		_, _ = fmt.Fprintln(out, messages.WizardExitWithoutChanges)
		return nil
	}

	wizard.RenderOutcome(*m.terminal, out)
	if wizard.Failed(*m.terminal) {
		return wizard.ErrRunFailed
	}
	return nil
}
