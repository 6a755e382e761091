package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/clyp-lang/clyp-install/internal/config"
	"github.com/clyp-lang/clyp-install/internal/install"
	"github.com/clyp-lang/clyp-install/internal/logging"
	"github.com/clyp-lang/clyp-install/internal/messages"
	"github.com/clyp-lang/clyp-install/internal/pyenv"
	"github.com/clyp-lang/clyp-install/internal/terminal"
	"github.com/clyp-lang/clyp-install/internal/tui"
	"github.com/clyp-lang/clyp-install/internal/wizard"
)

var isTerminalFunc = terminal.IsInteractive
var runConsoleFunc = wizard.RunConsole
var runGUIFunc = tui.Run
var newRunner = func() pyenv.Runner { return pyenv.ExecRunner{} }
var loadSettings = func() (config.Settings, error) { return config.Load(config.DefaultPath()) }

type rootOptions struct {
	python    string
	version   string
	uninstall bool
	silent    bool
	gui       bool
	console   bool
	debug     bool
	noColor   bool
}

// newRootCmd builds the root (and only) command.
//
// Exit codes: 0 for a verified success, a completed uninstall, or a clean
// user exit; 1 for a failed run or fatal error; 2 for usage errors.
func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   messages.RootUse,
		Short: messages.RootShort,
		Long:  messages.RootLong,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return &UsageError{Err: fmt.Errorf(messages.RootUnexpectedArgsFmt, args[0])}
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, opts)
		},
	}
	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})

	flags := cmd.Flags()
	flags.StringVarP(&opts.python, "python", "p", "", messages.RootFlagPython)
	flags.StringVarP(&opts.version, "version", "v", "", messages.RootFlagVersion)
	flags.BoolVarP(&opts.uninstall, "uninstall", "u", false, messages.RootFlagUninstall)
	flags.BoolVarP(&opts.silent, "silent", "s", false, messages.RootFlagSilent)
	flags.BoolVarP(&opts.gui, "gui", "g", false, messages.RootFlagGUI)
	flags.BoolVarP(&opts.console, "console", "c", false, messages.RootFlagConsole)
	flags.BoolVar(&opts.debug, "debug", false, messages.RootFlagDebug)
	flags.BoolVar(&opts.noColor, "no-color", false, messages.RootFlagNoColor)
	cmd.MarkFlagsMutuallyExclusive("gui", "console")

	return cmd
}

func runRoot(cmd *cobra.Command, opts *rootOptions) error {
	settings, err := loadSettings()
	if err != nil {
		return fmt.Errorf(messages.LoadSettingsErrFmt, err)
	}
	if opts.noColor || settings.UI.NoColor {
		color.NoColor = true
	}

	if _, err := logging.Setup(logging.Options{
		Level:  settings.Logging.Level,
		Debug:  opts.debug,
		ToFile: settings.Logging.File,
	}); err != nil {
		return fmt.Errorf(messages.SetupLoggingErrFmt, err)
	}
	defer logging.Close()
	logging.Component("cli").Debug().
		Str("version", Version).Str("commit", Commit).Str("build", BuildDate).
		Msg("installer starting")

	ctx := cmd.Context()
	runner := newRunner()

	candidates, err := resolveCandidates(ctx, runner, opts, settings)
	if err != nil {
		return err
	}

	op := install.OpInstall
	if opts.uninstall {
		op = install.OpUninstall
	}
	machine := wizard.NewMachine(op)
	if strings.TrimSpace(opts.python) != "" {
		machine.Selection.Python = candidates[0].Path
		warnIfOutdated(candidates[0], cmd.ErrOrStderr())
	}
	if version := strings.TrimSpace(opts.version); version != "" && op == install.OpInstall {
		machine.Selection.VersionChoice = wizard.VersionCustom
		machine.Selection.CustomVersion = version
	}

	if opts.silent {
		orch := &install.Orchestrator{Runner: runner}
		return runSilent(cmd, machine, candidates, orch)
	}

	if !isTerminalFunc() {
		return errors.New(messages.RootRequiresTerminal)
	}
	mode := resolveMode(opts, settings)

	orch := &install.Orchestrator{Runner: runner, Quiet: mode == config.ModeGUI}
	var runErr error
	if mode == config.ModeGUI {
		runErr = runGUIFunc(ctx, machine, candidates, orch.Start)
	} else {
		runErr = runConsoleFunc(ctx, wizard.NewHuhUI(), machine, candidates, orch.Start)
	}
	if errors.Is(runErr, wizard.ErrRunFailed) {
		return &SilentExitError{Code: 1}
	}
	return runErr
}

/// resolveCandidates returns the interpreters the wizard can offer: the
// explicitly requested one alone, or everything discovery finds.
func resolveCandidates(ctx context.Context, runner pyenv.Runner, opts *rootOptions, settings config.Settings) ([]pyenv.Candidate, error) {
	timeout := settings.ProbeTimeout()

	if strings.TrimSpace(opts.python) != "" {
		c, err := pyenv.Explicit(ctx, runner, opts.python, timeout)
		if err != nil {
			return nil, err
		}
		return []pyenv.Candidate{c}, nil
	}

	candidates, err := pyenv.Discover(ctx, runner, settings.Discovery.ExtraPaths, timeout)
	if errors.Is(err, pyenv.ErrNoInterpreter) {
		return nil, fmt.Errorf("%s\n%s", messages.NoPythonFound, messages.NoPythonFoundAdvice)
	}
	if err != nil {
		return nil, fmt.Errorf(messages.DiscoverPythonErrFmt, err)
	}
	return candidates, nil
}

// runSilent performs the run without prompts: license implicitly accepted,
// first candidate unless one was forced, default choices, progress printed
// the way the console flow prints it.
func runSilent(cmd *cobra.Command, machine *wizard.Machine, candidates []pyenv.Candidate, orch *install.Orchestrator) error {
	machine.Selection.LicenseAccepted = true
	if strings.TrimSpace(machine.Selection.Python) == "" {
		machine.Selection.Python = candidates[0].Path
		warnIfOutdated(candidates[0], cmd.ErrOrStderr())
	}

	machine.Next()
	if !machine.Next() {
		return machine.Validate()
	}

	events, err := orch.Start(cmd.Context(), machine.Intent())
	if err != nil {
		return fmt.Errorf(messages.WizardRunFailedFmt, err)
	}
	terminal := wizard.RenderEvents(events, cmd.OutOrStdout())
	machine.Finish()
	if wizard.Failed(terminal) {
		return &SilentExitError{Code: 1}
	}
	return nil
}

func resolveMode(opts *rootOptions, settings config.Settings) string {
	switch {
	case opts.gui:
		return config.ModeGUI
	case opts.console:
		return config.ModeConsole
	case settings.UI.Mode != "":
		return settings.UI.Mode
	}
	return config.ModeConsole
}

// warnIfOutdated prints the old-interpreter warning for selections made
// outside the wizard, where no picker label can carry it.
func warnIfOutdated(c pyenv.Candidate, stderr io.Writer) {
	if c.Outdated() {
		_, _ = color.New(color.FgYellow).Fprintf(stderr, messages.OldPythonWarningFmt, c.Path, pyenv.MinSupported)
	}
}
