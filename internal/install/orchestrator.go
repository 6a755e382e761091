package install

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/clyp-lang/clyp-install/internal/logging"
	"github.com/clyp-lang/clyp-install/internal/messages"
	"github.com/clyp-lang/clyp-install/internal/pyenv"
)

// Orchestrator drives one run through its stages: pip capability check,
// optional ensurepip bootstrap, the pip command, import verification, and
// the uv fallback for isolated environments.
type Orchestrator struct {
	// Runner executes interpreter subprocesses.
	Runner pyenv.Runner
	// Quiet captures subprocess output instead of streaming it to the
	// terminal. The full-screen wizard owns the screen.
	Quiet bool
	// LockDir overrides where environment lock files live; empty uses
	// the state directory.
	LockDir string

	started atomic.Bool
}

// Start launches the run in its own goroutine and returns its event stream.
// Events arrive in order: progress events, then exactly one terminal event,
// then the channel closes. An Orchestrator runs once; a second Start fails.
func (o *Orchestrator) Start(ctx context.Context, intent Intent) (<-chan Event, error) {
	if strings.TrimSpace(intent.Python) == "" {
		return nil, errors.New(messages.IntentPythonMissing)
	}
	if o.started.Swap(true) {
		return nil, errors.New(messages.RunAlreadyStarted)
	}
	events := make(chan Event, 8)
	go func() {
		defer close(events)
		events <- o.run(ctx, intent, events)
	}()
	return events, nil
}

// run executes the stages and returns the terminal event. Non-terminal
// progress goes straight onto events.
func (o *Orchestrator) run(ctx context.Context, intent Intent, events chan<- Event) Event {
	log := logging.Component("install")
	runner := o.runner()

	log.Debug().Str("python", intent.Python).Str("operation", string(intent.Operation)).
		Str("version", intent.Version).Msg("run started")

	// Stage: capability check, bootstrapping pip when it is missing.
	if !pyenv.PipAvailable(ctx, runner, intent.Python) {
		events <- warnEvent(fmt.Sprintf(messages.PipMissingFmt, intent.Python))
		events <- warnEvent(messages.PipBootstrapping)
		log.Debug().Str("stage", "bootstrap").Msg("pip missing, running ensurepip")
		if err := pyenv.EnsurePip(ctx, runner, intent.Python); err != nil {
			log.Debug().Err(err).Msg("bootstrap failed")
			return fatalEvent(fmt.Errorf("%w: %w", ErrBootstrapFailed, err))
		}
		events <- goodEvent(messages.PipBootstrapped)
	}

	// No cancellation once the environment can change.
	execCtx := context.WithoutCancel(ctx)

	unlock, err := acquireEnvLock(o.LockDir, intent.Python)
	if err != nil {
		log.Debug().Err(err).Msg("environment lock unavailable")
		return finishedEvent(&Result{Success: false, Message: err.Error()})
	}
	defer unlock()

	if intent.Operation == OpUninstall {
		events <- progressEvent(fmt.Sprintf(messages.UninstallingFmt, intent.Python))
		log.Debug().Str("stage", "execute").Strs("args", pipArgs(intent)).Msg("running pip")
		if runErr := runner.Run(execCtx, intent.Python, pipArgs(intent)...); runErr != nil {
			// pip's exit status is not consulted; the run still counts.
			log.Debug().Err(runErr).Msg("pip uninstall exited nonzero")
		}
		return finishedEvent(&Result{Success: true, Message: messages.UninstallSucceeded})
	}

	before := pyenv.Snapshot(execCtx, runner, intent.Python)

	events <- progressEvent(fmt.Sprintf(messages.InstallingFmt, intent.Python))
	log.Debug().Str("stage", "execute").Strs("args", pipArgs(intent)).Msg("running pip")
	if runErr := runner.Run(execCtx, intent.Python, pipArgs(intent)...); runErr != nil {
		// Verification decides success; pip's exit status is advisory.
		log.Debug().Err(runErr).Msg("pip install exited nonzero")
	}

	events <- progressEvent(messages.VerifyingInstall)
	installed := pyenv.CanImport(execCtx, runner, intent.Python, packageName)

	usedFallback := false
	if !installed && pyenv.InVirtualEnv(execCtx, runner, intent.Python) && pyenv.UvAvailable(execCtx, runner, intent.Python) {
		events <- warnEvent(messages.FallbackWithUv)
		usedFallback = true
		log.Debug().Str("stage", "fallback").Strs("args", uvArgs(intent)).Msg("running uv")
		if runErr := runner.Run(execCtx, intent.Python, uvArgs(intent)...); runErr != nil {
			log.Debug().Err(runErr).Msg("uv install exited nonzero")
		}
		installed = pyenv.CanImport(execCtx, runner, intent.Python, packageName)
	}

	res := &Result{Success: installed, UsedFallback: usedFallback}
	if installed {
		res.Message = messages.InstallSucceeded
		res.EnvDiff = envDiff(before, pyenv.Snapshot(execCtx, runner, intent.Python))
	} else {
		res.Message = messages.InstallFailed
	}
	log.Debug().Bool("success", res.Success).Bool("fallback", res.UsedFallback).Msg("run finished")
	return finishedEvent(res)
}

func (o *Orchestrator) runner() pyenv.Runner {
	if o.Quiet {
		return quietRunner{o.Runner}
	}
	return o.Runner
}

// quietRunner redirects attached commands into captured output so nothing
// scribbles over the full-screen wizard.
type quietRunner struct {
	pyenv.Runner
}

func (q quietRunner) Run(ctx context.Context, name string, args ...string) error {
	out, err := q.CombinedOutput(ctx, name, args...)
	if len(out) > 0 {
		logging.Component("install").Debug().Str("command", name).
			Str("output", strings.TrimSpace(string(out))).Msg("captured subprocess output")
	}
	return err
}
