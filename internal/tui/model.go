// Package tui renders the install wizard as a full-screen terminal program.
// It drives the same page machine as the console flow; only the presentation
// differs.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/clyp-lang/clyp-install/internal/install"
	"github.com/clyp-lang/clyp-install/internal/pyenv"
	"github.com/clyp-lang/clyp-install/internal/wizard"
)

// field identifies one focusable group on the options page.
type field int

const (
	fieldInterpreter field = iota
	fieldVersion
	fieldCustom
)

const (
	versionLatest = iota
	versionSpecify
)

// logLine is one progress line shown while the run executes.
type logLine struct {
	text string
	tone install.Tone
}

// eventMsg carries one run event from the orchestrator channel.
type eventMsg install.Event

// streamClosedMsg signals the event channel closed.
type streamClosedMsg struct{}

// Model is the full-screen wizard. Pages come from the machine; the model
// only holds presentation state and the in-flight run.
type Model struct {
	machine    *wizard.Machine
	candidates []pyenv.Candidate
	start      func(install.Intent) (<-chan install.Event, error)

	spin   spinner.Model
	width  int
	height int

	// Options page state.
	field      field
	interpIdx  int
	versionIdx int
	custom     string
	validation string

	// Run state.
	events   <-chan install.Event
	log      []logLine
	terminal *install.Event

	startErr error
	aborted  bool
}

// New builds the wizard model. Selections already fixed on the machine
// (interpreter or version from command-line flags) arrive preselected.
func New(ctx context.Context, machine *wizard.Machine, candidates []pyenv.Candidate, start wizard.Starter) *Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(colorPrimary)

	m := &Model{
		machine:    machine,
		candidates: candidates,
		start: func(intent install.Intent) (<-chan install.Event, error) {
			return start(ctx, intent)
		},
		spin: s,
	}

	for i := range candidates {
		if candidates[i].Path == machine.Selection.Python {
			m.interpIdx = i
		}
	}
	if machine.Selection.VersionChoice == wizard.VersionCustom {
		m.versionIdx = versionSpecify
		m.custom = machine.Selection.CustomVersion
	}
	return m
}

// Init starts the spinner.
func (m *Model) Init() tea.Cmd {
	return m.spin.Tick
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.InterruptMsg:
		return m.handleInterrupt()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// Return a spinner tick to force a redraw.
		return m, m.spin.Tick

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case eventMsg:
		return m.handleEvent(install.Event(msg))

	case streamClosedMsg:
		return m, nil
	}

	return m, nil
}

// handleKey dispatches key presses to the current page.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.machine.Page() {
	case wizard.PageLicense:
		return m.handleLicenseKey(msg)
	case wizard.PageOptions:
		return m.handleOptionsKey(msg)
	case wizard.PageInstalling:
		// The run owns the screen until its terminal event arrives.
		return m, nil
	case wizard.PageFinished:
		return m, tea.Quit
	}
	return m, nil
}

// handleInterrupt treats SIGINT like ctrl+c: leave without changes before a
// run starts, close the program after it finished, never mid-run.
func (m *Model) handleInterrupt() (tea.Model, tea.Cmd) {
	switch m.machine.Page() {
	case wizard.PageLicense, wizard.PageOptions:
		m.aborted = true
		return m, tea.Quit
	case wizard.PageFinished:
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) handleLicenseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "a", "enter":
		m.machine.Selection.LicenseAccepted = true
		m.machine.Next()
		return m, nil
	case "q", "esc", "ctrl+c":
		m.aborted = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) handleOptionsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.validation = ""

	switch msg.String() {
	case "ctrl+c":
		m.aborted = true
		return m, tea.Quit
	case "esc":
		m.machine.Back()
		return m, nil
	case "enter":
		return m.submitOptions()
	case "tab":
		m.moveFocus(1)
		return m, nil
	case "shift+tab":
		m.moveFocus(-1)
		return m, nil
	}

	if m.field == fieldCustom {
		m.editCustom(msg)
		return m, nil
	}

	switch msg.String() {
	case "up", "k":
		m.moveCursor(-1)
	case "down", "j":
		m.moveCursor(1)
	}
	return m, nil
}

// submitOptions writes the highlighted choices onto the machine and starts
// the run. A validation refusal keeps the page up with its reason shown.
func (m *Model) submitOptions() (tea.Model, tea.Cmd) {
	m.applySelection()
	if !m.machine.Next() {
		if err := m.machine.Validate(); err != nil {
			m.validation = err.Error()
		}
		return m, nil
	}

	events, err := m.start(m.machine.Intent())
	if err != nil {
		m.startErr = err
		return m, tea.Quit
	}
	m.events = events
	return m, tea.Batch(m.spin.Tick, waitForEvent(m.events))
}

// applySelection copies the cursor positions into the machine's selection.
func (m *Model) applySelection() {
	if len(m.candidates) > 0 {
		m.machine.Selection.Python = m.candidates[m.interpIdx].Path
	}
	if m.machine.Selection.Operation != install.OpInstall {
		return
	}
	if m.versionIdx == versionSpecify {
		m.machine.Selection.VersionChoice = wizard.VersionCustom
		m.machine.Selection.CustomVersion = m.custom
		return
	}
	m.machine.Selection.VersionChoice = wizard.VersionLatest
	m.machine.Selection.CustomVersion = ""
}

// fields lists the focusable groups in display order. Uninstalls have no
// version to pick; the custom input only exists while "specify" is chosen.
func (m *Model) fields() []field {
	fields := []field{fieldInterpreter}
	if m.machine.Selection.Operation == install.OpInstall {
		fields = append(fields, fieldVersion)
		if m.versionIdx == versionSpecify {
			fields = append(fields, fieldCustom)
		}
	}
	return fields
}

func (m *Model) moveFocus(delta int) {
	fields := m.fields()
	pos := 0
	for i, f := range fields {
		if f == m.field {
			pos = i
		}
	}
	pos = (pos + delta + len(fields)) % len(fields)
	m.field = fields[pos]
}

func (m *Model) moveCursor(delta int) {
	switch m.field {
	case fieldInterpreter:
		next := m.interpIdx + delta
		if next >= 0 && next < len(m.candidates) {
			m.interpIdx = next
		}
	case fieldVersion:
		next := m.versionIdx + delta
		if next >= versionLatest && next <= versionSpecify {
			m.versionIdx = next
		}
	}
}

// editCustom types into the version input.
func (m *Model) editCustom(msg tea.KeyMsg) {
	switch msg.Type {
	case tea.KeyRunes, tea.KeySpace:
		m.custom += string(msg.Runes)
	case tea.KeyBackspace:
		if m.custom != "" {
			runes := []rune(m.custom)
			m.custom = string(runes[:len(runes)-1])
		}
	}
}

// handleEvent records one run event and keeps pumping until the channel
// closes. The terminal event flips the machine to Finished.
func (m *Model) handleEvent(ev install.Event) (tea.Model, tea.Cmd) {
	if !ev.Terminal {
		m.log = append(m.log, logLine{text: ev.Text, tone: ev.Tone})
		return m, waitForEvent(m.events)
	}
	m.terminal = &ev
	m.machine.Finish()
	return m, waitForEvent(m.events)
}

// waitForEvent blocks on the run's event channel and delivers the next
// event as a message.
func waitForEvent(events <-chan install.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return streamClosedMsg{}
		}
		return eventMsg(ev)
	}
}
