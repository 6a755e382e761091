package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/clyp-lang/clyp-install/internal/install"
	"github.com/clyp-lang/clyp-install/internal/messages"
	"github.com/clyp-lang/clyp-install/internal/wizard"
)

var (
	// Colors
	colorPrimary = lipgloss.Color("#06B6D4") // Cyan
	colorGood    = lipgloss.Color("#10B981") // Emerald
	colorWarn    = lipgloss.Color("#F59E0B") // Amber
	colorBad     = lipgloss.Color("#EF4444") // Red
	colorMuted   = lipgloss.Color("#6B7280") // Gray
	colorBright  = lipgloss.Color("#F9FAFB") // White

	// Styles
	titleStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true).
			MarginBottom(1)

	successStyle = lipgloss.NewStyle().
			Foreground(colorGood).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorBad).
			Bold(true)

	warnStyle = lipgloss.NewStyle().
			Foreground(colorWarn)

	infoStyle = lipgloss.NewStyle().
			Foreground(colorPrimary)

	highlightStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	licenseStyle = lipgloss.NewStyle().
			Foreground(colorBright)

	selectedStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	unselectedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)
)

// View renders the current page.
func (m *Model) View() string {
	switch m.machine.Page() {
	case wizard.PageLicense:
		return m.viewLicense()
	case wizard.PageOptions:
		return m.viewOptions()
	case wizard.PageInstalling:
		return m.viewInstalling()
	case wizard.PageFinished:
		return m.viewFinished()
	}
	return ""
}

func (m *Model) viewLicense() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("  " + messages.WizardLicenseTitle))
	s.WriteString("\n\n")
	s.WriteString(licenseStyle.Render(messages.LicenseText))
	s.WriteString("\n\n")
	s.WriteString(dimStyle.Render("  " + messages.WizardLicenseHint))
	s.WriteString("\n\n")
	s.WriteString(highlightStyle.Render("  [a] accept"))
	s.WriteString(dimStyle.Render("   [q] quit"))

	return m.center(s.String())
}

func (m *Model) viewOptions() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("  " + messages.WizardTitle))
	s.WriteString("\n\n")

	s.WriteString(m.sectionTitle(fieldInterpreter, messages.WizardPythonPrompt))
	s.WriteString("\n")
	s.WriteString(dimStyle.Render("  " + messages.WizardPythonHint))
	s.WriteString("\n\n")
	for idx, c := range m.candidates {
		s.WriteString(m.listItem(idx == m.interpIdx, wizard.CandidateLabel(c)))
		s.WriteString("\n")
	}

	if m.machine.Selection.Operation == install.OpInstall {
		s.WriteString("\n")
		s.WriteString(m.sectionTitle(fieldVersion, messages.WizardVersionPrompt))
		s.WriteString("\n\n")
		s.WriteString(m.listItem(m.versionIdx == versionLatest, messages.WizardVersionLatest))
		s.WriteString("\n")
		s.WriteString(m.listItem(m.versionIdx == versionSpecify, messages.WizardVersionSpecify))
		s.WriteString("\n")

		if m.versionIdx == versionSpecify {
			s.WriteString("\n")
			s.WriteString(m.sectionTitle(fieldCustom, messages.WizardVersionInputTitle))
			s.WriteString("\n\n")
			input := m.custom
			style := dimStyle
			if m.field == fieldCustom {
				input += "_"
				style = highlightStyle
			}
			s.WriteString(style.Render("    > " + input))
			s.WriteString("\n")
		}
	}

	if m.validation != "" {
		s.WriteString("\n")
		s.WriteString(errorStyle.Render("  " + m.validation))
		s.WriteString("\n")
	}

	s.WriteString("\n")
	s.WriteString(highlightStyle.Render("  " + m.confirmPrompt()))
	s.WriteString("\n\n")
	s.WriteString(dimStyle.Render("  Up/Down to select  |  Tab to switch fields  |  Enter to continue  |  Esc back"))

	return m.center(s.String())
}

// sectionTitle renders a field heading, brightened while the field has
// focus.
func (m *Model) sectionTitle(f field, title string) string {
	if m.field == f {
		return highlightStyle.Render("  " + title)
	}
	return dimStyle.Render("  " + title)
}

// listItem renders one choice row with a cursor on the selected entry.
func (m *Model) listItem(selected bool, label string) string {
	cursor := "  "
	style := unselectedStyle
	if selected {
		cursor = "> "
		style = selectedStyle
	}
	return style.Render(fmt.Sprintf("    %s%s", cursor, label))
}

// confirmPrompt names what Enter will do, with the chosen interpreter.
func (m *Model) confirmPrompt() string {
	python := m.machine.Selection.Python
	if len(m.candidates) > 0 {
		python = m.candidates[m.interpIdx].Path
	}
	if m.machine.Selection.Operation == install.OpUninstall {
		return fmt.Sprintf(messages.WizardConfirmRemoveFmt, python)
	}
	return fmt.Sprintf(messages.WizardConfirmInstallFmt, python)
}

func (m *Model) viewInstalling() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("  " + messages.WizardInstallingTitle))
	s.WriteString("\n\n")
	s.WriteString(fmt.Sprintf("  %s %s\n\n", m.spin.View(), dimStyle.Render(m.machine.Selection.Python)))

	for _, line := range m.log {
		s.WriteString(toneStyle(line.tone).Render("  " + line.text))
		s.WriteString("\n")
	}

	return m.center(s.String())
}

func (m *Model) viewFinished() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("  " + messages.WizardFinishedTitle))
	s.WriteString("\n\n")
	s.WriteString(m.outcomeLines())
	s.WriteString("\n\n")
	s.WriteString(dimStyle.Render("  " + messages.WizardFinishedHint))

	return m.center(s.String())
}

// outcomeLines renders the terminal event the way the console flow prints
// it, minus the colors-by-writer indirection.
func (m *Model) outcomeLines() string {
	ev := m.terminal
	switch {
	case ev == nil:
		return ""
	case errors.Is(ev.Err, install.ErrBootstrapFailed):
		return errorStyle.Render("  "+messages.PipBootstrapFailed) + "\n" +
			errorStyle.Render("  "+messages.PipRequired)
	case ev.Err != nil:
		return errorStyle.Render("  " + ev.Err.Error())
	case ev.Result == nil:
		return ""
	case !ev.Result.Success:
		return errorStyle.Render("  " + ev.Result.Message)
	}

	out := successStyle.Render("  " + ev.Result.Message)
	if ev.Result.EnvDiff != "" {
		out += "\n\n" + dimStyle.Render("  "+messages.EnvChangesHeader) +
			"\n" + dimStyle.Render(indent(ev.Result.EnvDiff))
	}
	return out
}

func toneStyle(t install.Tone) lipgloss.Style {
	switch t {
	case install.ToneWarn:
		return warnStyle
	case install.ToneGood:
		return successStyle
	}
	return infoStyle
}

// indent prefixes every line with two spaces.
func indent(text string) string {
	lines := strings.Split(text, "\n")
	for i := range lines {
		lines[i] = "  " + lines[i]
	}
	return strings.Join(lines, "\n")
}

// center pads content down the screen a little.
func (m *Model) center(content string) string {
	if m.width == 0 || m.height == 0 {
		return content
	}

	height := len(strings.Split(content, "\n"))
	topPadding := (m.height - height) / 3
	if topPadding < 0 {
		topPadding = 0
	}

	var s strings.Builder
	for i := 0; i < topPadding; i++ {
		s.WriteString("\n")
	}
	s.WriteString(content)

	return s.String()
}
