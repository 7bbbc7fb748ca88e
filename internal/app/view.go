package app

import (
	"fmt"
	"strings"

	"github.com/comet-cli/comet/internal/ui"

	"github.com/charmbracelet/lipgloss"
)

// contentWidth returns the usable content width, adapting to terminal size
func (m Model) contentWidth() int {
	w := m.width - 8
	if w < 40 {
		w = 40
	}
	return w
}

// View renders the application
func (m Model) View() string {
	if m.shouldQuit {
		return ""
	}

	var sections []string

	sections = append(sections, ui.RenderBanner(m.dryRun))
	sections = append(sections, "")

	outerBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ui.ColorPurple).
		Width(m.contentWidth()).
		Padding(1, 2)

	sections = append(sections, outerBox.Render(m.renderContent()))

	sections = append(sections, "")
	sections = append(sections, m.renderStatusBar())

	content := strings.Join(sections, "\n")

	// Center horizontally in the terminal
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Top, content)
}

func (m Model) renderContent() string {
	switch m.screen {
	case ScreenLoading, ScreenGenerating, ScreenCommitting, ScreenPushing:
		return m.renderSpinner()
	case ScreenContextInput:
		return m.renderContextInput()
	case ScreenPicker:
		return m.renderPicker()
	case ScreenComplete:
		return m.renderComplete()
	case ScreenError:
		return m.renderError()
	}
	return ""
}

func (m Model) renderSpinner() string {
	spinnerStyle := lipgloss.NewStyle().Foreground(ui.ColorCyan)
	textStyle := lipgloss.NewStyle().Foreground(ui.ColorWhite)

	return fmt.Sprintf("%s %s",
		spinnerStyle.Render(ui.Spinner(m.spinnerFrame)),
		textStyle.Render(m.loadingMessage),
	)
}

func (m Model) renderContextInput() string {
	var lines []string

	lines = append(lines, ui.SectionHeader("STAGED CHANGES", ui.ColorCyan))
	if len(m.stagedFiles) == 0 {
		dimStyle := lipgloss.NewStyle().Foreground(ui.ColorDarkGray)
		lines = append(lines, dimStyle.Render("  (file listing unavailable)"))
	}
	for _, f := range m.stagedFiles {
		statusStyle := lipgloss.NewStyle().Foreground(ui.StatusColor(f.Status)).Bold(true)
		pathStyle := lipgloss.NewStyle().Foreground(ui.ColorWhite)
		lines = append(lines, fmt.Sprintf("  %s %s",
			statusStyle.Render(f.Status),
			pathStyle.Render(ui.TruncateLine(f.Path, m.contentWidth()-8)),
		))
	}

	if m.largeDiff() {
		warnStyle := lipgloss.NewStyle().Foreground(ui.ColorYellow)
		lines = append(lines, "")
		lines = append(lines, warnStyle.Render("  ⚠ Large diff: the full text is sent to the model"))
	}

	lines = append(lines, "")
	lines = append(lines, ui.SectionHeader("ADDITIONAL INFORMATION", ui.ColorPurple))
	dimStyle := lipgloss.NewStyle().Foreground(ui.ColorDarkGray)
	lines = append(lines, dimStyle.Render("  Optional context for the model, e.g. a ticket reference"))
	lines = append(lines, "")

	inputStyle := lipgloss.NewStyle().Foreground(ui.ColorWhite)
	cursorStyle := lipgloss.NewStyle().Foreground(ui.ColorCyan).Bold(true)
	lines = append(lines, "  > "+inputStyle.Render(m.contextInput)+cursorStyle.Render("▌"))

	lines = append(lines, "")
	lines = append(lines, "  "+ui.KeyBinding("enter", "generate", ui.ColorGreen)+
		"   "+ui.KeyBinding("esc", "quit", ui.ColorRed))

	return strings.Join(lines, "\n")
}

func (m Model) renderPicker() string {
	var lines []string

	lines = append(lines, ui.SectionHeader("COMMIT MESSAGE CANDIDATES", ui.ColorCyan))
	lines = append(lines, "")

	for i, candidate := range m.candidates {
		selected := i == m.pickerIndex

		subjectStyle := lipgloss.NewStyle().Foreground(ui.ColorWhite)
		bodyStyle := lipgloss.NewStyle().Foreground(ui.ColorDarkGray)
		if selected {
			subjectStyle = lipgloss.NewStyle().Foreground(ui.ColorGreen).Bold(true)
			bodyStyle = lipgloss.NewStyle().Foreground(ui.ColorWhite)
		}

		// Candidates render as paragraphs: subject first, body lines under it
		for j, line := range strings.Split(candidate, "\n") {
			prefix := "    "
			style := bodyStyle
			if j == 0 {
				prefix = ui.ArrowStyled(selected, ui.ColorGreen)
				style = subjectStyle
			}
			lines = append(lines, "  "+prefix+style.Render(ui.TruncateLine(line, m.contentWidth()-10)))
		}
		lines = append(lines, "")
	}

	lines = append(lines, "  "+ui.KeyBinding("↑/↓", "select", ui.ColorCyan)+
		"   "+ui.KeyBinding("enter", "commit", ui.ColorGreen)+
		"   "+ui.KeyBinding("esc", "quit", ui.ColorRed))

	return strings.Join(lines, "\n")
}

func (m Model) renderComplete() string {
	var lines []string

	successStyle := lipgloss.NewStyle().Foreground(ui.ColorGreen).Bold(true)
	outputStyle := lipgloss.NewStyle().Foreground(ui.ColorDarkGray)

	lines = append(lines, successStyle.Render("✓ Commit created"))
	if m.commitResult != nil && m.commitResult.Output != "" {
		lines = append(lines, outputStyle.Render(ui.TruncateLine(m.commitResult.Output, m.contentWidth()-6)))
	}

	if m.pushResult != nil {
		lines = append(lines, "")
		if m.pushResult.Success {
			lines = append(lines, successStyle.Render("✓ Changes pushed"))
		} else {
			failStyle := lipgloss.NewStyle().Foreground(ui.ColorRed).Bold(true)
			msg := "failed to push changes"
			if m.pushResult.Error != nil {
				msg = *m.pushResult.Error
			}
			lines = append(lines, failStyle.Render("✗ "+msg))
		}
	}

	lines = append(lines, "")
	lines = append(lines, ui.KeyBinding("q", "quit", ui.ColorCyan))

	return strings.Join(lines, "\n")
}

func (m Model) renderError() string {
	var lines []string

	if m.isWarning {
		warnStyle := lipgloss.NewStyle().Foreground(ui.ColorYellow).Bold(true)
		lines = append(lines, warnStyle.Render("⚠ "+m.errorMessage))
	} else {
		errStyle := lipgloss.NewStyle().Foreground(ui.ColorRed).Bold(true)
		lines = append(lines, errStyle.Render("✗ "+m.errorMessage))
	}

	lines = append(lines, "")
	lines = append(lines, ui.KeyBinding("q", "quit", ui.ColorCyan))

	return strings.Join(lines, "\n")
}

func (m Model) renderStatusBar() string {
	barStyle := lipgloss.NewStyle().Foreground(ui.ColorDarkGray)

	parts := []string{m.screen.String()}
	if m.repo != nil {
		parts = append(parts, fmt.Sprintf("%s @ %s", m.repo.Name, m.repo.Branch))
	}
	parts = append(parts, m.config.Model)

	return barStyle.Render("  " + strings.Join(parts, "  │  "))
}
