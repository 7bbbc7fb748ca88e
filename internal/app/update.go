package app

import (
	"errors"

	"github.com/comet-cli/comet/internal/llm"

	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all messages and updates state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		m.spinnerFrame = (m.spinnerFrame + 1) % 10
		return m, tickCmd()

	// Task result messages
	case repoLoadedResult:
		return m.handleRepoLoaded(msg)

	case generateResult:
		return m.handleGenerateResult(msg)

	case commitDoneResult:
		return m.handleCommitDone(msg)

	case pushDoneResult:
		return m.handlePushDone(msg)
	}

	return m, nil
}

// handleKey processes keyboard input
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global quit
	if msg.Type == tea.KeyCtrlC {
		m.shouldQuit = true
		return m, tea.Quit
	}

	switch m.screen {
	case ScreenContextInput:
		return m.handleContextInputKey(msg)
	case ScreenPicker:
		return m.handlePickerKey(msg)
	case ScreenComplete, ScreenError:
		return m.handleTerminalKey(msg)
	}

	// Loading, generating, committing and pushing screens ignore input:
	// one flow at a time, a second generation cannot start while one is
	// outstanding.
	return m, nil
}

func (m Model) handleContextInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		return m.startGeneration()
	case tea.KeyEsc:
		m.shouldQuit = true
		return m, tea.Quit
	case tea.KeyBackspace:
		if len(m.contextInput) > 0 {
			runes := []rune(m.contextInput)
			m.contextInput = string(runes[:len(runes)-1])
		}
	case tea.KeySpace:
		m.contextInput += " "
	case tea.KeyRunes:
		m.contextInput += string(msg.Runes)
	}
	return m, nil
}

// startGeneration resolves the credential and fires the request. A
// missing key never reaches the network.
func (m Model) startGeneration() (tea.Model, tea.Cmd) {
	apiKey := ""
	if !m.dryRun {
		key, err := m.config.ResolveAPIKey()
		if err != nil {
			m.screen = ScreenError
			m.isWarning = false
			m.errorMessage = err.Error()
			return m, nil
		}
		apiKey = key
	}

	m.screen = ScreenGenerating
	m.loadingMessage = "Generating commit message..."
	return m, generateCmd(m.client, m.config, apiKey, m.gitData, m.contextInput, m.dryRun)
}

func (m Model) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		m.shouldQuit = true
		return m, tea.Quit
	case "up", "k":
		if m.pickerIndex > 0 {
			m.pickerIndex--
		} else {
			m.pickerIndex = len(m.candidates) - 1 // Wrap to bottom
		}
	case "down", "j":
		if m.pickerIndex < len(m.candidates)-1 {
			m.pickerIndex++
		} else {
			m.pickerIndex = 0 // Wrap to top
		}
	case "enter":
		if len(m.candidates) == 0 {
			return m, nil
		}
		m.selected = m.candidates[m.pickerIndex]
		m.screen = ScreenCommitting
		m.loadingMessage = "Creating commit..."
		return m, commitCmd(m.repo.Path, m.selected, m.dryRun)
	}
	return m, nil
}

func (m Model) handleTerminalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "enter":
		m.shouldQuit = true
		return m, tea.Quit
	}
	return m, nil
}

// Result handlers

func (m Model) handleRepoLoaded(msg repoLoadedResult) (tea.Model, tea.Cmd) {
	m.repo = msg.repo
	if msg.err != nil {
		m.screen = ScreenError
		m.isWarning = false
		m.errorMessage = msg.err.Error()
		return m, nil
	}
	m.stagedFiles = msg.staged
	m.gitData = msg.data
	m.screen = ScreenContextInput
	return m, nil
}

func (m Model) handleGenerateResult(msg generateResult) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.screen = ScreenError
		// Empty output is a warning, not a hard failure
		m.isWarning = errors.Is(msg.err, llm.ErrModelWarmingUp) ||
			errors.Is(msg.err, llm.ErrNoCandidates)
		m.errorMessage = msg.err.Error()
		return m, nil
	}

	m.candidates = msg.candidates
	m.pickerIndex = 0
	m.screen = ScreenPicker
	return m, nil
}

func (m Model) handleCommitDone(msg commitDoneResult) (tea.Model, tea.Cmd) {
	m.commitResult = &msg.result

	if !msg.result.Success {
		m.screen = ScreenError
		m.isWarning = false
		m.errorMessage = "failed to create commit"
		if msg.result.Error != nil {
			m.errorMessage = *msg.result.Error
		}
		return m, nil
	}

	// Commit outcome is settled; an auto push reports separately
	if m.config.AutoPush {
		m.screen = ScreenPushing
		m.loadingMessage = "Pushing changes..."
		return m, pushCmd(m.repo.Path, m.dryRun)
	}

	m.screen = ScreenComplete
	return m, nil
}

func (m Model) handlePushDone(msg pushDoneResult) (tea.Model, tea.Cmd) {
	m.pushResult = &msg.result
	// Push failure does not undo the already-reported commit success
	m.screen = ScreenComplete
	return m, nil
}
