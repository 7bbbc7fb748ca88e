package app

import (
	"time"

	"github.com/comet-cli/comet/internal/config"
	"github.com/comet-cli/comet/internal/llm"
	"github.com/comet-cli/comet/internal/models"

	tea "github.com/charmbracelet/bubbletea"
)

// diffWarnBytes is the size above which the context screen shows a
// large-diff warning. The payload is still sent unmodified.
const diffWarnBytes = 96 * 1024

// Model is the main application state
type Model struct {
	// Configuration
	config *config.Config
	dryRun bool
	client *llm.Client

	// Navigation
	screen     Screen
	shouldQuit bool

	// Repository state
	repo        *models.RepoInfo
	stagedFiles []models.StagedFile
	gitData     *models.GitData

	// Context input state
	contextInput string

	// Candidate state
	candidates  []string
	pickerIndex int
	selected    string

	// Outcome state
	commitResult *models.OpResult
	pushResult   *models.OpResult

	// UI state
	errorMessage   string
	isWarning      bool
	loadingMessage string
	spinnerFrame   int

	// Window size
	width  int
	height int
}

// New creates a new application model. The API client is injected so
// tests can point it at a local server.
func New(cfg *config.Config, client *llm.Client, dryRun bool) Model {
	return Model{
		config:         cfg,
		client:         client,
		dryRun:         dryRun,
		screen:         ScreenLoading,
		loadingMessage: "Reading staged changes...",
		width:          80,
		height:         24,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tickCmd(),
		loadRepoCmd(m.dryRun),
	)
}

// tickMsg is sent on each tick for the spinner
type tickMsg struct{}

func tickCmd() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(_ time.Time) tea.Msg {
		return tickMsg{}
	})
}

// largeDiff reports whether the collected diff is big enough to warn
// about before sending.
func (m Model) largeDiff() bool {
	return m.gitData != nil && len(m.gitData.Diff) > diffWarnBytes
}
