package app

import (
	"errors"
	"testing"

	"github.com/comet-cli/comet/internal/config"
	"github.com/comet-cli/comet/internal/git"
	"github.com/comet-cli/comet/internal/llm"
	"github.com/comet-cli/comet/internal/models"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(cfg *config.Config) Model {
	m := New(cfg, llm.NewClient(), false)
	m.repo = &models.RepoInfo{Path: ".", Name: "demo", Branch: "main"}
	m.gitData = &models.GitData{Diff: "+x"}
	return m
}

func apply(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func TestInitialScreenIsLoading(t *testing.T) {
	m := New(config.DefaultConfig(), llm.NewClient(), false)
	assert.Equal(t, ScreenLoading, m.screen)
}

func TestEmptyDiffAbortsBeforeNetwork(t *testing.T) {
	m := newTestModel(config.DefaultConfig())

	m, cmd := apply(t, m, repoLoadedResult{err: git.ErrNoCommitData})

	assert.Equal(t, ScreenError, m.screen)
	assert.False(t, m.isWarning)
	assert.Contains(t, m.errorMessage, "failed to get commit data")
	assert.Nil(t, cmd)
}

func TestRepoLoadedMovesToContextInput(t *testing.T) {
	m := newTestModel(config.DefaultConfig())

	m, _ = apply(t, m, repoLoadedResult{
		repo:   m.repo,
		staged: []models.StagedFile{{Status: "M", Path: "a.go"}},
		data:   &models.GitData{Diff: "+x"},
	})

	assert.Equal(t, ScreenContextInput, m.screen)
}

func TestMissingAPIKeyNeverStartsRequest(t *testing.T) {
	t.Setenv(config.EnvAPIKey, "")
	m := newTestModel(config.DefaultConfig())
	m.screen = ScreenContextInput

	m, cmd := apply(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, ScreenError, m.screen)
	assert.Contains(t, m.errorMessage, "API key not found")
	assert.Nil(t, cmd)
}

func TestEnterStartsGeneration(t *testing.T) {
	t.Setenv(config.EnvAPIKey, "sk-or-test")
	m := newTestModel(config.DefaultConfig())
	m.screen = ScreenContextInput

	m, cmd := apply(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, ScreenGenerating, m.screen)
	assert.Equal(t, "Generating commit message...", m.loadingMessage)
	assert.NotNil(t, cmd)
}

func TestGeneratingScreenIgnoresKeys(t *testing.T) {
	m := newTestModel(config.DefaultConfig())
	m.screen = ScreenGenerating

	m, cmd := apply(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	// A second generation cannot be triggered while one is in flight
	assert.Equal(t, ScreenGenerating, m.screen)
	assert.Nil(t, cmd)
}

func TestContextInputTyping(t *testing.T) {
	m := newTestModel(config.DefaultConfig())
	m.screen = ScreenContextInput

	m, _ = apply(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("fix")})
	assert.Equal(t, "fix", m.contextInput)

	m, _ = apply(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "fi", m.contextInput)
}

func TestGenerateResultShowsPicker(t *testing.T) {
	m := newTestModel(config.DefaultConfig())
	m.screen = ScreenGenerating

	m, _ = apply(t, m, generateResult{candidates: []string{"feat: a", "fix: b"}})

	assert.Equal(t, ScreenPicker, m.screen)
	assert.Equal(t, []string{"feat: a", "fix: b"}, m.candidates)
	assert.Equal(t, 0, m.pickerIndex)
}

func TestWarmingUpIsWarningNotError(t *testing.T) {
	m := newTestModel(config.DefaultConfig())
	m.screen = ScreenGenerating

	m, _ = apply(t, m, generateResult{err: llm.ErrModelWarmingUp})

	assert.Equal(t, ScreenError, m.screen)
	assert.True(t, m.isWarning)
}

func TestNoCandidatesIsWarning(t *testing.T) {
	m := newTestModel(config.DefaultConfig())
	m.screen = ScreenGenerating

	m, _ = apply(t, m, generateResult{err: llm.ErrNoCandidates})

	assert.Equal(t, ScreenError, m.screen)
	assert.True(t, m.isWarning)
	assert.Contains(t, m.errorMessage, "no commit messages generated")
}

func TestAPIErrorIsHardError(t *testing.T) {
	m := newTestModel(config.DefaultConfig())
	m.screen = ScreenGenerating

	m, _ = apply(t, m, generateResult{err: errors.New("rate limited, try again later")})

	assert.Equal(t, ScreenError, m.screen)
	assert.False(t, m.isWarning)
}

func TestPickerNavigationWraps(t *testing.T) {
	m := newTestModel(config.DefaultConfig())
	m.screen = ScreenPicker
	m.candidates = []string{"a", "b", "c"}

	m, _ = apply(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")})
	assert.Equal(t, 2, m.pickerIndex) // wrapped to bottom

	m, _ = apply(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	assert.Equal(t, 0, m.pickerIndex) // wrapped back to top
}

func TestPickerSelectionStartsCommit(t *testing.T) {
	m := newTestModel(config.DefaultConfig())
	m.screen = ScreenPicker
	m.candidates = []string{"feat: a", "fix: b"}
	m.pickerIndex = 1

	m, cmd := apply(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, ScreenCommitting, m.screen)
	assert.Equal(t, "fix: b", m.selected)
	assert.NotNil(t, cmd)
}

func TestCommitSuccessWithoutAutoPushCompletes(t *testing.T) {
	m := newTestModel(config.DefaultConfig())
	m.screen = ScreenCommitting

	m, cmd := apply(t, m, commitDoneResult{result: models.OpResult{Success: true}})

	assert.Equal(t, ScreenComplete, m.screen)
	assert.Nil(t, cmd) // never pushes when auto_push is off
	assert.Nil(t, m.pushResult)
}

func TestCommitSuccessWithAutoPushAlwaysPushes(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.AutoPush = true
	m := newTestModel(cfg)
	m.screen = ScreenCommitting

	m, cmd := apply(t, m, commitDoneResult{result: models.OpResult{Success: true}})

	assert.Equal(t, ScreenPushing, m.screen)
	assert.NotNil(t, cmd)
}

func TestCommitFailureShowsErrorAndSkipsPush(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.AutoPush = true
	m := newTestModel(cfg)
	m.screen = ScreenCommitting

	errMsg := "failed to create commit: hook rejected"
	m, cmd := apply(t, m, commitDoneResult{result: models.OpResult{Success: false, Error: &errMsg}})

	assert.Equal(t, ScreenError, m.screen)
	assert.Equal(t, errMsg, m.errorMessage)
	assert.Nil(t, cmd)
}

func TestPushFailureKeepsCommitReported(t *testing.T) {
	m := newTestModel(config.DefaultConfig())
	m.screen = ScreenPushing
	m.commitResult = &models.OpResult{Success: true}

	errMsg := "failed to push changes"
	m, _ = apply(t, m, pushDoneResult{result: models.OpResult{Success: false, Error: &errMsg}})

	// Push reports its own outcome; the commit stays reported as created
	assert.Equal(t, ScreenComplete, m.screen)
	require.NotNil(t, m.pushResult)
	assert.False(t, m.pushResult.Success)
	assert.True(t, m.commitResult.Success)
}
