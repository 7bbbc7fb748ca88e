package app

import (
	"context"
	"time"

	"github.com/comet-cli/comet/internal/config"
	"github.com/comet-cli/comet/internal/git"
	"github.com/comet-cli/comet/internal/llm"
	"github.com/comet-cli/comet/internal/models"
	"github.com/comet-cli/comet/internal/prompt"

	tea "github.com/charmbracelet/bubbletea"
)

// Message types for async operations

type repoLoadedResult struct {
	repo   *models.RepoInfo
	staged []models.StagedFile
	data   *models.GitData
	err    error
}

type generateResult struct {
	candidates []string
	err        error
}

type commitDoneResult struct {
	result models.OpResult
}

type pushDoneResult struct {
	result models.OpResult
}

// Commands

// loadRepoCmd discovers the repository and collects the staged diff.
// An empty diff aborts the flow here, before any network call.
func loadRepoCmd(dryRun bool) tea.Cmd {
	return func() tea.Msg {
		// Dry run mode: return fake repository data
		if dryRun {
			time.Sleep(400 * time.Millisecond)
			return repoLoadedResult{
				repo: &models.RepoInfo{Path: ".", Name: "demo-repo", Branch: "main"},
				staged: []models.StagedFile{
					{Status: "M", Path: "internal/server/router.go"},
					{Status: "A", Path: "internal/server/middleware.go"},
				},
				data: &models.GitData{Diff: "+func Middleware() {}\n-// old handler\n"},
			}
		}

		repo, err := git.GetCurrentRepoInfo()
		if err != nil {
			return repoLoadedResult{err: err}
		}

		data, err := git.CollectDiff(repo.Path)
		if err != nil {
			return repoLoadedResult{repo: repo, err: err}
		}

		staged, _ := git.StagedFiles(repo.Path)

		return repoLoadedResult{repo: repo, staged: staged, data: data}
	}
}

// generateCmd performs the single chat-completion request. The
// generating screen is already visible when this runs; the result is
// delivered back on the program loop as a message.
func generateCmd(client *llm.Client, cfg *config.Config, apiKey string, data *models.GitData, extraContext string, dryRun bool) tea.Cmd {
	return func() tea.Msg {
		if dryRun {
			time.Sleep(800 * time.Millisecond)
			return generateResult{candidates: []string{
				"feat(server): add request logging middleware",
				"refactor(server): replace inline handler with middleware chain",
				"chore(server): tidy router setup",
			}}
		}

		userPrompt := prompt.Build(cfg.CustomPrompt, data, extraContext)
		payload := llm.ComposeRequest(cfg.Model, userPrompt)

		content, err := client.Generate(context.Background(), apiKey, payload)
		if err != nil {
			return generateResult{err: err}
		}

		candidates := llm.Candidates(content)
		if len(candidates) == 0 {
			return generateResult{err: llm.ErrNoCandidates}
		}

		return generateResult{candidates: candidates}
	}
}

// commitCmd creates the commit from the selected candidate.
func commitCmd(repoPath, candidate string, dryRun bool) tea.Cmd {
	return func() tea.Msg {
		if dryRun {
			time.Sleep(400 * time.Millisecond)
			return commitDoneResult{result: models.OpResult{
				Success: true,
				Output:  "[main abc1234] " + git.MessageLines(candidate)[0],
			}}
		}
		return commitDoneResult{result: git.Commit(repoPath, candidate)}
	}
}

// pushCmd pushes after a successful commit when auto_push is set. Its
// outcome is reported independently of the commit's.
func pushCmd(repoPath string, dryRun bool) tea.Cmd {
	return func() tea.Msg {
		if dryRun {
			time.Sleep(400 * time.Millisecond)
			return pushDoneResult{result: models.OpResult{Success: true}}
		}
		return pushDoneResult{result: git.Push(repoPath)}
	}
}
