package git

import (
	"errors"
	"os/exec"
	"strings"

	"github.com/comet-cli/comet/internal/models"
)

// ErrNoCommitData covers both "nothing staged" and "diff command
// failed": the collector has a single failure path.
var ErrNoCommitData = errors.New("failed to get commit data")

// CollectDiff runs the diff command against the index and returns the
// captured output. Empty output aborts the flow before any network
// call is made.
func CollectDiff(repoPath string) (*models.GitData, error) {
	cmd := exec.Command("git", "diff", "--cached")
	cmd.Dir = repoPath

	output, err := cmd.Output()
	if err != nil {
		return nil, ErrNoCommitData
	}

	diff := string(output)
	if strings.TrimSpace(diff) == "" {
		return nil, ErrNoCommitData
	}

	return &models.GitData{Diff: diff}, nil
}

// StagedFiles lists staged changes for the review screen, mirroring
// `git diff --cached --name-status`.
func StagedFiles(repoPath string) ([]models.StagedFile, error) {
	cmd := exec.Command("git", "diff", "--cached", "--name-status")
	cmd.Dir = repoPath

	output, err := cmd.Output()
	if err != nil {
		return nil, &GitError{Command: "diff --name-status", Output: err.Error()}
	}

	return ParseNameStatus(string(output)), nil
}

// GitError provides better context for git command failures
type GitError struct {
	Command string
	Output  string
}

func (e *GitError) Error() string {
	return "git " + e.Command + ": " + e.Output
}
