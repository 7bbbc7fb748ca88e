package git

import (
	"os/exec"
	"strings"

	"github.com/comet-cli/comet/internal/models"
)

// MessageLines splits a selected candidate into commit message parts:
// the first line is the subject, every subsequent non-empty line is an
// independent body paragraph.
func MessageLines(candidate string) []string {
	var lines []string
	for _, line := range strings.Split(candidate, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// CommitArgs builds the git argument list for a commit, one -m flag
// per message line so multi-paragraph structure survives.
func CommitArgs(lines []string) []string {
	args := []string{"commit"}
	for _, line := range lines {
		args = append(args, "-m", line)
	}
	return args
}

// Commit creates a commit from the selected candidate message using
// the git CLI (to inherit hooks, signing and identity config).
func Commit(repoPath, candidate string) models.OpResult {
	lines := MessageLines(candidate)
	if len(lines) == 0 {
		msg := "empty commit message"
		return models.OpResult{Success: false, Error: &msg}
	}

	cmd := exec.Command("git", CommitArgs(lines)...)
	cmd.Dir = repoPath

	output, err := cmd.CombinedOutput()
	out := strings.TrimSpace(string(output))
	if err != nil {
		msg := "failed to create commit"
		if out != "" {
			msg = msg + ": " + out
		}
		return models.OpResult{Success: false, Output: out, Error: &msg}
	}

	return models.OpResult{Success: true, Output: out}
}

// Push pushes to the default remote using the git CLI (to inherit the
// SSH agent). Reports its own outcome, independent of the commit's.
func Push(repoPath string) models.OpResult {
	cmd := exec.Command("git", "push")
	cmd.Dir = repoPath

	output, err := cmd.CombinedOutput()
	out := strings.TrimSpace(string(output))
	if err != nil {
		msg := "failed to push changes"
		if out != "" {
			msg = msg + ": " + out
		}
		return models.OpResult{Success: false, Output: out, Error: &msg}
	}

	return models.OpResult{Success: true, Output: out}
}
