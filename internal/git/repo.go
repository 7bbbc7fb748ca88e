package git

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/comet-cli/comet/internal/models"

	gogit "github.com/go-git/go-git/v5"
)

// IsGitRepo checks if the path is a git repository
func IsGitRepo(path string) bool {
	_, err := gogit.PlainOpen(path)
	return err == nil
}

// GetCurrentRepoInfo walks up from the working directory to the git
// root and reads the current branch.
func GetCurrentRepoInfo() (*models.RepoInfo, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	// Walk up to find git root
	path := cwd
	for {
		if IsGitRepo(path) {
			break
		}
		parent := filepath.Dir(path)
		if parent == path {
			return nil, os.ErrNotExist
		}
		path = parent
	}

	repo, err := gogit.PlainOpen(path)
	if err != nil {
		return nil, err
	}

	branch := "HEAD"
	if head, err := repo.Head(); err == nil {
		if head.Name().IsBranch() {
			branch = head.Name().Short()
		} else {
			// Detached HEAD: show the short hash instead
			branch = head.Hash().String()[:7]
		}
	}

	return &models.RepoInfo{
		Path:   path,
		Name:   filepath.Base(path),
		Branch: branch,
	}, nil
}

// ParseNameStatus parses `git diff --cached --name-status` output into
// staged file entries. Lines that do not look like status entries are
// skipped.
func ParseNameStatus(output string) []models.StagedFile {
	var files []models.StagedFile
	for _, line := range strings.Split(output, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts := strings.SplitN(line, "\t", 2)
		if len(parts) < 2 {
			continue
		}
		status := strings.TrimSpace(parts[0])
		path := strings.TrimSpace(parts[1])
		// Renames/copies carry a score suffix (R100) and two paths;
		// keep the letter and the destination path
		if len(status) > 1 {
			if rest := strings.SplitN(path, "\t", 2); len(rest) == 2 {
				path = rest[1]
			}
			status = status[:1]
		}
		files = append(files, models.StagedFile{Status: status, Path: path})
	}
	return files
}
