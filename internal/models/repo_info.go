package models

// RepoInfo contains basic information about the repository being
// committed to.
type RepoInfo struct {
	// Path is the repository root
	Path string
	// Name is the directory name, used for display
	Name string
	// Branch is the current branch (or short hash when detached)
	Branch string
}
