package models

// StagedFile is one entry from the staged-change listing shown before
// generation.
type StagedFile struct {
	// Status is the single-letter git status code (A, M, D, R, ...)
	Status string
	// Path is the file path relative to the repository root
	Path string
}
