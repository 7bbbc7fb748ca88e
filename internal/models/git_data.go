package models

// GitData holds the repository snapshot for one generate invocation.
// It is consumed by the prompt builder and discarded once the request
// is composed.
type GitData struct {
	// Diff is the raw staged diff text
	Diff string
	// Commits is reserved for recent-history context; the collector
	// leaves it empty for now
	Commits string
}
