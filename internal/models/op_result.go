package models

// OpResult is the outcome of a git commit or push operation.
type OpResult struct {
	// Success indicates whether the operation exited zero
	Success bool
	// Output is the trimmed combined output of the command
	Output string
	// Error message if failed
	Error *string
}
