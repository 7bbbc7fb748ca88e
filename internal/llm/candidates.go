package llm

import "strings"

// Candidates regroups the model's raw output into commit message
// candidates: lines are split on newline and contiguous non-blank
// lines are joined into paragraphs delimited by blank lines. Order is
// preserved; the first line of each candidate is the commit subject.
func Candidates(raw string) []string {
	var candidates []string
	var current []string

	flush := func() {
		if len(current) > 0 {
			candidates = append(candidates, strings.Join(current, "\n"))
			current = nil
		}
	}

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()

	return candidates
}
