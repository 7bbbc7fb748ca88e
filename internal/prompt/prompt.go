// Package prompt builds the user-turn content for the chat-completion
// request. All formatting instructions live in the system message; the
// template only frames the diff.
package prompt

import (
	"fmt"
	"strings"

	"github.com/comet-cli/comet/internal/models"
)

// DefaultTemplate frames the diff with no additional instructions.
// Exactly one substitution point for the diff text.
const DefaultTemplate = "```diff\n%s\n```"

// SystemPrompt is the fixed, non-configurable system instruction.
const SystemPrompt = "You are an expert software engineer writing git commit messages. " +
	"Given a diff of staged changes, write exactly one commit message that follows " +
	"the Conventional Commits specification (type, optional scope, imperative " +
	"description, optional body paragraphs). Return only the commit message, with " +
	"no surrounding prose, quotes or code fences. If an \"Additional information\" " +
	"section is present, weight it heavily when describing the change."

// Build produces the final prompt from the template, the collected git
// data and optional user-supplied context. A non-empty custom template
// is used verbatim in place of the default; extra context is appended
// as a delimited section rather than merged into the diff.
func Build(customTemplate string, data *models.GitData, extraContext string) string {
	template := DefaultTemplate
	if customTemplate != "" {
		template = customTemplate
	}

	out := fmt.Sprintf(template, data.Diff)

	if extra := strings.TrimSpace(extraContext); extra != "" {
		out += "\n\nAdditional information:\n" + extra
	}

	return out
}
