package ai

import (
	"fmt"
	"strings"
)

// BuildPrompt wraps the name-status diff text in the fixed instruction used
// for every backend.
func BuildPrompt(diff string) string {
	return fmt.Sprintf(
		"Generate a concise, clear git commit message in English based on these file changes:\n\n%s\n\nRules:\n- Use conventional commits format (feat:, fix:, docs:, etc.)\n- Be specific but concise\n- Maximum 50 characters for the title\n- Only return the commit message, nothing else",
		strings.TrimSpace(diff),
	)
}
