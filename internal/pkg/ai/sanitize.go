package ai

import "strings"

// CollapseWhitespace reduces every whitespace run, including newlines, to a
// single space and trims the ends. Idempotent on already-collapsed strings.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// FirstLine returns the text before the first newline of the trimmed input.
func FirstLine(s string) string {
	s = strings.TrimSpace(s)
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		return s[:idx]
	}
	return s
}

// Sanitize applies the shared post-processing rules to a raw backend
// response. When firstLineOnly is set, everything after the first line is
// discarded before whitespace collapsing; otherwise embedded newlines are
// folded into spaces. An absent or effectively empty response yields the
// fixed fallback message.
func Sanitize(raw string, firstLineOnly bool) string {
	if firstLineOnly {
		raw = FirstLine(raw)
	}

	cleaned := CollapseWhitespace(raw)
	if cleaned == "" {
		return FallbackMessage
	}
	return cleaned
}
