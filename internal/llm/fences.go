package llm

import (
	"regexp"
	"strings"
)

var (
	openFence  = regexp.MustCompile("(?i)^```(?:json)?[ \t]*\n?")
	closeFence = regexp.MustCompile("(?i)\n?```[ \t]*$")
)

// StripCodeFences removes a leading ```json fence and a trailing ```
// fence from model output. Models add fences despite instructions not
// to, so every caller that parses free-form JSON runs through this.
func StripCodeFences(text string) string {
	text = openFence.ReplaceAllString(text, "")
	text = closeFence.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}
