package align

import (
	"fmt"
	"strings"
)

// buildTitlePrompt asks for standards a chapter likely covers judging
// only from its title.
func buildTitlePrompt(chapterTitle, courseName, standardsSummary string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are a curriculum alignment specialist for the state curriculum frameworks. Given a chapter title from a %s course, suggest which standards this chapter likely covers.\n\n", courseName)
	fmt.Fprintf(&b, "## Standards for %s:\n%s\n\n", courseName, standardsSummary)
	fmt.Fprintf(&b, "## Chapter Title:\n%s\n\n", chapterTitle)
	fmt.Fprintf(&b, "Analyze the chapter title and match it to the most relevant standards. Consider:\n")
	fmt.Fprintf(&b, "- Keywords and topics in the title\n")
	fmt.Fprintf(&b, "- Common chapter groupings in %s courses\n", courseName)
	fmt.Fprintf(&b, "- Abbreviations and shorthand teachers commonly use\n\n")
	b.WriteString(suggestionFormat(titleConfidenceMin))

	return b.String()
}

// buildContentPrompt asks for standards covered by extracted study
// material.
func buildContentPrompt(topics []string, extractedText, courseName, standardsSummary string) string {
	var b strings.Builder

	b.WriteString("You are a curriculum alignment specialist. Given extracted content from a student's study material and a list of curriculum framework standards, identify which standards are covered by this material.\n\n")
	fmt.Fprintf(&b, "## Standards for %s:\n%s\n\n", courseName, standardsSummary)
	fmt.Fprintf(&b, "## Extracted Topics:\n%s\n\n", strings.Join(topics, ", "))
	fmt.Fprintf(&b, "## Extracted Text (excerpt):\n%s\n\n", extractedText)
	b.WriteString(suggestionFormat(contentConfidenceMin))

	return b.String()
}

func suggestionFormat(minConfidence float64) string {
	var b strings.Builder

	b.WriteString("Return a JSON array of matched standards. Each object should have:\n")
	b.WriteString(`- "standardId": the standard ID (e.g., "G-SRT.6")` + "\n")
	b.WriteString(`- "confidence": number 0-1 indicating match confidence` + "\n")
	b.WriteString(`- "reason": brief explanation of why this standard matches` + "\n\n")
	fmt.Fprintf(&b, "Only include standards with confidence >= %.1f. Return ONLY valid JSON array, no markdown code fences.", minConfidence)

	return b.String()
}
