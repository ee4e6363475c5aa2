package problemgen

import (
	"fmt"
	"strings"

	"github.com/mgreer/studyprep/internal/curriculum"
)

const systemPrompt = `You are a tutor creating practice problems for a high school student preparing for a quiz.

Given the topic and study material context below, generate practice problems with step-by-step solutions.

Requirements:
- Each problem should test understanding of the topic
- Include step-by-step solutions using LaTeX notation
- Use $...$ for inline math and $$...$$ for display/block math
- Problems should be at the requested difficulty level:
  - Easy: Direct application of a single concept
  - Medium: Requires combining 2+ concepts or multi-step reasoning
  - Hard: Complex problems requiring deep understanding, word problems, or proofs
- Make problems similar in style to those in the study materials, but NOT identical
- Vary the types of problems (computation, word problems, conceptual)

Return a JSON array of objects, each with:
- "questionText": The problem statement (with LaTeX)
- "solutionText": Step-by-step solution (with LaTeX)
- "difficulty": The difficulty level
- "topic": The specific sub-topic being tested
- "standardId": The id of the aligned standard, when one applies

Return ONLY valid JSON array, no markdown code fences.`

// buildUserMessage assembles the per-request portion of the prompt:
// topic, difficulty, count, course context and material context.
func buildUserMessage(input GenerateInput, catalog *curriculum.Catalog) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n", input.Topic)
	fmt.Fprintf(&b, "Difficulty: %s\n", input.Difficulty)
	fmt.Fprintf(&b, "Number of problems: %d\n", input.Count)

	if cc := input.Course; cc.CourseName != "" {
		b.WriteString("\nCourse context:\n")
		fmt.Fprintf(&b, "Course: %s", cc.CourseName)
		if cc.Level != "" {
			fmt.Fprintf(&b, " (%s)", cc.Level)
		}
		b.WriteByte('\n')
		if cc.Grade != 0 {
			fmt.Fprintf(&b, "Grade: %d\n", cc.Grade)
		}
		if cc.ChapterTitle != "" {
			fmt.Fprintf(&b, "Chapter: %s\n", cc.ChapterTitle)
		}
		if lines := standardLines(cc.StandardIDs, catalog); lines != "" {
			b.WriteString("Aligned standards:\n")
			b.WriteString(lines)
		}
	}

	b.WriteString("\nStudy material context:\n")
	if input.MaterialContext != "" {
		b.WriteString(input.MaterialContext)
	} else {
		b.WriteString("No study materials provided. Generate standard practice problems for this topic.")
	}

	return b.String()
}

// standardLines resolves standard ids to one "id: description" line
// each. Unknown ids are dropped, matching catalog lookup semantics.
func standardLines(ids []string, catalog *curriculum.Catalog) string {
	if catalog == nil || len(ids) == 0 {
		return ""
	}
	var b strings.Builder
	for _, s := range catalog.StandardsByIDs(ids) {
		fmt.Fprintf(&b, "- %s: %s\n", s.ID, s.Description)
	}
	return b.String()
}
