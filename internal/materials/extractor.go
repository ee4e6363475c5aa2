package materials

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mgreer/studyprep/internal/llm"
)

const extractionPrompt = `You are analyzing a study material (worksheet, textbook page, or notes). Extract all academic content from this document.

Capture:
- "extractedText": A complete text transcription of the document. Use $...$ for inline LaTeX math and $$...$$ for block/display LaTeX math.
- "topics": The topics covered (e.g., ["quadratic equations", "factoring", "completing the square"])
- "documentType": One of "worksheet", "textbook", "notes", "test", "other"
- "problems": Any practice problems found, with their answers when present. Use LaTeX notation.
- "keyFormulas": Important formulas found, in LaTeX notation (wrapped in $...$)
- "confidence": A number 0-1 indicating how confident you are in the extraction

Be thorough. Capture every problem, formula, and concept. Use proper LaTeX for all math expressions.`

// extractionMaxTokens is generous because extractedText transcribes the
// whole document.
const extractionMaxTokens = 16384

// Extractor turns raw study-material text into a structured Extraction.
type Extractor struct {
	provider llm.Provider
}

// New creates an Extractor. The provider is wrapped with retry: unlike
// standards alignment, extraction is the student's explicit request and
// transient failures are worth one more attempt.
func New(provider llm.Provider, retry llm.RetryConfig) *Extractor {
	return &Extractor{provider: llm.WithRetry(provider, retry)}
}

// ExtractText extracts structured content from source text. A response
// cut off by the token limit is a hard error; a partial transcription
// silently missing half the document is worse than asking the student
// to split the upload.
func (e *Extractor) ExtractText(ctx context.Context, sourceText string) (*Extraction, error) {
	ctx = llm.WithPurpose(ctx, "extract-content")

	resp, err := e.provider.Generate(ctx, llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: extractionPrompt + "\n\n---\n\n" + sourceText},
		},
		Schema:    ExtractionSchema,
		MaxTokens: extractionMaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("content extraction failed: %w", err)
	}
	if resp.Truncated() {
		return nil, fmt.Errorf("extraction response was truncated, content may be too large")
	}

	var result Extraction
	if err := json.Unmarshal(resp.Content, &result); err != nil {
		return nil, fmt.Errorf("malformed extraction response: %w", err)
	}
	return &result, nil
}

// ExtractionFromQuestions builds an Extraction directly from questions
// the student typed in, no model call involved. Confidence is 1.0: the
// student is the source of truth for their own questions.
func ExtractionFromQuestions(questions []TypedQuestion) *Extraction {
	problems := make([]ExtractedProblem, len(questions))
	var b strings.Builder
	for i, q := range questions {
		problems[i] = ExtractedProblem{Question: q.Question, Answer: q.Answer}
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "**Problem %d:** %s", i+1, q.Question)
		if q.Answer != "" {
			fmt.Fprintf(&b, "\n**Answer:** %s", q.Answer)
		}
	}

	return &Extraction{
		ExtractedText: b.String(),
		Topics:        []string{},
		DocumentType:  "worksheet",
		Problems:      problems,
		KeyFormulas:   []string{},
		Confidence:    1.0,
	}
}
