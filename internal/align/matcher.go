package align

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/mgreer/studyprep/internal/curriculum"
	"github.com/mgreer/studyprep/internal/llm"
)

// Confidence thresholds below which a model suggestion is discarded.
// Title-only suggestions tolerate weaker evidence than full-content
// matches.
const (
	titleConfidenceMin   = 0.4
	contentConfidenceMin = 0.5
)

// excerptLimit caps how much extracted text goes into the match prompt.
const excerptLimit = 3000

// Suggestion is one standard the model believes the material covers.
type Suggestion struct {
	StandardID string  `json:"standardId"`
	Confidence float64 `json:"confidence"`
	Reason     string  `json:"reason"`
}

// Matcher aligns chapter titles and extracted study material against the
// standards catalog. Every failure mode degrades to an empty result; the
// caller never has to distinguish "provider down" from "no good match".
type Matcher struct {
	provider llm.Provider
	catalog  *curriculum.Catalog
}

// New creates a Matcher backed by the given provider and catalog.
func New(provider llm.Provider, catalog *curriculum.Catalog) *Matcher {
	return &Matcher{provider: provider, catalog: catalog}
}

// SuggestForTitle suggests standards likely covered by a chapter, judged
// from the title alone. Suggestions below the title confidence threshold
// are dropped. Never returns an error; anything that goes wrong yields nil.
func (m *Matcher) SuggestForTitle(ctx context.Context, chapterTitle, courseName string) []Suggestion {
	standards := m.catalog.StandardsForCourse(courseName)
	if len(standards) == 0 {
		return nil
	}

	ctx = llm.WithPurpose(ctx, "suggest-standards")
	prompt := buildTitlePrompt(chapterTitle, courseName, summarize(standards))
	return m.complete(ctx, prompt, titleConfidenceMin)
}

// MatchContent matches extracted topics and text against the course's
// standards. The text is truncated to an excerpt before prompting.
// Suggestions below the content confidence threshold are dropped. Never
// returns an error.
func (m *Matcher) MatchContent(ctx context.Context, topics []string, extractedText, courseName string) []Suggestion {
	standards := m.catalog.StandardsForCourse(courseName)
	if len(standards) == 0 {
		return nil
	}

	if len(extractedText) > excerptLimit {
		extractedText = extractedText[:excerptLimit]
	}

	ctx = llm.WithPurpose(ctx, "match-standards")
	prompt := buildContentPrompt(topics, extractedText, courseName, summarize(standards))
	return m.complete(ctx, prompt, contentConfidenceMin)
}

// complete runs a single generation attempt and filters the decoded
// suggestions. No retry here: alignment is advisory and a stale answer is
// worse than no answer.
func (m *Matcher) complete(ctx context.Context, prompt string, minConfidence float64) []Suggestion {
	resp, err := m.provider.Generate(ctx, llm.Request{
		Messages:  []llm.Message{{Role: llm.RoleUser, Content: prompt}},
		MaxTokens: 2048,
	})
	if err != nil || resp.Truncated() {
		return nil
	}

	var raw []Suggestion
	cleaned := llm.StripCodeFences(string(resp.Content))
	if err := json.Unmarshal([]byte(cleaned), &raw); err != nil {
		return nil
	}

	var out []Suggestion
	for _, s := range raw {
		if s.Confidence >= minConfidence {
			out = append(out, s)
		}
	}
	return out
}

// summarize renders the course's standards as one line each for the
// prompt: id, description, and vocabulary.
func summarize(standards []curriculum.Standard) string {
	var b strings.Builder
	for i, s := range standards {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(s.ID)
		b.WriteString(": ")
		b.WriteString(s.Description)
		b.WriteString(" [Vocab: ")
		b.WriteString(strings.Join(s.KeyVocabulary, ", "))
		b.WriteString("]")
	}
	return b.String()
}
