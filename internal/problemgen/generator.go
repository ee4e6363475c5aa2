package problemgen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mgreer/studyprep/internal/curriculum"
	"github.com/mgreer/studyprep/internal/llm"
)

// maxTokens is the response budget for one generation batch. Large
// batches at hard difficulty can hit this, which is what the salvage
// path exists for.
const maxTokens = 4096

// Generator produces practice problem batches via the LLM provider.
type Generator struct {
	provider llm.Provider
	catalog  *curriculum.Catalog
}

// New creates a Generator. The catalog may be nil; it is only used to
// expand standard ids into descriptions for the prompt.
func New(provider llm.Provider, catalog *curriculum.Catalog) *Generator {
	return &Generator{provider: provider, catalog: catalog}
}

// Generate requests input.Count problems and returns the decoded batch.
// When the provider reports the response was cut off by the token limit
// and the full text does not parse, the complete leading objects are
// salvaged instead of failing the whole batch, so the result may be
// shorter than requested. A malformed response that was NOT truncated
// is an error; salvage never runs on it.
func (g *Generator) Generate(ctx context.Context, input GenerateInput) ([]GeneratedProblem, error) {
	if !input.Difficulty.Valid() {
		return nil, fmt.Errorf("unknown difficulty %q", input.Difficulty)
	}
	if input.Count < 1 {
		return nil, fmt.Errorf("count must be positive, got %d", input.Count)
	}

	ctx = llm.WithPurpose(ctx, "problem-gen")

	resp, err := g.provider.Generate(ctx, llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input, g.catalog)},
		},
		MaxTokens: maxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("problem generation failed: %w", err)
	}

	text := llm.StripCodeFences(string(resp.Content))

	var problems []GeneratedProblem
	if err := json.Unmarshal([]byte(text), &problems); err != nil {
		if !resp.Truncated() {
			return nil, fmt.Errorf("malformed generation response: %w", err)
		}
		repaired, serr := salvageArray(text)
		if serr != nil {
			return nil, serr
		}
		if err := json.Unmarshal([]byte(repaired), &problems); err != nil {
			return nil, fmt.Errorf("salvaged response still malformed: %w", err)
		}
	}

	// The requested difficulty is authoritative over whatever the model
	// echoed back per problem.
	for i := range problems {
		problems[i].Difficulty = input.Difficulty
	}

	return problems, nil
}
