package materials

import "github.com/mgreer/studyprep/internal/llm"

// ExtractionSchema defines the JSON shape the extraction call must return.
var ExtractionSchema = &llm.Schema{
	Name:        "material-extraction",
	Description: "Structured content extracted from one study material",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"extractedText": map[string]any{
				"type":        "string",
				"description": "Complete transcription of the document, LaTeX for all math",
			},
			"topics": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Topics covered, e.g. quadratic equations, factoring",
			},
			"documentType": map[string]any{
				"type":        "string",
				"enum":        []any{"worksheet", "textbook", "notes", "test", "other"},
				"description": "What kind of document this is",
			},
			"problems": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{"type": "string"},
						"answer":   map[string]any{"type": "string"},
					},
					"required":             []any{"question"},
					"additionalProperties": false,
				},
				"description": "Practice problems found in the material, LaTeX notation",
			},
			"keyFormulas": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Important formulas found, each wrapped in $...$",
			},
			"confidence": map[string]any{
				"type":        "number",
				"minimum":     0,
				"maximum":     1,
				"description": "Extraction confidence from 0 to 1",
			},
		},
		"required":             []any{"extractedText", "topics", "documentType", "problems", "keyFormulas", "confidence"},
		"additionalProperties": false,
	},
}
