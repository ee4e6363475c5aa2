package materials

// Extraction is the structured content pulled out of one study material.
// All math is in LaTeX notation ($...$ inline, $$...$$ display).
type Extraction struct {
	ExtractedText string            `json:"extractedText"`
	Topics        []string          `json:"topics"`
	DocumentType  string            `json:"documentType"`
	Problems      []ExtractedProblem `json:"problems"`
	KeyFormulas   []string          `json:"keyFormulas"`
	Confidence    float64           `json:"confidence"`
}

// ExtractedProblem is one practice problem found in the material.
type ExtractedProblem struct {
	Question string `json:"question"`
	Answer   string `json:"answer,omitempty"`
}

// TypedQuestion is a question/answer pair the student entered by hand,
// bypassing extraction.
type TypedQuestion struct {
	Question string `json:"question"`
	Answer   string `json:"answer,omitempty"`
}
