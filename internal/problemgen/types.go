package problemgen

// Difficulty is the requested difficulty of a generated problem.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Valid reports whether d is one of the known difficulty levels.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// GeneratedProblem is one practice problem produced by the generator.
// Question and solution text use LaTeX delimiters ($...$ inline,
// $$...$$ display).
type GeneratedProblem struct {
	QuestionText string     `json:"questionText"`
	SolutionText string     `json:"solutionText"`
	Difficulty   Difficulty `json:"difficulty"`
	Topic        string     `json:"topic"`
	StandardID   string     `json:"standardId,omitempty"`
}

// CourseContext carries course metadata into the generation prompt so
// problems fit the student's level and aligned standards.
type CourseContext struct {
	Grade        int
	Level        string
	CourseName   string
	ChapterTitle string
	StandardIDs  []string
}

// GenerateInput is the request for one generation batch.
type GenerateInput struct {
	// Topic is what the problems should test, usually the chapter title.
	Topic string

	// Difficulty applies to the whole batch. The generator stamps it on
	// every returned problem regardless of what the model echoed back.
	Difficulty Difficulty

	// Count is how many problems to request. The result may be shorter
	// when a truncated response is salvaged.
	Count int

	// MaterialContext is extracted text from the student's own study
	// materials, empty when none were uploaded.
	MaterialContext string

	// Course is optional metadata about the course and chapter.
	Course CourseContext
}
