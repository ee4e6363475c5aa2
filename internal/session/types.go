package session

import (
	"time"

	"github.com/mgreer/studyprep/internal/problemgen"
)

// Status is the lifecycle state of a practice session. Completed is
// terminal: a finished session is only ever reopened for review.
type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

// Session is one practice run over a fixed problem list.
type Session struct {
	ID             string
	Name           string
	Difficulty     problemgen.Difficulty
	TotalProblems  int
	CorrectCount   int
	IncorrectCount int
	Status         Status
	ProblemIDs     []string
	StartedAt      time.Time
	CompletedAt    *time.Time
}

// Problem is a stored practice problem.
type Problem struct {
	ID           string
	QuestionText string
	SolutionText string
	Difficulty   problemgen.Difficulty
	Topic        string
	StandardID   string
	CreatedAt    time.Time
}

// Response is one recorded grade for a problem within a session.
type Response struct {
	ID             string
	SessionID      string
	ProblemID      string
	Correct        bool
	ElapsedSeconds int
	CreatedAt      time.Time
}
