package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mgreer/studyprep/internal/problemgen"
	"github.com/mgreer/studyprep/internal/session"
)

// CreateProblems persists a generated batch and returns the stored
// records with their assigned ids, in batch order.
func (s *Store) CreateProblems(ctx context.Context, generated []problemgen.GeneratedProblem) ([]*session.Problem, error) {
	query := `INSERT INTO problems (id, question_text, solution_text, difficulty, topic, standard_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	problems := make([]*session.Problem, 0, len(generated))
	for _, g := range generated {
		p := &session.Problem{
			ID:           uuid.NewString(),
			QuestionText: g.QuestionText,
			SolutionText: g.SolutionText,
			Difficulty:   g.Difficulty,
			Topic:        g.Topic,
			StandardID:   g.StandardID,
			CreatedAt:    time.Now().UTC(),
		}
		_, err := s.db.ExecContext(ctx, query,
			p.ID, p.QuestionText, p.SolutionText, string(p.Difficulty),
			p.Topic, p.StandardID, p.CreatedAt.Format(time.RFC3339),
		)
		if err != nil {
			return nil, fmt.Errorf("inserting problem: %w", err)
		}
		problems = append(problems, p)
	}
	return problems, nil
}

// GetProblem loads one problem by id.
func (s *Store) GetProblem(ctx context.Context, id string) (*session.Problem, error) {
	query := `SELECT id, question_text, solution_text, difficulty, topic, standard_id, created_at
		FROM problems WHERE id = ?`
	row := s.db.QueryRowContext(ctx, query, id)

	var (
		p            session.Problem
		difficulty   string
		createdAtStr string
	)
	err := row.Scan(&p.ID, &p.QuestionText, &p.SolutionText, &difficulty, &p.Topic, &p.StandardID, &createdAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("problem %s: %w", id, session.ErrNotFound)
		}
		return nil, fmt.Errorf("scanning problem: %w", err)
	}

	p.Difficulty = problemgen.Difficulty(difficulty)
	if p.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}
	return &p, nil
}
