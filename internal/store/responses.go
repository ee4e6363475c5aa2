package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mgreer/studyprep/internal/session"
)

// CreateResponse persists one recorded grade.
func (s *Store) CreateResponse(ctx context.Context, sessionID, problemID string, correct bool, elapsedSeconds int) (*session.Response, error) {
	resp := &session.Response{
		ID:             uuid.NewString(),
		SessionID:      sessionID,
		ProblemID:      problemID,
		Correct:        correct,
		ElapsedSeconds: elapsedSeconds,
		CreatedAt:      time.Now().UTC(),
	}

	query := `INSERT INTO responses (id, session_id, problem_id, correct, elapsed_seconds, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := s.db.ExecContext(ctx, query,
		resp.ID, resp.SessionID, resp.ProblemID, boolToInt(resp.Correct),
		resp.ElapsedSeconds, resp.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return nil, fmt.Errorf("inserting response: %w", err)
	}
	return resp, nil
}

// ListResponses returns the session's responses in creation order.
func (s *Store) ListResponses(ctx context.Context, sessionID string) ([]session.Response, error) {
	query := `SELECT id, session_id, problem_id, correct, elapsed_seconds, created_at
		FROM responses WHERE session_id = ? ORDER BY created_at, id`
	rows, err := s.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("listing responses: %w", err)
	}
	defer rows.Close()

	var responses []session.Response
	for rows.Next() {
		var (
			r            session.Response
			correct      int
			createdAtStr string
		)
		if err := rows.Scan(&r.ID, &r.SessionID, &r.ProblemID, &correct, &r.ElapsedSeconds, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning response: %w", err)
		}
		r.Correct = correct != 0
		if r.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAtStr); err != nil {
			return nil, fmt.Errorf("parse created_at: %w", err)
		}
		responses = append(responses, r)
	}
	return responses, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
