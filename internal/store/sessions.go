package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mgreer/studyprep/internal/problemgen"
	"github.com/mgreer/studyprep/internal/session"
)

// CreateSession persists a new session. A missing id or start time is
// filled in; the stored record is returned.
func (s *Store) CreateSession(ctx context.Context, sess *session.Session) (*session.Session, error) {
	stored := *sess
	if stored.ID == "" {
		stored.ID = uuid.NewString()
	}
	if stored.StartedAt.IsZero() {
		stored.StartedAt = time.Now().UTC()
	}
	if stored.Status == "" {
		stored.Status = session.StatusActive
	}

	ids, err := json.Marshal(stored.ProblemIDs)
	if err != nil {
		return nil, fmt.Errorf("marshal problem ids: %w", err)
	}

	query := `INSERT INTO sessions
		(id, name, difficulty, total_problems, correct_count, incorrect_count, status, problem_ids, started_at, completed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = s.db.ExecContext(ctx, query,
		stored.ID,
		stored.Name,
		string(stored.Difficulty),
		stored.TotalProblems,
		stored.CorrectCount,
		stored.IncorrectCount,
		string(stored.Status),
		string(ids),
		stored.StartedAt.Format(time.RFC3339),
		nullableTime(stored.CompletedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("inserting session: %w", err)
	}
	return &stored, nil
}

// GetSession loads one session by id.
func (s *Store) GetSession(ctx context.Context, id string) (*session.Session, error) {
	query := `SELECT id, name, difficulty, total_problems, correct_count, incorrect_count, status, problem_ids, started_at, completed_at
		FROM sessions WHERE id = ?`
	return scanSession(s.db.QueryRowContext(ctx, query, id))
}

// ListSessions returns all sessions, most recently started first.
func (s *Store) ListSessions(ctx context.Context) ([]*session.Session, error) {
	query := `SELECT id, name, difficulty, total_problems, correct_count, incorrect_count, status, problem_ids, started_at, completed_at
		FROM sessions ORDER BY started_at DESC`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*session.Session
	for rows.Next() {
		sess, err := scanSessionRow(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, sess)
	}
	return sessions, rows.Err()
}

// UpdateSessionStatus transitions the session's lifecycle state and
// returns the updated record.
func (s *Store) UpdateSessionStatus(ctx context.Context, sessionID string, status session.Status, completedAt *time.Time) (*session.Session, error) {
	query := `UPDATE sessions SET status = ?, completed_at = ? WHERE id = ?`
	res, err := s.db.ExecContext(ctx, query, string(status), nullableTime(completedAt), sessionID)
	if err != nil {
		return nil, fmt.Errorf("updating session status: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("updating session status: %w", err)
	}
	if n == 0 {
		return nil, fmt.Errorf("session %s: %w", sessionID, session.ErrNotFound)
	}
	return s.GetSession(ctx, sessionID)
}

// UpdateSessionTallies persists the running correct/incorrect counts.
func (s *Store) UpdateSessionTallies(ctx context.Context, sessionID string, correct, incorrect int) error {
	query := `UPDATE sessions SET correct_count = ?, incorrect_count = ? WHERE id = ?`
	res, err := s.db.ExecContext(ctx, query, correct, incorrect, sessionID)
	if err != nil {
		return fmt.Errorf("updating session tallies: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating session tallies: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("session %s: %w", sessionID, session.ErrNotFound)
	}
	return nil
}

// rowScanner covers *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row *sql.Row) (*session.Session, error) {
	sess, err := scanSessionRow(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("session: %w", session.ErrNotFound)
	}
	return sess, err
}

func scanSessionRow(row rowScanner) (*session.Session, error) {
	var (
		sess            session.Session
		difficulty      string
		status          string
		problemIDs      string
		startedAtStr    string
		completedAtNull sql.NullString
	)

	err := row.Scan(
		&sess.ID, &sess.Name, &difficulty, &sess.TotalProblems,
		&sess.CorrectCount, &sess.IncorrectCount, &status,
		&problemIDs, &startedAtStr, &completedAtNull,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning session: %w", err)
	}

	sess.Difficulty = problemgen.Difficulty(difficulty)
	sess.Status = session.Status(status)

	if err := json.Unmarshal([]byte(problemIDs), &sess.ProblemIDs); err != nil {
		return nil, fmt.Errorf("parse problem ids: %w", err)
	}
	if sess.StartedAt, err = time.Parse(time.RFC3339, startedAtStr); err != nil {
		return nil, fmt.Errorf("parse started_at: %w", err)
	}
	if sess.CompletedAt, err = parseNullableTime(completedAtNull); err != nil {
		return nil, fmt.Errorf("parse completed_at: %w", err)
	}
	return &sess, nil
}

// nullableTime formats an optional time for storage.
func nullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format(time.RFC3339)
}

// parseNullableTime parses an optional stored timestamp.
func parseNullableTime(s sql.NullString) (*time.Time, error) {
	if !s.Valid || s.String == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, s.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
