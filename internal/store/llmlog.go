package store

import (
	"context"
	"fmt"
	"time"

	"github.com/mgreer/studyprep/internal/llm"
)

var _ llm.RequestLog = (*Store)(nil)

// AppendLLMRequest records one provider call in the request log.
func (s *Store) AppendLLMRequest(ctx context.Context, ev llm.RequestEvent) error {
	query := `INSERT INTO llm_request_events
		(provider, model, purpose, input_tokens, output_tokens, latency_ms, success, error_message, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := s.db.ExecContext(ctx, query,
		ev.Provider, ev.Model, ev.Purpose, ev.InputTokens, ev.OutputTokens,
		ev.LatencyMs, boolToInt(ev.Success), ev.ErrorMessage,
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("inserting llm request event: %w", err)
	}
	return nil
}

// LLMRequestCount reports how many provider calls have been logged,
// optionally filtered by purpose ("" counts everything).
func (s *Store) LLMRequestCount(ctx context.Context, purpose string) (int, error) {
	var (
		n   int
		err error
	)
	if purpose == "" {
		err = s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM llm_request_events`).Scan(&n)
	} else {
		err = s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM llm_request_events WHERE purpose = ?`, purpose).Scan(&n)
	}
	if err != nil {
		return 0, fmt.Errorf("counting llm request events: %w", err)
	}
	return n, nil
}
