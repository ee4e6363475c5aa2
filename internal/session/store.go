package session

import (
	"context"
	"time"
)

// Store is the persistence contract the Runner depends on. The sqlite
// implementation lives in internal/store; tests use an in-memory fake.
type Store interface {
	GetSession(ctx context.Context, id string) (*Session, error)
	GetProblem(ctx context.Context, id string) (*Problem, error)

	// CreateResponse persists one recorded grade.
	CreateResponse(ctx context.Context, sessionID, problemID string, correct bool, elapsedSeconds int) (*Response, error)

	// UpdateSessionStatus transitions the session's lifecycle state.
	// completedAt is set only for the transition to StatusCompleted.
	UpdateSessionStatus(ctx context.Context, sessionID string, status Status, completedAt *time.Time) (*Session, error)

	// UpdateSessionTallies persists the running correct/incorrect counts.
	UpdateSessionTallies(ctx context.Context, sessionID string, correct, incorrect int) error

	// ListResponses returns the session's responses in creation order.
	ListResponses(ctx context.Context, sessionID string) ([]Response, error)
}
