package session

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"
)

var (
	// ErrNotFound is returned by Store implementations for unknown ids.
	ErrNotFound = errors.New("not found")

	// ErrNoProblems means a session resolved to an empty problem list.
	ErrNoProblems = errors.New("session has no problems")

	// ErrSolutionHidden means a grade was recorded before the solution
	// was revealed. Reveal is a prerequisite for grading.
	ErrSolutionHidden = errors.New("solution not revealed")

	// ErrAlreadyAnswered means the current problem already has a grade.
	ErrAlreadyAnswered = errors.New("problem already answered")

	// ErrReviewMode means a mutating action was attempted in review mode.
	ErrReviewMode = errors.New("session is open for review only")

	// ErrSessionCompleted means the session is finished and can only be
	// reopened for review.
	ErrSessionCompleted = errors.New("session already completed")
)

// Option configures a Runner at construction.
type Option func(*Runner)

// WithClock overrides the time source used for timer baselines and
// completion timestamps.
func WithClock(now func() time.Time) Option {
	return func(r *Runner) { r.now = now }
}

// Runner is the cursor state machine for one practice run. All cursor
// and tally mutations happen as discrete reactions to user actions; the
// persisted session record stays the source of truth for completion, so
// a Runner can always be rebuilt from the store mid-run.
type Runner struct {
	store Store
	now   func() time.Time

	session  *Session
	problems []*Problem
	review   bool

	mu               sync.Mutex
	currentIndex     int
	furthestIndex    int
	answered         map[int]bool
	solutionRevealed bool
	baseline         time.Time
	grading          bool
}

// StartLive opens a session for first-time answering over the given
// problem ids. Ids that resolve to no stored problem are skipped;
// stale references must not break the run.
func StartLive(ctx context.Context, store Store, sessionID string, problemIDs []string, opts ...Option) (*Runner, error) {
	r := &Runner{store: store, now: time.Now, answered: make(map[int]bool)}
	for _, opt := range opts {
		opt(r)
	}

	sess, err := store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if sess.Status == StatusCompleted {
		return nil, ErrSessionCompleted
	}
	r.session = sess

	r.problems, err = loadProblems(ctx, store, problemIDs)
	if err != nil {
		return nil, err
	}
	if len(r.problems) == 0 {
		return nil, ErrNoProblems
	}

	r.baseline = r.now()
	return r, nil
}

// OpenReview reopens an existing session for browsing. The problem list
// comes from the session's persisted ProblemIDs; legacy sessions that
// predate stored ids fall back to the recorded responses in creation
// order. Every problem is marked answered and every solution is
// pre-revealed; navigation is unrestricted.
func OpenReview(ctx context.Context, store Store, sessionID string, opts ...Option) (*Runner, error) {
	r := &Runner{store: store, now: time.Now, review: true, answered: make(map[int]bool)}
	for _, opt := range opts {
		opt(r)
	}

	sess, err := store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	r.session = sess

	ids := sess.ProblemIDs
	if len(ids) == 0 {
		responses, err := store.ListResponses(ctx, sessionID)
		if err != nil {
			return nil, fmt.Errorf("load responses: %w", err)
		}
		for _, resp := range responses {
			ids = append(ids, resp.ProblemID)
		}
	}

	r.problems, err = loadProblems(ctx, store, ids)
	if err != nil {
		return nil, err
	}
	if len(r.problems) == 0 {
		return nil, ErrNoProblems
	}

	for i := range r.problems {
		r.answered[i] = true
	}
	r.furthestIndex = len(r.problems) - 1
	r.solutionRevealed = true
	r.baseline = r.now()
	return r, nil
}

// loadProblems resolves ids to stored problems, skipping unknown ids.
func loadProblems(ctx context.Context, store Store, ids []string) ([]*Problem, error) {
	problems := make([]*Problem, 0, len(ids))
	for _, id := range ids {
		p, err := store.GetProblem(ctx, id)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("load problem %s: %w", id, err)
		}
		problems = append(problems, p)
	}
	return problems, nil
}

// Session returns the session record, reflecting in-memory tallies.
func (r *Runner) Session() *Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.session
}

// ReviewMode reports whether the runner was opened for review.
func (r *Runner) ReviewMode() bool { return r.review }

// Len returns the number of problems in the run.
func (r *Runner) Len() int { return len(r.problems) }

// Current returns the problem under the cursor.
func (r *Runner) Current() *Problem {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.problems[r.currentIndex]
}

// CurrentIndex returns the cursor position.
func (r *Runner) CurrentIndex() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.currentIndex
}

// FurthestIndex returns the highest index the user has ever reached.
func (r *Runner) FurthestIndex() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.furthestIndex
}

// SolutionRevealed reports whether the current problem's solution is
// visible.
func (r *Runner) SolutionRevealed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.solutionRevealed
}

// Answered reports whether the problem at index i has a recorded grade.
func (r *Runner) Answered(i int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.answered[i]
}

// Completed reports whether every problem has been answered and the
// session transition was persisted.
func (r *Runner) Completed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.session.Status == StatusCompleted
}

// Reveal shows the current problem's solution. One-way: once shown it
// stays shown until the cursor moves.
func (r *Runner) Reveal() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.solutionRevealed = true
}

// Next moves the cursor forward one index. Stepping past the furthest
// visited index starts a fresh ungraded view: solution hidden, new
// timer baseline, furthest ratcheted. Stepping within visited territory
// restores solution visibility from the answered set and leaves the
// baseline alone, even for a visited-but-unanswered problem.
func (r *Runner) Next() {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := r.currentIndex + 1
	if next >= len(r.problems) {
		return
	}

	switch {
	case r.review:
		r.currentIndex = next
		r.solutionRevealed = true
	case next > r.furthestIndex:
		r.currentIndex = next
		r.furthestIndex = next
		r.solutionRevealed = false
		r.baseline = r.now()
	default:
		r.currentIndex = next
		r.solutionRevealed = r.answered[next]
	}
}

// Prev moves the cursor back one index. A previously answered problem
// comes back with its solution shown; the timer baseline is untouched.
func (r *Runner) Prev() {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev := r.currentIndex - 1
	if prev < 0 {
		return
	}
	r.currentIndex = prev
	r.solutionRevealed = r.review || r.answered[prev]
}

// RecordGrade persists the grade for the current problem and advances
// the run. The solution must be revealed first. Exactly one recording
// may be in flight per session; a second call while one is pending is
// dropped without error or persistence. Store failures propagate and
// leave tallies untouched so the caller can retry. When the grade
// answers the last open problem the session is completed and the
// transition persisted, exactly once.
func (r *Runner) RecordGrade(ctx context.Context, correct bool) error {
	r.mu.Lock()
	if r.grading {
		r.mu.Unlock()
		return nil
	}
	switch {
	case r.review:
		r.mu.Unlock()
		return ErrReviewMode
	case r.session.Status == StatusCompleted:
		r.mu.Unlock()
		return ErrSessionCompleted
	case r.answered[r.currentIndex]:
		r.mu.Unlock()
		return ErrAlreadyAnswered
	case !r.solutionRevealed:
		r.mu.Unlock()
		return ErrSolutionHidden
	}
	r.grading = true
	idx := r.currentIndex
	problemID := r.problems[idx].ID
	elapsed := int(math.Round(r.now().Sub(r.baseline).Seconds()))
	r.mu.Unlock()

	defer func() {
		r.mu.Lock()
		r.grading = false
		r.mu.Unlock()
	}()

	if _, err := r.store.CreateResponse(ctx, r.session.ID, problemID, correct, elapsed); err != nil {
		return fmt.Errorf("record response: %w", err)
	}

	r.mu.Lock()
	r.answered[idx] = true
	if correct {
		r.session.CorrectCount++
	} else {
		r.session.IncorrectCount++
	}
	correctCount := r.session.CorrectCount
	incorrectCount := r.session.IncorrectCount
	allAnswered := len(r.answered) >= len(r.problems)
	if !allAnswered {
		next := idx + 1
		if next < len(r.problems) {
			r.currentIndex = next
			if next > r.furthestIndex {
				r.furthestIndex = next
			}
			r.solutionRevealed = r.answered[next]
			// The baseline only resets for a problem that still needs an
			// answer; returning to an answered one keeps the old baseline.
			if !r.answered[next] {
				r.baseline = r.now()
			}
		}
	}
	r.mu.Unlock()

	if err := r.store.UpdateSessionTallies(ctx, r.session.ID, correctCount, incorrectCount); err != nil {
		return fmt.Errorf("update tallies: %w", err)
	}

	if allAnswered {
		completedAt := r.now()
		if _, err := r.store.UpdateSessionStatus(ctx, r.session.ID, StatusCompleted, &completedAt); err != nil {
			return fmt.Errorf("complete session: %w", err)
		}
		r.mu.Lock()
		r.session.Status = StatusCompleted
		r.session.CompletedAt = &completedAt
		r.mu.Unlock()
	}

	return nil
}
