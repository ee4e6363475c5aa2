package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"
)

// fakeStore is an in-memory Store for runner tests.
type fakeStore struct {
	mu        sync.Mutex
	sessions  map[string]*Session
	problems  map[string]*Problem
	responses []Response

	createDelay   time.Duration
	failCreate    error
	statusUpdates int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		sessions: make(map[string]*Session),
		problems: make(map[string]*Problem),
	}
}

func (f *fakeStore) addSession(s Session) {
	f.sessions[s.ID] = &s
}

func (f *fakeStore) addProblems(ids ...string) {
	for _, id := range ids {
		f.problems[id] = &Problem{
			ID:           id,
			QuestionText: "question " + id,
			SolutionText: "solution " + id,
		}
	}
}

func (f *fakeStore) GetSession(_ context.Context, id string) (*Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *s
	return &copied, nil
}

func (f *fakeStore) GetProblem(_ context.Context, id string) (*Problem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.problems[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *p
	return &copied, nil
}

func (f *fakeStore) CreateResponse(_ context.Context, sessionID, problemID string, correct bool, elapsedSeconds int) (*Response, error) {
	if f.createDelay > 0 {
		time.Sleep(f.createDelay)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failCreate != nil {
		return nil, f.failCreate
	}
	resp := Response{
		ID:             fmt.Sprintf("r%d", len(f.responses)+1),
		SessionID:      sessionID,
		ProblemID:      problemID,
		Correct:        correct,
		ElapsedSeconds: elapsedSeconds,
		CreatedAt:      time.Now(),
	}
	f.responses = append(f.responses, resp)
	return &resp, nil
}

func (f *fakeStore) UpdateSessionStatus(_ context.Context, sessionID string, status Status, completedAt *time.Time) (*Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.sessions[sessionID]
	if !ok {
		return nil, ErrNotFound
	}
	s.Status = status
	s.CompletedAt = completedAt
	f.statusUpdates++
	copied := *s
	return &copied, nil
}

func (f *fakeStore) UpdateSessionTallies(_ context.Context, sessionID string, correct, incorrect int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.sessions[sessionID]
	if !ok {
		return ErrNotFound
	}
	s.CorrectCount = correct
	s.IncorrectCount = incorrect
	return nil
}

func (f *fakeStore) ListResponses(_ context.Context, sessionID string) ([]Response, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []Response
	for _, r := range f.responses {
		if r.SessionID == sessionID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeStore) responseCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.responses)
}

// fakeClock is a manually advanced time source.
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func liveRunner(t *testing.T, n int) (*Runner, *fakeStore, *fakeClock) {
	t.Helper()
	store := newFakeStore()
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("p%d", i+1)
	}
	store.addProblems(ids...)
	store.addSession(Session{ID: "s1", Status: StatusActive, TotalProblems: n, ProblemIDs: ids})

	clock := newFakeClock()
	r, err := StartLive(context.Background(), store, "s1", ids, WithClock(clock.Now))
	if err != nil {
		t.Fatalf("StartLive: %v", err)
	}
	return r, store, clock
}

func grade(t *testing.T, r *Runner, correct bool) {
	t.Helper()
	r.Reveal()
	if err := r.RecordGrade(context.Background(), correct); err != nil {
		t.Fatalf("RecordGrade: %v", err)
	}
}

func TestSequentialRunCompletes(t *testing.T) {
	r, store, _ := liveRunner(t, 3)

	grade(t, r, true)
	grade(t, r, false)
	if r.Completed() {
		t.Fatal("session completed early")
	}
	grade(t, r, true)

	if !r.Completed() {
		t.Fatal("session not completed after final grade")
	}
	s := r.Session()
	if s.CorrectCount != 2 || s.IncorrectCount != 1 {
		t.Errorf("tallies = %d/%d, want 2/1", s.CorrectCount, s.IncorrectCount)
	}
	if s.CompletedAt == nil {
		t.Error("CompletedAt not set")
	}
	if store.statusUpdates != 1 {
		t.Errorf("status persisted %d times, want exactly once", store.statusUpdates)
	}
	if store.responseCount() != 3 {
		t.Errorf("%d responses persisted, want 3", store.responseCount())
	}
}

func TestOutOfOrderRunCompletes(t *testing.T) {
	// Answer the last problem first via jump navigation, then fill the
	// gaps. Completion must still fire exactly once.
	r, store, _ := liveRunner(t, 3)

	r.Next()
	r.Next()
	if r.CurrentIndex() != 2 {
		t.Fatalf("index = %d, want 2", r.CurrentIndex())
	}
	grade(t, r, true) // index 2; all later indices taken, cursor stays

	if r.CurrentIndex() != 2 {
		t.Fatalf("cursor moved to %d after grading the last index", r.CurrentIndex())
	}

	r.Prev()
	r.Prev()
	grade(t, r, true) // index 0, advances to 1
	if r.CurrentIndex() != 1 {
		t.Fatalf("index = %d, want 1", r.CurrentIndex())
	}
	grade(t, r, false) // index 1, final

	if !r.Completed() {
		t.Fatal("session not completed")
	}
	if store.statusUpdates != 1 {
		t.Errorf("status persisted %d times, want exactly once", store.statusUpdates)
	}
	s := r.Session()
	if s.CorrectCount+s.IncorrectCount != 3 {
		t.Errorf("tally sum = %d, want 3", s.CorrectCount+s.IncorrectCount)
	}
}

func TestGradeRequiresRevealedSolution(t *testing.T) {
	r, store, _ := liveRunner(t, 2)

	if err := r.RecordGrade(context.Background(), true); !errors.Is(err, ErrSolutionHidden) {
		t.Fatalf("err = %v, want ErrSolutionHidden", err)
	}
	if store.responseCount() != 0 {
		t.Error("response persisted despite hidden solution")
	}

	r.Reveal()
	if err := r.RecordGrade(context.Background(), true); err != nil {
		t.Fatalf("RecordGrade after reveal: %v", err)
	}
}

func TestRevealIsOneWayPerView(t *testing.T) {
	r, _, _ := liveRunner(t, 3)

	r.Reveal()
	if !r.SolutionRevealed() {
		t.Fatal("solution not revealed")
	}
	// Moving to a fresh problem hides it again.
	r.Next()
	if r.SolutionRevealed() {
		t.Fatal("solution carried over to an unvisited problem")
	}
}

func TestSingleFlightGuard(t *testing.T) {
	r, store, _ := liveRunner(t, 2)
	store.createDelay = 50 * time.Millisecond

	r.Reveal()

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = r.RecordGrade(context.Background(), true)
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Errorf("call %d returned %v, want nil", i, err)
		}
	}
	if store.responseCount() != 1 {
		t.Fatalf("%d responses persisted, want exactly 1", store.responseCount())
	}
	if got := r.Session().CorrectCount; got != 1 {
		t.Errorf("CorrectCount = %d, want 1", got)
	}
}

func TestStoreFailurePropagatesAndRetryWorks(t *testing.T) {
	r, store, _ := liveRunner(t, 2)
	boom := errors.New("disk full")
	store.failCreate = boom

	r.Reveal()
	err := r.RecordGrade(context.Background(), true)
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped store failure", err)
	}
	s := r.Session()
	if s.CorrectCount != 0 || s.IncorrectCount != 0 {
		t.Error("tallies updated despite persist failure")
	}
	if r.Answered(0) {
		t.Error("index marked answered despite persist failure")
	}
	if r.CurrentIndex() != 0 {
		t.Error("cursor advanced despite persist failure")
	}

	store.failCreate = nil
	if err := r.RecordGrade(context.Background(), true); err != nil {
		t.Fatalf("retry failed: %v", err)
	}
	if store.responseCount() != 1 {
		t.Errorf("%d responses after retry, want 1", store.responseCount())
	}
}

func TestElapsedSecondsFromBaseline(t *testing.T) {
	r, store, clock := liveRunner(t, 2)

	clock.Advance(42 * time.Second)
	grade(t, r, true)

	if got := store.responses[0].ElapsedSeconds; got != 42 {
		t.Errorf("ElapsedSeconds = %d, want 42", got)
	}

	// Cursor advanced to the fresh index 1 with a new baseline.
	clock.Advance(7 * time.Second)
	grade(t, r, false)
	if got := store.responses[1].ElapsedSeconds; got != 7 {
		t.Errorf("ElapsedSeconds = %d, want 7", got)
	}
}

func TestJumpNavigationAsymmetry(t *testing.T) {
	r, _, clock := liveRunner(t, 6)

	// Answer 0 and 1, landing on 2 with furthest = 2.
	grade(t, r, true)
	grade(t, r, true)
	if r.FurthestIndex() != 2 || r.CurrentIndex() != 2 {
		t.Fatalf("furthest=%d current=%d, want 2/2", r.FurthestIndex(), r.CurrentIndex())
	}

	// Forward into unvisited territory: hidden solution, fresh baseline.
	r.Reveal()
	baselineBefore := clock.Now()
	clock.Advance(10 * time.Second)
	r.Next()
	r.Next()
	if r.CurrentIndex() != 4 {
		t.Fatalf("index = %d, want 4", r.CurrentIndex())
	}
	if r.SolutionRevealed() {
		t.Error("solution visible on unvisited problem")
	}
	if r.FurthestIndex() != 4 {
		t.Errorf("furthest = %d, want 4", r.FurthestIndex())
	}
	_ = baselineBefore

	// Grading at index 4 must use the baseline set on arrival, not the
	// session start.
	clock.Advance(5 * time.Second)
	grade(t, r, true)
	// Back to an answered index: solution shown.
	for r.CurrentIndex() > 1 {
		r.Prev()
	}
	if !r.SolutionRevealed() {
		t.Error("solution hidden on answered problem 1")
	}

	// Forward to index 2: visited but unanswered, stays hidden.
	r.Next()
	if r.CurrentIndex() != 2 {
		t.Fatalf("index = %d, want 2", r.CurrentIndex())
	}
	if r.SolutionRevealed() {
		t.Error("solution visible on visited-but-unanswered problem")
	}
}

func TestJumpBaselineResetOnlyForUnvisited(t *testing.T) {
	r, store, clock := liveRunner(t, 3)

	// Move to index 1 unvisited: baseline resets there.
	clock.Advance(30 * time.Second)
	r.Next()
	clock.Advance(4 * time.Second)

	// Step back then forward again through visited territory: baseline
	// must NOT reset, this path never touches it.
	r.Prev()
	r.Next()
	clock.Advance(3 * time.Second)

	r.Reveal()
	if err := r.RecordGrade(context.Background(), true); err != nil {
		t.Fatalf("RecordGrade: %v", err)
	}
	// 4s + 3s since arrival at index 1; the 30s before arrival excluded.
	if got := store.responses[0].ElapsedSeconds; got != 7 {
		t.Errorf("ElapsedSeconds = %d, want 7", got)
	}
}

func TestNextStopsAtEnd(t *testing.T) {
	r, _, _ := liveRunner(t, 2)
	r.Next()
	r.Next()
	r.Next()
	if r.CurrentIndex() != 1 {
		t.Errorf("index = %d, want 1", r.CurrentIndex())
	}
	r.Prev()
	r.Prev()
	r.Prev()
	if r.CurrentIndex() != 0 {
		t.Errorf("index = %d, want 0", r.CurrentIndex())
	}
}

func TestAlreadyAnsweredIndexRejectsGrade(t *testing.T) {
	r, store, _ := liveRunner(t, 2)

	grade(t, r, true)
	r.Prev() // back to answered index 0, solution shown

	if err := r.RecordGrade(context.Background(), false); !errors.Is(err, ErrAlreadyAnswered) {
		t.Fatalf("err = %v, want ErrAlreadyAnswered", err)
	}
	if store.responseCount() != 1 {
		t.Errorf("%d responses, want 1", store.responseCount())
	}
}

func TestStartLiveSkipsMissingProblems(t *testing.T) {
	store := newFakeStore()
	store.addProblems("p1", "p3")
	store.addSession(Session{ID: "s1", Status: StatusActive})

	r, err := StartLive(context.Background(), store, "s1", []string{"p1", "p2", "p3"})
	if err != nil {
		t.Fatalf("StartLive: %v", err)
	}
	if r.Len() != 2 {
		t.Errorf("Len = %d, want 2 (missing id skipped)", r.Len())
	}
}

func TestStartLiveRejectsCompletedSession(t *testing.T) {
	store := newFakeStore()
	store.addProblems("p1")
	store.addSession(Session{ID: "s1", Status: StatusCompleted})

	if _, err := StartLive(context.Background(), store, "s1", []string{"p1"}); !errors.Is(err, ErrSessionCompleted) {
		t.Fatalf("err = %v, want ErrSessionCompleted", err)
	}
}

func TestStartLiveUnknownSession(t *testing.T) {
	store := newFakeStore()
	if _, err := StartLive(context.Background(), store, "ghost", []string{"p1"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestOpenReviewFromStoredProblemIDs(t *testing.T) {
	store := newFakeStore()
	store.addProblems("p1", "p2", "p3")
	store.addSession(Session{
		ID:         "s1",
		Status:     StatusCompleted,
		ProblemIDs: []string{"p1", "p2", "p3"},
	})

	r, err := OpenReview(context.Background(), store, "s1")
	if err != nil {
		t.Fatalf("OpenReview: %v", err)
	}

	if r.Len() != 3 {
		t.Fatalf("Len = %d, want 3", r.Len())
	}
	for i := 0; i < 3; i++ {
		if !r.Answered(i) {
			t.Errorf("index %d not marked answered", i)
		}
	}
	if !r.SolutionRevealed() {
		t.Error("solution not pre-revealed")
	}
	if r.FurthestIndex() != 2 {
		t.Errorf("furthest = %d, want 2", r.FurthestIndex())
	}
	if got := r.Current().ID; got != "p1" {
		t.Errorf("first problem = %s, want p1", got)
	}
}

func TestOpenReviewLegacyFallbackToResponses(t *testing.T) {
	store := newFakeStore()
	store.addProblems("p2", "p5")
	store.addSession(Session{ID: "s1", Status: StatusCompleted})
	// Recorded in this order: p2 then p5.
	store.responses = []Response{
		{ID: "r1", SessionID: "s1", ProblemID: "p2"},
		{ID: "r2", SessionID: "s1", ProblemID: "p5"},
	}

	r, err := OpenReview(context.Background(), store, "s1")
	if err != nil {
		t.Fatalf("OpenReview: %v", err)
	}
	if r.Len() != 2 {
		t.Fatalf("Len = %d, want 2", r.Len())
	}
	if got := r.Current().ID; got != "p2" {
		t.Errorf("first problem = %s, want p2", got)
	}
	r.Next()
	if got := r.Current().ID; got != "p5" {
		t.Errorf("second problem = %s, want p5", got)
	}
	if !r.SolutionRevealed() {
		t.Error("solution hidden during review navigation")
	}
}

func TestReviewModeRejectsGrading(t *testing.T) {
	store := newFakeStore()
	store.addProblems("p1")
	store.addSession(Session{ID: "s1", Status: StatusCompleted, ProblemIDs: []string{"p1"}})

	r, err := OpenReview(context.Background(), store, "s1")
	if err != nil {
		t.Fatalf("OpenReview: %v", err)
	}
	if err := r.RecordGrade(context.Background(), true); !errors.Is(err, ErrReviewMode) {
		t.Fatalf("err = %v, want ErrReviewMode", err)
	}
}

func TestReviewNavigationUnrestricted(t *testing.T) {
	store := newFakeStore()
	store.addProblems("p1", "p2", "p3")
	store.addSession(Session{ID: "s1", Status: StatusCompleted, ProblemIDs: []string{"p1", "p2", "p3"}})

	r, err := OpenReview(context.Background(), store, "s1")
	if err != nil {
		t.Fatalf("OpenReview: %v", err)
	}

	r.Next()
	r.Next()
	r.Prev()
	if r.CurrentIndex() != 1 {
		t.Errorf("index = %d, want 1", r.CurrentIndex())
	}
	if !r.SolutionRevealed() {
		t.Error("solution hidden mid-review")
	}
}

func TestOpenReviewEmptySession(t *testing.T) {
	store := newFakeStore()
	store.addSession(Session{ID: "s1", Status: StatusActive})

	if _, err := OpenReview(context.Background(), store, "s1"); !errors.Is(err, ErrNoProblems) {
		t.Fatalf("err = %v, want ErrNoProblems", err)
	}
}
