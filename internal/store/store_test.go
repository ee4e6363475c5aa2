package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mgreer/studyprep/internal/llm"
	"github.com/mgreer/studyprep/internal/problemgen"
	"github.com/mgreer/studyprep/internal/session"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSessionRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	created, err := s.CreateSession(ctx, &session.Session{
		Name:          "Quadratics practice",
		Difficulty:    problemgen.DifficultyMedium,
		TotalProblems: 5,
		ProblemIDs:    []string{"a", "b", "c", "d", "e"},
	})
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	if created.ID == "" {
		t.Fatal("no id assigned")
	}
	if created.Status != session.StatusActive {
		t.Errorf("status = %q, want active", created.Status)
	}

	got, err := s.GetSession(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetSession: %v", err)
	}
	if got.Name != "Quadratics practice" || got.Difficulty != problemgen.DifficultyMedium {
		t.Errorf("got %+v", got)
	}
	if len(got.ProblemIDs) != 5 || got.ProblemIDs[0] != "a" {
		t.Errorf("ProblemIDs = %v", got.ProblemIDs)
	}
	if got.CompletedAt != nil {
		t.Error("CompletedAt set on active session")
	}
	if got.StartedAt.IsZero() {
		t.Error("StartedAt zero after round trip")
	}
}

func TestGetSessionNotFound(t *testing.T) {
	s := openTestStore(t)
	if _, err := s.GetSession(context.Background(), "ghost"); !errors.Is(err, session.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestUpdateSessionStatus(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	created, err := s.CreateSession(ctx, &session.Session{Difficulty: problemgen.DifficultyEasy})
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	completedAt := time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC)
	updated, err := s.UpdateSessionStatus(ctx, created.ID, session.StatusCompleted, &completedAt)
	if err != nil {
		t.Fatalf("UpdateSessionStatus: %v", err)
	}
	if updated.Status != session.StatusCompleted {
		t.Errorf("status = %q, want completed", updated.Status)
	}
	if updated.CompletedAt == nil || !updated.CompletedAt.Equal(completedAt) {
		t.Errorf("CompletedAt = %v, want %v", updated.CompletedAt, completedAt)
	}

	if _, err := s.UpdateSessionStatus(ctx, "ghost", session.StatusCompleted, &completedAt); !errors.Is(err, session.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestUpdateSessionTallies(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	created, err := s.CreateSession(ctx, &session.Session{Difficulty: problemgen.DifficultyHard})
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	if err := s.UpdateSessionTallies(ctx, created.ID, 3, 2); err != nil {
		t.Fatalf("UpdateSessionTallies: %v", err)
	}

	got, err := s.GetSession(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetSession: %v", err)
	}
	if got.CorrectCount != 3 || got.IncorrectCount != 2 {
		t.Errorf("tallies = %d/%d, want 3/2", got.CorrectCount, got.IncorrectCount)
	}
}

func TestProblemsRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	stored, err := s.CreateProblems(ctx, []problemgen.GeneratedProblem{
		{QuestionText: "Solve $x^2=4$", SolutionText: "$x=\\pm 2$", Difficulty: problemgen.DifficultyEasy, Topic: "quadratics", StandardID: "A-REI.4"},
		{QuestionText: "Factor $x^2-9$", SolutionText: "$(x-3)(x+3)$", Difficulty: problemgen.DifficultyEasy, Topic: "factoring"},
	})
	if err != nil {
		t.Fatalf("CreateProblems: %v", err)
	}
	if len(stored) != 2 {
		t.Fatalf("stored %d problems, want 2", len(stored))
	}

	got, err := s.GetProblem(ctx, stored[0].ID)
	if err != nil {
		t.Fatalf("GetProblem: %v", err)
	}
	if got.QuestionText != "Solve $x^2=4$" || got.StandardID != "A-REI.4" {
		t.Errorf("got %+v", got)
	}

	if _, err := s.GetProblem(ctx, "ghost"); !errors.Is(err, session.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestResponsesCreationOrder(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sess, err := s.CreateSession(ctx, &session.Session{Difficulty: problemgen.DifficultyMedium})
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	problems, err := s.CreateProblems(ctx, []problemgen.GeneratedProblem{
		{QuestionText: "q1", SolutionText: "s1", Difficulty: problemgen.DifficultyMedium},
		{QuestionText: "q2", SolutionText: "s2", Difficulty: problemgen.DifficultyMedium},
		{QuestionText: "q3", SolutionText: "s3", Difficulty: problemgen.DifficultyMedium},
	})
	if err != nil {
		t.Fatalf("CreateProblems: %v", err)
	}

	// Record out of problem order; listing must respect creation order.
	for _, i := range []int{1, 2, 0} {
		if _, err := s.CreateResponse(ctx, sess.ID, problems[i].ID, i != 2, 10+i); err != nil {
			t.Fatalf("CreateResponse: %v", err)
		}
	}

	got, err := s.ListResponses(ctx, sess.ID)
	if err != nil {
		t.Fatalf("ListResponses: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d responses, want 3", len(got))
	}
	wantOrder := []string{problems[1].ID, problems[2].ID, problems[0].ID}
	for i, r := range got {
		if r.ProblemID != wantOrder[i] {
			t.Errorf("response %d references %s, want %s", i, r.ProblemID, wantOrder[i])
		}
	}
	if got[1].Correct {
		t.Error("second response should be incorrect")
	}
	if got[0].ElapsedSeconds != 11 {
		t.Errorf("ElapsedSeconds = %d, want 11", got[0].ElapsedSeconds)
	}
}

func TestRunnerAgainstSQLiteStore(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	problems, err := s.CreateProblems(ctx, []problemgen.GeneratedProblem{
		{QuestionText: "q1", SolutionText: "s1", Difficulty: problemgen.DifficultyEasy},
		{QuestionText: "q2", SolutionText: "s2", Difficulty: problemgen.DifficultyEasy},
	})
	if err != nil {
		t.Fatalf("CreateProblems: %v", err)
	}
	ids := []string{problems[0].ID, problems[1].ID}
	sess, err := s.CreateSession(ctx, &session.Session{
		Difficulty:    problemgen.DifficultyEasy,
		TotalProblems: 2,
		ProblemIDs:    ids,
	})
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	r, err := session.StartLive(ctx, s, sess.ID, ids)
	if err != nil {
		t.Fatalf("StartLive: %v", err)
	}
	for i := 0; i < 2; i++ {
		r.Reveal()
		if err := r.RecordGrade(ctx, true); err != nil {
			t.Fatalf("RecordGrade %d: %v", i, err)
		}
	}
	if !r.Completed() {
		t.Fatal("runner not completed")
	}

	stored, err := s.GetSession(ctx, sess.ID)
	if err != nil {
		t.Fatalf("GetSession: %v", err)
	}
	if stored.Status != session.StatusCompleted || stored.CompletedAt == nil {
		t.Errorf("persisted session = %+v, want completed with timestamp", stored)
	}
	if stored.CorrectCount != 2 || stored.IncorrectCount != 0 {
		t.Errorf("persisted tallies = %d/%d, want 2/0", stored.CorrectCount, stored.IncorrectCount)
	}

	review, err := session.OpenReview(ctx, s, sess.ID)
	if err != nil {
		t.Fatalf("OpenReview: %v", err)
	}
	if review.Len() != 2 || !review.SolutionRevealed() {
		t.Errorf("review Len=%d revealed=%v", review.Len(), review.SolutionRevealed())
	}
}

func TestAppendLLMRequest(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	events := []llm.RequestEvent{
		{Provider: "anthropic", Model: "claude-sonnet", Purpose: "problem-gen", InputTokens: 900, OutputTokens: 1800, LatencyMs: 2400, Success: true},
		{Provider: "anthropic", Model: "claude-sonnet", Purpose: "suggest-standards", Success: false, ErrorMessage: "rate limited"},
	}
	for _, ev := range events {
		if err := s.AppendLLMRequest(ctx, ev); err != nil {
			t.Fatalf("AppendLLMRequest: %v", err)
		}
	}

	total, err := s.LLMRequestCount(ctx, "")
	if err != nil {
		t.Fatalf("LLMRequestCount: %v", err)
	}
	if total != 2 {
		t.Errorf("total = %d, want 2", total)
	}
	gen, err := s.LLMRequestCount(ctx, "problem-gen")
	if err != nil {
		t.Fatalf("LLMRequestCount: %v", err)
	}
	if gen != 1 {
		t.Errorf("problem-gen count = %d, want 1", gen)
	}
}
