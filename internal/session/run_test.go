package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/procureiq/procureiq/internal/content"
	"github.com/procureiq/procureiq/internal/engine"
	"github.com/procureiq/procureiq/internal/store"
)

func runQuiz() *content.Quiz {
	return &content.Quiz{
		Slug:  "test-quiz",
		Title: "Test Quiz",
		SkillsCatalog: []content.Skill{
			{Key: "negotiation", Label: "Negotiation"},
			{Key: "cost_breakdown", Label: "Cost Breakdown"},
		},
		Scoring: content.Scoring{DeliverCount: 3},
		Questions: []content.Question{
			{
				ID: "q1", Type: content.TypeSingle, Stem: "one",
				Options:     []string{"a", "b", "c"},
				AnswerIndex: 0,
				Skills:      []content.SkillWeight{{Key: "negotiation", Weight: 2}},
			},
			{
				ID: "q2", Type: content.TypeMulti, Stem: "two",
				Options:       []string{"a", "b", "c", "d"},
				AnswerIndices: []int{1, 2},
				SelectCount:   2,
				Skills:        []content.SkillWeight{{Key: "cost_breakdown", Weight: 1}},
			},
			{
				ID: "q3", Type: content.TypeSingle, Stem: "three",
				Options:     []string{"a", "b"},
				AnswerIndex: 1,
				Skills:      []content.SkillWeight{{Key: "negotiation", Weight: 1}},
			},
			{
				ID: "q4", Type: content.TypeSingle, Stem: "beyond deliver count",
				Options:     []string{"a", "b"},
				AnswerIndex: 0,
			},
		},
	}
}

// correctSelection builds the right answer for a delivered question,
// whose option order has been shuffled.
func correctSelection(q content.Question) engine.Selection {
	if q.Type == content.TypeSingle {
		return engine.Selection{q.AnswerIndex}
	}
	return engine.Selection(q.AnswerIndices)
}

// wrongSelection picks any valid-but-incorrect selection.
func wrongSelection(q content.Question) engine.Selection {
	if q.Type == content.TypeSingle {
		for i := range q.Options {
			if i != q.AnswerIndex {
				return engine.Selection{i}
			}
		}
	}
	// Multi: swap one correct index for an incorrect one.
	correct := make(map[int]bool)
	for _, i := range q.AnswerIndices {
		correct[i] = true
	}
	sel := engine.Selection{q.AnswerIndices[0]}
	for i := range q.Options {
		if !correct[i] {
			sel = append(sel, i)
			break
		}
	}
	return sel
}

func newTestRun(t *testing.T, repo store.EventRepo) *Run {
	t.Helper()
	r, err := NewRun(context.Background(), runQuiz(), repo)
	if err != nil {
		t.Fatalf("new run: %v", err)
	}
	return r
}

func TestRunDeliversConfiguredCount(t *testing.T) {
	r := newTestRun(t, nil)
	if got := len(r.Questions()); got != 3 {
		t.Errorf("delivered = %d, want 3", got)
	}
	if r.Current() == nil || r.Current().ID != "q1" {
		t.Errorf("current = %v, want q1", r.Current())
	}
}

func TestAnswerValidation(t *testing.T) {
	r := newTestRun(t, nil)

	tests := []struct {
		name    string
		sel     engine.Selection
		wantErr bool
	}{
		{"empty", engine.Selection{}, true},
		{"two for single", engine.Selection{0, 1}, true},
		{"out of range", engine.Selection{7}, true},
		{"negative", engine.Selection{-1}, true},
		{"valid", engine.Selection{0}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := r.Answer(tt.sel)
			if (err != nil) != tt.wantErr {
				t.Errorf("Answer(%v) error = %v, wantErr %v", tt.sel, err, tt.wantErr)
			}
		})
	}
}

func TestAnswerMultiRequiresExactCount(t *testing.T) {
	r := newTestRun(t, nil)
	r.Next() // q2 is multi with select_count 2

	if err := r.Answer(engine.Selection{0}); err == nil {
		t.Error("expected error for one selection on a two-select question")
	}
	if err := r.Answer(engine.Selection{0, 1, 2}); err == nil {
		t.Error("expected error for three selections on a two-select question")
	}
	if err := r.Answer(engine.Selection{0, 1}); err != nil {
		t.Errorf("valid two-selection rejected: %v", err)
	}
}

func TestNavigationBounds(t *testing.T) {
	r := newTestRun(t, nil)

	if r.Prev() {
		t.Error("Prev at start should return false")
	}
	if !r.Next() || !r.Next() {
		t.Fatal("Next should advance through 3 questions")
	}
	if r.Next() {
		t.Error("Next at end should return false")
	}
	if r.Index() != 2 {
		t.Errorf("index = %d, want 2", r.Index())
	}
	if !r.Prev() {
		t.Error("Prev in the middle should return true")
	}
}

func TestReAnswerReplacesSelection(t *testing.T) {
	r := newTestRun(t, nil)

	if err := r.Answer(engine.Selection{0}); err != nil {
		t.Fatalf("answer: %v", err)
	}
	if err := r.Answer(engine.Selection{1}); err != nil {
		t.Fatalf("re-answer: %v", err)
	}
	sel, ok := r.Answered(r.Current().ID)
	if !ok || len(sel) != 1 || sel[0] != 1 {
		t.Errorf("answered = %v, want [1]", sel)
	}
	if r.AnsweredCount() != 1 {
		t.Errorf("answered count = %d, want 1", r.AnsweredCount())
	}
}

func TestFinishRequiresAllAnswers(t *testing.T) {
	r := newTestRun(t, nil)
	if err := r.Answer(engine.Selection{0}); err != nil {
		t.Fatalf("answer: %v", err)
	}

	_, err := r.Finish(context.Background())
	if !errors.Is(err, ErrUnanswered) {
		t.Errorf("finish error = %v, want ErrUnanswered", err)
	}
}

func TestFinishAssemblesResult(t *testing.T) {
	r := newTestRun(t, nil)

	// Answer q1 and q2 correctly, q3 wrong.
	for i, q := range r.Questions() {
		var sel engine.Selection
		if i < 2 {
			sel = correctSelection(q)
		} else {
			sel = wrongSelection(q)
		}
		if err := r.Answer(sel); err != nil {
			t.Fatalf("answer %s: %v", q.ID, err)
		}
		r.Next()
	}

	result, err := r.Finish(context.Background())
	if err != nil {
		t.Fatalf("finish: %v", err)
	}
	if result.Total != 3 || result.Correct != 2 {
		t.Errorf("score = %d/%d, want 2/3", result.Correct, result.Total)
	}
	if got := result.Percent(); got < 66.6 || got > 66.7 {
		t.Errorf("percent = %f, want ~66.67", got)
	}
	// q1 correct: negotiation +2. q2 correct: cost_breakdown +1. q3 wrong.
	if result.Scores["negotiation"] != 2 || result.Scores["cost_breakdown"] != 1 {
		t.Errorf("scores = %v", result.Scores)
	}
	if len(result.Points) != 2 {
		t.Errorf("points = %d, want one per catalog skill", len(result.Points))
	}
	if len(result.Missed) != 1 || result.Missed[0].Question.ID != "q3" {
		t.Errorf("missed = %v, want q3", result.Missed)
	}

	// Finished runs reject further mutation.
	if err := r.Answer(engine.Selection{0}); !errors.Is(err, ErrAlreadyFinished) {
		t.Errorf("answer after finish = %v, want ErrAlreadyFinished", err)
	}
	if _, err := r.Finish(context.Background()); !errors.Is(err, ErrAlreadyFinished) {
		t.Errorf("double finish = %v, want ErrAlreadyFinished", err)
	}
}

func TestRunPersistsEvents(t *testing.T) {
	s, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	repo := s.EventRepo()
	ctx := context.Background()

	r := newTestRun(t, repo)
	for _, q := range r.Questions() {
		if err := r.Answer(correctSelection(q)); err != nil {
			t.Fatalf("answer %s: %v", q.ID, err)
		}
		r.Next()
	}
	r.RecordHelp(ctx, "what does this term mean?", true)

	result, err := r.Finish(ctx)
	if err != nil {
		t.Fatalf("finish: %v", err)
	}

	runs, err := repo.RecentRuns(ctx, 10)
	if err != nil {
		t.Fatalf("recent runs: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("runs = %d, want 1", len(runs))
	}
	if runs[0].RunID != result.RunID || runs[0].CorrectAnswers != 3 {
		t.Errorf("run record = %+v", runs[0])
	}

	totals, err := repo.Totals(ctx)
	if err != nil {
		t.Fatalf("totals: %v", err)
	}
	if totals.Total != 3 || totals.Correct != 3 {
		t.Errorf("totals = %+v, want 3/3", totals)
	}
}

func TestElapsedAccumulates(t *testing.T) {
	r := newTestRun(t, nil)

	base := time.Now()
	tick := 0
	r.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}
	r.questionShown = base

	if err := r.Answer(engine.Selection{0}); err != nil {
		t.Fatalf("answer: %v", err)
	}
	if r.elapsed["q1"] <= 0 {
		t.Errorf("elapsed = %v, want > 0", r.elapsed["q1"])
	}
}
