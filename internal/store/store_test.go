package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestQuizRunRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendQuizEvent(ctx, QuizEventData{
		RunID:    "run-1",
		QuizSlug: "office-fitout",
		Action:   "start",
	})
	if err != nil {
		t.Fatalf("append start: %v", err)
	}
	err = repo.AppendQuizEvent(ctx, QuizEventData{
		RunID:              "run-1",
		QuizSlug:           "office-fitout",
		Action:             "finish",
		QuestionsDelivered: 10,
		CorrectAnswers:     7,
		DurationSecs:       180,
	})
	if err != nil {
		t.Fatalf("append finish: %v", err)
	}

	runs, err := repo.RecentRuns(ctx, 10)
	if err != nil {
		t.Fatalf("recent runs: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("runs = %d, want 1 (starts must not count as runs)", len(runs))
	}
	r := runs[0]
	if r.RunID != "run-1" || r.QuizSlug != "office-fitout" {
		t.Errorf("run = %+v, want run-1/office-fitout", r)
	}
	if r.QuestionsDelivered != 10 || r.CorrectAnswers != 7 || r.DurationSecs != 180 {
		t.Errorf("run counters = %+v, want 10/7/180", r)
	}
}

func TestRecentRunsNewestFirst(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.AppendQuizEvent(ctx, QuizEventData{
			RunID:          string(rune('a' + i)),
			QuizSlug:       "office-fitout",
			Action:         "finish",
			CorrectAnswers: i,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	runs, err := repo.RecentRuns(ctx, 2)
	if err != nil {
		t.Fatalf("recent runs: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("runs = %d, want 2", len(runs))
	}
	if runs[0].RunID != "c" || runs[1].RunID != "b" {
		t.Errorf("order = %s, %s, want c, b", runs[0].RunID, runs[1].RunID)
	}
}

func TestAnswerEventsAndTotals(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	answers := []AnswerEventData{
		{RunID: "run-1", QuizSlug: "office-fitout", QuestionID: "q1", QuestionType: "single", Chosen: []int{2}, Correct: true, SkillKeys: []string{"negotiation"}, TimeMs: 4200},
		{RunID: "run-1", QuizSlug: "office-fitout", QuestionID: "q2", QuestionType: "multi", Chosen: []int{0, 3}, Correct: false, TimeMs: 9100},
		{RunID: "run-1", QuizSlug: "office-fitout", QuestionID: "q3", QuestionType: "single", Chosen: []int{1}, Correct: true, SkillKeys: []string{"check_facts", "cost_breakdown"}, TimeMs: 3000},
	}
	for _, a := range answers {
		if err := repo.AppendAnswerEvent(ctx, a); err != nil {
			t.Fatalf("append %s: %v", a.QuestionID, err)
		}
	}

	totals, err := repo.Totals(ctx)
	if err != nil {
		t.Fatalf("totals: %v", err)
	}
	if totals.Total != 3 {
		t.Errorf("total = %d, want 3", totals.Total)
	}
	if totals.Correct != 2 {
		t.Errorf("correct = %d, want 2", totals.Correct)
	}
}

func TestHelpEventAppend(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendHelpEvent(ctx, HelpEventData{
		RunID:      "run-1",
		QuestionID: "q5",
		Request:    "explain the cost terms",
		Success:    true,
	})
	if err != nil {
		t.Fatalf("append help event: %v", err)
	}

	count, err := s.Client().HelpEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("help events = %d, want 1", count)
	}
}

func TestLLMEventRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "gemini",
		Model:        "gemini-2.5-flash",
		Purpose:      "question-help",
		InputTokens:  120,
		OutputTokens: 80,
		LatencyMs:    950,
		Success:      true,
		RequestBody:  `{"prompt":"hi"}`,
		ResponseBody: `{"text":"hello"}`,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("events = %d, want 1", len(events))
	}
	e := events[0]
	if e.Provider != "gemini" || e.Model != "gemini-2.5-flash" || e.Purpose != "question-help" {
		t.Errorf("event = %+v", e)
	}
	if e.InputTokens != 120 || e.OutputTokens != 80 || e.LatencyMs != 950 {
		t.Errorf("counters = %d/%d/%d, want 120/80/950", e.InputTokens, e.OutputTokens, e.LatencyMs)
	}
	if e.RequestBody == "" || e.ResponseBody == "" {
		t.Error("expected stored request and response bodies")
	}

	got, err := repo.GetLLMEvent(ctx, e.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.ID != e.ID {
		t.Errorf("get = %+v, want ID %d", got, e.ID)
	}
}

func TestGetLLMEventMissing(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()

	got, err := repo.GetLLMEvent(context.Background(), 9999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for missing event, got %+v", got)
	}
}

func TestQueryLLMEventsLimit(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider: "openai",
			Model:    "gpt-4o-mini",
			Purpose:  "improvement",
			Success:  true,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 3})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 3 {
		t.Errorf("events = %d, want 3", len(events))
	}
	// Newest first.
	if len(events) >= 2 && events[0].Sequence < events[1].Sequence {
		t.Errorf("expected descending sequence, got %d then %d", events[0].Sequence, events[1].Sequence)
	}
}

func TestLLMUsageAggregation(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	data := []LLMRequestEventData{
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "question-help", InputTokens: 100, OutputTokens: 50, LatencyMs: 800, Success: true},
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "question-help", InputTokens: 200, OutputTokens: 100, LatencyMs: 1200, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "improvement", InputTokens: 300, OutputTokens: 150, LatencyMs: 600, Success: true},
	}
	for i, d := range data {
		if err := repo.AppendLLMRequest(ctx, d); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("purposes = %d, want 2", len(byPurpose))
	}
	stats := make(map[string]LLMUsageStat)
	for _, st := range byPurpose {
		stats[st.Purpose] = st
	}
	help := stats["question-help"]
	if help.Calls != 2 || help.InputTokens != 300 || help.OutputTokens != 150 {
		t.Errorf("question-help = %+v, want 2 calls, 300/150 tokens", help)
	}
	if help.AvgLatencyMs != 1000 {
		t.Errorf("avg latency = %d, want 1000", help.AvgLatencyMs)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 2 {
		t.Fatalf("models = %d, want 2", len(byModel))
	}
	models := make(map[string]LLMModelUsage)
	for _, mu := range byModel {
		models[mu.Model] = mu
	}
	if models["gemini-2.5-flash"].Calls != 2 || models["gpt-4o-mini"].Calls != 1 {
		t.Errorf("model calls = %+v", models)
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"quiz_events", "answer_events", "help_events", "llm_request_events"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s missing: %v", table, err)
		}
	}
}
