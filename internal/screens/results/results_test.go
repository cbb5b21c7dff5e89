package results

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/procureiq/procureiq/internal/assistant"
	"github.com/procureiq/procureiq/internal/competency"
	"github.com/procureiq/procureiq/internal/content"
	"github.com/procureiq/procureiq/internal/llm"
	"github.com/procureiq/procureiq/internal/session"
)

func testResult() *session.Result {
	quiz := &content.Quiz{
		Slug:  "office-fitout",
		Title: "Office Fit-Out",
		SkillsCatalog: []content.Skill{
			{Key: "negotiation", Label: "Negotiation"},
			{Key: "cost_breakdown", Label: "Cost Breakdown"},
		},
		ImprovementRubric: map[string][]string{
			"cost_breakdown": {"read supplier quotes line by line", "separate one-off from recurring costs", "model volume discounts"},
		},
	}
	scores := map[string]float64{"negotiation": 3, "cost_breakdown": 1}
	return &session.Result{
		RunID:    "run-1",
		Quiz:     quiz,
		Total:    3,
		Correct:  2,
		Scores:   scores,
		Points:   competency.Points(scores, quiz.SkillsCatalog),
		Duration: 95 * time.Second,
	}
}

func loadSuggestions(t *testing.T, s *ResultsScreen) *ResultsScreen {
	t.Helper()
	cmd := s.Init()
	if cmd == nil {
		t.Fatal("expected init command")
	}
	scr, _ := s.Update(cmd())
	return scr.(*ResultsScreen)
}

func TestResultsScreen_RubricFallbackWithoutAssistant(t *testing.T) {
	s := loadSuggestions(t, New(testResult(), nil))

	if s.suggestionsPending {
		t.Fatal("expected suggestions to be loaded")
	}
	text, ok := s.suggestions["cost_breakdown"]
	if !ok {
		t.Fatalf("expected a rubric suggestion for the weak competency, got %v", s.suggestions)
	}
	if !strings.Contains(text, "read supplier quotes line by line") {
		t.Errorf("suggestion missing first rubric item: %q", text)
	}
	if s.suggestionsNote != "" {
		t.Errorf("no degradation note expected without an assistant, got %q", s.suggestionsNote)
	}
}

func TestResultsScreen_SuggestionsFromAssistant(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"cost_breakdown": "Practice building should-cost models."}`),
	})
	asst := assistant.New(provider, assistant.DefaultConfig())

	s := loadSuggestions(t, New(testResult(), asst))

	if s.suggestions["cost_breakdown"] != "Practice building should-cost models." {
		t.Errorf("suggestions = %v", s.suggestions)
	}
	if s.suggestionsNote != "" {
		t.Errorf("unexpected degradation note: %q", s.suggestionsNote)
	}
}

func TestResultsScreen_NoteOnProviderFailure(t *testing.T) {
	provider := llm.NewMockProvider() // empty queue, every call fails
	asst := assistant.New(provider, assistant.DefaultConfig())

	s := loadSuggestions(t, New(testResult(), asst))

	if len(s.suggestions) == 0 {
		t.Fatal("expected rubric fallback suggestions")
	}
	if s.suggestionsNote == "" {
		t.Error("expected a degradation note when the provider fails")
	}
}

func TestResultsScreen_EnterLeavesRun(t *testing.T) {
	s := loadSuggestions(t, New(testResult(), nil))

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Error("expected a command popping back to the picker")
	}
}

func TestResultsScreen_ViewShowsScoreAndCharts(t *testing.T) {
	s := loadSuggestions(t, New(testResult(), nil))

	view := s.View(100, 60)
	for _, want := range []string{"Case study complete!", "2/3", "Negotiation", "Cost Breakdown"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestResultsScreen_ScrollClamped(t *testing.T) {
	s := loadSuggestions(t, New(testResult(), nil))

	for i := 0; i < 500; i++ {
		scr, _ := s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
		s = scr.(*ResultsScreen)
	}
	view := s.View(100, 20)
	if view == "" {
		t.Error("expected a non-empty view after scrolling past the end")
	}
	if s.scrollOffset > 500 {
		t.Errorf("scroll offset not clamped: %d", s.scrollOffset)
	}
}
