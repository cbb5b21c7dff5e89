package quiz

import (
	"encoding/json"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/procureiq/procureiq/internal/assistant"
	"github.com/procureiq/procureiq/internal/content"
	"github.com/procureiq/procureiq/internal/llm"
	"github.com/procureiq/procureiq/internal/router"
	"github.com/procureiq/procureiq/internal/screens/results"
)

func testQuiz() *content.Quiz {
	return &content.Quiz{
		Slug:  "office-fitout",
		Title: "Office Fit-Out",
		SkillsCatalog: []content.Skill{
			{Key: "negotiation", Label: "Negotiation"},
			{Key: "cost_breakdown", Label: "Cost Breakdown"},
		},
		Scoring: content.Scoring{DeliverCount: 3},
		Questions: []content.Question{
			{
				ID: "q1", Type: content.TypeSingle, Stem: "first",
				Options:     []string{"a", "b", "c"},
				AnswerIndex: 0,
				Skills:      []content.SkillWeight{{Key: "negotiation", Weight: 1}},
			},
			{
				ID: "q2", Type: content.TypeMulti, Stem: "second",
				Options:       []string{"a", "b", "c", "d"},
				AnswerIndices: []int{1, 2},
				SelectCount:   2,
				Skills:        []content.SkillWeight{{Key: "cost_breakdown", Weight: 1}},
			},
			{
				ID: "q3", Type: content.TypeSingle, Stem: "third",
				Options:     []string{"a", "b"},
				AnswerIndex: 1,
				Skills:      []content.SkillWeight{{Key: "negotiation", Weight: 1}},
			},
			{
				ID: "q4", Type: content.TypeSingle, Stem: "spare",
				Options:     []string{"a", "b"},
				AnswerIndex: 0,
			},
		},
	}
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// readyScreen creates a quiz screen with its run started.
func readyScreen(t *testing.T, asst *assistant.Assistant) *QuizScreen {
	t.Helper()
	s := New(testQuiz(), nil, asst)
	cmd := s.Init()
	if cmd == nil {
		t.Fatal("expected init command")
	}
	scr, _ := s.Update(cmd())
	qs := scr.(*QuizScreen)
	if qs.run == nil {
		t.Fatal("expected run to be ready")
	}
	return qs
}

func update(t *testing.T, s *QuizScreen, msg tea.Msg) (*QuizScreen, tea.Cmd) {
	t.Helper()
	scr, cmd := s.Update(msg)
	return scr.(*QuizScreen), cmd
}

func TestQuizScreen_Title(t *testing.T) {
	s := New(testQuiz(), nil, nil)
	if s.Title() != "Office Fit-Out" {
		t.Errorf("Title = %q, want %q", s.Title(), "Office Fit-Out")
	}
}

func TestQuizScreen_View_Loading(t *testing.T) {
	s := New(testQuiz(), nil, nil)
	if s.View(80, 24) == "" {
		t.Error("expected non-empty view while the run starts")
	}
}

func TestQuizScreen_AnswerAdvances(t *testing.T) {
	s := readyScreen(t, nil)

	s, _ = update(t, s, specialKey(tea.KeyEnter))

	if s.run.AnsweredCount() != 1 {
		t.Errorf("answered = %d, want 1", s.run.AnsweredCount())
	}
	if s.run.Index() != 1 {
		t.Errorf("index = %d, want 1", s.run.Index())
	}
}

func TestQuizScreen_MultiRequiresExactCount(t *testing.T) {
	s := readyScreen(t, nil)
	s, _ = update(t, s, specialKey(tea.KeyEnter)) // q1, now on the multi question

	// Enter with nothing toggled does not answer.
	s, _ = update(t, s, specialKey(tea.KeyEnter))
	if s.run.AnsweredCount() != 1 {
		t.Fatalf("answered = %d, want 1 before toggling", s.run.AnsweredCount())
	}

	s, _ = update(t, s, keyPress('1'))
	s, _ = update(t, s, keyPress('2'))
	s, _ = update(t, s, specialKey(tea.KeyEnter))
	if s.run.AnsweredCount() != 2 {
		t.Errorf("answered = %d, want 2 after selecting two options", s.run.AnsweredCount())
	}
}

func TestQuizScreen_NavigationRestoresAnswer(t *testing.T) {
	s := readyScreen(t, nil)

	s, _ = update(t, s, keyPress('2'))
	s, _ = update(t, s, specialKey(tea.KeyEnter))
	if s.run.Index() != 1 {
		t.Fatalf("index = %d, want 1", s.run.Index())
	}

	s, _ = update(t, s, specialKey(tea.KeyLeft))
	if s.run.Index() != 0 {
		t.Fatalf("index = %d, want 0 after going back", s.run.Index())
	}
	if s.choice.Cursor != 1 {
		t.Errorf("cursor = %d, want restored selection 1", s.choice.Cursor)
	}
}

func TestQuizScreen_CompleteFinishes(t *testing.T) {
	s := readyScreen(t, nil)

	s, _ = update(t, s, specialKey(tea.KeyEnter)) // q1
	s, _ = update(t, s, keyPress('1'))
	s, _ = update(t, s, keyPress('2'))
	s, _ = update(t, s, specialKey(tea.KeyEnter)) // q2
	s, cmd := update(t, s, specialKey(tea.KeyEnter))

	if !s.finishing {
		t.Fatal("expected finishing state after the last answer")
	}
	if cmd == nil {
		t.Fatal("expected a finish command")
	}

	s, cmd = update(t, s, cmd())
	if cmd == nil {
		t.Fatal("expected a push command after the result is ready")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	if _, ok := push.Screen.(*results.ResultsScreen); !ok {
		t.Errorf("expected results screen, got %T", push.Screen)
	}
}

func TestQuizScreen_HelpNeedsAssistant(t *testing.T) {
	s := readyScreen(t, nil)
	s, _ = update(t, s, keyPress('?'))
	if s.helpActive {
		t.Error("help should not open without an assistant")
	}
}

func TestQuizScreen_HelpFlow(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`"Think about the total cost of ownership."`),
	})
	asst := assistant.New(provider, assistant.DefaultConfig())
	s := readyScreen(t, asst)

	s, _ = update(t, s, keyPress('?'))
	if !s.helpActive {
		t.Fatal("expected help overlay to open")
	}

	s.helpInput.Model.SetValue("Which option matters most?")
	s, cmd := update(t, s, specialKey(tea.KeyEnter))
	if !s.helpLoading {
		t.Fatal("expected help request to be in flight")
	}
	if cmd == nil {
		t.Fatal("expected an assistant command")
	}

	s, _ = update(t, s, cmd())
	if s.helpText != "Think about the total cost of ownership." {
		t.Errorf("help text = %q", s.helpText)
	}

	// Any key dismisses the shown response.
	s, _ = update(t, s, keyPress('x'))
	if s.helpActive {
		t.Error("expected help overlay to close")
	}
}

func TestQuizScreen_HelpCancel(t *testing.T) {
	provider := llm.NewMockProvider()
	s := readyScreen(t, assistant.New(provider, assistant.DefaultConfig()))

	s, _ = update(t, s, keyPress('?'))
	s, _ = update(t, s, specialKey(tea.KeyTab))
	if s.helpActive {
		t.Error("expected tab to cancel the help overlay")
	}
	if provider.CallCount() != 0 {
		t.Errorf("provider calls = %d, want 0", provider.CallCount())
	}
}

func TestQuizScreen_KeyHints(t *testing.T) {
	s := readyScreen(t, nil)
	if len(s.KeyHints()) == 0 {
		t.Error("expected non-empty key hints")
	}
}
