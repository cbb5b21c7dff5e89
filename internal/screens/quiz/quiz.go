// Package quiz implements the question-answering screen of a run.
package quiz

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/procureiq/procureiq/internal/assistant"
	"github.com/procureiq/procureiq/internal/content"
	"github.com/procureiq/procureiq/internal/engine"
	"github.com/procureiq/procureiq/internal/router"
	"github.com/procureiq/procureiq/internal/screen"
	"github.com/procureiq/procureiq/internal/screens/results"
	"github.com/procureiq/procureiq/internal/session"
	"github.com/procureiq/procureiq/internal/store"
	"github.com/procureiq/procureiq/internal/ui/components"
	"github.com/procureiq/procureiq/internal/ui/layout"
)

// QuizScreen drives one run: it presents questions, collects answers and
// hands the finished run to the results screen.
type QuizScreen struct {
	quiz *content.Quiz
	repo store.EventRepo
	asst *assistant.Assistant

	run    *session.Run
	choice components.Choice

	helpActive  bool
	helpLoading bool
	helpText    string
	helpInput   components.TextInput

	finishing bool
	errMsg    string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a quiz screen. repo and asst may be nil.
func New(quiz *content.Quiz, repo store.EventRepo, asst *assistant.Assistant) *QuizScreen {
	return &QuizScreen{
		quiz: quiz,
		repo: repo,
		asst: asst,
	}
}

func (s *QuizScreen) Init() tea.Cmd {
	return s.initRun()
}

func (s *QuizScreen) Title() string {
	return s.quiz.Title
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.helpActive {
		if s.helpText != "" || s.helpLoading {
			return []layout.KeyHint{
				{Key: "any key", Description: "Continue"},
			}
		}
		return []layout.KeyHint{
			{Key: "Enter", Description: "Ask"},
			{Key: "Tab", Description: "Cancel"},
		}
	}

	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Move"},
	}
	if q := s.current(); q != nil && q.Type == content.TypeMulti {
		hints = append(hints, layout.KeyHint{Key: "Space", Description: "Toggle"})
	}
	hints = append(hints,
		layout.KeyHint{Key: "Enter", Description: "Answer"},
		layout.KeyHint{Key: "←→", Description: "Question"},
	)
	if s.asst != nil {
		hints = append(hints, layout.KeyHint{Key: "?", Description: "AI help"})
	}
	hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Abandon"})
	return hints
}

func (s *QuizScreen) current() *content.Question {
	if s.run == nil {
		return nil
	}
	return s.run.Current()
}

// initRun creates the run off the UI loop; the start event write hits
// the database.
func (s *QuizScreen) initRun() tea.Cmd {
	quiz, repo := s.quiz, s.repo
	return func() tea.Msg {
		run, err := session.NewRun(context.Background(), quiz, repo)
		return runReadyMsg{Run: run, Err: err}
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case runReadyMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.run = msg.Run
		s.loadChoice()
		return s, nil

	case helpReadyMsg:
		s.helpLoading = false
		if msg.Err != nil {
			s.helpText = "Help is unavailable right now: " + msg.Err.Error()
		} else {
			s.helpText = msg.Text
		}
		return s, nil

	case resultReadyMsg:
		s.finishing = false
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		return s, func() tea.Msg {
			return router.PushScreenMsg{
				Screen: results.New(msg.Result, s.asst),
			}
		}

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.helpActive && !s.helpLoading && s.helpText == "" {
		var cmd tea.Cmd
		s.helpInput, cmd = s.helpInput.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if s.run == nil || s.finishing {
		return s, nil
	}

	if s.helpActive {
		return s.handleHelpKey(msg)
	}

	switch msg.String() {
	case "enter":
		return s.submit()
	case "left":
		if s.run.Prev() {
			s.loadChoice()
		}
		return s, nil
	case "right":
		if s.run.Next() {
			s.loadChoice()
		}
		return s, nil
	case "?":
		if s.asst != nil {
			s.helpActive = true
			s.helpText = ""
			s.helpInput = components.NewTextInput("What would you like to know?", false, 120)
			return s, s.helpInput.Init()
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.choice, cmd = s.choice.Update(msg)
	return s, cmd
}

func (s *QuizScreen) handleHelpKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	// Once a response (or failure) is showing, any key dismisses.
	if s.helpText != "" {
		s.helpActive = false
		s.helpText = ""
		return s, nil
	}
	if s.helpLoading {
		return s, nil
	}

	switch msg.String() {
	case "tab":
		s.helpActive = false
		return s, nil
	case "enter":
		request := s.helpInput.Value()
		if request == "" {
			return s, nil
		}
		s.helpLoading = true
		return s, s.askHelp(request)
	}

	var cmd tea.Cmd
	s.helpInput, cmd = s.helpInput.Update(msg)
	return s, cmd
}

// askHelp queries the assistant for the current question and records the
// help event.
func (s *QuizScreen) askHelp(request string) tea.Cmd {
	run, asst := s.run, s.asst
	q := s.current()
	return func() tea.Msg {
		ctx := context.Background()
		text, err := asst.Help(ctx, q, request)
		run.RecordHelp(ctx, request, err == nil)
		return helpReadyMsg{Text: text, Err: err}
	}
}

// submit records the current selection. Answering the last open question
// finishes the run.
func (s *QuizScreen) submit() (screen.Screen, tea.Cmd) {
	if !s.choice.Ready() {
		return s, nil
	}
	if err := s.run.Answer(engine.Selection(s.choice.Selection())); err != nil {
		return s, nil
	}

	if s.run.Complete() {
		s.finishing = true
		return s, s.finishRun()
	}

	if s.run.Next() {
		s.loadChoice()
	} else {
		// At the last question with earlier ones still open; jump back
		// to the first unanswered.
		s.gotoFirstUnanswered()
	}
	return s, nil
}

func (s *QuizScreen) gotoFirstUnanswered() {
	for s.run.Prev() {
	}
	for {
		if _, ok := s.run.Answered(s.run.Current().ID); !ok {
			break
		}
		if !s.run.Next() {
			break
		}
	}
	s.loadChoice()
}

func (s *QuizScreen) finishRun() tea.Cmd {
	run := s.run
	return func() tea.Msg {
		result, err := run.Finish(context.Background())
		return resultReadyMsg{Result: result, Err: err}
	}
}

// loadChoice rebuilds the selector for the current question, restoring
// any previous answer.
func (s *QuizScreen) loadChoice() {
	q := s.current()
	if q == nil {
		return
	}
	s.choice = components.NewChoice(q.Options, q.Type == content.TypeMulti, q.SelectCount)
	if sel, ok := s.run.Answered(q.ID); ok {
		s.choice.SetSelection(sel)
	}
}
