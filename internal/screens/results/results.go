// Package results implements the post-run dashboard: overall score,
// competency charts, missed-question review and improvement suggestions.
package results

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/procureiq/procureiq/internal/assistant"
	"github.com/procureiq/procureiq/internal/chart"
	"github.com/procureiq/procureiq/internal/router"
	"github.com/procureiq/procureiq/internal/screen"
	"github.com/procureiq/procureiq/internal/session"
	"github.com/procureiq/procureiq/internal/ui/layout"
	"github.com/procureiq/procureiq/internal/ui/theme"
)

// suggestionsMsg delivers the improvement suggestions, from the LLM or
// the rubric fallback.
type suggestionsMsg struct {
	Suggestions map[string]string
	Fallback    bool
}

// ResultsScreen displays the outcome of a finished run.
type ResultsScreen struct {
	result *session.Result
	asst   *assistant.Assistant

	suggestions        map[string]string
	suggestionsPending bool
	suggestionsNote    string

	scrollOffset int
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates the results screen. asst may be nil; the rubric fallback
// then supplies the suggestions.
func New(result *session.Result, asst *assistant.Assistant) *ResultsScreen {
	return &ResultsScreen{
		result:             result,
		asst:               asst,
		suggestionsPending: true,
	}
}

func (s *ResultsScreen) Init() tea.Cmd {
	result, asst := s.result, s.asst
	return func() tea.Msg {
		if asst == nil {
			fallback := assistant.RubricSuggestions(result.Quiz, result.Scores)
			return suggestionsMsg{Suggestions: fallback, Fallback: true}
		}
		suggestions, err := asst.Suggestions(context.Background(), result.Quiz, result.Scores)
		return suggestionsMsg{Suggestions: suggestions, Fallback: err != nil}
	}
}

func (s *ResultsScreen) Title() string {
	return "Results"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Enter", Description: "Done"},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case suggestionsMsg:
		s.suggestionsPending = false
		s.suggestions = msg.Suggestions
		if msg.Fallback && s.asst != nil {
			s.suggestionsNote = "AI suggestions unavailable; showing rubric guidance."
		}
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.scrollOffset > 0 {
				s.scrollOffset--
			}
		case "down", "j":
			s.scrollOffset++
		case "enter":
			// Pop results and the quiz screen to land back on the picker.
			return s, tea.Sequence(
				func() tea.Msg { return router.PopScreenMsg{} },
				func() tea.Msg { return router.PopScreenMsg{} },
			)
		}
	}
	return s, nil
}

func (s *ResultsScreen) View(width, height int) string {
	content := s.renderContent(width)

	lines := strings.Split(content, "\n")
	maxOffset := len(lines) - height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if s.scrollOffset > maxOffset {
		s.scrollOffset = maxOffset
	}
	if s.scrollOffset > 0 {
		lines = lines[s.scrollOffset:]
	}
	if len(lines) > height && height > 0 {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

func (s *ResultsScreen) renderContent(width int) string {
	r := s.result
	var b strings.Builder

	center := func(style lipgloss.Style, text string) {
		b.WriteString(style.Width(width).Align(lipgloss.Center).Render(text))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	center(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true), "Case study complete!")
	b.WriteString("\n")

	mins := int(r.Duration.Minutes())
	secs := int(r.Duration.Seconds()) % 60
	center(lipgloss.NewStyle().Foreground(theme.Text),
		fmt.Sprintf("Score: %d/%d (%.0f%%)        Time: %d:%02d",
			r.Correct, r.Total, r.Percent(), mins, secs))
	b.WriteString("\n")

	s.renderSection(&b, width, "Competency Radar")
	radar := lipgloss.NewStyle().Foreground(theme.Secondary).Render(chart.Radar(r.Points))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, radar))
	b.WriteString("\n")

	s.renderSection(&b, width, "Competency Scores")
	bars := lipgloss.NewStyle().Foreground(theme.Text).Render(
		chart.Bars(r.Points, chart.DefaultBarWidth))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bars))
	b.WriteString("\n")

	if len(r.Missed) > 0 {
		s.renderSection(&b, width, "Review")
		for _, m := range r.Missed {
			stem := lipgloss.NewStyle().
				Width(minInt(width-8, 72)).
				Foreground(theme.Text).
				Bold(true).
				Render(m.Question.Stem)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, stem))
			b.WriteString("\n")

			detail := lipgloss.NewStyle().Foreground(theme.Error).Render(
				"Your answer: "+strings.Join(m.YourAnswers, ", ")) + "\n" +
				lipgloss.NewStyle().Foreground(theme.Success).Render(
					"Correct: "+strings.Join(m.Correct, ", "))
			if m.Question.Explain != "" {
				detail += "\n" + lipgloss.NewStyle().
					Width(minInt(width-12, 68)).
					Foreground(theme.TextDim).
					Render(m.Question.Explain)
			}
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, detail))
			b.WriteString("\n\n")
		}
	}

	s.renderSection(&b, width, "How to Improve")
	switch {
	case s.suggestionsPending:
		center(lipgloss.NewStyle().Foreground(theme.TextDim), "Generating suggestions...")
	default:
		if s.suggestionsNote != "" {
			center(lipgloss.NewStyle().Foreground(theme.TextDim), s.suggestionsNote)
			b.WriteString("\n")
		}
		for _, p := range r.Points {
			text, ok := s.suggestions[p.Key]
			if !ok {
				continue
			}
			label := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(p.Label)
			body := lipgloss.NewStyle().
				Width(minInt(width-12, 68)).
				Foreground(theme.Text).
				Render(text)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, label+"\n"+body))
			b.WriteString("\n\n")
		}
		if text, ok := s.suggestions["general"]; ok {
			general := lipgloss.NewStyle().
				Width(minInt(width-12, 68)).
				Foreground(theme.Text).
				Render(text)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, general))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (s *ResultsScreen) renderSection(b *strings.Builder, width int, title string) {
	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", minInt(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(title)))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
