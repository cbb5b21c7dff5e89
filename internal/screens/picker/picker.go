// Package picker implements the quiz selection screen shown at startup.
package picker

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/procureiq/procureiq/internal/assistant"
	"github.com/procureiq/procureiq/internal/content"
	"github.com/procureiq/procureiq/internal/router"
	"github.com/procureiq/procureiq/internal/screen"
	quizscreen "github.com/procureiq/procureiq/internal/screens/quiz"
	"github.com/procureiq/procureiq/internal/store"
	"github.com/procureiq/procureiq/internal/ui/components"
	"github.com/procureiq/procureiq/internal/ui/layout"
	"github.com/procureiq/procureiq/internal/ui/theme"
)

// PickerScreen lists the available quizzes with a scenario preview.
type PickerScreen struct {
	quizzes []*content.Quiz
	menu    components.Menu
	repo    store.EventRepo
	asst    *assistant.Assistant
}

var _ screen.Screen = (*PickerScreen)(nil)
var _ screen.KeyHintProvider = (*PickerScreen)(nil)

// New creates the picker. repo and asst may be nil; runs then skip
// persistence and AI features respectively.
func New(quizzes []*content.Quiz, repo store.EventRepo, asst *assistant.Assistant) *PickerScreen {
	p := &PickerScreen{
		quizzes: quizzes,
		repo:    repo,
		asst:    asst,
	}

	items := make([]components.MenuItem, 0, len(quizzes)+1)
	for _, q := range quizzes {
		quiz := q
		items = append(items, components.MenuItem{
			Label: quiz.Title,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: quizscreen.New(quiz, p.repo, p.asst),
					}
				}
			},
		})
	}
	items = append(items, components.MenuItem{
		Label: "Exit",
		Action: func() tea.Cmd {
			return tea.Quit
		},
	})

	p.menu = components.NewMenu(items)
	return p
}

func (p *PickerScreen) Init() tea.Cmd {
	return nil
}

func (p *PickerScreen) Title() string {
	return "Choose a Case Study"
}

func (p *PickerScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Start"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (p *PickerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	p.menu, cmd = p.menu.Update(msg)
	return p, cmd
}

func (p *PickerScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Procurement Case-Study Training"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, p.menu.View()))
	b.WriteString("\n")

	// Scenario preview for the highlighted quiz.
	if p.menu.Selected < len(p.quizzes) {
		q := p.quizzes[p.menu.Selected]

		info := fmt.Sprintf("%d questions · %d competencies", q.DeliverCount(), len(q.SkillsCatalog))
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(info))
		b.WriteString("\n\n")

		scenario := lipgloss.NewStyle().
			Width(minInt(width-8, 70)).
			Foreground(theme.Text).
			Render(q.Scenario)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, scenario))
		b.WriteString("\n")

		if len(q.LearningObjectives) > 0 {
			var obj strings.Builder
			for _, o := range q.LearningObjectives {
				obj.WriteString("• " + o + "\n")
			}
			objectives := lipgloss.NewStyle().
				Width(minInt(width-8, 70)).
				Foreground(theme.TextDim).
				Render(strings.TrimRight(obj.String(), "\n"))
			b.WriteString("\n")
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, objectives))
		}
	}

	return b.String()
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
