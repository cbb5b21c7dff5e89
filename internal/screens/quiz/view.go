package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/procureiq/procureiq/internal/content"
	"github.com/procureiq/procureiq/internal/ui/components"
	"github.com/procureiq/procureiq/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", s.errMsg))
	}
	if s.run == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n\n  Starting run...")
	}
	if s.finishing {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n\n  Scoring your answers...")
	}
	if s.helpActive {
		return s.renderHelp(width)
	}
	return s.renderQuestion(width)
}

func (s *QuizScreen) renderQuestion(width int) string {
	q := s.run.Current()
	if q == nil {
		return ""
	}

	var b strings.Builder

	total := len(s.run.Questions())
	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Question %d/%d", s.run.Index()+1, total))
	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Answered %d/%d", s.run.AnsweredCount(), total))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}
	b.WriteString(infoLine)
	b.WriteString("\n")
	progress := components.NewProgressBar("  ", float64(s.run.AnsweredCount())/float64(total), false, width-4)
	b.WriteString(progress.View())
	b.WriteString("\n\n")

	stem := lipgloss.NewStyle().
		Width(minInt(width-8, 76)).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Stem)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, stem))
	b.WriteString("\n\n")

	if q.Type == content.TypeMulti {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render(fmt.Sprintf("Select exactly %d options", q.SelectCount)))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choice.View()))

	if _, answered := s.run.Answered(q.ID); answered {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Answered — Enter to change, ←→ to move on"))
	}

	return b.String()
}

func (s *QuizScreen) renderHelp(width int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Ask the assistant"))
	b.WriteString("\n\n")

	if q := s.run.Current(); q != nil {
		stem := lipgloss.NewStyle().
			Width(minInt(width-8, 76)).
			Foreground(theme.TextDim).
			Render(q.Stem)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, stem))
		b.WriteString("\n\n")
	}

	switch {
	case s.helpLoading:
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Thinking..."))
	case s.helpText != "":
		help := lipgloss.NewStyle().
			Width(minInt(width-8, 76)).
			Foreground(theme.Text).
			Render(s.helpText)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, help))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Press any key to continue..."))
	default:
		input := lipgloss.NewStyle().
			Width(minInt(width-8, 76)).
			Render(s.helpInput.View())
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, input))
	}

	return b.String()
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
